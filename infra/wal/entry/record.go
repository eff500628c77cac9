package entry

import "time"

type RecordType uint8

const (
	// RecordListed commits a created listing.
	RecordListed RecordType = iota
	// RecordSold commits a settled purchase.
	RecordSold
)

// Record is one committed marketplace operation. Only operations that
// succeeded in the engine are ever appended; the log is a commit log,
// not an intent log, so replay never re-runs a rejected operation.
type Record struct {
	Type RecordType
	Seq  uint64
	Time int64
	Data []byte
}

func NewRecord(t RecordType, seq uint64, data []byte) *Record {
	return &Record{
		Type: t,
		Seq:  seq,
		Time: time.Now().UnixNano(),
		Data: data,
	}
}
