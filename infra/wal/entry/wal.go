package entry

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"agora/infra/memory"
	"agora/infra/wal"
)

type Config struct {
	Dir             string
	SegmentSize     int64
	SegmentDuration time.Duration
}

type WAL struct {
	// mu guards the active segment: appends, rotation, and truncation
	// all move or touch w.current.
	mu sync.Mutex

	dir        string
	segSize    int64
	segDur     time.Duration
	current    *segment
	segIndex   int
	lastRotate time.Time

	frames *memory.Pool[bytes.Buffer]
}

func Open(cfg Config) (*WAL, error) {
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, err
	}

	// Continue on the newest segment after a restart.
	idx := lastSegmentIndex(cfg.Dir)
	seg, err := openSegment(cfg.Dir, idx)
	if err != nil {
		return nil, err
	}

	return &WAL{
		dir:        cfg.Dir,
		segSize:    cfg.SegmentSize,
		segDur:     cfg.SegmentDuration,
		current:    seg,
		segIndex:   idx,
		lastRotate: time.Now(),
		frames:     memory.NewPool(func() *bytes.Buffer { return &bytes.Buffer{} }),
	}, nil
}

// Append frames and durably writes one record:
// [type:1][seq:8][time:8][len:4][payload][crc:4]
func (w *WAL) Append(r *Record) error {
	payloadLen := uint32(len(r.Data))

	buf := w.frames.Get()
	buf.Reset()
	defer w.frames.Put(buf)

	var header [21]byte
	header[0] = byte(r.Type)
	binary.BigEndian.PutUint64(header[1:9], r.Seq)
	binary.BigEndian.PutUint64(header[9:17], uint64(r.Time))
	binary.BigEndian.PutUint32(header[17:21], payloadLen)

	buf.Write(header[:])
	buf.Write(r.Data)

	crc := wal.CRC32(buf.Bytes())
	var tail [4]byte
	binary.BigEndian.PutUint32(tail[:], crc)
	buf.Write(tail[:])

	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.current.append(buf.Bytes()); err != nil {
		return err
	}
	if err := w.current.sync(); err != nil {
		return err
	}

	if w.current.offset >= w.segSize || w.due() {
		return w.rotate()
	}
	return nil
}

func (w *WAL) due() bool {
	return w.segDur > 0 && time.Since(w.lastRotate) >= w.segDur
}

func (w *WAL) rotate() error {
	_ = w.current.close()
	w.segIndex++

	seg, err := openSegment(w.dir, w.segIndex)
	if err != nil {
		return err
	}

	w.current = seg
	w.lastRotate = time.Now()
	return nil
}

// TruncateBefore removes whole segments whose records are all covered by
// a snapshot at seq. The active segment is never removed.
func (w *WAL) TruncateBefore(seq uint64) error {
	files, err := filepath.Glob(filepath.Join(w.dir, "segment-*.wal"))
	if err != nil {
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	active := w.current.file.Name()
	for _, path := range files {
		if path == active {
			continue
		}
		maxSeq, err := maxSeqInSegment(path)
		if err != nil {
			continue
		}
		if maxSeq <= seq {
			_ = os.Remove(path)
		}
	}
	return nil
}

func (w *WAL) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.current.close()
}

func lastSegmentIndex(dir string) int {
	files, err := filepath.Glob(filepath.Join(dir, "segment-*.wal"))
	if err != nil || len(files) == 0 {
		return 0
	}
	sort.Strings(files)

	var idx int
	if _, err := fmt.Sscanf(filepath.Base(files[len(files)-1]), "segment-%06d.wal", &idx); err != nil {
		return 0
	}
	return idx
}
