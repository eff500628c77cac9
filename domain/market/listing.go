package market

// Identity names an account known to the registry and treasury.
type Identity string

// AssetRef identifies a token inside an external registry.
type AssetRef struct {
	Registry string
	TokenID  uint64
}

// Listing is a fixed-price sale offer. Asset, Price and Seller are
// immutable after creation; Sold flips false -> true exactly once.
type Listing struct {
	ID     uint64
	Asset  AssetRef
	Price  int64
	Seller Identity
	Sold   bool
}

// Total is the amount a buyer must remit under policy p.
func (l Listing) Total(p FeePolicy) int64 {
	return p.Total(l.Price)
}

// Receipt confirms a settled purchase.
type Receipt struct {
	ID        string
	ListingID uint64
	Asset     AssetRef
	Price     int64
	Seller    Identity
	Buyer     Identity
}
