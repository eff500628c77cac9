package market

// FeePolicy is fixed at engine construction and never mutates.
// Percent is a whole percentage of the listing price.
type FeePolicy struct {
	Recipient Identity
	Percent   int64
}

// Total computes price + floor(price*Percent/100).
// Integer arithmetic only; the floor comes from Go's truncating division.
func (p FeePolicy) Total(price int64) int64 {
	return price + p.Fee(price)
}

// Fee is the surcharge added on top of the seller's price.
func (p FeePolicy) Fee(price int64) int64 {
	return price * p.Percent / 100
}
