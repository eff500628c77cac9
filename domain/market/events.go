package market

// Event is the external notification emitted after a state transition
// commits. It is never the mechanism of the state change itself.
type Event struct {
	V        int      `json:"v"`
	Type     string   `json:"type"`
	Listing  uint64   `json:"listing"`
	Registry string   `json:"registry"`
	TokenID  uint64   `json:"token_id"`
	Price    int64    `json:"price"`
	Seller   Identity `json:"seller"`
	Buyer    Identity `json:"buyer,omitempty"`
}

const (
	EventOffered = "offered"
	EventBought  = "bought"

	eventVersion = 1
)

// NewOffered describes a freshly created listing.
func NewOffered(l Listing) Event {
	return Event{
		V:        eventVersion,
		Type:     EventOffered,
		Listing:  l.ID,
		Registry: l.Asset.Registry,
		TokenID:  l.Asset.TokenID,
		Price:    l.Price,
		Seller:   l.Seller,
	}
}

// NewBought describes a settled purchase.
func NewBought(r Receipt) Event {
	return Event{
		V:        eventVersion,
		Type:     EventBought,
		Listing:  r.ListingID,
		Registry: r.Asset.Registry,
		TokenID:  r.Asset.TokenID,
		Price:    r.Price,
		Seller:   r.Seller,
		Buyer:    r.Buyer,
	}
}
