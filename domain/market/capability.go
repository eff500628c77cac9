package market

/*
Capabilities consumed from external collaborators.

The engine never mutates registry or balance state directly. It only
triggers transfers through these interfaces, and treats every call as
all-or-nothing with no partial state visible on failure.
*/

// Registry owns token identity and the ownership mapping.
type Registry interface {
	OwnerOf(asset AssetRef) (Identity, error)
	IsApprovedForAll(owner, operator Identity) bool

	// Transfer moves the asset from -> to, or fails with
	// ErrTransferNotAuthorized leaving ownership unchanged.
	Transfer(from, to Identity, asset AssetRef) error
}

// PayTx disburses value inside one atomic settlement.
type PayTx interface {
	Pay(to Identity, amount int64) error
}

// Treasury moves value between accounts.
//
// Settle withdraws amount from payer and runs fn. The withdrawal and
// every payment made through the transaction commit together; if fn
// returns an error nothing moves.
type Treasury interface {
	Settle(payer Identity, amount int64, fn func(PayTx) error) error
}
