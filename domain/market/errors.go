package market

import "errors"

var (
	// ErrInvalidPrice rejects listing creation with a non-positive price.
	ErrInvalidPrice = errors.New("market: price must be greater than zero")

	// ErrNotFound means the listing id was never assigned.
	ErrNotFound = errors.New("market: listing not found")

	// ErrAlreadySold rejects a second purchase of the same listing.
	ErrAlreadySold = errors.New("market: listing already sold")

	// ErrInsufficientPayment means the remitted amount is below TotalPrice.
	ErrInsufficientPayment = errors.New("market: remitted amount below total price")

	// ErrOverpayment means the remitted amount is above TotalPrice.
	// Excess value is never silently forwarded to the fee recipient.
	ErrOverpayment = errors.New("market: remitted amount above total price")

	// ErrTransferNotAuthorized is returned by Registry implementations
	// when the mover lacks authority over the asset.
	ErrTransferNotAuthorized = errors.New("market: transfer not authorized")

	// ErrInsufficientFunds is returned by Treasury implementations when
	// the payer cannot fund a settlement.
	ErrInsufficientFunds = errors.New("market: insufficient funds")
)
