package checkout

import "errors"

var (
	ErrIllegalTransition = errors.New("illegal transition of checkout state")

	// ErrPaymentCancelled is returned by a Widget when the shopper abandons
	// the payment UI without completing it.
	ErrPaymentCancelled = errors.New("payment cancelled by shopper")
)
