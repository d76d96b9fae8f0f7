package domain

type CheckoutState string

const (
	CheckoutStateLoading CheckoutState = "LOADING"
	CheckoutStatePriced  CheckoutState = "PRICED"
	CheckoutStatePaying  CheckoutState = "PAYING"

	// Terminal states. A new attempt requires rebuilding the selection
	// snapshot from the cart view.
	CheckoutStateEmpty         CheckoutState = "EMPTY"
	CheckoutStateLoginRedirect CheckoutState = "LOGIN_REDIRECT"
	CheckoutStateCreateFailed  CheckoutState = "ORDER_CREATE_FAILED"
	CheckoutStateVerified      CheckoutState = "PAYMENT_VERIFIED"
	CheckoutStateRejected      CheckoutState = "PAYMENT_REJECTED"
)

func (s CheckoutState) IsTerminal() bool {
	switch s {
	case CheckoutStateEmpty, CheckoutStateLoginRedirect, CheckoutStateCreateFailed,
		CheckoutStateVerified, CheckoutStateRejected:
		return true
	}
	return false
}

// String representation (for logging)
func (s CheckoutState) String() string {
	return string(s)
}

var checkoutTransitions = map[CheckoutState][]CheckoutState{
	CheckoutStateLoading: {CheckoutStateEmpty, CheckoutStatePriced},
	CheckoutStatePriced:  {CheckoutStatePaying, CheckoutStateLoginRedirect, CheckoutStateCreateFailed},
	CheckoutStatePaying:  {CheckoutStateVerified, CheckoutStateRejected},
}

// CanTransitionTo reports whether a checkout attempt may move from one state
// to another. No transition re-enters an earlier step.
func CanTransitionTo(from, to CheckoutState) bool {
	for _, allowed := range checkoutTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}
