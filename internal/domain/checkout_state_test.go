package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckoutState_Transitions(t *testing.T) {
	assert.True(t, CanTransitionTo(CheckoutStateLoading, CheckoutStatePriced))
	assert.True(t, CanTransitionTo(CheckoutStateLoading, CheckoutStateEmpty))
	assert.True(t, CanTransitionTo(CheckoutStatePriced, CheckoutStatePaying))
	assert.True(t, CanTransitionTo(CheckoutStatePriced, CheckoutStateLoginRedirect))
	assert.True(t, CanTransitionTo(CheckoutStatePriced, CheckoutStateCreateFailed))
	assert.True(t, CanTransitionTo(CheckoutStatePaying, CheckoutStateVerified))
	assert.True(t, CanTransitionTo(CheckoutStatePaying, CheckoutStateRejected))
}

func TestCheckoutState_NoReentry(t *testing.T) {
	// Nothing ever goes back to an earlier step.
	assert.False(t, CanTransitionTo(CheckoutStatePriced, CheckoutStateLoading))
	assert.False(t, CanTransitionTo(CheckoutStatePaying, CheckoutStatePriced))
	assert.False(t, CanTransitionTo(CheckoutStateRejected, CheckoutStatePaying))
}

func TestCheckoutState_TerminalsDoNotTransition(t *testing.T) {
	terminals := []CheckoutState{
		CheckoutStateEmpty, CheckoutStateLoginRedirect, CheckoutStateCreateFailed,
		CheckoutStateVerified, CheckoutStateRejected,
	}
	all := append([]CheckoutState{
		CheckoutStateLoading, CheckoutStatePriced, CheckoutStatePaying,
	}, terminals...)

	for _, from := range terminals {
		assert.True(t, from.IsTerminal())
		for _, to := range all {
			assert.False(t, CanTransitionTo(from, to), "%s -> %s", from, to)
		}
	}
}
