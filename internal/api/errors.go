package api

import "errors"

var (
	// ErrLoginNeeded is the backend's login-required rejection of an
	// order-creation attempt.
	ErrLoginNeeded = errors.New("login needed")

	// ErrMalformedResponse is a 2xx body that failed to decode.
	ErrMalformedResponse = errors.New("malformed response body")

	// ErrIncompleteOrder is an order-creation response missing id or amount.
	ErrIncompleteOrder = errors.New("order creation response missing id or amount")

	// ErrProductUnavailable is a product lookup the backend refused.
	ErrProductUnavailable = errors.New("product unavailable")
)
