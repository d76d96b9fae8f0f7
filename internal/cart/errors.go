package cart

import "errors"

var (
	ErrUnknownLine     = errors.New("product not in cart")
	ErrNothingSelected = errors.New("no cart lines selected")
)
