package domain

// Money values are int64 minor units throughout.

const (
	Currency = "INR"

	// GST percentage applied on the checkout subtotal.
	taxRatePercent = 5
)

// GST computes the tax on a subtotal, rounded to the nearest minor unit.
// Rounding is applied on the tax only, never on line totals.
func GST(subtotal int64) int64 {
	return (subtotal*taxRatePercent + 50) / 100
}
