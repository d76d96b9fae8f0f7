package domain

// PendingPaymentOrder is created server-side per checkout attempt and consumed
// exactly once by the payment widget. The amount is authoritative; the client
// only displays it.
type PendingPaymentOrder struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"` // minor units
	Currency string `json:"currency"`
}

// PaymentResult carries the identifiers the widget hands back on success,
// submitted as-is for server-side verification.
type PaymentResult struct {
	PaymentID string `json:"razorpay_payment_id"`
	OrderID   string `json:"razorpay_order_id"`
	Signature string `json:"razorpay_signature"`
}
