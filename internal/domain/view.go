package domain

// View names the navigation destinations the controllers can send the shopper
// to. Values double as the route paths served by the storefront.
type View string

const (
	ViewCheckout View = "/checkout"
	ViewLogin    View = "/auth/login"
	ViewOrders   View = "/orders"
)
