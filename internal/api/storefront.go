package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/VanshChoyal/Sea-Arsh/internal/domain"
)

// CartEntry is one row of the backend cart store: product id and quantity
// only, prices come from the product catalog.
type CartEntry struct {
	ProductID string `json:"product_id"`
	Qty       int    `json:"qty"`
}

type Product struct {
	Name  string `json:"name"`
	Price int64  `json:"price"`
	Image string `json:"image"`
}

// ShippingInfo is the user_location payload of an order-creation request.
type ShippingInfo struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Pincode string `json:"pincode"`
}

var ErrMissingAddress = errors.New("missing shipping fields")

func (s ShippingInfo) Validate() error {
	if s.Name == "" || s.Phone == "" || s.Address == "" || s.Pincode == "" {
		return ErrMissingAddress
	}
	return nil
}

type ContactMessage struct {
	FullName     string `json:"full_name"`
	EmailAddress string `json:"email_address"`
	Subject      string `json:"subject"`
	Message      string `json:"message"`
}

// AddToCart adds one unit of the product to the backend cart.
func (c *Client) AddToCart(ctx context.Context, productID string) error {
	var resp struct {
		Response bool `json:"response"`
	}
	err := c.postJSON(ctx, "/api/add/cart", map[string]string{"product_id": productID}, &resp)
	if err != nil {
		return err
	}
	if !resp.Response {
		return fmt.Errorf("add to cart rejected for product %s", productID)
	}
	return nil
}

// RemoveFromCart removes one unit of the product from the backend cart.
func (c *Client) RemoveFromCart(ctx context.Context, productID string) error {
	var resp struct {
		Response bool `json:"response"`
	}
	err := c.postJSON(ctx, "/api/remove/cart", map[string]string{"product_id": productID}, &resp)
	if err != nil {
		return err
	}
	if !resp.Response {
		return fmt.Errorf("remove from cart rejected for product %s", productID)
	}
	return nil
}

func (c *Client) GetCart(ctx context.Context) ([]CartEntry, error) {
	var resp struct {
		Response bool        `json:"response"`
		Cart     []CartEntry `json:"cart"`
	}
	if err := c.getJSON(ctx, "/api/cart/get", &resp); err != nil {
		return nil, err
	}
	if !resp.Response {
		return nil, errors.New("cart fetch rejected")
	}
	return resp.Cart, nil
}

func (c *Client) GetProduct(ctx context.Context, productID string) (*Product, error) {
	var resp struct {
		Response bool     `json:"response"`
		Product  *Product `json:"product"`
	}
	err := c.getJSON(ctx, "/api/product/"+url.PathEscape(productID), &resp)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
			return nil, fmt.Errorf("%w: %s", ErrProductUnavailable, productID)
		}
		return nil, err
	}
	if !resp.Response || resp.Product == nil {
		return nil, fmt.Errorf("%w: %s", ErrProductUnavailable, productID)
	}
	return resp.Product, nil
}

type CreateOrderRequest struct {
	Cart         []domain.SnapshotLine `json:"cart"`
	UserLocation ShippingInfo          `json:"user_location"`
}

// CreateOrder submits a checkout attempt. A 400 carrying the backend's
// "login needed" marker maps to ErrLoginNeeded; a response missing id or
// amount maps to ErrIncompleteOrder.
func (c *Client) CreateOrder(ctx context.Context, req CreateOrderRequest) (*domain.PendingPaymentOrder, error) {
	var resp struct {
		ID     string `json:"id"`
		Amount int64  `json:"amount"`
	}
	err := c.postJSON(ctx, "/create-order", req, &resp)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusBadRequest &&
			apiErr.ErrorMessage() == "login needed" {
			return nil, ErrLoginNeeded
		}
		return nil, err
	}
	if resp.ID == "" || resp.Amount == 0 {
		return nil, ErrIncompleteOrder
	}
	return &domain.PendingPaymentOrder{
		ID:       resp.ID,
		Amount:   resp.Amount,
		Currency: domain.Currency,
	}, nil
}

// VerifyPayment submits the widget's success callback identifiers and returns
// the backend's verification status verbatim.
func (c *Client) VerifyPayment(ctx context.Context, result domain.PaymentResult) (string, error) {
	var resp struct {
		Status string `json:"status"`
	}
	err := c.postJSON(ctx, "/verify-payment", result, &resp)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) {
			// Verification rejections come back as 400 with a status body.
			var body struct {
				Status string `json:"status"`
			}
			if jsonErr := json.Unmarshal(apiErr.Body, &body); jsonErr == nil && body.Status != "" {
				return body.Status, nil
			}
		}
		return "", err
	}
	return resp.Status, nil
}

func (c *Client) GetOrders(ctx context.Context, showCancelled bool) ([]domain.Order, error) {
	flag := "0"
	if showCancelled {
		flag = "1"
	}
	var resp struct {
		Orders []domain.Order `json:"orders"`
	}
	if err := c.getJSON(ctx, "/api/get-orders?show_cancelled="+flag, &resp); err != nil {
		return nil, err
	}
	return resp.Orders, nil
}

// CancelOrder returns the backend's acknowledgment status.
func (c *Client) CancelOrder(ctx context.Context, orderID string) (string, error) {
	var resp struct {
		Status string `json:"status"`
	}
	err := c.postJSON(ctx, "/api/cancel-order", map[string]string{"order_id": orderID}, &resp)
	if err != nil {
		return "", err
	}
	return resp.Status, nil
}

// Reorder asks the backend to materialize a cart-shaped payload from a past
// order. A nil slice means the backend had nothing to offer.
func (c *Client) Reorder(ctx context.Context, orderID string) ([]domain.SnapshotLine, error) {
	var resp struct {
		Cart []domain.SnapshotLine `json:"cart"`
	}
	err := c.postJSON(ctx, "/api/reorder", map[string]string{"order_id": orderID}, &resp)
	if err != nil {
		return nil, err
	}
	return resp.Cart, nil
}

// SaveResponse submits a contact form message.
func (c *Client) SaveResponse(ctx context.Context, msg ContactMessage) (bool, error) {
	var resp struct {
		Success bool `json:"success"`
	}
	if err := c.postJSON(ctx, "/api/save/response", msg, &resp); err != nil {
		return false, err
	}
	return resp.Success, nil
}
