// Command storefront drives one full shopping pass against a running backend:
// add a product, bump its quantity, stage the selection, check out with an
// auto-approving payment widget, then print the resulting order history.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/VanshChoyal/Sea-Arsh/internal/api"
	"github.com/VanshChoyal/Sea-Arsh/internal/cart"
	"github.com/VanshChoyal/Sea-Arsh/internal/checkout"
	"github.com/VanshChoyal/Sea-Arsh/internal/devserver"
	"github.com/VanshChoyal/Sea-Arsh/internal/domain"
	"github.com/VanshChoyal/Sea-Arsh/internal/orders"
	"github.com/VanshChoyal/Sea-Arsh/internal/session"
)

type stdoutNotifier struct{}

func (stdoutNotifier) Notify(message string) { fmt.Println(">>", message) }

type stdoutNavigator struct{}

func (stdoutNavigator) Navigate(view domain.View) { fmt.Println("-> navigate", view) }

type alwaysConfirm struct{}

func (alwaysConfirm) Confirm(string) bool { return true }

// autoWidget stands in for the hosted payment UI: it fabricates a payment id
// and signs it with the shared development secret.
type autoWidget struct {
	secret string
}

func (w autoWidget) Open(_ context.Context, order domain.PendingPaymentOrder) (*domain.PaymentResult, error) {
	paymentID := "pay_" + uuid.NewString()
	return &domain.PaymentResult{
		PaymentID: paymentID,
		OrderID:   order.ID,
		Signature: devserver.SignPayment(w.secret, order.ID, paymentID),
	}, nil
}

func main() {
	baseURL := flag.String("url", "http://localhost:8080", "backend base URL")
	userID := flag.String("user", "demo-user", "user id sent with requests")
	productID := flag.String("product", "p-101", "product to buy")
	secret := flag.String("payment-secret", "dev-secret", "payment signing secret shared with the dev backend")
	flag.Parse()

	ctx := context.Background()
	client := api.NewClient(*baseURL, 10*time.Second, api.WithUser(*userID))
	store := session.NewMemoryStore()
	nav := stdoutNavigator{}
	notify := stdoutNotifier{}

	if err := client.AddToCart(ctx, *productID); err != nil {
		log.Fatalf("add to cart: %v", err)
	}

	cartCtrl := cart.NewController(client, store, nav)
	if err := cartCtrl.Load(ctx); err != nil {
		log.Fatalf("load cart: %v", err)
	}
	if err := cartCtrl.Increase(ctx, *productID); err != nil {
		log.Fatalf("increase: %v", err)
	}
	for _, row := range cartCtrl.Rows() {
		fmt.Printf("cart: %s x%d = %d\n", row.Name, row.Qty, row.LineTotal)
	}
	fmt.Println("selected total:", cartCtrl.SelectedTotal())

	if err := cartCtrl.ProceedToCheckout(ctx); err != nil {
		log.Fatalf("proceed to checkout: %v", err)
	}

	checkoutCtrl := checkout.NewController(client, store, autoWidget{secret: *secret}, nav, notify)
	if err := checkoutCtrl.Load(ctx); err != nil {
		log.Fatalf("load checkout: %v", err)
	}
	summary := checkoutCtrl.Summary()
	fmt.Printf("subtotal %d, tax %d, grand total %d\n", summary.Subtotal, summary.Tax, summary.GrandTotal)

	err := checkoutCtrl.Pay(ctx, api.ShippingInfo{
		Name:    "Demo Shopper",
		Phone:   "9999999999",
		Address: "1 Demo Street, Demo City",
		Pincode: "110001",
	})
	if err != nil {
		log.Fatalf("pay: %v", err)
	}
	fmt.Println("checkout state:", checkoutCtrl.State())

	orderCtrl := orders.NewController(client, store, nav, notify, alwaysConfirm{})
	if err := orderCtrl.Load(ctx, false); err != nil {
		log.Fatalf("load orders: %v", err)
	}
	for _, card := range orderCtrl.Cards() {
		fmt.Printf("order %s [%s] eta %s\n", card.OrderID, card.Status, card.DeliveryETA)
	}
}
