package checkout

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/VanshChoyal/Sea-Arsh/internal/api"
	"github.com/VanshChoyal/Sea-Arsh/internal/domain"
)

// Pay runs the pay-button activation: validate the staged selection without
// touching the network, create the order, hand it to the payment widget, and
// verify the widget's callback. Every exit is a terminal state except
// validation rejections, which leave the attempt priced and retryable.
func (c *Controller) Pay(ctx context.Context, shipping api.ShippingInfo) error {
	if c.state != domain.CheckoutStatePriced {
		return fmt.Errorf("%w: pay from %s", ErrIllegalTransition, c.state)
	}

	if err := c.validate(shipping); err != nil {
		return err
	}

	pending, err := c.backend.CreateOrder(ctx, api.CreateOrderRequest{
		Cart:         c.snapshot.Items,
		UserLocation: shipping,
	})
	if err != nil {
		return c.failCreate(err)
	}

	if terr := c.transition(domain.CheckoutStatePaying); terr != nil {
		return terr
	}

	result, err := c.widget.Open(ctx, *pending)
	if err != nil {
		if errors.Is(err, ErrPaymentCancelled) {
			c.message = "Payment cancelled."
		} else {
			c.message = "Payment failed."
			log.Printf("checkout %s: widget error: %v", c.attemptID, err)
		}
		c.notify.Notify(c.message)
		return c.transition(domain.CheckoutStateRejected)
	}

	return c.verify(ctx, *result)
}

// validate rejects locally before any mutating request is sent.
func (c *Controller) validate(shipping api.ShippingInfo) error {
	if err := c.snapshot.Validate(); err != nil {
		switch {
		case errors.Is(err, domain.ErrEmptySelection):
			c.notify.Notify("Your cart is empty.")
		case errors.Is(err, domain.ErrZeroQuantity):
			c.notify.Notify("Quantity cannot be zero.")
		default:
			c.notify.Notify("Invalid items in cart. Refresh and try again.")
		}
		return err
	}
	if err := shipping.Validate(); err != nil {
		c.notify.Notify("Please fill in all shipping fields.")
		return err
	}
	return nil
}

func (c *Controller) failCreate(err error) error {
	switch {
	case errors.Is(err, api.ErrLoginNeeded):
		// Attempt abandoned, nothing persisted.
		if terr := c.transition(domain.CheckoutStateLoginRedirect); terr != nil {
			return terr
		}
		c.nav.Navigate(domain.ViewLogin)
		return nil
	case errors.Is(err, api.ErrMalformedResponse):
		c.message = "Server error. Please try again."
	case errors.Is(err, api.ErrIncompleteOrder):
		c.message = "Failed to create order. Try again."
	default:
		c.message = "Failed to create order. Try again."
		log.Printf("checkout %s: create order: %v", c.attemptID, err)
	}
	c.notify.Notify(c.message)
	if terr := c.transition(domain.CheckoutStateCreateFailed); terr != nil {
		return terr
	}
	return fmt.Errorf("create order: %w", err)
}

func (c *Controller) verify(ctx context.Context, result domain.PaymentResult) error {
	status, err := c.backend.VerifyPayment(ctx, result)
	if err != nil {
		c.message = "Payment verification failed."
		c.notify.Notify(c.message)
		log.Printf("checkout %s: verify payment: %v", c.attemptID, err)
		if terr := c.transition(domain.CheckoutStateRejected); terr != nil {
			return terr
		}
		return fmt.Errorf("verify payment: %w", err)
	}

	if status != "success" {
		c.message = "Payment verification failed."
		c.notify.Notify(c.message)
		log.Printf("checkout %s: verification status %q for payment %s", c.attemptID, status, result.PaymentID)
		return c.transition(domain.CheckoutStateRejected)
	}

	c.message = "Payment successful and verified."
	c.notify.Notify(c.message)
	if terr := c.transition(domain.CheckoutStateVerified); terr != nil {
		return terr
	}
	c.nav.Navigate(domain.ViewOrders)
	return nil
}
