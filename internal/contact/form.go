// Package contact drives the contact form: submit the message, reflect a
// typed status the view renders verbatim.
package contact

import (
	"context"
	"log"

	"github.com/VanshChoyal/Sea-Arsh/internal/api"
)

type Backend interface {
	SaveResponse(ctx context.Context, msg api.ContactMessage) (bool, error)
}

type Status struct {
	Text string
	OK   bool
}

type Form struct {
	backend Backend

	FullName     string
	EmailAddress string
	Subject      string
	Message      string

	status Status
}

func NewForm(backend Backend) *Form {
	return &Form{backend: backend}
}

func (f *Form) Status() Status { return f.status }

// Submit sends the message. Success resets the fields; any failure leaves
// them intact so the shopper can retry.
func (f *Form) Submit(ctx context.Context) error {
	f.status = Status{Text: "Sending...", OK: true}

	ok, err := f.backend.SaveResponse(ctx, api.ContactMessage{
		FullName:     f.FullName,
		EmailAddress: f.EmailAddress,
		Subject:      f.Subject,
		Message:      f.Message,
	})
	if err != nil {
		f.status = Status{Text: "Network error.", OK: false}
		log.Printf("contact submit failed: %v", err)
		return err
	}
	if !ok {
		f.status = Status{Text: "Failed to send message.", OK: false}
		return nil
	}

	f.status = Status{Text: "Message sent successfully!", OK: true}
	f.FullName, f.EmailAddress, f.Subject, f.Message = "", "", "", ""
	return nil
}
