package service

import (
	"context"

	"github.com/pkg/errors"
)

// ErrInvalidSignature is returned when a webhook payload fails verification.
var ErrInvalidSignature = errors.New("invalid webhook signature")

// PaymentEventType is the processor's name for a webhook event.
type PaymentEventType string

const (
	PaymentEventCheckoutCompleted PaymentEventType = "checkout.session.completed"
	PaymentEventCheckoutExpired   PaymentEventType = "checkout.session.expired"
	PaymentEventIntentFailed      PaymentEventType = "payment_intent.payment_failed"
)

// CheckoutLineItem is one priced line on the hosted payment page.
type CheckoutLineItem struct {
	Name        string
	Description string
	UnitAmount  int64 // minor units
	Quantity    int64
}

// CheckoutSessionRequest describes the hosted payment page to open.
type CheckoutSessionRequest struct {
	ClientReferenceID string
	CustomerEmail     string
	LineItems         []CheckoutLineItem
	Metadata          map[string]string
	SuccessURL        string
	CancelURL         string
}

// CheckoutSession is the processor's view of a hosted payment page.
type CheckoutSession struct {
	ID            string
	URL           string
	PaymentStatus string
	Metadata      map[string]string
}

// PaymentEvent is a verified webhook event reduced to what the shop needs.
type PaymentEvent struct {
	ID       string
	Type     PaymentEventType
	ObjectID string
	Metadata map[string]string
}

// PaymentGateway abstracts the hosted checkout processor.
type PaymentGateway interface {
	CreateCheckoutSession(ctx context.Context, req *CheckoutSessionRequest) (*CheckoutSession, error)
	GetCheckoutSession(ctx context.Context, sessionID string) (*CheckoutSession, error)

	// ParseWebhookEvent verifies the signature over the raw payload before decoding anything.
	ParseWebhookEvent(payload []byte, signature string) (*PaymentEvent, error)
}
