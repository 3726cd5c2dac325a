// Package stripe adapts Stripe Checkout to the shop's PaymentGateway.
package stripe

import (
	"context"
	"encoding/json"

	"stampshop/config"
	"stampshop/internal/domain/service"
	"stampshop/internal/errors"

	stripego "github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"
	"github.com/stripe/stripe-go/v82/webhook"
)

type gateway struct {
	api           *client.API
	webhookSecret string
	currency      string
}

// NewPaymentGateway builds the Stripe-backed gateway from config.
func NewPaymentGateway(cfg *config.Config) (service.PaymentGateway, error) {
	if cfg.Stripe.WebhookSecret == "" {
		return nil, errors.New("stripe webhook secret must be provided")
	}

	return newGateway(client.New(cfg.Stripe.SecretKey, nil), cfg.Stripe.WebhookSecret, cfg.Stripe.Currency), nil
}

func newGateway(api *client.API, webhookSecret, currency string) *gateway {
	return &gateway{
		api:           api,
		webhookSecret: webhookSecret,
		currency:      currency,
	}
}

// CreateCheckoutSession opens a hosted payment page. Metadata is copied to the
// payment intent so failure events can be traced back to the order.
func (g *gateway) CreateCheckoutSession(ctx context.Context, req *service.CheckoutSessionRequest) (*service.CheckoutSession, error) {
	params := &stripego.CheckoutSessionParams{
		Params:             stripego.Params{Context: ctx},
		Mode:               stripego.String(string(stripego.CheckoutSessionModePayment)),
		PaymentMethodTypes: stripego.StringSlice([]string{"card"}),
		SuccessURL:         stripego.String(req.SuccessURL),
		CancelURL:          stripego.String(req.CancelURL),
		ClientReferenceID:  stripego.String(req.ClientReferenceID),
		PaymentIntentData: &stripego.CheckoutSessionPaymentIntentDataParams{
			Metadata: req.Metadata,
		},
		Metadata: req.Metadata,
	}
	if req.CustomerEmail != "" {
		params.CustomerEmail = stripego.String(req.CustomerEmail)
	}

	for _, item := range req.LineItems {
		params.LineItems = append(params.LineItems, &stripego.CheckoutSessionLineItemParams{
			Quantity: stripego.Int64(item.Quantity),
			PriceData: &stripego.CheckoutSessionLineItemPriceDataParams{
				Currency:   stripego.String(g.currency),
				UnitAmount: stripego.Int64(item.UnitAmount),
				ProductData: &stripego.CheckoutSessionLineItemPriceDataProductDataParams{
					Name:        stripego.String(item.Name),
					Description: stripego.String(item.Description),
				},
			},
		})
	}

	sess, err := g.api.CheckoutSessions.New(params)
	if err != nil {
		return nil, errors.Wrap(err, "stripe: create checkout session")
	}

	return toCheckoutSession(sess), nil
}

// GetCheckoutSession fetches a session by id.
func (g *gateway) GetCheckoutSession(ctx context.Context, sessionID string) (*service.CheckoutSession, error) {
	sess, err := g.api.CheckoutSessions.Get(sessionID, &stripego.CheckoutSessionParams{
		Params: stripego.Params{Context: ctx},
	})
	if err != nil {
		return nil, errors.Wrap(err, "stripe: retrieve checkout session")
	}

	return toCheckoutSession(sess), nil
}

// ParseWebhookEvent verifies the Stripe-Signature header and reduces the event
// to the object id and metadata.
func (g *gateway) ParseWebhookEvent(payload []byte, signature string) (*service.PaymentEvent, error) {
	if signature == "" {
		return nil, service.ErrInvalidSignature
	}

	event, err := webhook.ConstructEventWithOptions(payload, signature, g.webhookSecret, webhook.ConstructEventOptions{
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		return nil, errors.Join(service.ErrInvalidSignature, err)
	}

	out := &service.PaymentEvent{
		ID:   event.ID,
		Type: service.PaymentEventType(event.Type),
	}

	if event.Data == nil {
		return out, nil
	}

	switch out.Type {
	case service.PaymentEventCheckoutCompleted, service.PaymentEventCheckoutExpired:
		var sess stripego.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
			return nil, errors.Wrap(err, "stripe: decode checkout session")
		}
		out.ObjectID = sess.ID
		out.Metadata = sess.Metadata
	case service.PaymentEventIntentFailed:
		var intent stripego.PaymentIntent
		if err := json.Unmarshal(event.Data.Raw, &intent); err != nil {
			return nil, errors.Wrap(err, "stripe: decode payment intent")
		}
		out.ObjectID = intent.ID
		out.Metadata = intent.Metadata
	}

	return out, nil
}

func toCheckoutSession(sess *stripego.CheckoutSession) *service.CheckoutSession {
	return &service.CheckoutSession{
		ID:            sess.ID,
		URL:           sess.URL,
		PaymentStatus: string(sess.PaymentStatus),
		Metadata:      sess.Metadata,
	}
}
