package usecase

import (
	"context"

	"stampshop/internal/domain/entity"

	"github.com/google/uuid"
)

// CheckoutOutput points the browser at the hosted payment page.
type CheckoutOutput struct {
	SessionID string `json:"sessionId"`
	URL       string `json:"url"`
}

// VerifySessionOutput is returned for a paid checkout session.
type VerifySessionOutput struct {
	OrderID       uuid.UUID            `json:"orderId"`
	FriendlyID    string               `json:"friendlyId"`
	Status        entity.OrderStatus   `json:"status"`
	PaymentStatus entity.PaymentStatus `json:"paymentStatus"`
}

// PaymentUsecase bridges orders and the hosted checkout processor.
type PaymentUsecase interface {
	// CreateCheckoutSession opens a hosted payment page for an order.
	// orderRef is either the internal id or the SS-XXXXXX id.
	CreateCheckoutSession(ctx context.Context, orderRef string) (*CheckoutOutput, error)

	// VerifySession reports the order behind a paid session.
	VerifySession(ctx context.Context, sessionID string) (*VerifySessionOutput, error)

	// HandleWebhook verifies and applies a processor event.
	HandleWebhook(ctx context.Context, payload []byte, signature string) error
}
