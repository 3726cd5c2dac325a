package service

import (
	"context"

	"stampshop/internal/domain/entity"
)

// Email is a rendered message ready to send.
type Email struct {
	To      string
	Subject string
	Text    string
	HTML    string
}

// EmailSender delivers rendered emails through a mail provider.
type EmailSender interface {
	// Send delivers the message and returns the provider's message id.
	Send(ctx context.Context, email *Email) (string, error)
}

// EmailComposer renders the customer-facing order emails.
type EmailComposer interface {
	OrderConfirmation(order *entity.Order) (*Email, error)
	PaymentReceipt(order *entity.Order, paymentID string) (*Email, error)
	StatusUpdate(order *entity.Order, status entity.OrderStatus) (*Email, error)
}
