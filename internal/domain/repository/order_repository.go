// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"stampshop/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for order persistence.
var (
	// ErrOrderNotFound is returned when an order is not found.
	ErrOrderNotFound = errors.New("order not found")
	// ErrDuplicateFriendlyID is returned when a generated friendly id is already taken.
	ErrDuplicateFriendlyID = errors.New("friendly id already exists")
)

// OrderRepository defines the interface for order-related database operations.
type OrderRepository interface {
	// CreateOrder persists an order together with its items.
	CreateOrder(ctx context.Context, order *entity.Order) error

	// FindOrderByID retrieves an order and its items by internal id.
	FindOrderByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// FindOrderByFriendlyID retrieves an order and its items by its SS-XXXXXX id.
	FindOrderByFriendlyID(ctx context.Context, friendlyID string) (*entity.Order, error)

	// ListOrders returns every order with items, newest first.
	ListOrders(ctx context.Context) ([]*entity.Order, error)

	// GetOrderStats aggregates order count, pending count and revenue.
	GetOrderStats(ctx context.Context) (*entity.OrderStats, error)

	// AttachPaymentSession records the processor session and resets the payment axis to pending.
	AttachPaymentSession(ctx context.Context, id uuid.UUID, sessionID string) error

	// MarkOrderPaid moves an order to PAID/paid unless it is already paid.
	// The boolean reports whether this call performed the transition.
	MarkOrderPaid(ctx context.Context, id uuid.UUID, paymentID string) (bool, error)

	// UpdatePaymentStatus sets the payment axis unless the order is already paid.
	// The boolean reports whether a row changed.
	UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status entity.PaymentStatus) (bool, error)

	// UpdateOrderStatus sets the fulfillment axis and returns the updated order.
	UpdateOrderStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) (*entity.Order, error)
}
