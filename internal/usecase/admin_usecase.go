package usecase

import (
	"context"
	"time"

	"stampshop/internal/domain/entity"

	"github.com/google/uuid"
)

// AdminSession is a freshly issued admin token.
type AdminSession struct {
	Token     string
	ExpiresAt time.Time
}

// OrderListOutput is the admin dashboard payload.
type OrderListOutput struct {
	Orders []*entity.Order    `json:"orders"`
	Stats  *entity.OrderStats `json:"stats"`
}

// AdminUsecase defines back-office operations.
type AdminUsecase interface {
	// Login exchanges an authenticator code for a session token.
	Login(ctx context.Context, code string) (*AdminSession, error)

	ListOrders(ctx context.Context) (*OrderListOutput, error)
	GetOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// UpdateStatus sets the fulfillment status. Any status may follow any other.
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*entity.Order, error)
}
