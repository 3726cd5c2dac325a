package usecase

import (
	"context"

	"stampshop/internal/domain/service"

	"github.com/pkg/errors"
)

// ErrNotificationFailed marks an event whose emails could not all be delivered.
// Redelivering such an event could duplicate the emails that did go out.
var ErrNotificationFailed = errors.New("notification delivery failed")

// NotificationUsecase turns order events into customer emails.
type NotificationUsecase interface {
	service.OrderEventHandler

	// NotifyOrderPaid sends the order confirmation and the payment receipt.
	NotifyOrderPaid(ctx context.Context, event *service.OrderEvent) error

	// NotifyStatusChanged sends the status-specific update.
	NotifyStatusChanged(ctx context.Context, event *service.OrderEvent) error
}
