package impl

import (
	"context"
	"log/slog"

	deliverycontext "stampshop/internal/delivery/context"
	"stampshop/internal/domain/entity"
	domainerrors "stampshop/internal/domain/errors"
	"stampshop/internal/domain/repository"
	"stampshop/internal/domain/service"
	"stampshop/internal/errors"
	"stampshop/internal/infra/metrics"
	"stampshop/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const (
	templateOrderConfirmation = "order_confirmation"
	templatePaymentReceipt    = "payment_receipt"
	templateStatusUpdate      = "status_update"
)

// notificationService implements the NotificationUsecase interface.
type notificationService struct {
	orderRepo repository.OrderRepository
	composer  service.EmailComposer
	sender    service.EmailSender
	metrics   *metrics.Metrics
	logger    *slog.Logger
}

// NotificationServiceParams holds dependencies for NotificationService, injected by Fx.
type NotificationServiceParams struct {
	fx.In

	OrderRepo repository.OrderRepository
	Composer  service.EmailComposer
	Sender    service.EmailSender
	Metrics   *metrics.Metrics `optional:"true"`
	Logger    *slog.Logger
}

// NewNotificationService is the constructor for notificationService.
func NewNotificationService(params NotificationServiceParams) usecase.NotificationUsecase {
	return &notificationService{
		orderRepo: params.OrderRepo,
		composer:  params.Composer,
		sender:    params.Sender,
		metrics:   params.Metrics,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *notificationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// HandleOrderEvent routes an event to the matching notification.
func (srv *notificationService) HandleOrderEvent(ctx context.Context, event *service.OrderEvent) error {
	switch event.Kind {
	case service.OrderEventPaid:
		return srv.NotifyOrderPaid(ctx, event)
	case service.OrderEventStatusChanged:
		return srv.NotifyStatusChanged(ctx, event)
	default:
		srv.log(ctx).Warn("Unknown order event kind, dropping",
			slog.String("event_id", event.EventID),
			slog.String("kind", string(event.Kind)),
		)

		return nil
	}
}

// NotifyOrderPaid sends the order confirmation followed by the payment receipt.
func (srv *notificationService) NotifyOrderPaid(ctx context.Context, event *service.OrderEvent) error {
	order, err := srv.loadOrder(ctx, event)
	if err != nil || order == nil {
		return err
	}

	var errs []error

	confirmation, err := srv.composer.OrderConfirmation(order)
	if err == nil {
		err = srv.send(ctx, templateOrderConfirmation, order, confirmation)
	}
	if err != nil {
		errs = append(errs, err)
	}

	paymentID := event.PaymentID
	if paymentID == "" {
		paymentID = order.PaymentID
	}

	receipt, err := srv.composer.PaymentReceipt(order, paymentID)
	if err == nil {
		err = srv.send(ctx, templatePaymentReceipt, order, receipt)
	}
	if err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return errors.WithStack(errors.Join(append([]error{usecase.ErrNotificationFailed}, errs...)...))
	}

	return nil
}

// NotifyStatusChanged sends the status-specific update email.
func (srv *notificationService) NotifyStatusChanged(ctx context.Context, event *service.OrderEvent) error {
	order, err := srv.loadOrder(ctx, event)
	if err != nil || order == nil {
		return err
	}

	status, ok := entity.ParseOrderStatus(event.Status)
	if !ok {
		status = order.Status
	}

	email, err := srv.composer.StatusUpdate(order, status)
	if err == nil {
		err = srv.send(ctx, templateStatusUpdate, order, email)
	}
	if err != nil {
		return errors.WithStack(errors.Join(usecase.ErrNotificationFailed, err))
	}

	return nil
}

// loadOrder returns nil without error when the customer left no email.
func (srv *notificationService) loadOrder(ctx context.Context, event *service.OrderEvent) (*entity.Order, error) {
	orderID, err := uuid.Parse(event.OrderID)
	if err != nil {
		return nil, domainerrors.ErrOrderNotFound
	}

	order, err := srv.orderRepo.FindOrderByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.WithStack(err)
	}

	if !order.HasEmail() {
		srv.log(ctx).Info("Order has no email, skipping notification",
			slog.String("friendly_id", order.FriendlyID),
			slog.String("kind", string(event.Kind)),
		)

		return nil, nil
	}

	return order, nil
}

func (srv *notificationService) send(ctx context.Context, template string, order *entity.Order, email *service.Email) error {
	messageID, err := srv.sender.Send(ctx, email)
	srv.metrics.Notification(template, err)

	if err != nil {
		srv.log(ctx).Error("Failed to send email",
			slog.String("template", template),
			slog.String("friendly_id", order.FriendlyID),
			slog.Any("error", err),
		)

		return err
	}

	srv.log(ctx).Info("Email sent",
		slog.String("template", template),
		slog.String("friendly_id", order.FriendlyID),
		slog.String("message_id", messageID),
	)

	return nil
}
