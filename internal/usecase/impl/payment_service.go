package impl

import (
	"context"
	"log/slog"
	"strings"

	"stampshop/config"
	deliverycontext "stampshop/internal/delivery/context"
	"stampshop/internal/domain/entity"
	domainerrors "stampshop/internal/domain/errors"
	"stampshop/internal/domain/lifecycle"
	"stampshop/internal/domain/pricing"
	"stampshop/internal/domain/repository"
	"stampshop/internal/domain/service"
	"stampshop/internal/infra/metrics"
	"stampshop/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	metadataOrderID    = "orderId"
	metadataFriendlyID = "friendlyId"

	defaultItemDescription = "Custom Company Stamp"
	sessionPaid            = "paid"
)

// paymentService implements the PaymentUsecase interface.
type paymentService struct {
	orderRepo repository.OrderRepository
	gateway   service.PaymentGateway
	publisher service.EventPublisher
	metrics   *metrics.Metrics
	baseURL   string
	logger    *slog.Logger
}

// PaymentServiceParams holds dependencies for PaymentService, injected by Fx.
type PaymentServiceParams struct {
	fx.In

	OrderRepo repository.OrderRepository
	Gateway   service.PaymentGateway
	Publisher service.EventPublisher
	Metrics   *metrics.Metrics `optional:"true"`
	Config    *config.Config
	Logger    *slog.Logger
}

// NewPaymentService is the constructor for paymentService.
func NewPaymentService(params PaymentServiceParams) usecase.PaymentUsecase {
	return &paymentService{
		orderRepo: params.OrderRepo,
		gateway:   params.Gateway,
		publisher: params.Publisher,
		metrics:   params.Metrics,
		baseURL:   params.Config.App.BaseURL,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *paymentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateCheckoutSession opens a hosted payment page for a persisted order.
func (srv *paymentService) CreateCheckoutSession(ctx context.Context, orderRef string) (*usecase.CheckoutOutput, error) {
	orderRef = strings.TrimSpace(orderRef)
	if orderRef == "" {
		return nil, domainerrors.ErrOrderIDRequired
	}

	order, err := srv.findOrder(ctx, orderRef)
	if err != nil {
		return nil, err
	}

	if order.PaymentStatus == entity.PaymentStatusPaid {
		return nil, domainerrors.ErrOrderAlreadyPaid
	}

	lineItems := make([]service.CheckoutLineItem, 0, len(order.Items))
	for _, item := range order.Items {
		description := item.CompanyName
		if description == "" {
			description = defaultItemDescription
		}

		lineItems = append(lineItems, service.CheckoutLineItem{
			Name:        item.DisplayName(),
			Description: description,
			UnitAmount:  pricing.MinorUnits(item.Price),
			Quantity:    1,
		})
	}

	metadata := map[string]string{
		metadataOrderID:    order.ID.String(),
		metadataFriendlyID: order.FriendlyID,
	}

	session, err := srv.gateway.CreateCheckoutSession(ctx, &service.CheckoutSessionRequest{
		ClientReferenceID: order.ID.String(),
		CustomerEmail:     order.CustomerEmail,
		LineItems:         lineItems,
		Metadata:          metadata,
		SuccessURL:        srv.baseURL + "/checkout/success?session_id={CHECKOUT_SESSION_ID}",
		CancelURL:         srv.baseURL + "/checkout/cancel",
	})
	if err != nil {
		srv.log(ctx).Error("Checkout session creation failed",
			slog.String("order_id", order.ID.String()),
			slog.Any("error", err),
		)

		return nil, domainerrors.ErrPaymentGatewayFailed.WrapMessage(err.Error())
	}

	if err := srv.orderRepo.AttachPaymentSession(ctx, order.ID, session.ID); err != nil {
		srv.log(ctx).Error("Failed to record checkout session",
			slog.String("order_id", order.ID.String()),
			slog.String("session_id", session.ID),
			slog.Any("error", err),
		)

		return nil, domainerrors.ErrPaymentGatewayFailed.WrapMessage(err.Error())
	}

	srv.log(ctx).Info("Checkout session created",
		slog.String("order_id", order.ID.String()),
		slog.String("session_id", session.ID),
	)

	return &usecase.CheckoutOutput{SessionID: session.ID, URL: session.URL}, nil
}

// findOrder accepts either the internal uuid or the friendly id.
func (srv *paymentService) findOrder(ctx context.Context, orderRef string) (*entity.Order, error) {
	var (
		order *entity.Order
		err   error
	)

	if id, parseErr := uuid.Parse(orderRef); parseErr == nil {
		order, err = srv.orderRepo.FindOrderByID(ctx, id)
	} else {
		order, err = srv.orderRepo.FindOrderByFriendlyID(ctx, entity.NormalizeFriendlyID(orderRef))
	}

	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.WithStack(err)
	}

	return order, nil
}

// VerifySession reports the order behind a paid checkout session.
func (srv *paymentService) VerifySession(ctx context.Context, sessionID string) (*usecase.VerifySessionOutput, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return nil, domainerrors.ErrSessionIDRequired
	}

	session, err := srv.gateway.GetCheckoutSession(ctx, sessionID)
	if err != nil {
		srv.log(ctx).Error("Session verification failed", slog.String("session_id", sessionID), slog.Any("error", err))

		return nil, domainerrors.ErrPaymentGatewayFailed.WrapMessage(err.Error())
	}

	if session.PaymentStatus != sessionPaid {
		return nil, domainerrors.ErrPaymentNotCompleted
	}

	rawID := session.Metadata[metadataOrderID]
	if rawID == "" {
		return nil, domainerrors.ErrSessionMissingOrder
	}

	orderID, err := uuid.Parse(rawID)
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

	return &usecase.VerifySessionOutput{
		OrderID:       order.ID,
		FriendlyID:    order.FriendlyID,
		Status:        order.Status,
		PaymentStatus: order.PaymentStatus,
	}, nil
}

// HandleWebhook verifies the signature, then applies the event. Unknown event
// types and events without a usable order id are acknowledged and ignored.
func (srv *paymentService) HandleWebhook(ctx context.Context, payload []byte, signature string) error {
	event, err := srv.gateway.ParseWebhookEvent(payload, signature)
	if err != nil {
		srv.metrics.WebhookEvent("unknown", "rejected")
		srv.log(ctx).Warn("Webhook signature verification failed", slog.Any("error", err))

		return domainerrors.ErrInvalidWebhookSignature
	}

	logger := srv.log(ctx).With(
		slog.String("event_id", event.ID),
		slog.String("event_type", string(event.Type)),
	)

	var (
		outcome  string
		applyErr error
	)

	switch event.Type {
	case service.PaymentEventCheckoutCompleted:
		outcome, applyErr = srv.applyPaid(ctx, logger, event)
	case service.PaymentEventCheckoutExpired:
		outcome, applyErr = srv.applyPaymentStatus(ctx, logger, event, entity.PaymentStatusExpired)
	case service.PaymentEventIntentFailed:
		outcome, applyErr = srv.applyPaymentStatus(ctx, logger, event, entity.PaymentStatusFailed)
	default:
		logger.Info("Unhandled webhook event type")
		outcome = "ignored"
	}

	if applyErr != nil {
		srv.metrics.WebhookEvent(string(event.Type), "error")
		logger.Error("Webhook handler failed", slog.Any("error", applyErr))

		return domainerrors.ErrWebhookProcessingFailed.WrapMessage(applyErr.Error())
	}

	srv.metrics.WebhookEvent(string(event.Type), outcome)

	return nil
}

func (srv *paymentService) eventOrderID(logger *slog.Logger, event *service.PaymentEvent) (uuid.UUID, bool) {
	rawID := event.Metadata[metadataOrderID]
	if rawID == "" {
		logger.Error("No orderId in event metadata")

		return uuid.Nil, false
	}

	orderID, err := uuid.Parse(rawID)
	if err != nil {
		logger.Error("Malformed orderId in event metadata", slog.String("order_id", rawID))

		return uuid.Nil, false
	}

	return orderID, true
}

// applyPaid performs the one-time paid transition. Only the delivery that
// wins the transition publishes the notification event.
func (srv *paymentService) applyPaid(ctx context.Context, logger *slog.Logger, event *service.PaymentEvent) (string, error) {
	orderID, ok := srv.eventOrderID(logger, event)
	if !ok {
		return "ignored", nil
	}

	transitioned, err := srv.orderRepo.MarkOrderPaid(ctx, orderID, event.ObjectID)
	if err != nil {
		return "", err
	}

	if !transitioned {
		logger.Info("Order already paid or unknown, skipping", slog.String("order_id", orderID.String()))

		return "duplicate", nil
	}

	logger.Info("Payment successful for order", slog.String("order_id", orderID.String()))

	srv.publish(ctx, logger, &service.OrderEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		EventID:    event.ObjectID,
		Kind:       service.OrderEventPaid,
		OrderID:    orderID.String(),
		FriendlyID: event.Metadata[metadataFriendlyID],
		PaymentID:  event.ObjectID,
	})

	return "applied", nil
}

func (srv *paymentService) applyPaymentStatus(ctx context.Context, logger *slog.Logger, event *service.PaymentEvent, status entity.PaymentStatus) (string, error) {
	orderID, ok := srv.eventOrderID(logger, event)
	if !ok {
		return "ignored", nil
	}

	changed, err := srv.orderRepo.UpdatePaymentStatus(ctx, orderID, status)
	if err != nil {
		return "", err
	}

	if !changed {
		logger.Info("Payment status left unchanged", slog.String("order_id", orderID.String()))

		return "duplicate", nil
	}

	logger.Info("Payment status updated",
		slog.String("order_id", orderID.String()),
		slog.String("payment_status", status.String()),
	)

	return "applied", nil
}

// publish never fails the caller. The processor must not retry a webhook
// whose state change already committed.
func (srv *paymentService) publish(ctx context.Context, logger *slog.Logger, event *service.OrderEvent) {
	publishCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), lifecycle.NotificationTimeout)
	defer cancel()

	if err := srv.publisher.PublishOrderEvent(publishCtx, event); err != nil {
		logger.Error("Failed to dispatch order notifications",
			slog.String("order_id", event.OrderID),
			slog.Any("error", err),
		)
	}
}
