package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "stampshop/internal/delivery/context"
	"stampshop/internal/domain/constants"
	"stampshop/internal/domain/entity"
	domainerrors "stampshop/internal/domain/errors"
	"stampshop/internal/domain/lifecycle"
	"stampshop/internal/domain/repository"
	"stampshop/internal/domain/service"
	"stampshop/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// adminService implements the AdminUsecase interface.
type adminService struct {
	orderRepo    repository.OrderRepository
	tokenService service.TokenService
	otpVerifier  service.OTPVerifier
	publisher    service.EventPublisher
	logger       *slog.Logger

	// async runs status notifications off the request path.
	async func(fn func())
}

// AdminServiceParams holds dependencies for AdminService, injected by Fx.
type AdminServiceParams struct {
	fx.In

	OrderRepo    repository.OrderRepository
	TokenService service.TokenService
	OTPVerifier  service.OTPVerifier
	Publisher    service.EventPublisher
	Logger       *slog.Logger
}

// NewAdminService is the constructor for adminService.
func NewAdminService(params AdminServiceParams) usecase.AdminUsecase {
	return &adminService{
		orderRepo:    params.OrderRepo,
		tokenService: params.TokenService,
		otpVerifier:  params.OTPVerifier,
		publisher:    params.Publisher,
		logger:       params.Logger,
		async:        func(fn func()) { go fn() },
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *adminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login checks the authenticator code and issues a session token.
func (srv *adminService) Login(ctx context.Context, code string) (*usecase.AdminSession, error) {
	code = strings.TrimSpace(code)
	if !isAdminCode(code) {
		return nil, domainerrors.ErrInvalidCodeFormat
	}

	if !srv.otpVerifier.Verify(code) {
		srv.log(ctx).Warn("Admin login rejected")

		return nil, domainerrors.ErrInvalidAdminCode
	}

	token, expiresAt, err := srv.tokenService.GenerateAdminToken()
	if err != nil {
		return nil, errors.WithStack(err)
	}

	srv.log(ctx).Info("Admin logged in")

	return &usecase.AdminSession{Token: token, ExpiresAt: expiresAt}, nil
}

func isAdminCode(code string) bool {
	if len(code) != constants.AdminCodeLength {
		return false
	}
	for _, r := range code {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}

// ListOrders returns every order newest first, with dashboard stats.
func (srv *adminService) ListOrders(ctx context.Context) (*usecase.OrderListOutput, error) {
	orders, err := srv.orderRepo.ListOrders(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	stats, err := srv.orderRepo.GetOrderStats(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &usecase.OrderListOutput{Orders: orders, Stats: stats}, nil
}

// GetOrder returns one order with its items.
func (srv *adminService) GetOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	order, err := srv.orderRepo.FindOrderByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.WithStack(err)
	}

	return order, nil
}

// UpdateStatus sets the fulfillment status. When it actually changes and the
// customer left an email, a status update is dispatched in the background.
func (srv *adminService) UpdateStatus(ctx context.Context, id uuid.UUID, rawStatus string) (*entity.Order, error) {
	if strings.TrimSpace(rawStatus) == "" {
		return nil, domainerrors.ErrStatusRequired
	}

	status, ok := entity.ParseOrderStatus(rawStatus)
	if !ok {
		return nil, domainerrors.ErrInvalidStatus
	}

	current, err := srv.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	order, err := srv.orderRepo.UpdateOrderStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.WithStack(err)
	}

	attrs := []any{
		slog.String("friendly_id", order.FriendlyID),
		slog.String("from", current.Status.String()),
		slog.String("to", status.String()),
	}
	if claims, ok := deliverycontext.GetAdminClaims(ctx); ok {
		attrs = append(attrs, slog.String("admin_session", claims.ID))
	}
	srv.log(ctx).Info("Order status updated", attrs...)

	if current.Status != status && order.HasEmail() {
		srv.dispatchStatusChange(ctx, order, status)
	}

	return order, nil
}

func (srv *adminService) dispatchStatusChange(ctx context.Context, order *entity.Order, status entity.OrderStatus) {
	event := &service.OrderEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		EventID:    uuid.NewString(),
		Kind:       service.OrderEventStatusChanged,
		OrderID:    order.ID.String(),
		FriendlyID: order.FriendlyID,
		Status:     status.String(),
	}
	logger := srv.log(ctx)
	detached := context.WithoutCancel(ctx)

	srv.async(func() {
		publishCtx, cancel := context.WithTimeout(detached, lifecycle.NotificationTimeout)
		defer cancel()

		if err := srv.publisher.PublishOrderEvent(publishCtx, event); err != nil {
			logger.Error("Failed to dispatch status update",
				slog.String("friendly_id", event.FriendlyID),
				slog.Any("error", err),
			)
		}
	})
}
