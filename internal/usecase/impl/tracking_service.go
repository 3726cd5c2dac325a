package impl

import (
	"context"
	"crypto/subtle"
	"log/slog"
	"strings"

	deliverycontext "stampshop/internal/delivery/context"
	"stampshop/internal/domain/entity"
	domainerrors "stampshop/internal/domain/errors"
	"stampshop/internal/domain/repository"
	"stampshop/internal/domain/service"
	"stampshop/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// trackingService implements the TrackingUsecase interface.
type trackingService struct {
	orderRepo repository.OrderRepository
	qrService service.QRCodeService
	logger    *slog.Logger
}

// TrackingServiceParams holds dependencies for TrackingService, injected by Fx.
type TrackingServiceParams struct {
	fx.In

	OrderRepo repository.OrderRepository
	QRService service.QRCodeService
	Logger    *slog.Logger
}

// NewTrackingService is the constructor for trackingService.
func NewTrackingService(params TrackingServiceParams) usecase.TrackingUsecase {
	return &trackingService{
		orderRepo: params.OrderRepo,
		qrService: params.QRService,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *trackingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// TrackOrder looks an order up by friendly id and releases it only to the
// phone number it was placed with.
func (srv *trackingService) TrackOrder(ctx context.Context, friendlyID, phone string) (*entity.TrackedOrder, error) {
	friendlyID = entity.NormalizeFriendlyID(friendlyID)
	if friendlyID == "" || strings.TrimSpace(phone) == "" {
		return nil, domainerrors.ErrTrackingInputRequired
	}

	order, err := srv.orderRepo.FindOrderByFriendlyID(ctx, friendlyID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		srv.log(ctx).Error("Tracking lookup failed", slog.String("friendly_id", friendlyID), slog.Any("error", err))

		return nil, errors.WithStack(err)
	}

	if !phonesMatch(order.CustomerPhone, phone) {
		srv.log(ctx).Warn("Tracking phone mismatch", slog.String("friendly_id", friendlyID))

		return nil, domainerrors.ErrPhoneMismatch
	}

	return &entity.TrackedOrder{
		FriendlyID:     order.FriendlyID,
		Status:         order.Status,
		CreatedAt:      order.CreatedAt,
		DeliveryMethod: order.DeliveryMethod,
	}, nil
}

// TrackingQR renders the tracking deep link for a well-formed friendly id.
func (srv *trackingService) TrackingQR(_ context.Context, friendlyID string) ([]byte, error) {
	friendlyID = entity.NormalizeFriendlyID(friendlyID)
	if !entity.IsFriendlyID(friendlyID) {
		return nil, domainerrors.ErrOrderNotFound
	}

	png, err := srv.qrService.GenerateTrackingQR(friendlyID)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return png, nil
}

// NormalizePhone keeps digits and a leading '+'. No country-code
// reconciliation is attempted, so "+971501234567" and "0501234567" differ.
func NormalizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '+' && b.Len() == 0:
			b.WriteRune(r)
		}
	}

	return b.String()
}

func phonesMatch(stored, given string) bool {
	a, b := NormalizePhone(stored), NormalizePhone(given)
	if a == "" || b == "" {
		return false
	}

	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
