package impl

import (
	"context"
	"testing"

	"stampshop/internal/domain/entity"
	domainerrors "stampshop/internal/domain/errors"
	"stampshop/internal/domain/repository"
	mockRepo "stampshop/internal/mocks/repository"
	mockSvc "stampshop/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type trackingServiceFixtures struct {
	service   *trackingService
	orderRepo *mockRepo.MockOrderRepository
	qr        *mockSvc.MockQRCodeService
}

func createTestTrackingService(t *testing.T) trackingServiceFixtures {
	orderRepo := mockRepo.NewMockOrderRepository(t)
	qr := mockSvc.NewMockQRCodeService(t)

	srv := NewTrackingService(TrackingServiceParams{
		OrderRepo: orderRepo,
		QRService: qr,
		Logger:    newDiscardLogger(),
	}).(*trackingService)

	return trackingServiceFixtures{service: srv, orderRepo: orderRepo, qr: qr}
}

func TestTrackingService_TrackOrder_Success(t *testing.T) {
	fx := createTestTrackingService(t)
	ctx := context.Background()
	order := newTestOrder("")
	order.Status = entity.OrderStatusReady

	fx.orderRepo.EXPECT().FindOrderByFriendlyID(ctx, "SS-7K2Q9X").Return(order, nil)

	tracked, err := fx.service.TrackOrder(ctx, "ss-7k2q9x", "050 123 4567")
	require.NoError(t, err)
	assert.Equal(t, "SS-7K2Q9X", tracked.FriendlyID)
	assert.Equal(t, entity.OrderStatusReady, tracked.Status)
	assert.Equal(t, entity.DeliveryMethodPickup, tracked.DeliveryMethod)
}

func TestTrackingService_TrackOrder_CountryCodeIsNotReconciled(t *testing.T) {
	fx := createTestTrackingService(t)
	ctx := context.Background()
	order := newTestOrder("")
	order.CustomerPhone = "+971501234567"

	fx.orderRepo.EXPECT().FindOrderByFriendlyID(ctx, "SS-7K2Q9X").Return(order, nil)

	_, err := fx.service.TrackOrder(ctx, "SS-7K2Q9X", "0501234567")
	assert.ErrorIs(t, err, domainerrors.ErrPhoneMismatch)
}

func TestTrackingService_TrackOrder_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("missing input", func(t *testing.T) {
		fx := createTestTrackingService(t)

		_, err := fx.service.TrackOrder(ctx, "SS-7K2Q9X", " ")
		assert.ErrorIs(t, err, domainerrors.ErrTrackingInputRequired)

		_, err = fx.service.TrackOrder(ctx, "", "0501234567")
		assert.ErrorIs(t, err, domainerrors.ErrTrackingInputRequired)
	})

	t.Run("unknown order", func(t *testing.T) {
		fx := createTestTrackingService(t)
		fx.orderRepo.EXPECT().FindOrderByFriendlyID(ctx, "SS-000000").Return(nil, repository.ErrOrderNotFound)

		_, err := fx.service.TrackOrder(ctx, "SS-000000", "0501234567")
		assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
	})
}

func TestTrackingService_TrackingQR(t *testing.T) {
	ctx := context.Background()

	t.Run("well formed id", func(t *testing.T) {
		fx := createTestTrackingService(t)
		fx.qr.EXPECT().GenerateTrackingQR("SS-7K2Q9X").Return([]byte("png"), nil)

		png, err := fx.service.TrackingQR(ctx, "ss-7k2q9x")
		require.NoError(t, err)
		assert.Equal(t, []byte("png"), png)
	})

	t.Run("malformed id", func(t *testing.T) {
		fx := createTestTrackingService(t)

		_, err := fx.service.TrackingQR(ctx, "order-1")
		assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
	})
}

func TestNormalizePhone(t *testing.T) {
	cases := map[string]string{
		"+971 50 123 4567": "+971501234567",
		"050-123-4567":     "0501234567",
		"(050) 123 4567":   "0501234567",
		"05+01":            "0501",
		"":                 "",
	}

	for in, want := range cases {
		assert.Equal(t, want, NormalizePhone(in), in)
	}
}
