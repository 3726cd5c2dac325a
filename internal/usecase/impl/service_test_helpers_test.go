package impl

import (
	"io"
	"log/slog"

	"stampshop/config"
	"stampshop/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		App:     &config.AppConfig{BaseURL: "https://shop.example"},
		Storage: &config.StorageConfig{MaxUploadBytes: 1024},
	}
}

func newTestOrder(email string) *entity.Order {
	orderID := uuid.New()

	return &entity.Order{
		ID:             orderID,
		FriendlyID:     "SS-7K2Q9X",
		CustomerName:   "Aisha Khan",
		CustomerEmail:  email,
		CustomerPhone:  "0501234567",
		DeliveryMethod: entity.DeliveryMethodPickup,
		TotalPrice:     decimal.NewFromInt(198),
		Status:         entity.OrderStatusPending,
		PaymentStatus:  entity.PaymentStatusPending,
		Items: []*entity.OrderItem{
			{
				ID:      uuid.New(),
				OrderID: orderID,
				StampConfiguration: entity.StampConfiguration{
					Shape:       entity.ShapeRound,
					Color:       entity.ColorBlue,
					CompanyName: "Acme Trading",
					HasLogo:     true,
				},
				Price: decimal.NewFromInt(198),
			},
		},
	}
}
