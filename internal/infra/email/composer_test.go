package email

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"stampshop/config"
	"stampshop/internal/domain/entity"
	"stampshop/internal/domain/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOrder(method entity.DeliveryMethod) *entity.Order {
	return &entity.Order{
		ID:             uuid.New(),
		FriendlyID:     "SS-AB12CD",
		CustomerName:   "Jane <Doe>",
		CustomerEmail:  "jane@example.com",
		CustomerPhone:  "+971501234567",
		DeliveryMethod: method,
		Address:        "Villa 12, Jumeirah 1",
		TotalPrice:     decimal.NewFromInt(347),
		CreatedAt:      time.Date(2026, 3, 14, 8, 30, 0, 0, time.UTC),
		Items: []*entity.OrderItem{
			{
				StampConfiguration: entity.StampConfiguration{Shape: entity.ShapeRound, Color: entity.ColorBlue, CompanyName: "Acme LLC", HasLogo: true},
				Price:              decimal.NewFromInt(198),
			},
			{
				StampConfiguration: entity.StampConfiguration{Shape: entity.ShapeSquare, Color: entity.ColorBlack},
				Price:              decimal.NewFromInt(149),
			},
		},
	}
}

func newTestComposer(t *testing.T) *composer {
	t.Helper()

	c, err := newComposer("https://shop.example.com", "Max Metro Station, Dubai")
	require.NoError(t, err)
	c.now = func() time.Time { return time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC) }

	return c
}

func TestComposer_OrderConfirmation_Delivery(t *testing.T) {
	c := newTestComposer(t)

	email, err := c.OrderConfirmation(newTestOrder(entity.DeliveryMethodDelivery))
	require.NoError(t, err)

	assert.Equal(t, "jane@example.com", email.To)
	assert.Equal(t, "Order Confirmed - SS-AB12CD", email.Subject)
	assert.Equal(t, "Your order SS-AB12CD has been confirmed. Total: AED 347.00", email.Text)
	assert.Contains(t, email.HTML, "Item 1: round Stamp")
	assert.Contains(t, email.HTML, "Item 2: square Stamp")
	assert.Contains(t, email.HTML, "AED 198.00")
	assert.Contains(t, email.HTML, "Villa 12, Jumeirah 1")
	assert.Contains(t, email.HTML, "https://shop.example.com/track")
	assert.Contains(t, email.HTML, "14 March 2026, 12:30")
	assert.Contains(t, email.HTML, "Jane &lt;Doe&gt;")
	assert.NotContains(t, email.HTML, "Max Metro Station")
}

func TestComposer_OrderConfirmation_Pickup(t *testing.T) {
	c := newTestComposer(t)

	email, err := c.OrderConfirmation(newTestOrder(entity.DeliveryMethodPickup))
	require.NoError(t, err)
	assert.Contains(t, email.HTML, "Max Metro Station, Dubai")
	assert.NotContains(t, email.HTML, "Villa 12")
}

func TestComposer_PaymentReceipt(t *testing.T) {
	c := newTestComposer(t)

	email, err := c.PaymentReceipt(newTestOrder(entity.DeliveryMethodPickup), "cs_test_123")
	require.NoError(t, err)
	assert.Equal(t, "Payment Receipt - SS-AB12CD", email.Subject)
	assert.Contains(t, email.HTML, "Payment ID: cs_test_123")
	assert.Contains(t, email.HTML, "AED 347.00")
}

func TestComposer_StatusUpdate(t *testing.T) {
	tests := []struct {
		status entity.OrderStatus
		color  string
	}{
		{status: entity.OrderStatusProcessing, color: "#007bff"},
		{status: entity.OrderStatusDelivered, color: "#28a745"},
		{status: entity.OrderStatusCancelled, color: "#dc3545"},
		{status: entity.OrderStatusReady, color: "#6c757d"},
	}

	c := newTestComposer(t)
	for _, tt := range tests {
		t.Run(tt.status.String(), func(t *testing.T) {
			email, err := c.StatusUpdate(newTestOrder(entity.DeliveryMethodPickup), tt.status)
			require.NoError(t, err)
			assert.Equal(t, "Order Update: "+tt.status.String()+" - SS-AB12CD", email.Subject)
			assert.Contains(t, email.HTML, tt.color)
			assert.Contains(t, email.Text, tt.status.CustomerMessage())
		})
	}

	email, err := c.StatusUpdate(newTestOrder(entity.DeliveryMethodPickup), entity.OrderStatusDelivered)
	require.NoError(t, err)
	assert.Contains(t, email.Text, "Your order has been delivered! Thank you for choosing Supreme Stamps.")
	assert.Contains(t, email.HTML, "Your order has been delivered! Thank you for choosing Supreme Stamps.")
}

func TestNewEmailSender_DisabledWithoutCredentials(t *testing.T) {
	cfg := &config.Config{Mailgun: &config.MailgunConfig{}}

	sender := NewEmailSender(cfg, slog.New(slog.DiscardHandler))
	_, err := sender.Send(context.Background(), &service.Email{To: "jane@example.com", Subject: "hi"})
	assert.ErrorIs(t, err, ErrEmailDisabled)
}
