// Package email renders and sends the customer-facing order emails.
package email

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"time"

	"stampshop/config"
	"stampshop/internal/domain/entity"
	"stampshop/internal/domain/service"
	"stampshop/internal/errors"

	"github.com/shopspring/decimal"
)

//go:embed templates/*.html
var templateFS embed.FS

const defaultStatusColor = "#6c757d"

var statusColors = map[entity.OrderStatus]string{
	entity.OrderStatusProcessing: "#007bff",
	entity.OrderStatusDelivered:  "#28a745",
	entity.OrderStatusCancelled:  "#dc3545",
}

type composer struct {
	tmpl           *template.Template
	trackURL       string
	pickupLocation string
	location       *time.Location
	now            func() time.Time
}

// NewComposer parses the embedded templates once at startup.
func NewComposer(cfg *config.Config) (service.EmailComposer, error) {
	return newComposer(cfg.App.BaseURL, cfg.App.PickupLocation)
}

func newComposer(baseURL, pickupLocation string) (*composer, error) {
	tmpl, err := template.New("email").Funcs(template.FuncMap{
		"money": formatAED,
		"inc":   func(i int) int { return i + 1 },
	}).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse email templates")
	}

	// Gulf Standard Time has no DST, so a fixed zone avoids depending on tzdata.
	return &composer{
		tmpl:           tmpl,
		trackURL:       baseURL + "/track",
		pickupLocation: pickupLocation,
		location:       time.FixedZone("GST", 4*60*60),
		now:            time.Now,
	}, nil
}

type baseData struct {
	Title    string
	Order    *entity.Order
	TrackURL string
	Year     int
}

// OrderConfirmation renders the email sent once payment is confirmed.
func (c *composer) OrderConfirmation(order *entity.Order) (*service.Email, error) {
	data := struct {
		baseData
		PlacedAt       string
		PickupLocation string
	}{
		baseData:       c.base("Order Confirmation - "+order.FriendlyID, order),
		PlacedAt:       order.CreatedAt.In(c.location).Format("2 January 2006, 15:04"),
		PickupLocation: c.pickupLocation,
	}

	html, err := c.render("order_confirmation.html", data)
	if err != nil {
		return nil, err
	}

	return &service.Email{
		To:      order.CustomerEmail,
		Subject: "Order Confirmed - " + order.FriendlyID,
		Text:    fmt.Sprintf("Your order %s has been confirmed. Total: %s", order.FriendlyID, formatAED(order.TotalPrice)),
		HTML:    html,
	}, nil
}

// PaymentReceipt renders the receipt that carries the processor payment id.
func (c *composer) PaymentReceipt(order *entity.Order, paymentID string) (*service.Email, error) {
	data := struct {
		baseData
		PaymentID string
	}{
		baseData:  c.base("Payment Receipt - "+order.FriendlyID, order),
		PaymentID: paymentID,
	}

	html, err := c.render("payment_receipt.html", data)
	if err != nil {
		return nil, err
	}

	return &service.Email{
		To:      order.CustomerEmail,
		Subject: "Payment Receipt - " + order.FriendlyID,
		Text:    fmt.Sprintf("Payment received for order %s. Amount: %s. Payment ID: %s", order.FriendlyID, formatAED(order.TotalPrice), paymentID),
		HTML:    html,
	}, nil
}

// StatusUpdate renders the admin-triggered status change email.
func (c *composer) StatusUpdate(order *entity.Order, status entity.OrderStatus) (*service.Email, error) {
	color, ok := statusColors[status]
	if !ok {
		color = defaultStatusColor
	}

	message := status.CustomerMessage()
	data := struct {
		baseData
		Status      entity.OrderStatus
		StatusColor template.CSS
		Message     string
	}{
		baseData:    c.base("Order Update - "+order.FriendlyID, order),
		Status:      status,
		StatusColor: template.CSS(color), //nolint:gosec // fixed palette above
		Message:     message,
	}

	html, err := c.render("status_update.html", data)
	if err != nil {
		return nil, err
	}

	return &service.Email{
		To:      order.CustomerEmail,
		Subject: fmt.Sprintf("Order Update: %s - %s", status, order.FriendlyID),
		Text:    fmt.Sprintf("Your order %s is now %s. %s", order.FriendlyID, status, message),
		HTML:    html,
	}, nil
}

func (c *composer) base(title string, order *entity.Order) baseData {
	return baseData{
		Title:    title,
		Order:    order,
		TrackURL: c.trackURL,
		Year:     c.now().In(c.location).Year(),
	}
}

func (c *composer) render(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := c.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return "", errors.Wrapf(err, "failed to render %s", name)
	}

	return buf.String(), nil
}

func formatAED(amount decimal.Decimal) string {
	return "AED " + amount.StringFixed(2)
}
