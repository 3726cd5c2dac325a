package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus is the fulfillment axis of an order.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "PENDING"
	OrderStatusPaid       OrderStatus = "PAID"
	OrderStatusProcessing OrderStatus = "PROCESSING"
	OrderStatusReady      OrderStatus = "READY"
	OrderStatusDelivered  OrderStatus = "DELIVERED"
	OrderStatusCancelled  OrderStatus = "CANCELLED"
)

// OrderStatuses lists every fulfillment status in display order.
var OrderStatuses = []OrderStatus{
	OrderStatusPending,
	OrderStatusPaid,
	OrderStatusProcessing,
	OrderStatusReady,
	OrderStatusDelivered,
	OrderStatusCancelled,
}

var statusMessages = map[OrderStatus]string{
	OrderStatusPending:    "Your order is pending and will be processed shortly.",
	OrderStatusPaid:       "We have received your payment. Thank you!",
	OrderStatusProcessing: "Your order is now being processed.",
	OrderStatusReady:      "Your order is ready! You can pick it up or expect delivery soon.",
	OrderStatusDelivered:  "Your order has been delivered! Thank you for choosing Supreme Stamps.",
	OrderStatusCancelled:  "Your order has been cancelled. Contact us if you have any questions.",
}

// String returns the string representation of the OrderStatus.
func (s OrderStatus) String() string {
	return string(s)
}

// IsValid checks if the OrderStatus is a valid value.
func (s OrderStatus) IsValid() bool {
	_, ok := statusMessages[s]

	return ok
}

// CustomerMessage is the sentence sent to the customer when the order enters this status.
func (s OrderStatus) CustomerMessage() string {
	return statusMessages[s]
}

// ParseOrderStatus accepts a status name in any letter case.
func ParseOrderStatus(raw string) (OrderStatus, bool) {
	status := OrderStatus(strings.ToUpper(strings.TrimSpace(raw)))

	return status, status.IsValid()
}

// PaymentStatus is the payment axis of an order, independent of OrderStatus.
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusExpired PaymentStatus = "expired"
	PaymentStatusFailed  PaymentStatus = "failed"
)

// String returns the string representation of the PaymentStatus.
func (s PaymentStatus) String() string {
	return string(s)
}

// DeliveryMethod is how the customer receives the stamps.
type DeliveryMethod string

const (
	DeliveryMethodDelivery DeliveryMethod = "DELIVERY"
	DeliveryMethodPickup   DeliveryMethod = "PICKUP"
)

// String returns the string representation of the DeliveryMethod.
func (m DeliveryMethod) String() string {
	return string(m)
}

// Order is the aggregate root of the shop.
type Order struct {
	ID             uuid.UUID       `json:"id"`
	FriendlyID     string          `json:"friendlyId"`
	CustomerName   string          `json:"customerName"`
	CustomerEmail  string          `json:"customerEmail,omitempty"`
	CustomerPhone  string          `json:"customerPhone"`
	DeliveryMethod DeliveryMethod  `json:"deliveryMethod"`
	Address        string          `json:"address,omitempty"`
	TotalPrice     decimal.Decimal `json:"totalPrice"`
	Status         OrderStatus     `json:"status"`
	PaymentStatus  PaymentStatus   `json:"paymentStatus"`
	PaymentID      string          `json:"paymentId,omitempty"`
	Items          []*OrderItem    `json:"items"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

// HasEmail reports whether the customer left an address to notify.
func (o *Order) HasEmail() bool {
	return strings.TrimSpace(o.CustomerEmail) != ""
}

// IsDelivery reports whether the order is shipped to the customer.
func (o *Order) IsDelivery() bool {
	return o.DeliveryMethod == DeliveryMethodDelivery
}

// OrderItem is a priced snapshot of one stamp configuration inside an order.
type OrderItem struct {
	ID      uuid.UUID `json:"id"`
	OrderID uuid.UUID `json:"orderId"`
	StampConfiguration
	Price decimal.Decimal `json:"price"`
}

// OrderStats summarises all orders for the admin dashboard.
type OrderStats struct {
	Total   int64           `json:"total"`
	Pending int64           `json:"pending"`
	Revenue decimal.Decimal `json:"revenue"`
}

// TrackedOrder is the only view of an order exposed to the tracking page.
type TrackedOrder struct {
	FriendlyID     string         `json:"friendlyId"`
	Status         OrderStatus    `json:"status"`
	CreatedAt      time.Time      `json:"createdAt"`
	DeliveryMethod DeliveryMethod `json:"deliveryMethod"`
}
