// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"github.com/shopspring/decimal"
)

// --- Input DTOs ---

// OrderItemInput is one cart line as submitted by the storefront.
type OrderItemInput struct {
	Shape             string          `json:"shape" validate:"required,oneof=round square rectangle oval"`
	Color             string          `json:"color" validate:"required,oneof=black blue red green"`
	CompanyName       string          `json:"companyName" validate:"required"`
	CompanyNameAr     string          `json:"companyNameAr"`
	LicenseNumber     string          `json:"licenseNumber"`
	ShowLicenseNumber bool            `json:"showLicenseNumber"`
	Emirate           string          `json:"emirate"`
	HasLogo           bool            `json:"hasLogo"`
	TradeLicenseURL   string          `json:"tradeLicenseUrl" validate:"omitempty,url"`
	Price             decimal.Decimal `json:"price"`
}

// SubmitOrderInput defines the data required to place an order.
type SubmitOrderInput struct {
	CustomerName   string           `json:"customerName" validate:"required"`
	CustomerEmail  string           `json:"customerEmail" validate:"omitempty,email"`
	CustomerPhone  string           `json:"customerPhone" validate:"required,min=5"`
	DeliveryMethod string           `json:"deliveryMethod" validate:"required,oneof=DELIVERY PICKUP"`
	Address        string           `json:"address" validate:"required_if=DeliveryMethod DELIVERY"`
	Items          []OrderItemInput `json:"items" validate:"required,min=1,dive"`
	TotalPrice     decimal.Decimal  `json:"totalPrice"`
}

// --- Output DTOs ---

// SubmitOrderOutput carries the customer-facing id of the new order.
type SubmitOrderOutput struct {
	OrderID string `json:"orderId"`
}

// OrderUsecase defines the order submission operations.
type OrderUsecase interface {
	// SubmitOrder validates, prices and persists an order. No email is sent.
	SubmitOrder(ctx context.Context, input *SubmitOrderInput) (*SubmitOrderOutput, error)
}
