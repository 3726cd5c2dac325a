package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartItem is a priced stamp waiting in the customer's cart.
type CartItem struct {
	ID            uuid.UUID          `json:"id"`
	Configuration StampConfiguration `json:"configuration"`
	Price         decimal.Decimal    `json:"price"`
}
