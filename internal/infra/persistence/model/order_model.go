package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderModel mirrors the 'orders' table. IDs are generated by the application (UUIDv7)
// so inserts never need a RETURNING clause.
// It is an exported type so it can be used by the GORM Gen tool from other packages.
type OrderModel struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	FriendlyID     string          `gorm:"type:varchar(16);uniqueIndex;not null"`
	CustomerName   string          `gorm:"type:varchar(255);not null"`
	CustomerEmail  *string         `gorm:"type:varchar(255)"`
	CustomerPhone  string          `gorm:"type:varchar(50);not null"`
	DeliveryMethod string          `gorm:"type:varchar(20);not null"`
	Address        *string         `gorm:"type:text"`
	TotalPrice     decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	Status         string          `gorm:"type:varchar(20);not null;index"`
	PaymentStatus  string          `gorm:"type:varchar(20);not null"`
	PaymentID      *string         `gorm:"type:varchar(255);index"`
	CreatedAt      time.Time       `gorm:"index"`
	UpdatedAt      time.Time

	Items []OrderItemModel `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel mirrors the 'order_items' table. Rows are written once with their order.
type OrderItemModel struct {
	ID                uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID           uuid.UUID       `gorm:"type:uuid;not null;index"`
	Position          int             `gorm:"not null"`
	Shape             string          `gorm:"type:varchar(20);not null"`
	Color             string          `gorm:"type:varchar(20);not null"`
	CompanyName       *string         `gorm:"type:varchar(255)"`
	CompanyNameAr     *string         `gorm:"type:varchar(255)"`
	LicenseNumber     *string         `gorm:"type:varchar(100)"`
	ShowLicenseNumber bool            `gorm:"not null"`
	Emirate           *string         `gorm:"type:varchar(50)"`
	HasLogo           bool            `gorm:"not null"`
	TradeLicenseURL   *string         `gorm:"type:text"`
	Price             decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	CreatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}

// All lists every model for migrations and code generation.
func All() []any {
	return []any{
		&OrderModel{},
		&OrderItemModel{},
	}
}
