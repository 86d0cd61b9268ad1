package model

import (
	"time"

	"github.com/google/uuid"
)

// OrderModel mirrors the 'orders' table. One checkout inserts one row per
// vendor; the shared stripe_session_id ties the group together for webhooks.
type OrderModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v7()"`
	UserID          uuid.UUID `gorm:"type:uuid;not null;index"`
	VendorUserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Status          string    `gorm:"type:varchar(20);not null;default:'draft'"`
	TotalPrice      int64     `gorm:"not null"`
	StripeSessionID *string   `gorm:"type:varchar(255);index"`
	PaymentIntent   *string   `gorm:"type:varchar(255);index"`
	ProcessingFee   *int64
	PlatformFee     *int64
	VendorSubtotal  *int64
	SettledAt       *time.Time `gorm:"index"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Items []OrderItemModel `gorm:"foreignKey:OrderID"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel mirrors the 'order_items' table, freezing the cart line's
// snapshotted unit price at checkout time.
type OrderItemModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v7()"`
	OrderID   uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductID int64     `gorm:"not null"`
	OptionIDs string    `gorm:"type:varchar(255);not null"`
	Quantity  int32     `gorm:"not null"`
	Price     int64     `gorm:"not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}
