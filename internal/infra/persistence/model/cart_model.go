package model

import (
	"time"

	"github.com/google/uuid"
)

// CartLineModel mirrors the 'cart_lines' table. PostgreSQL generates UUIDs via
// uuid_generate_v7(). OptionIDs holds the canonical JSON of the sorted option
// id set; the composite unique index is what the repeat-add upsert targets.
type CartLineModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v7()"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_cart_lines_selection"`
	ProductID     int64     `gorm:"not null;uniqueIndex:idx_cart_lines_selection"`
	OptionIDs     string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_cart_lines_selection"`
	Quantity      int32     `gorm:"not null"`
	Price         int64     `gorm:"not null"`
	SavedForLater bool      `gorm:"not null;default:false;uniqueIndex:idx_cart_lines_selection"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (CartLineModel) TableName() string {
	return "cart_lines"
}
