package model

import (
	"time"

	"github.com/google/uuid"
)

// VendorModel mirrors the 'vendors' table, keyed by the owning user id.
type VendorModel struct {
	UserID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	StoreName           string    `gorm:"type:varchar(100);not null"`
	Status              string    `gorm:"type:varchar(20);not null;default:'pending';index"`
	StripeAccountID     *string   `gorm:"type:varchar(255)"`
	StripeAccountActive bool      `gorm:"not null;default:false"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// TableName explicitly sets the table name for GORM.
func (VendorModel) TableName() string {
	return "vendors"
}
