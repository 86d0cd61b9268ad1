package model

import (
	"time"

	"github.com/google/uuid"
)

// PayoutModel mirrors the 'payouts' table. Windows are half-open
// [starting_from, until) and contiguous per vendor.
type PayoutModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v7()"`
	VendorUserID uuid.UUID `gorm:"type:uuid;not null;index"`
	Amount       int64     `gorm:"not null"`
	StartingFrom time.Time `gorm:"not null"`
	Until        time.Time `gorm:"not null"`
	TransferID   string    `gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (PayoutModel) TableName() string {
	return "payouts"
}
