package model

import "time"

// WebhookEventModel mirrors the 'webhook_events' table, the processed-event
// ledger that makes webhook handling idempotent across gateway redeliveries.
type WebhookEventModel struct {
	ID          string    `gorm:"type:varchar(255);primaryKey"`
	ProcessedAt time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (WebhookEventModel) TableName() string {
	return "webhook_events"
}
