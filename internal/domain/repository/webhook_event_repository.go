package repository

import "context"

// WebhookEventRepository is the processed-event ledger backing webhook
// idempotency. Gateways redeliver events; an event id present in the ledger
// has already been fully handled.
type WebhookEventRepository interface {
	// Exists reports whether the event id has been processed before.
	Exists(ctx context.Context, eventID string) (bool, error)

	// MarkProcessed records the event id. Inserting an id twice is not an
	// error; the ledger keeps one row per id.
	MarkProcessed(ctx context.Context, eventID string) error
}
