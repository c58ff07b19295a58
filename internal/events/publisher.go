package events

import (
	"context"
	"time"
)

// Event types emitted on transaction lifecycle changes.
const (
	EventTransactionCreated = "transaction.created"
	EventTransactionUpdated = "transaction.updated"
	EventTransactionPosted  = "transaction.posted"
	EventTransactionVoided  = "transaction.voided"
)

// TransactionEvent is the payload published on every lifecycle change.
type TransactionEvent struct {
	EventType     string    `json:"eventType"`
	TransactionID string    `json:"transactionID"`
	Kind          string    `json:"kind"`
	State         string    `json:"state"`
	ActorUserID   string    `json:"actorUserID"`
	OccurredAt    time.Time `json:"occurredAt"`
}

// Publisher emits transaction lifecycle events to downstream consumers.
// Publishing is best-effort; callers must not fail the business operation
// when publishing errors.
type Publisher interface {
	Publish(ctx context.Context, event TransactionEvent) error
	Close() error
}

// NoopPublisher discards all events. Used when no broker is configured.
type NoopPublisher struct{}

func (NoopPublisher) Publish(ctx context.Context, event TransactionEvent) error { return nil }

func (NoopPublisher) Close() error { return nil }
