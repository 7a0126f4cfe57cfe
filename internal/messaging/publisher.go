package messaging

import (
	"context"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/finara-labs/finara-backend/internal/domain"
)

// Publisher defines the interface for publishing domain events to the message bus
//
//go:generate mockgen -source=publisher.go -destination=../mocks/publisher.go -package=mocks -mock_names=Publisher=MockPublisher
type Publisher interface {
	// PublishEvent publishes a domain event to the message broker
	PublishEvent(ctx context.Context, event *domain.Event) error
	// Close closes the connection
	Close()
}

// NewEvent creates an event envelope with a time-ordered ID
func NewEvent(eventType domain.EventType, bankAddress string, at time.Time) *domain.Event {
	return &domain.Event{
		ID:          ulid.MustNewDefault(at).String(),
		Type:        eventType,
		BankAddress: domain.NormalizeAddress(bankAddress),
		Data:        map[string]any{},
		Timestamp:   at.UTC(),
	}
}

type noopPublisher struct{}

// NewNoopPublisher creates a publisher that drops every event, used when NATS is not configured
func NewNoopPublisher() Publisher {
	return &noopPublisher{}
}

func (p *noopPublisher) PublishEvent(context.Context, *domain.Event) error {
	return nil
}

func (p *noopPublisher) Close() {}
