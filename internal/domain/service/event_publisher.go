package service

import (
	"context"
)

// AddressEventType names what happened to an address.
type AddressEventType string

const (
	AddressCreated AddressEventType = "address.created"
	AddressUpdated AddressEventType = "address.updated"
	AddressDeleted AddressEventType = "address.deleted"
)

// AddressEvent is published after an address mutation is committed.
type AddressEvent struct {
	RequestID  string           `json:"request_id,omitempty"` // For distributed tracing
	EventID    string           `json:"event_id"`
	Type       AddressEventType `json:"type"`
	AccountID  string           `json:"account_id"`
	ContactID  string           `json:"contact_id"`
	AddressID  string           `json:"address_id"`
	OccurredAt string           `json:"occurred_at"` // RFC 3339
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishAddressEvent publishes an address lifecycle event
	PublishAddressEvent(ctx context.Context, event *AddressEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
