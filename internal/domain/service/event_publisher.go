package service

import (
	"context"

	"inndoor/internal/domain/entity"
)

// DomainEvent mirrors a notification emission so external consumers
// (analytics, audit, downstream integrations) can react to marketplace
// activity. It never replaces the persisted Notification record.
type DomainEvent struct {
	RequestID      string                  `json:"request_id,omitempty"` // For distributed tracing.
	NotificationID string                  `json:"notification_id"`
	AccountID      string                  `json:"account_id"` // The account the notification is addressed to.
	Type           entity.NotificationType `json:"type"`
	Title          string                  `json:"title"`
	PropertyID     string                  `json:"property_id,omitempty"`
	InspectionID   string                  `json:"inspection_id,omitempty"`
	DealID         string                  `json:"deal_id,omitempty"`
}

// EventPublisher defines the interface for publishing domain events to a
// message queue.
type EventPublisher interface {
	// PublishDomainEvent publishes a domain event for async processing.
	PublishDomainEvent(ctx context.Context, event *DomainEvent) error

	// Close releases any resources held by the publisher.
	Close() error
}
