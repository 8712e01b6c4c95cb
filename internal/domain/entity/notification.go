package entity

import (
	"time"

	"github.com/google/uuid"
)

// NotificationType enumerates the seven domain events that produce a
// notification record.
type NotificationType string

const (
	NotificationInspectionRequest   NotificationType = "INSPECTION_REQUEST"
	NotificationInspectionConfirmed NotificationType = "INSPECTION_CONFIRMED"
	NotificationMessageReceived     NotificationType = "MESSAGE_RECEIVED"
	NotificationDealInitiated       NotificationType = "DEAL_INITIATED"
	NotificationPaymentReceived     NotificationType = "PAYMENT_RECEIVED"
	NotificationReviewReceived      NotificationType = "REVIEW_RECEIVED"
	NotificationPropertyVerified    NotificationType = "PROPERTY_VERIFIED"
)

// String returns the string representation of the NotificationType.
func (t NotificationType) String() string {
	return string(t)
}

// IsValid checks if the NotificationType is a valid value.
func (t NotificationType) IsValid() bool {
	switch t {
	case NotificationInspectionRequest, NotificationInspectionConfirmed,
		NotificationMessageReceived, NotificationDealInitiated,
		NotificationPaymentReceived, NotificationReviewReceived,
		NotificationPropertyVerified:
		return true
	default:
		return false
	}
}

// Notification is a persisted record of a domain event addressed to one
// account. The Property/Inspection/Deal references are weak: they are
// nulled when the target is deleted, leaving the notification as lossy
// history rather than an ownership link.
type Notification struct {
	ID        uuid.UUID
	AccountID uuid.UUID
	Type      NotificationType
	Title     string
	Body      string

	PropertyID   *uuid.UUID
	InspectionID *uuid.UUID
	DealID       *uuid.UUID

	IsRead bool
	ReadAt *time.Time // Set exactly once, on first read.

	CreatedAt time.Time
}
