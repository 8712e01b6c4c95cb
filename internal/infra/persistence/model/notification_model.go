package model

import (
	"time"

	"github.com/google/uuid"
)

// NotificationModel is the GORM-specific struct for the 'notifications' table.
// The property/inspection/deal references are intentionally lossy history:
// each is nulled when its target is deleted.
type NotificationModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	AccountID uuid.UUID `gorm:"type:uuid;not null;index"`
	Type      string    `gorm:"type:varchar(30);not null"`
	Title     string    `gorm:"type:varchar(255);not null"`
	Body      string    `gorm:"type:text;not null"`

	PropertyID   *uuid.UUID `gorm:"type:uuid"`
	InspectionID *uuid.UUID `gorm:"type:uuid"`
	DealID       *uuid.UUID `gorm:"type:uuid"`

	IsRead bool       `gorm:"not null;default:false"`
	ReadAt *time.Time `gorm:""`

	CreatedAt time.Time

	Property   *PropertyModel   `gorm:"foreignKey:PropertyID;constraint:OnDelete:SET NULL"`
	Inspection *InspectionModel `gorm:"foreignKey:InspectionID;constraint:OnDelete:SET NULL"`
	Deal       *DealModel       `gorm:"foreignKey:DealID;constraint:OnDelete:SET NULL"`
}

// TableName explicitly sets the table name for GORM.
func (NotificationModel) TableName() string {
	return "notifications"
}

// SavedPropertyModel is the GORM-specific struct for the 'saved_properties'
// table. The (account, property) pair is unique at the storage level.
type SavedPropertyModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	AccountID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_account_saved_property"`
	PropertyID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_account_saved_property"`
	CreatedAt  time.Time

	Property *PropertyModel `gorm:"foreignKey:PropertyID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (SavedPropertyModel) TableName() string {
	return "saved_properties"
}
