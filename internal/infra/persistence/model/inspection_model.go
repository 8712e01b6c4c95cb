package model

import (
	"time"

	"github.com/google/uuid"
)

// InspectionModel is the GORM-specific struct for the 'inspections' table.
// The property association cascades on delete; the agent reference is nulled.
type InspectionModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	PropertyID  uuid.UUID  `gorm:"type:uuid;not null;index"`
	RequesterID uuid.UUID  `gorm:"type:uuid;not null;index"`
	AgentID     *uuid.UUID `gorm:"type:uuid;index"`

	PreferredDate time.Time  `gorm:"type:date;not null"`
	PreferredTime string     `gorm:"type:varchar(5);not null"`
	ConfirmedAt   *time.Time `gorm:""`

	Status string `gorm:"type:varchar(10);not null;default:'PENDING'"`

	RequesterNotes string `gorm:"type:text"`
	AgentNotes     string `gorm:"type:text"`

	ConfirmedByTenant bool `gorm:"not null;default:false"`
	ConfirmedByAgent  bool `gorm:"not null;default:false"`

	CreatedAt time.Time
	UpdatedAt time.Time

	Property *PropertyModel `gorm:"foreignKey:PropertyID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (InspectionModel) TableName() string {
	return "inspections"
}
