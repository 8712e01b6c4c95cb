package model

import (
	"time"

	"github.com/google/uuid"
)

// ReviewModel is the GORM-specific struct for the 'reviews' table.
// Partial unique indexes make duplicate (reviewer, target) pairs a
// storage-level conflict, which keeps review creation race-safe.
type ReviewModel struct {
	ID             uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ReviewerID     uuid.UUID  `gorm:"type:uuid;not null;index;uniqueIndex:idx_reviewer_property,where:property_id IS NOT NULL;uniqueIndex:idx_reviewer_user,where:reviewed_user_id IS NOT NULL"`
	Type           string     `gorm:"type:varchar(10);not null"`
	PropertyID     *uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_reviewer_property,where:property_id IS NOT NULL"`
	ReviewedUserID *uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_reviewer_user,where:reviewed_user_id IS NOT NULL"`

	Rating  int    `gorm:"not null"`
	Title   string `gorm:"type:varchar(255)"`
	Comment string `gorm:"type:text;not null"`

	IsVerifiedStay bool   `gorm:"not null;default:false"`
	IsFlagged      bool   `gorm:"not null;default:false"`
	FlagReason     string `gorm:"type:text"`

	CreatedAt time.Time
	UpdatedAt time.Time

	Property *PropertyModel `gorm:"foreignKey:PropertyID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (ReviewModel) TableName() string {
	return "reviews"
}
