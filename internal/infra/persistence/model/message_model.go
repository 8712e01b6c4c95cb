package model

import (
	"time"

	"github.com/google/uuid"
)

// MessageModel is the GORM-specific struct for the 'messages' table.
// The property reference is a weak link: deleting the property nulls it
// rather than removing the conversation history.
type MessageModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	SenderID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	RecipientID uuid.UUID  `gorm:"type:uuid;not null;index"`
	PropertyID  *uuid.UUID `gorm:"type:uuid"`

	Content    string `gorm:"type:text;not null"`
	Attachment string `gorm:"type:text"`

	IsRead bool       `gorm:"not null;default:false"`
	ReadAt *time.Time `gorm:""`

	CreatedAt time.Time

	Property *PropertyModel `gorm:"foreignKey:PropertyID;constraint:OnDelete:SET NULL"`
}

// TableName explicitly sets the table name for GORM.
func (MessageModel) TableName() string {
	return "messages"
}
