package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Image stores a raw base64 upload. It is written once and never read back.
type Image struct {
	ID        string    `json:"_id" bson:"_id" gorm:"type:char(36);primaryKey"`
	Image     string    `json:"image" bson:"image" gorm:"size:16777216"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}

// BeforeCreate sets UUID before creating the record.
func (i *Image) BeforeCreate(tx *gorm.DB) error {
	i.EnsureID()
	return nil
}

// EnsureID assigns a new UUID when the record has none.
func (i *Image) EnsureID() {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
}
