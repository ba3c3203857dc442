package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Product is a catalog entry. Price is kept as the text the client sent.
type Product struct {
	ID          string    `json:"_id" bson:"_id" gorm:"type:char(36);primaryKey"`
	Name        string    `json:"name" bson:"name" gorm:"size:255"`
	Category    string    `json:"category" bson:"category" gorm:"size:255;index"`
	Image       string    `json:"image" bson:"image" gorm:"size:2048"`
	Price       string    `json:"price" bson:"price" gorm:"size:64"`
	Description string    `json:"description" bson:"description" gorm:"type:text"`
	CreatedAt   time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt" bson:"updatedAt"`
}

// BeforeCreate sets UUID before creating the record.
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	p.EnsureID()
	return nil
}

// EnsureID assigns a new UUID when the record has none.
func (p *Product) EnsureID() {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
}

// ProductCategory is the projection served by /productNameList.
type ProductCategory struct {
	ID       string `json:"_id" bson:"_id"`
	Category string `json:"category" bson:"category"`
}
