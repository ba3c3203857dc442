package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is a registered shopper. Password holds a bcrypt hash.
type User struct {
	ID        string    `json:"_id" bson:"_id" gorm:"type:char(36);primaryKey"`
	FirstName string    `json:"firstName" bson:"firstName" gorm:"size:255"`
	LastName  string    `json:"lastName" bson:"lastName" gorm:"size:255"`
	Email     string    `json:"email" bson:"email" gorm:"uniqueIndex;size:255;not null"`
	Password  string    `json:"-" bson:"password" gorm:"size:255;not null"` // Never expose in JSON
	Image     string    `json:"image" bson:"image" gorm:"size:16777216"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

// BeforeCreate sets UUID before creating the record.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	u.EnsureID()
	return nil
}

// EnsureID assigns a new UUID when the record has none.
func (u *User) EnsureID() {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
}

// Profile is the public view of a user returned by login and /me.
type Profile struct {
	ID        string `json:"_id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Image     string `json:"image"`
}

// Profile strips credentials from the user.
func (u *User) Profile() Profile {
	return Profile{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Image:     u.Image,
	}
}
