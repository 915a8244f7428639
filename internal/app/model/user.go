package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LocalUserID is the identity the desktop app acts under when no explicit
// user is supplied. It is seeded at migration time.
const LocalUserID = "local-user"

type User struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
