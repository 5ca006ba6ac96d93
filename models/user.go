package models

import "time"

type User struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Username  string    `gorm:"uniqueIndex;not null" json:"username"`
	Password  string    `gorm:"not null" json:"-"` // bcrypt hash, never plaintext
	Email     string    `json:"email,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
