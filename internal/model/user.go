package model

import "time"

// User is a registered account. Categories and tasks belong to exactly one user.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Email        string    `gorm:"uniqueIndex;size:254" json:"email"`
	PasswordHash string    `json:"-"`
	DisplayName  string    `gorm:"size:150" json:"display_name"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
