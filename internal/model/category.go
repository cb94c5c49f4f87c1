package model

import "time"

// Category groups tasks by area (work, personal, study, etc.).
// The (UserID, Name) pair is unique: a user cannot own two categories
// with the same name.
type Category struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"index:idx_user_category_name,unique" json:"-"`
	Name      string    `gorm:"index:idx_user_category_name,unique;size:190" json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// TaskCount is filled by listing queries and includes soft-deleted tasks.
	TaskCount int64 `gorm:"-" json:"task_count"`
}
