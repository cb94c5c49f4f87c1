package model

import "time"

// Task statuses. Stored as integers.
const (
	StatusNotStarted = 0
	StatusInProgress = 1
	StatusCompleted  = 2
)

// Task priorities. Stored as strings, ordered by PriorityWeight for sorting.
const (
	PriorityNone   = "none"
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// Task represents a single item in the tracker. A soft-deleted task stays in
// the store with IsDeleted set and is only removed by an explicit purge.
type Task struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	UserID      uint       `gorm:"index" json:"-"`
	CategoryID  *uint      `gorm:"index" json:"category_id"`
	Title       string     `gorm:"size:200" json:"title"`
	Description string     `json:"description"`
	Priority    string     `gorm:"size:10;default:'none'" json:"priority"`
	Status      int        `gorm:"default:0" json:"status"`
	DueDate     *time.Time `json:"due_date"`
	IsDeleted   bool       `gorm:"default:false" json:"is_deleted"`
	DeletedAt   *time.Time `json:"deleted_at"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// ValidStatus reports whether s is one of the defined status codes.
func ValidStatus(s int) bool {
	return s == StatusNotStarted || s == StatusInProgress || s == StatusCompleted
}

// ValidPriority reports whether p is one of the defined priority values.
func ValidPriority(p string) bool {
	switch p {
	case PriorityNone, PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// PriorityWeight maps a priority to its ordinal weight (none=0 .. high=3).
// Unknown values weigh 0.
func PriorityWeight(p string) int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	default:
		return 0
	}
}
