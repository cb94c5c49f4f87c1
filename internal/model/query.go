package model

// Task list sort keys. Anything else falls back to the default due-date order.
const (
	SortDueDate   = "due_date"
	SortTitle     = "title"
	SortStatus    = "status"
	SortPriority  = "priority"
	SortCreatedAt = "created_at"
)

// TaskQuery carries the raw filter and sort parameters for a task listing.
// Values come straight from the request; malformed ones are ignored rather
// than rejected, so the listing degrades gracefully instead of failing.
type TaskQuery struct {
	// Category is a category id in decimal, the literal "none" for tasks
	// without a category, or empty for no filter.
	Category string
	// Status is a status code in decimal, or empty for no filter.
	Status string
	// Priority is one of the priority values, or empty for no filter.
	Priority string
	// Search matches case-insensitively against title or description.
	Search string
	// SortKey is one of the Sort* constants; empty means SortDueDate.
	SortKey string
	// Order is "asc" or "desc"; empty means "asc".
	Order string
}
