package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"

	"tasktrack/internal/model"
)

// priorityWeightExpr orders the string priority column by its ordinal weight.
const priorityWeightExpr = "CASE priority WHEN 'high' THEN 3 WHEN 'medium' THEN 2 WHEN 'low' THEN 1 ELSE 0 END"

// TaskRepository handles CRUD and list queries for tasks.
type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(ctx context.Context, task *model.Task) error {
	if err := r.db.WithContext(ctx).Create(task).Error; err != nil {
		return fmt.Errorf("create task: %w", err)
	}
	return nil
}

// Find looks up a task by id for the user regardless of its deletion flag.
func (r *TaskRepository) Find(ctx context.Context, userID, taskID uint) (*model.Task, error) {
	return r.findWhere(ctx, "user_id = ? AND id = ?", userID, taskID)
}

// FindActive looks up a non-deleted task by id for the user.
func (r *TaskRepository) FindActive(ctx context.Context, userID, taskID uint) (*model.Task, error) {
	return r.findWhere(ctx, "user_id = ? AND id = ? AND is_deleted = ?", userID, taskID, false)
}

// FindDeleted looks up a soft-deleted task by id for the user.
func (r *TaskRepository) FindDeleted(ctx context.Context, userID, taskID uint) (*model.Task, error) {
	return r.findWhere(ctx, "user_id = ? AND id = ? AND is_deleted = ?", userID, taskID, true)
}

func (r *TaskRepository) findWhere(ctx context.Context, cond string, args ...any) (*model.Task, error) {
	var task model.Task
	if err := r.db.WithContext(ctx).Where(cond, args...).First(&task).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("find task: %w", err)
	}
	return &task, nil
}

func (r *TaskRepository) Save(ctx context.Context, task *model.Task) error {
	if err := r.db.WithContext(ctx).Save(task).Error; err != nil {
		return fmt.Errorf("save task: %w", err)
	}
	return nil
}

// ListActive returns the user's non-deleted tasks filtered and ordered per
// the query. Malformed filter values are skipped, not rejected, so a bad
// parameter degrades to an unfiltered listing instead of an error.
func (r *TaskRepository) ListActive(ctx context.Context, userID uint, q model.TaskQuery) ([]model.Task, error) {
	db := r.db.WithContext(ctx).
		Where("user_id = ? AND is_deleted = ?", userID, false)

	switch {
	case q.Category == "none":
		db = db.Where("category_id IS NULL")
	case isDigits(q.Category):
		categoryID, _ := strconv.Atoi(q.Category)
		db = db.Where("category_id = ?", categoryID)
	}

	if isDigits(q.Status) {
		status, _ := strconv.Atoi(q.Status)
		db = db.Where("status = ?", status)
	}

	if q.Priority != "" {
		db = db.Where("priority = ?", q.Priority)
	}

	if q.Search != "" {
		pattern := "%" + escapeLike(strings.ToLower(q.Search)) + "%"
		db = db.Where(`(LOWER(title) LIKE ? ESCAPE '\' OR LOWER(description) LIKE ? ESCAPE '\')`, pattern, pattern)
	}

	var tasks []model.Task
	if err := db.Order(orderClause(q)).Find(&tasks).Error; err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return tasks, nil
}

// orderClause builds the ORDER BY expression for a task listing.
//
// Priority sorts by ordinal weight; its due-date and created-at tie-breakers
// never flip with the requested order. Due-date sorts group tasks without a
// due date last when ascending but first when descending (the null flag
// inverts instead of staying last; intentional, kept from the observed
// behavior). An unrecognized sort key falls back to the default due-date
// ascending order and ignores the requested direction.
func orderClause(q model.TaskQuery) string {
	sortKey := q.SortKey
	if sortKey == "" {
		sortKey = model.SortDueDate
	}
	order := q.Order
	if order == "" {
		order = "asc"
	}

	switch sortKey {
	case model.SortPriority:
		if order == "asc" {
			return priorityWeightExpr + " ASC, due_date ASC, created_at DESC"
		}
		return priorityWeightExpr + " DESC, due_date ASC, created_at DESC"
	case model.SortDueDate:
		if order == "asc" {
			return "(due_date IS NULL) ASC, due_date ASC, created_at DESC"
		}
		return "(due_date IS NULL) DESC, due_date DESC, created_at DESC"
	case model.SortTitle, model.SortStatus, model.SortCreatedAt:
		dir := "ASC"
		if order == "desc" {
			dir = "DESC"
		}
		return sortKey + " " + dir + ", created_at DESC"
	default:
		return "(due_date IS NULL) ASC, due_date ASC, created_at DESC"
	}
}

// ListTrash returns the user's soft-deleted tasks, most recently deleted
// first.
func (r *TaskRepository) ListTrash(ctx context.Context, userID uint) ([]model.Task, error) {
	var tasks []model.Task
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND is_deleted = ?", userID, true).
		Order("deleted_at DESC").
		Find(&tasks).Error
	if err != nil {
		return nil, fmt.Errorf("list trash: %w", err)
	}
	return tasks, nil
}

// PurgeDeleted permanently removes the user's soft-deleted tasks. A
// non-empty ids slice restricts the purge to those tasks; ids that do not
// match an owned, soft-deleted task are ignored. Returns the number of rows
// removed.
func (r *TaskRepository) PurgeDeleted(ctx context.Context, userID uint, ids []uint) (int64, error) {
	db := r.db.WithContext(ctx).Where("user_id = ? AND is_deleted = ?", userID, true)
	if len(ids) > 0 {
		db = db.Where("id IN ?", ids)
	}
	res := db.Delete(&model.Task{})
	if res.Error != nil {
		return 0, fmt.Errorf("purge tasks: %w", res.Error)
	}
	return res.RowsAffected, nil
}

// PurgeDeletedBefore removes every soft-deleted task, across all users,
// whose deletion timestamp is older than cutoff. Used by the retention
// sweep.
func (r *TaskRepository) PurgeDeletedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("is_deleted = ? AND deleted_at < ?", true, cutoff).
		Delete(&model.Task{})
	if res.Error != nil {
		return 0, fmt.Errorf("purge expired tasks: %w", res.Error)
	}
	return res.RowsAffected, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike escapes LIKE metacharacters so a search token matches only the
// literal substring.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// isDigits reports whether s is non-empty and all ASCII digits. Mirrors the
// lenient parameter parsing: "12" counts, "-1" and "1.5" do not.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
