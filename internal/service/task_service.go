package service

import (
	"context"
	"strconv"
	"time"

	"tasktrack/internal/model"
	"tasktrack/internal/repository"
)

const (
	maxTitleLen       = 200
	maxCategoryLen    = 190
	maxDescriptionLen = 10000
)

// TaskInput represents data required to create or update a task.
type TaskInput struct {
	Title       string
	Description string
	CategoryID  *uint
	Priority    string
	Status      int
	DueDate     *time.Time
}

// TaskService wraps task-related business logic. Every operation is scoped
// to the acting user; a task owned by someone else behaves exactly like a
// missing one.
type TaskService struct {
	taskRepo     *repository.TaskRepository
	categoryRepo *repository.CategoryRepository
}

func NewTaskService(taskRepo *repository.TaskRepository, categoryRepo *repository.CategoryRepository) *TaskService {
	return &TaskService{taskRepo: taskRepo, categoryRepo: categoryRepo}
}

func (s *TaskService) validate(ctx context.Context, userID uint, in *TaskInput) error {
	if in.Title == "" {
		return model.Validationf("title", "title is required")
	}
	if len(in.Title) > maxTitleLen {
		return model.Validationf("title", "title exceeds %d characters", maxTitleLen)
	}
	if len(in.Description) > maxDescriptionLen {
		return model.Validationf("description", "description too long")
	}
	if in.Priority == "" {
		in.Priority = model.PriorityNone
	}
	if !model.ValidPriority(in.Priority) {
		return model.Validationf("priority", "unknown priority %q", in.Priority)
	}
	if !model.ValidStatus(in.Status) {
		return model.Validationf("status", "unknown status %d", in.Status)
	}
	if in.CategoryID != nil {
		// Only the user's own categories may be attached.
		if _, err := s.categoryRepo.FindByID(ctx, userID, *in.CategoryID); err != nil {
			return err
		}
	}
	return nil
}

func (s *TaskService) Create(ctx context.Context, userID uint, in TaskInput) (*model.Task, error) {
	if err := s.validate(ctx, userID, &in); err != nil {
		return nil, err
	}

	task := model.Task{
		UserID:      userID,
		CategoryID:  in.CategoryID,
		Title:       in.Title,
		Description: in.Description,
		Priority:    in.Priority,
		Status:      in.Status,
		DueDate:     in.DueDate,
	}
	if err := s.taskRepo.Create(ctx, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// Update replaces the editable fields of a non-deleted task.
func (s *TaskService) Update(ctx context.Context, userID, taskID uint, in TaskInput) (*model.Task, error) {
	task, err := s.taskRepo.FindActive(ctx, userID, taskID)
	if err != nil {
		return nil, err
	}
	if err := s.validate(ctx, userID, &in); err != nil {
		return nil, err
	}

	task.Title = in.Title
	task.Description = in.Description
	task.CategoryID = in.CategoryID
	task.Priority = in.Priority
	task.Status = in.Status
	task.DueDate = in.DueDate
	if err := s.taskRepo.Save(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// Get returns a non-deleted task.
func (s *TaskService) Get(ctx context.Context, userID, taskID uint) (*model.Task, error) {
	return s.taskRepo.FindActive(ctx, userID, taskID)
}

// List returns the user's non-deleted tasks filtered and ordered per query.
func (s *TaskService) List(ctx context.Context, userID uint, query model.TaskQuery) ([]model.Task, error) {
	return s.taskRepo.ListActive(ctx, userID, query)
}

// Complete marks a task as completed. Completing an already-completed task
// succeeds and leaves the status unchanged.
func (s *TaskService) Complete(ctx context.Context, userID, taskID uint) (*model.Task, error) {
	task, err := s.taskRepo.Find(ctx, userID, taskID)
	if err != nil {
		return nil, err
	}
	task.Status = model.StatusCompleted
	if err := s.taskRepo.Save(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// SetStatus applies an inline status change. A value that is not one of the
// defined status codes is silently ignored: the task is returned unchanged
// and no error is raised.
func (s *TaskService) SetStatus(ctx context.Context, userID, taskID uint, raw string) (*model.Task, error) {
	task, err := s.taskRepo.Find(ctx, userID, taskID)
	if err != nil {
		return nil, err
	}

	status, err := strconv.Atoi(raw)
	if err != nil || !model.ValidStatus(status) {
		return task, nil
	}

	task.Status = status
	if err := s.taskRepo.Save(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// SoftDelete moves a task to the trash. Deleting a task already in the
// trash just refreshes its deletion timestamp.
func (s *TaskService) SoftDelete(ctx context.Context, userID, taskID uint) error {
	task, err := s.taskRepo.Find(ctx, userID, taskID)
	if err != nil {
		return err
	}
	now := time.Now()
	task.IsDeleted = true
	task.DeletedAt = &now
	return s.taskRepo.Save(ctx, task)
}

// Restore brings a soft-deleted task back. Only tasks currently in the
// trash can be restored; anything else is ErrNotFound.
func (s *TaskService) Restore(ctx context.Context, userID, taskID uint) error {
	task, err := s.taskRepo.FindDeleted(ctx, userID, taskID)
	if err != nil {
		return err
	}
	task.IsDeleted = false
	task.DeletedAt = nil
	return s.taskRepo.Save(ctx, task)
}

// Purge permanently removes soft-deleted tasks. With ids it removes only
// those of the user's trashed tasks; without, it empties the trash. This is
// the only irreversible deletion path.
func (s *TaskService) Purge(ctx context.Context, userID uint, ids []uint) (int64, error) {
	return s.taskRepo.PurgeDeleted(ctx, userID, ids)
}

// ListTrash returns the user's soft-deleted tasks, newest deletion first.
func (s *TaskService) ListTrash(ctx context.Context, userID uint) ([]model.Task, error) {
	return s.taskRepo.ListTrash(ctx, userID)
}

// PurgeExpired removes trashed tasks older than the retention period, for
// all users. Returns the number of tasks removed.
func (s *TaskService) PurgeExpired(ctx context.Context, retention time.Duration) (int64, error) {
	return s.taskRepo.PurgeDeletedBefore(ctx, time.Now().Add(-retention))
}
