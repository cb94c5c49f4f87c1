package service

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"gorm.io/gorm"

	"tasktrack/internal/model"
	"tasktrack/internal/repository"
)

var dbSeq atomic.Int64

// newTestDB opens a fresh in-memory database. Shared cache keeps the same
// database visible across pooled connections within one test.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:svctest%d?mode=memory&cache=shared", dbSeq.Add(1))
	db, err := repository.NewDB(dsn)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("db handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })
	return db
}

type testEnv struct {
	tasks        *TaskService
	categories   *CategoryService
	auth         *AuthService
	taskRepo     *repository.TaskRepository
	categoryRepo *repository.CategoryRepository
	userRepo     *repository.UserRepository

	user  *model.User
	other *model.User
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := newTestDB(t)

	env := &testEnv{
		taskRepo:     repository.NewTaskRepository(db),
		categoryRepo: repository.NewCategoryRepository(db),
		userRepo:     repository.NewUserRepository(db),
	}
	env.tasks = NewTaskService(env.taskRepo, env.categoryRepo)
	env.categories = NewCategoryService(env.categoryRepo)
	env.auth = NewAuthService(env.userRepo, "test-secret-test-secret-test-secret", time.Hour)

	env.user = env.mustUser(t, "owner@example.com")
	env.other = env.mustUser(t, "other@example.com")
	return env
}

func (e *testEnv) mustUser(t *testing.T, email string) *model.User {
	t.Helper()
	user := &model.User{Email: email, PasswordHash: "x"}
	if err := e.userRepo.Create(context.Background(), user); err != nil {
		t.Fatalf("create user %s: %v", email, err)
	}
	return user
}

// seedTask inserts a task directly through the repository so tests control
// timestamps and flags exactly.
func (e *testEnv) seedTask(t *testing.T, task model.Task) *model.Task {
	t.Helper()
	if task.UserID == 0 {
		task.UserID = e.user.ID
	}
	if task.Priority == "" {
		task.Priority = model.PriorityNone
	}
	if err := e.taskRepo.Create(context.Background(), &task); err != nil {
		t.Fatalf("seed task %q: %v", task.Title, err)
	}
	return &task
}

func (e *testEnv) mustCategory(t *testing.T, userID uint, name string) *model.Category {
	t.Helper()
	category := &model.Category{UserID: userID, Name: name}
	if err := e.categoryRepo.Create(context.Background(), category); err != nil {
		t.Fatalf("seed category %q: %v", name, err)
	}
	return category
}

func titles(tasks []model.Task) []string {
	out := make([]string, len(tasks))
	for i, task := range tasks {
		out[i] = task.Title
	}
	return out
}

func assertTitles(t *testing.T, got []model.Task, want ...string) {
	t.Helper()
	have := titles(got)
	if len(have) != len(want) {
		t.Fatalf("got %d tasks %v, want %v", len(have), have, want)
	}
	for i := range want {
		if have[i] != want[i] {
			t.Fatalf("position %d: got %v, want %v", i, have, want)
		}
	}
}

func timePtr(t time.Time) *time.Time { return &t }
