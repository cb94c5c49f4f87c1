package service

import (
	"context"

	"tasktrack/internal/model"
	"tasktrack/internal/repository"
)

// CategoryService wraps category-related business logic.
type CategoryService struct {
	repo *repository.CategoryRepository
}

func NewCategoryService(repo *repository.CategoryRepository) *CategoryService {
	return &CategoryService{repo: repo}
}

func validateCategoryName(name string) error {
	if name == "" {
		return model.Validationf("name", "name is required")
	}
	if len(name) > maxCategoryLen {
		return model.Validationf("name", "name exceeds %d characters", maxCategoryLen)
	}
	return nil
}

func (s *CategoryService) Create(ctx context.Context, userID uint, name string) (*model.Category, error) {
	if err := validateCategoryName(name); err != nil {
		return nil, err
	}
	taken, err := s.repo.NameTaken(ctx, userID, name, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, model.ErrDuplicateName
	}

	category := model.Category{UserID: userID, Name: name}
	if err := s.repo.Create(ctx, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

// Rename changes a category's name. The duplicate check excludes the
// category itself, so renaming to the current name succeeds.
func (s *CategoryService) Rename(ctx context.Context, userID, categoryID uint, newName string) (*model.Category, error) {
	category, err := s.repo.FindByID(ctx, userID, categoryID)
	if err != nil {
		return nil, err
	}
	if err := validateCategoryName(newName); err != nil {
		return nil, err
	}
	taken, err := s.repo.NameTaken(ctx, userID, newName, category.ID)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, model.ErrDuplicateName
	}

	category.Name = newName
	if err := s.repo.Save(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// Delete removes a category. Tasks that referenced it are detached, never
// deleted.
func (s *CategoryService) Delete(ctx context.Context, userID, categoryID uint) error {
	category, err := s.repo.FindByID(ctx, userID, categoryID)
	if err != nil {
		return err
	}
	return s.repo.DeleteWithDetach(ctx, category)
}

// List returns the user's categories by name, with task counts (including
// trashed tasks).
func (s *CategoryService) List(ctx context.Context, userID uint) ([]model.Category, error) {
	return s.repo.ListByUser(ctx, userID)
}
