package service

import (
	"context"

	"github.com/ledgerview/dashboard-server/internal/storage"
)

// CategoryService handles category business logic.
type CategoryService struct {
	storage *storage.Storage
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(store *storage.Storage) *CategoryService {
	return &CategoryService{storage: store}
}

// List returns all categories, name-ordered.
func (s *CategoryService) List(ctx context.Context) ([]Category, error) {
	rows, err := s.storage.Categories.List(ctx)
	if err != nil {
		return nil, err
	}

	categories := make([]Category, len(rows))
	for i, row := range rows {
		categories[i] = Category{ID: row.ID, Name: row.Name}
	}
	return categories, nil
}

// TagService handles tag business logic.
type TagService struct {
	storage *storage.Storage
}

// NewTagService creates a new TagService.
func NewTagService(store *storage.Storage) *TagService {
	return &TagService{storage: store}
}

// List returns all tags, name-ordered.
func (s *TagService) List(ctx context.Context) ([]Tag, error) {
	rows, err := s.storage.Tags.List(ctx)
	if err != nil {
		return nil, err
	}

	tags := make([]Tag, len(rows))
	for i, row := range rows {
		tags[i] = Tag{ID: row.ID, Name: row.Name}
	}
	return tags, nil
}
