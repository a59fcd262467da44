package sqlconfig

import (
	"context"

	"github.com/gofrs/uuid/v5"
)

// Category represents a category record. Every transaction carries exactly
// one category.
type Category struct {
	ID   uuid.UUID `db:"id"`
	Name string    `db:"name"`
}

// Tag represents a tag record. Tags attach to transactions many-to-many via
// transaction_tags.
type Tag struct {
	ID   uuid.UUID `db:"id"`
	Name string    `db:"name"`
}

// ICategoryTable defines the interface for category storage operations.
// This abstraction allows swapping the implementation (e.g. Bob) without changing callers.
//
//go:generate mockery --name ICategoryTable --output mock_ICategoryTable.go
type ICategoryTable interface {
	List(ctx context.Context) ([]*Category, error)
}

// ITagTable defines the interface for tag storage operations.
//
//go:generate mockery --name ITagTable --output mock_ITagTable.go
type ITagTable interface {
	List(ctx context.Context) ([]*Tag, error)
}
