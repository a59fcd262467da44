package sqlconfig

import (
	"context"
	"database/sql"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

var (
	_ ICategoryTable = (*CategoriesTable)(nil)
	_ ITagTable      = (*TagsTable)(nil)
)

type CategoriesTable struct {
	exec bob.Executor
}

func NewCategoriesTable(db *sql.DB) CategoriesTable {
	return CategoriesTable{exec: bob.NewDB(db)}
}

// List returns all categories, name-ordered.
func (t *CategoriesTable) List(ctx context.Context) ([]*Category, error) {
	query := psql.Select(
		sm.Columns("id", "name"),
		sm.From("categories"),
		sm.OrderBy("name").Asc(),
		sm.OrderBy("id").Asc(),
	)

	rows, err := bob.All(ctx, t.exec, query, scan.StructMapper[Category]())
	if err != nil {
		return nil, err
	}
	return toPointers(rows), nil
}

type TagsTable struct {
	exec bob.Executor
}

func NewTagsTable(db *sql.DB) TagsTable {
	return TagsTable{exec: bob.NewDB(db)}
}

// List returns all tags, name-ordered.
func (t *TagsTable) List(ctx context.Context) ([]*Tag, error) {
	query := psql.Select(
		sm.Columns("id", "name"),
		sm.From("tags"),
		sm.OrderBy("name").Asc(),
		sm.OrderBy("id").Asc(),
	)

	rows, err := bob.All(ctx, t.exec, query, scan.StructMapper[Tag]())
	if err != nil {
		return nil, err
	}
	return toPointers(rows), nil
}

func toPointers[T any](rows []T) []*T {
	result := make([]*T, len(rows))
	for i := range rows {
		result[i] = &rows[i]
	}
	return result
}
