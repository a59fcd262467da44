package storage

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"

	"github.com/ledgerview/dashboard-server/internal/storage/sqlconfig"
)

// Writer performs writes inside a single database transaction. All methods
// run on the same bob.Tx until Commit or Rollback.
type Writer struct {
	tx bob.Tx
}

func NewWriter(tx bob.Tx) *Writer {
	return &Writer{tx: tx}
}

func (w *Writer) Commit(ctx context.Context) error {
	return w.tx.Commit(ctx)
}

func (w *Writer) Rollback(ctx context.Context) error {
	return w.tx.Rollback(ctx)
}

// CategoryExists reports whether a category row exists for id.
func (w *Writer) CategoryExists(ctx context.Context, id uuid.UUID) (bool, error) {
	query := psql.Select(
		sm.Columns("count(*)"),
		sm.From("categories"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)

	count, err := bob.One(ctx, w.tx, query, scan.SingleColumnMapper[int64])
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// InsertTransaction creates a transaction row and returns the generated ID.
func (w *Writer) InsertTransaction(ctx context.Context, create *sqlconfig.TransactionCreate) (uuid.UUID, error) {
	query := psql.Insert(
		im.Into("transactions", "description", "amount", "type", "category_id", "user_id", "occurred_at"),
		im.Values(psql.Arg(
			create.Description,
			create.Amount,
			create.Type,
			create.CategoryID,
			create.UserID,
			create.OccurredAt,
		)),
		im.Returning("id"),
	)

	id, err := bob.One(ctx, w.tx, query, scan.SingleColumnMapper[uuid.UUID])
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

// AttachTags links the given tags to a transaction. No-op on an empty list.
func (w *Writer) AttachTags(ctx context.Context, transactionID uuid.UUID, tagIDs []uuid.UUID) error {
	if len(tagIDs) == 0 {
		return nil
	}

	queryMods := []bob.Mod[*dialect.InsertQuery]{
		im.Into("transaction_tags", "transaction_id", "tag_id"),
	}
	for _, tagID := range tagIDs {
		queryMods = append(queryMods, im.Values(psql.Arg(transactionID, tagID)))
	}

	_, err := bob.Exec(ctx, w.tx, psql.Insert(queryMods...))
	return err
}
