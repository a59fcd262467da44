package sqlconfig

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

var _ ITransactionTable = (*TransactionsTable)(nil)

// transactionRow is the scan target for transaction selects. Category name
// comes from the joined categories table.
type transactionRow struct {
	ID           uuid.UUID       `db:"id"`
	Description  string          `db:"description"`
	Amount       decimal.Decimal `db:"amount"`
	Type         string          `db:"type"`
	CategoryID   uuid.UUID       `db:"category_id"`
	CategoryName string          `db:"category_name"`
	UserID       uuid.UUID       `db:"user_id"`
	OccurredAt   time.Time       `db:"occurred_at"`
	CreatedAt    time.Time       `db:"created_at"`
}

type transactionTagRow struct {
	TransactionID uuid.UUID `db:"transaction_id"`
	ID            uuid.UUID `db:"id"`
	Name          string    `db:"name"`
}

var transactionColumns = []any{
	"t.id",
	"t.description",
	"t.amount",
	"t.type",
	"t.category_id",
	"c.name AS category_name",
	"t.user_id",
	"t.occurred_at",
	"t.created_at",
}

type TransactionsTable struct {
	exec bob.Executor
}

func NewTransactionsTable(db *sql.DB) TransactionsTable {
	return TransactionsTable{exec: bob.NewDB(db)}
}

func categoryJoin() bob.Mod[*dialect.SelectQuery] {
	return sm.InnerJoin("categories").As("c").
		On(psql.Quote("c", "id").EQ(psql.Quote("t", "category_id")))
}

// FindByID retrieves a transaction by primary key, tags included.
func (t *TransactionsTable) FindByID(ctx context.Context, id uuid.UUID) (*Transaction, error) {
	query := psql.Select(
		sm.Columns(transactionColumns...),
		sm.From("transactions").As("t"),
		categoryJoin(),
		sm.Where(psql.Quote("t", "id").EQ(psql.Arg(id))),
	)

	row, err := bob.One(ctx, t.exec, query, scan.StructMapper[transactionRow]())
	if err != nil {
		return nil, err
	}

	result := rowToTransaction(row)
	if err := t.loadTags(ctx, []*Transaction{result}); err != nil {
		return nil, err
	}
	return result, nil
}

// ListRecent returns the most recent transactions, newest first.
func (t *TransactionsTable) ListRecent(ctx context.Context, limit int) ([]*Transaction, error) {
	query := psql.Select(
		sm.Columns(transactionColumns...),
		sm.From("transactions").As("t"),
		categoryJoin(),
		sm.OrderBy("t.occurred_at").Desc(),
		sm.OrderBy("t.id").Desc(),
		sm.Limit(limit),
	)

	rows, err := bob.All(ctx, t.exec, query, scan.StructMapper[transactionRow]())
	if err != nil {
		return nil, err
	}
	return t.hydrate(ctx, rows)
}

// Grid returns one page of the transaction grid plus the unpaginated total.
// Ordering is the whitelisted sort column with an ID tiebreak so pages are
// stable under equal sort keys.
func (t *TransactionsTable) Grid(ctx context.Context, query *GridQuery) ([]*Transaction, int64, error) {
	column, ok := gridSortColumns[query.SortBy]
	if !ok {
		return nil, 0, fmt.Errorf("grid: unknown sort column %q", query.SortBy)
	}

	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(transactionColumns...),
		sm.From("transactions").As("t"),
		categoryJoin(),
	}
	if query.SortOrder == "asc" {
		queryMods = append(queryMods,
			sm.OrderBy(column).Asc(),
			sm.OrderBy("t.id").Asc(),
		)
	} else {
		queryMods = append(queryMods,
			sm.OrderBy(column).Desc(),
			sm.OrderBy("t.id").Desc(),
		)
	}
	queryMods = append(queryMods,
		sm.Limit(query.Limit),
		sm.Offset(query.Offset),
	)

	rows, err := bob.All(ctx, t.exec, psql.Select(queryMods...), scan.StructMapper[transactionRow]())
	if err != nil {
		return nil, 0, err
	}

	countQuery := psql.Select(
		sm.Columns("count(*)"),
		sm.From("transactions"),
	)
	total, err := bob.One(ctx, t.exec, countQuery, scan.SingleColumnMapper[int64])
	if err != nil {
		return nil, 0, err
	}

	transactions, err := t.hydrate(ctx, rows)
	if err != nil {
		return nil, 0, err
	}
	return transactions, total, nil
}

// Summarize returns per (type, category) amount totals within the filter's
// occurred_at range.
func (t *TransactionsTable) Summarize(ctx context.Context, filter *SummaryFilter) ([]*SummaryRow, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns("t.type", "c.name AS category_name", "sum(t.amount) AS total"),
		sm.From("transactions").As("t"),
		categoryJoin(),
	}
	if filter != nil {
		if filter.From != nil {
			queryMods = append(queryMods, sm.Where(psql.Quote("t", "occurred_at").GTE(psql.Arg(*filter.From))))
		}
		if filter.To != nil {
			queryMods = append(queryMods, sm.Where(psql.Quote("t", "occurred_at").LTE(psql.Arg(*filter.To))))
		}
	}
	queryMods = append(queryMods,
		sm.GroupBy("t.type"),
		sm.GroupBy("c.name"),
		sm.OrderBy("c.name").Asc(),
		sm.OrderBy("t.type").Asc(),
	)

	rows, err := bob.All(ctx, t.exec, psql.Select(queryMods...), scan.StructMapper[SummaryRow]())
	if err != nil {
		return nil, err
	}

	result := make([]*SummaryRow, len(rows))
	for i := range rows {
		row := rows[i]
		result[i] = &row
	}
	return result, nil
}

func (t *TransactionsTable) hydrate(ctx context.Context, rows []transactionRow) ([]*Transaction, error) {
	transactions := make([]*Transaction, len(rows))
	for i, row := range rows {
		transactions[i] = rowToTransaction(row)
	}
	if err := t.loadTags(ctx, transactions); err != nil {
		return nil, err
	}
	return transactions, nil
}

// loadTags attaches tags to the given transactions with a single IN query.
func (t *TransactionsTable) loadTags(ctx context.Context, transactions []*Transaction) error {
	if len(transactions) == 0 {
		return nil
	}

	ids := make([]any, len(transactions))
	byID := make(map[uuid.UUID]*Transaction, len(transactions))
	for i, transaction := range transactions {
		ids[i] = transaction.ID
		byID[transaction.ID] = transaction
	}

	query := psql.Select(
		sm.Columns("tt.transaction_id", "tg.id", "tg.name"),
		sm.From("transaction_tags").As("tt"),
		sm.InnerJoin("tags").As("tg").
			On(psql.Quote("tg", "id").EQ(psql.Quote("tt", "tag_id"))),
		sm.Where(psql.Quote("tt", "transaction_id").In(psql.Arg(ids...))),
		sm.OrderBy("tg.name").Asc(),
	)

	rows, err := bob.All(ctx, t.exec, query, scan.StructMapper[transactionTagRow]())
	if err != nil {
		return err
	}

	for _, row := range rows {
		transaction := byID[row.TransactionID]
		if transaction == nil {
			continue
		}
		transaction.Tags = append(transaction.Tags, Tag{ID: row.ID, Name: row.Name})
	}
	return nil
}

func rowToTransaction(row transactionRow) *Transaction {
	return &Transaction{
		ID:           row.ID,
		Description:  row.Description,
		Amount:       row.Amount,
		Type:         row.Type,
		CategoryID:   row.CategoryID,
		CategoryName: row.CategoryName,
		UserID:       row.UserID,
		OccurredAt:   row.OccurredAt,
		CreatedAt:    row.CreatedAt,
	}
}
