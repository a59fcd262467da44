package sqlconfig

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Transaction types are stored as CHECK-constrained text.
const (
	TransactionTypeCredit = "credit"
	TransactionTypeDebit  = "debit"
)

// Transaction represents a transaction record with its category name and
// tags hydrated.
type Transaction struct {
	ID           uuid.UUID
	Description  string
	Amount       decimal.Decimal
	Type         string
	CategoryID   uuid.UUID
	CategoryName string
	UserID       uuid.UUID
	OccurredAt   time.Time
	CreatedAt    time.Time
	Tags         []Tag
}

// TransactionCreate is the input for creating a new transaction.
type TransactionCreate struct {
	Description string
	Amount      decimal.Decimal
	Type        string
	CategoryID  uuid.UUID
	UserID      uuid.UUID
	OccurredAt  time.Time
}

// GridQuery selects one page of the transaction grid. SortBy must be one of
// the whitelisted grid sort names; anything else is rejected before reaching
// SQL.
type GridQuery struct {
	SortBy    string
	SortOrder string
	Limit     int
	Offset    int
}

// gridSortColumns maps API sort names to ORDER BY targets. The map is the
// whitelist: absent names never reach the query builder.
var gridSortColumns = map[string]string{
	"date":        "t.occurred_at",
	"amount":      "t.amount",
	"description": "t.description",
	"type":        "t.type",
	"category":    "c.name",
}

// SummaryFilter bounds a summary query to an optional occurred_at range.
type SummaryFilter struct {
	From *time.Time
	To   *time.Time
}

// SummaryRow is one (type, category) bucket of the transaction summary.
type SummaryRow struct {
	Type         string          `db:"type"`
	CategoryName string          `db:"category_name"`
	Total        decimal.Decimal `db:"total"`
}

// ITransactionTable defines the interface for transaction storage operations.
// This abstraction allows swapping the implementation (e.g. Bob) without changing callers.
//
//go:generate mockery --name ITransactionTable --output mock_ITransactionTable.go
type ITransactionTable interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Transaction, error)
	ListRecent(ctx context.Context, limit int) ([]*Transaction, error)
	Grid(ctx context.Context, query *GridQuery) ([]*Transaction, int64, error)
	Summarize(ctx context.Context, filter *SummaryFilter) ([]*SummaryRow, error)
}
