package service

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/ledgerview/dashboard-server/internal/storage/sqlconfig"
)

// TransactionType distinguishes money in from money out.
type TransactionType string

const (
	TransactionTypeCredit TransactionType = "credit"
	TransactionTypeDebit  TransactionType = "debit"
)

// Category represents a category in the service layer.
type Category struct {
	ID   uuid.UUID
	Name string
}

// Tag represents a tag in the service layer.
type Tag struct {
	ID   uuid.UUID
	Name string
}

// Transaction represents a transaction in the service layer.
type Transaction struct {
	ID          uuid.UUID
	Description string
	Amount      decimal.Decimal
	Type        TransactionType
	Category    Category
	UserID      uuid.UUID
	OccurredAt  time.Time
	CreatedAt   time.Time
	Tags        []Tag
}

// GridQuery selects one page of the transaction grid. Page is 1-based.
type GridQuery struct {
	Page      int
	Size      int
	SortBy    string
	SortOrder string
}

// GridPage is one page of the grid plus the unpaginated row count, from
// which clients derive their page arithmetic.
type GridPage struct {
	Items []Transaction
	Total int64
}

// CategorySummary is the per-category slice of a Summary.
type CategorySummary struct {
	Name   string
	Credit decimal.Decimal
	Debit  decimal.Decimal
}

// Summary is the dashboard roll-up over a date range.
type Summary struct {
	TotalCredit decimal.Decimal
	TotalDebit  decimal.Decimal
	Net         decimal.Decimal
	Categories  []CategorySummary
}

func transactionFromStorage(row *sqlconfig.Transaction) Transaction {
	tags := make([]Tag, len(row.Tags))
	for i, tag := range row.Tags {
		tags[i] = Tag{ID: tag.ID, Name: tag.Name}
	}

	return Transaction{
		ID:          row.ID,
		Description: row.Description,
		Amount:      row.Amount,
		Type:        TransactionType(row.Type),
		Category: Category{
			ID:   row.CategoryID,
			Name: row.CategoryName,
		},
		UserID:     row.UserID,
		OccurredAt: row.OccurredAt,
		CreatedAt:  row.CreatedAt,
		Tags:       tags,
	}
}
