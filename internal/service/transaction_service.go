package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ledgerview/dashboard-server/internal/storage"
	"github.com/ledgerview/dashboard-server/internal/storage/sqlconfig"
)

const (
	defaultGridSize    = 10
	maxGridSize        = 100
	defaultRecentLimit = 20
	defaultSortBy      = "date"
	defaultSortOrder   = "desc"
)

// TransactionService handles transaction read logic. Writes go through the
// operator.
type TransactionService struct {
	storage *storage.Storage
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(store *storage.Storage) *TransactionService {
	return &TransactionService{storage: store}
}

// Grid returns one page of the transaction grid. Out-of-range pages return
// empty items with the true total.
func (s *TransactionService) Grid(ctx context.Context, query GridQuery) (*GridPage, error) {
	page := query.Page
	if page < 1 {
		page = 1
	}
	size := query.Size
	if size < 1 {
		size = defaultGridSize
	}
	if size > maxGridSize {
		size = maxGridSize
	}
	sortBy := query.SortBy
	if sortBy == "" {
		sortBy = defaultSortBy
	}
	sortOrder := query.SortOrder
	if sortOrder != "asc" {
		sortOrder = defaultSortOrder
	}

	rows, total, err := s.storage.Transactions.Grid(ctx, &sqlconfig.GridQuery{
		SortBy:    sortBy,
		SortOrder: sortOrder,
		Limit:     size,
		Offset:    (page - 1) * size,
	})
	if err != nil {
		return nil, err
	}

	items := make([]Transaction, len(rows))
	for i, row := range rows {
		items[i] = transactionFromStorage(row)
	}

	return &GridPage{Items: items, Total: total}, nil
}

// ListRecent returns the most recent transactions, newest first.
func (s *TransactionService) ListRecent(ctx context.Context, limit int) ([]Transaction, error) {
	if limit < 1 {
		limit = defaultRecentLimit
	}
	if limit > maxGridSize {
		limit = maxGridSize
	}

	rows, err := s.storage.Transactions.ListRecent(ctx, limit)
	if err != nil {
		return nil, err
	}

	transactions := make([]Transaction, len(rows))
	for i, row := range rows {
		transactions[i] = transactionFromStorage(row)
	}
	return transactions, nil
}

// Summarize aggregates credit/debit totals and per-category totals over an
// optional occurred_at range.
func (s *TransactionService) Summarize(ctx context.Context, from, to *time.Time) (*Summary, error) {
	rows, err := s.storage.Transactions.Summarize(ctx, &sqlconfig.SummaryFilter{
		From: from,
		To:   to,
	})
	if err != nil {
		return nil, err
	}

	summary := &Summary{
		TotalCredit: decimal.Zero,
		TotalDebit:  decimal.Zero,
		Net:         decimal.Zero,
	}

	byName := make(map[string]int)
	for _, row := range rows {
		index, seen := byName[row.CategoryName]
		if !seen {
			index = len(summary.Categories)
			byName[row.CategoryName] = index
			summary.Categories = append(summary.Categories, CategorySummary{
				Name:   row.CategoryName,
				Credit: decimal.Zero,
				Debit:  decimal.Zero,
			})
		}

		switch row.Type {
		case sqlconfig.TransactionTypeCredit:
			summary.TotalCredit = summary.TotalCredit.Add(row.Total)
			summary.Categories[index].Credit = summary.Categories[index].Credit.Add(row.Total)
		case sqlconfig.TransactionTypeDebit:
			summary.TotalDebit = summary.TotalDebit.Add(row.Total)
			summary.Categories[index].Debit = summary.Categories[index].Debit.Add(row.Total)
		}
	}

	summary.Net = summary.TotalCredit.Sub(summary.TotalDebit)
	return summary, nil
}
