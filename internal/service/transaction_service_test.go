package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/ledgerview/dashboard-server/internal/storage"
	"github.com/ledgerview/dashboard-server/internal/storage/sqlconfig"
)

func newTestService(t *testing.T) (*TransactionService, *sqlconfig.MockITransactionTable) {
	t.Helper()
	mockTable := sqlconfig.NewMockITransactionTable(t)
	store := &storage.Storage{Transactions: mockTable}
	svc := NewTransactionService(store)
	return svc, mockTable
}

func makeStorageTransactions(n int, occurredAt time.Time) []*sqlconfig.Transaction {
	rows := make([]*sqlconfig.Transaction, n)
	for i := range rows {
		rows[i] = &sqlconfig.Transaction{
			ID:           uuid.Must(uuid.NewV4()),
			Description:  "Groceries",
			Amount:       decimal.RequireFromString("42.50"),
			Type:         sqlconfig.TransactionTypeDebit,
			CategoryID:   uuid.Must(uuid.NewV4()),
			CategoryName: "Food",
			UserID:       uuid.Must(uuid.NewV4()),
			OccurredAt:   occurredAt,
			CreatedAt:    occurredAt,
			Tags: []sqlconfig.Tag{
				{ID: uuid.Must(uuid.NewV4()), Name: "weekly"},
			},
		}
	}
	return rows
}

// -- Grid tests --

func TestGrid_Defaults(t *testing.T) {
	svc, mockTable := newTestService(t)

	mockTable.EXPECT().Grid(mock.Anything, mock.MatchedBy(func(q *sqlconfig.GridQuery) bool {
		return q.SortBy == "date" &&
			q.SortOrder == "desc" &&
			q.Limit == defaultGridSize &&
			q.Offset == 0
	})).Return([]*sqlconfig.Transaction{}, int64(0), nil)

	page, err := svc.Grid(context.Background(), GridQuery{})

	assert.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.Equal(t, int64(0), page.Total)
}

func TestGrid_OffsetFromPage(t *testing.T) {
	svc, mockTable := newTestService(t)

	mockTable.EXPECT().Grid(mock.Anything, mock.MatchedBy(func(q *sqlconfig.GridQuery) bool {
		return q.Limit == 25 && q.Offset == 50
	})).Return([]*sqlconfig.Transaction{}, int64(120), nil)

	page, err := svc.Grid(context.Background(), GridQuery{Page: 3, Size: 25})

	assert.NoError(t, err)
	assert.Equal(t, int64(120), page.Total)
}

func TestGrid_SizeClampedToMax(t *testing.T) {
	svc, mockTable := newTestService(t)

	mockTable.EXPECT().Grid(mock.Anything, mock.MatchedBy(func(q *sqlconfig.GridQuery) bool {
		return q.Limit == maxGridSize && q.Offset == 0
	})).Return([]*sqlconfig.Transaction{}, int64(0), nil)

	_, err := svc.Grid(context.Background(), GridQuery{Page: 1, Size: 5000})
	assert.NoError(t, err)
}

func TestGrid_SortOrderNormalized(t *testing.T) {
	svc, mockTable := newTestService(t)

	mockTable.EXPECT().Grid(mock.Anything, mock.MatchedBy(func(q *sqlconfig.GridQuery) bool {
		return q.SortBy == "amount" && q.SortOrder == "desc"
	})).Return([]*sqlconfig.Transaction{}, int64(0), nil)

	// Anything that is not "asc" collapses to "desc".
	_, err := svc.Grid(context.Background(), GridQuery{SortBy: "amount", SortOrder: "sideways"})
	assert.NoError(t, err)
}

func TestGrid_ConvertsRows(t *testing.T) {
	svc, mockTable := newTestService(t)

	occurredAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	rows := makeStorageTransactions(2, occurredAt)

	mockTable.EXPECT().Grid(mock.Anything, mock.Anything).Return(rows, int64(25), nil)

	page, err := svc.Grid(context.Background(), GridQuery{Page: 2, Size: 10})

	assert.NoError(t, err)
	assert.Len(t, page.Items, 2)
	assert.Equal(t, int64(25), page.Total)

	item := page.Items[0]
	assert.Equal(t, rows[0].ID, item.ID)
	assert.Equal(t, rows[0].Description, item.Description)
	assert.True(t, rows[0].Amount.Equal(item.Amount))
	assert.Equal(t, TransactionTypeDebit, item.Type)
	assert.Equal(t, rows[0].CategoryID, item.Category.ID)
	assert.Equal(t, "Food", item.Category.Name)
	assert.Equal(t, rows[0].UserID, item.UserID)
	assert.Equal(t, occurredAt, item.OccurredAt)
	assert.Len(t, item.Tags, 1)
	assert.Equal(t, "weekly", item.Tags[0].Name)
}

func TestGrid_StorageError(t *testing.T) {
	svc, mockTable := newTestService(t)

	mockTable.EXPECT().Grid(mock.Anything, mock.Anything).
		Return(nil, int64(0), errors.New("database unavailable"))

	page, err := svc.Grid(context.Background(), GridQuery{})

	assert.Error(t, err)
	assert.Equal(t, "database unavailable", err.Error())
	assert.Nil(t, page)
}

// -- ListRecent tests --

func TestListRecent_DefaultLimit(t *testing.T) {
	svc, mockTable := newTestService(t)

	mockTable.EXPECT().ListRecent(mock.Anything, defaultRecentLimit).
		Return([]*sqlconfig.Transaction{}, nil)

	transactions, err := svc.ListRecent(context.Background(), 0)

	assert.NoError(t, err)
	assert.Empty(t, transactions)
}

func TestListRecent_LimitClamped(t *testing.T) {
	svc, mockTable := newTestService(t)

	mockTable.EXPECT().ListRecent(mock.Anything, maxGridSize).
		Return([]*sqlconfig.Transaction{}, nil)

	_, err := svc.ListRecent(context.Background(), 999)
	assert.NoError(t, err)
}

func TestListRecent_ConvertsRows(t *testing.T) {
	svc, mockTable := newTestService(t)

	occurredAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	rows := makeStorageTransactions(3, occurredAt)

	mockTable.EXPECT().ListRecent(mock.Anything, 3).Return(rows, nil)

	transactions, err := svc.ListRecent(context.Background(), 3)

	assert.NoError(t, err)
	assert.Len(t, transactions, 3)
	assert.Equal(t, rows[1].ID, transactions[1].ID)
}

func TestListRecent_StorageError(t *testing.T) {
	svc, mockTable := newTestService(t)

	mockTable.EXPECT().ListRecent(mock.Anything, mock.Anything).
		Return(nil, errors.New("database unavailable"))

	transactions, err := svc.ListRecent(context.Background(), 5)

	assert.Error(t, err)
	assert.Nil(t, transactions)
}

// -- Summarize tests --

func TestSummarize_Empty(t *testing.T) {
	svc, mockTable := newTestService(t)

	mockTable.EXPECT().Summarize(mock.Anything, mock.Anything).
		Return([]*sqlconfig.SummaryRow{}, nil)

	summary, err := svc.Summarize(context.Background(), nil, nil)

	assert.NoError(t, err)
	assert.True(t, summary.TotalCredit.IsZero())
	assert.True(t, summary.TotalDebit.IsZero())
	assert.True(t, summary.Net.IsZero())
	assert.Empty(t, summary.Categories)
}

func TestSummarize_AggregatesByTypeAndCategory(t *testing.T) {
	svc, mockTable := newTestService(t)

	rows := []*sqlconfig.SummaryRow{
		{Type: sqlconfig.TransactionTypeDebit, CategoryName: "Food", Total: decimal.RequireFromString("120.00")},
		{Type: sqlconfig.TransactionTypeCredit, CategoryName: "Salary", Total: decimal.RequireFromString("2500.00")},
		{Type: sqlconfig.TransactionTypeDebit, CategoryName: "Salary", Total: decimal.RequireFromString("30.00")},
	}
	mockTable.EXPECT().Summarize(mock.Anything, mock.Anything).Return(rows, nil)

	summary, err := svc.Summarize(context.Background(), nil, nil)

	assert.NoError(t, err)
	assert.True(t, summary.TotalCredit.Equal(decimal.RequireFromString("2500.00")))
	assert.True(t, summary.TotalDebit.Equal(decimal.RequireFromString("150.00")))
	assert.True(t, summary.Net.Equal(decimal.RequireFromString("2350.00")))

	assert.Len(t, summary.Categories, 2)
	assert.Equal(t, "Food", summary.Categories[0].Name)
	assert.True(t, summary.Categories[0].Debit.Equal(decimal.RequireFromString("120.00")))
	assert.True(t, summary.Categories[0].Credit.IsZero())
	assert.Equal(t, "Salary", summary.Categories[1].Name)
	assert.True(t, summary.Categories[1].Credit.Equal(decimal.RequireFromString("2500.00")))
	assert.True(t, summary.Categories[1].Debit.Equal(decimal.RequireFromString("30.00")))
}

func TestSummarize_PassesRange(t *testing.T) {
	svc, mockTable := newTestService(t)

	from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 1, 31, 23, 59, 59, 0, time.UTC)

	mockTable.EXPECT().Summarize(mock.Anything, mock.MatchedBy(func(f *sqlconfig.SummaryFilter) bool {
		return f.From != nil && f.From.Equal(from) && f.To != nil && f.To.Equal(to)
	})).Return([]*sqlconfig.SummaryRow{}, nil)

	_, err := svc.Summarize(context.Background(), &from, &to)
	assert.NoError(t, err)
}

func TestSummarize_StorageError(t *testing.T) {
	svc, mockTable := newTestService(t)

	mockTable.EXPECT().Summarize(mock.Anything, mock.Anything).
		Return(nil, errors.New("database unavailable"))

	summary, err := svc.Summarize(context.Background(), nil, nil)

	assert.Error(t, err)
	assert.Nil(t, summary)
}
