package actions

import (
	"context"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/ledgerview/dashboard-server/internal/storage"
	"github.com/ledgerview/dashboard-server/internal/storage/sqlconfig"
)

var ErrCategoryNotFound = errors.New("category not found")

// CreateTransaction inserts a transaction and its tag links atomically.
// CreatedID is populated on success.
type CreateTransaction struct {
	Description string
	Amount      decimal.Decimal
	Type        string
	CategoryID  uuid.UUID
	UserID      uuid.UUID
	OccurredAt  time.Time
	TagIDs      []uuid.UUID

	CreatedID uuid.UUID

	IAction
}

func (c *CreateTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	exists, err := writer.CategoryExists(ctx, c.CategoryID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrCategoryNotFound
	}

	occurredAt := c.OccurredAt
	if occurredAt.IsZero() {
		occurredAt = time.Now()
	}

	id, err := writer.InsertTransaction(ctx, &sqlconfig.TransactionCreate{
		Description: c.Description,
		Amount:      c.Amount,
		Type:        c.Type,
		CategoryID:  c.CategoryID,
		UserID:      c.UserID,
		OccurredAt:  occurredAt,
	})
	if err != nil {
		return err
	}

	if err := writer.AttachTags(ctx, id, c.TagIDs); err != nil {
		return err
	}

	c.CreatedID = id
	return nil
}
