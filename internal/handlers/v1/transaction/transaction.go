package transaction

import (
	"time"

	"github.com/ledgerview/dashboard-server/internal/service"
)

// Category is the API response model for a transaction's category.
type Category struct {
	ID   string `json:"id" doc:"Category UUID"`
	Name string `json:"name" doc:"Category name"`
}

// Tag is the API response model for a tag attached to a transaction.
type Tag struct {
	ID   string `json:"id" doc:"Tag UUID"`
	Name string `json:"name" doc:"Tag name"`
}

// Transaction is the API response model for a transaction.
// It is used only for responses, not for request bodies.
type Transaction struct {
	ID          string   `json:"id" doc:"Transaction UUID"`
	Description string   `json:"description" doc:"Transaction description"`
	Amount      string   `json:"amount" doc:"Decimal amount"`
	Type        string   `json:"type" doc:"credit or debit"`
	Category    Category `json:"category" doc:"Transaction category"`
	UserID      string   `json:"userID" doc:"Owning user UUID"`
	Date        string   `json:"date" doc:"RFC3339 occurrence date"`
	CreatedAt   string   `json:"createdAt" doc:"RFC3339 creation time"`
	Tags        []Tag    `json:"tags" doc:"Attached tags"`
}

func fromService(tx service.Transaction) Transaction {
	tags := make([]Tag, len(tx.Tags))
	for i, tag := range tx.Tags {
		tags[i] = Tag{ID: tag.ID.String(), Name: tag.Name}
	}

	return Transaction{
		ID:          tx.ID.String(),
		Description: tx.Description,
		Amount:      tx.Amount.String(),
		Type:        string(tx.Type),
		Category: Category{
			ID:   tx.Category.ID.String(),
			Name: tx.Category.Name,
		},
		UserID:    tx.UserID.String(),
		Date:      tx.OccurredAt.Format(time.RFC3339),
		CreatedAt: tx.CreatedAt.Format(time.RFC3339),
		Tags:      tags,
	}
}
