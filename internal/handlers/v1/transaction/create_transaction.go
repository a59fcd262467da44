package transaction

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/ledgerview/dashboard-server/internal/logging"
	"github.com/ledgerview/dashboard-server/internal/operator/actions"
)

// CreateTransactionBody is the request body for creating a transaction.
type CreateTransactionBody struct {
	Description string   `json:"description" minLength:"1" doc:"Transaction description"`
	Amount      string   `json:"amount" required:"true" doc:"Decimal amount"`
	Type        string   `json:"type" required:"true" enum:"credit,debit" doc:"Transaction type"`
	CategoryID  string   `json:"categoryID" required:"true" format:"uuid" doc:"Category UUID"`
	UserID      string   `json:"userID" required:"true" format:"uuid" doc:"Owning user UUID"`
	Date        string   `json:"date,omitempty" format:"date-time" doc:"RFC3339 occurrence date, defaults to now"`
	TagIDs      []string `json:"tagIDs,omitempty" doc:"Tag UUIDs to attach"`
}

// CreateTransactionInput is the Huma input for creating a transaction.
type CreateTransactionInput struct {
	Body CreateTransactionBody
}

// CreateTransactionResponse is the response body for creating a transaction.
type CreateTransactionResponse struct {
	ID string `json:"id" doc:"Created transaction UUID"`
}

// CreateTransactionOutput is the Huma output for creating a transaction.
type CreateTransactionOutput struct {
	Status int
	Body   CreateTransactionResponse
}

// actionProcessor is the interface for running write actions through the
// operator queue.
type actionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// CreateTransactionHandler handles POST /api/v1/transactions.
type CreateTransactionHandler struct {
	Operator actionProcessor
}

// NewCreateTransactionHandler creates a new CreateTransactionHandler.
func NewCreateTransactionHandler(op actionProcessor) *CreateTransactionHandler {
	return &CreateTransactionHandler{Operator: op}
}

// Register registers the create transaction endpoint with the Huma API.
func (h *CreateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-transaction",
		Method:        http.MethodPost,
		Path:          "/api/v1/transactions",
		Summary:       "Create transaction",
		Description:   "Creates a new transaction and attaches the given tags atomically.",
		Tags:          []string{"Transactions"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

// parseCreateTransactionInput parses and validates the API input into an
// operator action.
func parseCreateTransactionInput(input *CreateTransactionInput) (*actions.CreateTransaction, error) {
	amount, err := decimal.NewFromString(input.Body.Amount)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid amount", err)
	}

	categoryID, err := uuid.FromString(input.Body.CategoryID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid categoryID", err)
	}

	userID, err := uuid.FromString(input.Body.UserID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid userID", err)
	}

	var occurredAt time.Time
	if input.Body.Date != "" {
		occurredAt, err = time.Parse(time.RFC3339, input.Body.Date)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid date", err)
		}
	}

	tagIDs := make([]uuid.UUID, len(input.Body.TagIDs))
	for i, raw := range input.Body.TagIDs {
		tagIDs[i], err = uuid.FromString(raw)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid tagID", err)
		}
	}

	return &actions.CreateTransaction{
		Description: input.Body.Description,
		Amount:      amount,
		Type:        input.Body.Type,
		CategoryID:  categoryID,
		UserID:      userID,
		OccurredAt:  occurredAt,
		TagIDs:      tagIDs,
	}, nil
}

func (h *CreateTransactionHandler) handle(ctx context.Context, input *CreateTransactionInput) (*CreateTransactionOutput, error) {
	logData := logging.GetLogData(ctx)

	action, err := parseCreateTransactionInput(input)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("createTransactionMs")
	}
	err = h.Operator.Process(ctx, action)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		if errors.Is(err, actions.ErrCategoryNotFound) {
			return nil, huma.NewError(http.StatusBadRequest, "unknown category", err)
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to create transaction", err)
	}

	if logData != nil {
		logData.AddData("transactionID", action.CreatedID.String())
	}

	return &CreateTransactionOutput{
		Status: http.StatusCreated,
		Body:   CreateTransactionResponse{ID: action.CreatedID.String()},
	}, nil
}
