package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/ledgerview/dashboard-server/internal/logging"
	"github.com/ledgerview/dashboard-server/internal/service"
)

// GridTransactionsInput is the Huma input for the transaction grid.
// Page is 1-based; invalid sort names and directions are rejected by schema
// validation before the handler runs.
type GridTransactionsInput struct {
	Page      int    `query:"page" default:"1" minimum:"1" doc:"1-based page number"`
	Size      int    `query:"size" default:"10" minimum:"1" maximum:"100" doc:"Page size"`
	SortBy    string `query:"sort_by" default:"date" enum:"date,amount,description,type,category" doc:"Sort column"`
	SortOrder string `query:"sort_order" default:"desc" enum:"asc,desc" doc:"Sort direction"`
}

// GridTransactionsResponseBody is the response body for the transaction grid.
type GridTransactionsResponseBody struct {
	Items []Transaction `json:"items" doc:"Page of transactions"`
	Total int64         `json:"total" doc:"Unpaginated row count for page arithmetic"`
}

// GridTransactionsOutput is the Huma output for the transaction grid.
type GridTransactionsOutput struct {
	Body GridTransactionsResponseBody
}

// transactionGridder is the interface for fetching grid pages.
type transactionGridder interface {
	Grid(ctx context.Context, query service.GridQuery) (*service.GridPage, error)
}

// GridTransactionsHandler handles GET /api/v1/transactions/grid.
type GridTransactionsHandler struct {
	TransactionService transactionGridder
}

// NewGridTransactionsHandler creates a new GridTransactionsHandler.
func NewGridTransactionsHandler(svc transactionGridder) *GridTransactionsHandler {
	return &GridTransactionsHandler{TransactionService: svc}
}

// Register registers the transaction grid endpoint with the Huma API.
func (h *GridTransactionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "grid-transactions",
		Method:      http.MethodGet,
		Path:        "/api/v1/transactions/grid",
		Summary:     "Transaction grid page",
		Description: "Returns one sorted page of transactions plus the total row count.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *GridTransactionsHandler) handle(ctx context.Context, input *GridTransactionsInput) (*GridTransactionsOutput, error) {
	logData := logging.GetLogData(ctx)

	query := service.GridQuery{
		Page:      input.Page,
		Size:      input.Size,
		SortBy:    input.SortBy,
		SortOrder: input.SortOrder,
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("gridTransactionsMs")
	}
	page, err := h.TransactionService.Grid(ctx, query)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to load transaction grid", err)
	}

	if logData != nil {
		logData.AddData("itemCount", len(page.Items))
		logData.AddData("total", page.Total)
	}

	resp := GridTransactionsResponseBody{
		Items: make([]Transaction, len(page.Items)),
		Total: page.Total,
	}
	for i, item := range page.Items {
		resp.Items[i] = fromService(item)
	}

	return &GridTransactionsOutput{Body: resp}, nil
}
