package transaction

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/ledgerview/dashboard-server/internal/logging"
	"github.com/ledgerview/dashboard-server/internal/service"
)

// SummaryInput is the Huma input for the transaction summary.
type SummaryInput struct {
	From string `query:"from" format:"date-time" doc:"Range start, inclusive"`
	To   string `query:"to" format:"date-time" doc:"Range end, inclusive"`
}

// CategorySummary is the API model for one category's totals.
type CategorySummary struct {
	Name   string `json:"name" doc:"Category name"`
	Credit string `json:"credit" doc:"Decimal credit total"`
	Debit  string `json:"debit" doc:"Decimal debit total"`
}

// SummaryResponseBody is the response body for the transaction summary.
type SummaryResponseBody struct {
	TotalCredit string            `json:"totalCredit" doc:"Decimal credit total"`
	TotalDebit  string            `json:"totalDebit" doc:"Decimal debit total"`
	Net         string            `json:"net" doc:"totalCredit minus totalDebit"`
	Categories  []CategorySummary `json:"categories" doc:"Per-category totals, name-ordered"`
}

// SummaryOutput is the Huma output for the transaction summary.
type SummaryOutput struct {
	Body SummaryResponseBody
}

// transactionSummarizer is the interface for computing summaries.
type transactionSummarizer interface {
	Summarize(ctx context.Context, from, to *time.Time) (*service.Summary, error)
}

// SummaryHandler handles GET /api/v1/transactions/summary.
type SummaryHandler struct {
	TransactionService transactionSummarizer
}

// NewSummaryHandler creates a new SummaryHandler.
func NewSummaryHandler(svc transactionSummarizer) *SummaryHandler {
	return &SummaryHandler{TransactionService: svc}
}

// Register registers the summary endpoint with the Huma API.
func (h *SummaryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "summarize-transactions",
		Method:      http.MethodGet,
		Path:        "/api/v1/transactions/summary",
		Summary:     "Transaction summary",
		Description: "Returns credit/debit totals and per-category totals over an optional date range.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func parseSummaryInput(input *SummaryInput) (from, to *time.Time, err error) {
	if input.From != "" {
		parsed, parseErr := time.Parse(time.RFC3339, input.From)
		if parseErr != nil {
			return nil, nil, huma.NewError(http.StatusBadRequest, "invalid from", parseErr)
		}
		from = &parsed
	}
	if input.To != "" {
		parsed, parseErr := time.Parse(time.RFC3339, input.To)
		if parseErr != nil {
			return nil, nil, huma.NewError(http.StatusBadRequest, "invalid to", parseErr)
		}
		to = &parsed
	}
	return from, to, nil
}

func (h *SummaryHandler) handle(ctx context.Context, input *SummaryInput) (*SummaryOutput, error) {
	logData := logging.GetLogData(ctx)

	from, to, err := parseSummaryInput(input)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("summarizeTransactionsMs")
	}
	summary, err := h.TransactionService.Summarize(ctx, from, to)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to summarize transactions", err)
	}

	resp := SummaryResponseBody{
		TotalCredit: summary.TotalCredit.String(),
		TotalDebit:  summary.TotalDebit.String(),
		Net:         summary.Net.String(),
		Categories:  make([]CategorySummary, len(summary.Categories)),
	}
	for i, category := range summary.Categories {
		resp.Categories[i] = CategorySummary{
			Name:   category.Name,
			Credit: category.Credit.String(),
			Debit:  category.Debit.String(),
		}
	}

	return &SummaryOutput{Body: resp}, nil
}
