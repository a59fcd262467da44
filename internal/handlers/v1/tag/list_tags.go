package tag

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/ledgerview/dashboard-server/internal/logging"
	"github.com/ledgerview/dashboard-server/internal/service"
)

// Tag is the API response model for a tag.
type Tag struct {
	ID   string `json:"id" doc:"Tag UUID"`
	Name string `json:"name" doc:"Tag name"`
}

// ListTagsInput is the Huma input for listing tags.
type ListTagsInput struct{}

// ListTagsResponseBody is the response body for listing tags.
type ListTagsResponseBody struct {
	Tags []Tag `json:"tags" doc:"All tags, name-ordered"`
}

// ListTagsOutput is the Huma output for listing tags.
type ListTagsOutput struct {
	Body ListTagsResponseBody
}

// tagLister is the interface for listing tags.
type tagLister interface {
	List(ctx context.Context) ([]service.Tag, error)
}

// ListTagsHandler handles GET /api/v1/tags.
type ListTagsHandler struct {
	TagService tagLister
}

// NewListTagsHandler creates a new ListTagsHandler.
func NewListTagsHandler(svc tagLister) *ListTagsHandler {
	return &ListTagsHandler{TagService: svc}
}

// Register registers the list tags endpoint with the Huma API.
func (h *ListTagsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-tags",
		Method:      http.MethodGet,
		Path:        "/api/v1/tags",
		Summary:     "List tags",
		Description: "Returns all tags.",
		Tags:        []string{"Tags"},
	}, h.handle)
}

func (h *ListTagsHandler) handle(ctx context.Context, _ *ListTagsInput) (*ListTagsOutput, error) {
	logData := logging.GetLogData(ctx)

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("listTagsMs")
	}
	tags, err := h.TagService.List(ctx)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to list tags", err)
	}

	if logData != nil {
		logData.AddData("tagCount", len(tags))
	}

	resp := ListTagsResponseBody{
		Tags: make([]Tag, len(tags)),
	}
	for i, tag := range tags {
		resp.Tags[i] = Tag{
			ID:   tag.ID.String(),
			Name: tag.Name,
		}
	}

	return &ListTagsOutput{Body: resp}, nil
}
