package gridclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

// pagedServer serves a fixed total and labels items by page so tests can
// tell which page was rendered.
func pagedServer(t *testing.T, total int64) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		_ = json.NewEncoder(w).Encode(GridPage{
			Items: []Transaction{{ID: "page-" + strconv.Itoa(page)}},
			Total: total,
		})
	}))
}

func TestGrid_RefreshPopulatesState(t *testing.T) {
	server := pagedServer(t, 25)
	defer server.Close()

	grid := NewGrid(New(server.URL))
	assert.NoError(t, grid.Refresh(context.Background()))

	assert.Equal(t, 1, grid.Page())
	assert.Equal(t, int64(25), grid.Total())
	assert.Equal(t, 3, grid.TotalPages())
	assert.Len(t, grid.Items(), 1)
	assert.Equal(t, "page-1", grid.Items()[0].ID)
}

func TestGrid_DerivedBooleans(t *testing.T) {
	server := pagedServer(t, 25)
	defer server.Close()

	grid := NewGrid(New(server.URL))

	// Before any load there is nothing to page through.
	assert.False(t, grid.CanGoNext())
	assert.False(t, grid.CanGoPrevious())
	assert.Equal(t, 0, grid.TotalPages())

	assert.NoError(t, grid.SetPage(context.Background(), 2))

	// page=2, size=10, total=25: both directions available.
	assert.True(t, grid.CanGoNext())
	assert.True(t, grid.CanGoPrevious())

	assert.NoError(t, grid.SetPage(context.Background(), 3))
	assert.False(t, grid.CanGoNext())
	assert.True(t, grid.CanGoPrevious())
}

func TestGrid_NextAndPreviousPage(t *testing.T) {
	server := pagedServer(t, 25)
	defer server.Close()

	grid := NewGrid(New(server.URL))
	assert.NoError(t, grid.Refresh(context.Background()))

	assert.NoError(t, grid.NextPage(context.Background()))
	assert.Equal(t, 2, grid.Page())
	assert.Equal(t, "page-2", grid.Items()[0].ID)

	assert.NoError(t, grid.PreviousPage(context.Background()))
	assert.Equal(t, 1, grid.Page())
	assert.Equal(t, "page-1", grid.Items()[0].ID)
}

func TestGrid_NextPageAtEnd(t *testing.T) {
	server := pagedServer(t, 10)
	defer server.Close()

	grid := NewGrid(New(server.URL))
	assert.NoError(t, grid.Refresh(context.Background()))

	assert.Equal(t, 1, grid.TotalPages())
	assert.ErrorIs(t, grid.NextPage(context.Background()), ErrNoNextPage)
	assert.Equal(t, 1, grid.Page())
}

func TestGrid_PreviousPageAtStart(t *testing.T) {
	server := pagedServer(t, 25)
	defer server.Close()

	grid := NewGrid(New(server.URL))
	assert.ErrorIs(t, grid.PreviousPage(context.Background()), ErrNoPreviousPage)
}

func TestGrid_SetPageRejectsZero(t *testing.T) {
	grid := NewGrid(New("http://unused.invalid"))
	assert.Error(t, grid.SetPage(context.Background(), 0))
}

func TestGrid_SetSortResetsToFirstPage(t *testing.T) {
	var lastSortBy, lastSortOrder, lastPage string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		lastSortBy = r.URL.Query().Get("sort_by")
		lastSortOrder = r.URL.Query().Get("sort_order")
		lastPage = r.URL.Query().Get("page")
		_ = json.NewEncoder(w).Encode(GridPage{Total: 50})
	}))
	defer server.Close()

	grid := NewGrid(New(server.URL))
	assert.NoError(t, grid.SetPage(context.Background(), 4))

	assert.NoError(t, grid.SetSort(context.Background(), "amount", "asc"))

	assert.Equal(t, "amount", lastSortBy)
	assert.Equal(t, "asc", lastSortOrder)
	assert.Equal(t, "1", lastPage)
	assert.Equal(t, 1, grid.Page())
}

func TestGrid_CustomPageSizeAndSort(t *testing.T) {
	var lastSize string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		lastSize = r.URL.Query().Get("size")
		_ = json.NewEncoder(w).Encode(GridPage{Total: 100})
	}))
	defer server.Close()

	grid := NewGrid(New(server.URL), WithPageSize(25), WithSort("description", "asc"))
	assert.NoError(t, grid.Refresh(context.Background()))

	assert.Equal(t, "25", lastSize)
	assert.Equal(t, 4, grid.TotalPages())
}

func TestGrid_StaleResponseNeverOverwritesNewerState(t *testing.T) {
	slowStarted := make(chan struct{})
	release := make(chan struct{})

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		page := r.URL.Query().Get("page")
		if page == "1" {
			close(slowStarted)
			select {
			case <-release:
			case <-r.Context().Done():
				return
			}
		}
		_ = json.NewEncoder(w).Encode(GridPage{
			Items: []Transaction{{ID: "page-" + page}},
			Total: 25,
		})
	}))
	defer server.Close()

	grid := NewGrid(New(server.URL))

	slowErr := make(chan error, 1)
	go func() {
		slowErr <- grid.SetPage(context.Background(), 1)
	}()
	<-slowStarted

	// A second load starts while the first is still in flight; the first
	// must not win, no matter when its response lands.
	assert.NoError(t, grid.SetPage(context.Background(), 2))
	assert.Equal(t, "page-2", grid.Items()[0].ID)

	close(release)
	assert.ErrorIs(t, <-slowErr, ErrSuperseded)

	assert.Equal(t, 2, grid.Page())
	assert.Equal(t, "page-2", grid.Items()[0].ID)
	assert.Equal(t, int64(25), grid.Total())
}

func TestGrid_FailedNextPageRollsBack(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("page") == "2" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_ = json.NewEncoder(w).Encode(GridPage{
			Items: []Transaction{{ID: "page-1"}},
			Total: 25,
		})
	}))
	defer server.Close()

	grid := NewGrid(New(server.URL))
	assert.NoError(t, grid.Refresh(context.Background()))

	var apiErr *APIError
	assert.ErrorAs(t, grid.NextPage(context.Background()), &apiErr)

	// The pager still describes page 1, the page it actually holds.
	assert.Equal(t, 1, grid.Page())
	assert.True(t, grid.CanGoNext())
	assert.False(t, grid.CanGoPrevious())
	assert.Equal(t, "page-1", grid.Items()[0].ID)
}

func TestGrid_FailedSetSortRestoresSortAndPage(t *testing.T) {
	var lastQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("sort_by") == "amount" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		lastQuery = r.URL.RawQuery
		_ = json.NewEncoder(w).Encode(GridPage{Total: 50})
	}))
	defer server.Close()

	grid := NewGrid(New(server.URL))
	assert.NoError(t, grid.SetPage(context.Background(), 3))

	assert.Error(t, grid.SetSort(context.Background(), "amount", "asc"))
	assert.Equal(t, 3, grid.Page())

	assert.NoError(t, grid.Refresh(context.Background()))
	assert.Contains(t, lastQuery, "page=3")
	assert.Contains(t, lastQuery, "sort_by=date")
	assert.Contains(t, lastQuery, "sort_order=desc")
}

func TestGrid_LoadErrorSurfaces(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	grid := NewGrid(New(server.URL))
	err := grid.Refresh(context.Background())

	var apiErr *APIError
	assert.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	// Failed loads leave the previous (empty) state in place.
	assert.Empty(t, grid.Items())
	assert.Equal(t, int64(0), grid.Total())
}
