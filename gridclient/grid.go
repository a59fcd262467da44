package gridclient

import (
	"context"
	"errors"
	"sync"
)

var (
	// ErrNoNextPage is returned by NextPage when already on the last page.
	ErrNoNextPage = errors.New("gridclient: no next page")
	// ErrNoPreviousPage is returned by PreviousPage when already on page 1.
	ErrNoPreviousPage = errors.New("gridclient: no previous page")
	// ErrSuperseded is returned by a load that was overtaken by a newer one.
	// The grid's state belongs to the newer load; callers can ignore it.
	ErrSuperseded = errors.New("gridclient: load superseded")
)

const (
	defaultPageSize  = 10
	defaultSortBy    = "date"
	defaultSortOrder = "desc"
)

// Grid is a stateful pager over the transaction grid endpoint. It holds the
// current page, size, and sort, plus the last loaded page.
//
// Loads are generation-checked: starting a new load cancels the in-flight
// one, and a response that arrives late never overwrites newer state.
type Grid struct {
	client *Client

	mu        sync.Mutex
	page      int
	size      int
	sortBy    string
	sortOrder string
	items     []Transaction
	total     int64
	gen       uint64
	cancel    context.CancelFunc
}

type GridOption func(*Grid)

// WithPageSize sets the page size, clamped to at least 1.
func WithPageSize(size int) GridOption {
	return func(g *Grid) {
		if size > 0 {
			g.size = size
		}
	}
}

// WithSort sets the initial sort column and direction.
func WithSort(sortBy, sortOrder string) GridOption {
	return func(g *Grid) {
		g.sortBy = sortBy
		g.sortOrder = sortOrder
	}
}

func NewGrid(client *Client, opts ...GridOption) *Grid {
	grid := &Grid{
		client:    client,
		page:      1,
		size:      defaultPageSize,
		sortBy:    defaultSortBy,
		sortOrder: defaultSortOrder,
	}
	for _, opt := range opts {
		opt(grid)
	}
	return grid
}

// Refresh reloads the current page.
func (g *Grid) Refresh(ctx context.Context) error {
	return g.load(ctx, nil)
}

// NextPage advances one page and loads it. A failed load rolls the page
// back, so the pager keeps describing the data it actually holds.
func (g *Grid) NextPage(ctx context.Context) error {
	g.mu.Lock()
	if !g.canGoNextLocked() {
		g.mu.Unlock()
		return ErrNoNextPage
	}
	prev := g.page
	g.page++
	g.mu.Unlock()

	return g.load(ctx, func() { g.page = prev })
}

// PreviousPage goes back one page and loads it. A failed load rolls the
// page back.
func (g *Grid) PreviousPage(ctx context.Context) error {
	g.mu.Lock()
	if !g.canGoPreviousLocked() {
		g.mu.Unlock()
		return ErrNoPreviousPage
	}
	prev := g.page
	g.page--
	g.mu.Unlock()

	return g.load(ctx, func() { g.page = prev })
}

// SetPage jumps to the given 1-based page and loads it. A failed load rolls
// the page back.
func (g *Grid) SetPage(ctx context.Context, page int) error {
	if page < 1 {
		return errors.New("gridclient: page must be >= 1")
	}

	g.mu.Lock()
	prev := g.page
	g.page = page
	g.mu.Unlock()

	return g.load(ctx, func() { g.page = prev })
}

// SetSort changes the sort column and direction, resets to page 1, and
// loads. A failed load restores the previous sort and page.
func (g *Grid) SetSort(ctx context.Context, sortBy, sortOrder string) error {
	g.mu.Lock()
	prevPage, prevSortBy, prevSortOrder := g.page, g.sortBy, g.sortOrder
	g.sortBy = sortBy
	g.sortOrder = sortOrder
	g.page = 1
	g.mu.Unlock()

	return g.load(ctx, func() {
		g.page = prevPage
		g.sortBy = prevSortBy
		g.sortOrder = prevSortOrder
	})
}

// load runs one generation-checked fetch. revert is called under the lock
// when the fetch itself fails, never when it was merely superseded: a
// superseded load's state belongs to the newer one.
func (g *Grid) load(ctx context.Context, revert func()) error {
	g.mu.Lock()
	g.gen++
	myGen := g.gen
	if g.cancel != nil {
		g.cancel()
	}
	loadCtx, cancel := context.WithCancel(ctx)
	g.cancel = cancel
	query := GridQuery{
		Page:      g.page,
		Size:      g.size,
		SortBy:    g.sortBy,
		SortOrder: g.sortOrder,
	}
	g.mu.Unlock()

	page, err := g.client.GridPage(loadCtx, query)

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.gen != myGen {
		return ErrSuperseded
	}
	if err != nil {
		if revert != nil {
			revert()
		}
		return err
	}

	g.items = page.Items
	g.total = page.Total
	return nil
}

// Items returns the last loaded page of transactions.
func (g *Grid) Items() []Transaction {
	g.mu.Lock()
	defer g.mu.Unlock()
	items := make([]Transaction, len(g.items))
	copy(items, g.items)
	return items
}

// Total returns the unpaginated row count from the last load.
func (g *Grid) Total() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.total
}

// Page returns the current 1-based page.
func (g *Grid) Page() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.page
}

// PageSize returns the page size.
func (g *Grid) PageSize() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.size
}

// TotalPages derives the page count from the last load's total.
func (g *Grid) TotalPages() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.totalPagesLocked()
}

// CanGoNext reports whether a later page exists.
func (g *Grid) CanGoNext() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.canGoNextLocked()
}

// CanGoPrevious reports whether an earlier page exists.
func (g *Grid) CanGoPrevious() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.canGoPreviousLocked()
}

func (g *Grid) totalPagesLocked() int {
	if g.total <= 0 {
		return 0
	}
	return int((g.total + int64(g.size) - 1) / int64(g.size))
}

func (g *Grid) canGoNextLocked() bool {
	return g.page < g.totalPagesLocked()
}

func (g *Grid) canGoPreviousLocked() bool {
	return g.page > 1
}
