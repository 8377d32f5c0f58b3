// Package listing holds the search and pagination state of the catalog and
// keeps it in sync with the store.
package listing

import (
	"context"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/vinoteka/vinoteka/internal/db/models"
	"github.com/vinoteka/vinoteka/internal/metrics"
)

// DefaultPageSize is the number of wines per page.
const DefaultPageSize = 10

// Store reads the catalog.
type Store interface {
	// Count returns the number of wines matching term.
	Count(ctx context.Context, term string) (int64, error)
	// Window returns the matching wines [from, to) ordered by id.
	Window(ctx context.Context, term string, from, to int) ([]models.Wine, error)
}

// Option configures a Controller.
type Option func(*Controller)

// WithPageSize sets the page size, values below 1 are ignored.
func WithPageSize(size int) Option {
	return func(c *Controller) {
		if size > 0 {
			c.pageSize = size
		}
	}
}

// WithScrollTop sets the function called whenever the page changes.
func WithScrollTop(fn func()) Option {
	return func(c *Controller) {
		c.scrollTop = fn
	}
}

// Controller owns the listing state. It is safe for concurrent use; of
// overlapping refetches only the most recently issued one is applied.
type Controller struct {
	store     Store
	pageSize  int
	scrollTop func()

	mu      sync.Mutex
	term    string
	page    int
	total   int64
	rows    []models.Wine
	loading bool
	seq     uint64
}

// New returns a Controller on page 1 with an empty term. Nothing is fetched
// until SetSearchTerm, SetPage or Refetch is called.
func New(store Store, opts ...Option) *Controller {
	c := &Controller{
		store:     store,
		pageSize:  DefaultPageSize,
		scrollTop: func() {},
		page:      1,
		rows:      []models.Wine{},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// SetSearchTerm sets term, goes back to page 1 and refetches.
func (c *Controller) SetSearchTerm(ctx context.Context, term string) error {
	c.mu.Lock()
	c.term = term
	c.page = 1
	c.mu.Unlock()

	return c.Refetch(ctx)
}

// SetPage moves to page n and refetches. Pages outside [1, TotalPages] are
// ignored and reported with false.
func (c *Controller) SetPage(ctx context.Context, n int) (bool, error) {
	c.mu.Lock()
	if n < 1 || n > TotalPages(c.total, c.pageSize) {
		c.mu.Unlock()

		return false, nil
	}

	c.page = n
	c.mu.Unlock()

	c.scrollTop()

	return true, c.Refetch(ctx)
}

// Refetch runs the count and the window query for the current term and page
// concurrently and applies both results together. On failure the previous
// rows and total are kept and the error is returned.
func (c *Controller) Refetch(ctx context.Context) error {
	c.mu.Lock()
	c.seq++
	seq := c.seq
	term, page, size := c.term, c.page, c.pageSize
	c.loading = true
	c.mu.Unlock()

	from := (page - 1) * size
	to := from + size

	var (
		total int64
		rows  []models.Wine
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		total, err = c.store.Count(gctx, term)

		return err
	})
	g.Go(func() error {
		var err error
		rows, err = c.store.Window(gctx, term, from, to)

		return err
	})

	err := g.Wait()

	c.mu.Lock()
	defer c.mu.Unlock()

	logger := zerolog.Ctx(ctx)

	if seq != c.seq {
		metrics.StaleRefetches.Inc()
		logger.Debug().
			Uint64("seq", seq).
			Uint64("latest", c.seq).
			Str("term", term).
			Msg("discarding stale listing result")

		return err
	}

	c.loading = false

	if err != nil {
		logger.Error().
			Err(err).
			Str("term", term).
			Int("page", page).
			Msg("error fetching wines")

		return err
	}

	if rows == nil {
		rows = []models.Wine{}
	}

	c.total = total
	c.rows = rows

	return nil
}

// State is a snapshot of the listing.
type State struct {
	Term           string        `json:"term"`
	Page           int           `json:"page"`
	PageSize       int           `json:"pageSize"`
	TotalItems     int64         `json:"totalItems"`
	TotalPages     int           `json:"totalPages"`
	Wines          []models.Wine `json:"wines"`
	Loading        bool          `json:"loading"`
	Pages          []int         `json:"pages"`
	HasPrev        bool          `json:"hasPrev"`
	HasNext        bool          `json:"hasNext"`
	FirstItem      int64         `json:"firstItem"`
	LastItem       int64         `json:"lastItem"`
	ShowPagination bool          `json:"showPagination"`
}

// State returns a snapshot of the current listing.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	totalPages := TotalPages(c.total, c.pageSize)

	st := State{
		Term:           c.term,
		Page:           c.page,
		PageSize:       c.pageSize,
		TotalItems:     c.total,
		TotalPages:     totalPages,
		Wines:          append([]models.Wine(nil), c.rows...),
		Loading:        c.loading,
		Pages:          PageWindow(c.page, totalPages),
		HasPrev:        c.page > 1,
		HasNext:        c.page < totalPages,
		ShowPagination: totalPages > 1,
	}

	if st.Wines == nil {
		st.Wines = []models.Wine{}
	}

	if c.total > 0 {
		st.FirstItem = int64((c.page-1)*c.pageSize) + 1
		st.LastItem = min(int64(c.page*c.pageSize), c.total)
	}

	return st
}
