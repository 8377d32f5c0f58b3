// Package wine builds and runs the catalog search queries.
package wine

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/vinoteka/vinoteka/internal/db/controller"
	"github.com/vinoteka/vinoteka/internal/db/models"
	"github.com/vinoteka/vinoteka/internal/metrics"
)

// likeEscape is the LIKE escape character. A backslash would need different
// quoting in MySQL than in Postgres and SQLite.
const likeEscape = "!"

// SearchColumns are matched by a search term, any of them is enough.
var SearchColumns = []string{ //nolint:gochecknoglobals
	models.WineColumnTitle,
	models.WineColumnVariety,
	models.WineColumnWinery,
	models.WineColumnProvince,
}

// ErrInvalidWindow is returned for windows with from < 0 or to < from.
var ErrInvalidWindow = errors.New("invalid result window")

var likeEscaper = strings.NewReplacer( //nolint:gochecknoglobals
	likeEscape, likeEscape+likeEscape,
	"%", likeEscape+"%",
	"_", likeEscape+"_",
)

// Pattern returns the LIKE pattern for term: LIKE wildcards escaped and
// wrapped in %...%. Case folding is left to the database so both sides of the
// comparison go through the same LOWER.
func Pattern(term string) string {
	return "%" + likeEscaper.Replace(term) + "%"
}

// Search filters on a case-insensitive substring match of term in any of
// SearchColumns. An empty term leaves the query unfiltered.
func Search(term string) func(*gorm.DB) *gorm.DB {
	return func(tx *gorm.DB) *gorm.DB {
		if term == "" {
			return tx
		}

		pattern := Pattern(term)
		exprs := make([]clause.Expression, 0, len(SearchColumns))

		for _, column := range SearchColumns {
			exprs = append(exprs, clause.Expr{
				SQL:  "LOWER(?) LIKE LOWER(?) ESCAPE '" + likeEscape + "'",
				Vars: []interface{}{clause.Column{Name: column}, pattern},
			})
		}

		return tx.Clauses(clause.Where{Exprs: []clause.Expression{clause.Or(exprs...)}})
	}
}

// CountQuery is the query counting all rows matching term.
func CountQuery(db *gorm.DB, term string) *gorm.DB {
	return db.Model(&models.Wine{}).Scopes(Search(term))
}

// WindowQuery is the query selecting the rows [from, to) matching term,
// ordered by id.
func WindowQuery(db *gorm.DB, term string, from, to int) *gorm.DB {
	return db.Model(&models.Wine{}).
		Scopes(Search(term)).
		Order(clause.OrderByColumn{Column: clause.Column{Name: models.WineColumnID}}).
		Offset(from).
		Limit(to - from)
}

// Count returns the number of wines matching term.
func Count(ctx context.Context, db *gorm.DB, term string) (int64, error) {
	if db == nil {
		return 0, controller.ErrDBNil
	}

	var total int64
	if err := CountQuery(db.WithContext(ctx), term).Count(&total).Error; err != nil {
		return 0, controller.Wrap("count", models.WineTable, err)
	}

	return total, nil
}

// Window returns the wines [from, to) matching term. It never returns a nil
// slice on success.
func Window(ctx context.Context, db *gorm.DB, term string, from, to int) ([]models.Wine, error) {
	if db == nil {
		return nil, controller.ErrDBNil
	}

	if from < 0 || to < from {
		return nil, ErrInvalidWindow
	}

	wines := make([]models.Wine, 0, to-from)
	if to == from {
		return wines, nil
	}

	if err := WindowQuery(db.WithContext(ctx), term, from, to).Find(&wines).Error; err != nil {
		return nil, controller.Wrap("select", models.WineTable, err)
	}

	return wines, nil
}

// Store serves the listing from a gorm connection.
type Store struct {
	db *gorm.DB
}

// NewStore returns a Store reading from db.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Count implements listing.Store.
func (s *Store) Count(ctx context.Context, term string) (int64, error) {
	start := time.Now()
	total, err := Count(ctx, s.db, term)
	metrics.ObserveQuery("count", start, err)

	return total, err
}

// Window implements listing.Store.
func (s *Store) Window(ctx context.Context, term string, from, to int) ([]models.Wine, error) {
	start := time.Now()
	wines, err := Window(ctx, s.db, term, from, to)
	metrics.ObserveQuery("window", start, err)

	return wines, err
}
