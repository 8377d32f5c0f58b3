// Package dsn turns the store configuration into a gorm dialector.
package dsn

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/glebarez/sqlite"
	pkgerrors "github.com/pkg/errors"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/vinoteka/vinoteka/internal/config"
)

// Supported engines.
const (
	EnginePostgres = "postgres"
	EngineMySQL    = "mysql"
	EngineSQLite   = "sqlite"

	sqlitePrefix = "sqlite://"
)

var (
	// ErrUnsupportedScheme is returned for store URLs with an unknown scheme.
	ErrUnsupportedScheme = errors.New("unsupported store url scheme")

	// ErrMissingHost is returned for network store URLs without a host.
	ErrMissingHost = errors.New("store url has no host")

	// ErrMissingDatabase is returned for store URLs without a database name.
	ErrMissingDatabase = errors.New("store url has no database name")
)

// Create builds the engine name and the driver specific Data Source Name.
// The store key is used as password of the URL user; Extras are appended as
// query parameters.
func Create(cfg *config.Config) (engine, dsn string, err error) {
	raw := strings.TrimSpace(cfg.Store.URL)

	// sqlite paths like :memory: are not valid URL hosts, keep them verbatim
	if strings.HasPrefix(raw, sqlitePrefix) {
		path := strings.TrimPrefix(raw, sqlitePrefix)
		if path == "" {
			return "", "", ErrMissingDatabase
		}

		return EngineSQLite, withExtras(path, cfg.Store.Extras), nil
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", "", pkgerrors.Wrap(err, "failed to parse store url")
	}

	if u.Host == "" {
		return "", "", ErrMissingHost
	}

	database := strings.TrimPrefix(u.Path, "/")
	if database == "" {
		return "", "", ErrMissingDatabase
	}

	switch u.Scheme {
	case "postgres", "postgresql":
		u.User = url.UserPassword(u.User.Username(), cfg.Store.Key)
		u.RawQuery = mergeQuery(u.RawQuery, cfg.Store.Extras)

		return EnginePostgres, u.String(), nil
	case "mysql":
		query := mergeQuery(u.RawQuery, cfg.Store.Extras)
		if !strings.Contains(query, "parseTime=") {
			query = mergeQuery(query, "parseTime=true")
		}

		return EngineMySQL, fmt.Sprintf("%s:%s@tcp(%s)/%s?%s",
			u.User.Username(),
			cfg.Store.Key,
			u.Host,
			database,
			query,
		), nil
	default:
		return "", "", pkgerrors.Wrap(ErrUnsupportedScheme, u.Scheme)
	}
}

// Open returns the gorm dialector for the configured store.
func Open(cfg *config.Config) (gorm.Dialector, error) {
	engine, dsn, err := Create(cfg)
	if err != nil {
		return nil, err
	}

	switch engine {
	case EnginePostgres:
		return postgres.Open(dsn), nil
	case EngineMySQL:
		return mysql.Open(dsn), nil
	default:
		return sqlite.Open(dsn), nil
	}
}

func withExtras(path, extras string) string {
	if extras == "" {
		return path
	}

	if strings.Contains(path, "?") {
		return path + "&" + extras
	}

	return path + "?" + extras
}

func mergeQuery(query, extras string) string {
	switch {
	case extras == "":
		return query
	case query == "":
		return extras
	default:
		return query + "&" + extras
	}
}
