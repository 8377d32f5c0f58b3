// Package daemon opens the store and runs the web service.
package daemon

import (
	"fmt"
	"strings"

	pkgerrors "github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/vinoteka/vinoteka/internal/config"
	"github.com/vinoteka/vinoteka/internal/db/dsn"
	"github.com/vinoteka/vinoteka/internal/db/models"
	gormlog "github.com/vinoteka/vinoteka/internal/logger/adapter/gorm"
	"github.com/vinoteka/vinoteka/internal/web"
)

// Daemon represents the main application daemon.
type Daemon struct {
	cfg        *config.Config
	db         *gorm.DB
	webService *web.Service
}

// Start runs the web service until SIGINT or SIGTERM.
func (d *Daemon) Start() error {
	go d.webService.WaitShutdown()

	return d.webService.Start(fmt.Sprintf(":%d", d.cfg.Webserver.Port))
}

// DB returns the store connection.
func (d *Daemon) DB() *gorm.DB {
	return d.db
}

// New opens the store and builds the web service.
func New(cfg *config.Config) (*Daemon, error) {
	if cfg == nil {
		return nil, config.ErrNilConfig
	}

	db, err := OpenDB(cfg)
	if err != nil {
		return nil, err
	}

	if cfg.DevMode {
		if err = seed(db); err != nil {
			return nil, pkgerrors.Wrap(err, "failed to seed wines")
		}
	}

	webService, err := web.New(cfg, db)
	if err != nil {
		return nil, err
	}

	return &Daemon{
		cfg:        cfg,
		db:         db,
		webService: webService,
	}, nil
}

// OpenDB connects to the configured store. The wine table is only migrated in
// dev mode, otherwise it belongs to the catalog import.
func OpenDB(cfg *config.Config) (*gorm.DB, error) {
	engine, source, err := dsn.Create(cfg)
	if err != nil {
		return nil, err
	}

	dialector, err := dsn.Open(cfg)
	if err != nil {
		return nil, err
	}

	level := gormlogger.Warn
	if cfg.DevMode {
		level = gormlogger.Info
	}

	db, err := gorm.Open(dialector, &gorm.Config{Logger: gormlog.New(level, 0)})
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "failed to connect %s store", engine)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, pkgerrors.Wrap(err, "failed to get sql.DB")
	}

	// every connection to an in-memory sqlite database sees its own database
	if engine == dsn.EngineSQLite && strings.Contains(source, ":memory:") {
		sqlDB.SetMaxOpenConns(1)
	} else if cfg.Store.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.Store.MaxOpenConns)
	}

	if cfg.Store.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.Store.MaxIdleConns)
	}

	var migrate []any
	if cfg.Store.AutoMigrate || cfg.DevMode {
		migrate = append(migrate, &models.ContactMessage{}, &models.NewsletterSubscriber{})
	}

	if cfg.DevMode {
		migrate = append(migrate, &models.Wine{})
	}

	if len(migrate) > 0 {
		if err = db.AutoMigrate(migrate...); err != nil {
			return nil, pkgerrors.Wrap(err, "failed to migrate database")
		}
	}

	log.Info().
		Str("engine", engine).
		Bool("migrated", len(migrate) > 0).
		Msg("store connected")

	return db, nil
}
