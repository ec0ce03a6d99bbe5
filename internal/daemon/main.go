// Package daemon wires the configured storage backend, the notifier and the
// web service together into the running application.
package daemon

import (
	"fmt"

	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog/log"
	gormmysql "gorm.io/driver/mysql"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/novera-digital/novera-site/internal/config"
	"github.com/novera-digital/novera-site/internal/db/dsn"
	"github.com/novera-digital/novera-site/internal/db/models"
	"github.com/novera-digital/novera-site/internal/logger"
	"github.com/novera-digital/novera-site/internal/notify"
	"github.com/novera-digital/novera-site/internal/store"
	"github.com/novera-digital/novera-site/internal/web"
)

// Daemon represents the main application daemon.
type Daemon struct {
	webService *web.Service
	cfg        *config.Config
}

// Start starts the Daemon's web service.
func (d *Daemon) Start() error {
	return d.webService.Start(fmt.Sprintf(":%d", d.cfg.Webserver.Port))
}

// New creates a new Daemon instance with the provided configuration.
func New(cfg *config.Config) *Daemon {
	if cfg == nil {
		log.Fatal().Msg("config is nil")
		return nil
	}

	if err := logger.Init(cfg.Log); err != nil {
		panic(err)
	}

	st := buildStorage(cfg)

	seed(cfg, st)

	notifier := notify.NewTelegram(cfg.Notify.Telegram)

	return &Daemon{
		webService: web.New(cfg, st, notifier),
		cfg:        cfg,
	}
}

// buildStorage opens the content store selected by db.driver. The relational
// drivers run AutoMigrate so a fresh database is usable immediately.
func buildStorage(cfg *config.Config) store.Storage {
	if cfg.DB.Driver == config.DriverMemory {
		log.Info().Msg("using in-memory content store")
		return store.NewMemStorage(cfg.Blog.DeterministicRelated)
	}

	var dbDriver gorm.Dialector

	switch cfg.DB.Driver {
	case config.DriverSQLite:
		dbDriver = sqlite.Open(dsn.CreateSQLite(cfg))
	case config.DriverMySQL:
		dbDriver = gormmysql.Open(dsn.CreateMySQL(cfg))
	case config.DriverPostgres:
		dbDriver = gormpostgres.Open(dsn.CreatePostgres(cfg))
	default:
		// ReadConfig validates the driver, this is unreachable with a loaded config
		panic("unknown db driver: " + cfg.DB.Driver)
	}

	db, err := gorm.Open(dbDriver, &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}

	if err = db.AutoMigrate(
		&models.User{},
		&models.BlogPost{},
		&models.ContactSubmission{},
		&models.NewsletterSubscription{},
	); err != nil {
		panic("failed to migrate database")
	}

	st, err := store.NewDBStorage(db, cfg.Blog.DeterministicRelated)
	if err != nil {
		panic(err)
	}

	log.Info().Str("driver", cfg.DB.Driver).Msg("using database content store")

	return st
}
