package config

import (
	"github.com/novera-digital/novera-site/internal/logger"
)

// Supported db.driver values.
const (
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
)

// Config overall data structure.
type Config struct {
	DevMode   bool // enable dev mode for development
	Title     string
	DB        DB
	Log       logger.Log
	Webserver Webserver
	Blog      Blog
	Notify    Notify
}

// Webserver implement webserver settings.
type Webserver struct {
	CORSAllowOrigins string // comma separated list of allowed origins, "*" for all
	DisableRecover   bool   // disable recover middleware
	Domain           string // domain name for the webserver
	Port             int    // listening port for the webserver
	RateLimitPerMin  int    // max POST requests per minute per client IP, 0 disables
	ShutDownTime     int    // wait time for shutdown
	URL              string // base url for the webserver
}

// Blog holds blog content settings.
type Blog struct {
	RecentLimit  int // default number of posts returned by /api/blog/recent
	RelatedLimit int // default number of posts returned by /api/blog/related/:slug

	// DeterministicRelated orders related posts by id instead of shuffling
	// them. Useful for caching layers and reproducible test environments.
	DeterministicRelated bool
}

// DB holds the database configuration settings.
type DB struct {
	Driver   string // memory, sqlite, mysql or postgres
	Path     string // sqlite database file path
	Extras   string
	Host     string
	Port     int
	User     string
	Password string
	Name     string
}

// Notify holds outbound notification settings.
type Notify struct {
	Telegram Telegram
}

// Telegram configures the contact form Telegram relay.
type Telegram struct {
	Enabled bool
	Token   string
	ChatID  string

	// APIBaseURL overrides the Telegram API endpoint. Defaults to
	// https://api.telegram.org, tests point it at a local server.
	APIBaseURL string
}
