// Package config provides centralized configuration management for the
// dashboard backend. Settings come from environment variables with sensible
// defaults and are validated on startup to fail fast on misconfiguration.
package config

import "time"

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	Store     StoreConfig
	Board     BoardConfig
	Inventory InventoryConfig
	Logging   LoggingConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	// Host is the interface to bind to (default: 0.0.0.0)
	Host string `env:"SERVER_HOST" default:"0.0.0.0"`

	// Port is the port to listen on (default: 8080)
	Port int `env:"SERVER_PORT" default:"8080"`

	// ReadTimeout is the maximum duration for reading a request (default: 15s)
	ReadTimeout time.Duration `env:"SERVER_READ_TIMEOUT" default:"15s"`

	// WriteTimeout is the maximum duration for writing a response (default: 30s)
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" default:"30s"`

	// IdleTimeout is the keep-alive timeout (default: 60s)
	IdleTimeout time.Duration `env:"SERVER_IDLE_TIMEOUT" default:"60s"`

	// ShutdownTimeout is the maximum wait for graceful shutdown (default: 30s)
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" default:"30s"`

	// RequestTimeout is the middleware timeout for requests (default: 60s)
	RequestTimeout time.Duration `env:"SERVER_REQUEST_TIMEOUT" default:"60s"`

	// IdentityHeader carries the externally verified user email, set by the
	// authenticating reverse proxy (default: X-Auth-Request-Email)
	IdentityHeader string `env:"SERVER_IDENTITY_HEADER" default:"X-Auth-Request-Email"`
}

// StoreConfig selects and configures the tabular store backends.
// The products store holds one table per category; the board store holds
// the USERS, PREFS_FAV, AUDIT_LOG and SYNC_CATEGORIES tables.
type StoreConfig struct {
	// Backend is the store implementation: csv or postgres (default: csv)
	Backend string `env:"STORE_BACKEND" default:"csv"`

	// ProductsDir is the CSV workbook directory for product tables
	ProductsDir string `env:"STORE_PRODUCTS_DIR" default:"data/products"`

	// BoardDir is the CSV workbook directory for board tables
	BoardDir string `env:"STORE_BOARD_DIR" default:"data/board"`

	// DatabaseURL is the Postgres connection string (required for the
	// postgres backend; supports DATABASE_URL and DB_URL)
	DatabaseURL string `env:"DATABASE_URL" envAlt:"DB_URL"`

	// MaxConns is the maximum number of pooled connections (default: 10)
	MaxConns int `env:"DB_MAX_CONNS" default:"10"`

	// MinConns is the minimum number of pooled connections (default: 2)
	MinConns int `env:"DB_MIN_CONNS" default:"2"`
}

// BoardConfig names the board tables and the audit timezone.
type BoardConfig struct {
	// UsersTable is the user/role lookup table (default: USERS)
	UsersTable string `env:"BOARD_USERS_TABLE" default:"USERS"`

	// FavoritesTable is the per-user favorites table (default: PREFS_FAV)
	FavoritesTable string `env:"BOARD_FAVORITES_TABLE" default:"PREFS_FAV"`

	// AuditTable is the append-only audit log table (default: AUDIT_LOG)
	AuditTable string `env:"BOARD_AUDIT_TABLE" default:"AUDIT_LOG"`

	// CategoriesTable is the category configuration table (default: SYNC_CATEGORIES)
	CategoriesTable string `env:"BOARD_CATEGORIES_TABLE" default:"SYNC_CATEGORIES"`

	// Timezone stamps audit entries (default: Asia/Tehran)
	Timezone string `env:"BOARD_TIMEZONE" default:"Asia/Tehran"`
}

// InventoryConfig holds the product-facing knobs: stock thresholds, the
// static category fallback and the collation locale for sorting.
type InventoryConfig struct {
	// QtyGreen is the minimum quantity reported as in stock (default: 10)
	QtyGreen float64 `env:"QTY_GREEN_THRESHOLD" default:"10"`

	// QtyYellow is the minimum quantity reported as low stock (default: 3)
	QtyYellow float64 `env:"QTY_YELLOW_THRESHOLD" default:"3"`

	// FallbackTabs is the static category list used when the categories
	// table is missing or empty (comma-separated)
	FallbackTabs []string `env:"FALLBACK_TABS" default:"CPU,MAINBOARD,VGA,RAM,SSD,HDD,MONITOR,POWER,CASE,COOLER"`

	// Locale selects the collation used for text sorting (default: fa)
	Locale string `env:"INVENTORY_LOCALE" default:"fa"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: info)
	Level string `env:"LOG_LEVEL" default:"info"`

	// Format is the log format: text or json (default: text)
	Format string `env:"LOG_FORMAT" default:"text"`
}

// Addr returns the server listen address in host:port format.
func (c *ServerConfig) Addr() string {
	if c.Host == "" {
		return ":" + itoa(c.Port)
	}
	return c.Host + ":" + itoa(c.Port)
}

// itoa converts an int to string without importing strconv in this file.
func itoa(i int) string {
	if i == 0 {
		return "0"
	}
	var b [20]byte
	n := len(b)
	neg := i < 0
	if neg {
		i = -i
	}
	for i > 0 {
		n--
		b[n] = byte('0' + i%10)
		i /= 10
	}
	if neg {
		n--
		b[n] = '-'
	}
	return string(b[n:])
}
