package dbconfig

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
)

// Supported database/sql driver names
const (
	DriverPostgres = "postgres" // lib/pq
	DriverPgx      = "pgx"      // jackc/pgx stdlib
	DriverSQLite   = "sqlite"   // modernc.org/sqlite
)

// Config holds database connection settings.
type Config struct {
	Driver       string
	Host         string
	Port         int
	User         string
	Password     string
	Database     string
	SSLMode      string
	Path         string // sqlite file, ":memory:" for an ephemeral store
	MaxOpenConns int
}

// NewConfigFromEnv reads DB_* environment variables (with defaults).
func NewConfigFromEnv() Config {
	return Config{
		Driver:       strings.ToLower(getEnv("DB_DRIVER", DriverPostgres)),
		Host:         getEnv("DB_HOST", "localhost"),
		Port:         getEnvAsInt("DB_PORT", 5432),
		User:         getEnv("DB_USER", "postgres"),
		Password:     getEnv("DB_PASSWORD", "postgres"),
		Database:     getEnv("DB_NAME", "footballdb"),
		SSLMode:      getEnv("DB_SSLMODE", "disable"),
		Path:         getEnv("DB_PATH", "footballdb.sqlite"),
		MaxOpenConns: getEnvAsInt("DB_MAX_OPEN_CONNS", 10),
	}
}

// Validate checks the driver is one we can open.
func (c Config) Validate() error {
	switch c.Driver {
	case DriverPostgres, DriverPgx:
		if c.Host == "" || c.Database == "" {
			return fmt.Errorf("DB_HOST and DB_NAME are required for driver %q", c.Driver)
		}
	case DriverSQLite:
		if c.Path == "" {
			return fmt.Errorf("DB_PATH is required for driver %q", c.Driver)
		}
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q (want %s, %s or %s)", c.Driver, DriverPostgres, DriverPgx, DriverSQLite)
	}
	return nil
}

// IsSQLite reports whether the config targets the embedded store
func (c Config) IsSQLite() bool {
	return c.Driver == DriverSQLite
}

// DSN returns the connection string for the configured driver.
// SQLite connections always enforce foreign keys and write times in a sortable format.
func (c Config) DSN() string {
	if c.IsSQLite() {
		q := url.Values{}
		q.Add("_pragma", "foreign_keys(1)")
		q.Add("_pragma", "busy_timeout(5000)")
		q.Set("_time_format", "sqlite")
		return c.Path + "?" + q.Encode()
	}

	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.Database,
		RawQuery: "sslmode=" + url.QueryEscape(c.SSLMode),
	}
	return u.String()
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	v, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return fallback
	}
	return v
}
