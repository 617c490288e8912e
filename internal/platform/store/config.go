package store

import (
	"time"

	"taller/internal/platform/config"
)

// Config aggregates per backend configuration
type Config struct {
	AppName string

	PG     PGConfig
	SQLite SQLiteConfig
	CH     CHConfig
}

// PGConfig configures postgres connectivity and tracing
type PGConfig struct {
	Enabled     bool
	URL         string
	MaxConns    int32
	LogSQL      bool
	SlowQueryMs int

	// boot knobs; zero picks the defaults in openPG
	ConnectRetries int
	PingTimeout    time.Duration
}

// SQLiteConfig configures the legacy sqlite file
type SQLiteConfig struct {
	Enabled     bool
	Path        string
	BusyTimeout time.Duration
	LogSQL      bool
}

// CHConfig configures clickhouse connectivity
type CHConfig struct {
	Enabled bool
	URL     string
	Role    string // reported in client info, e.g. "api" or "cli"
}

// FromConfig reads SERVICE_STORE_DRIVER and the per backend SERVICE_* keys
// role tags the clickhouse client info, e.g. "api" or "cli"
func FromConfig(root config.Conf, role string) Config {
	driver := root.MayEnum("SERVICE_STORE_DRIVER", string(DialectPG), string(DialectPG), string(DialectSQLite))
	pg := root.Prefix("SERVICE_PGSQL_")
	lite := root.Prefix("SERVICE_SQLITE_")
	ch := root.Prefix("SERVICE_CLICKHOUSE_")

	cfg := Config{AppName: "taller-" + role}
	switch Dialect(driver) {
	case DialectSQLite:
		cfg.SQLite = SQLiteConfig{
			Enabled:     true,
			Path:        lite.MayString("PATH", "taller.db"),
			BusyTimeout: lite.MayDuration("BUSY_TIMEOUT", 5*time.Second),
			LogSQL:      lite.MayBool("LOG_SQL", false),
		}
	default:
		cfg.PG = PGConfig{
			Enabled:     true,
			URL:         pg.MustString("DBURL"),
			MaxConns:    int32(pg.MayInt("MAX_CONNS", 4)),
			SlowQueryMs: pg.MayInt("SLOW_MS", 500),
			LogSQL:      pg.MayBool("LOG_SQL", false),
		}
	}
	if ch.MayBool("ENABLED", false) {
		cfg.CH = CHConfig{Enabled: true, URL: ch.MustString("DBURL"), Role: role}
	}
	return cfg
}
