// Package modkit provides module wiring and core deps
package modkit

import (
	"taller/internal/modkit/repokit"
	"taller/internal/platform/config"
	"taller/internal/platform/logger"
	"taller/internal/platform/store"
)

// Deps holds core dependencies passed to modules
type Deps struct {
	Log logger.Logger
	Cfg config.Conf

	// SQL is the relational backend, Postgres or the legacy sqlite file
	SQL     repokit.TxRunner
	Dialect store.Dialect

	// CH is optional; nil when clickhouse is disabled
	CH store.Clickhouse
}

// DepsFrom lifts the opened store into module deps
func DepsFrom(log logger.Logger, cfg config.Conf, st *store.Store) Deps {
	sql, dialect := st.SQL()
	return Deps{Log: log, Cfg: cfg, SQL: sql, Dialect: dialect, CH: st.CH}
}
