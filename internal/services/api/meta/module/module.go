// Package module wires meta endpoints into the API using a tiny module
package module

import (
	"time"

	"taller/internal/modkit"
	"taller/internal/modkit/httpkit"
	metahttp "taller/internal/services/api/meta/http"
)

// New constructs a meta module; the deps' SQL and CH seams become readiness checks
func New(deps modkit.Deps, d metahttp.Deps, opts ...modkit.Option) modkit.Module {
	if d.StartedAt.IsZero() {
		d.StartedAt = time.Now()
	}
	if d.ServiceName == "" {
		d.ServiceName = "taller-api"
	}
	var sql, ch any
	if deps.SQL != nil {
		sql = deps.SQL
	}
	if deps.CH != nil {
		ch = deps.CH
	}
	d.Checks = append(d.Checks, metahttp.Check{Name: "sql", Pinger: sql}, metahttp.Check{Name: "clickhouse", Pinger: ch})

	return modkit.Build(append([]modkit.Option{
		modkit.WithName("meta"),
		modkit.WithPrefix("/meta"),
		modkit.WithRegister(func(r httpkit.Router) { metahttp.Register(r, d) }),
	}, opts...)...)
}
