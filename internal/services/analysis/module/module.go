// Package module wires the analyzer into the api
package module

import (
	"taller/internal/core/classifier"
	"taller/internal/modkit"
	"taller/internal/modkit/httpkit"
	"taller/internal/services/analysis/domain"
	anhttp "taller/internal/services/analysis/http"
	"taller/internal/services/analysis/service"
)

// Ports exposed by the analysis module
type Ports struct {
	Analyzer domain.AnalyzerPort
}

// New constructs the analysis module over a snapshot loader and an optional recorder
func New(deps modkit.Deps, tax classifier.SnapshotLoader, rec domain.Recorder, opts ...modkit.Option) modkit.Module {
	log := deps.Log.With().Str("module", "analysis").Logger()
	svc := service.New(classifier.NewEngine(tax), rec, FromConfig(deps.Cfg), log)

	base := []modkit.Option{
		modkit.WithName("analysis"),
		modkit.WithPrefix("/analysis"),
		modkit.WithPorts(Ports{Analyzer: svc}),
		modkit.WithRegister(func(r httpkit.Router) { anhttp.Register(r, svc) }),
	}
	return modkit.Build(append(base, opts...)...)
}
