package http

import (
	stdctx "context"
	"encoding/json"
	"errors"
	stdhttp "net/http"
	"net/http/httptest"
	"testing"
	"time"

	"taller/internal/core/taxonomy"
	phttp "taller/internal/platform/net/http"

	"github.com/go-chi/chi/v5"
)

type pinger struct{ err error }

func (p pinger) Ping(stdctx.Context) error { return p.err }

type stats []taxonomy.Stat

func (s stats) Stats() []taxonomy.Stat { return s }

func get[T any](t *testing.T, d Deps, path string) T {
	t.Helper()
	m := chi.NewRouter()
	phttp.AdaptChi(m).Route("/meta", func(r phttp.Router) { Register(r, d) })

	rec := httptest.NewRecorder()
	m.ServeHTTP(rec, httptest.NewRequest(stdhttp.MethodGet, "/meta"+path, nil))
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("GET %s: status %d body %s", path, rec.Code, rec.Body.String())
	}
	var env struct {
		Data T `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("unmarshal %q: %v", rec.Body.String(), err)
	}
	return env.Data
}

func TestReady(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		checks []Check
		want   string
	}{
		{"all ok", []Check{{"sql", pinger{}}, {"clickhouse", nil}}, "ok"},
		{"not a pinger", []Check{{"sql", pinger{}}, {"odd", 42}}, "degraded"},
		{"failing", []Check{{"sql", pinger{err: errors.New("connection refused")}}, {"odd", 42}}, "fail"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := get[ReadyResponse](t, Deps{Checks: tc.checks}, "/ready")
			if got.Status != tc.want || len(got.Checks) != len(tc.checks) {
				t.Fatalf("ready = %+v, want status %q", got, tc.want)
			}
		})
	}
}

func TestReady_ReportsError(t *testing.T) {
	t.Parallel()
	got := get[ReadyResponse](t, Deps{Checks: []Check{{"sql", pinger{err: errors.New("down")}}}}, "/ready")
	if got.Checks[0].Status != "fail" || got.Checks[0].Error != "down" {
		t.Fatalf("check: %+v", got.Checks[0])
	}
}

func TestService_Uptime(t *testing.T) {
	t.Parallel()
	d := Deps{ServiceName: "taller-api", StartedAt: time.Now().Add(-90 * time.Second)}
	got := get[ServiceResponse](t, d, "/service")
	if got.Name != "taller-api" || got.Uptime < 89 {
		t.Fatalf("service: %+v", got)
	}
}

func TestEngine(t *testing.T) {
	t.Parallel()

	got := get[EngineResponse](t, Deps{Threshold: 0.3}, "/engine")
	if got.Threshold != 0.3 || got.Divisor != 2 || got.Taxonomy == nil || len(got.Taxonomy) != 0 {
		t.Fatalf("engine without taxonomy: %+v", got)
	}

	d := Deps{Taxonomy: stats{{Kind: taxonomy.KindPart, Categories: 3}}}
	got = get[EngineResponse](t, d, "/engine")
	if len(got.Taxonomy) != 1 || got.Taxonomy[0].Categories != 3 {
		t.Fatalf("engine taxonomy: %+v", got.Taxonomy)
	}
	if got.Build.Service != "taller" {
		t.Fatalf("build: %+v", got.Build)
	}
}
