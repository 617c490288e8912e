package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"taller/internal/platform/testkit"
	"taller/internal/services/analysis/domain"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := NewRoot()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestAnalyzeStaticJSON(t *testing.T) {
	out, err := run(t, "analyze", "--static", "--json",
		"Repuestos: 1 filtro de aceite | Trabajo realizado: Service general completo")
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	var rep domain.Report
	if err := json.Unmarshal([]byte(out), &rep); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	if rep.BestPart == nil || *rep.BestPart != "Filtros de aceite" {
		t.Fatalf("best part: %v", rep.BestPart)
	}
	if rep.BestLabor == nil {
		t.Fatalf("expected a labor match: %+v", rep)
	}
}

func TestAnalyzeStaticText(t *testing.T) {
	out, err := run(t, "analyze", "--static", "cambio de aceite")
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	for _, want := range []string{"Detectados", "Repuestos", "Trabajos", "Cambio de aceite"} {
		testkit.MustContain(t, out, want)
	}
}

func TestClassifyBadKind(t *testing.T) {
	if _, err := run(t, "classify", "--static", "--kind", "motor", "filtro"); err == nil {
		t.Fatal("expected an error for an unknown kind")
	}
}

func TestClassifyStatic(t *testing.T) {
	out, err := run(t, "classify", "--static", "--kind", "labor", "service general")
	if err != nil {
		t.Fatalf("classify: %v", err)
	}
	testkit.MustContain(t, out, "Mantenimiento General")
}

func TestAnalyzeNeedsText(t *testing.T) {
	if _, err := run(t, "analyze", "--static"); err == nil {
		t.Fatal("expected an args error")
	}
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.HasPrefix(out, "taller ") {
		t.Fatalf("output: %q", out)
	}
}
