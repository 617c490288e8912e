package errors

import (
	stderrs "errors"
	"fmt"
	"net/http"
	"testing"
)

func TestHTTPStatusCodeMapping(t *testing.T) {
	cases := []struct {
		code ErrorCode
		want int
	}{
		{ErrorCodeNotFound, http.StatusNotFound},
		{ErrorCodeInvalidArgument, http.StatusUnprocessableEntity},
		{ErrorCodeDuplicateKey, http.StatusConflict},
		{ErrorCodeConflict, http.StatusConflict},
		{ErrorCodeValidation, http.StatusBadRequest},
		{ErrorCodeJSON, http.StatusBadRequest},
		{ErrorCodeTooManyRequests, http.StatusTooManyRequests},
		{ErrorCodeUnavailable, http.StatusServiceUnavailable},
		{ErrorCodeDB, http.StatusInternalServerError},
		{ErrorCodePanic, http.StatusInternalServerError},
		{ErrorCodeUnknown, http.StatusInternalServerError},
		{9999, http.StatusInternalServerError},
	}
	for _, c := range cases {
		if got := HTTPStatusCode(c.code); got != c.want {
			t.Fatalf("HTTPStatusCode(%v) = %d, want %d", c.code, got, c.want)
		}
	}
}

func TestError_WrapAndInspect(t *testing.T) {
	var nilErr *Error
	if nilErr.Error() != "<nil>" {
		t.Fatalf("nil render = %q", nilErr.Error())
	}

	cause := stderrs.New("dial tcp: refused")
	e := Wrapf(cause, ErrorCodeUnavailable, "taxonomy unavailable: %s", "part")
	if e.Error() != "taxonomy unavailable: part: dial tcp: refused" {
		t.Fatalf("Error() = %q", e.Error())
	}
	if !stderrs.Is(e, cause) || Root(e) != cause {
		t.Fatal("cause not reachable through Unwrap")
	}
	if HTTPStatus(e) != http.StatusServiceUnavailable {
		t.Fatalf("HTTPStatus = %d", HTTPStatus(e))
	}

	// an outer fmt wrap keeps the code visible
	outer := fmt.Errorf("analyze: %w", e)
	if !IsCode(outer, ErrorCodeUnavailable) {
		t.Fatalf("CodeOf(outer) = %v", CodeOf(outer))
	}
	if CodeOf(cause) != ErrorCodeUnknown {
		t.Fatal("foreign errors should be Unknown")
	}
}

func TestError_CopyOnWriteMutators(t *testing.T) {
	base := New(ErrorCodeValidation, "bad payload")
	withField := WithField(base, "description")
	withOp := WithOp(withField, "analysis.decode")

	b, _ := As(base)
	f, _ := As(withField)
	o, _ := As(withOp)
	if b.Field() != "" || b.Op() != "" {
		t.Fatal("base mutated")
	}
	if f.Field() != "description" || f.Op() != "" {
		t.Fatalf("withField = %+v", f)
	}
	if o.Field() != "description" || o.Op() != "analysis.decode" {
		t.Fatalf("withOp = %+v", o)
	}

	foreign := stderrs.New("x")
	if WithField(foreign, "f") != foreign || WithOp(foreign, "o") != foreign {
		t.Fatal("foreign errors should pass through unchanged")
	}
}

func TestWire(t *testing.T) {
	if (WireFrom(nil) != Wire{}) {
		t.Fatal("nil should produce zero Wire")
	}
	w := WireFrom(WithField(Wrap(stderrs.New("secret dsn"), ErrorCodeValidation, "invalid"), "record_id"))
	if w.Code != ErrorCodeValidation || w.Message != "invalid" || w.Field != "record_id" {
		t.Fatalf("wire = %+v", w)
	}
	if w := WireFrom(stderrs.New("plain")); w.Code != ErrorCodeUnknown || w.Message != "plain" {
		t.Fatalf("foreign wire = %+v", w)
	}
	status, w := HTTP(NotFoundf("record %d", 7))
	if status != http.StatusNotFound || w.Message != "record 7" {
		t.Fatalf("HTTP() = %d %+v", status, w)
	}
	if status, _ := HTTP(nil); status != http.StatusOK {
		t.Fatalf("HTTP(nil) = %d", status)
	}
}

func TestSugar(t *testing.T) {
	cases := []struct {
		err  error
		code ErrorCode
	}{
		{NotFoundf("x"), ErrorCodeNotFound},
		{InvalidArgf("x"), ErrorCodeInvalidArgument},
		{DBf("x"), ErrorCodeDB},
		{JSONErrf("x"), ErrorCodeJSON},
		{PanicErrf("x"), ErrorCodePanic},
		{Unavailablef("x"), ErrorCodeUnavailable},
		{Internalf("x"), ErrorCodeUnknown},
	}
	for _, c := range cases {
		if CodeOf(c.err) != c.code {
			t.Fatalf("%v: code %v, want %v", c.err, CodeOf(c.err), c.code)
		}
	}
	if WrapIf(nil, ErrorCodeDB, "x") != nil {
		t.Fatal("WrapIf(nil) should be nil")
	}
}
