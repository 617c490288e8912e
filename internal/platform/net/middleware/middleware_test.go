package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	perr "taller/internal/platform/errors"
	pnet "taller/internal/platform/net"
)

func TestRecoverJSON(t *testing.T) {
	t.Parallel()

	h := RequestID()(RecoverJSON(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})))
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "req-1")
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status=%d", rec.Code)
	}
	var env pnet.Envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if env.Code != perr.ErrorCodePanic || env.RequestID != "req-1" {
		t.Fatalf("envelope=%+v", env)
	}
	if rec.Header().Get("X-Request-ID") != "req-1" {
		t.Fatalf("request id header missing")
	}
}

func TestRequestLogger_CarriesID(t *testing.T) {
	t.Parallel()

	var seen string
	h := RequestID()(RequestLogger(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		seen = pnet.RequestID(r.Context())
	})))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "abc")
	h.ServeHTTP(httptest.NewRecorder(), req)
	if seen != "abc" {
		t.Fatalf("request id=%q", seen)
	}
}

func TestAccessLog_CapturesStatus(t *testing.T) {
	t.Parallel()

	var cw *captureWriter
	h := AccessLog(AccessLogOptions{})(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		cw = w.(*captureWriter)
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("hi"))
	}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusTeapot || cw.status != http.StatusTeapot || cw.bytes != 2 {
		t.Fatalf("rec=%d captured=%d bytes=%d", rec.Code, cw.status, cw.bytes)
	}
}

func TestCORS_Preflight(t *testing.T) {
	t.Parallel()

	h := CORS(CORSOptions{})(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {}))
	req := httptest.NewRequest(http.MethodOptions, "/api/v1/analysis", nil)
	req.Header.Set("Origin", "http://example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Header().Get("Access-Control-Allow-Origin") == "" {
		t.Fatalf("missing allow origin header: %v", rec.Header())
	}
}
