package net

import (
	"context"
	"errors"
	"net/http"
	"testing"

	perr "taller/internal/platform/errors"
	"taller/internal/platform/logger"
)

func TestWithRequestID(t *testing.T) {
	t.Parallel()

	ctx := WithRequestID(context.Background(), "r-9")
	if RequestID(ctx) != "r-9" || logger.RequestID(ctx) != "r-9" {
		t.Fatalf("ids: net=%q logger=%q", RequestID(ctx), logger.RequestID(ctx))
	}
	if got := WithRequestID(context.Background(), ""); RequestID(got) != "" {
		t.Fatalf("empty id must not be stored")
	}
}

func TestFailure(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"not found", perr.NotFoundf("record %d", 3), http.StatusNotFound},
		{"unavailable", perr.Unavailablef("taxonomy"), http.StatusServiceUnavailable},
		{"validation", perr.WithField(perr.New(perr.ErrorCodeValidation, "bad"), "text"), http.StatusBadRequest},
		{"foreign", errors.New("x"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			env := Failure(tc.err, "id")
			if env.StatusCode != tc.status || env.RequestID != "id" {
				t.Fatalf("env=%+v want status %d", env, tc.status)
			}
		})
	}
	if env := Failure(perr.WithField(perr.New(perr.ErrorCodeValidation, "bad"), "text"), ""); env.Field != "text" {
		t.Fatalf("field not carried: %+v", env)
	}
}

func TestSuccess(t *testing.T) {
	t.Parallel()
	env := Success(http.StatusOK, map[string]int{"n": 1}, "")
	if env.Status != "OK" || env.Data == nil || env.Code != perr.ErrorCodeUnknown {
		t.Fatalf("env=%+v", env)
	}
}
