// Package http hosts the chi adapter, the JSON envelope writers, and the server
package http

import (
	"encoding/json"
	stdhttp "net/http"

	pnet "taller/internal/platform/net"
	"taller/internal/platform/net/http/bind"
)

// JSON writes v as application/json with the given status
func JSON(w stdhttp.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// RespondError writes the failure envelope for err
func RespondError(w stdhttp.ResponseWriter, r *stdhttp.Request, err error) {
	env := pnet.Failure(err, pnet.RequestID(r.Context()))
	JSON(w, env.StatusCode, env)
}

// Response is the value return-style handlers produce
type Response struct {
	Status int
	Body   any
}

// Handle adapts a Response-returning handler to net/http
func Handle(h func(r *stdhttp.Request) Response) stdhttp.HandlerFunc {
	return func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		resp := h(r)
		if err, ok := resp.Body.(error); ok && err != nil {
			RespondError(w, r, err)
			return
		}
		status := resp.Status
		if status == 0 {
			status = stdhttp.StatusOK
		}
		if status == stdhttp.StatusNoContent {
			w.WriteHeader(status)
			return
		}
		JSON(w, status, pnet.Success(status, resp.Body, pnet.RequestID(r.Context())))
	}
}

// OK returns a 200 response
func OK(data any) Response { return Response{Status: stdhttp.StatusOK, Body: data} }

// Accepted returns a 202 response
func Accepted(data any) Response { return Response{Status: stdhttp.StatusAccepted, Body: data} }

// Error returns a response whose status comes from err
func Error(err error) Response { return Response{Body: err} }

// GetJSON mounts fn for GET; fn's value is wrapped in a 200 envelope
func GetJSON(r Router, path string, fn func(*stdhttp.Request) (any, error)) {
	r.Get(path, Handle(func(req *stdhttp.Request) Response {
		out, err := fn(req)
		if err != nil {
			return Error(err)
		}
		return OK(out)
	}))
}

// PostJSON mounts fn for POST after decoding and validating the body into T
func PostJSON[T any](r Router, path string, fn func(*stdhttp.Request, T) (any, error)) {
	r.Post(path, Handle(func(req *stdhttp.Request) Response {
		in, err := bind.ParseJSON[T](req)
		if err != nil {
			return Error(err)
		}
		out, err := fn(req, in)
		if err != nil {
			return Error(err)
		}
		return OK(out)
	}))
}
