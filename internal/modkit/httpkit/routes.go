package httpkit

import "net/http"

// MountUnder mounts a subrouter at prefix and applies per module middleware
func MountUnder(r Router, prefix string, mw []func(http.Handler) http.Handler, mount func(Router)) {
	r.Route(prefix, func(sub Router) {
		if len(mw) > 0 {
			sub.Use(mw...)
		}
		mount(sub)
	})
}

// MountAPIV1 groups modules under /api/v1
func MountAPIV1(r Router, mount func(Router)) {
	r.Route("/api/v1", mount)
}
