package modkit

import (
	"net/http"

	"taller/internal/modkit/httpkit"
	phttp "taller/internal/platform/net/http"
)

// Built is a module assembled from options; it satisfies Module
type Built struct {
	name     string
	prefix   string
	mw       []func(http.Handler) http.Handler
	ports    any
	register func(phttp.Router)
}

// Build applies opts and returns the module
func Build(opts ...Option) *Built {
	var c buildCfg
	for _, o := range opts {
		o(&c)
	}
	if c.register == nil {
		c.register = func(phttp.Router) {}
	}
	return &Built{
		name:     c.name,
		prefix:   c.prefix,
		mw:       append([]func(http.Handler) http.Handler(nil), c.mw...),
		ports:    c.ports,
		register: c.register,
	}
}

// Name returns the module name
func (b *Built) Name() string { return b.name }

// Prefix returns the mount prefix, "" for the router root
func (b *Built) Prefix() string { return b.prefix }

// Ports returns the port bundle
func (b *Built) Ports() any { return b.ports }

// MountRoutes mounts the module's endpoints under its prefix with its middleware
func (b *Built) MountRoutes(r phttp.Router) {
	if b.prefix == "" {
		r.Group(func(g phttp.Router) {
			if len(b.mw) > 0 {
				g.Use(b.mw...)
			}
			b.register(g)
		})
		return
	}
	httpkit.MountUnder(r, b.prefix, b.mw, b.register)
}
