// Package module defines the minimal contract for a modkit module
package module

import (
	phttp "taller/internal/platform/net/http"
)

// Module is what the api composes
// it lives apart from modkit so a module's ports package can import it without a cycle
type Module interface {
	MountRoutes(r phttp.Router)
	Ports() any
	Name() string
}
