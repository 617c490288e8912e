package httpkit

import (
	"net/http"
	"time"

	"taller/internal/platform/config"
	"taller/internal/platform/net/middleware"
)

// CommonStack is the root middleware slice; cfg is the CORE_API_ prefix
func CommonStack(cfg config.Conf) []func(http.Handler) http.Handler {
	stack := []func(http.Handler) http.Handler{
		middleware.Heartbeat("/health"),
		middleware.CORS(middleware.CORSOptions{
			AllowedOrigins: cfg.MayCSV("CORS_ORIGINS", nil),
		}),
	}
	return append(stack, middleware.Defaults(cfg.MayDuration("SLOW_REQUEST", 500*time.Millisecond))...)
}
