package middleware

import (
	"log/slog"
	"slices"

	"gin-jewelry-b2b/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewCORSMiddleware always lets browsers send and read X-Request-ID, and read Location
// after a create.
func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	allow := withHeaders(cfg.AllowHeaders, RequestIDHeader)
	expose := withHeaders(cfg.ExposeHeaders, RequestIDHeader, "Location")

	slog.Info("CORS middleware initialized", "allow_origins", cfg.AllowOrigins, "expose_headers", expose)
	return cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     allow,
		ExposeHeaders:    expose,
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	})
}

func withHeaders(base []string, extra ...string) []string {
	out := slices.Clone(base)
	for _, h := range extra {
		if !slices.Contains(out, h) {
			out = append(out, h)
		}
	}
	return out
}
