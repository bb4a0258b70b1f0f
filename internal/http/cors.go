package http

import (
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// createCORSMiddleware returns a CORS middleware for the browser console, or nil when
// CORS is disabled or no usable origin is known. Console pages call encode and resolve
// directly, so only GET and POST with a JSON body are allowed.
//
// With no explicit origins, the origin of linksBaseURL is allowed: the page that receives
// a link is the one that resolves it.
func createCORSMiddleware(enabled bool, allowOriginsStr, linksBaseURL string, logger *slog.Logger) gin.HandlerFunc {
	if !enabled {
		return nil
	}

	origins, rejected := parseOrigins(allowOriginsStr)
	for _, r := range rejected {
		logger.Warn("ignoring invalid CORS origin", slog.String("origin", r))
	}
	if len(origins) == 0 && linksBaseURL != "" {
		origins, _ = parseOrigins(linksBaseURL)
	}
	if len(origins) == 0 {
		logger.Warn("CORS enabled but no origins configured - CORS will not be applied")
		return nil
	}

	logger.Info("CORS enabled",
		slog.Int("origin_count", len(origins)),
		slog.Any("origins", origins))

	return cors.New(cors.Config{
		AllowOrigins:  origins,
		AllowMethods:  []string{"GET", "POST"},
		AllowHeaders:  []string{"Content-Type"},
		ExposeHeaders: []string{"X-Request-Id", "Retry-After"},
		MaxAge:        12 * time.Hour,
	})
}

// parseOrigins splits a comma-separated list into scheme://host[:port] origins. Paths
// and trailing slashes are dropped, since browsers never send them in Origin. Entries
// without an http(s) scheme and host are returned in rejected.
func parseOrigins(originsStr string) (origins, rejected []string) {
	for part := range strings.SplitSeq(originsStr, ",") {
		trimmed := strings.TrimSpace(part)
		if trimmed == "" {
			continue
		}
		u, err := url.Parse(trimmed)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			rejected = append(rejected, trimmed)
			continue
		}
		origins = append(origins, u.Scheme+"://"+u.Host)
	}
	return origins, rejected
}
