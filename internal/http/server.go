// Package http provides the API and metrics HTTP servers.
package http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"slices"
	"sync/atomic"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	codecHTTP "github.com/allisson/linkcodec/internal/codec/http"
	"github.com/allisson/linkcodec/internal/config"
	"github.com/allisson/linkcodec/internal/metrics"
)

// Server is the API server.
type Server struct {
	server  *http.Server
	router  *gin.Engine
	logger  *slog.Logger
	ready   atomic.Bool
	closers []func()
}

// NewServer creates a new API server. SetupRouter must be called before Start.
func NewServer(host string, port int, logger *slog.Logger) *Server {
	return &Server{
		logger: logger,
		server: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", host, port),
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}
}

// SetupRouter builds the gin router. metricsProvider may be nil when metrics are disabled.
func (s *Server) SetupRouter(
	cfg *config.Config,
	codecHandler *codecHTTP.CodecHandler,
	metricsProvider *metrics.Provider,
) {
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(requestid.New(requestid.WithGenerator(func() string {
		return uuid.Must(uuid.NewV7()).String()
	})))
	router.Use(CustomLoggerMiddleware(s.logger))

	corsMiddleware := createCORSMiddleware(cfg.CORSEnabled, cfg.CORSAllowOrigins, cfg.LinksBaseURL, s.logger)
	if corsMiddleware != nil {
		router.Use(corsMiddleware)
	}

	if metricsProvider != nil {
		router.Use(metrics.HTTPMetricsMiddleware(metricsProvider.MeterProvider(), metricsProvider.Namespace()))
	}

	router.GET("/health", s.healthHandler)
	router.GET("/ready", s.readinessHandler)

	// Decode and resolve answer whether a guessed token is valid, so they are the
	// routes a link prober hits. Encode is left unthrottled.
	var decodeLimit []gin.HandlerFunc
	if cfg.RateLimitDecodeEnabled {
		limiter := newIPRateLimiter(cfg.RateLimitDecodeRequestsPerSec, cfg.RateLimitDecodeBurst)
		s.closers = append(s.closers, limiter.Close)
		decodeLimit = append(decodeLimit, limiter.Middleware(s.logger))
	}
	limited := func(h gin.HandlerFunc) []gin.HandlerFunc {
		return append(slices.Clone(decodeLimit), h)
	}

	v1 := router.Group("/v1")

	codec := v1.Group("/codec")
	{
		codec.POST("/encode", codecHandler.EncodeHandler)
		codec.POST("/encode/batch", codecHandler.EncodeBatchHandler)
		codec.POST("/decode", limited(codecHandler.DecodeHandler)...)
	}

	links := v1.Group("/links")
	{
		links.GET("/:resource/resolve", limited(codecHandler.ResolveLinkHandler)...)
		links.GET("/:resource/:id", codecHandler.BuildLinkHandler)
	}

	s.router = router
	s.server.Handler = router
}

// GetHandler returns the http.Handler for testing purposes.
func (s *Server) GetHandler() http.Handler {
	return s.server.Handler
}

// Start serves until Shutdown is called. The server reports ready until ctx is done.
func (s *Server) Start(ctx context.Context) error {
	if s.router == nil {
		return fmt.Errorf("router not configured")
	}

	s.ready.Store(true)
	stop := context.AfterFunc(ctx, func() { s.ready.Store(false) })
	defer stop()

	s.logger.Info("starting http server", slog.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		s.ready.Store(false)
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	s.ready.Store(false)
	for _, closeFn := range s.closers {
		closeFn()
	}
	return s.server.Shutdown(ctx)
}

func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

func (s *Server) readinessHandler(c *gin.Context) {
	if !s.ready.Load() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not_ready"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}
