// Package server exposes the verification provider over HTTP so that other
// front ends, or a remote provider, can reach it.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"factcheck/internal/config"
	"factcheck/internal/logging"
	"factcheck/internal/provider"
	"factcheck/internal/stats"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// StatsSource provides aggregate statistics for GET /v1/stats.
type StatsSource interface {
	Snapshot() stats.Aggregate
}

// Server is the HTTP API.
type Server struct {
	cfg      config.ServerConfig
	provider provider.Provider
	stats    StatsSource
	logger   *zap.Logger
	engine   *gin.Engine
}

// New builds the router. st may be nil.
func New(cfg config.ServerConfig, p provider.Provider, st StatsSource, logger *zap.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)

	s := &Server{
		cfg:      cfg,
		provider: p,
		stats:    st,
		logger:   logging.For(logger, logging.CategoryServer),
	}

	g := gin.New()
	g.Use(s.requestLogger(), gin.Recovery())
	s.attachRoutes(g)
	s.engine = g
	return s
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) attachRoutes(r *gin.Engine) {
	origins := s.cfg.AllowOrigins
	if len(origins) == 0 {
		origins = []string{"http://localhost:3000"}
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:  origins,
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))

	r.GET("/healthz", s.health)

	v1 := r.Group("/v1")
	{
		v1.POST("/verify", s.verify)
		v1.GET("/stats", s.statsSnapshot)
	}
}

// ListenAndServe serves until ctx is done, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	httpSrv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- httpSrv.ListenAndServe()
	}()
	s.logger.Info("listening", zap.String("addr", s.cfg.Addr))

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(shutCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.logger.Debug("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("elapsed", time.Since(start)))
	}
}
