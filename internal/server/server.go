// Package server exposes archive.Service over HTTP with gin.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/rcliao/courtdocs/internal/archive"
)

const requestIDHeader = "X-Request-ID"

// Server holds the HTTP routes over one archive.Service.
type Server struct {
	svc    *archive.Service
	logger *slog.Logger
	router *gin.Engine
}

// New builds the router. A nil logger uses slog.Default().
func New(svc *archive.Service, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{svc: svc, logger: logger}

	r := gin.New()
	r.Use(gin.Recovery(), s.requestLog())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.POST("/documents", s.upload)
	r.GET("/documents/:id", s.getDocument)
	r.DELETE("/documents/:id", s.deleteDocument)
	r.GET("/search", s.search)
	r.GET("/filters", s.filters)
	r.POST("/chat", s.chat)
	r.GET("/stats", s.stats)
	r.GET("/export", s.export)
	r.GET("/suggest", s.suggest)

	s.router = r
	return s
}

// Handler returns the root http.Handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("server.listen", "addr", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		s.logger.Info("server.shutdown")
		return srv.Shutdown(shutdownCtx)
	}
}

// requestLog tags each request with an ID and logs its outcome.
func (s *Server) requestLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Header(requestIDHeader, id)

		c.Next()

		s.logger.Info("http.request",
			"request_id", id,
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
	}
}

func (s *Server) fail(c *gin.Context, status int, msg string, err error) {
	if status >= http.StatusInternalServerError {
		s.logger.Error("http.error", "request_id", c.GetString("request_id"), "error", err)
	}
	if err != nil && status < http.StatusInternalServerError {
		msg = msg + ": " + err.Error()
	}
	c.JSON(status, gin.H{"error": msg})
}

// failLookup maps a store error to 404 or 500.
func (s *Server) failLookup(c *gin.Context, err error) {
	if archive.IsNotFound(err) {
		c.JSON(http.StatusNotFound, gin.H{"error": "document not found"})
		return
	}
	s.fail(c, http.StatusInternalServerError, "internal error", err)
}
