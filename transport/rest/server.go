package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rocketscienceinc/tictactoe-timetravel/internal/usecase"
)

const shutdownTimeout = 5 * time.Second

type gameSession interface {
	PlayMove(cell int) bool
	JumpTo(move int) bool
	Restart() bool
	View() *usecase.View
}

// Server exposes one game session over HTTP. Handlers take mu around every
// session call, so the session itself needs no locking.
type Server struct {
	logger *slog.Logger
	engine *gin.Engine

	mu      sync.Mutex
	session gameSession
}

func New(logger *slog.Logger, session gameSession) *Server {
	that := &Server{
		logger:  logger.With("component", "rest"),
		engine:  gin.New(),
		session: session,
	}

	that.engine.Use(gin.Recovery(), that.requestLogger())

	that.engine.GET("/ping", pingHandler)

	api := that.engine.Group("/api/game")
	api.GET("", that.handleGetGame)
	api.POST("/move/:cell", that.handleMove)
	api.POST("/jump/:move", that.handleJump)
	api.POST("/restart", that.handleRestart)

	return that
}

func (that *Server) Handler() http.Handler {
	return that.engine
}

// Start serves on addr until ctx is cancelled, then shuts down gracefully.
func (that *Server) Start(ctx context.Context, addr string) error {
	log := that.logger.With("method", "Start")

	srv := &http.Server{
		Addr:         addr,
		Handler:      that.engine,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		defer close(errCh)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	log.Info("HTTP server listening", "addr", addr)

	select {
	case err, ok := <-errCh:
		if !ok {
			return nil
		}
		return fmt.Errorf("failed to start server: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}

	log.Info("HTTP server stopped")

	return nil
}

func (that *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		that.logger.Debug("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}
