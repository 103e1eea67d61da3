package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/rocketscienceinc/tictactoe-timetravel/internal/config"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/transport/console"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-timetravel/transport/rest"
)

// RunConsole - plays one game session in the terminal.
func RunConsole(ctx context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	ctx, cancel := withSignals(ctx, log)
	defer cancel()

	session := usecase.NewGameSession(logger)
	log.Info("Starting console session", "session", session.ID())

	if err := console.New(logger, session, in, out, conf.Console.HideHistory).Run(ctx); err != nil {
		return fmt.Errorf("console session failed: %w", err)
	}

	return nil
}

// RunHTTP - serves one game session over HTTP until a signal arrives.
func RunHTTP(ctx context.Context, logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := withSignals(ctx, log)
	defer cancel()

	if conf.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	session := usecase.NewGameSession(logger)
	log.Info("Starting HTTP server", "addr", conf.GetHTTPAddr(), "session", session.ID())

	if err := rest.New(logger, session).Start(ctx, conf.GetHTTPAddr()); err != nil {
		return fmt.Errorf("HTTP server error: %w", err)
	}

	log.Info("Application context canceled, shutting down")

	return nil
}

func withSignals(ctx context.Context, log *slog.Logger) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(ctx)

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		defer signal.Stop(sigs)

		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	return ctx, cancel
}
