package suite

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/rocketscienceinc/tictactoe-timetravel/internal/usecase"
)

const maxWaitDuration = 10 * time.Second

type Suite struct {
	*testing.T
	Logger *slog.Logger

	Session *usecase.GameSession
}

// New returns a context bounded by maxWaitDuration and a fresh game session.
func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	return ctx, &Suite{
		T:       t,
		Logger:  logger,
		Session: usecase.NewGameSession(logger),
	}
}

// PlayMoves plays cells in order and fails the test on the first rejected one.
func (that *Suite) PlayMoves(cells ...int) {
	that.Helper()

	for i, cell := range cells {
		if !that.Session.PlayMove(cell) {
			that.Fatalf("move %d on cell %d was rejected", i+1, cell)
		}
	}
}
