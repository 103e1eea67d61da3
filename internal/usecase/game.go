package usecase

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-timetravel/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/entity"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/tictactoe"
)

const restartLabel = "Restart the game"

// RenderFunc receives the new view after every accepted change.
type RenderFunc func(view *View)

type HistoryEntry struct {
	Move    int    `json:"move"`
	Label   string `json:"label"`
	Current bool   `json:"current"`
}

// View is everything a presentation layer needs to draw the game.
type View struct {
	SessionID   string             `json:"session_id"`
	Board       entity.Board       `json:"board"`
	Turn        entity.Mark        `json:"turn"`
	Verdict     *tictactoe.Verdict `json:"verdict,omitempty"`
	Status      tictactoe.Status   `json:"status"`
	StatusText  string             `json:"status_text"`
	CurrentMove int                `json:"current_move"`
	History     []HistoryEntry     `json:"history"`
}

// GameSession is one game from start to discard. Rejected intents are
// no-ops for the caller; they are only logged.
type GameSession struct {
	logger *slog.Logger

	id        string
	state     *tictactoe.GameState
	renderers []RenderFunc
}

func NewGameSession(logger *slog.Logger) *GameSession {
	id := uuid.NewString()

	return &GameSession{
		logger: logger.With("component", "session", "session", id),
		id:     id,
		state:  tictactoe.NewGameState(),
	}
}

func (that *GameSession) ID() string {
	return that.id
}

// OnChange registers fn to be called after every accepted move or jump.
func (that *GameSession) OnChange(fn RenderFunc) {
	that.renderers = append(that.renderers, fn)
}

// PlayMove forwards a "cell clicked" intent and reports whether it was accepted.
func (that *GameSession) PlayMove(cell int) bool {
	log := that.logger.With("method", "PlayMove", "cell", cell)

	if err := that.state.PlayMove(cell); err != nil {
		that.reject(log, err)
		return false
	}

	log.Debug("move accepted", "move", that.state.CurrentMove())
	if status := that.state.Status(); status.IsOver() {
		log.Info("game over", "status", status.String())
	}

	that.render()

	return true
}

// JumpTo forwards a "history entry clicked" intent.
func (that *GameSession) JumpTo(move int) bool {
	log := that.logger.With("method", "JumpTo", "move", move)

	if err := that.state.JumpTo(move); err != nil {
		that.reject(log, err)
		return false
	}

	log.Debug("jumped")

	that.render()

	return true
}

// Restart shows the empty board again. The old timeline is kept until the
// next move replaces it.
func (that *GameSession) Restart() bool {
	return that.JumpTo(0)
}

func (that *GameSession) View() *View {
	status := that.state.Status()

	view := &View{
		SessionID:   that.id,
		Board:       that.state.Current(),
		Turn:        that.state.Turn(),
		Status:      status,
		StatusText:  status.String(),
		CurrentMove: that.state.CurrentMove(),
		History:     make([]HistoryEntry, 0, that.state.Len()),
	}

	if verdict, ok := that.state.Verdict(); ok {
		view.Verdict = &verdict
	}

	for move := range that.state.Len() {
		view.History = append(view.History, HistoryEntry{
			Move:    move,
			Label:   historyLabel(move),
			Current: move == view.CurrentMove,
		})
	}

	return view
}

func (that *GameSession) render() {
	if len(that.renderers) == 0 {
		return
	}

	view := that.View()
	for _, fn := range that.renderers {
		fn(view)
	}
}

// reject logs a refused intent. Out-of-range indexes never come from normal
// play and are logged louder.
func (that *GameSession) reject(log *slog.Logger, err error) {
	switch {
	case errors.Is(err, apperror.ErrInvalidCell), errors.Is(err, apperror.ErrInvalidMove):
		log.Warn("intent out of range", "error", err)
	default:
		log.Debug("intent rejected", "error", err)
	}
}

func historyLabel(move int) string {
	if move == 0 {
		return restartLabel
	}
	return fmt.Sprintf("Go to move #%d", move)
}
