package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-timetravel/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/entity"
)

// GameState is the timeline of one game: every board snapshot reached so far
// and the index of the one on display. Whose turn it is is derived from that
// index, never stored.
//
// GameState is not safe for concurrent use.
type GameState struct {
	history     []entity.Board
	currentMove int
}

func NewGameState() *GameState {
	return &GameState{
		history: []entity.Board{{}},
	}
}

// TurnAt returns the mark that moves next from history index move.
func TurnAt(move int) entity.Mark {
	if move%2 == 0 {
		return entity.PlayerX
	}
	return entity.PlayerO
}

// PlayMove places the current player's mark on cell. Any future snapshots past
// the current move are discarded before the new board is appended.
// A rejected move leaves the state untouched.
func (that *GameState) PlayMove(cell int) error {
	if !entity.IsValidCell(cell) {
		return fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, cell)
	}

	current := that.Current()

	if _, won := Evaluate(current); won {
		return apperror.ErrGameFinished
	}

	if !current.IsEmpty(cell) {
		return fmt.Errorf("%w: cell %d", apperror.ErrCellOccupied, cell)
	}

	next := current
	next[cell] = that.Turn()

	that.history = append(that.history[:that.currentMove+1], next)
	that.currentMove = len(that.history) - 1

	return nil
}

// JumpTo moves the pointer to history index move without touching the history.
func (that *GameState) JumpTo(move int) error {
	if move < 0 || move >= len(that.history) {
		return fmt.Errorf("%w: move %d of %d", apperror.ErrInvalidMove, move, len(that.history))
	}

	that.currentMove = move

	return nil
}

func (that *GameState) Current() entity.Board {
	return that.history[that.currentMove]
}

func (that *GameState) CurrentMove() int {
	return that.currentMove
}

func (that *GameState) Turn() entity.Mark {
	return TurnAt(that.currentMove)
}

// Len returns the number of snapshots, the initial empty board included.
func (that *GameState) Len() int {
	return len(that.history)
}

// History returns a copy of every snapshot.
func (that *GameState) History() []entity.Board {
	return append([]entity.Board(nil), that.history...)
}

func (that *GameState) Verdict() (Verdict, bool) {
	return Evaluate(that.Current())
}

func (that *GameState) Status() Status {
	return DeriveStatus(that.Current(), that.currentMove)
}
