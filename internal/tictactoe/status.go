package tictactoe

import "github.com/rocketscienceinc/tictactoe-timetravel/internal/entity"

type Outcome string

const (
	OutcomeWinner     Outcome = "winner"
	OutcomeDraw       Outcome = "draw"
	OutcomeInProgress Outcome = "in_progress"
)

// Status is the presentation-facing classification of a snapshot. The
// winning line lives in Verdict only.
type Status struct {
	Outcome Outcome     `json:"outcome"`
	Winner  entity.Mark `json:"winner,omitempty"`
	Next    entity.Mark `json:"next,omitempty"`
}

// DeriveStatus classifies board, reached at history index move.
func DeriveStatus(board entity.Board, move int) Status {
	if verdict, ok := Evaluate(board); ok {
		return Status{
			Outcome: OutcomeWinner,
			Winner:  verdict.Winner,
		}
	}

	if board.IsFull() {
		return Status{Outcome: OutcomeDraw}
	}

	return Status{
		Outcome: OutcomeInProgress,
		Next:    TurnAt(move),
	}
}

func (that Status) IsOver() bool {
	return that.Outcome != OutcomeInProgress
}

func (that Status) String() string {
	switch that.Outcome {
	case OutcomeWinner:
		return "Winner: " + string(that.Winner)
	case OutcomeDraw:
		return "It's a draw!"
	default:
		return "Next player: " + string(that.Next)
	}
}
