package tictactoe

import "github.com/rocketscienceinc/tictactoe-timetravel/internal/entity"

// WinCombos lists every winning triple in the order Evaluate checks them:
// rows, then columns, then diagonals.
var WinCombos = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Verdict is a won board: the winning mark and the triple that completed it.
type Verdict struct {
	Winner entity.Mark `json:"winner"`
	Line   [3]int      `json:"line"`
}

// Contains reports whether cell belongs to the winning line.
func (that Verdict) Contains(cell int) bool {
	for _, idx := range that.Line {
		if idx == cell {
			return true
		}
	}
	return false
}

// Evaluate returns the first triple of WinCombos fully held by one mark.
// A board with several complete triples (never reached by alternating play)
// reports the one that comes first in WinCombos.
func Evaluate(board entity.Board) (Verdict, bool) {
	for _, combo := range WinCombos {
		a, b, c := board[combo[0]], board[combo[1]], board[combo[2]]
		if a != entity.EmptyCell && a == b && b == c {
			return Verdict{Winner: a, Line: combo}, true
		}
	}

	return Verdict{}, false
}
