package entity

// Mark is the content of a single board cell.
type Mark string

const (
	PlayerX Mark = "X"
	PlayerO Mark = "O"

	EmptyCell Mark = ""
)

// BoardSize is the number of cells of the 3x3 grid, indexed row-major from 0.
const BoardSize = 9

// Board is one snapshot of marker placements.
type Board [BoardSize]Mark

// IsValidCell reports whether cell addresses a square of the board.
func IsValidCell(cell int) bool {
	return cell >= 0 && cell < BoardSize
}

// IsEmpty reports whether cell holds no mark. cell must satisfy IsValidCell.
func (that Board) IsEmpty(cell int) bool {
	return that[cell] == EmptyCell
}

// IsFull reports whether no empty cell is left.
func (that Board) IsFull() bool {
	for _, cell := range that {
		if cell == EmptyCell {
			return false
		}
	}

	return true
}
