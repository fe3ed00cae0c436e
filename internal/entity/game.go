package entity

// Cell is the content of a single board square.
type Cell string

const (
	EmptyCell Cell = ""
	PlayerX   Cell = "X"
	PlayerO   Cell = "O"
)

// Result of checking the board for one side after its move.
type Result string

const (
	ResultWin      Result = "win"
	ResultTie      Result = "tie"
	ResultContinue Result = "continue"
)

const (
	StatusWaiting = "waiting"
	StatusOngoing = "ongoing"
)

const BoardSize = 9

// WinCombos lists every line of three: rows, columns, diagonals.
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

// Board is the 3x3 grid in row-major order (index = row*3 + col).
type Board [BoardSize]Cell

func (that *Board) IsFull() bool {
	for _, cell := range that {
		if cell == EmptyCell {
			return false
		}
	}

	return true
}

// EmptyCells returns the indexes of all unoccupied cells in ascending order.
func (that *Board) EmptyCells() []int {
	cells := make([]int, 0, len(that))
	for i, cell := range that {
		if cell == EmptyCell {
			cells = append(cells, i)
		}
	}

	return cells
}

// HasLine reports whether mark occupies all three cells of any winning line.
func (that *Board) HasLine(mark Cell) bool {
	if mark == EmptyCell {
		return false
	}

	for _, combo := range WinCombos {
		if that[combo[0]] == mark && that[combo[1]] == mark && that[combo[2]] == mark {
			return true
		}
	}

	return false
}

// Evaluate checks the board for mark. A win takes precedence over a tie.
func (that *Board) Evaluate(mark Cell) Result {
	if that.HasLine(mark) {
		return ResultWin
	}

	// the round continues until all the squares are full
	if that.IsFull() {
		return ResultTie
	}

	return ResultContinue
}

func IsValidCell(cell int) bool {
	return cell >= 0 && cell < BoardSize
}
