package entity

import (
	"fmt"
	"strconv"

	"github.com/rocketscienceinc/hasami-shogi/internal/apperror"
)

// BoardSize is the number of rows and columns of the board.
const BoardSize = 9

const rowLabels = "abcdefghi"

// Square addresses one cell of the board. Row 0 is row "a", Col 0 is column 1.
type Square struct {
	Row int
	Col int
}

// Direction is a unit step along a row or a column.
type Direction struct {
	DRow int
	DCol int
}

var (
	Right = Direction{DRow: 0, DCol: 1}
	Left  = Direction{DRow: 0, DCol: -1}
	Down  = Direction{DRow: 1, DCol: 0}
	Up    = Direction{DRow: -1, DCol: 0}

	// AxisDirections lists the four orthogonal directions in scan order.
	AxisDirections = [4]Direction{Right, Left, Down, Up}
)

// ParseSquare - converts notation such as "a1" or "i9" into a Square.
func ParseSquare(notation string) (Square, error) {
	if len(notation) != 2 {
		return Square{}, fmt.Errorf("%w: %q", apperror.ErrInvalidSquare, notation)
	}

	row := -1
	for i := range len(rowLabels) {
		if rowLabels[i] == notation[0] {
			row = i
			break
		}
	}

	col, err := strconv.Atoi(notation[1:])
	if row < 0 || err != nil || col < 1 || col > BoardSize {
		return Square{}, fmt.Errorf("%w: %q", apperror.ErrInvalidSquare, notation)
	}

	return Square{Row: row, Col: col - 1}, nil
}

// MustParseSquare - is ParseSquare for constant input, it panics on bad notation.
func MustParseSquare(notation string) Square {
	sq, err := ParseSquare(notation)
	if err != nil {
		panic(err)
	}
	return sq
}

// Valid - reports whether the square lies on the 9x9 board.
func (that Square) Valid() bool {
	return that.Row >= 0 && that.Row < BoardSize && that.Col >= 0 && that.Col < BoardSize
}

// Step - returns the neighbouring square in direction dir. The result may be off-board.
func (that Square) Step(dir Direction) Square {
	return Square{Row: that.Row + dir.DRow, Col: that.Col + dir.DCol}
}

func (that Square) String() string {
	if !that.Valid() {
		return fmt.Sprintf("(%d,%d)", that.Row, that.Col)
	}
	return string(rowLabels[that.Row]) + strconv.Itoa(that.Col+1)
}

// RowLabel - returns the letter of the given row index.
func RowLabel(row int) string {
	if row < 0 || row >= BoardSize {
		return "?"
	}
	return string(rowLabels[row])
}
