package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/hasami-shogi/internal/apperror"
)

// Board stores the occupant of every square. It knows nothing about the rules.
type Board struct {
	squares [BoardSize][BoardSize]Occupant
}

// NewBoard - returns the starting position: Red on row a, Black on row i.
func NewBoard() Board {
	var board Board
	for col := range BoardSize {
		board.squares[0][col] = RedPiece
		board.squares[BoardSize-1][col] = BlackPiece
	}
	return board
}

// Get - returns the occupant of sq.
func (that *Board) Get(sq Square) (Occupant, error) {
	if !sq.Valid() {
		return Empty, fmt.Errorf("%w: %s", apperror.ErrInvalidSquare, sq)
	}
	return that.squares[sq.Row][sq.Col], nil
}

// Set - places occupant on sq.
func (that *Board) Set(sq Square, occupant Occupant) error {
	if !sq.Valid() {
		return fmt.Errorf("%w: %s", apperror.ErrInvalidSquare, sq)
	}
	that.squares[sq.Row][sq.Col] = occupant
	return nil
}

// Clear - empties sq.
func (that *Board) Clear(sq Square) error {
	return that.Set(sq, Empty)
}

// At - is Get for squares already known to be on the board. Off-board squares read as Empty.
func (that *Board) At(sq Square) Occupant {
	if !sq.Valid() {
		return Empty
	}
	return that.squares[sq.Row][sq.Col]
}

// Count - returns how many squares hold occupant.
func (that Board) Count(occupant Occupant) int {
	n := 0
	for row := range BoardSize {
		for col := range BoardSize {
			if that.squares[row][col] == occupant {
				n++
			}
		}
	}
	return n
}

// Symbols controls how occupants are drawn by Render.
type Symbols struct {
	Red   string
	Black string
	Empty string
}

// DefaultSymbols draws pieces as R and B and empty squares as a dot.
var DefaultSymbols = Symbols{Red: "R", Black: "B", Empty: "."}

func (that Symbols) of(occupant Occupant) string {
	switch occupant {
	case RedPiece:
		return that.Red
	case BlackPiece:
		return that.Black
	default:
		return that.Empty
	}
}

// Render - draws the board with a column header and a row label per line.
// paint is applied to each cell symbol and may be nil.
func (that *Board) Render(symbols Symbols, paint func(Occupant, string) string) string {
	var sb strings.Builder

	sb.WriteString(" ")
	for col := 1; col <= BoardSize; col++ {
		fmt.Fprintf(&sb, "  %d", col)
	}
	sb.WriteString("\n")

	for row := range BoardSize {
		sb.WriteString(RowLabel(row))
		for col := range BoardSize {
			occupant := that.squares[row][col]
			cell := symbols.of(occupant)
			if paint != nil {
				cell = paint(occupant, cell)
			}
			sb.WriteString("  ")
			sb.WriteString(cell)
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

func (that Board) String() string {
	return that.Render(DefaultSymbols, nil)
}
