package game

import (
	"github.com/rocketscienceinc/hasami-shogi/internal/entity"
)

// cornerPair is the friendly square that must already be held and the corner square it closes.
type cornerPair struct {
	partner entity.Square
	corner  entity.Square
}

// cornerTriggers maps each of the eight squares next to a corner to the rest of its L shape.
var cornerTriggers = map[entity.Square]cornerPair{
	mustSquare("a2"): {partner: mustSquare("b1"), corner: mustSquare("a1")},
	mustSquare("b1"): {partner: mustSquare("a2"), corner: mustSquare("a1")},
	mustSquare("a8"): {partner: mustSquare("b9"), corner: mustSquare("a9")},
	mustSquare("b9"): {partner: mustSquare("a8"), corner: mustSquare("a9")},
	mustSquare("h1"): {partner: mustSquare("i2"), corner: mustSquare("i1")},
	mustSquare("i2"): {partner: mustSquare("h1"), corner: mustSquare("i1")},
	mustSquare("h9"): {partner: mustSquare("i8"), corner: mustSquare("i9")},
	mustSquare("i8"): {partner: mustSquare("h9"), corner: mustSquare("i9")},
}

func mustSquare(notation string) entity.Square {
	return entity.MustParseSquare(notation)
}

// resolveCaptures - removes every opponent piece flanked by the piece that just landed on dest
// and returns the removed squares. Each axis direction and the corner rule are evaluated
// independently; all that qualify are applied.
func resolveCaptures(board *entity.Board, side entity.Side, dest entity.Square) []entity.Square {
	var captured []entity.Square

	for _, dir := range entity.AxisDirections {
		captured = append(captured, flankedRun(board, side, dest, dir)...)
	}

	captured = append(captured, cornerCapture(board, side, dest)...)

	for _, victim := range captured {
		// every square in captured came from a scan of on-board squares
		_ = board.Clear(victim)
	}

	return captured
}

// flankedRun - walks from dest in direction dir over opponent pieces and returns them
// if the run is closed by a piece of side. Hitting the edge or an empty square yields nothing.
func flankedRun(board *entity.Board, side entity.Side, dest entity.Square, dir entity.Direction) []entity.Square {
	opponent := side.Opponent().Occupant()

	var run []entity.Square

	next := dest.Step(dir)
	for next.Valid() && board.At(next) == opponent {
		run = append(run, next)
		next = next.Step(dir)
	}

	if len(run) == 0 || !next.Valid() || !board.At(next).BelongsTo(side) {
		return nil
	}

	return run
}

// cornerCapture - applies the corner rule when dest is one of the eight trigger squares.
func cornerCapture(board *entity.Board, side entity.Side, dest entity.Square) []entity.Square {
	pair, ok := cornerTriggers[dest]
	if !ok {
		return nil
	}

	if board.At(pair.partner).BelongsTo(side) && board.At(pair.corner) == side.Opponent().Occupant() {
		return []entity.Square{pair.corner}
	}

	return nil
}
