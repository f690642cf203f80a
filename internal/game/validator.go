package game

import (
	"fmt"

	"github.com/rocketscienceinc/hasami-shogi/internal/apperror"
	"github.com/rocketscienceinc/hasami-shogi/internal/entity"
)

// validateMove - checks that side may move the piece on start to end. It never touches the board.
func validateMove(board *entity.Board, outcome entity.Outcome, side entity.Side, start, end entity.Square) error {
	if outcome.IsFinished() {
		return fmt.Errorf("%w: %s", apperror.ErrGameFinished, outcome)
	}

	if !start.Valid() {
		return fmt.Errorf("%w: start %s", apperror.ErrInvalidSquare, start)
	}

	if !end.Valid() {
		return fmt.Errorf("%w: end %s", apperror.ErrInvalidSquare, end)
	}

	if !board.At(start).BelongsTo(side) {
		return fmt.Errorf("%w: %w: %s holds %s", apperror.ErrIllegalMove, apperror.ErrNotYourPiece, start, board.At(start))
	}

	dir, ok := directionBetween(start, end)
	if !ok {
		return fmt.Errorf("%w: %w: %s to %s", apperror.ErrIllegalMove, apperror.ErrNotStraightLine, start, end)
	}

	// the destination is part of the scanned range, so an occupied end square is rejected here too
	for sq := start.Step(dir); ; sq = sq.Step(dir) {
		if board.At(sq) != entity.Empty {
			return fmt.Errorf("%w: %w: %s", apperror.ErrIllegalMove, apperror.ErrPathBlocked, sq)
		}
		if sq == end {
			break
		}
	}

	return nil
}

// directionBetween - returns the unit step leading from start to end along a row or a column.
func directionBetween(start, end entity.Square) (entity.Direction, bool) {
	switch {
	case start == end:
		return entity.Direction{}, false
	case start.Row == end.Row && start.Col < end.Col:
		return entity.Right, true
	case start.Row == end.Row:
		return entity.Left, true
	case start.Col == end.Col && start.Row < end.Row:
		return entity.Down, true
	case start.Col == end.Col:
		return entity.Up, true
	default:
		return entity.Direction{}, false
	}
}
