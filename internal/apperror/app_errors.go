package apperror

import "errors"

var (
	ErrInvalidSquare = errors.New("square is off the board")
	ErrIllegalMove   = errors.New("illegal move")
	ErrGameFinished  = errors.New("game is already finished")

	ErrNotYourPiece    = errors.New("start square does not hold a piece of the side to move")
	ErrNotStraightLine = errors.New("move is neither horizontal nor vertical")
	ErrPathBlocked     = errors.New("path is blocked")
)
