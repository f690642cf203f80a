package game

import (
	"fmt"

	"github.com/rocketscienceinc/hasami-shogi/internal/entity"
)

// WinningCaptures is the number of lost pieces that ends the game.
const WinningCaptures = 8

// MoveResult describes a move that was applied.
type MoveResult struct {
	Side     entity.Side
	Start    entity.Square
	End      entity.Square
	Captured []entity.Square
	Outcome  entity.Outcome
}

// Game owns the board, the side to move, the capture counts and the outcome of one match.
// It is not safe for concurrent use; give every match its own Game.
type Game struct {
	board    entity.Board
	turn     entity.Side
	captured map[entity.Side]int
	outcome  entity.Outcome
	moves    int
}

// New - returns a game in the starting position with Black to move.
func New() *Game {
	return NewFromBoard(entity.NewBoard(), entity.Black)
}

// NewFromBoard - returns a game that continues from an arbitrary position.
func NewFromBoard(board entity.Board, turn entity.Side) *Game {
	return &Game{
		board: board,
		turn:  turn,
		captured: map[entity.Side]int{
			entity.Red:   0,
			entity.Black: 0,
		},
		outcome: entity.Unfinished,
	}
}

// AttemptMove - reports whether the move was legal and fully applied.
func (that *Game) AttemptMove(start, end entity.Square) bool {
	_, err := that.MakeMove(start, end)
	return err == nil
}

// MakeMove - validates and applies a move, resolves captures, checks for a win and passes the turn.
// A rejected move leaves the game untouched.
func (that *Game) MakeMove(start, end entity.Square) (MoveResult, error) {
	side := that.turn

	if err := validateMove(&that.board, that.outcome, side, start, end); err != nil {
		return MoveResult{}, fmt.Errorf("invalid move: %w", err)
	}

	// both squares were validated above
	_ = that.board.Clear(start)
	_ = that.board.Set(end, side.Occupant())

	captured := resolveCaptures(&that.board, side, end)
	that.captured[side.Opponent()] += len(captured)

	that.updateOutcome()
	that.turn = side.Opponent()
	that.moves++

	return MoveResult{
		Side:     side,
		Start:    start,
		End:      end,
		Captured: captured,
		Outcome:  that.outcome,
	}, nil
}

// MakeMoveNotation - is MakeMove for squares written as "a1".."i9".
func (that *Game) MakeMoveNotation(start, end string) (MoveResult, error) {
	from, err := entity.ParseSquare(start)
	if err != nil {
		return MoveResult{}, fmt.Errorf("invalid move: %w", err)
	}

	to, err := entity.ParseSquare(end)
	if err != nil {
		return MoveResult{}, fmt.Errorf("invalid move: %w", err)
	}

	return that.MakeMove(from, to)
}

// updateOutcome - decides the game once a side has lost WinningCaptures pieces.
func (that *Game) updateOutcome() {
	if that.outcome.IsFinished() {
		return
	}

	switch {
	case that.captured[entity.Red] >= WinningCaptures:
		that.outcome = entity.BlackWon
	case that.captured[entity.Black] >= WinningCaptures:
		that.outcome = entity.RedWon
	}
}

// OccupantAt - returns the occupant of sq.
func (that *Game) OccupantAt(sq entity.Square) (entity.Occupant, error) {
	return that.board.Get(sq)
}

// ActiveSide - returns the side to move.
func (that *Game) ActiveSide() entity.Side {
	return that.turn
}

// CapturesFor - returns how many pieces of side have been captured.
func (that *Game) CapturesFor(side entity.Side) int {
	return that.captured[side]
}

// Outcome - returns whether the game is still running or who won it.
func (that *Game) Outcome() entity.Outcome {
	return that.outcome
}

// Board - returns a copy of the current position.
func (that *Game) Board() entity.Board {
	return that.board
}

// MoveCount - returns the number of moves applied so far.
func (that *Game) MoveCount() int {
	return that.moves
}
