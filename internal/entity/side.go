package entity

// Side is one of the two players.
type Side int8

const (
	Red Side = iota + 1
	Black
)

// Opponent - returns the other side.
func (that Side) Opponent() Side {
	if that == Red {
		return Black
	}
	return Red
}

// Occupant - returns the occupant value a piece of this side leaves on a square.
func (that Side) Occupant() Occupant {
	if that == Red {
		return RedPiece
	}
	return BlackPiece
}

func (that Side) String() string {
	switch that {
	case Red:
		return "RED"
	case Black:
		return "BLACK"
	default:
		return "UNKNOWN"
	}
}

// Occupant is the content of a single square.
type Occupant int8

const (
	Empty Occupant = iota
	RedPiece
	BlackPiece
)

// Side - reports which side owns the piece, ok is false for an empty square.
func (that Occupant) Side() (Side, bool) {
	switch that {
	case RedPiece:
		return Red, true
	case BlackPiece:
		return Black, true
	default:
		return 0, false
	}
}

// BelongsTo - reports whether the square holds a piece of the given side.
func (that Occupant) BelongsTo(side Side) bool {
	return that != Empty && that == side.Occupant()
}

func (that Occupant) String() string {
	switch that {
	case RedPiece:
		return "RED"
	case BlackPiece:
		return "BLACK"
	default:
		return "NONE"
	}
}

// Outcome is the overall game result.
type Outcome int8

const (
	Unfinished Outcome = iota
	RedWon
	BlackWon
)

// WinnerOutcome - returns the terminal outcome in favor of side.
func WinnerOutcome(side Side) Outcome {
	if side == Red {
		return RedWon
	}
	return BlackWon
}

// Winner - reports the winning side, ok is false while the game is unfinished.
func (that Outcome) Winner() (Side, bool) {
	switch that {
	case RedWon:
		return Red, true
	case BlackWon:
		return Black, true
	default:
		return 0, false
	}
}

func (that Outcome) IsFinished() bool {
	return that != Unfinished
}

func (that Outcome) String() string {
	switch that {
	case RedWon:
		return "RED_WON"
	case BlackWon:
		return "BLACK_WON"
	default:
		return "UNFINISHED"
	}
}
