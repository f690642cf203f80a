package entity

import (
	"testing"

	"github.com/rocketscienceinc/hasami-shogi/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSquare(t *testing.T) {
	t.Run("Parses corners of the board", func(t *testing.T) {
		// When: parsing the four corners
		a1, err := ParseSquare("a1")
		require.NoError(t, err)
		a9, err := ParseSquare("a9")
		require.NoError(t, err)
		i1, err := ParseSquare("i1")
		require.NoError(t, err)
		i9, err := ParseSquare("i9")
		require.NoError(t, err)

		// Then: they map to zero-based row and column indices
		assert.Equal(t, Square{Row: 0, Col: 0}, a1)
		assert.Equal(t, Square{Row: 0, Col: 8}, a9)
		assert.Equal(t, Square{Row: 8, Col: 0}, i1)
		assert.Equal(t, Square{Row: 8, Col: 8}, i9)
	})

	t.Run("Rejects notation outside the board", func(t *testing.T) {
		for _, notation := range []string{"", "a", "a0", "a10", "j1", "A1", "1a", "e-1", "b 3"} {
			// When: parsing bad notation
			_, err := ParseSquare(notation)

			// Then: ErrInvalidSquare should be returned
			assert.ErrorIs(t, err, apperror.ErrInvalidSquare, notation)
		}
	})

	t.Run("String round-trips every square", func(t *testing.T) {
		for row := range BoardSize {
			for col := range BoardSize {
				sq := Square{Row: row, Col: col}

				parsed, err := ParseSquare(sq.String())

				require.NoError(t, err)
				assert.Equal(t, sq, parsed)
			}
		}
	})
}

func TestSquare_Valid(t *testing.T) {
	assert.True(t, Square{Row: 0, Col: 0}.Valid())
	assert.True(t, Square{Row: 8, Col: 8}.Valid())
	assert.False(t, Square{Row: -1, Col: 0}.Valid())
	assert.False(t, Square{Row: 0, Col: 9}.Valid())
	assert.False(t, Square{Row: 9, Col: 4}.Valid())
}

func TestSquare_Step(t *testing.T) {
	// Given: the centre square e5
	e5 := MustParseSquare("e5")

	// Then: each direction moves one square
	assert.Equal(t, MustParseSquare("e6"), e5.Step(Right))
	assert.Equal(t, MustParseSquare("e4"), e5.Step(Left))
	assert.Equal(t, MustParseSquare("f5"), e5.Step(Down))
	assert.Equal(t, MustParseSquare("d5"), e5.Step(Up))

	// Then: stepping off the edge gives an invalid square
	assert.False(t, MustParseSquare("a1").Step(Up).Valid())
	assert.False(t, MustParseSquare("i9").Step(Right).Valid())
}

func TestSideAndOccupant(t *testing.T) {
	assert.Equal(t, Black, Red.Opponent())
	assert.Equal(t, Red, Black.Opponent())

	assert.True(t, RedPiece.BelongsTo(Red))
	assert.False(t, RedPiece.BelongsTo(Black))
	assert.False(t, Empty.BelongsTo(Red))
	assert.False(t, Empty.BelongsTo(Black))

	side, ok := BlackPiece.Side()
	assert.True(t, ok)
	assert.Equal(t, Black, side)

	_, ok = Empty.Side()
	assert.False(t, ok)

	assert.Equal(t, "NONE", Empty.String())
	assert.Equal(t, "RED", RedPiece.String())
	assert.Equal(t, "BLACK", Black.String())
}

func TestOutcome(t *testing.T) {
	assert.False(t, Unfinished.IsFinished())
	assert.True(t, RedWon.IsFinished())
	assert.Equal(t, BlackWon, WinnerOutcome(Black))
	assert.Equal(t, "RED_WON", WinnerOutcome(Red).String())

	winner, ok := BlackWon.Winner()
	assert.True(t, ok)
	assert.Equal(t, Black, winner)

	_, ok = Unfinished.Winner()
	assert.False(t, ok)
}
