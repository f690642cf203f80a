package suite

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/rocketscienceinc/hasami-shogi/internal/entity"
)

const maxWaitDuration = 10 * time.Second

type Suite struct {
	*testing.T
	Logger *slog.Logger
}

func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	logger := slog.New(slog.NewJSONHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return ctx, &Suite{
		T:      t,
		Logger: logger,
	}
}

// Board - builds a position from a diagram of nine rows, a to i, with nine cells each.
// Cells are R, B or '.', whitespace between cells is ignored.
func Board(t *testing.T, diagram string) entity.Board {
	t.Helper()

	var rows []string
	for _, line := range strings.Split(strings.TrimSpace(diagram), "\n") {
		row := strings.Join(strings.Fields(line), "")
		if row == "" {
			continue
		}
		rows = append(rows, row)
	}

	if len(rows) != entity.BoardSize {
		t.Fatalf("diagram has %d rows, want %d", len(rows), entity.BoardSize)
	}

	var board entity.Board
	for r, row := range rows {
		if len(row) != entity.BoardSize {
			t.Fatalf("diagram row %s has %d cells, want %d", entity.RowLabel(r), len(row), entity.BoardSize)
		}

		for c := range entity.BoardSize {
			var occupant entity.Occupant
			switch row[c] {
			case 'R':
				occupant = entity.RedPiece
			case 'B':
				occupant = entity.BlackPiece
			case '.':
				occupant = entity.Empty
			default:
				t.Fatalf("diagram cell %q at %s is not R, B or '.'", row[c], entity.Square{Row: r, Col: c})
			}

			if err := board.Set(entity.Square{Row: r, Col: c}, occupant); err != nil {
				t.Fatalf("could not set square: %v", err)
			}
		}
	}

	return board
}

// Square - parses notation or fails the test.
func Square(t *testing.T, notation string) entity.Square {
	t.Helper()

	sq, err := entity.ParseSquare(notation)
	if err != nil {
		t.Fatalf("could not parse square %q: %v", notation, err)
	}

	return sq
}
