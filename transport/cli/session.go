package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/muesli/termenv"
	"github.com/rocketscienceinc/hasami-shogi/internal/config"
	"github.com/rocketscienceinc/hasami-shogi/internal/entity"
	"github.com/rocketscienceinc/hasami-shogi/internal/game"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrBadArguments   = errors.New("bad arguments")

	errQuit = errors.New("quit")
)

// Options - controls the prompt and how the board is drawn.
type Options struct {
	Prompt  string
	Color   string
	Symbols entity.Symbols
}

// Session plays one game over a line-oriented text stream.
type Session struct {
	logger *slog.Logger
	game   *game.Game

	writer  io.Writer
	output  *termenv.Output
	prompt  string
	symbols entity.Symbols

	handlers map[string]func(ctx context.Context, args []string) error
}

// New - creates a session that plays gameInstance and writes to writer.
func New(logger *slog.Logger, gameInstance *game.Game, writer io.Writer, opts Options) *Session {
	if opts.Symbols == (entity.Symbols{}) {
		opts.Symbols = entity.DefaultSymbols
	}

	session := &Session{
		logger:  logger.With("component", "cli"),
		game:    gameInstance,
		writer:  writer,
		output:  newOutput(writer, opts.Color),
		prompt:  opts.Prompt,
		symbols: opts.Symbols,

		handlers: make(map[string]func(context.Context, []string) error),
	}

	session.handlers["move"] = session.handleMove
	session.handlers["board"] = session.handleBoard
	session.handlers["captures"] = session.handleCaptures
	session.handlers["turn"] = session.handleTurn
	session.handlers["help"] = session.handleHelp
	session.handlers["quit"] = session.handleQuit
	session.handlers["exit"] = session.handleQuit

	return session
}

func newOutput(writer io.Writer, color string) *termenv.Output {
	switch color {
	case config.ColorNever:
		return termenv.NewOutput(writer, termenv.WithProfile(termenv.Ascii))
	case config.ColorAlways:
		return termenv.NewOutput(writer, termenv.WithProfile(termenv.ANSI))
	default:
		return termenv.NewOutput(writer)
	}
}

// Run - reads commands from reader until it is exhausted, the player quits, the game is decided
// or ctx is canceled.
func (that *Session) Run(ctx context.Context, reader io.Reader) error {
	log := that.logger.With("method", "Run")

	// stops the reader goroutine once Run returns
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	readErr := make(chan error, 1)

	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(reader)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		readErr <- scanner.Err()
	}()

	if err := that.handleBoard(ctx, nil); err != nil {
		return err
	}

	for {
		that.printf("%s", that.prompt)

		select {
		case <-ctx.Done():
			log.Info("session canceled")
			return nil
		case line, ok := <-lines:
			if !ok {
				select {
				case err := <-readErr:
					if err != nil {
						return fmt.Errorf("failed to read command: %w", err)
					}
				default:
				}
				log.Info("input closed")
				return nil
			}

			err := that.processLine(ctx, line)
			if errors.Is(err, errQuit) {
				log.Info("player quit")
				return nil
			}
			if err != nil {
				log.Debug("command failed", "line", line, "error", err)
				that.printf("error: %v\n", err)
			}

			if that.game.Outcome().IsFinished() {
				log.Info("game decided", "outcome", that.game.Outcome().String())
				return nil
			}
		}
	}
}

// processLine - dispatches one input line to its command handler.
func (that *Session) processLine(ctx context.Context, line string) error {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return nil
	}

	// a bare "b3 b9" is a move
	if len(fields) == 2 {
		if _, err := entity.ParseSquare(fields[0]); err == nil {
			return that.handleMove(ctx, fields)
		}
	}

	if handler, ok := that.handlers[fields[0]]; ok {
		return handler(ctx, fields[1:])
	}

	return fmt.Errorf("%w: %s", ErrUnknownCommand, fields[0])
}

func (that *Session) handleMove(ctx context.Context, args []string) error {
	log := that.logger.With("method", "handleMove")

	if len(args) != 2 {
		return fmt.Errorf("%w: move needs a start and an end square", ErrBadArguments)
	}

	result, err := that.game.MakeMoveNotation(args[0], args[1])
	if err != nil {
		log.Info("move rejected", "side", that.game.ActiveSide().String(), "from", args[0], "to", args[1], "error", err)
		return err
	}

	log.Debug("move applied",
		"side", result.Side.String(),
		"from", result.Start.String(),
		"to", result.End.String(),
		"captured", len(result.Captured),
	)

	that.printf("%s %s-%s", result.Side, result.Start, result.End)
	if len(result.Captured) > 0 {
		names := make([]string, 0, len(result.Captured))
		for _, sq := range result.Captured {
			names = append(names, sq.String())
		}
		that.printf(", captured %s", strings.Join(names, " "))
	}
	that.printf("\n")

	if err = that.handleBoard(ctx, nil); err != nil {
		return err
	}

	if winner, ok := result.Outcome.Winner(); ok {
		that.printf("%s wins\n", winner)
	}

	return nil
}

func (that *Session) handleBoard(_ context.Context, _ []string) error {
	board := that.game.Board()
	that.printf("%s", board.Render(that.symbols, that.paint))
	return nil
}

func (that *Session) handleCaptures(_ context.Context, _ []string) error {
	that.printf("RED lost %d, BLACK lost %d\n", that.game.CapturesFor(entity.Red), that.game.CapturesFor(entity.Black))
	return nil
}

func (that *Session) handleTurn(_ context.Context, _ []string) error {
	that.printf("%s to move\n", that.game.ActiveSide())
	return nil
}

func (that *Session) handleHelp(_ context.Context, _ []string) error {
	that.printf("commands: <from> <to> | move <from> <to> | board | captures | turn | help | quit\n")
	return nil
}

func (that *Session) handleQuit(_ context.Context, _ []string) error {
	return errQuit
}

// paint - colors a piece symbol by side.
func (that *Session) paint(occupant entity.Occupant, cell string) string {
	switch occupant {
	case entity.RedPiece:
		return that.output.String(cell).Foreground(that.output.Color("1")).Bold().String()
	case entity.BlackPiece:
		return that.output.String(cell).Foreground(that.output.Color("4")).Bold().String()
	default:
		return cell
	}
}

func (that *Session) printf(format string, args ...any) {
	// the session has nowhere to report a broken output stream
	_, _ = fmt.Fprintf(that.writer, format, args...)
}
