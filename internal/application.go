package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/hasami-shogi/internal/config"
	"github.com/rocketscienceinc/hasami-shogi/internal/entity"
	"github.com/rocketscienceinc/hasami-shogi/internal/game"
	"github.com/rocketscienceinc/hasami-shogi/transport/cli"
)

// RunApp - runs the application on the process standard streams.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			logger.With("component", "app").Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	return Play(ctx, logger, conf, os.Stdin, os.Stdout)
}

// Play - runs one game between reader and writer.
func Play(ctx context.Context, logger *slog.Logger, conf *config.Config, reader io.Reader, writer io.Writer) error {
	log := logger.With("component", "app")

	gameInstance := game.New()
	session := cli.New(logger, gameInstance, writer, cli.Options{
		Prompt: conf.Prompt,
		Color:  conf.Render.Color,
		Symbols: entity.Symbols{
			Red:   conf.Render.RedSymbol,
			Black: conf.Render.BlackSymbol,
			Empty: conf.Render.EmptySymbol,
		},
	})

	log.Info("Starting game", "turn", gameInstance.ActiveSide().String())

	if err := session.Run(ctx, reader); err != nil {
		return fmt.Errorf("session failed: %w", err)
	}

	log.Info("Game over",
		"outcome", gameInstance.Outcome().String(),
		"moves", gameInstance.MoveCount(),
		"red_lost", gameInstance.CapturesFor(entity.Red),
		"black_lost", gameInstance.CapturesFor(entity.Black),
	)

	return nil
}
