package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
	"github.com/rocketscienceinc/tictactoe-cli/internal/gameplay"
)

// RunApp - runs one interactive game session over the given streams.
// An unrecognized starting mark falls back to the canonical default ("X");
// this permissive default is deliberate, the flag should never kill the game.
func RunApp(ctx context.Context, logger *slog.Logger, startPlayer string, input io.Reader, output io.Writer) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)
	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	startingMark, err := entity.ParseMark(startPlayer)
	if err != nil {
		log.Warn("unrecognized starting mark, using default", "value", startPlayer, "default", entity.PlayerX)
		startingMark = entity.PlayerX
	}

	session := gameplay.NewSession(logger, entity.NewGame(startingMark), input, output)

	errCh := make(chan error, 1)
	go func() {
		errCh <- session.Run(ctx)
	}()

	select {
	case err = <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			return fmt.Errorf("session error: %w", err)
		}
		return nil
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}
