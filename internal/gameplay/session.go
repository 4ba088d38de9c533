package gameplay

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

var ErrMalformedCoords = errors.New("malformed coordinates")

// Session drives one interactive game over a pair of text streams.
// It owns the Game exclusively for its whole lifetime.
type Session struct {
	logger *slog.Logger
	game   *entity.Game
	input  *bufio.Scanner
	output io.Writer
}

func NewSession(logger *slog.Logger, game *entity.Game, input io.Reader, output io.Writer) *Session {
	return &Session{
		logger: logger.With("component", "gameplay", "session", uuid.NewString()),
		game:   game,
		input:  bufio.NewScanner(input),
		output: output,
	}
}

// Run - reads turns until the game finishes, the input closes, or ctx is
// canceled. Bad input of any kind prompts a retry; it never ends the session.
func (that *Session) Run(ctx context.Context) error {
	log := that.logger.With("method", "Run")

	fmt.Fprintln(that.output, "Starting the game!")
	fmt.Fprintln(that.output, that.game.Render())

	for !that.game.IsFinished() {
		select {
		case <-ctx.Done():
			log.Info("session canceled")
			return ctx.Err()
		default:
		}

		fmt.Fprintf(that.output, "Player %s's turn. Enter row, col coordinates for your move (0-2, 0-2):\n", that.game.Turn)

		if !that.input.Scan() {
			if err := that.input.Err(); err != nil {
				return fmt.Errorf("failed to read input: %w", err)
			}
			log.Info("input closed, ending session")
			return nil
		}

		row, col, err := parseCoords(that.input.Text())
		if err != nil {
			fmt.Fprintln(that.output, "Invalid input! Please enter the coordinates in the format row, col where both are between 0 and 2.")
			continue
		}

		if err = that.game.PlaceMark(row, col); err != nil {
			switch {
			case errors.Is(err, apperror.ErrCellOutOfRange):
				fmt.Fprintln(that.output, "Coordinates must be between 0 and 2. Please try again.")
			case errors.Is(err, apperror.ErrCellOccupied):
				fmt.Fprintln(that.output, "Invalid move! Spot already taken, please try again.")
			default:
				return fmt.Errorf("failed to place mark: %w", err)
			}
			continue
		}

		log.Debug("turn accepted", "row", row, "col", col)

		fmt.Fprintln(that.output, that.game.Render())
	}

	if winner := that.game.WinningMark(); winner != entity.EmptyCell {
		fmt.Fprintf(that.output, "Player %s wins!\n", winner)
		log.Info("game finished", "winner", winner)
		return nil
	}

	fmt.Fprintln(that.output, "It's a draw!")
	log.Info("game finished", "result", "draw")

	return nil
}

// parseCoords - parses a "row, col" line of two comma-separated integers.
func parseCoords(line string) (int, int, error) {
	parts := strings.Split(strings.TrimSpace(line), ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%w: %q", ErrMalformedCoords, line)
	}

	row, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrMalformedCoords, line)
	}

	col, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrMalformedCoords, line)
	}

	return row, col, nil
}
