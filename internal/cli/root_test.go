package cli

import (
	"bytes"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-cli/internal/config"
)

// A full game X wins across the top row; enough input to finish
// whoever starts.
const topRowWinScript = "0,0\n1,1\n0,1\n1,0\n0,2\n2,2\n2,0\n"

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func executeRootCommand(t *testing.T, conf *config.Config, args ...string) string {
	t.Helper()

	output := &bytes.Buffer{}

	cmd := NewRootCommand(newTestLogger(), conf)
	cmd.SetIn(strings.NewReader(topRowWinScript))
	cmd.SetOut(output)
	cmd.SetErr(output)
	cmd.SetArgs(args)

	require.NoError(t, cmd.Execute())

	return output.String()
}

func TestNewRootCommand(t *testing.T) {
	conf := &config.Config{LogLevel: "info", StartPlayer: "X"}

	t.Run("Default start player comes from config", func(t *testing.T) {
		// When: running with no flags
		output := executeRootCommand(t, conf)

		// Then: Player X moves first
		assert.Contains(t, output, "Player X's turn.")
		assert.Contains(t, output, "Player X wins!")
	})

	t.Run("Start player flag overrides config", func(t *testing.T) {
		// When: running with --start-player O
		output := executeRootCommand(t, conf, "--start-player", "O")

		// Then: Player O moves first and takes the top row
		firstO := strings.Index(output, "Player O's turn.")
		firstX := strings.Index(output, "Player X's turn.")
		require.GreaterOrEqual(t, firstO, 0)
		require.GreaterOrEqual(t, firstX, 0)
		assert.Less(t, firstO, firstX)
		assert.Contains(t, output, "Player O wins!")
	})

	t.Run("Shorthand flag works too", func(t *testing.T) {
		// When: running with -s o
		output := executeRootCommand(t, conf, "-s", "o")

		// Then: Player O moves first
		assert.Contains(t, output, "Player O wins!")
	})

	t.Run("Invalid designator falls back to Player X", func(t *testing.T) {
		// When: running with an unknown start player
		output := executeRootCommand(t, conf, "--start-player", "Z")

		// Then: the game still runs, with the default mark first
		assert.Contains(t, output, "Player X wins!")
	})

	t.Run("Positional arguments are rejected", func(t *testing.T) {
		cmd := NewRootCommand(newTestLogger(), conf)
		cmd.SetIn(strings.NewReader(""))
		cmd.SetOut(io.Discard)
		cmd.SetErr(io.Discard)
		cmd.SetArgs([]string{"extra"})

		require.Error(t, cmd.Execute())
	})
}
