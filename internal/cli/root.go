package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	app "github.com/rocketscienceinc/tictactoe-cli/internal"
	"github.com/rocketscienceinc/tictactoe-cli/internal/config"
)

// RootOptions holds the flags of the root command.
type RootOptions struct {
	StartPlayer string
}

// NewRootCommand creates the tictactoe command. The configured start player
// is the flag default, so config file, environment, and flag layer in that
// order.
func NewRootCommand(logger *slog.Logger, conf *config.Config) *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:          "tictactoe",
		Short:        "Two-player tic-tac-toe in the terminal",
		Long:         "A two-player, hot-seat tic-tac-toe game. Players take turns entering row, col coordinates until one wins or the board fills.",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.RunApp(cmd.Context(), logger, opts.StartPlayer, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&opts.StartPlayer, "start-player", "s", conf.StartPlayer, "player to start the game, X or O")

	return cmd
}
