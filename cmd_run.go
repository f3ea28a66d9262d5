package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
)

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Play a preset or pattern in the terminal",
		Long: `Play a preset or pattern until interrupted.

Examples:
  gol run --preset gun                      # Gosper glider gun on a zero-filled board
  gol run --pattern pulsar --width 30 --height 20
  gol run --preset blinker --renderer text --generations 10`,
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return runGame(ctx, config, cmd.OutOrStdout(), tcell.NewScreen)
		},
	}

	addBoardFlags(cmd)
	cmd.Flags().Duration("delay", 0, "Pause between generations, e.g. 100ms (default from preset)")
	cmd.Flags().Int("generations", 0, "Stop after this many generations (0 runs until interrupted)")
	cmd.Flags().String("renderer", "", "Renderer: screen (full terminal) or text (plain output)")
	cmd.Flags().Bool("stop-on-stagnation", false, "Stop once the board dies out or settles into a short cycle")
	cmd.Flags().Bool("no-age", false, "Do not colour cells by age")
	cmd.Flags().String("log-file", "", "Write logs to this file")

	return cmd
}
