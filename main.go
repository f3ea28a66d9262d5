package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "0.1.0-dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "gol",
		Short: "Conway's Game of Life in the terminal",
		Long: `gol runs Conway's Game of Life from a named preset or catalog pattern.

Each generation is computed from the previous one under a toroidal (wrap)
or zero-filled (fill) edge and drawn in the terminal at the configured pace.`,
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().String("config", "", "Path to a YAML or JSON config file (default ./gol.yaml if present)")
	rootCmd.PersistentFlags().Bool("json", false, "Output as JSON where supported")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: info, debug or trace")

	runCmd := newRunCmd()
	rootCmd.RunE = runCmd.RunE
	rootCmd.Flags().AddFlagSet(runCmd.Flags())

	rootCmd.AddCommand(
		runCmd,
		newStepCmd(),
		newPatternsCmd(),
		newVersionCmd(),
	)
	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			jsonOut, _ := cmd.Flags().GetBool("json")
			if jsonOut {
				json.NewEncoder(cmd.OutOrStdout()).Encode(map[string]string{"version": version})
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "gol version %s\n", version)
			}
		},
	}
}
