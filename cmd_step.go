package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/sheikhrachel/go-life/game"
	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/render"
	"github.com/sheikhrachel/go-life/utils"
)

// stepResult is the JSON form of the board after a headless run
type stepResult struct {
	Name       string        `json:"name"`
	Width      int           `json:"width"`
	Height     int           `json:"height"`
	Boundary   string        `json:"boundary"`
	Generation int           `json:"generation"`
	Population int           `json:"population"`
	Alive      []model.Coord `json:"alive"`
}

func newStepCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "step",
		Short: "Advance a board headlessly and print the result",
		Long: `Advance a preset or pattern a fixed number of generations without pacing
and print the final board, or a JSON summary with --json.

Examples:
  gol step --preset glider -n 4
  gol step --pattern blinker --width 5 --height 5 -n 1 --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			n, _ := cmd.Flags().GetInt("generations")
			jsonOut, _ := cmd.Flags().GetBool("json")
			return stepGame(config, n, jsonOut, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	addBoardFlags(cmd)
	cmd.Flags().IntP("generations", "n", 1, "Number of generations to advance")
	return cmd
}

func stepGame(config utils.Config, n int, jsonOut bool, out, errOut io.Writer) error {
	if n < 0 {
		return errors.Errorf("[stepGame] generations must not be negative, got %d", n)
	}

	logger := utils.NewLogger(config.LogLevel, errOut)
	setup, sim, err := newSimulation(config, logger)
	if err != nil {
		return err
	}
	defer sim.Stop()

	grid := sim.Current()
	for range n {
		if grid, err = sim.Tick(); err != nil {
			return err
		}
	}
	logger.Debug("stepped", "preset", setup.Name, "generations", n)

	if jsonOut {
		return json.NewEncoder(out).Encode(stepResult{
			Name:       setup.Name,
			Width:      setup.Width,
			Height:     setup.Height,
			Boundary:   setup.Boundary.String(),
			Generation: sim.Generation(),
			Population: grid.CountLivingCells(),
			Alive:      grid.LivingCells(),
		})
	}

	width, height := grid.Dimensions()
	stats := utils.NewStats()
	stats.Update(sim.Generation(), grid.CountLivingCells(), width*height, 0)
	frame := game.Frame{
		Title:      setup.Title,
		Grid:       grid,
		Generation: sim.Generation(),
		Boundary:   setup.Boundary,
		Stats:      *stats,
		Status:     "Stepped",
	}
	_, err = fmt.Fprint(out, render.FormatFrame(frame, setup.LiveChar, setup.DeadChar))
	return err
}
