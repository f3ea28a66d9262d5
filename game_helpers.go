package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-life/engine"
	"github.com/sheikhrachel/go-life/game"
	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/render"
	"github.com/sheikhrachel/go-life/utils"
)

const defaultConfigFile = "gol.yaml"

// addBoardFlags registers the flags shared by run and step
func addBoardFlags(cmd *cobra.Command) {
	cmd.Flags().String("preset", "", "Preset scenario to run (see 'gol patterns')")
	cmd.Flags().String("pattern", "", "Catalog pattern to run centred on an empty board instead of a preset")
	cmd.Flags().String("catalog", "", "YAML file with extra patterns")
	cmd.Flags().Int("width", 0, "Board width (default from preset)")
	cmd.Flags().Int("height", 0, "Board height (default from preset)")
	cmd.Flags().String("boundary", "", "Edge behaviour: wrap or fill (default from preset)")
}

// loadConfig builds the effective config: defaults, then the config file,
// then GOL_* environment variables, then explicitly set flags.
func loadConfig(cmd *cobra.Command) (utils.Config, error) {
	config := utils.DefaultConfig()

	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		if _, err := os.Stat(defaultConfigFile); err == nil {
			path = defaultConfigFile
		}
	}
	if path != "" {
		var err error
		if config, err = utils.LoadConfig(path); err != nil {
			return config, err
		}
	}

	config.ApplyEnvOverrides()
	applyFlagOverrides(cmd, &config)

	if err := config.Validate(); err != nil {
		return config, err
	}
	return config, nil
}

func applyFlagOverrides(cmd *cobra.Command, config *utils.Config) {
	flags := cmd.Flags()
	if flags.Changed("preset") {
		config.Preset, _ = flags.GetString("preset")
		config.Pattern = ""
	}
	if flags.Changed("pattern") {
		config.Pattern, _ = flags.GetString("pattern")
	}
	if flags.Changed("catalog") {
		config.CatalogFile, _ = flags.GetString("catalog")
	}
	if flags.Changed("width") {
		config.Width, _ = flags.GetInt("width")
	}
	if flags.Changed("height") {
		config.Height, _ = flags.GetInt("height")
	}
	if flags.Changed("boundary") {
		config.Boundary, _ = flags.GetString("boundary")
	}
	if flags.Changed("delay") {
		config.FrameRate, _ = flags.GetDuration("delay")
	}
	if flags.Changed("generations") {
		config.MaxGenerations, _ = flags.GetInt("generations")
	}
	if flags.Changed("renderer") {
		config.Renderer, _ = flags.GetString("renderer")
	}
	if flags.Changed("stop-on-stagnation") {
		config.StopOnStagnation, _ = flags.GetBool("stop-on-stagnation")
	}
	if flags.Changed("no-age") {
		noAge, _ := flags.GetBool("no-age")
		config.ShowAge = !noAge
	}
	if flags.Changed("log-level") {
		config.LogLevel, _ = flags.GetString("log-level")
	}
	if flags.Changed("log-file") {
		config.LogFile, _ = flags.GetString("log-file")
	}
}

// newSimulation seeds the board described by config and starts a simulation on it
func newSimulation(config utils.Config, logger *slog.Logger) (game.Setup, *engine.Simulation, error) {
	setup, err := game.NewSetup(config)
	if err != nil {
		return game.Setup{}, nil, err
	}

	var pool *model.CountPool
	if config.UseMemoryPool {
		pool = model.NewCountPool()
	}
	sim, err := engine.New(setup.Grid, setup.Boundary, engine.WithLogger(logger), engine.WithCountPool(pool))
	if err != nil {
		return game.Setup{}, nil, errors.Wrap(err, "[newSimulation] failed to start simulation")
	}
	return setup, sim, nil
}

// runGame plays the configured game until the user quits or a stop condition
// is met, then prints a short summary to out. newScreen opens the terminal
// for the screen renderer and is not called for the text renderer.
func runGame(ctx context.Context, config utils.Config, out io.Writer, newScreen func() (tcell.Screen, error)) error {
	useScreen := config.Renderer == utils.RendererScreen

	logOut, closeLog, err := utils.OpenLogOutput(config.LogFile, useScreen)
	if err != nil {
		return err
	}
	defer closeLog()
	logger := utils.NewLogger(config.LogLevel, logOut)

	setup, sim, err := newSimulation(config, logger)
	if err != nil {
		return err
	}
	logger.Info("starting game",
		"preset", setup.Name,
		"width", setup.Width,
		"height", setup.Height,
		"boundary", setup.Boundary.String(),
		"delay", setup.Delay,
		"living", setup.Grid.CountLivingCells())

	eg, ctx := errgroup.WithContext(ctx)
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		renderer game.Renderer
		closeUI  = func() {}
	)
	if useScreen {
		screen, err := newScreen()
		if err != nil {
			return errors.Wrap(err, "[runGame] failed to open terminal screen")
		}
		sr, err := render.NewScreenRenderer(screen, setup.LiveChar, setup.DeadChar, config.ShowAge)
		if err != nil {
			return err
		}
		renderer, closeUI = sr, sr.Close
		defer sr.Close()

		// Quit keys cancel the run; closing the screen releases this goroutine
		eg.Go(func() error {
			sr.WaitForQuit()
			cancel()
			return nil
		})
	} else {
		tr := render.NewTextRenderer(out, setup.LiveChar, setup.DeadChar)
		tr.ClearScreen = true
		renderer = tr
	}

	runner := &game.Runner{
		Sim:                 sim,
		Renderer:            renderer,
		Title:               setup.Title,
		Delay:               setup.Delay,
		MaxGenerations:      config.MaxGenerations,
		StopOnStagnation:    config.StopOnStagnation,
		StagnationThreshold: config.StagnationThreshold,
		TrackAges:           config.ShowAge,
		Logger:              logger,
	}

	var result game.Result
	eg.Go(func() error {
		defer closeUI()
		defer cancel()

		var err error
		result, err = runner.Run(ctx)
		return err
	})
	if err = eg.Wait(); err != nil {
		return err
	}

	logger.Info("game over", "generation", result.Generation, "reason", result.Reason)
	displaySummary(out, result)
	return nil
}

// displaySummary shows the final game information
func displaySummary(out io.Writer, result game.Result) {
	fmt.Fprintf(out, "Stopped: %s\n", result.Reason)
	fmt.Fprintf(out, "Final stats: %d generations in %.1f seconds | Living cells: %d\n",
		result.Generation, result.Elapsed.Seconds(), result.Population)
}
