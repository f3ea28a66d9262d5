// Package game paces a simulation and hands each generation to a renderer.
package game

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/engine"
	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

// Reasons reported in Result.Reason
const (
	ReasonCancelled      = "cancelled"
	ReasonMaxGenerations = "max generations"
	ReasonStagnation     = "stagnation detected"
	ReasonExtinction     = "extinction"
	ReasonStopped        = "simulation stopped"
)

// Frame is one generation as handed to a renderer
type Frame struct {
	Title      string
	Grid       *model.Grid
	Generation int
	Boundary   model.BoundaryPolicy
	Ages       *model.AgeTracker
	Stats      utils.Stats
	Status     string
}

// Renderer draws frames. It decides how, the runner decides when.
type Renderer interface {
	Render(Frame) error
}

// RendererFunc adapts a function to Renderer
type RendererFunc func(Frame) error

func (f RendererFunc) Render(frame Frame) error { return f(frame) }

// Result describes how a run ended
type Result struct {
	Generation int
	Population int
	Reason     string
	Elapsed    time.Duration
}

// Runner renders generation 0, then repeatedly waits Delay, ticks and renders
type Runner struct {
	Sim      *engine.Simulation
	Renderer Renderer
	Title    string
	Delay    time.Duration

	// MaxGenerations stops the run after that many ticks; 0 runs until cancelled
	MaxGenerations int

	// StopOnStagnation ends the run on extinction or once the board has
	// repeated a recent generation StagnationThreshold times in a row.
	// A threshold below 1 is treated as 1.
	StopOnStagnation    bool
	StagnationThreshold int

	TrackAges bool
	Logger    *slog.Logger
}

// Run drives the simulation until ctx is cancelled or a stop condition is
// met. The simulation is stopped on return.
func (r *Runner) Run(ctx context.Context) (Result, error) {
	logger := r.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	defer r.Sim.Stop()

	var (
		grid          = r.Sim.Current()
		width, height = grid.Dimensions()
		history       = model.NewHistory(5)
		stats         = utils.NewStats()
		lastFrameTime = time.Now()
		stagnantCount = 0
		threshold     = max(1, r.StagnationThreshold)
		ages          *model.AgeTracker
	)
	if r.TrackAges {
		ages = model.NewAgeTracker(grid)
	}

	for {
		generation := r.Sim.Generation()
		population := grid.CountLivingCells()

		status := "Active"
		if period := history.Record(grid); period > 0 {
			stagnantCount++
			status = fmt.Sprintf("Stagnant (period %d)", period)
		} else {
			stagnantCount = 0
		}
		if population == 0 {
			status = "Extinct"
		}

		frameStart := time.Now()
		stats.Update(generation, population, width*height, frameStart.Sub(lastFrameTime))
		lastFrameTime = frameStart

		frame := Frame{
			Title:      r.Title,
			Grid:       grid,
			Generation: generation,
			Boundary:   r.Sim.Policy(),
			Ages:       ages,
			Stats:      *stats,
			Status:     status,
		}
		logger.Log(ctx, utils.LevelTrace, "frame",
			"generation", generation,
			"population", population,
			"density", stats.Density,
			"status", status)
		if err := r.Renderer.Render(frame); err != nil {
			return Result{}, errors.Wrapf(err, "[Runner.Run] failed to render generation %d", generation)
		}

		result := Result{Generation: generation, Population: population, Elapsed: stats.Runtime()}
		if r.MaxGenerations > 0 && generation >= r.MaxGenerations {
			result.Reason = ReasonMaxGenerations
			logger.Info("reached maximum generations", "generation", generation)
			return result, nil
		}
		if r.StopOnStagnation {
			if population == 0 {
				result.Reason = ReasonExtinction
				logger.Info("board is extinct", "generation", generation)
				return result, nil
			}
			if stagnantCount >= threshold {
				result.Reason = ReasonStagnation
				logger.Info("board stagnated", "generation", generation, "status", status)
				return result, nil
			}
		}

		if !r.wait(ctx) {
			result.Reason = ReasonCancelled
			logger.Info("run cancelled", "generation", generation)
			return result, nil
		}

		next, err := r.Sim.Tick()
		if errors.Is(err, engine.ErrSimulationStopped) {
			result.Reason = ReasonStopped
			return result, nil
		}
		if err != nil {
			return result, errors.Wrap(err, "[Runner.Run] failed to advance generation")
		}
		grid = next

		if ages != nil {
			if err = ages.Observe(grid); err != nil {
				return result, errors.Wrap(err, "[Runner.Run] failed to track ages")
			}
		}
	}
}

// wait blocks for the frame delay and reports false if ctx ended first
func (r *Runner) wait(ctx context.Context) bool {
	if r.Delay <= 0 {
		return ctx.Err() == nil
	}

	timer := time.NewTimer(r.Delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
