// Package engine drives a Game of Life board one generation at a time.
//
// A Simulation owns the current grid. Every Tick counts neighbours on the
// frozen current generation, applies the B3/S23 rule to build a fresh grid,
// swaps it in and hands the caller a snapshot. Pacing and rendering belong to
// the caller.
package engine

import (
	"io"
	"log/slog"
	"sync"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/rules"
)

// State is the lifecycle state of a Simulation
type State int

const (
	Running State = iota
	Stopped
)

func (s State) String() string {
	if s == Stopped {
		return "stopped"
	}
	return "running"
}

// Simulation holds the current generation and advances it on demand
type Simulation struct {
	mu         sync.Mutex
	current    *model.Grid
	policy     model.BoundaryPolicy
	state      State
	generation int

	pool   *model.CountPool
	logger *slog.Logger
}

// Option configures a Simulation
type Option func(*Simulation)

// WithLogger sets the logger used for per-tick debug output
func WithLogger(logger *slog.Logger) Option {
	return func(s *Simulation) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithCountPool reuses neighbour-count buffers across ticks
func WithCountPool(pool *model.CountPool) Option {
	return func(s *Simulation) {
		s.pool = pool
	}
}

// New starts a running simulation from a copy of initial
func New(initial *model.Grid, policy model.BoundaryPolicy, opts ...Option) (*Simulation, error) {
	if initial == nil {
		return nil, errors.Wrap(model.ErrInvalidDimension, "[engine.New] initial grid is nil")
	}
	if !policy.Valid() {
		return nil, errors.Wrapf(model.ErrUnknownBoundary, "[engine.New] policy %d", int(policy))
	}

	s := &Simulation{
		current: initial.Clone(),
		policy:  policy,
		state:   Running,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Tick computes the next generation, makes it current and returns a copy of
// it. It fails with ErrSimulationStopped after Stop, leaving the grid as is.
func (s *Simulation) Tick() (*model.Grid, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == Stopped {
		return nil, errors.Wrapf(ErrSimulationStopped, "[Simulation.Tick] at generation %d", s.generation)
	}

	counts, err := model.CountNeighborsPooled(s.current, s.policy, s.pool)
	if err != nil {
		return nil, errors.Wrap(err, "[Simulation.Tick] failed to count neighbours")
	}
	next, err := rules.Step(s.current, counts)
	s.pool.Put(counts)
	if err != nil {
		return nil, errors.Wrap(err, "[Simulation.Tick] failed to apply rules")
	}

	s.current = next
	s.generation++

	s.logger.Debug("tick",
		"generation", s.generation,
		"population", next.CountLivingCells(),
		"boundary", s.policy.String())

	return next.Clone(), nil
}

// Stop ends the simulation. It never interrupts a Tick in progress and is
// safe to call more than once or from another goroutine.
func (s *Simulation) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == Stopped {
		return
	}
	s.state = Stopped
	s.logger.Info("simulation stopped", "generation", s.generation)
}

// State returns the lifecycle state
func (s *Simulation) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Generation returns how many ticks have completed
func (s *Simulation) Generation() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generation
}

// Current returns a copy of the current generation
func (s *Simulation) Current() *model.Grid {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current.Clone()
}

// Policy returns the boundary policy fixed at construction
func (s *Simulation) Policy() model.BoundaryPolicy {
	return s.policy
}
