package engine

import "github.com/pkg/errors"

// ErrSimulationStopped is returned by Tick once Stop has been called
var ErrSimulationStopped = errors.New("simulation stopped")
