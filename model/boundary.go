package model

import (
	"strings"

	"github.com/pkg/errors"
)

// BoundaryPolicy decides how neighbours beyond the grid edge are read
type BoundaryPolicy int

const (
	// Wrap treats the grid as a torus, the left edge neighbours the right edge
	Wrap BoundaryPolicy = iota
	// ZeroFill treats every off-grid cell as permanently dead
	ZeroFill
)

func (p BoundaryPolicy) String() string {
	switch p {
	case Wrap:
		return "wrap"
	case ZeroFill:
		return "fill"
	default:
		return "unknown"
	}
}

// Valid reports whether p is one of the defined policies
func (p BoundaryPolicy) Valid() bool {
	return p == Wrap || p == ZeroFill
}

// ParseBoundary maps a policy name to its value. Both the short script names
// ("wrap", "fill") and the long forms are accepted, case-insensitively.
func ParseBoundary(s string) (BoundaryPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "wrap", "toroidal", "torus":
		return Wrap, nil
	case "fill", "zero_fill", "zero-fill", "zerofill":
		return ZeroFill, nil
	default:
		return Wrap, errors.Wrapf(ErrUnknownBoundary, "[ParseBoundary] %q", s)
	}
}

// MarshalText implements encoding.TextMarshaler
func (p BoundaryPolicy) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, errors.Wrapf(ErrUnknownBoundary, "[BoundaryPolicy.MarshalText] %d", int(p))
	}
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (p *BoundaryPolicy) UnmarshalText(text []byte) error {
	parsed, err := ParseBoundary(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
