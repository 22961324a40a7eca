package bezier

import (
	"errors"
	"fmt"
	"math"
)

// ErrUnknownEasing is returned when parsing the name of an easing function
// that doesn't exist.
var ErrUnknownEasing = errors.New("bezier: unknown easing")

// Easing selects a function that remaps the clock's parameter before the
// curve is evaluated, changing the perceived pacing of the motion without
// changing the path.
type Easing int

const (
	// Normal leaves t unchanged.
	Normal Easing = iota
	// Quadratic is t².
	Quadratic
	// Cubic is t³.
	Cubic
	// SquareRoot is √t. It is NaN for negative t.
	SquareRoot
	// QuadraticEaseOut is 1-(1-t)².
	QuadraticEaseOut
	// Parabola is (4t(1-t))². It rises from 0 to 1 at t = 0.5 and falls back
	// to 0, so the evaluated point travels out and returns once per cycle.
	Parabola
)

var easingNames = [...]string{
	Normal:           "normal",
	Quadratic:        "quadratic",
	Cubic:            "cubic",
	SquareRoot:       "square-root",
	QuadraticEaseOut: "quadratic-ease-out",
	Parabola:         "parabola",
}

// Apply remaps t. Values outside [0, 1] are passed through the same formula.
func (e Easing) Apply(t float64) float64 {
	switch e {
	case Quadratic:
		return t * t
	case Cubic:
		return t * t * t
	case SquareRoot:
		return math.Sqrt(t)
	case QuadraticEaseOut:
		return 1.0 - (1.0-t)*(1.0-t)
	case Parabola:
		v := 4.0 * t * (1.0 - t)
		return v * v
	default:
		return t
	}
}

func (e Easing) String() string {
	if e < 0 || int(e) >= len(easingNames) {
		return fmt.Sprintf("Easing(%d)", int(e))
	}
	return easingNames[e]
}

// ParseEasing returns the easing with the given name, as returned by
// [Easing.String].
func ParseEasing(name string) (Easing, error) {
	for i, n := range easingNames {
		if n == name {
			return Easing(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownEasing, name)
}

// MarshalText implements encoding.TextMarshaler.
func (e Easing) MarshalText() ([]byte, error) {
	if e < 0 || int(e) >= len(easingNames) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownEasing, int(e))
	}
	return []byte(easingNames[e]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (e *Easing) UnmarshalText(b []byte) error {
	v, err := ParseEasing(string(b))
	if err != nil {
		return err
	}
	*e = v
	return nil
}
