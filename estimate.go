package mrrangle

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"github.com/pkg/errors"
)

const deg2Rad = math.Pi / 180
const rad2Deg = 180 / math.Pi

// ErrInvalidGeometry is returned for corners that do not describe a usable rectangle.
var ErrInvalidGeometry = errors.New("invalid geometry")

// Corners of a minimum rotated rectangle, in winding order.
// Consecutive corners are adjacent, and so are corners 3 and 0.
type Corners [4]orb.Point

// Parameters to LongSideAngle
type Params struct {
	VerticalThreshold float64 // If the long side's x displacement is at most this, the side is vertical (90 degrees)
}

// Create a new Params with defaults
func NewParams() *Params {
	return &Params{
		VerticalThreshold: 0.001,
	}
}

// sides returns the lengths of the two edges that meet at corner 0.
// a is the edge to corner 1, b is the edge to corner 3.
func (c Corners) sides() (a, b float64, err error) {
	for i, p := range c {
		if !isFinite(p.X()) || !isFinite(p.Y()) {
			return 0, 0, errors.Wrapf(ErrInvalidGeometry, "corner %d is not finite: %v", i, p)
		}
	}
	a = planar.Distance(c[0], c[1])
	b = planar.Distance(c[0], c[3])
	if !isFinite(a) || !isFinite(b) {
		return 0, 0, errors.Wrap(ErrInvalidGeometry, "side length is not finite")
	}
	if a == 0 {
		return 0, 0, errors.Wrap(ErrInvalidGeometry, "corners 0 and 1 coincide")
	}
	if b == 0 {
		return 0, 0, errors.Wrap(ErrInvalidGeometry, "corners 0 and 3 coincide")
	}
	return a, b, nil
}

// LongSideAngle returns the rotation of the rectangle's long side relative to the
// positive x axis, rounded to the nearest degree and folded into [0, 180).
// If the two sides are equal (a square), the side from corner 0 to corner 1 is used.
func LongSideAngle(c Corners, params *Params) (int, error) {
	if params == nil {
		params = NewParams()
	}
	if params.VerticalThreshold < 0 || math.IsNaN(params.VerticalThreshold) {
		return 0, errors.Wrapf(ErrInvalidGeometry, "vertical threshold %v", params.VerticalThreshold)
	}
	a, b, err := c.sides()
	if err != nil {
		return 0, err
	}

	start := c[0]
	end := c[1]
	if a < b {
		end = c[3]
	}

	dx := start.X() - end.X()
	dy := start.Y() - end.Y()

	// Points are effectively above each other. Don't divide by zero.
	if math.Abs(dx) <= params.VerticalThreshold {
		return 90, nil
	}

	degrees := math.Atan(dy/dx) * rad2Deg
	// Halves round away from zero
	return NormalizeDegrees(int(math.Round(degrees))), nil
}

// Dimensions returns the length and width of the rectangle.
// The longer of the two sides at corner 0 is always the length.
func Dimensions(c Corners) (length, width float64, err error) {
	a, b, err := c.sides()
	if err != nil {
		return 0, 0, err
	}
	if a >= b {
		return a, b, nil
	}
	return b, a, nil
}

// NormalizeDegrees folds an angle into [0, 180).
// A line at 181 degrees is the same line as one at 1 degree.
func NormalizeDegrees(degrees int) int {
	degrees %= 180
	if degrees < 0 {
		degrees += 180
	}
	return degrees
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
