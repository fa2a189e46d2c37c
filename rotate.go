package mrrangle

import (
	"math"

	"github.com/paulmach/orb"
)

// Rotate corners counter-clockwise by degrees around origin
func Rotate(c Corners, degrees float64, origin orb.Point) Corners {
	sin, cos := math.Sincos(degrees * deg2Rad)
	var dst Corners
	for i, p := range c {
		x := p.X() - origin.X()
		y := p.Y() - origin.Y()
		dst[i] = orb.Point{
			origin.X() + x*cos - y*sin,
			origin.Y() + x*sin + y*cos,
		}
	}
	return dst
}

// Scale corners by factor around origin
func Scale(c Corners, factor float64, origin orb.Point) Corners {
	var dst Corners
	for i, p := range c {
		dst[i] = orb.Point{
			origin.X() + (p.X()-origin.X())*factor,
			origin.Y() + (p.Y()-origin.Y())*factor,
		}
	}
	return dst
}

// Translate corners by (dx, dy)
func Translate(c Corners, dx, dy float64) Corners {
	var dst Corners
	for i, p := range c {
		dst[i] = orb.Point{p.X() + dx, p.Y() + dy}
	}
	return dst
}
