package mrrangle

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"github.com/pkg/errors"
)

// RectangleFitter computes the minimum rotated rectangle of a polygon.
// The corners must be returned in a consistent winding order.
type RectangleFitter interface {
	MinRotatedRectangle(poly orb.Polygon) (Corners, error)
}

// Measurement of a single rectangular object
type Measurement struct {
	Corners  Corners
	Centroid orb.Point
	Angle    int     // degrees of the long side, [0, 180)
	Length   float64 // long side
	Width    float64 // short side
}

// CornersFromRing converts a ring into Corners.
// The ring may hold 4 points, or 5 points where the last repeats the first.
func CornersFromRing(r orb.Ring) (Corners, error) {
	var c Corners
	switch len(r) {
	case 4:
	case 5:
		if !r.Closed() {
			return c, errors.Wrapf(ErrInvalidGeometry, "5 point ring is not closed: %v", r)
		}
	default:
		return c, errors.Wrapf(ErrInvalidGeometry, "expected 4 corners, got %d points", len(r))
	}
	copy(c[:], r[:4])
	return c, nil
}

// Ring returns the corners as a closed ring
func (c Corners) Ring() orb.Ring {
	return orb.Ring{c[0], c[1], c[2], c[3], c[0]}
}

// Measure fits the minimum rotated rectangle of poly, and returns its orientation and dimensions.
func Measure(poly orb.Polygon, fitter RectangleFitter, params *Params) (*Measurement, error) {
	if len(poly) == 0 || len(poly[0]) == 0 {
		return nil, errors.Wrap(ErrInvalidGeometry, "empty polygon")
	}
	corners, err := fitter.MinRotatedRectangle(poly)
	if err != nil {
		return nil, errors.Wrap(err, "minimum rotated rectangle")
	}
	angle, err := LongSideAngle(corners, params)
	if err != nil {
		return nil, err
	}
	length, width, err := Dimensions(corners)
	if err != nil {
		return nil, err
	}
	centroid, _ := planar.CentroidArea(poly)
	return &Measurement{
		Corners:  corners,
		Centroid: centroid,
		Angle:    angle,
		Length:   length,
		Width:    width,
	}, nil
}
