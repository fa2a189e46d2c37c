package mrrangle

import (
	"errors"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/require"
)

// Treats the polygon's outer ring as its own minimum rotated rectangle
type ringFitter struct{}

func (ringFitter) MinRotatedRectangle(poly orb.Polygon) (Corners, error) {
	return CornersFromRing(poly[0])
}

type failingFitter struct{}

func (failingFitter) MinRotatedRectangle(poly orb.Polygon) (Corners, error) {
	return Corners{}, errors.New("no convex hull")
}

func TestCornersFromRing(t *testing.T) {
	c, err := CornersFromRing(orb.Ring{{-4, 1}, {4, 1}, {4, -1}, {-4, -1}})
	require.NoError(t, err)
	require.Equal(t, baseItem, c)

	c, err = CornersFromRing(baseItem.Ring())
	require.NoError(t, err)
	require.Equal(t, baseItem, c)

	_, err = CornersFromRing(orb.Ring{{0, 0}, {1, 0}, {1, 1}})
	require.ErrorIs(t, err, ErrInvalidGeometry)

	_, err = CornersFromRing(orb.Ring{{-4, 1}, {4, 1}, {4, -1}, {-4, -1}, {0, 0}})
	require.ErrorIs(t, err, ErrInvalidGeometry)
}

func TestMeasure(t *testing.T) {
	c := Translate(Rotate(baseItem, 135, orb.Point{}), 10, 5)
	m, err := Measure(orb.Polygon{c.Ring()}, ringFitter{}, nil)
	require.NoError(t, err)
	require.Equal(t, 135, m.Angle)
	require.InDelta(t, 8, m.Length, 1e-9)
	require.InDelta(t, 2, m.Width, 1e-9)
	require.InDelta(t, 10, m.Centroid.X(), 1e-9)
	require.InDelta(t, 5, m.Centroid.Y(), 1e-9)
	require.Equal(t, c, m.Corners)
}

func TestMeasureErrors(t *testing.T) {
	_, err := Measure(orb.Polygon{baseItem.Ring()}, failingFitter{}, nil)
	require.ErrorContains(t, err, "no convex hull")

	_, err = Measure(orb.Polygon{}, ringFitter{}, nil)
	require.ErrorIs(t, err, ErrInvalidGeometry)

	degenerate := Corners{{0, 0}, {0, 0}, {1, 1}, {1, 0}}
	_, err = Measure(orb.Polygon{degenerate.Ring()}, ringFitter{}, nil)
	require.ErrorIs(t, err, ErrInvalidGeometry)
}

func TestRotateAroundOrigin(t *testing.T) {
	origin := orb.Point{5, 5}
	c := Rotate(baseItem, 90, origin)
	back := Rotate(c, -90, origin)
	for i := range baseItem {
		require.InDelta(t, baseItem[i].X(), back[i].X(), 1e-9)
		require.InDelta(t, baseItem[i].Y(), back[i].Y(), 1e-9)
	}
	// (-4, 1) relative to (5, 5) is (-9, -4), rotated 90 degrees that is (4, -9)
	require.InDelta(t, 9, c[0].X(), 1e-9)
	require.InDelta(t, -4, c[0].Y(), 1e-9)
}
