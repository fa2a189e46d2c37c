package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/bmharper/mrrangle"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

const usage = "usage: mrrangle x0 y0 x1 y1 x2 y2 x3 y3 | mrrangle rectangle.geojson"

// parseCorners reads 8 coordinates from the command line
func parseCorners(args []string) (mrrangle.Corners, error) {
	var c mrrangle.Corners
	if len(args) != 8 {
		return c, errors.Errorf("expected 8 coordinates, got %d", len(args))
	}
	for i := range c {
		x, err := strconv.ParseFloat(args[i*2], 64)
		if err != nil {
			return c, errors.Wrapf(err, "corner %d x", i)
		}
		y, err := strconv.ParseFloat(args[i*2+1], 64)
		if err != nil {
			return c, errors.Wrapf(err, "corner %d y", i)
		}
		c[i] = orb.Point{x, y}
	}
	return c, nil
}

// parseGeoJSON reads a Polygon whose outer ring is the minimum rotated rectangle
func parseGeoJSON(raw []byte) (mrrangle.Corners, error) {
	g, err := geojson.UnmarshalGeometry(raw)
	if err != nil {
		return mrrangle.Corners{}, errors.Wrap(err, "geojson")
	}
	poly, ok := g.Geometry().(orb.Polygon)
	if !ok || len(poly) == 0 {
		return mrrangle.Corners{}, errors.Wrapf(mrrangle.ErrInvalidGeometry, "expected a Polygon, got %v", g.Type)
	}
	return mrrangle.CornersFromRing(poly[0])
}

func readCorners(args []string) (mrrangle.Corners, error) {
	if len(args) == 1 {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return mrrangle.Corners{}, err
		}
		return parseGeoJSON(raw)
	}
	return parseCorners(args)
}

func run(args []string, cfg *config) (string, error) {
	corners, err := readCorners(args)
	if err != nil {
		return "", err
	}
	log.Debug().Interface("corners", corners).Msg("Measuring")

	params := mrrangle.NewParams()
	params.VerticalThreshold = cfg.VerticalThreshold
	angle, err := mrrangle.LongSideAngle(corners, params)
	if err != nil {
		return "", err
	}
	length, width, err := mrrangle.Dimensions(corners)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%d %.3f %.3f", angle, length, width), nil
}

func main() {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	closeLog := initLogger(cfg)

	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, usage)
		closeLog()
		os.Exit(2)
	}
	out, err := run(os.Args[1:], cfg)
	if err != nil {
		log.Error().Err(err).Msg("Failed to measure rectangle")
		closeLog()
		os.Exit(1)
	}
	fmt.Println(out)
	closeLog()
}
