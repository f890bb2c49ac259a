package shape

import (
	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/chazu/extrude/pkg/geom"
)

// PlaneAxis returns the single axis on which every consecutive pair of
// points shares its value. At least three points are required.
func PlaneAxis(points []geom.Point) (geom.Axis, error) {
	if len(points) < 3 {
		return 0, errors.New("at least 3 points are required to get the plane").
			WithType(geom.ErrTypeArgument).
			WithTag("points", len(points))
	}

	shared := [3]bool{true, true, true}
	for i := 0; i < len(points)-1; i++ {
		for _, a := range geom.Axes {
			if !points[i].Get(a).Equal(points[i+1].Get(a)) {
				shared[a] = false
			}
		}
	}

	var found []geom.Axis
	for _, a := range geom.Axes {
		if shared[a] {
			found = append(found, a)
		}
	}

	switch len(found) {
	case 0:
		return 0, errors.New("no common plane").
			WithType(geom.ErrTypeGeometry).
			WithTag("points", len(points))
	case 1:
		return found[0], nil
	default:
		return 0, errors.New("ambiguous plane, points are degenerate").
			WithType(geom.ErrTypeGeometry).
			WithTag("points", len(points)).
			WithTag("axes", len(found))
	}
}

// cuttingAxes returns the main and secondary axes of a profile lying in the
// given plane. The main axis is the first candidate with exactly half as
// many distinct values as there are points: an outline has two rows along
// it.
func cuttingAxes(points []geom.Point, plane geom.Axis) (main, secondary geom.Axis, err error) {
	a, b := plane.Others()
	half := len(points) / 2

	switch {
	case geom.DistinctValues(points, a) == half:
		return a, b, nil
	case geom.DistinctValues(points, b) == half:
		return b, a, nil
	}
	return 0, 0, errors.New("cannot determine polygon axes").
		WithType(geom.ErrTypeGeometry).
		WithTag("plane", plane.String()).
		WithTag("points", len(points))
}
