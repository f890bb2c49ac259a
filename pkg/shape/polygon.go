package shape

import (
	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/chazu/extrude/pkg/geom"
)

// Polygon is one validated planar face of an orthogonal profile.
type Polygon struct {
	interior    []geom.Point // non-base points in staircase order
	base        [2]geom.Point
	plane       geom.Axis
	main        geom.Axis
	secondary   geom.Axis
	orientation Orientation
}

// Create validates points as an orthogonal profile and returns its Polygon.
//
// The points must lie in one axis-aligned plane, have exactly two rows along
// the main axis, and have right angles at both base points. Failures are
// geometry errors.
func Create(points []geom.Point) (*Polygon, error) {
	if len(points) < 4 {
		return nil, errors.New("a polygon must have at least 4 points").
			WithType(geom.ErrTypeGeometry).
			WithTag("points", len(points))
	}

	plane, err := PlaneAxis(points)
	if err != nil {
		return nil, err
	}

	if len(geom.Distinct(points)) != len(points) {
		return nil, errors.New("polygon has duplicate points").
			WithType(geom.ErrTypeGeometry).
			WithTag("points", len(points))
	}

	main, secondary, err := cuttingAxes(points, plane)
	if err != nil {
		return nil, err
	}

	corners, err := findCorners(points, main, secondary)
	if err != nil {
		return nil, err
	}

	orientation, err := findOrientation(points, corners, secondary)
	if err != nil {
		return nil, err
	}

	// Corner order is (min main, min sec), (min main, max sec),
	// (max main, max sec), (max main, min sec). The base is the row of
	// corners on the pivot side, each checked against its neighbour across
	// the outline and its base partner.
	var base [2]geom.Point
	var across [2]geom.Point
	switch orientation {
	case Normal:
		base = [2]geom.Point{corners[0], corners[3]}
		across = [2]geom.Point{corners[1], corners[2]}
	case Reversed:
		base = [2]geom.Point{corners[1], corners[2]}
		across = [2]geom.Point{corners[0], corners[3]}
	}

	if !geom.IsRightAngle(base[0], across[0], base[1]) || !geom.IsRightAngle(base[1], across[1], base[0]) {
		return nil, errors.New("invalid polygon type, base corners are not right angles").
			WithType(geom.ErrTypeGeometry).
			WithTag("base_0", base[0].String()).
			WithTag("base_1", base[1].String())
	}

	rest := make([]geom.Point, 0, len(points)-2)
	for _, p := range points {
		if p.Equal(base[0]) || p.Equal(base[1]) {
			continue
		}
		rest = append(rest, p)
	}

	interior, err := geom.OrderStaircase(rest, main, secondary)
	if err != nil {
		return nil, err
	}

	return &Polygon{
		interior:    interior,
		base:        base,
		plane:       plane,
		main:        main,
		secondary:   secondary,
		orientation: orientation,
	}, nil
}

// findCorners returns the four extremal corners of the outline.
func findCorners(points []geom.Point, main, secondary geom.Axis) ([4]geom.Point, error) {
	var corners [4]geom.Point

	lows, err := geom.Mins(points, main)
	if err != nil {
		return corners, err
	}
	highs, err := geom.Maxs(points, main)
	if err != nil {
		return corners, err
	}
	if len(lows) < 2 || len(highs) < 2 {
		return corners, errors.New("missing polygon corner").
			WithType(geom.ErrTypeGeometry).
			WithTag("axis", main.String()).
			WithTag("low_row", len(lows)).
			WithTag("high_row", len(highs))
	}

	rows := [4]struct {
		row []geom.Point
		max bool
	}{
		{lows, false},
		{lows, true},
		{highs, true},
		{highs, false},
	}
	for i, r := range rows {
		var candidates []geom.Point
		if r.max {
			candidates, err = geom.Maxs(r.row, secondary)
		} else {
			candidates, err = geom.Mins(r.row, secondary)
		}
		if err != nil {
			return corners, err
		}
		if len(candidates) != 1 {
			return corners, errors.New("ambiguous polygon corner").
				WithType(geom.ErrTypeGeometry).
				WithTag("corner", i).
				WithTag("candidates", len(candidates))
		}
		corners[i] = candidates[0]
	}
	return corners, nil
}

// findOrientation is Normal when the smallest secondary value of the whole
// outline sits on a corner, Reversed when the largest one does.
func findOrientation(points []geom.Point, corners [4]geom.Point, secondary geom.Axis) (Orientation, error) {
	lowest, err := geom.Mins(points, secondary)
	if err != nil {
		return 0, err
	}
	lowestCorner, err := geom.Mins(corners[:], secondary)
	if err != nil {
		return 0, err
	}
	if lowest[0].Get(secondary).Equal(lowestCorner[0].Get(secondary)) {
		return Normal, nil
	}

	highest, err := geom.Maxs(points, secondary)
	if err != nil {
		return 0, err
	}
	highestCorner, err := geom.Maxs(corners[:], secondary)
	if err != nil {
		return 0, err
	}
	if highest[0].Get(secondary).Equal(highestCorner[0].Get(secondary)) {
		return Reversed, nil
	}

	return 0, errors.New("impossible to create the polygon, no base on either secondary extreme").
		WithType(geom.ErrTypeGeometry).
		WithTag("axis", secondary.String())
}

// PlaneAxis returns the axis the polygon is flat on.
func (p *Polygon) PlaneAxis() geom.Axis { return p.plane }

// MainAxis returns the axis distinguishing the outline's rows.
func (p *Polygon) MainAxis() geom.Axis { return p.main }

// SecondaryAxis returns the axis pivots are chosen on.
func (p *Polygon) SecondaryAxis() geom.Axis { return p.secondary }

// Orientation returns the pivot selector.
func (p *Polygon) Orientation() Orientation { return p.orientation }

// BasePoints returns the two anchor points of the triangulation.
func (p *Polygon) BasePoints() [2]geom.Point { return p.base }

// InteriorPoints returns a copy of the non-base points in staircase order.
func (p *Polygon) InteriorPoints() []geom.Point {
	out := make([]geom.Point, len(p.interior))
	copy(out, p.interior)
	return out
}

// Len returns the total number of points, base included.
func (p *Polygon) Len() int {
	return len(p.interior) + 2
}

// Points returns the outline walk: first base point, interior points, second
// base point.
func (p *Polygon) Points() []geom.Point {
	out := make([]geom.Point, 0, len(p.interior)+2)
	out = append(out, p.base[0])
	out = append(out, p.interior...)
	return append(out, p.base[1])
}
