package geom

import (
	"sort"

	"github.com/aukilabs/go-tooling/pkg/errors"
)

// Mins returns every point tying for the smallest component on axis a, in
// input order. At least one point is required.
func Mins(points []Point, a Axis) ([]Point, error) {
	if len(points) < 1 {
		return nil, argumentError("at least 1 point is required to get minimas", 1, len(points))
	}
	return extremes(points, a, -1), nil
}

// Maxs returns every point tying for the largest component on axis a, in
// input order. At least two points are required.
func Maxs(points []Point, a Axis) ([]Point, error) {
	if len(points) < 2 {
		return nil, argumentError("at least 2 points are required to get maximas", 2, len(points))
	}
	return extremes(points, a, 1), nil
}

// extremes scans once, keeping every point whose component compares to the
// current best with sign zero and restarting on a strictly better one.
func extremes(points []Point, a Axis, sign int) []Point {
	best := points[0].c[a]
	out := []Point{points[0]}
	for _, p := range points[1:] {
		switch c := p.c[a].Cmp(best); {
		case c == sign:
			best = p.c[a]
			out = append(out[:0], p)
		case c == 0:
			out = append(out, p)
		}
	}
	return out
}

// OrderStaircase sorts points ascending on main and then fixes each pair
// sharing a main value so that the walk alternates between advancing on
// main and on secondary: when a pair follows a point whose secondary value
// differs from the pair's first element, the pair is swapped.
//
// Tie groups larger than two have no staircase order and are rejected with
// a geometry error. The input slice is not modified.
func OrderStaircase(points []Point, main, secondary Axis) ([]Point, error) {
	ordered := make([]Point, len(points))
	copy(ordered, points)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].c[main].LessThan(ordered[j].c[main])
	})

	for i := 2; i < len(ordered); i++ {
		if ordered[i].c[main].Equal(ordered[i-1].c[main]) && ordered[i].c[main].Equal(ordered[i-2].c[main]) {
			return nil, errors.New("more than two points share a main-axis value").
				WithType(ErrTypeGeometry).
				WithTag("axis", main.String()).
				WithTag("value", ordered[i].c[main].String())
		}
	}

	for i := 1; i < len(ordered)-1; i++ {
		if !ordered[i].c[main].Equal(ordered[i+1].c[main]) {
			continue
		}
		if !ordered[i-1].c[secondary].Equal(ordered[i].c[secondary]) {
			ordered[i], ordered[i+1] = ordered[i+1], ordered[i]
		}
	}
	return ordered, nil
}
