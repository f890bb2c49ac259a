package shape

import (
	"math"
	"testing"

	"github.com/chazu/extrude/pkg/geom"
	"github.com/stretchr/testify/require"
)

func pt(t *testing.T, x, y, z int64) geom.Point {
	t.Helper()
	p, err := geom.NewPointInt(x, y, z)
	require.NoError(t, err)
	return p
}

// xy builds points in the z=0 plane from (x, y) pairs.
func xy(t *testing.T, coords ...int64) []geom.Point {
	t.Helper()
	require.Zero(t, len(coords)%2)
	points := make([]geom.Point, 0, len(coords)/2)
	for i := 0; i < len(coords); i += 2 {
		points = append(points, pt(t, coords[i], coords[i+1], 0))
	}
	return points
}

func tri(a, b, c geom.Point) geom.Triangle {
	return geom.NewTriangle(a, b, c)
}

func requireTriangles(t *testing.T, want, got []geom.Triangle) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		require.Truef(t, want[i].Equal(got[i]), "triangle %d: got %s, want %s", i, got[i], want[i])
	}
}

func requirePoints(t *testing.T, want, got []geom.Point) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		require.Truef(t, want[i].Equal(got[i]), "point %d: got %s, want %s", i, got[i], want[i])
	}
}

// triangleArea returns the area of t in 3-D.
func triangleArea(t geom.Triangle) float64 {
	a, b, c := t[0].Float64(), t[1].Float64(), t[2].Float64()
	u := [3]float64{b[0] - a[0], b[1] - a[1], b[2] - a[2]}
	v := [3]float64{c[0] - a[0], c[1] - a[1], c[2] - a[2]}
	cx := u[1]*v[2] - u[2]*v[1]
	cy := u[2]*v[0] - u[0]*v[2]
	cz := u[0]*v[1] - u[1]*v[0]
	return math.Sqrt(cx*cx+cy*cy+cz*cz) / 2
}

func sumArea(tris []geom.Triangle) float64 {
	var sum float64
	for _, t := range tris {
		sum += triangleArea(t)
	}
	return sum
}
