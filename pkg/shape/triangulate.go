package shape

import "github.com/chazu/extrude/pkg/geom"

// Triangles fan-triangulates the polygon: one triangle per interior point.
//
// Each step picks the interior point that is extremal on the secondary axis
// (smallest for Normal, largest for Reversed, the later one on ties) as the
// apex over the current base, then splits the remaining range at the apex.
// Triangles of the left range are emitted in reverse.
func (p *Polygon) Triangles() []geom.Triangle {
	out := make([]geom.Triangle, 0, len(p.interior))
	return p.triangulate(out, 0, len(p.interior), p.base[0], p.base[1])
}

// triangulate appends the triangles of interior[lo:hi] over the base
// (b0, b1) to out.
func (p *Polygon) triangulate(out []geom.Triangle, lo, hi int, b0, b1 geom.Point) []geom.Triangle {
	if lo >= hi {
		return out
	}

	i := p.pivot(lo, hi)
	apex := p.interior[i]

	start := len(out)
	out = p.triangulate(out, lo, i, b0, apex)
	reverse(out[start:])

	out = append(out, geom.NewTriangle(apex, b0, b1))

	return p.triangulate(out, i+1, hi, apex, b1)
}

// pivot returns the index in [lo, hi) of the last point holding the
// extremal secondary value for the polygon's orientation.
func (p *Polygon) pivot(lo, hi int) int {
	want := -1
	if p.orientation == Reversed {
		want = 1
	}

	best := lo
	for i := lo + 1; i < hi; i++ {
		c := p.interior[i].Get(p.secondary).Cmp(p.interior[best].Get(p.secondary))
		if c == want || c == 0 {
			best = i
		}
	}
	return best
}

func reverse(t []geom.Triangle) {
	for i, j := 0, len(t)-1; i < j; i, j = i+1, j-1 {
		t[i], t[j] = t[j], t[i]
	}
}
