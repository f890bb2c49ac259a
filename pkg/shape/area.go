package shape

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// Ring projects the outline onto its (main, secondary) plane as a closed
// ring.
func (p *Polygon) Ring() orb.Ring {
	points := p.Points()
	ring := make(orb.Ring, 0, len(points)+1)
	for _, pt := range points {
		f := pt.Float64()
		ring = append(ring, orb.Point{f[p.main], f[p.secondary]})
	}
	return append(ring, ring[0])
}

// Area returns the enclosed area of the outline.
func (p *Polygon) Area() float64 {
	return math.Abs(planar.Area(p.Ring()))
}

// Bound returns the outline's bounding rectangle in the (main, secondary)
// plane.
func (p *Polygon) Bound() orb.Bound {
	return p.Ring().Bound()
}
