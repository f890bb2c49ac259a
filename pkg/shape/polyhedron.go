package shape

import (
	"fmt"
	"math"

	"github.com/chazu/extrude/pkg/geom"
	"github.com/shopspring/decimal"
)

// FaceRole tells where a face sits on an extruded solid.
type FaceRole int

const (
	FaceFront FaceRole = iota // the extruded profile itself
	FaceSide                  // rectangle swept from one outline edge
	FaceBack                  // the translated copy of the profile
)

func (r FaceRole) String() string {
	switch r {
	case FaceFront:
		return "front"
	case FaceSide:
		return "side"
	case FaceBack:
		return "back"
	default:
		return "unknown"
	}
}

// Face is one polygon of a Polyhedron together with its role.
type Face struct {
	Polygon *Polygon
	Role    FaceRole
}

// Polyhedron is the closed solid produced by Polygon.Extrude. An N-point
// profile yields N+2 faces. Points and triangles are derived on each call.
type Polyhedron struct {
	faces  []Face
	length decimal.Decimal
}

// Faces returns the faces in rendering order.
func (ph *Polyhedron) Faces() []Face {
	out := make([]Face, len(ph.faces))
	copy(out, ph.faces)
	return out
}

// FaceCount returns the number of faces.
func (ph *Polyhedron) FaceCount() int {
	return len(ph.faces)
}

// FaceName returns a stable label for face i: "front", "back", or
// "side-N" numbered from 1 in face order.
func (ph *Polyhedron) FaceName(i int) string {
	f := ph.faces[i]
	if f.Role != FaceSide {
		return f.Role.String()
	}
	n := 0
	for _, g := range ph.faces[:i+1] {
		if g.Role == FaceSide {
			n++
		}
	}
	return fmt.Sprintf("side-%d", n)
}

// Length returns the extrusion length.
func (ph *Polyhedron) Length() decimal.Decimal {
	return ph.length
}

// Points returns every distinct vertex of the solid in first-seen order.
func (ph *Polyhedron) Points() []geom.Point {
	var all []geom.Point
	for _, f := range ph.faces {
		all = append(all, f.Polygon.Points()...)
	}
	return geom.Distinct(all)
}

// Triangles returns the triangles of every face in face order.
func (ph *Polyhedron) Triangles() []geom.Triangle {
	var out []geom.Triangle
	for _, f := range ph.faces {
		out = append(out, f.Polygon.Triangles()...)
	}
	return out
}

// Volume returns the profile area times the extrusion length.
func (ph *Polyhedron) Volume() float64 {
	if len(ph.faces) == 0 {
		return 0
	}
	return ph.faces[0].Polygon.Area() * math.Abs(ph.length.InexactFloat64())
}
