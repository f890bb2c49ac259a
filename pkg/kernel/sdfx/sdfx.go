// Package sdfx implements the kernel.Kernel interface using the
// github.com/deadsy/sdfx CAD library.
package sdfx

import (
	"math"

	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/chazu/extrude/pkg/geom"
	"github.com/chazu/extrude/pkg/kernel"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Compile-time interface check.
var _ kernel.Kernel = (*SdfxKernel)(nil)

// SdfxKernel implements kernel.Kernel using sdfx.
type SdfxKernel struct{}

// New returns a new SdfxKernel.
func New() *SdfxKernel {
	return &SdfxKernel{}
}

// vec converts an exact point to an sdfx vector.
func vec(p geom.Point) v3.Vec {
	f := p.Float64()
	return v3.Vec{X: f[0], Y: f[1], Z: f[2]}
}

// triangle converts an exact triangle to an sdfx triangle, keeping the
// vertex order and therefore the winding.
func triangle(t geom.Triangle) sdf.Triangle3 {
	return sdf.Triangle3{vec(t[0]), vec(t[1]), vec(t[2])}
}

// degenerate reports whether a normal could not be computed because the
// triangle has no area.
func degenerate(n v3.Vec) bool {
	return math.IsNaN(n.X) || math.IsNaN(n.Y) || math.IsNaN(n.Z)
}

// Box returns the sdfx bounding box of the given points. It returns false
// when there are no points.
func Box(points []geom.Point) (sdf.Box3, bool) {
	if len(points) == 0 {
		return sdf.Box3{}, false
	}
	first := vec(points[0])
	bb := sdf.Box3{Min: first, Max: first}
	for _, p := range points[1:] {
		v := vec(p)
		bb.Min = bb.Min.Min(v)
		bb.Max = bb.Max.Max(v)
	}
	return bb, true
}

// BoundingBox returns the axis-aligned bounding box.
func (k *SdfxKernel) BoundingBox(s kernel.Solid) (min, max [3]float64) {
	bb, ok := Box(s.Points())
	if !ok {
		return min, max
	}
	min = [3]float64{bb.Min.X, bb.Min.Y, bb.Min.Z}
	max = [3]float64{bb.Max.X, bb.Max.Y, bb.Max.Z}
	return min, max
}

// ToMesh converts the exact triangles of a solid to a flat-shaded mesh.
// Every triangle gets its own three vertices sharing the face normal.
func (k *SdfxKernel) ToMesh(s kernel.Solid) (*kernel.Mesh, error) {
	triangles := s.Triangles()

	numTri := len(triangles)
	numVerts := numTri * 3

	vertices := make([]float32, 0, numVerts*3)
	normals := make([]float32, 0, numVerts*3)
	indices := make([]uint32, 0, numVerts)

	for i, t := range triangles {
		tri := triangle(t)

		// Compute face normal.
		n := tri.Normal()
		if degenerate(n) {
			return nil, errors.New("degenerate triangle").
				WithType(geom.ErrTypeGeometry).
				WithTag("triangle", t.String())
		}
		nx := float32(n.X)
		ny := float32(n.Y)
		nz := float32(n.Z)

		for j := 0; j < 3; j++ {
			v := tri[j]
			vertices = append(vertices, float32(v.X), float32(v.Y), float32(v.Z))
			normals = append(normals, nx, ny, nz)
			indices = append(indices, uint32(i*3+j))
		}
	}

	return &kernel.Mesh{
		Vertices: vertices,
		Normals:  normals,
		Indices:  indices,
	}, nil
}
