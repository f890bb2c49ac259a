// Package kernel defines the geometry kernel interface.
// Shapes are built and triangulated exactly in decimals; a kernel turns
// those exact triangles into float meshes for rendering and reporting.
// The kernel abstraction allows swapping backends without changing the
// rest of the system.
package kernel

import "github.com/chazu/extrude/pkg/geom"

// Solid is anything that can be walked as a set of vertices and an ordered
// list of triangles. Polygons and polyhedra both satisfy it.
type Solid interface {
	// Points returns the distinct vertices of the solid.
	Points() []geom.Point

	// Triangles returns the triangulation in emission order.
	Triangles() []geom.Triangle
}

// Kernel is the abstract geometry kernel interface.
type Kernel interface {
	// ToMesh converts the triangles of a solid into a flat float mesh.
	ToMesh(s Solid) (*Mesh, error)

	// BoundingBox returns the axis-aligned bounding box of a solid.
	BoundingBox(s Solid) (min, max [3]float64)
}
