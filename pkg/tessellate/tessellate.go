// Package tessellate walks an extruded polyhedron and produces triangle
// meshes using a geometry kernel. One mesh is produced per face.
package tessellate

import (
	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/chazu/extrude/pkg/kernel"
	"github.com/chazu/extrude/pkg/shape"
)

// Tessellate walks the faces of ph in face order and produces one triangle
// mesh per face using the provided geometry kernel. Each mesh is named
// after its face ("front", "back", "side-N"). The tessellator is read-only
// and never mutates the polyhedron.
func Tessellate(ph *shape.Polyhedron, k kernel.Kernel) ([]*kernel.Mesh, error) {
	if ph == nil {
		return nil, nil
	}

	faces := ph.Faces()
	meshes := make([]*kernel.Mesh, 0, len(faces))
	for i, f := range faces {
		mesh, err := k.ToMesh(f.Polygon)
		if err != nil {
			return nil, errors.New("tessellating face failed").
				WithType(errors.Type(err)).
				WithTag("face", ph.FaceName(i)).
				Wrap(err)
		}
		mesh.PartName = ph.FaceName(i)
		meshes = append(meshes, mesh)
	}
	return meshes, nil
}

// Merge concatenates meshes into a single mesh, re-basing indices. The
// result is named name.
func Merge(name string, meshes []*kernel.Mesh) *kernel.Mesh {
	out := &kernel.Mesh{PartName: name}
	for _, m := range meshes {
		base := uint32(out.VertexCount())
		out.Vertices = append(out.Vertices, m.Vertices...)
		out.Normals = append(out.Normals, m.Normals...)
		for _, idx := range m.Indices {
			out.Indices = append(out.Indices, base+idx)
		}
	}
	return out
}
