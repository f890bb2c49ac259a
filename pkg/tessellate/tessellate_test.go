package tessellate_test

import (
	"testing"

	"github.com/chazu/extrude/pkg/geom"
	"github.com/chazu/extrude/pkg/kernel"
	"github.com/chazu/extrude/pkg/kernel/sdfx"
	"github.com/chazu/extrude/pkg/shape"
	"github.com/chazu/extrude/pkg/tessellate"
	"github.com/shopspring/decimal"
)

// newKernel returns a fresh sdfx kernel for testing.
func newKernel() kernel.Kernel {
	return sdfx.New()
}

// makeSolid extrudes the profile given as x,y pairs in the z=0 plane.
func makeSolid(t *testing.T, length int64, coords ...int64) *shape.Polyhedron {
	t.Helper()
	var points []geom.Point
	for i := 0; i+1 < len(coords); i += 2 {
		p, err := geom.NewPointInt(coords[i], coords[i+1], 0)
		if err != nil {
			t.Fatalf("NewPointInt failed: %v", err)
		}
		points = append(points, p)
	}
	profile, err := shape.Create(points)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	ph, err := profile.Extrude(decimal.NewFromInt(length))
	if err != nil {
		t.Fatalf("Extrude failed: %v", err)
	}
	return ph
}

func TestBox(t *testing.T) {
	k := newKernel()
	ph := makeSolid(t, 10, 0, 0, 0, 5, 3, 5, 3, 0)

	meshes, err := tessellate.Tessellate(ph, k)
	if err != nil {
		t.Fatalf("Tessellate failed: %v", err)
	}
	if len(meshes) != 6 {
		t.Fatalf("expected 6 meshes, got %d", len(meshes))
	}

	want := []string{"front", "side-1", "side-2", "side-3", "back", "side-4"}
	for i, m := range meshes {
		if m.PartName != want[i] {
			t.Errorf("mesh %d: expected PartName %q, got %q", i, want[i], m.PartName)
		}
		if m.TriangleCount() != 2 {
			t.Errorf("mesh %q: expected 2 triangles, got %d", m.PartName, m.TriangleCount())
		}
	}
}

func TestStaircase(t *testing.T) {
	k := newKernel()
	ph := makeSolid(t, 4, 0, 0, 0, 3, 2, 3, 2, 5, 4, 5, 4, 0)

	meshes, err := tessellate.Tessellate(ph, k)
	if err != nil {
		t.Fatalf("Tessellate failed: %v", err)
	}
	if len(meshes) != ph.FaceCount() {
		t.Fatalf("expected %d meshes, got %d", ph.FaceCount(), len(meshes))
	}

	total := 0
	for _, m := range meshes {
		if m.IsEmpty() {
			t.Errorf("mesh %q should not be empty", m.PartName)
		}
		total += m.TriangleCount()
	}
	if total != len(ph.Triangles()) {
		t.Errorf("meshes hold %d triangles, polyhedron has %d", total, len(ph.Triangles()))
	}

	// The front and back faces carry the N-2 profile triangles.
	if meshes[0].TriangleCount() != 4 || meshes[4].TriangleCount() != 4 {
		t.Errorf("front/back triangle counts = %d/%d, want 4/4",
			meshes[0].TriangleCount(), meshes[4].TriangleCount())
	}
}

func TestFaceOffsets(t *testing.T) {
	k := newKernel()
	ph := makeSolid(t, 10, 0, 0, 0, 5, 3, 5, 3, 0)

	meshes, err := tessellate.Tessellate(ph, k)
	if err != nil {
		t.Fatalf("Tessellate failed: %v", err)
	}

	min, max := meshes[0].Bounds()
	if min[2] != 0 || max[2] != 0 {
		t.Errorf("front face spans z %v..%v, want 0..0", min[2], max[2])
	}
	min, max = meshes[4].Bounds()
	if min[2] != 10 || max[2] != 10 {
		t.Errorf("back face spans z %v..%v, want 10..10", min[2], max[2])
	}
}

func TestNilPolyhedron(t *testing.T) {
	meshes, err := tessellate.Tessellate(nil, newKernel())
	if err != nil {
		t.Fatalf("Tessellate failed: %v", err)
	}
	if len(meshes) != 0 {
		t.Fatalf("expected 0 meshes, got %d", len(meshes))
	}
}

func TestMerge(t *testing.T) {
	k := newKernel()
	ph := makeSolid(t, 10, 0, 0, 0, 5, 3, 5, 3, 0)

	meshes, err := tessellate.Tessellate(ph, k)
	if err != nil {
		t.Fatalf("Tessellate failed: %v", err)
	}

	merged := tessellate.Merge("solid", meshes)
	if merged.PartName != "solid" {
		t.Errorf("expected PartName %q, got %q", "solid", merged.PartName)
	}
	if merged.TriangleCount() != 12 {
		t.Errorf("expected 12 triangles, got %d", merged.TriangleCount())
	}
	for _, idx := range merged.Indices {
		if int(idx) >= merged.VertexCount() {
			t.Fatalf("index %d out of range for %d vertices", idx, merged.VertexCount())
		}
	}

	min, max := merged.Bounds()
	if min != [3]float32{0, 0, 0} || max != [3]float32{3, 5, 10} {
		t.Errorf("merged bounds = %v..%v, want [0 0 0]..[3 5 10]", min, max)
	}
}
