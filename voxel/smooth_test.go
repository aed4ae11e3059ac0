package voxel

import (
	"fmt"
	"math"
	"sort"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

// A chunk of all-empty voxels classifies every cell as 0xff, including the
// boundary cells whose outside corners also read 0.0, so the whole pass is
// culled.
func TestUniformEmptyChunkEmitsNothing(t *testing.T) {
	c := NewChunk()
	c.Fill(Voxel{Flags: 0, Density: 0})
	buf := NewWorstCaseMeshBuffer()
	c.BuildMesh(DefaultTables(), buf)
	if buf.VertexCount() != 0 || buf.IndexCount() != 0 {
		t.Errorf("uniform empty chunk emitted %d vertices, %d indices",
			buf.VertexCount(), buf.IndexCount())
	}
}

// With density 1 everywhere, a full pass still emits a shell along the max
// boundary, where outside corners read 0.0. The uniform-corners cull applies
// per cell: cells whose eight corners all lie in the grid classify as 0x00
// and contribute nothing.
func TestUniformInteriorCellsEmitNothing(t *testing.T) {
	c := NewChunk()
	c.Fill(Voxel{Flags: 0, Density: 1})
	buf := NewWorstCaseMeshBuffer()
	tables := DefaultTables()

	for z := int32(0); z < ChunkSize-1; z++ {
		for y := int32(0); y < ChunkSize-1; y++ {
			for x := int32(0); x < ChunkSize-1; x++ {
				c.meshSurfaceCell(x, y, z, tables, buf)
			}
		}
	}
	if buf.VertexCount() != 0 || buf.IndexCount() != 0 {
		t.Errorf("interior cells of a uniform chunk emitted %d vertices, %d indices",
			buf.VertexCount(), buf.IndexCount())
	}
}

// A single empty voxel inside a full chunk lights up exactly the eight cells
// that share it as a corner. Each of those cells sees a single-corner
// configuration and emits exactly one triangle, on top of the boundary shell
// the density-1 background produces on its own.
func TestSingleEmptyVoxelScenario(t *testing.T) {
	background := NewChunk()
	background.Fill(Voxel{Flags: 0, Density: 1})
	baseline := NewWorstCaseMeshBuffer()
	background.BuildMesh(DefaultTables(), baseline)

	c := NewChunk()
	c.Fill(Voxel{Flags: 0, Density: 1})
	c.SetVoxel(5, 5, 5, Voxel{Flags: 0, Density: 0})

	buf := NewWorstCaseMeshBuffer()
	c.BuildMesh(DefaultTables(), buf)

	vertexCount, indexCount, err := buf.Finalize()
	if err != nil {
		t.Fatalf("Finalize: %v", err)
	}
	// A smooth-only pass reserves vertices and indices in lockstep.
	if vertexCount != indexCount {
		t.Errorf("counts = %d vertices / %d indices, want equal", vertexCount, indexCount)
	}

	const wantTriangles = 8 // one per incident cell
	if got := buf.TriangleCount() - baseline.TriangleCount(); got != wantTriangles {
		t.Errorf("empty voxel added %d triangles over the baseline, want %d", got, wantTriangles)
	}

	// The added crossings interpolate halfway between the empty voxel and its
	// full neighbors, so the scenario's triangles lie within half a cell of
	// (5,5,5); everything else in the buffer is the boundary shell.
	positions := buf.PositionData()
	indices := buf.IndexData()
	local := 0
	for i := 0; i < len(indices); i += 3 {
		inside := true
		for k := 0; k < 3; k++ {
			p := positions[indices[i+k]]
			for axis := 0; axis < 3; axis++ {
				if p[axis] < 4.5 || p[axis] > 5.5 {
					inside = false
				}
			}
		}
		if inside {
			local++
		}
	}
	if local != wantTriangles {
		t.Errorf("%d triangles near (5,5,5), want %d", local, wantTriangles)
	}

	checkIndexTriples(t, buf)
}

func TestInterpolateEdgeGuardsZeroDelta(t *testing.T) {
	pa := mgl32.Vec3{1, 0, 0}
	pb := mgl32.Vec3{2, 0, 0}
	p := interpolateEdge(pa, pb, 0.5, 0.5)
	for axis := 0; axis < 3; axis++ {
		if math.IsNaN(float64(p[axis])) || math.IsInf(float64(p[axis]), 0) {
			t.Fatalf("equal densities produced a non-finite vertex %v", p)
		}
	}
	if want := (mgl32.Vec3{1.5, 0, 0}); p != want {
		t.Errorf("midpoint fallback = %v, want %v", p, want)
	}
}

func TestInterpolateEdgeCrossing(t *testing.T) {
	pa := mgl32.Vec3{0, 0, 0}
	pb := mgl32.Vec3{1, 0, 0}
	p := interpolateEdge(pa, pb, 0, 1)
	if want := (mgl32.Vec3{0.5, 0, 0}); p != want {
		t.Errorf("crossing at %v, want %v", p, want)
	}
	p = interpolateEdge(pa, pb, 0.25, 1.25)
	if want := (mgl32.Vec3{0.25, 0, 0}); p != want {
		t.Errorf("crossing at %v, want %v", p, want)
	}
}

// Two passes over identical input produce the same triangles, independent of
// the buffer order the scheduler happened to produce.
func TestPassIsIdempotent(t *testing.T) {
	c := NewChunk()
	center := float32(ChunkSize) / 2
	c.GenerateSphere(mgl32.Vec3{center, center, center}, 10)

	buf := NewWorstCaseMeshBuffer()
	c.BuildMesh(DefaultTables(), buf)
	first := canonicalTriangles(t, buf)

	buf.Reset()
	c.BuildMesh(DefaultTables(), buf)
	second := canonicalTriangles(t, buf)

	if len(first) != len(second) {
		t.Fatalf("triangle counts differ between passes: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("triangle multiset differs at %d:\n%s\n%s", i, first[i], second[i])
		}
	}
}

// canonicalTriangles reduces the buffer to a sorted multiset of triangles so
// comparisons ignore allocation order.
func canonicalTriangles(t *testing.T, buf *MeshBuffer) []string {
	t.Helper()
	indices := buf.IndexData()
	positions := buf.PositionData()
	if len(indices)%3 != 0 {
		t.Fatalf("index count %d is not a whole number of triangles", len(indices))
	}
	out := make([]string, 0, len(indices)/3)
	for i := 0; i < len(indices); i += 3 {
		verts := []mgl32.Vec3{
			positions[indices[i]],
			positions[indices[i+1]],
			positions[indices[i+2]],
		}
		sort.Slice(verts, func(a, b int) bool {
			va, vb := verts[a], verts[b]
			for axis := 0; axis < 3; axis++ {
				if va[axis] != vb[axis] {
					return va[axis] < vb[axis]
				}
			}
			return false
		})
		out = append(out, fmt.Sprintf("%v %v %v", verts[0], verts[1], verts[2]))
	}
	sort.Strings(out)
	return out
}

// checkIndexTriples asserts that every triangle's indices are distinct and
// point at the three vertices reserved in the same allocation.
func checkIndexTriples(t *testing.T, buf *MeshBuffer) {
	t.Helper()
	indices := buf.IndexData()
	vertexCount := uint32(buf.VertexCount())
	for i := 0; i < len(indices); i += 3 {
		a, b, c := indices[i], indices[i+1], indices[i+2]
		if a == b || b == c || a == c {
			t.Fatalf("triangle at index %d reuses a vertex slot: %d %d %d", i, a, b, c)
		}
		if a >= vertexCount || b >= vertexCount || c >= vertexCount {
			t.Fatalf("triangle at index %d references unwritten vertex slots: %d %d %d", i, a, b, c)
		}
	}
}
