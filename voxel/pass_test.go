package voxel

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

// Across a whole pass the reserved ranges tile the buffers exactly: every
// slot below the final cursors is written, nothing above them is touched.
func TestPassCoversReservedRangesExactly(t *testing.T) {
	c := NewChunk()
	center := float32(ChunkSize) / 2
	c.GenerateSphere(mgl32.Vec3{center, center, center}, 9)
	// Mix in a solid block so both extractors contribute.
	c.FillRegion(Int3{2, 2, 2}, Int3{6, 6, 6}, Voxel{Flags: 1, Density: 1})

	buf := NewWorstCaseMeshBuffer()
	nan := float32(math.NaN())
	for i := range buf.Positions {
		buf.Positions[i] = mgl32.Vec3{nan, nan, nan}
	}
	const indexSentinel = ^uint32(0)
	for i := range buf.Indices {
		buf.Indices[i] = indexSentinel
	}

	c.BuildMesh(DefaultTables(), buf)

	vertexCount, indexCount, err := buf.Finalize()
	if err != nil {
		t.Fatalf("Finalize: %v", err)
	}
	if vertexCount == 0 || indexCount == 0 {
		t.Fatal("expected the mixed chunk to emit geometry")
	}

	for i := 0; i < vertexCount; i++ {
		p := buf.Positions[i]
		if math.IsNaN(float64(p[0])) || math.IsNaN(float64(p[1])) || math.IsNaN(float64(p[2])) {
			t.Fatalf("vertex slot %d inside the reserved range was never written", i)
		}
	}
	for i := vertexCount; i < len(buf.Positions); i++ {
		p := buf.Positions[i]
		if !math.IsNaN(float64(p[0])) {
			t.Fatalf("vertex slot %d beyond the cursor was written", i)
		}
	}
	for i := 0; i < indexCount; i++ {
		if buf.Indices[i] == indexSentinel {
			t.Fatalf("index slot %d inside the reserved range was never written", i)
		}
		if buf.Indices[i] >= uint32(vertexCount) {
			t.Fatalf("index slot %d references vertex %d beyond the cursor", i, buf.Indices[i])
		}
	}
	for i := indexCount; i < len(buf.Indices); i++ {
		if buf.Indices[i] != indexSentinel {
			t.Fatalf("index slot %d beyond the cursor was written", i)
		}
	}

	checkIndexTriples(t, buf)
}

// Adjacent active cells that both emit geometry never collide in the output,
// no matter how the workers interleave.
func TestAdjacentCellsReserveDisjointRanges(t *testing.T) {
	c := NewChunk()
	// A density step between x=10 and x=11 cuts every cell in that wall.
	for z := int32(0); z < ChunkSize; z++ {
		for y := int32(0); y < ChunkSize; y++ {
			for x := int32(0); x < ChunkSize; x++ {
				d := float32(0)
				if x <= 10 {
					d = 1
				}
				c.SetVoxel(x, y, z, Voxel{Flags: 0, Density: d})
			}
		}
	}

	buf := NewWorstCaseMeshBuffer()
	for run := 0; run < 10; run++ {
		buf.Reset()
		c.BuildMesh(DefaultTables(), buf)

		vertexCount, indexCount, err := buf.Finalize()
		if err != nil {
			t.Fatalf("run %d: %v", run, err)
		}
		// Full coverage with no overlap means vertex and index counts always
		// agree with the emitted triangles.
		if vertexCount != indexCount || vertexCount%3 != 0 {
			t.Fatalf("run %d: counts %d/%d violate triangle layout", run, vertexCount, indexCount)
		}
		checkIndexTriples(t, buf)
	}
}

// The worker count is a scheduling knob only: sequential and parallel passes
// produce the same triangles.
func TestWorkerCountDoesNotChangeGeometry(t *testing.T) {
	c := NewChunk()
	center := float32(ChunkSize) / 2
	c.GenerateSphere(mgl32.Vec3{center, center, center}, 8)

	buf := NewWorstCaseMeshBuffer()
	c.BuildMeshWorkers(DefaultTables(), buf, 1)
	sequential := canonicalTriangles(t, buf)

	for _, workers := range []int{0, 2, 8} {
		buf.Reset()
		c.BuildMeshWorkers(DefaultTables(), buf, workers)
		got := canonicalTriangles(t, buf)
		if len(got) != len(sequential) {
			t.Fatalf("workers=%d: %d triangles, sequential pass produced %d", workers, len(got), len(sequential))
		}
		for i := range got {
			if got[i] != sequential[i] {
				t.Fatalf("workers=%d: triangle multiset diverges at %d", workers, i)
			}
		}
	}
}

func TestCellCoords(t *testing.T) {
	for _, idx := range []int32{0, 1, ChunkSize, ChunkSizeSquared, ChunkSizeCubed - 1} {
		cell := cellCoords(idx)
		if got := voxelIndex(cell.X, cell.Y, cell.Z); got != idx {
			t.Errorf("cellCoords(%d) = %v, round-trips to %d", idx, cell, got)
		}
	}
}
