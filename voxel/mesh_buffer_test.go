package voxel

import (
	"math/rand"
	"sort"
	"sync"
	"testing"
)

func TestReserveHandsOutSequentialRanges(t *testing.T) {
	buf := NewMeshBuffer(64, 64)
	if got := buf.ReserveVertices(3); got != 0 {
		t.Errorf("first reservation starts at %d, want 0", got)
	}
	if got := buf.ReserveVertices(4); got != 3 {
		t.Errorf("second reservation starts at %d, want 3", got)
	}
	if got := buf.ReserveIndices(6); got != 0 {
		t.Errorf("index reservation starts at %d, want 0", got)
	}
	if buf.VertexCount() != 7 || buf.IndexCount() != 6 {
		t.Errorf("counts = %d/%d, want 7/6", buf.VertexCount(), buf.IndexCount())
	}
}

// Concurrent reservations must tile [0, cursor) exactly: no overlaps, no gaps,
// regardless of interleaving.
func TestConcurrentReservationsAreDisjoint(t *testing.T) {
	const workers = 16
	const reservationsPerWorker = 200

	buf := NewMeshBuffer(0, 0)
	type span struct{ start, n uint32 }
	spans := make([][]span, workers)

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(w int) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(int64(w)))
			for i := 0; i < reservationsPerWorker; i++ {
				n := uint32(rng.Intn(8) + 1)
				spans[w] = append(spans[w], span{buf.ReserveVertices(n), n})
			}
		}(w)
	}
	wg.Wait()

	var all []span
	var total uint32
	for _, s := range spans {
		for _, sp := range s {
			all = append(all, sp)
			total += sp.n
		}
	}
	if got := uint32(buf.VertexCount()); got != total {
		t.Fatalf("cursor = %d, reserved total = %d", got, total)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].start < all[j].start })
	var next uint32
	for _, sp := range all {
		if sp.start != next {
			t.Fatalf("range starting at %d leaves a gap or overlap, expected start %d", sp.start, next)
		}
		next += sp.n
	}
}

func TestResetRewindsCursors(t *testing.T) {
	buf := NewMeshBuffer(16, 16)
	buf.ReserveVertices(5)
	buf.ReserveIndices(9)
	buf.Reset()
	if buf.VertexCount() != 0 || buf.IndexCount() != 0 {
		t.Errorf("counts after Reset = %d/%d, want 0/0", buf.VertexCount(), buf.IndexCount())
	}
}

func TestFinalizeReportsOverflow(t *testing.T) {
	buf := NewMeshBuffer(2, 3)
	buf.ReserveVertices(5)
	if _, _, err := buf.Finalize(); err == nil {
		t.Error("expected overflow error when vertex cursor exceeds capacity")
	}

	buf = NewMeshBuffer(8, 3)
	buf.ReserveIndices(6)
	if _, _, err := buf.Finalize(); err == nil {
		t.Error("expected overflow error when index cursor exceeds capacity")
	}
}

func TestWorstCaseCountsCoverFullyExposedSolids(t *testing.T) {
	verts, indices := WorstCaseCounts()
	if verts < int(ChunkSizeCubed)*24 || indices < int(ChunkSizeCubed)*36 {
		t.Errorf("worst case %d/%d cannot hold a chunk of fully exposed solid cells", verts, indices)
	}
}
