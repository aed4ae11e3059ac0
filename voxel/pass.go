package voxel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// BuildMesh runs one meshing pass: one logical invocation per voxel cell,
// each reading the shared grid and tables and writing its geometry at slots
// reserved through the buffer's atomic cursors. Cells are handed to a pool of
// workers through an atomic work index, so output ordering depends on
// scheduling and is not reproducible across runs; per-triangle and per-quad
// layout is.
//
// The caller owns buffer sizing and must Reset the buffer before reusing it.
// There is no cancellation; the pass runs to completion.
func (c *Chunk) BuildMesh(tables *Tables, out *MeshBuffer) {
	c.BuildMeshWorkers(tables, out, runtime.GOMAXPROCS(0))
}

// BuildMeshWorkers runs the pass with an explicit worker count. Values below
// one fall back to GOMAXPROCS. The worker count only affects scheduling, never
// the produced geometry.
func (c *Chunk) BuildMeshWorkers(tables *Tables, out *MeshBuffer, workers int) {
	totalCells := int(ChunkSizeCubed)

	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers < 1 {
		workers = 1
	}
	if workers > totalCells {
		workers = totalCells
	}

	if workers == 1 {
		for idx := int32(0); idx < ChunkSizeCubed; idx++ {
			c.meshCell(cellCoords(idx), tables, out)
		}
		return
	}

	var next uint32
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for {
				idx := int32(atomic.AddUint32(&next, 1) - 1)
				if idx >= ChunkSizeCubed {
					return
				}
				c.meshCell(cellCoords(idx), tables, out)
			}
		}()
	}
	wg.Wait()
}

func cellCoords(idx int32) Int3 {
	return Int3{
		X: idx % ChunkSize,
		Y: (idx / ChunkSize) % ChunkSize,
		Z: idx / ChunkSizeSquared,
	}
}

func (c *Chunk) meshCell(cell Int3, tables *Tables, out *MeshBuffer) {
	if c.VoxelAt(cell.X, cell.Y, cell.Z).Solid() {
		c.meshSolidCell(cell.X, cell.Y, cell.Z, out)
	} else {
		c.meshSurfaceCell(cell.X, cell.Y, cell.Z, tables, out)
	}
}
