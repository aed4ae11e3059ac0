package voxel

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Voxel is one sample of the chunk's scalar field. Flags zero means the voxel
// takes part in smooth isosurface extraction; any nonzero value marks it as
// solid and routes it through the blocky face extractor instead.
type Voxel struct {
	Flags   uint32
	Density float32
}

func (v Voxel) Solid() bool {
	return v.Flags != 0
}

// Chunk is a fixed ChunkSize^3 grid of voxels. It is read-only during a
// meshing pass; mutation belongs to whoever generates or edits the grid.
type Chunk struct {
	data []Voxel
}

func NewChunk() *Chunk {
	return &Chunk{data: make([]Voxel, ChunkSizeCubed)}
}

func voxelIndex(x, y, z int32) int32 {
	return x + y*ChunkSize + z*ChunkSizeSquared
}

func (c *Chunk) Contains(x, y, z int32) bool {
	return x >= 0 && x < ChunkSize && y >= 0 && y < ChunkSize && z >= 0 && z < ChunkSize
}

func (c *Chunk) VoxelAt(x, y, z int32) Voxel {
	if !c.Contains(x, y, z) {
		return Voxel{}
	}
	return c.data[voxelIndex(x, y, z)]
}

func (c *Chunk) SetVoxel(x, y, z int32, v Voxel) {
	if !c.Contains(x, y, z) {
		return
	}
	c.data[voxelIndex(x, y, z)] = v
}

// DensityAt samples the scalar field at a grid position. Positions outside the
// chunk read as 0.0, so the boundary behaves as empty space and no neighbor
// chunk data is ever needed.
func (c *Chunk) DensityAt(x, y, z int32) float32 {
	if !c.Contains(x, y, z) {
		return 0.0
	}
	return c.data[voxelIndex(x, y, z)].Density
}

func (i Int3) ToVec3() mgl32.Vec3 {
	return mgl32.Vec3{float32(i.X), float32(i.Y), float32(i.Z)}
}
