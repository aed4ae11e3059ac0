package voxel

import (
	"math/rand"

	"github.com/go-gl/mathgl/mgl32"
)

// Grid generators. These play the external generator/editor role: they fill a
// chunk before a pass, the kernel never mutates voxels itself.

// Fill sets every voxel in the chunk to v.
func (c *Chunk) Fill(v Voxel) {
	for i := range c.data {
		c.data[i] = v
	}
}

// FillRegion sets every voxel in the half-open box [min, max) to v. The box
// is clipped against the chunk bounds.
func (c *Chunk) FillRegion(min, max Int3, v Voxel) {
	for z := min.Z; z < max.Z; z++ {
		for y := min.Y; y < max.Y; y++ {
			for x := min.X; x < max.X; x++ {
				c.SetVoxel(x, y, z, v)
			}
		}
	}
}

// GenerateRandom fills the chunk with active voxels of uniform random density.
func (c *Chunk) GenerateRandom(rng *rand.Rand) {
	for i := range c.data {
		c.data[i] = Voxel{Flags: 0, Density: rng.Float32()}
	}
}

// GenerateSphere fills the chunk with an active density field whose isosurface
// is a sphere around center with the given radius.
func (c *Chunk) GenerateSphere(center mgl32.Vec3, radius float32) {
	for z := int32(0); z < ChunkSize; z++ {
		for y := int32(0); y < ChunkSize; y++ {
			for x := int32(0); x < ChunkSize; x++ {
				p := mgl32.Vec3{float32(x), float32(y), float32(z)}
				d := IsoLevel + radius - p.Sub(center).Len()
				if d < 0 {
					d = 0
				} else if d > 1 {
					d = 1
				}
				c.data[voxelIndex(x, y, z)] = Voxel{Flags: 0, Density: d}
			}
		}
	}
}
