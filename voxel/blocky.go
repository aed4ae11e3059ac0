package voxel

import (
	"github.com/go-gl/mathgl/mgl32"
)

type FaceType int32

const (
	XP FaceType = iota
	XN
	YP
	YN
	ZP
	ZN
)

var faceDirections = [6]Int3{
	{1, 0, 0}, {-1, 0, 0},
	{0, 1, 0}, {0, -1, 0},
	{0, 0, 1}, {0, 0, -1},
}

// Corner offsets per face, ordered around the quad perimeter so that the
// resulting normal points out of the voxel.
var faceCorners = [6][4]mgl32.Vec3{
	XP: {{1, 0, 1}, {1, 0, 0}, {1, 1, 0}, {1, 1, 1}},
	XN: {{0, 0, 0}, {0, 0, 1}, {0, 1, 1}, {0, 1, 0}},
	YP: {{0, 1, 1}, {1, 1, 1}, {1, 1, 0}, {0, 1, 0}},
	YN: {{0, 0, 0}, {1, 0, 0}, {1, 0, 1}, {0, 0, 1}},
	ZP: {{0, 0, 1}, {1, 0, 1}, {1, 1, 1}, {0, 1, 1}},
	ZN: {{1, 0, 0}, {0, 0, 0}, {0, 1, 0}, {1, 1, 0}},
}

// meshSolidCell emits an axis-aligned quad for every exposed face of a solid
// voxel. A face counts as exposed when the neighbor in that direction samples
// below IsoLevel; samples past the chunk boundary read as 0.0 and therefore
// always expose the face. All six directions are tested, there is no early
// exit.
func (c *Chunk) meshSolidCell(x, y, z int32, out *MeshBuffer) {
	origin := mgl32.Vec3{float32(x), float32(y), float32(z)}
	for face := XP; face <= ZN; face++ {
		dir := faceDirections[face]
		if c.DensityAt(x+dir.X, y+dir.Y, z+dir.Z) >= IsoLevel {
			continue
		}

		base := out.ReserveVertices(4)
		indexBase := out.ReserveIndices(6)

		var quad [4]mgl32.Vec3
		for k := 0; k < 4; k++ {
			quad[k] = origin.Add(faceCorners[face][k])
			out.Positions[base+uint32(k)] = quad[k]
		}

		normal := quad[0].Sub(quad[1]).Cross(quad[0].Sub(quad[2]))
		for k := uint32(0); k < 4; k++ {
			out.Normals[base+k] = normal
		}

		out.UVs[base] = mgl32.Vec2{0, 0}
		out.UVs[base+1] = mgl32.Vec2{1, 0}
		out.UVs[base+2] = mgl32.Vec2{1, 1}
		out.UVs[base+3] = mgl32.Vec2{0, 1}

		// Two triangles per quad.
		out.Indices[indexBase] = base
		out.Indices[indexBase+1] = base + 1
		out.Indices[indexBase+2] = base + 2
		out.Indices[indexBase+3] = base
		out.Indices[indexBase+4] = base + 2
		out.Indices[indexBase+5] = base + 3
	}
}
