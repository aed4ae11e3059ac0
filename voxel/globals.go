package voxel

const (
	ChunkSize        int32 = 32
	ChunkSizeSquared int32 = ChunkSize * ChunkSize
	ChunkSizeCubed   int32 = ChunkSize * ChunkSize * ChunkSize
)

// IsoLevel is the density threshold separating "inside" from "outside" the
// extracted surface. Corner densities strictly below it count as outside.
const IsoLevel float32 = 0.5

const (
	// Per-cell geometry maxima: a marching-cubes cell emits at most 5
	// triangles, a solid cell at most 6 quads.
	maxSmoothVertsPerCell = 15
	maxSmoothIndexPerCell = 15
	maxBlockyVertsPerCell = 24
	maxBlockyIndexPerCell = 36
)

type Int3 struct {
	X, Y, Z int32
}

func (i Int3) Add(other Int3) Int3 {
	return Int3{i.X + other.X, i.Y + other.Y, i.Z + other.Z}
}
