package voxel

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Cell corner offsets. Bit k of a cube index corresponds to cornerOffsets[k];
// the lookup tables are built against this exact ordering.
var cornerOffsets = [8]Int3{
	{0, 0, 1}, {1, 0, 1}, {1, 0, 0}, {0, 0, 0},
	{0, 1, 1}, {1, 1, 1}, {1, 1, 0}, {0, 1, 0},
}

// The two corners joined by each of the 12 cube edges.
var edgeCorners = [12][2]int{
	{0, 1}, {1, 2}, {2, 3}, {3, 0},
	{4, 5}, {5, 6}, {6, 7}, {7, 4},
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}

// meshSurfaceCell runs marching cubes for one active cell: classify the 8
// corners, interpolate the crossed edges and emit the configuration's
// triangles with flat per-triangle normals and placeholder UVs.
func (c *Chunk) meshSurfaceCell(x, y, z int32, tables *Tables, out *MeshBuffer) {
	var density [8]float32
	cubeIdx := 0
	for k, off := range cornerOffsets {
		density[k] = c.DensityAt(x+off.X, y+off.Y, z+off.Z)
		if density[k] < IsoLevel {
			cubeIdx |= 1 << k
		}
	}

	// Uniform cells carry no surface; cull before touching tables or cursors.
	if cubeIdx == 0x00 || cubeIdx == 0xff {
		return
	}

	cell := Int3{x, y, z}
	edges := tables.Edges[cubeIdx]
	var edgeVerts [12]mgl32.Vec3
	for e := 0; e < 12; e++ {
		if edges&(1<<uint(e)) == 0 {
			continue
		}
		a, b := edgeCorners[e][0], edgeCorners[e][1]
		edgeVerts[e] = interpolateEdge(
			cell.Add(cornerOffsets[a]).ToVec3(),
			cell.Add(cornerOffsets[b]).ToVec3(),
			density[a], density[b],
		)
	}

	row := &tables.Triangles[cubeIdx]
	for i := 0; i < len(row) && row[i] != -1; i += 3 {
		v0 := edgeVerts[row[i]]
		v1 := edgeVerts[row[i+1]]
		v2 := edgeVerts[row[i+2]]

		base := out.ReserveVertices(3)
		indexBase := out.ReserveIndices(3)

		// Flat, unnormalized face normal shared by all three vertices.
		normal := v0.Sub(v1).Cross(v0.Sub(v2))

		out.Positions[base] = v0
		out.Positions[base+1] = v1
		out.Positions[base+2] = v2
		out.Normals[base] = normal
		out.Normals[base+1] = normal
		out.Normals[base+2] = normal
		out.UVs[base] = mgl32.Vec2{0, 0}
		out.UVs[base+1] = mgl32.Vec2{1, 0}
		out.UVs[base+2] = mgl32.Vec2{0, 1}
		out.Indices[indexBase] = base
		out.Indices[indexBase+1] = base + 1
		out.Indices[indexBase+2] = base + 2
	}
}

// interpolateEdge returns the point where the isosurface crosses the edge
// between pa and pb. Equal corner densities would divide by zero; that case
// falls back to the edge midpoint instead of producing a NaN vertex.
func interpolateEdge(pa, pb mgl32.Vec3, da, db float32) mgl32.Vec3 {
	delta := db - da
	if mgl32.Abs(delta) < 1e-7 {
		return pa.Add(pb).Mul(0.5)
	}
	t := (IsoLevel - da) / delta
	return pa.Add(pb.Sub(pa).Mul(t))
}
