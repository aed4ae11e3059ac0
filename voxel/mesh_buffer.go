package voxel

import (
	"sync/atomic"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
)

// MeshBuffer collects the geometry of one meshing pass into four parallel
// arrays. The arrays are pre-sized by the caller; the two cursors hand out
// disjoint slot ranges to concurrent workers and are the only mutable state
// shared between them.
//
// The allocator does not enforce capacity. A buffer smaller than the pass
// output makes a vertex or index write panic on slice bounds; size with
// WorstCaseCounts (or NewWorstCaseMeshBuffer) to rule that out, and use
// Finalize to read back the actual counts.
type MeshBuffer struct {
	Positions []mgl32.Vec3
	Normals   []mgl32.Vec3
	UVs       []mgl32.Vec2
	Indices   []uint32

	vertexHead uint32
	indexHead  uint32
}

func NewMeshBuffer(vertexCapacity, indexCapacity int) *MeshBuffer {
	return &MeshBuffer{
		Positions: make([]mgl32.Vec3, vertexCapacity),
		Normals:   make([]mgl32.Vec3, vertexCapacity),
		UVs:       make([]mgl32.Vec2, vertexCapacity),
		Indices:   make([]uint32, indexCapacity),
	}
}

// NewWorstCaseMeshBuffer sizes the buffer so that no chunk can overflow it.
func NewWorstCaseMeshBuffer() *MeshBuffer {
	verts, indices := WorstCaseCounts()
	return NewMeshBuffer(verts, indices)
}

// WorstCaseCounts returns a safe per-chunk upper bound: every cell emitting
// its maximum geometry (24 vertices and 36 indices for a fully exposed solid
// cell, which dominates the 15/15 of a 5-triangle smooth cell).
func WorstCaseCounts() (vertexCount, indexCount int) {
	return int(ChunkSizeCubed) * maxBlockyVertsPerCell, int(ChunkSizeCubed) * maxBlockyIndexPerCell
}

// ReserveVertices atomically claims n consecutive vertex slots and returns the
// first one. The returned range is owned exclusively by the caller for the
// rest of the pass.
func (m *MeshBuffer) ReserveVertices(n uint32) uint32 {
	return atomic.AddUint32(&m.vertexHead, n) - n
}

// ReserveIndices atomically claims n consecutive index slots and returns the
// first one.
func (m *MeshBuffer) ReserveIndices(n uint32) uint32 {
	return atomic.AddUint32(&m.indexHead, n) - n
}

// Reset rewinds both cursors to zero. The caller must do this before every
// pass that reuses the buffer.
func (m *MeshBuffer) Reset() {
	atomic.StoreUint32(&m.vertexHead, 0)
	atomic.StoreUint32(&m.indexHead, 0)
}

func (m *MeshBuffer) VertexCount() int {
	return int(atomic.LoadUint32(&m.vertexHead))
}

func (m *MeshBuffer) IndexCount() int {
	return int(atomic.LoadUint32(&m.indexHead))
}

func (m *MeshBuffer) TriangleCount() int {
	return m.IndexCount() / 3
}

// Finalize reads back the cursors after a pass and reports the produced
// vertex and index counts. A cursor past the buffer capacity means the caller
// undersized the buffer; that is a fatal configuration error, not something
// the kernel can recover from.
func (m *MeshBuffer) Finalize() (vertexCount, indexCount int, err error) {
	vertexCount = m.VertexCount()
	indexCount = m.IndexCount()
	if vertexCount > len(m.Positions) {
		return vertexCount, indexCount, errors.Errorf("vertex cursor %d exceeds buffer capacity %d", vertexCount, len(m.Positions))
	}
	if indexCount > len(m.Indices) {
		return vertexCount, indexCount, errors.Errorf("index cursor %d exceeds buffer capacity %d", indexCount, len(m.Indices))
	}
	return vertexCount, indexCount, nil
}

// PositionData returns the written prefix of the position array. Only valid
// after a completed pass.
func (m *MeshBuffer) PositionData() []mgl32.Vec3 {
	return m.Positions[:m.VertexCount()]
}

func (m *MeshBuffer) NormalData() []mgl32.Vec3 {
	return m.Normals[:m.VertexCount()]
}

func (m *MeshBuffer) UVData() []mgl32.Vec2 {
	return m.UVs[:m.VertexCount()]
}

func (m *MeshBuffer) IndexData() []uint32 {
	return m.Indices[:m.IndexCount()]
}
