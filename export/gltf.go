// Package export turns a finished mesh buffer into consumable asset formats.
package export

import (
	"github.com/pkg/errors"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/memmaker/voxelmesh/voxel"
)

// GLTF builds a glTF document from the written portion of a mesh buffer. The
// buffer must come from a completed pass; an empty mesh is an error because
// glTF accessors cannot be zero-length.
func GLTF(buf *voxel.MeshBuffer) (*gltf.Document, error) {
	vertexCount, indexCount, err := buf.Finalize()
	if err != nil {
		return nil, errors.Wrap(err, "finalize mesh buffer")
	}
	if vertexCount == 0 || indexCount == 0 {
		return nil, errors.New("mesh is empty")
	}

	positions := make([][3]float32, vertexCount)
	normals := make([][3]float32, vertexCount)
	uvs := make([][2]float32, vertexCount)
	for i, p := range buf.PositionData() {
		positions[i] = p
	}
	for i, n := range buf.NormalData() {
		normals[i] = n
	}
	for i, uv := range buf.UVData() {
		uvs[i] = uv
	}
	indices := make([]uint32, indexCount)
	copy(indices, buf.IndexData())

	doc := gltf.NewDocument()
	primitive := &gltf.Primitive{
		Mode:    gltf.PrimitiveTriangles,
		Indices: gltf.Index(modeler.WriteIndices(doc, indices)),
		Attributes: map[string]uint32{
			"POSITION":   modeler.WritePosition(doc, positions),
			"NORMAL":     modeler.WriteNormal(doc, normals),
			"TEXCOORD_0": modeler.WriteTextureCoord(doc, uvs),
		},
	}
	doc.Meshes = append(doc.Meshes, &gltf.Mesh{
		Name:       "chunk",
		Primitives: []*gltf.Primitive{primitive},
	})
	doc.Nodes = append(doc.Nodes, &gltf.Node{
		Name: "chunk",
		Mesh: gltf.Index(uint32(len(doc.Meshes) - 1)),
	})
	doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, uint32(len(doc.Nodes)-1))
	return doc, nil
}

// SaveGLTF writes the mesh to path as a .gltf file.
func SaveGLTF(path string, buf *voxel.MeshBuffer) error {
	doc, err := GLTF(buf)
	if err != nil {
		return err
	}
	if err := gltf.Save(doc, path); err != nil {
		return errors.Wrapf(err, "save %s", path)
	}
	return nil
}
