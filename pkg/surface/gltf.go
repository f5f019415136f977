package surface

import (
	"fmt"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// Document converts the mesh to a single-node glTF document with POSITION,
// NORMAL and COLOR_0 attributes.
func (m *Mesh) Document() (*gltf.Document, error) {
	if len(m.Vertices) == 0 || len(m.Faces) == 0 {
		return nil, fmt.Errorf("mesh %q is empty", m.Name)
	}

	positions := make([][3]float32, len(m.Vertices))
	normals := make([][3]float32, len(m.Vertices))
	colors := make([][4]uint8, len(m.Vertices))
	for i, v := range m.Vertices {
		positions[i] = [3]float32{float32(v.Position.X), float32(v.Position.Y), float32(v.Position.Z)}
		normals[i] = [3]float32{float32(v.Normal.X), float32(v.Normal.Y), float32(v.Normal.Z)}
		colors[i] = [4]uint8{v.Color.R, v.Color.G, v.Color.B, v.Color.A}
	}
	indices := make([]uint32, 0, len(m.Faces)*3)
	for _, f := range m.Faces {
		indices = append(indices, uint32(f[0]), uint32(f[1]), uint32(f[2]))
	}

	doc := gltf.NewDocument()
	posIdx := modeler.WritePosition(doc, positions)
	normIdx := modeler.WriteNormal(doc, normals)
	colorIdx := modeler.WriteColor(doc, colors)
	indexIdx := modeler.WriteIndices(doc, indices)

	doc.Meshes = []*gltf.Mesh{{
		Name: m.Name,
		Primitives: []*gltf.Primitive{{
			Mode:    gltf.PrimitiveTriangles,
			Indices: gltf.Index(indexIdx),
			Attributes: map[string]int{
				gltf.POSITION: posIdx,
				gltf.NORMAL:   normIdx,
				gltf.COLOR_0:  colorIdx,
			},
		}},
	}}
	doc.Nodes = []*gltf.Node{{Name: m.Name, Mesh: gltf.Index(0)}}
	doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, 0)
	return doc, nil
}

// SaveGLB writes the mesh as a binary glTF file.
func (m *Mesh) SaveGLB(path string) error {
	doc, err := m.Document()
	if err != nil {
		return err
	}
	if err := gltf.SaveBinary(doc, path); err != nil {
		return fmt.Errorf("save glb: %w", err)
	}
	return nil
}
