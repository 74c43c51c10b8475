package pivotset

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// LoadGLTF reads the triangle primitives of a .gltf or .glb file into a single
// mesh. Node transforms are not applied.
func LoadGLTF(path string) (*Mesh, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("pivotset: open %s: %w", path, err)
	}

	mesh := &Mesh{}
	for _, m := range doc.Meshes {
		for _, primitive := range m.Primitives {
			if primitive.Mode != gltf.PrimitiveTriangles {
				continue
			}
			posIdx, ok := primitive.Attributes[gltf.POSITION]
			if !ok {
				continue
			}
			posAcc, err := accessor(doc, int(posIdx))
			if err != nil {
				return nil, fmt.Errorf("pivotset: %s: mesh %q: %w", path, m.Name, err)
			}
			positions, err := modeler.ReadPosition(doc, posAcc, nil)
			if err != nil {
				return nil, fmt.Errorf("pivotset: %s: mesh %q positions: %w", path, m.Name, err)
			}

			var indices []uint32
			if primitive.Indices != nil {
				idxAcc, err := accessor(doc, int(*primitive.Indices))
				if err != nil {
					return nil, fmt.Errorf("pivotset: %s: mesh %q: %w", path, m.Name, err)
				}
				indices, err = modeler.ReadIndices(doc, idxAcc, nil)
				if err != nil {
					return nil, fmt.Errorf("pivotset: %s: mesh %q indices: %w", path, m.Name, err)
				}
			} else {
				indices = make([]uint32, len(positions))
				for k := range indices {
					indices[k] = uint32(k)
				}
			}

			for _, idx := range indices {
				if int(idx) >= len(positions) {
					return nil, fmt.Errorf("pivotset: %s: mesh %q: index %d out of range (%d vertices)",
						path, m.Name, idx, len(positions))
				}
			}

			base := len(mesh.Vertices)
			for _, p := range positions {
				mesh.Vertices = append(mesh.Vertices, mgl32.Vec3{p[0], p[1], p[2]})
			}
			for i := 0; i+2 < len(indices); i += 3 {
				mesh.Faces = append(mesh.Faces, []int{
					base + int(indices[i]),
					base + int(indices[i+1]),
					base + int(indices[i+2]),
				})
			}
		}
	}

	if len(mesh.Vertices) == 0 {
		return nil, fmt.Errorf("pivotset: %s: %w", path, ErrNoGeometry)
	}
	return mesh, nil
}

func accessor(doc *gltf.Document, idx int) (*gltf.Accessor, error) {
	if idx < 0 || idx >= len(doc.Accessors) || doc.Accessors[idx] == nil {
		return nil, fmt.Errorf("accessor %d out of range", idx)
	}
	return doc.Accessors[idx], nil
}
