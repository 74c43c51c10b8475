package pivotset

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

// Mesh is vertex geometry in an object's local space. Faces index into Vertices
// (zero based).
type Mesh struct {
	Vertices []mgl32.Vec3
	Faces    [][]int

	// source lines of a parsed OBJ file, re-emitted on write
	lines []objLine
}

func NewMesh(vertices []mgl32.Vec3, faces [][]int) *Mesh {
	return &Mesh{Vertices: vertices, Faces: faces}
}

func (m *Mesh) Bounds() Bounds {
	return BoundsOf(m.Vertices)
}

// Translate offsets every vertex by d.
func (m *Mesh) Translate(d mgl32.Vec3) {
	for i := range m.Vertices {
		m.Vertices[i] = m.Vertices[i].Add(d)
	}
}

// LoadMesh reads a mesh file, choosing the format from its extension.
func LoadMesh(path string) (*Mesh, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".obj":
		return LoadOBJ(path)
	case ".gltf", ".glb":
		return LoadGLTF(path)
	default:
		return nil, fmt.Errorf("pivotset: unsupported mesh format %q", ext)
	}
}
