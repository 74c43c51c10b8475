package pivotset

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

// objLine is one line of an OBJ file. Vertex lines keep their index and any
// fields after x y z; everything else is kept verbatim.
type objLine struct {
	vertex int
	text   string
}

func LoadOBJ(path string) (*Mesh, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("pivotset: open %s: %w", path, err)
	}
	defer file.Close()

	mesh, err := ReadOBJ(file)
	if err != nil {
		return nil, fmt.Errorf("pivotset: read %s: %w", path, err)
	}
	return mesh, nil
}

func ReadOBJ(r io.Reader) (*Mesh, error) {
	mesh := &Mesh{}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		fields := strings.Fields(line)
		if len(fields) == 0 {
			mesh.lines = append(mesh.lines, objLine{vertex: -1, text: line})
			continue
		}

		switch fields[0] {
		case "v":
			if len(fields) < 4 {
				return nil, fmt.Errorf("line %d: vertex needs 3 coordinates", lineNo)
			}
			var v mgl32.Vec3
			for i := 0; i < 3; i++ {
				f, err := strconv.ParseFloat(fields[i+1], 32)
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", lineNo, err)
				}
				if math.IsNaN(f) || math.IsInf(f, 0) {
					return nil, fmt.Errorf("line %d: non-finite coordinate %q", lineNo, fields[i+1])
				}
				v[i] = float32(f)
			}
			mesh.lines = append(mesh.lines, objLine{
				vertex: len(mesh.Vertices),
				text:   strings.Join(fields[4:], " "),
			})
			mesh.Vertices = append(mesh.Vertices, v)
		case "f":
			if len(fields) < 4 {
				return nil, fmt.Errorf("line %d: face needs at least 3 indices", lineNo)
			}
			face := make([]int, 0, len(fields)-1)
			for _, arg := range fields[1:] {
				idx, err := fixIndex(strings.SplitN(arg, "/", 2)[0], len(mesh.Vertices))
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", lineNo, err)
				}
				face = append(face, idx)
			}
			mesh.Faces = append(mesh.Faces, face)
			mesh.lines = append(mesh.lines, objLine{vertex: -1, text: line})
		default:
			mesh.lines = append(mesh.lines, objLine{vertex: -1, text: line})
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return mesh, nil
}

// fixIndex converts a one-based, possibly negative OBJ index to zero based.
func fixIndex(value string, count int) (int, error) {
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("bad face index %q", value)
	}
	idx := parsed - 1
	if parsed < 0 {
		idx = count + parsed
	}
	if idx < 0 || idx >= count {
		return 0, fmt.Errorf("face index %d out of range (%d vertices)", parsed, count)
	}
	return idx, nil
}

func SaveOBJ(path string, mesh *Mesh) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("pivotset: create %s: %w", path, err)
	}
	if err := mesh.WriteOBJ(file); err != nil {
		file.Close()
		return fmt.Errorf("pivotset: write %s: %w", path, err)
	}
	return file.Close()
}

// WriteOBJ writes the mesh. A mesh read from OBJ keeps its original non-vertex
// lines and ordering; other meshes are written as plain vertices and faces.
func (m *Mesh) WriteOBJ(w io.Writer) error {
	bw := bufio.NewWriter(w)

	if m.lines != nil {
		for _, l := range m.lines {
			if l.vertex < 0 {
				fmt.Fprintln(bw, l.text)
				continue
			}
			writeVertex(bw, m.Vertices[l.vertex], l.text)
		}
		return bw.Flush()
	}

	for _, v := range m.Vertices {
		writeVertex(bw, v, "")
	}
	for _, f := range m.Faces {
		bw.WriteString("f")
		for _, idx := range f {
			fmt.Fprintf(bw, " %d", idx+1)
		}
		bw.WriteString("\n")
	}
	return bw.Flush()
}

func writeVertex(w io.Writer, v mgl32.Vec3, tail string) {
	fmt.Fprintf(w, "v %s %s %s", formatFloat(v.X()), formatFloat(v.Y()), formatFloat(v.Z()))
	if tail != "" {
		fmt.Fprint(w, " ", tail)
	}
	fmt.Fprintln(w)
}

func formatFloat(f float32) string {
	return strconv.FormatFloat(float64(f), 'f', -1, 32)
}
