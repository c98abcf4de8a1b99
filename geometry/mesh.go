package geometry

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"j4k.co/tower/gfx"
)

// Shape is the capability the scene needs from a piece of geometry: its
// vertex attributes, an optional index list and the primitive it is drawn
// with.
type Shape interface {
	gfx.VertexData
	gfx.IndexData
	Primitive() gfx.Primitive
	Positions() []mgl32.Vec3
	Normals() []mgl32.Vec3
	Colors() []mgl32.Vec4
	Triangles() int
	Segments() int
}

// Mesh is a finished, immutable vertex/index buffer pair. Accessors return
// copies.
type Mesh struct {
	format    gfx.VertexFormat
	prim      gfx.Primitive
	positions []mgl32.Vec3
	normals   []mgl32.Vec3
	colors    []mgl32.Vec4
	indices   []uint16
	indexed   bool
}

var _ Shape = (*Mesh)(nil)

func (m *Mesh) VertexFormat() gfx.VertexFormat { return m.format }
func (m *Mesh) Primitive() gfx.Primitive       { return m.prim }
func (m *Mesh) VertexCount() int               { return len(m.positions) }
func (m *Mesh) Indexed() bool                  { return m.indexed }
func (m *Mesh) IndexCount() int                { return len(m.indices) }

func (m *Mesh) Positions() []mgl32.Vec3 { return append([]mgl32.Vec3(nil), m.positions...) }
func (m *Mesh) Normals() []mgl32.Vec3   { return append([]mgl32.Vec3(nil), m.normals...) }
func (m *Mesh) Colors() []mgl32.Vec4    { return append([]mgl32.Vec4(nil), m.colors...) }

// Indices returns the index list, or nil when the mesh is unindexed.
func (m *Mesh) Indices() []uint16 {
	if !m.indexed {
		return nil
	}
	return append([]uint16(nil), m.indices...)
}

// Segments returns the number of line segments a line list implies.
func (m *Mesh) Segments() int {
	if m.prim != gfx.Lines {
		return 0
	}
	if m.indexed {
		return len(m.indices) / 2
	}
	return len(m.positions) / 2
}

// Triangles returns the number of triangles the mesh rasterizes into,
// degenerate strip joins included.
func (m *Mesh) Triangles() int {
	switch m.prim {
	case gfx.Triangles:
		if m.indexed {
			return len(m.indices) / 3
		}
		return len(m.positions) / 3
	case gfx.TriangleStrip:
		n := len(m.positions)
		if m.indexed {
			n = len(m.indices)
		}
		if n < 3 {
			return 0
		}
		return n - 2
	default:
		return 0
	}
}

// Interleave returns the vertex stream in VertexFormat bit order, one
// stride per vertex.
func (m *Mesh) Interleave() []float32 {
	stride := m.format.Stride() / 4
	out := make([]float32, 0, stride*len(m.positions))
	for i, p := range m.positions {
		for f := gfx.VertexFormat(1); f <= gfx.MaxVertexFormat; f <<= 1 {
			if m.format&f == 0 {
				continue
			}
			switch f {
			case gfx.VertexPosition:
				out = append(out, p[:]...)
			case gfx.VertexColor:
				out = append(out, m.colors[i][:]...)
			case gfx.VertexNormal:
				out = append(out, m.normals[i][:]...)
			}
		}
	}
	return out
}

func (m *Mesh) validate() error {
	n := len(m.positions)
	if n == 0 {
		return fmt.Errorf("%w: no vertices", ErrBadGeometry)
	}
	if m.format&gfx.VertexNormal != 0 && len(m.normals) != n {
		return fmt.Errorf("%w: %d normals for %d positions", ErrBadGeometry, len(m.normals), n)
	}
	if m.format&gfx.VertexColor != 0 && len(m.colors) != n {
		return fmt.Errorf("%w: %d colors for %d positions", ErrBadGeometry, len(m.colors), n)
	}
	for _, idx := range m.indices {
		if int(idx) >= n {
			return fmt.Errorf("%w: index %d out of range for %d vertices", ErrBadGeometry, idx, n)
		}
	}

	count := n
	if m.indexed {
		count = len(m.indices)
	}
	switch m.prim {
	case gfx.Triangles:
		if count == 0 || count%3 != 0 {
			return fmt.Errorf("%w: %d elements do not form triangles", ErrBadGeometry, count)
		}
		if m.indexed {
			for i := 0; i < len(m.indices); i += 3 {
				a, b, c := m.indices[i], m.indices[i+1], m.indices[i+2]
				if a == b || b == c || a == c {
					return fmt.Errorf("%w: degenerate triangle %d", ErrBadGeometry, i/3)
				}
			}
		}
	case gfx.Lines:
		if count == 0 || count%2 != 0 {
			return fmt.Errorf("%w: %d elements do not form line pairs", ErrBadGeometry, count)
		}
	case gfx.TriangleStrip:
		if count < 3 {
			return fmt.Errorf("%w: strip of %d elements", ErrBadGeometry, count)
		}
	default:
		return fmt.Errorf("%w: unknown primitive %d", ErrBadGeometry, m.prim)
	}
	return nil
}
