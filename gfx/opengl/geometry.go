// Package opengl uploads tower geometry to the GPU and draws it with
// OpenGL 4.1 core. Every function here must run on the thread that owns the
// GL context.
package opengl

import (
	"fmt"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"j4k.co/tower/gfx"
)

func primitive(p gfx.Primitive) uint32 {
	switch p {
	case gfx.Lines:
		return gl.LINES
	case gfx.TriangleStrip:
		return gl.TRIANGLE_STRIP
	default:
		return gl.TRIANGLES
	}
}

// VertexBuffer represents interleaved vertices for a VertexFormat set.
type VertexBuffer struct {
	buf    uint32
	count  int
	format gfx.VertexFormat
}

func (b *VertexBuffer) bind() {
	gl.BindBuffer(gl.ARRAY_BUFFER, b.buf)
}

func (b *VertexBuffer) Count() int {
	return b.count
}

func (b *VertexBuffer) Format() gfx.VertexFormat {
	return b.format
}

// SetVertices replaces the buffer contents. len(src) must be a whole number
// of vertices for the buffer's format.
func (b *VertexBuffer) SetVertices(src []float32) error {
	stride := b.format.Stride() / 4
	if stride == 0 || len(src)%stride != 0 {
		return fmt.Errorf("%w: %d floats for stride %d", gfx.ErrBadVertexFormat, len(src), stride)
	}
	b.bind()
	if len(src) == 0 {
		gl.BufferData(gl.ARRAY_BUFFER, 0, nil, gl.STATIC_DRAW)
	} else {
		gl.BufferData(gl.ARRAY_BUFFER, len(src)*4, gl.Ptr(src), gl.STATIC_DRAW)
	}
	b.count = len(src) / stride
	return nil
}

type IndexBuffer struct {
	buf   uint32
	count int
}

func (b *IndexBuffer) bind() {
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, b.buf)
}

func (b *IndexBuffer) Count() int {
	return b.count
}

func (b *IndexBuffer) SetIndices(src []uint16) {
	b.bind()
	if len(src) == 0 {
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, 0, nil, gl.STATIC_DRAW)
	} else {
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(src)*2, gl.Ptr(src), gl.STATIC_DRAW)
	}
	b.count = len(src)
}

// Geometry represents a piece of mesh that can be rendered in a single
// draw call. It may or may not contain an index buffer, but always has
// a vertex buffer.
type Geometry struct {
	vao     uint32
	indexed bool
	VertexBuffer
	IndexBuffer
}

// NewGeometry copies vertices from src as well as indices if IndexData
// is implemented and reports an index list, into newly allocated buffer
// objects. Tower shapes never change after upload, so buffers are
// allocated for static drawing.
func NewGeometry(src gfx.VertexData) (*Geometry, error) {
	srcidx, ok := src.(gfx.IndexData)
	indexed := ok && srcidx.Indexed()
	geom := allocGeom(indexed)
	geom.VertexBuffer.format = src.VertexFormat()
	if err := geom.CopyFrom(src); err != nil {
		geom.Release()
		return nil, err
	}
	return geom, nil
}

func allocGeom(indexed bool) *Geometry {
	geom := &Geometry{indexed: indexed}
	gl.GenVertexArrays(1, &geom.vao)
	if indexed {
		var bufs [2]uint32
		gl.GenBuffers(2, &bufs[0])
		geom.VertexBuffer.buf = bufs[0]
		geom.IndexBuffer.buf = bufs[1]
	} else {
		gl.GenBuffers(1, &geom.VertexBuffer.buf)
	}
	// buffers dropped without Release go back to the GL thread via the bin
	runtime.SetFinalizer(geom, func(g *Geometry) {
		trashbin.add(g.vao, g.VertexBuffer.buf, g.IndexBuffer.buf)
	})
	return geom
}

// CopyFrom copies vertices from src as well as indices if IndexData
// is implemented.
func (g *Geometry) CopyFrom(src gfx.VertexData) error {
	if src.VertexFormat() != g.VertexBuffer.format {
		return gfx.ErrBadVertexFormat
	}
	gl.BindVertexArray(g.vao)
	defer gl.BindVertexArray(0)
	if err := g.VertexBuffer.SetVertices(src.Interleave()); err != nil {
		return err
	}
	if srcidx, ok := src.(gfx.IndexData); ok && srcidx.Indexed() {
		if !g.indexed {
			return fmt.Errorf("%w: indices for unindexed geometry", gfx.ErrBadVertexFormat)
		}
		g.IndexBuffer.SetIndices(srcidx.Indices())
	}
	return nil
}

func (g *Geometry) Indexed() bool {
	return g.indexed
}

// Release deletes the GPU objects immediately.
func (g *Geometry) Release() {
	runtime.SetFinalizer(g, nil)
	gl.DeleteVertexArrays(1, &g.vao)
	gl.DeleteBuffers(1, &g.VertexBuffer.buf)
	if g.indexed {
		gl.DeleteBuffers(1, &g.IndexBuffer.buf)
	}
	g.vao, g.VertexBuffer.buf, g.IndexBuffer.buf = 0, 0, 0
}
