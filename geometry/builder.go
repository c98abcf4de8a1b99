package geometry

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"j4k.co/tower/gfx"
)

var ErrBadGeometry = errors.New("geometry: bad geometry")

type Builder struct {
	VertexBuilder
	IndexBuilder
}

func NewBuilder(vf gfx.VertexFormat) *Builder {
	return &Builder{
		VertexBuilder: *NewVertexBuilder(vf),
	}
}

func (b *Builder) Clear() {
	b.VertexBuilder.Clear()
	b.IndexBuilder.Clear()
}

// Build validates the accumulated vertices and indices against prim and
// returns them as an immutable Mesh. Inconsistent data is a construction
// defect and panics.
func (b *Builder) Build(prim gfx.Primitive) *Mesh {
	m := &Mesh{
		format:    b.vf,
		prim:      prim,
		positions: append([]mgl32.Vec3(nil), b.positions...),
		indexed:   b.indexed,
	}
	if b.vf&gfx.VertexNormal != 0 {
		m.normals = append([]mgl32.Vec3(nil), b.normals...)
	}
	if b.vf&gfx.VertexColor != 0 {
		m.colors = append([]mgl32.Vec4(nil), b.colors...)
	}
	if b.indexed {
		m.indices = append([]uint16(nil), b.idxs...)
	}
	if err := m.validate(); err != nil {
		panic(err)
	}
	return m
}

// VertexBuilder accumulates per-attribute vertex arrays. Attributes not set
// on a vertex carry over from the vertex before it, so a face normal only
// needs to be given on the first vertex of the face.
type VertexBuilder struct {
	vf        gfx.VertexFormat
	positions []mgl32.Vec3
	normals   []mgl32.Vec3
	colors    []mgl32.Vec4
}

func NewVertexBuilder(vf gfx.VertexFormat) *VertexBuilder {
	if vf&gfx.VertexPosition == 0 {
		panic(gfx.ErrBadVertexFormat)
	}
	return &VertexBuilder{vf: vf}
}

// Clear resets buffers to zero length.
func (b *VertexBuilder) Clear() {
	b.positions = b.positions[:0]
	b.normals = b.normals[:0]
	b.colors = b.colors[:0]
}

func (b *VertexBuilder) check(v gfx.VertexFormat) int {
	if b.vf&v == 0 {
		panic(gfx.ErrBadVertexFormat)
	}
	n := len(b.positions)
	if n == 0 {
		panic(fmt.Errorf("%w: %s set before any position", ErrBadGeometry, v))
	}
	return n - 1
}

// Position creates a new vertex and sets the vertex position.
func (b *VertexBuilder) Position(x, y, z float32) *VertexBuilder {
	if b.vf&gfx.VertexNormal != 0 {
		var n mgl32.Vec3
		if len(b.normals) > 0 {
			n = b.normals[len(b.normals)-1]
		}
		b.normals = append(b.normals, n)
	}
	if b.vf&gfx.VertexColor != 0 {
		var c mgl32.Vec4
		if len(b.colors) > 0 {
			c = b.colors[len(b.colors)-1]
		}
		b.colors = append(b.colors, c)
	}
	b.positions = append(b.positions, mgl32.Vec3{x, y, z})
	return b
}

// Normal sets the vertex normal.
func (b *VertexBuilder) Normal(x, y, z float32) *VertexBuilder {
	i := b.check(gfx.VertexNormal)
	b.normals[i] = mgl32.Vec3{x, y, z}
	return b
}

// Color sets the vertex color. Channels are in [0,1].
func (b *VertexBuilder) Color(red, green, blue, alpha float32) *VertexBuilder {
	i := b.check(gfx.VertexColor)
	b.colors[i] = mgl32.Vec4{red, green, blue, alpha}
	return b
}

// VertexCount returns the number of vertices available.
func (b *VertexBuilder) VertexCount() int {
	return len(b.positions)
}

func (b *VertexBuilder) VertexFormat() gfx.VertexFormat {
	return b.vf
}

type IndexBuilder struct {
	idxs    []uint16
	nextidx uint16
	indexed bool
}

// Indices appends new indices to the buffer that are relative to the maximum
// index in the buffer.
func (b *IndexBuilder) Indices(idxs ...uint16) *IndexBuilder {
	b.indexed = true
	newnext := b.nextidx
	for _, idx := range idxs {
		idx += b.nextidx
		if idx >= newnext {
			newnext = idx + 1
		}
		b.idxs = append(b.idxs, idx)
	}
	b.nextidx = newnext
	return b
}

// SetIndices copies idxs into a new buffer.
func (b *IndexBuilder) SetIndices(idxs ...uint16) {
	b.indexed = true
	b.nextidx = 0
	b.idxs = make([]uint16, len(idxs))
	copy(b.idxs, idxs)
	for _, idx := range idxs {
		if idx >= b.nextidx {
			b.nextidx = idx + 1
		}
	}
}

// NoIndices marks the index list absent: buffer order alone defines the
// primitives.
func (b *IndexBuilder) NoIndices() {
	b.indexed = false
	b.idxs = b.idxs[:0]
	b.nextidx = 0
}

// IndexCount returns the number of indices available.
func (b *IndexBuilder) IndexCount() int {
	return len(b.idxs)
}

// Clear resets buffers to zero length.
func (b *IndexBuilder) Clear() {
	b.idxs = b.idxs[:0]
	b.nextidx = 0
	b.indexed = false
}
