package scenes

import (
	"github.com/go-gl/mathgl/mgl32"
	"j4k.co/tower/geometry"
	"j4k.co/tower/gfx"
)

type ShapeID uint8

const (
	ShapeCube ShapeID = iota
	ShapeOutline
	ShapeStrip
	numShapes
)

func (id ShapeID) String() string {
	switch id {
	case ShapeCube:
		return "cube"
	case ShapeOutline:
		return "outline"
	case ShapeStrip:
		return "triangle_strip"
	default:
		return "unknown"
	}
}

// Mesh pairs a shape with the material it is drawn with by default. Hosts
// upload each Mesh once at initialization.
type Mesh struct {
	ID       ShapeID
	Shape    geometry.Shape
	Material gfx.Material
}

// DrawCall is one draw issued to the host: a registered shape at a model
// transform with a per-call material.
type DrawCall struct {
	Shape     ShapeID
	Segment   int
	Model     mgl32.Mat4
	Material  gfx.Material
	Primitive gfx.Primitive
}

// Renderer is the host side of the scene. Draw must not retain call past
// the return.
type Renderer interface {
	Draw(call DrawCall)
}

// Recorder is a Renderer that keeps every call it receives.
type Recorder struct {
	calls []DrawCall
}

func (r *Recorder) Draw(call DrawCall) {
	r.calls = append(r.calls, call)
}

func (r *Recorder) Calls() []DrawCall {
	return r.calls
}

func (r *Recorder) Reset() {
	r.calls = r.calls[:0]
}
