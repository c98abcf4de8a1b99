package gfx

// Primitive is the topology used to assemble vertices when drawing.
type Primitive uint8

const (
	// Triangles consumes vertices (or indices) three at a time.
	Triangles Primitive = iota
	// Lines consumes vertices two at a time, one segment per pair.
	Lines
	// TriangleStrip forms a triangle from every vertex and the two before it.
	TriangleStrip
)

func (p Primitive) String() string {
	switch p {
	case Triangles:
		return "triangles"
	case Lines:
		return "lines"
	case TriangleStrip:
		return "triangle-strip"
	default:
		return "unknown"
	}
}
