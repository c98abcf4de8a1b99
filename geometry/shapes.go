package geometry

import (
	"j4k.co/tower/gfx"
)

// Cube builds a closed 2x2x2 cube centered on the origin. Faces share no
// vertices so each carries its own outward normal: 24 vertices, 36 indices.
func Cube() *Mesh {
	b := NewBuilder(gfx.VertexPosition | gfx.VertexNormal)
	// bottom
	b.Position(-1, -1, -1).Normal(0, -1, 0)
	b.Position(1, -1, -1)
	b.Position(-1, -1, 1)
	b.Position(1, -1, 1)
	b.Indices(0, 1, 2, 1, 3, 2)
	// top
	b.Position(1, 1, -1).Normal(0, 1, 0)
	b.Position(-1, 1, -1)
	b.Position(1, 1, 1)
	b.Position(-1, 1, 1)
	b.Indices(0, 1, 2, 1, 3, 2)
	// left
	b.Position(-1, -1, -1).Normal(-1, 0, 0)
	b.Position(-1, -1, 1)
	b.Position(-1, 1, -1)
	b.Position(-1, 1, 1)
	b.Indices(0, 1, 2, 1, 3, 2)
	// right
	b.Position(1, -1, 1).Normal(1, 0, 0)
	b.Position(1, -1, -1)
	b.Position(1, 1, 1)
	b.Position(1, 1, -1)
	b.Indices(0, 1, 2, 1, 3, 2)
	// front
	b.Position(-1, -1, 1).Normal(0, 0, 1)
	b.Position(1, -1, 1)
	b.Position(-1, 1, 1)
	b.Position(1, 1, 1)
	b.Indices(0, 1, 2, 1, 3, 2)
	// back
	b.Position(1, -1, -1).Normal(0, 0, -1)
	b.Position(-1, -1, -1)
	b.Position(1, 1, -1)
	b.Position(-1, 1, -1)
	b.Indices(0, 1, 2, 1, 3, 2)
	return b.Build(gfx.Triangles)
}

// cubeEdges lists the 12 edges of the cube as vertex pairs: four around the
// front face, four around the back, and the four joining them.
var cubeEdges = [...][3]float32{
	// front
	{1, 1, 1}, {-1, 1, 1},
	{1, 1, 1}, {1, -1, 1},
	{-1, 1, 1}, {-1, -1, 1},
	{-1, -1, 1}, {1, -1, 1},
	// back
	{-1, -1, -1}, {1, -1, -1},
	{-1, -1, -1}, {-1, 1, -1},
	{1, 1, -1}, {1, -1, -1},
	{1, 1, -1}, {-1, 1, -1},
	// right connectors
	{1, 1, -1}, {1, 1, 1},
	{1, -1, -1}, {1, -1, 1},
	// left connectors
	{-1, 1, -1}, {-1, 1, 1},
	{-1, -1, -1}, {-1, -1, 1},
}

// CubeOutline builds the cube's 12 edges as an unindexed line list with an
// opaque white color on every vertex.
func CubeOutline() *Mesh {
	b := NewBuilder(gfx.VertexPosition | gfx.VertexColor)
	for i, p := range cubeEdges {
		v := b.Position(p[0], p[1], p[2])
		if i == 0 {
			v.Color(1, 1, 1, 1)
		}
	}
	b.NoIndices()
	return b.Build(gfx.Lines)
}

// cubeStrip visits front, bottom, back and top in one strip, then covers the
// right and left faces with two short strips joined through degenerate
// triangles.
var cubeStrip = [...][3]float32{
	// front, bottom, back, top
	{-1, 1, 1}, {1, 1, 1}, {-1, -1, 1},
	{1, -1, 1},
	{-1, -1, -1},
	{1, -1, -1},
	{-1, 1, -1},
	{1, 1, -1},
	{-1, 1, 1},
	{1, 1, 1},
	// right
	{1, 1, 1}, {1, 1, -1}, {1, -1, 1},
	{1, -1, -1},
	// left
	{1, -1, -1}, {-1, -1, -1}, {-1, -1, 1},
	{-1, 1, -1},
	{-1, 1, 1},
}

// CubeStrip builds the cube as a single unindexed triangle strip.
//
// Each vertex normal is its own position vector rather than a face or
// averaged normal. Lighting on this shape depends on that, so it is kept.
func CubeStrip() *Mesh {
	b := NewBuilder(gfx.VertexPosition | gfx.VertexNormal)
	for _, p := range cubeStrip {
		b.Position(p[0], p[1], p[2]).Normal(p[0], p[1], p[2])
	}
	b.NoIndices()
	return b.Build(gfx.TriangleStrip)
}
