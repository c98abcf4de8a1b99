package geometry

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"j4k.co/tower/gfx"
)

func TestCube(t *testing.T) {
	cube := Cube()
	assert.Equal(t, gfx.Triangles, cube.Primitive())
	assert.Equal(t, 24, cube.VertexCount())
	assert.Len(t, cube.Normals(), 24)
	assert.True(t, cube.Indexed())
	assert.Equal(t, 36, cube.IndexCount())
	assert.Equal(t, 12, cube.Triangles())

	idx := cube.Indices()
	for i := 0; i < len(idx); i += 3 {
		a, b, c := idx[i], idx[i+1], idx[i+2]
		assert.NotEqual(t, a, b)
		assert.NotEqual(t, b, c)
		assert.NotEqual(t, a, c)
		for _, v := range []uint16{a, b, c} {
			assert.Less(t, int(v), cube.VertexCount())
		}
	}
}

func TestCubeFaceNormals(t *testing.T) {
	cube := Cube()
	normals := cube.Normals()
	seen := map[mgl32.Vec3]bool{}
	for face := 0; face < 6; face++ {
		n := normals[face*4]
		for v := 1; v < 4; v++ {
			assert.Equal(t, n, normals[face*4+v], "face %d vertex %d", face, v)
		}
		assert.InDelta(t, 1, n.Len(), 1e-6)
		seen[n] = true
	}
	assert.Len(t, seen, 6)
}

func TestCubeWindingOutward(t *testing.T) {
	cube := Cube()
	pos := cube.Positions()
	normals := cube.Normals()
	idx := cube.Indices()
	for i := 0; i < len(idx); i += 3 {
		a, b, c := pos[idx[i]], pos[idx[i+1]], pos[idx[i+2]]
		geom := b.Sub(a).Cross(c.Sub(a))
		assert.Greater(t, geom.Dot(normals[idx[i]]), float32(0), "triangle %d", i/3)
		// the face normal also points away from the cube center
		assert.Greater(t, geom.Dot(a), float32(0), "triangle %d", i/3)
	}
}

func TestCubeOutline(t *testing.T) {
	outline := CubeOutline()
	assert.Equal(t, gfx.Lines, outline.Primitive())
	assert.Equal(t, 24, outline.VertexCount())
	assert.Equal(t, 0, outline.VertexCount()%2)
	assert.Len(t, outline.Colors(), 24)
	assert.False(t, outline.Indexed())
	assert.Nil(t, outline.Indices())
	assert.Equal(t, 12, outline.Segments())

	for i, c := range outline.Colors() {
		assert.Equal(t, mgl32.Vec4{1, 1, 1, 1}, c, "vertex %d", i)
	}
}

func TestCubeOutlineEdges(t *testing.T) {
	pos := CubeOutline().Positions()
	type edge struct{ a, b mgl32.Vec3 }
	edges := map[edge]bool{}
	for i := 0; i < len(pos); i += 2 {
		a, b := pos[i], pos[i+1]
		// every segment is a unit-cube edge: endpoints differ on one axis by 2
		assert.InDelta(t, 2, b.Sub(a).Len(), 1e-6, "segment %d", i/2)
		if a[0]+a[1]+a[2] > b[0]+b[1]+b[2] {
			a, b = b, a
		}
		edges[edge{a, b}] = true
	}
	assert.Len(t, edges, 12)
}

func TestCubeStrip(t *testing.T) {
	strip := CubeStrip()
	assert.Equal(t, gfx.TriangleStrip, strip.Primitive())
	assert.Equal(t, len(cubeStrip), strip.VertexCount())
	assert.Equal(t, 19, strip.VertexCount())
	assert.False(t, strip.Indexed())
	assert.Nil(t, strip.Indices())

	// normals are the positions themselves, not face normals
	assert.Equal(t, strip.Positions(), strip.Normals())
}

func TestCubeStripCoversEveryFace(t *testing.T) {
	pos := CubeStrip().Positions()
	faces := map[mgl32.Vec3]int{}
	for i := 2; i < len(pos); i++ {
		a, b, c := pos[i-2], pos[i-1], pos[i]
		if b.Sub(a).Cross(c.Sub(a)).Len() == 0 {
			continue
		}
		// a non-degenerate triangle lies on the face whose axis all three
		// vertices share
		for axis := 0; axis < 3; axis++ {
			if a[axis] == b[axis] && b[axis] == c[axis] {
				var n mgl32.Vec3
				n[axis] = a[axis]
				faces[n]++
			}
		}
	}
	require.Len(t, faces, 6)
	for n, count := range faces {
		assert.GreaterOrEqual(t, count, 2, "face %v", n)
	}
}
