package sway

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertMat(t *testing.T, want, got mgl32.Mat4) {
	t.Helper()
	assert.True(t, want.ApproxEqualThreshold(got, 1e-5), "want %v\ngot  %v", want, got)
}

func TestAngleSwaying(t *testing.T) {
	assert.InDelta(t, MaxAngle/2, Angle(0, false), 1e-7)
	assert.InDelta(t, MaxAngle, Angle(0.5, false), 1e-7)
	assert.InDelta(t, MaxAngle/2, Angle(1, false), 1e-7)
	assert.InDelta(t, 0, Angle(1.5, false), 1e-7)
}

func TestAngleBounds(t *testing.T) {
	for ts := 0.0; ts < 10; ts += 0.013 {
		a := Angle(ts, false)
		assert.GreaterOrEqual(t, a, float32(0))
		assert.LessOrEqual(t, a, float32(MaxAngle)+1e-7)
	}
}

func TestAnglePeriodic(t *testing.T) {
	for _, ts := range []float64{0, 0.25, 0.7, 1.3, 5.9, 100.1} {
		assert.InDelta(t, Angle(ts, false), Angle(ts+Period, false), 1e-6, "t=%v", ts)
	}
}

func TestAngleStill(t *testing.T) {
	for _, ts := range []float64{0, 0.5, 1.5, 3, 1e6} {
		assert.Equal(t, float32(MaxAngle), Angle(ts, true), "t=%v", ts)
	}
}

func TestSeconds(t *testing.T) {
	assert.Equal(t, 1.5, Seconds(1500))
	assert.Equal(t, 0.0, Seconds(0))
}

func TestPlaceBase(t *testing.T) {
	root := mgl32.Translate3D(2, 3, 4)
	assertMat(t, root.Mul4(mgl32.Scale3D(1, 1.5, 1)), Place(root, 0, 1))
}

func TestPlaceSegment(t *testing.T) {
	theta := float32(0.1)
	root := mgl32.Scale3D(1, 1.5, 1)
	want := root.
		Mul4(mgl32.Translate3D(-1, 1.5, 0)).
		Mul4(mgl32.HomogRotate3DZ(theta)).
		Mul4(mgl32.Scale3D(1, 1.5, 1)).
		Mul4(mgl32.Translate3D(1, 1, 0))
	assertMat(t, want, Place(root, 3, theta))
}

func TestPlaceDoesNotMutate(t *testing.T) {
	root := mgl32.Ident4()
	Place(root, 1, 0.2)
	Next(root)
	assert.Equal(t, mgl32.Ident4(), root)
}

func TestChainSeedsShrink(t *testing.T) {
	theta := float32(MaxAngle)
	c := NewChain(mgl32.Ident4(), theta)
	_, prev := c.Step()
	for k := 1; k < 8; k++ {
		i, placed := c.Step()
		require.Equal(t, k, i)
		seed := prev.Mul4(mgl32.Scale3D(1, 2.0/3.0, 1))
		assertMat(t, Place(seed, k, theta), placed)
		prev = placed
	}
}

func TestChainIsSequential(t *testing.T) {
	theta := Angle(0.3, false)
	got := Transforms(mgl32.Ident4(), 8, theta)
	require.Len(t, got, 8)

	m := mgl32.Ident4()
	for i := range got {
		placed := Place(m, i, theta)
		assertMat(t, placed, got[i])
		m = Next(placed)
	}
}

// Segment 1 at rest: the base stretch followed by the hinge with no
// rotation.
func TestSegmentOneWithoutLean(t *testing.T) {
	got := Transforms(mgl32.Ident4(), 2, 0)[1]
	want := mgl32.Scale3D(1, 1.5, 1).
		Mul4(mgl32.Scale3D(1, 2.0/3.0, 1)).
		Mul4(mgl32.Translate3D(-1, 1.5, 0)).
		Mul4(mgl32.HomogRotate3DZ(0)).
		Mul4(mgl32.Scale3D(1, 1.5, 1)).
		Mul4(mgl32.Translate3D(1, 1, 0))
	assertMat(t, want, got)

	// without lean the second box sits straight on top of the first
	origin := got.Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	assert.InDelta(t, 0, origin[0], 1e-5)
	assert.InDelta(t, 3, origin[1], 1e-5)
}

func TestTowerStaysBounded(t *testing.T) {
	got := Transforms(mgl32.Ident4(), 64, float32(MaxAngle))
	for i, m := range got {
		top := m.Mul4x1(mgl32.Vec4{0, 1, 0, 1})
		assert.False(t, math.IsNaN(float64(top[1])), "segment %d", i)
		assert.Less(t, math.Abs(float64(top[0])), 1e3, "segment %d", i)
	}
}
