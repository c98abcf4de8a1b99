// Package sway computes the placement of each segment in a stack of boxes
// that leans back and forth over time.
//
// Each segment hinges on the top-left edge of the one below it. The chain is
// evaluated fresh every frame from a root transform; segment i+1 starts from
// segment i's output, shrunk back to unit height.
package sway

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// MaxAngle is the largest lean, in radians, between two adjacent segments.
const MaxAngle = 0.05 * math.Pi

// Period is the length in seconds of one full sway.
const Period = 2.0

// Seconds converts a host clock reading in milliseconds to seconds.
func Seconds(ms float64) float64 {
	return ms / 1000
}

// Angle returns the lean at time t seconds. Swaying, it follows
// a + a*sin(pi*t) with a = MaxAngle/2, ranging over [0, MaxAngle]. Held
// still, it is MaxAngle.
func Angle(t float64, still bool) float32 {
	if still {
		return MaxAngle
	}
	const a = MaxAngle / 2
	return float32(a + a*math.Sin(math.Pi*t))
}

var (
	stretch = mgl32.Scale3D(1, 1.5, 1)
	shrink  = mgl32.Scale3D(1, 2.0/3.0, 1)
	hinge   = mgl32.Translate3D(-1, 1.5, 0)
	unhinge = mgl32.Translate3D(1, 1, 0)
)

// Place returns the draw transform of segment i given the transform m handed
// down from the segment below. The base segment is only stretched; every
// other one is rotated about its hinge by theta first.
func Place(m mgl32.Mat4, i int, theta float32) mgl32.Mat4 {
	if i == 0 {
		return m.Mul4(stretch)
	}
	return m.Mul4(hinge).
		Mul4(mgl32.HomogRotate3DZ(theta)).
		Mul4(stretch).
		Mul4(unhinge)
}

// Next returns the transform handed to the segment above one drawn at placed.
func Next(placed mgl32.Mat4) mgl32.Mat4 {
	return placed.Mul4(shrink)
}

// Chain walks the segments of one frame in order.
type Chain struct {
	seed  mgl32.Mat4
	theta float32
	next  int
}

// NewChain starts a chain at root with every hinge bent by theta.
func NewChain(root mgl32.Mat4, theta float32) *Chain {
	return &Chain{seed: root, theta: theta}
}

// Step places the next segment and returns its draw transform along with
// its index.
func (c *Chain) Step() (int, mgl32.Mat4) {
	i := c.next
	placed := Place(c.seed, i, c.theta)
	c.seed = Next(placed)
	c.next++
	return i, placed
}

// Transforms returns the draw transforms of the first n segments.
func Transforms(root mgl32.Mat4, n int, theta float32) []mgl32.Mat4 {
	c := NewChain(root, theta)
	out := make([]mgl32.Mat4, n)
	for k := range out {
		_, out[k] = c.Step()
	}
	return out
}
