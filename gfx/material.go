package gfx

import "github.com/go-gl/mathgl/mgl32"

// Shader names a program the host has compiled. Materials refer to programs
// by name so that they stay plain values.
type Shader string

const (
	// PhongShader lights geometry carrying normals with a single point light.
	PhongShader Shader = "phong"
	// BasicShader passes per-vertex color through unlit.
	BasicShader Shader = "basic"
)

// Material is the per-draw shading input. It is a value; overrides return a
// new Material and never touch the receiver.
type Material struct {
	Shader      Shader
	Color       mgl32.Vec4
	Ambient     float32
	Diffusivity float32
}

// WithColor returns a copy of m with its color replaced.
func (m Material) WithColor(c mgl32.Vec4) Material {
	m.Color = c
	return m
}
