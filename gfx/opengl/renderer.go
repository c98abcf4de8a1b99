package opengl

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"j4k.co/tower/gfx"
	"j4k.co/tower/scenes"
)

// Light is a single point (w=1) or directional (w=0) light.
type Light struct {
	Position    mgl32.Vec4
	Color       mgl32.Vec4
	Attenuation float32
}

type uniforms struct {
	ModelM               mgl32.Mat4 `uniform:"ModelM"`
	ViewM                mgl32.Mat4 `uniform:"ViewM"`
	ProjectionM          mgl32.Mat4 `uniform:"ProjectionM"`
	ModelViewProjectionM mgl32.Mat4 `uniform:"ModelViewProjectionM"`
	NormalM              mgl32.Mat3 `uniform:"NormalM"`
	CameraPosition       mgl32.Vec3 `uniform:"CameraPosition"`

	Color       mgl32.Vec4 `uniform:"Color"`
	Ambient     float32    `uniform:"Ambient"`
	Diffusivity float32    `uniform:"Diffusivity"`

	LightPosition    mgl32.Vec4 `uniform:"LightPosition"`
	LightColor       mgl32.Vec4 `uniform:"LightColor"`
	LightAttenuation float32    `uniform:"LightAttenuation"`
}

// Renderer draws scene draw calls with registered shaders and geometry.
type Renderer struct {
	shaders map[gfx.Shader]*Shader
	geoms   map[scenes.ShapeID]*Geometry
	proj    mgl32.Mat4
	view    mgl32.Mat4
	light   Light
	warned  map[scenes.ShapeID]bool
}

var _ scenes.Renderer = (*Renderer)(nil)

func NewRenderer() *Renderer {
	return &Renderer{
		shaders: make(map[gfx.Shader]*Shader),
		geoms:   make(map[scenes.ShapeID]*Geometry),
		proj:    mgl32.Ident4(),
		view:    mgl32.Ident4(),
		warned:  make(map[scenes.ShapeID]bool),
	}
}

func (r *Renderer) AddShader(name gfx.Shader, s *Shader) {
	r.shaders[name] = s
}

// Register uploads a mesh once. Its default material decides which shader
// must be able to read its vertices.
func (r *Renderer) Register(m scenes.Mesh) error {
	sh, ok := r.shaders[m.Material.Shader]
	if !ok {
		return fmt.Errorf("opengl: register %s: no shader %q", m.ID, m.Material.Shader)
	}
	if !m.Shape.VertexFormat().Has(sh.Format()) {
		return fmt.Errorf("opengl: register %s: %w: shader %q wants %s, shape has %s",
			m.ID, gfx.ErrBadVertexFormat, m.Material.Shader, sh.Format(), m.Shape.VertexFormat())
	}
	geom, err := NewGeometry(m.Shape)
	if err != nil {
		return fmt.Errorf("opengl: register %s: %w", m.ID, err)
	}
	if old, ok := r.geoms[m.ID]; ok {
		old.Release()
	}
	r.geoms[m.ID] = geom
	gfx.Logger().Debug("registered mesh",
		"shape", m.ID.String(),
		"vertices", m.Shape.VertexCount(),
		"indices", m.Shape.IndexCount(),
		"indexed", m.Shape.Indexed(),
		"triangles", m.Shape.Triangles(),
		"segments", m.Shape.Segments(),
		"primitive", m.Shape.Primitive().String())
	return nil
}

func (r *Renderer) SetCamera(proj, view mgl32.Mat4) {
	r.proj = proj
	r.view = view
}

func (r *Renderer) SetLight(l Light) {
	r.light = l
}

// Draw issues one draw call. Calls naming an unregistered shape or shader
// are dropped with a single warning per shape.
func (r *Renderer) Draw(call scenes.DrawCall) {
	geom, ok := r.geoms[call.Shape]
	sh, shok := r.shaders[call.Material.Shader]
	if !ok || !shok {
		if !r.warned[call.Shape] {
			r.warned[call.Shape] = true
			gfx.Logger().Warn("dropping draw", "shape", call.Shape.String(), "shader", string(call.Material.Shader))
		}
		return
	}

	u := uniforms{
		ModelM:               call.Model,
		ViewM:                r.view,
		ProjectionM:          r.proj,
		ModelViewProjectionM: r.proj.Mul4(r.view).Mul4(call.Model),
		NormalM:              call.Model.Mat3().Inv().Transpose(),
		CameraPosition:       r.view.Inv().Col(3).Vec3(),
		Color:                call.Material.Color,
		Ambient:              call.Material.Ambient,
		Diffusivity:          call.Material.Diffusivity,
		LightPosition:        r.light.Position,
		LightColor:           r.light.Color,
		LightAttenuation:     r.light.Attenuation,
	}
	sh.Use()
	sh.SetUniforms(&u)
	if err := sh.SetGeometry(geom); err != nil {
		if !r.warned[call.Shape] {
			r.warned[call.Shape] = true
			gfx.Logger().Warn("dropping draw", "shape", call.Shape.String(), "err", err)
		}
		return
	}
	sh.Draw(call.Primitive)
}

// Release frees every registered geometry and shader.
func (r *Renderer) Release() {
	for id, g := range r.geoms {
		g.Release()
		delete(r.geoms, id)
	}
	for name, s := range r.shaders {
		s.Release()
		delete(r.shaders, name)
	}
}
