package scenes

import (
	"github.com/go-gl/mathgl/mgl32"
	"j4k.co/tower/config"
	"j4k.co/tower/geometry"
	"j4k.co/tower/gfx"
	"j4k.co/tower/sway"
)

// Segments is the number of boxes in the tower.
const Segments = 8

// Tower composes the swaying stack of boxes. Even segments are solid cubes,
// odd ones triangle-strip cubes, each filled from the palette; in outline
// mode all of them are white wireframes.
type Tower struct {
	meshes  [numShapes]Mesh
	plastic gfx.Material
	white   gfx.Material
	palette *Palette
	keys    config.Keys
}

// NewTower builds the shapes and materials described by cfg. A nil palette
// gets a freshly seeded one.
func NewTower(cfg config.Scene, pal *Palette) *Tower {
	if pal == nil {
		pal = NewPalette(nil)
	}
	t := &Tower{
		plastic: gfx.Material{
			Shader:      gfx.PhongShader,
			Color:       config.Color(cfg.Material.Color),
			Ambient:     cfg.Material.Ambient,
			Diffusivity: cfg.Material.Diffusivity,
		},
		white: gfx.Material{
			Shader: gfx.BasicShader,
			Color:  mgl32.Vec4{1, 1, 1, 1},
		},
		palette: pal,
		keys:    cfg.Keys,
	}
	t.meshes[ShapeCube] = Mesh{ID: ShapeCube, Shape: geometry.Cube(), Material: t.plastic}
	t.meshes[ShapeOutline] = Mesh{ID: ShapeOutline, Shape: geometry.CubeOutline(), Material: t.white}
	t.meshes[ShapeStrip] = Mesh{ID: ShapeStrip, Shape: geometry.CubeStrip(), Material: t.plastic}
	return t
}

// Meshes returns the shapes the host must register before the first frame.
func (t *Tower) Meshes() []Mesh {
	return append([]Mesh(nil), t.meshes[:]...)
}

func (t *Tower) Palette() *Palette {
	return t.palette
}

// ChangeColors regenerates the palette.
func (t *Tower) ChangeColors() {
	t.palette.Regenerate()
}

// Render draws one frame at host clock ms (milliseconds of animation time).
func (t *Tower) Render(r Renderer, st *State, ms float64) {
	theta := sway.Angle(sway.Seconds(ms), st.Still)
	chain := sway.NewChain(mgl32.Ident4(), theta)
	for range Segments {
		i, model := chain.Step()
		t.drawBox(r, st, i, model)
	}
}

func (t *Tower) drawBox(r Renderer, st *State, i int, model mgl32.Mat4) {
	if st.Outline {
		t.draw(r, ShapeOutline, i, model, t.white)
		return
	}
	mat := t.plastic.WithColor(t.palette.Color(i))
	if i%2 == 1 {
		t.draw(r, ShapeStrip, i, model, mat)
	} else {
		t.draw(r, ShapeCube, i, model, mat)
	}
}

func (t *Tower) draw(r Renderer, id ShapeID, i int, model mgl32.Mat4, mat gfx.Material) {
	r.Draw(DrawCall{
		Shape:     id,
		Segment:   i,
		Model:     model,
		Material:  mat,
		Primitive: t.meshes[id].Shape.Primitive(),
	})
}

// Binding ties a key to a scene action.
type Binding struct {
	Name   string
	Key    string
	Action func()
}

// Bindings returns the input actions for st, keyed as configured.
func (t *Tower) Bindings(st *State) []Binding {
	return []Binding{
		{Name: "Change Colors", Key: t.keys.Colors, Action: t.ChangeColors},
		{Name: "Outline", Key: t.keys.Outline, Action: st.ToggleOutline},
		{Name: "Sit still", Key: t.keys.Still, Action: st.ToggleStill},
	}
}
