// Package config loads the tower scene settings from TOML.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/pelletier/go-toml/v2"
)

var ErrInvalid = errors.New("config: invalid")

type Window struct {
	Title  string `toml:"title"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
}

type Camera struct {
	// Eye is the view translation applied to the world.
	Eye  [3]float32 `toml:"eye"`
	Fov  float32    `toml:"fov"` // degrees
	Near float32    `toml:"near"`
	Far  float32    `toml:"far"`
}

type Light struct {
	Position [4]float32 `toml:"position"`
	Color    string     `toml:"color"`
	Size     float32    `toml:"size"`
}

type Material struct {
	Color       string  `toml:"color"`
	Ambient     float32 `toml:"ambient"`
	Diffusivity float32 `toml:"diffusivity"`
	Background  string  `toml:"background"`
}

// Keys binds the scene actions to single keys.
type Keys struct {
	Colors  string `toml:"colors"`
	Outline string `toml:"outline"`
	Still   string `toml:"still"`
}

type Scene struct {
	Window   Window   `toml:"window"`
	Camera   Camera   `toml:"camera"`
	Light    Light    `toml:"light"`
	Material Material `toml:"material"`
	Keys     Keys     `toml:"keys"`
}

func Default() Scene {
	return Scene{
		Window: Window{Title: "Tower", Width: 1080, Height: 600},
		Camera: Camera{
			Eye:  [3]float32{5, -10, -30},
			Fov:  45,
			Near: 1,
			Far:  100,
		},
		Light: Light{
			Position: [4]float32{0, 5, 5, 1},
			Color:    "#ffffff",
			Size:     1000,
		},
		Material: Material{
			Color:       "#ffffff",
			Ambient:     .4,
			Diffusivity: .6,
			Background:  "#000000",
		},
		Keys: Keys{Colors: "c", Outline: "o", Still: "m"},
	}
}

// Load reads path over the defaults. A missing file yields the defaults and
// an error wrapping fs.ErrNotExist so the caller can decide how loud to be.
func Load(path string) (Scene, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), err
	}
	if err != nil {
		return Scene{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	sc, err := Parse(data)
	if err != nil {
		return Scene{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return sc, nil
}

// Parse decodes TOML over the defaults and validates the result.
func Parse(data []byte) (Scene, error) {
	sc := Default()
	if err := toml.Unmarshal(data, &sc); err != nil {
		return Scene{}, err
	}
	if err := sc.Validate(); err != nil {
		return Scene{}, err
	}
	return sc, nil
}

func (sc Scene) Validate() error {
	if sc.Window.Width <= 0 || sc.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, sc.Window.Width, sc.Window.Height)
	}
	if sc.Camera.Fov <= 0 || sc.Camera.Fov >= 180 {
		return fmt.Errorf("%w: fov %v", ErrInvalid, sc.Camera.Fov)
	}
	if sc.Camera.Near <= 0 || sc.Camera.Near >= sc.Camera.Far {
		return fmt.Errorf("%w: clip planes %v..%v", ErrInvalid, sc.Camera.Near, sc.Camera.Far)
	}
	for _, hex := range []string{sc.Light.Color, sc.Material.Color, sc.Material.Background} {
		if _, err := colorful.Hex(hex); err != nil {
			return fmt.Errorf("%w: color %q", ErrInvalid, hex)
		}
	}
	seen := map[string]string{}
	for _, b := range []struct{ action, key string }{
		{"colors", sc.Keys.Colors},
		{"outline", sc.Keys.Outline},
		{"still", sc.Keys.Still},
	} {
		key, ok := KeyName(b.key)
		if !ok {
			return fmt.Errorf("%w: key %q for %s", ErrInvalid, b.key, b.action)
		}
		if other, ok := seen[key]; ok {
			return fmt.Errorf("%w: key %q bound to both %s and %s", ErrInvalid, key, other, b.action)
		}
		seen[key] = b.action
	}
	return nil
}

// KeyName returns the canonical form of a key binding: a single lower-case
// letter, digit or space. Anything else cannot be bound.
func KeyName(s string) (string, bool) {
	if len(s) != 1 {
		return "", false
	}
	c := s[0]
	if c >= 'A' && c <= 'Z' {
		c += 'a' - 'A'
	}
	switch {
	case c >= 'a' && c <= 'z', c >= '0' && c <= '9', c == ' ':
		return string(c), true
	}
	return "", false
}

// Color parses a hex color into RGBA with opaque alpha. Invalid input gives
// opaque black; Validate rejects it up front.
func Color(hex string) mgl32.Vec4 {
	c, err := colorful.Hex(hex)
	if err != nil {
		return mgl32.Vec4{0, 0, 0, 1}
	}
	return mgl32.Vec4{float32(c.R), float32(c.G), float32(c.B), 1}
}

// Projection returns the perspective projection for the given viewport.
func (c Camera) Projection(width, height int) mgl32.Mat4 {
	aspect := float32(1)
	if height > 0 {
		aspect = float32(width) / float32(height)
	}
	return mgl32.Perspective(mgl32.DegToRad(c.Fov), aspect, c.Near, c.Far)
}

// View returns the camera transform.
func (c Camera) View() mgl32.Mat4 {
	return mgl32.Translate3D(c.Eye[0], c.Eye[1], c.Eye[2])
}

// Attenuation returns the light falloff factor: the inverse of its size.
func (l Light) Attenuation() float32 {
	if l.Size <= 0 {
		return 0
	}
	return 1 / l.Size
}
