package scenes

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	colorful "github.com/lucasb-eyer/go-colorful"
	"j4k.co/tower/gfx"
)

// PaletteSize is the number of colors in a palette, one per segment.
const PaletteSize = Segments

// Palette holds one fill color per segment. Every entry is opaque.
type Palette struct {
	rng    *rand.Rand
	colors [PaletteSize]colorful.Color
}

// NewPalette returns a palette filled from rng. A nil rng uses a
// time-seeded source.
func NewPalette(rng *rand.Rand) *Palette {
	if rng == nil {
		seed := uint64(time.Now().UnixNano())
		rng = rand.New(rand.NewPCG(seed, seed>>32|1))
	}
	p := &Palette{rng: rng}
	p.Regenerate()
	return p
}

// Regenerate replaces every entry with an independently sampled color.
func (p *Palette) Regenerate() {
	for i := range p.colors {
		p.colors[i] = colorful.Color{R: p.rng.Float64(), G: p.rng.Float64(), B: p.rng.Float64()}
	}
	if l := gfx.Logger(); l.Enabled(context.Background(), slog.LevelDebug) {
		hex := make([]string, len(p.colors))
		for i := range p.colors {
			hex[i] = p.Hex(i)
		}
		l.Debug("palette regenerated", "colors", hex)
	}
}

func (p *Palette) Len() int {
	return len(p.colors)
}

// Color returns entry i as RGBA with alpha 1.
func (p *Palette) Color(i int) mgl32.Vec4 {
	c := p.colors[i]
	return mgl32.Vec4{float32(c.R), float32(c.G), float32(c.B), 1}
}

func (p *Palette) Hex(i int) string {
	return p.colors[i].Hex()
}
