package scenes

import "j4k.co/tower/gfx"

// State is the animation state toggled by input between frames.
type State struct {
	// Still holds the lean at its maximum instead of swaying.
	Still bool
	// Outline draws every segment as a white wireframe.
	Outline bool
}

func (s *State) ToggleStill() {
	s.Still = !s.Still
	gfx.Logger().Debug("toggle still", "still", s.Still)
}

func (s *State) ToggleOutline() {
	s.Outline = !s.Outline
	gfx.Logger().Debug("toggle outline", "outline", s.Outline)
}
