package rosette

// State is the per-run animation state. The host mutates it once per frame
// and passes Snapshot to the generator; the generator never writes to it.
type State struct {
	Frame  int
	Params Params
	// DStep is added to Params.D on every Advance.
	DStep float64

	presented      bool
	presentedFrame int
}

func NewState(p Params, dStep float64) *State {
	return &State{Params: p, DStep: dStep}
}

// Advance moves to the next frame.
func (s *State) Advance() {
	s.AdvanceScaled(1)
}

// AdvanceScaled moves to the next frame, growing D by DStep*scale.
func (s *State) AdvanceScaled(scale float64) {
	s.Frame++
	s.Params.D += s.DStep * scale
}

func (s *State) Snapshot() Params {
	return s.Params
}

// Present reports whether the current frame still has to be drawn and marks
// it as drawn. Renderers that draw more often than the state advances use it
// to draw every frame exactly once.
func (s *State) Present() bool {
	if s.presented && s.presentedFrame == s.Frame {
		return false
	}
	s.presented = true
	s.presentedFrame = s.Frame
	return true
}
