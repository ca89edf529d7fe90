package ticker

// ScrollState owns the ticker's one piece of frame-to-frame mutable state:
// the scroll offset. It is rebuilt from scratch whenever the composed strip
// changes, so it can never reference stale widths.
type ScrollState struct {
	Offset       int
	StripWidth   int
	DisplayWidth int
	Step         int
}

// NewScrollState returns a fresh state at offset zero.
func NewScrollState(stripWidth, displayWidth, step int) ScrollState {
	if step < 1 {
		step = 1
	}
	return ScrollState{StripWidth: stripWidth, DisplayWidth: displayWidth, Step: step}
}

// LoopWidth is the scroll modulus. Subtracting the display width makes the
// cycle restart exactly one screen early, so the viewer never re-reads a
// full screen of leading content before the loop wraps. Floors at zero when
// the strip fits on screen.
func (s ScrollState) LoopWidth() int {
	if w := s.StripWidth - s.DisplayWidth; w > 0 {
		return w
	}
	return 0
}

// Advance moves the offset by one step, wrapping over the loop width. A zero
// loop width pins the offset at zero (content fits on screen).
func (s *ScrollState) Advance() {
	loop := s.LoopWidth()
	if loop == 0 {
		s.Offset = 0
		return
	}
	s.Offset = (s.Offset + s.Step) % loop
}
