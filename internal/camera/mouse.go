package camera

// MouseTracker turns absolute cursor positions into per-event offsets.
type MouseTracker struct {
	lastX, lastY float64
	primed       bool
}

// Offset returns the movement since the previous position. The first call
// only records the position and returns zero. y is flipped so moving the
// cursor up gives a positive offset.
func (m *MouseTracker) Offset(x, y float64) (float32, float32) {
	if !m.primed {
		m.lastX, m.lastY = x, y
		m.primed = true
	}
	dx := float32(x - m.lastX)
	dy := float32(m.lastY - y)
	m.lastX, m.lastY = x, y
	return dx, dy
}

// Reset makes the next Offset call a first sample again, e.g. after the cursor is recaptured.
func (m *MouseTracker) Reset() {
	m.primed = false
}
