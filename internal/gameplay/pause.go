package gameplay

// EdgeDetector turns a per-frame key level into press edges. A key held
// across many frames produces one edge; it must be seen released before it
// can fire again.
type EdgeDetector struct {
	down bool
}

// Observe feeds the key level for this frame and reports a released-to-held
// transition.
func (e *EdgeDetector) Observe(held bool) bool {
	rising := held && !e.down
	e.down = held
	return rising
}

// Held reports the last observed level.
func (e *EdgeDetector) Held() bool {
	return e.down
}
