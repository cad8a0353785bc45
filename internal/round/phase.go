// Package round holds the phase vocabulary both estimation games report.
package round

// Phase is where a round currently sits.
type Phase int

const (
	// Idle is the pre-drag state, also entered after a pointer release.
	Idle Phase = iota
	// Dragging lasts from pointer-down on the handle until pointer-up or leave.
	Dragging
	// Submitted freezes the round until a new one starts.
	Submitted
)

func (p Phase) String() string {
	switch p {
	case Dragging:
		return "dragging"
	case Submitted:
		return "submitted"
	default:
		return "idle"
	}
}
