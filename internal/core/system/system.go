package system

import "time"

// Phase defines execution ordering within a single frame.
type Phase int

const (
	PhaseTiming    Phase = iota // 0: frame timing
	PhaseLayout                 // 1: UI layout, window events
	PhaseInput                  // 2: input-driven movement of local transforms
	PhasePropagate              // 3: local → global transform propagation
	PhaseRender                 // 4: render submission
	PhaseReset                  // 5: clear per-frame input
	PhaseCleanup                // 6: destroy queued entities
)

var phaseNames = [...]string{"timing", "layout", "input", "propagate", "render", "reset", "cleanup"}

func (p Phase) String() string {
	if p < 0 || int(p) >= len(phaseNames) {
		return "unknown"
	}
	return phaseNames[p]
}

// System is the interface every frame system implements.
type System interface {
	Phase() Phase
	Update(dt time.Duration)
}
