package system

import (
	"time"

	coresys "github.com/scenekit/scenekit/internal/core/system"
	"github.com/scenekit/scenekit/internal/scene"
)

// FrameTimingSystem stamps the frame start into the Window resource.
// Phase 0 (Timing).
type FrameTimingSystem struct {
	ctx *scene.Context
	now func() time.Time
}

// NewFrameTimingSystem uses now as the clock, or time.Now when now is nil.
func NewFrameTimingSystem(ctx *scene.Context, now func() time.Time) *FrameTimingSystem {
	if now == nil {
		now = time.Now
	}
	return &FrameTimingSystem{ctx: ctx, now: now}
}

func (s *FrameTimingSystem) Phase() coresys.Phase { return coresys.PhaseTiming }

func (s *FrameTimingSystem) Update(_ time.Duration) {
	s.ctx.Resources.Window.UpdateFrameTiming(s.now())
}
