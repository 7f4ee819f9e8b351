package system

import (
	"time"

	coresys "github.com/scenekit/scenekit/internal/core/system"
	"github.com/scenekit/scenekit/internal/scene"
	"go.uber.org/zap"
)

// RenderSystem hands the active camera and all painted entities to the
// renderer. Phase 4 (Render).
type RenderSystem struct {
	ctx *scene.Context
	log *zap.Logger
}

func NewRenderSystem(ctx *scene.Context, log *zap.Logger) *RenderSystem {
	return &RenderSystem{ctx: ctx, log: log}
}

func (s *RenderSystem) Phase() coresys.Phase { return coresys.PhaseRender }

func (s *RenderSystem) Update(_ time.Duration) {
	r := s.ctx.Resources.Graphics.Renderer
	if r == nil {
		return
	}
	frame, ok := scene.BuildRenderFrame(s.ctx)
	if !ok {
		return
	}
	if err := r.Render(frame); err != nil {
		s.log.Error("render failed", zap.Error(err))
	}
}
