package system

import (
	"time"

	"github.com/scenekit/scenekit/internal/core/ecs"
	coresys "github.com/scenekit/scenekit/internal/core/system"
	"github.com/scenekit/scenekit/internal/scene"
	"go.uber.org/zap"
)

// CleanupSystem flushes the deferred entity destruction queue at frame end.
// Phase 6 (Cleanup).
type CleanupSystem struct {
	ctx *scene.Context
	log *zap.Logger
}

func NewCleanupSystem(ctx *scene.Context, log *zap.Logger) *CleanupSystem {
	return &CleanupSystem{ctx: ctx, log: log}
}

func (s *CleanupSystem) Phase() coresys.Phase { return coresys.PhaseCleanup }

func (s *CleanupSystem) Update(_ time.Duration) {
	active := s.ctx.Resources.ActiveCamera
	if n := s.ctx.World.FlushDestroyQueue(); n > 0 {
		s.log.Debug("destroyed queued entities", zap.Int("count", n))
	}
	if !s.ctx.World.Alive(active) {
		s.ctx.Resources.ActiveCamera = ecs.NoEntity
	}
}
