package system

import (
	"time"

	coresys "github.com/scenekit/scenekit/internal/core/system"
	"github.com/scenekit/scenekit/internal/scene"
)

// TransformSystem recomputes every GlobalTransform from the Parent chains.
// Phase 3 (Propagate).
type TransformSystem struct {
	ctx *scene.Context
}

func NewTransformSystem(ctx *scene.Context) *TransformSystem {
	return &TransformSystem{ctx: ctx}
}

func (s *TransformSystem) Phase() coresys.Phase { return coresys.PhasePropagate }

func (s *TransformSystem) Update(_ time.Duration) {
	scene.UpdateGlobalTransforms(s.ctx)
}
