package system

import (
	"time"

	coresys "github.com/scenekit/scenekit/internal/core/system"
	"github.com/scenekit/scenekit/internal/scene"
	"go.uber.org/zap"
)

// CameraSetupSystem gives new cameras a transform looking at the origin and
// picks an active camera when none is set. Phase 1 (Layout).
type CameraSetupSystem struct {
	ctx *scene.Context
	log *zap.Logger
}

func NewCameraSetupSystem(ctx *scene.Context, log *zap.Logger) *CameraSetupSystem {
	return &CameraSetupSystem{ctx: ctx, log: log}
}

func (s *CameraSetupSystem) Phase() coresys.Phase { return coresys.PhaseLayout }

func (s *CameraSetupSystem) Update(_ time.Duration) {
	before := s.ctx.Resources.ActiveCamera
	if n := scene.EnsureCameraTransforms(s.ctx); n > 0 {
		s.log.Debug("initialized camera transforms", zap.Int("count", n))
	}
	if after := s.ctx.Resources.ActiveCamera; after != before {
		s.log.Debug("active camera changed",
			zap.Stringer("from", before),
			zap.Stringer("to", after),
		)
	}
}

// LookCameraSystem applies mouse orbit and pan to the active camera.
// Phase 2 (Input).
type LookCameraSystem struct {
	ctx      *scene.Context
	controls scene.CameraControls
}

func NewLookCameraSystem(ctx *scene.Context, controls scene.CameraControls) *LookCameraSystem {
	return &LookCameraSystem{ctx: ctx, controls: controls}
}

func (s *LookCameraSystem) Phase() coresys.Phase { return coresys.PhaseInput }

func (s *LookCameraSystem) Update(_ time.Duration) {
	scene.LookActiveCamera(s.ctx, s.controls)
}

// WASDCameraSystem moves the active camera from held keys. Phase 2 (Input).
type WASDCameraSystem struct {
	ctx      *scene.Context
	controls scene.CameraControls
}

func NewWASDCameraSystem(ctx *scene.Context, controls scene.CameraControls) *WASDCameraSystem {
	return &WASDCameraSystem{ctx: ctx, controls: controls}
}

func (s *WASDCameraSystem) Phase() coresys.Phase { return coresys.PhaseInput }

func (s *WASDCameraSystem) Update(_ time.Duration) {
	scene.MoveActiveCamera(s.ctx, s.controls)
}
