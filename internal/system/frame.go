package system

import (
	"time"

	"github.com/scenekit/scenekit/internal/core/event"
	coresys "github.com/scenekit/scenekit/internal/core/system"
	"github.com/scenekit/scenekit/internal/scene"
	"go.uber.org/zap"
)

// Frame owns the Runner with every frame system registered in order. The
// window driver emits events into Bus and calls Run once per frame.
type Frame struct {
	Context *scene.Context
	Bus     *event.Bus

	runner *coresys.Runner
	frames uint64
	log    *zap.Logger
}

func NewFrame(ctx *scene.Context, bus *event.Bus, controls scene.CameraControls, log *zap.Logger) *Frame {
	if log == nil {
		log = zap.NewNop()
	}
	if bus == nil {
		bus = event.NewBus()
	}
	runner := coresys.NewRunner()
	runner.Register(
		NewFrameTimingSystem(ctx, nil),
		NewEventDispatchSystem(bus, ctx, log.Named("events")),
		NewCameraSetupSystem(ctx, log.Named("camera")),
		NewLookCameraSystem(ctx, controls),
		NewWASDCameraSystem(ctx, controls),
		NewTransformSystem(ctx),
		NewRenderSystem(ctx, log.Named("render")),
		NewResetInputSystem(ctx),
		NewCleanupSystem(ctx, log.Named("cleanup")),
	)
	return &Frame{Context: ctx, Bus: bus, runner: runner, log: log}
}

// Register adds extra systems; they run in phase order with the built-ins.
func (f *Frame) Register(systems ...coresys.System) {
	f.runner.Register(systems...)
}

// Run executes one frame. It returns false and does nothing while no renderer
// is attached, unless the Context is headless.
func (f *Frame) Run(dt time.Duration) bool {
	if f.Context.Resources.Graphics.Renderer == nil && !f.Context.Options().Headless {
		return false
	}
	f.runner.Tick(dt)
	f.frames++
	return true
}

// Drain runs frames until the event bus is empty or maxFrames frames have
// run, so events emitted during shutdown still reach their handlers. It
// returns the number of frames run.
func (f *Frame) Drain(dt time.Duration, maxFrames int) int {
	n := 0
	for n < maxFrames && f.Bus.Pending() > 0 {
		if !f.Run(dt) {
			break
		}
		n++
	}
	return n
}

// Frames returns how many frames Run has executed.
func (f *Frame) Frames() uint64 { return f.frames }

// ShouldExit reports whether a system or event asked the driver to stop.
func (f *Frame) ShouldExit() bool { return f.Context.Resources.Window.ShouldExit }
