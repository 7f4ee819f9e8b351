package system

import (
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/scenekit/scenekit/internal/core/event"
	coresys "github.com/scenekit/scenekit/internal/core/system"
	"github.com/scenekit/scenekit/internal/scene"
	"go.uber.org/zap"
)

// EventDispatchSystem swaps the event bus and delivers last frame's window
// events into the Window and Input resources. Phase 1 (Layout).
type EventDispatchSystem struct {
	bus *event.Bus
	ctx *scene.Context
	log *zap.Logger
}

func NewEventDispatchSystem(bus *event.Bus, ctx *scene.Context, log *zap.Logger) *EventDispatchSystem {
	s := &EventDispatchSystem{bus: bus, ctx: ctx, log: log}
	s.subscribe()
	return s
}

func (s *EventDispatchSystem) Phase() coresys.Phase { return coresys.PhaseLayout }

func (s *EventDispatchSystem) Update(_ time.Duration) {
	s.bus.SwapBuffers()
	s.bus.DispatchAll()
}

func (s *EventDispatchSystem) subscribe() {
	res := &s.ctx.Resources

	event.Subscribe(s.bus, func(event.CloseRequested) {
		s.log.Info("close requested")
		res.Window.ShouldExit = true
	})
	event.Subscribe(s.bus, func(ev event.Resized) {
		res.Window.Width, res.Window.Height = ev.Width, ev.Height
		scene.ResizeViewport(s.ctx, ev.Width, ev.Height)
	})
	event.Subscribe(s.bus, func(ev event.ScaleFactorChanged) {
		res.Window.ScaleFactor = ev.ScaleFactor
		res.UserInterface.ScaleFactor = ev.ScaleFactor
	})
	event.Subscribe(s.bus, func(ev event.KeyChanged) {
		if ev.Key == "Escape" && ev.Pressed {
			res.Window.ShouldExit = true
		}
		res.Input.Keyboard.SetKey(ev.Key, ev.Pressed)
	})
	event.Subscribe(s.bus, func(ev event.MouseButtonChanged) {
		button, ok := mouseButtons[ev.Button]
		if !ok {
			return
		}
		res.Input.Mouse.SetButton(button, ev.Pressed)
	})
	event.Subscribe(s.bus, func(ev event.CursorMoved) {
		res.Input.Mouse.MoveTo(mgl32.Vec2{ev.X, ev.Y})
	})
	event.Subscribe(s.bus, func(ev event.InputCaptured) {
		res.UserInterface.WantsPointer = ev.Pointer
		res.UserInterface.WantsKeyboard = ev.Keyboard
	})
	event.Subscribe(s.bus, func(ev event.MouseWheel) {
		res.Input.Mouse.WheelDelta = res.Input.Mouse.WheelDelta.Add(mgl32.Vec2{ev.DeltaX, ev.DeltaY})
	})
}

var mouseButtons = map[event.MouseButton]scene.MouseState{
	event.MouseLeft:   scene.LeftClicked,
	event.MouseMiddle: scene.MiddleClicked,
	event.MouseRight:  scene.RightClicked,
}

// ResetInputSystem clears per-frame input deltas after everything that reads
// them has run. Phase 5 (Reset).
type ResetInputSystem struct {
	ctx *scene.Context
}

func NewResetInputSystem(ctx *scene.Context) *ResetInputSystem {
	return &ResetInputSystem{ctx: ctx}
}

func (s *ResetInputSystem) Phase() coresys.Phase { return coresys.PhaseReset }

func (s *ResetInputSystem) Update(_ time.Duration) {
	s.ctx.Resources.Input.Reset()
}
