package scene

import "github.com/go-gl/mathgl/mgl32"

// MouseState is a set of held mouse buttons.
type MouseState uint8

const (
	LeftClicked MouseState = 1 << iota
	MiddleClicked
	RightClicked
)

func (s MouseState) Contains(flags MouseState) bool { return s&flags == flags }

type Keyboard struct {
	pressed map[string]struct{}
}

func (k *Keyboard) IsKeyPressed(key string) bool {
	_, ok := k.pressed[key]
	return ok
}

func (k *Keyboard) SetKey(key string, pressed bool) {
	if k.pressed == nil {
		k.pressed = make(map[string]struct{})
	}
	if pressed {
		k.pressed[key] = struct{}{}
		return
	}
	delete(k.pressed, key)
}

type Mouse struct {
	State         MouseState
	Position      mgl32.Vec2
	PositionDelta mgl32.Vec2
	WheelDelta    mgl32.Vec2
	seenPosition  bool
}

// MoveTo records a cursor position and accumulates the delta for this frame.
// The first position seen produces no delta.
func (m *Mouse) MoveTo(pos mgl32.Vec2) {
	if m.seenPosition {
		m.PositionDelta = m.PositionDelta.Add(pos.Sub(m.Position))
	}
	m.Position = pos
	m.seenPosition = true
}

func (m *Mouse) SetButton(button MouseState, pressed bool) {
	if pressed {
		m.State |= button
		return
	}
	m.State &^= button
}

// Input is the keyboard and mouse state accumulated from window events.
type Input struct {
	Keyboard Keyboard
	Mouse    Mouse
}

func NewInput() Input {
	return Input{Keyboard: Keyboard{pressed: make(map[string]struct{})}}
}

// Reset clears per-frame deltas. Held keys and buttons persist until released.
func (in *Input) Reset() {
	in.Mouse.PositionDelta = mgl32.Vec2{}
	in.Mouse.WheelDelta = mgl32.Vec2{}
}
