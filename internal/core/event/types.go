package event

// Window and input events forwarded by the platform driver.

type CloseRequested struct{}

type Resized struct {
	Width, Height uint32
}

type ScaleFactorChanged struct {
	ScaleFactor float64
}

type KeyChanged struct {
	Key     string // platform-neutral key code, e.g. "KeyW", "Space", "Escape"
	Pressed bool
}

type MouseButton uint8

const (
	MouseLeft MouseButton = iota
	MouseMiddle
	MouseRight
)

type MouseButtonChanged struct {
	Button  MouseButton
	Pressed bool
}

type CursorMoved struct {
	X, Y float32
}

type MouseWheel struct {
	DeltaX, DeltaY float32
}

// InputCaptured is emitted by the UI layer when it starts or stops consuming
// pointer or keyboard input.
type InputCaptured struct {
	Pointer  bool
	Keyboard bool
}
