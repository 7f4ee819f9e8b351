package scene

import "time"

// Window holds the platform window state and frame timing.
type Window struct {
	Title string
	// Width and Height are the physical size in pixels.
	Width, Height uint32
	ScaleFactor   float64
	// ShouldExit asks the driver to stop after the current frame.
	ShouldExit bool

	FramesPerSecond float32
	// DeltaTime is the time between the last two frame starts.
	DeltaTime          time.Duration
	LastFrameStart     time.Time
	CurrentFrameStart  time.Time // start of the current fps sampling window
	InitialFrameStart  time.Time
	FrameCounter       uint32
	UptimeMilliseconds uint64
}

func NewWindow() Window {
	return Window{ScaleFactor: 1}
}

// DeltaSeconds returns DeltaTime as float seconds for movement math.
func (w *Window) DeltaSeconds() float32 {
	return float32(w.DeltaTime.Seconds())
}

// UpdateFrameTiming refreshes delta time, uptime, and the frames-per-second
// sample. It is called once at the start of every frame.
func (w *Window) UpdateFrameTiming(now time.Time) {
	if w.InitialFrameStart.IsZero() {
		w.InitialFrameStart = now
	}

	if w.LastFrameStart.IsZero() {
		w.DeltaTime = 0
	} else {
		w.DeltaTime = now.Sub(w.LastFrameStart)
	}
	w.LastFrameStart = now

	if w.CurrentFrameStart.IsZero() {
		w.CurrentFrameStart = now
	}

	w.UptimeMilliseconds = uint64(now.Sub(w.InitialFrameStart).Milliseconds())

	w.FrameCounter++
	if now.Sub(w.CurrentFrameStart) >= time.Second {
		w.FramesPerSecond = float32(w.FrameCounter)
		w.FrameCounter = 0
		w.CurrentFrameStart = now
	}
}
