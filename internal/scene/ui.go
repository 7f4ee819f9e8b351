package scene

// UserInterface is the state shared with the immediate-mode UI layer.
type UserInterface struct {
	ScaleFactor float64
	// WantsPointer and WantsKeyboard are set by the UI when it consumes input,
	// so scene controls can ignore it for the frame.
	WantsPointer  bool
	WantsKeyboard bool
}
