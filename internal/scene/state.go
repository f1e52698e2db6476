package scene

// Key is a backend-independent key the viewer reacts to. The app layer
// maps SDL scancodes to these before dispatching.
type Key int

const (
	KeyNone Key = iota
	KeyModel
	KeyWorld
	KeyView
	KeyClip
	KeyQuit
	KeyCapture
)

// State is the mutable scene state shared by the input dispatcher and
// the frame updater. Both run on the render thread, so there is a
// single writer and no locking.
type State struct {
	active           Space
	closeRequested   bool
	captureRequested bool
}

// NewState creates scene state starting in the given space.
func NewState(start Space) *State {
	return &State{active: start}
}

// Active returns the highlighted coordinate space.
func (st *State) Active() Space {
	return st.active
}

// HandleKey applies a key press to the state. Auto-repeat presses are
// ignored, so every transition is edge-triggered.
func (st *State) HandleKey(k Key, repeat bool) {
	if repeat {
		return
	}
	switch k {
	case KeyModel:
		st.active = ModelSpace
	case KeyWorld:
		st.active = WorldSpace
	case KeyView:
		st.active = ViewSpace
	case KeyClip:
		st.active = ClipSpace
	case KeyQuit:
		st.closeRequested = true
	case KeyCapture:
		st.captureRequested = true
	}
}

// RequestClose asks the main loop to exit. Used for the window close
// button in addition to the escape key.
func (st *State) RequestClose() {
	st.closeRequested = true
}

// CloseRequested reports whether the main loop should exit.
func (st *State) CloseRequested() bool {
	return st.closeRequested
}

// TakeCaptureRequest returns whether a screenshot was requested and
// clears the request, so one key press yields one capture.
func (st *State) TakeCaptureRequest() bool {
	requested := st.captureRequested
	st.captureRequested = false
	return requested
}
