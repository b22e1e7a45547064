package input

// KeyListener receives mapped key notifications.
type KeyListener interface {
	NotifyKey(event Event, state ButtonState)
}

// MouseListener receives cursor motion, scroll and mapped mouse button
// notifications. Motion and scroll arrive with event None.
type MouseListener interface {
	NotifyMouse(cursorX, cursorY, scrollX, scrollY float64, event Event, state ButtonState)
}

// CloseListener is asked to accept a window close request. Returning false
// stops the request from reaching later listeners.
type CloseListener interface {
	NotifyClose() bool
}

// ResolutionListener receives the new viewport size in pixels.
type ResolutionListener interface {
	NotifyResolution(width, height int)
}

// Listener is implemented by anything that wants every kind of notification.
type Listener interface {
	KeyListener
	MouseListener
	CloseListener
	ResolutionListener
}
