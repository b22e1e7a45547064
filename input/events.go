package input

import (
	"fmt"
	"strings"
)

// Event is a logical input event. Platform keys and mouse buttons are mapped
// onto events by the Source, so listeners never see raw key codes.
type Event int

const (
	None Event = iota
	Exit
	MoveUp
	MoveDown
	MoveLeft
	MoveRight
	DragCamera
	IncreaseIterations
	DecreaseIterations
	ResetCamera
	DragSeed // Julia only
)

var eventNames = [...]string{
	None:               "NONE",
	Exit:               "EXIT",
	MoveUp:             "MOVE_UP",
	MoveDown:           "MOVE_DOWN",
	MoveLeft:           "MOVE_LEFT",
	MoveRight:          "MOVE_RIGHT",
	DragCamera:         "DRAG_CAMERA",
	IncreaseIterations: "INCREASE_ITERATIONS",
	DecreaseIterations: "DECREASE_ITERATIONS",
	ResetCamera:        "RESET_CAMERA",
	DragSeed:           "DRAG_SEED",
}

func (e Event) String() string {
	if e < 0 || int(e) >= len(eventNames) {
		return fmt.Sprintf("Event(%d)", int(e))
	}
	return eventNames[e]
}

// ParseEvent accepts the upper-case event names ("MOVE_UP"), case-insensitively.
func ParseEvent(name string) (Event, error) {
	n := strings.ToUpper(strings.TrimSpace(name))
	for i, s := range eventNames {
		if s == n {
			return Event(i), nil
		}
	}
	return None, fmt.Errorf("unknown event %q", name)
}

// ButtonState is the transition that produced a notification.
type ButtonState int

const (
	Pressed ButtonState = iota
	Released
	Repeated
)

func (s ButtonState) String() string {
	switch s {
	case Pressed:
		return "PRESSED"
	case Released:
		return "RELEASED"
	case Repeated:
		return "REPEATED"
	}
	return fmt.Sprintf("ButtonState(%d)", int(s))
}

// ParseButtonState accepts "pressed", "released" or "repeated" in any case.
func ParseButtonState(name string) (ButtonState, error) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "PRESSED":
		return Pressed, nil
	case "RELEASED":
		return Released, nil
	case "REPEATED":
		return Repeated, nil
	}
	return Released, fmt.Errorf("unknown button state %q", name)
}

// Held reports whether the state keeps a key down.
func (s ButtonState) Held() bool {
	return s == Pressed || s == Repeated
}
