package input

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

// Source is the event source: it owns the platform key and mouse maps and
// notifies registered listeners, in registration order, as input arrives.
type Source struct {
	keyMap   map[ebiten.Key]Event
	mouseMap map[ebiten.MouseButton]Event

	// Mapped keys and buttons in ascending order, so Poll dispatches the same
	// tick the same way every time.
	keys    []ebiten.Key
	buttons []ebiten.MouseButton

	keyListeners        []KeyListener
	mouseListeners      []MouseListener
	closeListeners      []CloseListener
	resolutionListeners []ResolutionListener

	// CaptureFilter, if set, swallows presses of a mouse button at positions
	// it reports true for (e.g. over overlay buttons).
	CaptureFilter func(button ebiten.MouseButton, x, y float64) bool

	cursorX, cursorY float64
	width, height    int
	pendingW         int
	pendingH         int

	logger *slog.Logger
}

// NewSource returns a Source with empty maps. A nil logger discards output.
func NewSource(logger *slog.Logger) *Source {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Source{
		keyMap:   make(map[ebiten.Key]Event),
		mouseMap: make(map[ebiten.MouseButton]Event),
		logger:   logger,
	}
}

// MapKey binds a platform key to an event. A later binding for the same key
// replaces the earlier one.
func (s *Source) MapKey(key ebiten.Key, event Event) {
	if _, ok := s.keyMap[key]; !ok {
		i, _ := slices.BinarySearch(s.keys, key)
		s.keys = slices.Insert(s.keys, i, key)
	}
	s.keyMap[key] = event
}

func (s *Source) MapMouseButton(button ebiten.MouseButton, event Event) {
	if _, ok := s.mouseMap[button]; !ok {
		i, _ := slices.BinarySearch(s.buttons, button)
		s.buttons = slices.Insert(s.buttons, i, button)
	}
	s.mouseMap[button] = event
}

// ButtonFor returns the lowest mouse button mapped to event.
func (s *Source) ButtonFor(event Event) (ebiten.MouseButton, bool) {
	for _, b := range s.buttons {
		if s.mouseMap[b] == event {
			return b, true
		}
	}
	return 0, false
}

func (s *Source) RegisterKeyListener(l KeyListener) {
	s.keyListeners = append(s.keyListeners, l)
}

func (s *Source) RegisterMouseListener(l MouseListener) {
	s.mouseListeners = append(s.mouseListeners, l)
}

func (s *Source) RegisterCloseListener(l CloseListener) {
	s.closeListeners = append(s.closeListeners, l)
}

func (s *Source) RegisterResolutionListener(l ResolutionListener) {
	s.resolutionListeners = append(s.resolutionListeners, l)
}

// Register subscribes l to all four kinds of notification.
func (s *Source) Register(l Listener) {
	s.RegisterKeyListener(l)
	s.RegisterMouseListener(l)
	s.RegisterCloseListener(l)
	s.RegisterResolutionListener(l)
}

// Cursor returns the last cursor position seen by the source.
func (s *Source) Cursor() (float64, float64) {
	return s.cursorX, s.cursorY
}

// Resolution returns the last resolution dispatched.
func (s *Source) Resolution() (int, int) {
	return s.width, s.height
}

// DispatchKey notifies key listeners if key is mapped. Unmapped keys are
// ignored.
func (s *Source) DispatchKey(key ebiten.Key, state ButtonState) {
	event, ok := s.keyMap[key]
	if !ok {
		return
	}
	s.logger.Debug("key", "key", key.String(), "event", event, "state", state)
	for _, l := range s.keyListeners {
		l.NotifyKey(event, state)
	}
}

// DispatchMouseButton notifies mouse listeners of a mapped button transition
// at the current cursor position.
func (s *Source) DispatchMouseButton(button ebiten.MouseButton, state ButtonState) {
	event, ok := s.mouseMap[button]
	if !ok {
		return
	}
	if state == Pressed && s.CaptureFilter != nil && s.CaptureFilter(button, s.cursorX, s.cursorY) {
		return
	}
	s.logger.Debug("mouse button", "event", event, "state", state)
	for _, l := range s.mouseListeners {
		l.NotifyMouse(s.cursorX, s.cursorY, 0, 0, event, state)
	}
}

// DispatchCursor records and announces a cursor move.
func (s *Source) DispatchCursor(x, y float64) {
	s.cursorX, s.cursorY = x, y
	for _, l := range s.mouseListeners {
		l.NotifyMouse(x, y, 0, 0, None, Released)
	}
}

// DispatchScroll announces a wheel tick at the current cursor position.
func (s *Source) DispatchScroll(scrollX, scrollY float64) {
	for _, l := range s.mouseListeners {
		l.NotifyMouse(s.cursorX, s.cursorY, scrollX, scrollY, None, Released)
	}
}

// DispatchClose asks close listeners in order to accept a close request and
// stops at the first refusal. It reports whether every listener accepted.
func (s *Source) DispatchClose() bool {
	for _, l := range s.closeListeners {
		if !l.NotifyClose() {
			return false
		}
	}
	return true
}

// DispatchResolution replaces the resolution and notifies listeners.
func (s *Source) DispatchResolution(width, height int) {
	s.width, s.height = width, height
	s.pendingW, s.pendingH = width, height
	s.logger.Debug("resolution", "width", width, "height", height)
	for _, l := range s.resolutionListeners {
		l.NotifyResolution(width, height)
	}
}

// SetResolution records a new viewport size to be dispatched on the next
// Poll. It is safe to call from ebiten's Layout.
func (s *Source) SetResolution(width, height int) {
	s.pendingW, s.pendingH = width, height
}

// ParseKey resolves an ebiten key name such as "W", "Escape" or "ArrowUp".
func ParseKey(name string) (ebiten.Key, error) {
	var k ebiten.Key
	if err := k.UnmarshalText([]byte(strings.TrimSpace(name))); err != nil {
		return 0, fmt.Errorf("unknown key %q: %w", name, err)
	}
	return k, nil
}

// ParseMouseButton resolves "left", "right" or "middle".
func ParseMouseButton(name string) (ebiten.MouseButton, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "left":
		return ebiten.MouseButtonLeft, nil
	case "right":
		return ebiten.MouseButtonRight, nil
	case "middle":
		return ebiten.MouseButtonMiddle, nil
	}
	return 0, fmt.Errorf("unknown mouse button %q", name)
}
