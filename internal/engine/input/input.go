// Package input defines the keyboard and pointer surface the viewer consumes,
// independent of the windowing backend that produces it.
package input

// Key identifies a key the viewer reacts to.
type Key int

const (
	KeyUnknown Key = iota
	KeyW
	KeyA
	KeyS
	KeyD
	KeyQ
	KeyE
	KeyP
	KeyO
	KeyEscape
	KeyF12
)

var keyNames = [...]string{
	KeyUnknown: "unknown",
	KeyW:       "W",
	KeyA:       "A",
	KeyS:       "S",
	KeyD:       "D",
	KeyQ:       "Q",
	KeyE:       "E",
	KeyP:       "P",
	KeyO:       "O",
	KeyEscape:  "Escape",
	KeyF12:     "F12",
}

func (k Key) String() string {
	if k < 0 || int(k) >= len(keyNames) {
		return "unknown"
	}
	return keyNames[k]
}

// CursorFunc receives absolute cursor positions in window coordinates.
type CursorFunc func(x, y float64)

// ScrollFunc receives scroll wheel offsets.
type ScrollFunc func(xoff, yoff float64)

// KeyState reports whether a key is currently held.
type KeyState interface {
	Pressed(k Key) bool
}

// Source is a windowing layer seen from the viewer: keys are polled on demand,
// pointer movement and scrolling arrive through registered callbacks.
// Registering a callback replaces the previous one.
type Source interface {
	KeyState
	OnCursorMove(fn CursorFunc)
	OnScroll(fn ScrollFunc)
}

// Keys is a set of held keys. Backends that receive key events rather than
// exposing a polled keyboard state record them here.
type Keys struct {
	held map[Key]bool
}

// NewKeys creates an empty key set.
func NewKeys() *Keys {
	return &Keys{held: make(map[Key]bool)}
}

// Press marks a key as held.
func (k *Keys) Press(key Key) {
	if key == KeyUnknown {
		return
	}
	k.held[key] = true
}

// Release marks a key as no longer held.
func (k *Keys) Release(key Key) {
	delete(k.held, key)
}

// Pressed reports whether the key is held.
func (k *Keys) Pressed(key Key) bool {
	return k.held[key]
}

// Reset releases every key.
func (k *Keys) Reset() {
	clear(k.held)
}

// Events is an in-memory Source: key state comes from an embedded Keys set and
// pointer events are delivered by calling MoveCursor and Scroll directly.
// Backends embed it to share callback bookkeeping.
type Events struct {
	*Keys
	cursor CursorFunc
	scroll ScrollFunc
}

// NewEvents creates an event source with no keys held and no callbacks.
func NewEvents() *Events {
	return &Events{Keys: NewKeys()}
}

// OnCursorMove registers the cursor callback.
func (e *Events) OnCursorMove(fn CursorFunc) {
	e.cursor = fn
}

// OnScroll registers the scroll callback.
func (e *Events) OnScroll(fn ScrollFunc) {
	e.scroll = fn
}

// MoveCursor delivers a cursor position to the registered callback, if any.
func (e *Events) MoveCursor(x, y float64) {
	if e.cursor != nil {
		e.cursor(x, y)
	}
}

// Scroll delivers a scroll offset to the registered callback, if any.
func (e *Events) Scroll(xoff, yoff float64) {
	if e.scroll != nil {
		e.scroll(xoff, yoff)
	}
}
