package input

import "testing"

func TestKeysPressRelease(t *testing.T) {
	k := NewKeys()

	if k.Pressed(KeyW) {
		t.Error("no key should be held initially")
	}

	k.Press(KeyW)
	k.Press(KeyQ)
	if !k.Pressed(KeyW) || !k.Pressed(KeyQ) {
		t.Error("pressed keys should be reported as held")
	}

	k.Release(KeyW)
	if k.Pressed(KeyW) {
		t.Error("released key should not be held")
	}
	if !k.Pressed(KeyQ) {
		t.Error("releasing W should not release Q")
	}

	k.Reset()
	if k.Pressed(KeyQ) {
		t.Error("Reset should release every key")
	}
}

func TestKeysIgnoreUnknown(t *testing.T) {
	k := NewKeys()
	k.Press(KeyUnknown)
	if k.Pressed(KeyUnknown) {
		t.Error("unknown key should never be recorded")
	}
}

func TestEventsCallbacks(t *testing.T) {
	e := NewEvents()

	// No callbacks registered yet; delivering must not panic
	e.MoveCursor(1, 2)
	e.Scroll(0, 1)

	var gotX, gotY, gotScroll float64
	e.OnCursorMove(func(x, y float64) { gotX, gotY = x, y })
	e.OnScroll(func(_, yoff float64) { gotScroll = yoff })

	e.MoveCursor(400, 300)
	e.Scroll(0, -2)

	if gotX != 400 || gotY != 300 {
		t.Errorf("cursor callback got (%v, %v), want (400, 300)", gotX, gotY)
	}
	if gotScroll != -2 {
		t.Errorf("scroll callback got %v, want -2", gotScroll)
	}

	// Replacing a callback drops the previous one
	calls := 0
	e.OnScroll(func(_, _ float64) { calls++ })
	e.Scroll(0, 1)
	if calls != 1 || gotScroll != -2 {
		t.Errorf("expected only the new scroll callback to run, calls=%d last=%v", calls, gotScroll)
	}
}

func TestKeyString(t *testing.T) {
	tests := []struct {
		key  Key
		want string
	}{
		{KeyW, "W"},
		{KeyEscape, "Escape"},
		{KeyF12, "F12"},
		{KeyUnknown, "unknown"},
		{Key(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.key.String(); got != tt.want {
			t.Errorf("Key(%d).String() = %q, want %q", tt.key, got, tt.want)
		}
	}
}
