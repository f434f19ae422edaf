package shader

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestRecorderKeepsOrder(t *testing.T) {
	var r Recorder

	r.SetBool("bUseTexture", true)
	r.SetSampler2D("objectTexture", 2)
	r.SetVec2("UVscale", mgl32.Vec2{1, 1})
	r.SetBool("bUseTexture", false)

	want := []string{"bUseTexture", "objectTexture", "UVscale", "bUseTexture"}
	got := r.Names()
	if len(got) != len(want) {
		t.Fatalf("recorded %d calls, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("call %d: got %s, want %s", i, got[i], want[i])
		}
	}

	last, ok := r.Last("bUseTexture")
	if !ok || last != false {
		t.Errorf("Last(bUseTexture) = %v, %v; want false, true", last, ok)
	}
	if n := r.Count("bUseTexture"); n != 2 {
		t.Errorf("Count(bUseTexture) = %d, want 2", n)
	}
	if _, ok := r.Last("model"); ok {
		t.Error("Last should report missing names as not found")
	}

	r.Reset()
	if len(r.Calls) != 0 {
		t.Errorf("Reset left %d calls", len(r.Calls))
	}
}
