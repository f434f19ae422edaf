package shader

import "github.com/go-gl/mathgl/mgl32"

// Uniforms is write-only shader state addressed by uniform name.
// Values persist until overwritten: a draw sees whatever was written last.
type Uniforms interface {
	SetBool(name string, v bool)
	SetInt(name string, v int32)
	SetFloat(name string, v float32)
	SetVec2(name string, v mgl32.Vec2)
	SetVec3(name string, v mgl32.Vec3)
	SetVec4(name string, v mgl32.Vec4)
	SetMat4(name string, m mgl32.Mat4)
	SetSampler2D(name string, unit int32)
}

// Call is one recorded uniform write.
type Call struct {
	Name  string
	Value any
}

// Recorder is an in-memory Uniforms that keeps every write in order.
// It stands in for a GL program wherever no context exists.
type Recorder struct {
	Calls []Call
}

var _ Uniforms = (*Recorder)(nil)

func (r *Recorder) record(name string, v any) {
	r.Calls = append(r.Calls, Call{Name: name, Value: v})
}

func (r *Recorder) SetBool(name string, v bool)          { r.record(name, v) }
func (r *Recorder) SetInt(name string, v int32)          { r.record(name, v) }
func (r *Recorder) SetFloat(name string, v float32)      { r.record(name, v) }
func (r *Recorder) SetVec2(name string, v mgl32.Vec2)    { r.record(name, v) }
func (r *Recorder) SetVec3(name string, v mgl32.Vec3)    { r.record(name, v) }
func (r *Recorder) SetVec4(name string, v mgl32.Vec4)    { r.record(name, v) }
func (r *Recorder) SetMat4(name string, m mgl32.Mat4)    { r.record(name, m) }
func (r *Recorder) SetSampler2D(name string, unit int32) { r.record(name, unit) }

// Last returns the most recent value written to name.
func (r *Recorder) Last(name string) (any, bool) {
	for i := len(r.Calls) - 1; i >= 0; i-- {
		if r.Calls[i].Name == name {
			return r.Calls[i].Value, true
		}
	}
	return nil, false
}

// Count returns how many times name was written.
func (r *Recorder) Count(name string) int {
	n := 0
	for _, c := range r.Calls {
		if c.Name == name {
			n++
		}
	}
	return n
}

// Names returns the written uniform names in call order.
func (r *Recorder) Names() []string {
	names := make([]string, len(r.Calls))
	for i, c := range r.Calls {
		names[i] = c.Name
	}
	return names
}

// Reset drops all recorded calls.
func (r *Recorder) Reset() {
	r.Calls = r.Calls[:0]
}
