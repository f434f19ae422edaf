// Package lighting provides the light sources fed to the scene shader.
package lighting

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/deskview/internal/engine/shader"
)

// MaxSources is the size of the lightSources array in the fragment shader.
const MaxSources = 4

// Source is a light as seen by the shader. A zero Direction means the light
// shines equally in every direction from Position.
type Source struct {
	Position          mgl32.Vec3
	Direction         mgl32.Vec3
	DiffuseColor      mgl32.Vec3
	SpecularColor     mgl32.Vec3
	FocalStrength     float32 // Specular exponent
	SpecularIntensity float32
}

// Rig is a global ambient term plus a bounded list of sources.
type Rig struct {
	GlobalAmbient mgl32.Vec3
	Sources       []Source
}

// NewRig creates an empty rig with the given global ambient color.
func NewRig(ambient mgl32.Vec3) *Rig {
	return &Rig{
		GlobalAmbient: ambient,
		Sources:       make([]Source, 0, MaxSources),
	}
}

// AddSource appends a light.
// Returns false if the rig is full.
func (r *Rig) AddSource(s Source) bool {
	if len(r.Sources) >= MaxSources {
		return false
	}
	r.Sources = append(r.Sources, s)
	return true
}

// Apply writes the ambient term and every source to u.
func (r *Rig) Apply(u shader.Uniforms) {
	u.SetVec3("globalAmbientColor", r.GlobalAmbient)
	for i, s := range r.Sources {
		prefix := fmt.Sprintf("lightSources[%d].", i)
		u.SetVec3(prefix+"position", s.Position)
		u.SetVec3(prefix+"direction", s.Direction)
		u.SetVec3(prefix+"diffuseColor", s.DiffuseColor)
		u.SetVec3(prefix+"specularColor", s.SpecularColor)
		u.SetFloat(prefix+"focalStrength", s.FocalStrength)
		u.SetFloat(prefix+"specularIntensity", s.SpecularIntensity)
	}
}
