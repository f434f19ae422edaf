// Package material holds the surface parameters used by the lighting shader.
package material

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Material is a named set of Phong surface parameters.
type Material struct {
	Tag             string
	AmbientColor    mgl32.Vec3
	AmbientStrength float32
	DiffuseColor    mgl32.Vec3
	SpecularColor   mgl32.Vec3
	Shininess       float32
}

// Default returns a neutral gray material used when a tag cannot be resolved.
func Default() Material {
	return Material{
		Tag:             "default",
		AmbientColor:    mgl32.Vec3{1, 1, 1},
		AmbientStrength: 0.1,
		DiffuseColor:    mgl32.Vec3{0.8, 0.8, 0.8},
		SpecularColor:   mgl32.Vec3{0.2, 0.2, 0.2},
		Shininess:       16,
	}
}

// Registry is an append-only list of materials looked up by tag.
// The first material defined with a tag shadows later ones.
type Registry struct {
	materials []Material
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Define appends a material. Tags are not deduplicated.
func (r *Registry) Define(m Material) {
	r.materials = append(r.materials, m)
}

// Find returns the first material registered under tag.
func (r *Registry) Find(tag string) (Material, bool) {
	for _, m := range r.materials {
		if m.Tag == tag {
			return m, true
		}
	}
	return Material{}, false
}

// Len returns the number of defined materials.
func (r *Registry) Len() int {
	return len(r.materials)
}
