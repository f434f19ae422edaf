// Package shading pushes per-draw state into the scene shader.
//
// Uniforms are shared by every draw and are never restored, so each object
// must write everything it depends on before it is drawn: its model matrix,
// its material, and exactly one of SetColor or SetTexture.
package shading

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/deskview/internal/engine/lighting"
	"github.com/Faultbox/deskview/internal/engine/material"
	"github.com/Faultbox/deskview/internal/engine/shader"
	"github.com/Faultbox/deskview/internal/engine/transform"
)

// Uniform names used by the scene shader.
const (
	UniformModel        = "model"
	UniformView         = "view"
	UniformProjection   = "projection"
	UniformViewPosition = "viewPosition"
	UniformObjectColor  = "objectColor"
	UniformTexture      = "objectTexture"
	UniformUseTexture   = "bUseTexture"
	UniformUseLighting  = "bUseLighting"
	UniformUVScale      = "UVscale"

	UniformAmbientColor    = "material.ambientColor"
	UniformAmbientStrength = "material.ambientStrength"
	UniformDiffuseColor    = "material.diffuseColor"
	UniformSpecularColor   = "material.specularColor"
	UniformShininess       = "material.shininess"
)

var (
	// ErrUnknownTexture is returned by SetTexture for tags with no registered texture.
	ErrUnknownTexture = errors.New("unknown texture tag")
	// ErrUnknownMaterial is returned by SetMaterial for tags with no defined material.
	ErrUnknownMaterial = errors.New("unknown material tag")
)

// TextureSlots resolves a texture tag to the unit it is bound to.
type TextureSlots interface {
	Slot(tag string) (int, bool)
}

// Materials resolves a material tag.
type Materials interface {
	Find(tag string) (material.Material, bool)
}

// Binder is the uniform-setting facade used by the scene.
type Binder struct {
	u         shader.Uniforms
	textures  TextureSlots
	materials Materials
	fallback  material.Material
}

// NewBinder creates a binder writing to u.
func NewBinder(u shader.Uniforms, textures TextureSlots, materials Materials) *Binder {
	return &Binder{
		u:         u,
		textures:  textures,
		materials: materials,
		fallback:  material.Default(),
	}
}

// SetModel writes the model matrix.
func (b *Binder) SetModel(m mgl32.Mat4) {
	b.u.SetMat4(UniformModel, m)
}

// SetTransform composes t and writes it as the model matrix.
func (b *Binder) SetTransform(t transform.Transform) mgl32.Mat4 {
	m := t.Matrix()
	b.SetModel(m)
	return m
}

// SetColor disables texture sampling and sets a flat color.
func (b *Binder) SetColor(c mgl32.Vec4) {
	b.u.SetBool(UniformUseTexture, false)
	b.u.SetVec4(UniformObjectColor, c)
}

// SetTexture enables texture sampling from the unit bound to tag.
// Unknown tags leave the shader untouched and return ErrUnknownTexture.
func (b *Binder) SetTexture(tag string) error {
	slot, ok := b.textures.Slot(tag)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownTexture, tag)
	}
	b.u.SetBool(UniformUseTexture, true)
	b.u.SetSampler2D(UniformTexture, int32(slot))
	return nil
}

// SetUVScale sets texture coordinate tiling.
func (b *Binder) SetUVScale(u, v float32) {
	b.u.SetVec2(UniformUVScale, mgl32.Vec2{u, v})
}

// SetMaterial writes the material registered under tag. Unknown tags write
// the default material and return ErrUnknownMaterial, so the previous
// object's material never leaks into this draw.
func (b *Binder) SetMaterial(tag string) error {
	m, ok := b.materials.Find(tag)
	if !ok {
		b.writeMaterial(b.fallback)
		return fmt.Errorf("%w: %q", ErrUnknownMaterial, tag)
	}
	b.writeMaterial(m)
	return nil
}

// UseDefaultMaterial writes the default material, for objects that name none.
func (b *Binder) UseDefaultMaterial() {
	b.writeMaterial(b.fallback)
}

func (b *Binder) writeMaterial(m material.Material) {
	b.u.SetVec3(UniformAmbientColor, m.AmbientColor)
	b.u.SetFloat(UniformAmbientStrength, m.AmbientStrength)
	b.u.SetVec3(UniformDiffuseColor, m.DiffuseColor)
	b.u.SetVec3(UniformSpecularColor, m.SpecularColor)
	b.u.SetFloat(UniformShininess, m.Shininess)
}

// SetupLights enables lighting and writes the rig. Called once at preparation.
func (b *Binder) SetupLights(rig *lighting.Rig) {
	b.u.SetBool(UniformUseLighting, true)
	rig.Apply(b.u)
}

// SetCamera writes the view and projection matrices and the eye position.
func (b *Binder) SetCamera(view, projection mgl32.Mat4, eye mgl32.Vec3) {
	b.u.SetMat4(UniformView, view)
	b.u.SetMat4(UniformProjection, projection)
	b.u.SetVec3(UniformViewPosition, eye)
}
