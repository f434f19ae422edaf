package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/deskview/internal/engine/lighting"
	"github.com/Faultbox/deskview/internal/engine/material"
	"github.com/Faultbox/deskview/internal/engine/mesh"
	"github.com/Faultbox/deskview/internal/engine/transform"
)

// Object is one draw command: a unit mesh placed in the world with a
// material and either a texture or a flat color.
type Object struct {
	Name      string
	Mesh      mesh.Kind
	Transform transform.Transform
	Material  string     // Material tag; empty uses the default material
	Texture   string     // Texture tag; empty draws with Color
	Color     mgl32.Vec4 // Flat color, also used when Texture cannot be resolved
	UVScale   mgl32.Vec2
}

// TextureAsset names an image file to load under a tag.
type TextureAsset struct {
	Tag  string
	File string // Relative to the texture directory
}

func place(scale, rotation, position mgl32.Vec3) transform.Transform {
	return transform.Transform{Scale: scale, Rotation: rotation, Position: position}
}

// DeskObjects returns the desk scene in draw order.
func DeskObjects() []Object {
	one := mgl32.Vec2{1, 1}
	return []Object{
		{
			Name:      "desk",
			Mesh:      mesh.Plane,
			Transform: place(mgl32.Vec3{5, 1, 3}, mgl32.Vec3{}, mgl32.Vec3{0, 0, 0}),
			Material:  "satin",
			Texture:   "desk",
			Color:     mgl32.Vec4{0.55, 0.35, 0.2, 1},
			UVScale:   one,
		},
		{
			Name:      "monitor screen",
			Mesh:      mesh.Box,
			Transform: place(mgl32.Vec3{2, 1.2, 0.1}, mgl32.Vec3{-5, 0, 0}, mgl32.Vec3{0, 1.1, -1.75}),
			Material:  "monitor",
			Texture:   "monitor",
			Color:     mgl32.Vec4{0.05, 0.05, 0.1, 1},
			UVScale:   one,
		},
		{
			Name:      "monitor body",
			Mesh:      mesh.Box,
			Transform: place(mgl32.Vec3{2.1, 1.3, 0.3}, mgl32.Vec3{-5, 0, 0}, mgl32.Vec3{0, 1.1, -1.9}),
			Material:  "satin",
			Texture:   "pc_tower",
			Color:     mgl32.Vec4{0.15, 0.15, 0.15, 1},
			UVScale:   one,
		},
		{
			Name:      "monitor stand",
			Mesh:      mesh.Box,
			Transform: place(mgl32.Vec3{0.3, 1, 0.25}, mgl32.Vec3{}, mgl32.Vec3{0, 0.5, -1.9}),
			Material:  "satin",
			Texture:   "pc_tower",
			Color:     mgl32.Vec4{0.15, 0.15, 0.15, 1},
			UVScale:   one,
		},
		{
			Name:      "keyboard keys",
			Mesh:      mesh.Box,
			Transform: place(mgl32.Vec3{2.4, 0.2, 1}, mgl32.Vec3{}, mgl32.Vec3{0, 0.09, -1}),
			Material:  "satin",
			Texture:   "keyboard",
			Color:     mgl32.Vec4{0.9, 0.9, 0.9, 1},
			UVScale:   one,
		},
		{
			Name:      "keyboard body",
			Mesh:      mesh.Box,
			Transform: place(mgl32.Vec3{2.5, 0.15, 1.1}, mgl32.Vec3{}, mgl32.Vec3{0, 0.1, -1}),
			Material:  "satin",
			Texture:   "pc_tower",
			Color:     mgl32.Vec4{0.2, 0.2, 0.2, 1},
			UVScale:   one,
		},
		{
			Name:      "mouse",
			Mesh:      mesh.Cylinder,
			Transform: place(mgl32.Vec3{0.3, 0.1, 0.4}, mgl32.Vec3{}, mgl32.Vec3{1.5, 0, 0.5}),
			Material:  "satin",
			Texture:   "mouse",
			Color:     mgl32.Vec4{0.3, 0.3, 0.3, 1},
			UVScale:   one,
		},
		{
			Name:      "pc tower",
			Mesh:      mesh.Box,
			Transform: place(mgl32.Vec3{1, 2.5, 1.5}, mgl32.Vec3{}, mgl32.Vec3{3, 1.26, -0.5}),
			Material:  "satin",
			Texture:   "pc_tower",
			Color:     mgl32.Vec4{0.2, 0.2, 0.2, 1},
			UVScale:   one,
		},
		{
			Name:      "power button",
			Mesh:      mesh.Torus,
			Transform: place(mgl32.Vec3{0.1, 0.1, 0.1}, mgl32.Vec3{}, mgl32.Vec3{2.7, 2, 0.25}),
			Material:  "green",
			Texture:   "mouse",
			Color:     mgl32.Vec4{0, 1, 0, 1},
			UVScale:   one,
		},
	}
}

// DeskTextures returns the images the desk scene samples.
func DeskTextures() []TextureAsset {
	return []TextureAsset{
		{Tag: "desk", File: "desk.jpg"},
		{Tag: "monitor", File: "monitor.jpg"},
		{Tag: "keyboard", File: "keyboard.jpg"},
		{Tag: "mouse", File: "mouse.jpg"},
		{Tag: "pc_tower", File: "pc_tower.jpg"},
	}
}

// DeskMaterials returns the desk scene's materials.
func DeskMaterials() []material.Material {
	return []material.Material{
		{
			Tag:             "satin",
			AmbientColor:    mgl32.Vec3{0.2, 0.2, 0.2},
			AmbientStrength: 0.3,
			DiffuseColor:    mgl32.Vec3{0.8, 0.8, 0.8},
			SpecularColor:   mgl32.Vec3{0.5, 0.5, 0.5},
			Shininess:       22,
		},
		{
			// Bright blue ambient makes the screen look backlit
			Tag:             "monitor",
			AmbientColor:    mgl32.Vec3{0.8, 0.8, 10},
			AmbientStrength: 1,
			DiffuseColor:    mgl32.Vec3{0.6, 0.6, 1},
			SpecularColor:   mgl32.Vec3{0.5, 0.5, 1},
			Shininess:       60,
		},
		{
			Tag:             "green",
			AmbientColor:    mgl32.Vec3{0, 3, 0},
			AmbientStrength: 1,
			DiffuseColor:    mgl32.Vec3{0, 3, 0},
			SpecularColor:   mgl32.Vec3{0, 3, 0},
			Shininess:       1,
		},
	}
}

// DeskLights returns an overhead light and the glow cast by the monitor.
func DeskLights() *lighting.Rig {
	rig := lighting.NewRig(mgl32.Vec3{0.09, 0.09, 0.06})
	rig.AddSource(lighting.Source{
		Position:          mgl32.Vec3{0, 7, 3},
		DiffuseColor:      mgl32.Vec3{1, 1, 1},
		SpecularColor:     mgl32.Vec3{1, 1, 1},
		FocalStrength:     64,
		SpecularIntensity: 0.15,
	})
	rig.AddSource(lighting.Source{
		Position:          mgl32.Vec3{0, 0.5, -1.3},
		Direction:         mgl32.Vec3{0, -0.5, 1},
		DiffuseColor:      mgl32.Vec3{0.5, 0.5, 5},
		SpecularColor:     mgl32.Vec3{0.5, 0.5, 1},
		FocalStrength:     16,
		SpecularIntensity: 0.01,
	})
	return rig
}
