// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// SceneVertexShader transforms lit, textured scene geometry.
//
//go:embed scene.vert
var SceneVertexShader string

// SceneFragmentShader shades scene geometry with a material, an optional
// texture and the light rig.
//
//go:embed scene.frag
var SceneFragmentShader string
