// Package transform builds model matrices from scale, rotation and translation.
package transform

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Transform describes where a unit mesh ends up in the world.
// Rotation holds degrees about the world X, Y and Z axes.
type Transform struct {
	Scale    mgl32.Vec3
	Rotation mgl32.Vec3
	Position mgl32.Vec3
}

// Identity returns a transform that leaves the mesh unchanged.
func Identity() Transform {
	return Transform{Scale: mgl32.Vec3{1, 1, 1}}
}

// Matrix returns the model matrix for t.
func (t Transform) Matrix() mgl32.Mat4 {
	return Compose(t.Scale, t.Rotation[0], t.Rotation[1], t.Rotation[2], t.Position)
}

// Compose returns T * Rz * Ry * Rx * S: scale first, then rotate about X, Y and Z
// in that order, then translate. Angles are in degrees.
func Compose(scale mgl32.Vec3, rotX, rotY, rotZ float32, position mgl32.Vec3) mgl32.Mat4 {
	s := mgl32.Scale3D(scale.X(), scale.Y(), scale.Z())
	rx := mgl32.HomogRotate3DX(mgl32.DegToRad(rotX))
	ry := mgl32.HomogRotate3DY(mgl32.DegToRad(rotY))
	rz := mgl32.HomogRotate3DZ(mgl32.DegToRad(rotZ))
	t := mgl32.Translate3D(position.X(), position.Y(), position.Z())

	return t.Mul4(rz).Mul4(ry).Mul4(rx).Mul4(s)
}
