// Package transform builds the per-instance model-view-projection matrices.
package transform

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Projection parameters shared by every frame.
const (
	FieldOfView = math32.Pi / 3
	Near        = 0.1
	Far         = 100.0
)

// Instance places one copy of a mesh in the world.
type Instance struct {
	Position mgl32.Vec3
	Scale    mgl32.Vec3
	// RotationY is the rotation about the vertical axis, in degrees.
	RotationY float32
}

// Model returns translate * scale * rotateY for in. The order is fixed: the rotation
// is applied to the mesh first, then the scale, then the translation.
func Model(in Instance) mgl32.Mat4 {
	m := mgl32.Ident4()
	m = m.Mul4(mgl32.Translate3D(in.Position.X(), in.Position.Y(), in.Position.Z()))
	m = m.Mul4(mgl32.Scale3D(in.Scale.X(), in.Scale.Y(), in.Scale.Z()))
	m = m.Mul4(RotateY(in.RotationY))
	return m
}

// RotateY returns the homogeneous rotation by degrees about the Y axis.
func RotateY(degrees float32) mgl32.Mat4 {
	sin, cos := math32.Sincos(degrees * math32.Pi / 180)
	return mgl32.Mat4{
		cos, 0, -sin, 0,
		0, 1, 0, 0,
		sin, 0, cos, 0,
		0, 0, 0, 1,
	}
}

// ModelViewProjection returns projection * Model(in).
func ModelViewProjection(in Instance, projection mgl32.Mat4) mgl32.Mat4 {
	return projection.Mul4(Model(in))
}

// Aspect returns width/height, or 1 for a surface without area.
func Aspect(width, height int) float32 {
	if width <= 0 || height <= 0 {
		return 1
	}
	return float32(width) / float32(height)
}

// Projection returns the perspective matrix for a surface of the given pixel size.
func Projection(width, height int) mgl32.Mat4 {
	return mgl32.Perspective(FieldOfView, Aspect(width, height), Near, Far)
}
