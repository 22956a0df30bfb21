// Package math provides the vector and angle helpers shared by the view code.
//
// Vectors are mgl32 vectors laid out in Quake world space: X forward, Y left, Z up.
// Angles are Euler triples in degrees indexed by Pitch, Yaw and Roll.
package math

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Vec3 is a 3D vector.
type Vec3 = mgl32.Vec3

// Angle indices into an Euler angle triple.
const (
	Pitch = 0
	Yaw   = 1
	Roll  = 2
)

// Origin is the zero vector.
var Origin = Vec3{}

// MA returns v + dir*scale.
func MA(v Vec3, scale float32, dir Vec3) Vec3 {
	return Vec3{
		v[0] + scale*dir[0],
		v[1] + scale*dir[1],
		v[2] + scale*dir[2],
	}
}

// LerpVec3 interpolates between a and b by frac.
func LerpVec3(a, b Vec3, frac float32) Vec3 {
	return Vec3{
		a[0] + frac*(b[0]-a[0]),
		a[1] + frac*(b[1]-a[1]),
		a[2] + frac*(b[2]-a[2]),
	}
}

// MaxComponent returns the largest of the three components.
func MaxComponent(v Vec3) float32 {
	m := v[0]
	if v[1] > m {
		m = v[1]
	}
	if v[2] > m {
		m = v[2]
	}
	return m
}

// Clamp limits x to [lo, hi].
func Clamp(x, lo, hi float32) float32 {
	return mgl32.Clamp(x, lo, hi)
}
