package math

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"
)

// DegToRad converts degrees to radians.
func DegToRad(deg float32) float32 {
	return mgl32.DegToRad(deg)
}

// AngleVectors returns the forward, right and up basis for a pitch/yaw/roll triple.
func AngleVectors(angles Vec3) (forward, right, up Vec3) {
	sy, cy := sincos(angles[Yaw])
	sp, cp := sincos(angles[Pitch])
	sr, cr := sincos(angles[Roll])

	forward = Vec3{cp * cy, cp * sy, -sp}
	right = Vec3{
		-sr*sp*cy + cr*sy,
		-sr*sp*sy - cr*cy,
		-sr * cp,
	}
	up = Vec3{
		cr*sp*cy + sr*sy,
		cr*sp*sy - sr*cy,
		cr * cp,
	}
	return forward, right, up
}

func sincos(deg float32) (s, c float32) {
	sf, cf := gomath.Sincos(float64(DegToRad(deg)))
	return float32(sf), float32(cf)
}

// LerpAngle interpolates from a2 to a1 by frac along the shorter arc.
func LerpAngle(a2, a1, frac float32) float32 {
	if a1-a2 > 180 {
		a1 -= 360
	}
	if a1-a2 < -180 {
		a1 += 360
	}
	return a2 + frac*(a1-a2)
}

// LerpAngles applies LerpAngle to each component.
func LerpAngles(from, to Vec3, frac float32) Vec3 {
	return Vec3{
		LerpAngle(from[0], to[0], frac),
		LerpAngle(from[1], to[1], frac),
		LerpAngle(from[2], to[2], frac),
	}
}
