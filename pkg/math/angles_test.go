package math

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const eps = 1e-5

func assertVecNear(t *testing.T, want, got Vec3) {
	t.Helper()
	for i := 0; i < 3; i++ {
		assert.InDelta(t, want[i], got[i], eps, "component %d of %v", i, got)
	}
}

func TestAngleVectorsIdentity(t *testing.T) {
	f, r, u := AngleVectors(Vec3{})
	assertVecNear(t, Vec3{1, 0, 0}, f)
	assertVecNear(t, Vec3{0, -1, 0}, r)
	assertVecNear(t, Vec3{0, 0, 1}, u)
}

func TestAngleVectorsYaw(t *testing.T) {
	f, r, _ := AngleVectors(Vec3{0, 90, 0})
	assertVecNear(t, Vec3{0, 1, 0}, f)
	assertVecNear(t, Vec3{1, 0, 0}, r)
}

func TestAngleVectorsPitchDown(t *testing.T) {
	// positive pitch looks down
	f, _, u := AngleVectors(Vec3{90, 0, 0})
	assertVecNear(t, Vec3{0, 0, -1}, f)
	assertVecNear(t, Vec3{1, 0, 0}, u)
}

func TestAngleVectorsOrthonormal(t *testing.T) {
	for _, angles := range []Vec3{
		{10, 20, 30},
		{-45, 170, 5},
		{89, -90, 0},
	} {
		f, r, u := AngleVectors(angles)
		assert.InDelta(t, 1, f.Len(), eps)
		assert.InDelta(t, 1, r.Len(), eps)
		assert.InDelta(t, 1, u.Len(), eps)
		assert.InDelta(t, 0, f.Dot(r), eps)
		assert.InDelta(t, 0, f.Dot(u), eps)
		assert.InDelta(t, 0, r.Dot(u), eps)
	}
}

func TestLerpAngleWraps(t *testing.T) {
	tests := []struct {
		name     string
		from, to float32
		frac     float32
		want     float32
	}{
		{"plain", 10, 20, 0.5, 15},
		{"across zero forward", 350, 10, 0.5, 360},
		{"across zero backward", 10, 350, 0.5, 0},
		{"start", 350, 10, 0, 350},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, LerpAngle(tt.from, tt.to, tt.frac), eps)
		})
	}
}

func TestLerpAngles(t *testing.T) {
	got := LerpAngles(Vec3{0, 350, 0}, Vec3{10, 10, 0}, 0.5)
	assertVecNear(t, Vec3{5, 360, 0}, got)
}
