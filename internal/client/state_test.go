package client

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Faultbox/q2view/pkg/math"
)

func TestAdvanceValue(t *testing.T) {
	tests := []struct {
		name        string
		val, target float32
		speed, dt   float32
		want        float32
	}{
		{"up", 0, 1, 1, 0.25, 0.25},
		{"up clamps", 0.9, 1, 1, 0.25, 1},
		{"down", 1, 0, 2, 0.25, 0.5},
		{"down clamps", 0.1, 0, 1, 0.5, 0},
		{"at target", 0.5, 0.5, 1, 1, 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := tt.val
			AdvanceValue(&v, tt.target, tt.speed, tt.dt)
			assert.InDelta(t, tt.want, v, 1e-6)
		})
	}
}

func TestAdvanceValueConverges(t *testing.T) {
	v := float32(0)
	prev := v
	for i := 0; i < 100; i++ {
		AdvanceValue(&v, 0.5, 1, 1.0/60)
		assert.GreaterOrEqual(t, v, prev)
		assert.LessOrEqual(t, v, float32(0.5))
		prev = v
	}
	assert.Equal(t, float32(0.5), v)
}

func TestStateEntityLookup(t *testing.T) {
	s := NewState(8)
	s.Frame.ClientNum = 2

	assert.Equal(t, 3, s.PlayerEntityNum())
	assert.NotNil(t, s.Entity(3))
	assert.Nil(t, s.Entity(8))
	assert.Nil(t, s.Entity(-1))
}

func TestSetView(t *testing.T) {
	s := NewState(1)
	s.SetView(math.Vec3{1, 2, 3}, math.Vec3{0, 90, 0})

	assert.Equal(t, math.Vec3{1, 2, 3}, s.View.Origin)
	assert.InDelta(t, 1, s.View.Forward[1], 1e-6)
	assert.InDelta(t, 1, s.View.Up[2], 1e-6)
}
