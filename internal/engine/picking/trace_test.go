package picking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/q2view/pkg/math"
)

func TestTraceMiss(t *testing.T) {
	w := NewBoxWorld()
	w.Add(NewAABB(math.Vec3{100, -10, -10}, math.Vec3{120, 10, 10}), ContentsSolid)

	tr := w.Trace(math.Vec3{}, math.Vec3{0, 256, 0}, MaskSolidMonster)
	assert.Equal(t, float32(1), tr.Fraction)
	assert.Equal(t, math.Vec3{0, 256, 0}, tr.EndPos)
	assert.False(t, tr.StartSolid)
}

func TestTraceHitsNearest(t *testing.T) {
	w := NewBoxWorld(
		Brush{Bounds: NewAABB(math.Vec3{192, -10, -10}, math.Vec3{200, 10, 10}), Contents: ContentsSolid},
		Brush{Bounds: NewAABB(math.Vec3{128, -10, -10}, math.Vec3{140, 10, 10}), Contents: ContentsMonster},
	)

	tr := w.Trace(math.Vec3{}, math.Vec3{256, 0, 0}, MaskSolidMonster)
	assert.InDelta(t, 0.5, tr.Fraction, 1e-6)
	assert.InDelta(t, 128, tr.EndPos[0], 1e-4)
	assert.Equal(t, ContentsMonster, tr.Contents)
	assert.InDelta(t, 128, tr.Distance(math.Vec3{}, math.Vec3{256, 0, 0}), 1e-4)
}

func TestTraceRespectsMask(t *testing.T) {
	w := NewBoxWorld()
	w.Add(NewAABB(math.Vec3{64, -10, -10}, math.Vec3{70, 10, 10}), ContentsWater)

	tr := w.Trace(math.Vec3{}, math.Vec3{256, 0, 0}, MaskSolidMonster)
	assert.Equal(t, float32(1), tr.Fraction)

	tr = w.Trace(math.Vec3{}, math.Vec3{256, 0, 0}, ContentsWater)
	assert.InDelta(t, 0.25, tr.Fraction, 1e-6)
}

func TestTraceStartSolid(t *testing.T) {
	w := NewBoxWorld()
	w.Add(NewAABB(math.Vec3{-10, -10, -10}, math.Vec3{10, 10, 10}), ContentsSolid)

	tr := w.Trace(math.Vec3{}, math.Vec3{256, 0, 0}, MaskSolidMonster)
	assert.True(t, tr.StartSolid)
	assert.Zero(t, tr.Fraction)
	assert.Equal(t, math.Vec3{}, tr.EndPos)
}

func TestRoom(t *testing.T) {
	interior := NewAABB(math.Vec3{-256, -256, 0}, math.Vec3{256, 256, 128})
	w := NewBoxWorld(Room(interior, 16)...)
	require.Len(t, w.Brushes, 6)

	start := math.Vec3{0, 0, 64}
	tr := w.Trace(start, math.Vec3{512, 0, 64}, MaskSolidMonster)
	assert.False(t, tr.StartSolid)
	assert.InDelta(t, 0.5, tr.Fraction, 1e-6)

	tr = w.Trace(start, math.Vec3{0, 0, -256}, MaskSolidMonster)
	assert.InDelta(t, 0.2, tr.Fraction, 1e-6)
}

func TestNewAABBOrdersCorners(t *testing.T) {
	b := NewAABB(math.Vec3{1, -1, 5}, math.Vec3{-1, 1, 2})
	assert.Equal(t, math.Vec3{-1, -1, 2}, b.Min)
	assert.Equal(t, math.Vec3{1, 1, 5}, b.Max)
}
