package renderer

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/q2view/internal/engine/debug"
	"github.com/Faultbox/q2view/internal/engine/scene"
	"github.com/Faultbox/q2view/pkg/math"
)

func TestParseType(t *testing.T) {
	typ, err := ParseType("rtx")
	require.NoError(t, err)
	assert.Equal(t, TypeRTX, typ)
	assert.Equal(t, "rtx", typ.String())

	typ, err = ParseType("gl")
	require.NoError(t, err)
	assert.Equal(t, TypeGL, typ)

	_, err = ParseType("soft")
	assert.Error(t, err)
	assert.Equal(t, "Type(9)", Type(9).String())
}

func TestHeadlessRecordsDeepCopy(t *testing.T) {
	h := NewHeadless(TypeGL)
	f := scene.NewFrame()
	f.AddEntity(scene.Entity{ID: 5})

	var fd scene.FrameDescriptor
	fd.Attach(f)
	fd.FovX = 90
	h.RenderFrame(&fd)

	f.Clear()
	f.AddEntity(scene.Entity{ID: 6})

	last := h.Last()
	require.Len(t, last.Entities, 1)
	assert.Equal(t, int32(5), last.Entities[0].ID)
	assert.Equal(t, float32(90), last.FovX)
	assert.Equal(t, 1, h.Frames())
}

func TestHeadlessLightPoint(t *testing.T) {
	h := NewHeadless(TypeGL, WithAmbient(func(math.Vec3) math.Vec3 { return math.Vec3{0.1, 0.1, 0.1} }))
	assert.Equal(t, math.Vec3{0.1, 0.1, 0.1}, h.LightPoint(math.Vec3{}))

	f := scene.NewFrame()
	f.AddLight(math.Vec3{64, 0, 0}, 320, 1, 0, 0)
	f.AddLight(math.Vec3{1000, 0, 0}, 100, 0, 1, 0) // out of reach
	var fd scene.FrameDescriptor
	fd.Attach(f)
	h.RenderFrame(&fd)

	got := h.LightPoint(math.Vec3{})
	assert.InDelta(t, 0.1+1.0, got[0], 1e-5)
	assert.InDelta(t, 0.1, got[1], 1e-5)
}

func TestHeadlessAssets(t *testing.T) {
	h := NewHeadless(TypeRTX)
	img := h.RegisterImage("flashlight_profile", ImagePermanent|ImageBilerp)
	assert.Equal(t, img, h.RegisterImage("flashlight_profile", 0))
	assert.Equal(t, 1, h.Assets().Len())

	mdl := h.RegisterModel("models/weapons/v_shotg/tris.md2")
	assert.NotEqual(t, img, mdl)

	h.UnregisterImage(img)
	assert.Equal(t, 1, h.Assets().Len())
}

func TestHeadlessDebugPointsPerFrame(t *testing.T) {
	h := NewHeadless(TypeGL)
	h.AddDebugPoint(math.Vec3{1, 2, 3}, 16, ColorRed, 0, true)
	h.AddDebugText(math.Vec3{1, 2, 19}, "7", 0.5, ColorRed, 0, true)

	var fd scene.FrameDescriptor
	h.RenderFrame(&fd)
	assert.Len(t, h.LastDebugPoints(), 2)
	assert.Equal(t, "7", h.LastDebugPoints()[1].Label)

	h.RenderFrame(&fd)
	assert.Empty(t, h.LastDebugPoints())
}

func TestHeadlessSnapshots(t *testing.T) {
	dir := t.TempDir()
	h := NewHeadless(TypeGL, WithSnapshots(debug.NewCapture(dir, "frame"), 2, 64, 48))

	var fd scene.FrameDescriptor
	fd.FovY = 74
	for i := 0; i < 5; i++ {
		h.RenderFrame(&fd)
	}

	require.Len(t, h.Snapshots(), 2)
	for _, p := range h.Snapshots() {
		_, err := os.Stat(p)
		assert.NoError(t, err)
	}
}
