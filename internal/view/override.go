package view

import (
	"strconv"

	"github.com/Faultbox/q2view/internal/client"
	"github.com/Faultbox/q2view/internal/config"
	"github.com/Faultbox/q2view/internal/engine/lighting"
	"github.com/Faultbox/q2view/internal/engine/renderer"
	"github.com/Faultbox/q2view/internal/engine/scene"
	"github.com/Faultbox/q2view/pkg/math"
)

// SceneOverride modifies the populated frame before the flashlight and the
// inclusion policy run. Overrides see the unjittered view origin.
type SceneOverride interface {
	Override(f *scene.Frame, fd *scene.FrameDescriptor, cl *client.State)
}

// SceneOverrideFunc adapts a function to SceneOverride.
type SceneOverrideFunc func(f *scene.Frame, fd *scene.FrameDescriptor, cl *client.State)

// Override calls fn.
func (fn SceneOverrideFunc) Override(f *scene.Frame, fd *scene.FrameDescriptor, cl *client.State) {
	fn(f, fd, cl)
}

// Stress-test layout.
const (
	testEntityCount = 32
	testLightCount  = 32
	testLightRadius = 16
	debugPointSize  = 16
	debugTextSize   = 0.5
	debugTextRaise  = 16
)

var debugColors = [...]uint32{
	renderer.ColorRed,
	renderer.ColorGreen,
	renderer.ColorBlue,
	renderer.ColorYellow,
	renderer.ColorMagenta,
	renderer.ColorCyan,
}

// DebugOverrides returns the stress-test overrides driven by cfg. Each one
// checks its switch on every frame. Debug points are only available when r
// implements renderer.DebugDrawer.
func DebugOverrides(cfg *config.DebugConfig, r renderer.Renderer) []SceneOverride {
	list := []SceneOverride{
		&testParticles{cfg: cfg},
		&testEntities{cfg: cfg},
		&testLights{cfg: cfg},
		&testBlend{cfg: cfg},
	}
	if dd, ok := r.(renderer.DebugDrawer); ok {
		list = append(list, &DebugPoints{cfg: cfg, drawer: dd})
	}
	return list
}

// testParticles replaces every particle with a block in front of the viewer.
type testParticles struct{ cfg *config.DebugConfig }

func (o *testParticles) Override(f *scene.Frame, fd *scene.FrameDescriptor, cl *client.State) {
	if !o.cfg.TestParticles {
		return
	}
	v := &cl.View
	ps := f.ResetParticles(scene.MaxParticles)
	for i := range ps {
		d := float32(i) * 0.25
		r := 4 * (float32(i&7) - 3.5)
		u := 4 * (float32((i>>3)&7) - 3.5)

		p := &ps[i]
		p.Origin = math.MA(fd.ViewOrigin, d, v.Forward)
		p.Origin = math.MA(p.Origin, r, v.Right)
		p.Origin = math.MA(p.Origin, u, v.Up)
		p.Color = 8
		p.Alpha = 1
	}
}

// testEntities replaces every entity with rows of player models.
type testEntities struct{ cfg *config.DebugConfig }

func (o *testEntities) Override(f *scene.Frame, fd *scene.FrameDescriptor, cl *client.State) {
	if !o.cfg.TestEntities {
		return
	}
	v := &cl.View
	ents := f.ResetEntities(testEntityCount)
	for i := range ents {
		r := 64 * (float32(i%4) - 1.5)
		fw := float32(64*(i/4) + 128)

		e := &ents[i]
		e.Origin = math.MA(fd.ViewOrigin, fw, v.Forward)
		e.Origin = math.MA(e.Origin, r, v.Right)
		e.OldOrigin = e.Origin
		e.Model = cl.BaseClientInfo.Model
		e.Skin = cl.BaseClientInfo.Skin
	}
}

// testLights replaces every light with a single light ahead of the viewer,
// or with a colored grid when the mode is 1. The lights are written straight
// into the light buffer and never get marker particles.
type testLights struct{ cfg *config.DebugConfig }

func (o *testLights) Override(f *scene.Frame, fd *scene.FrameDescriptor, cl *client.State) {
	mode := o.cfg.TestLights
	if mode == 0 {
		return
	}
	v := &cl.View

	if mode != 1 {
		c := float32(1)
		if mode == -1 {
			c = -1
		}
		ls := f.ResetLights(1)
		ls[0] = testLight(math.MA(fd.ViewOrigin, 256, v.Forward), math.Vec3{c, c, c}, 256)
		return
	}

	ls := f.ResetLights(testLightCount)
	for i := range ls {
		r := 64 * (float32(i%4) - 1.5)
		fw := float32(64*(i/4) + 128)
		origin := math.MA(fd.ViewOrigin, fw, v.Forward)
		origin = math.MA(origin, r, v.Right)

		bits := (i % 6) + 1
		color := math.Vec3{
			float32(bits & 1),
			float32((bits & 2) >> 1),
			float32((bits & 4) >> 2),
		}
		ls[i] = testLight(origin, color, 200)
	}
}

func testLight(origin, color math.Vec3, intensity float32) lighting.Light {
	return lighting.PointLight{Common: lighting.Common{
		Origin:    origin,
		Color:     color,
		Intensity: intensity,
		Radius:    testLightRadius,
	}}
}

// testBlend forces a fixed screen tint.
type testBlend struct{ cfg *config.DebugConfig }

func (o *testBlend) Override(_ *scene.Frame, fd *scene.FrameDescriptor, _ *client.State) {
	if o.cfg.TestBlend {
		fd.Blend = [4]float32{1, 0.5, 0.25, 0.5}
	}
}

// DebugPoints marks every entity except the view weapon with a colored
// point. Modes 1 and 3 depth test the points; modes 3 and above also label
// each point with the entity id.
type DebugPoints struct {
	cfg    *config.DebugConfig
	drawer renderer.DebugDrawer
}

// Override queues debug primitives for the frame's entities.
func (o *DebugPoints) Override(f *scene.Frame, _ *scene.FrameDescriptor, _ *client.State) {
	mode := o.cfg.TestDebugLines
	if mode <= 0 {
		return
	}
	depthTest := mode == 1 || mode == 3
	printID := mode >= 3

	for _, e := range f.Entities() {
		if e.ID == scene.GunEntityID {
			continue
		}
		color := debugColors[uint32(e.ID)%uint32(len(debugColors))]
		o.drawer.AddDebugPoint(e.Origin, debugPointSize, color, 0, depthTest)
		if printID {
			pos := e.Origin
			pos[2] += debugTextRaise
			o.drawer.AddDebugText(pos, strconv.Itoa(int(e.ID)), debugTextSize, color, 0, depthTest)
		}
	}
}
