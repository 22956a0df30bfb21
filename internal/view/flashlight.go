package view

import (
	"github.com/Faultbox/q2view/internal/client"
	"github.com/Faultbox/q2view/internal/config"
	"github.com/Faultbox/q2view/internal/engine/asset"
	"github.com/Faultbox/q2view/internal/engine/picking"
	"github.com/Faultbox/q2view/internal/engine/scene"
	"github.com/Faultbox/q2view/pkg/math"
)

// flashlightWidth is the angle from the axis to the edge of the textured
// flashlight cone, in degrees.
const flashlightWidth = 90

// Pose is where a flashlight sits and which way it points.
type Pose struct {
	Origin  math.Vec3
	Forward math.Vec3
	Right   math.Vec3
	Up      math.Vec3
}

// Emitter turns a flashlight pose into one light in the frame.
type Emitter interface {
	// Emit adds the light. owner holds per-entity smoothing state and may be nil.
	Emit(f *scene.Frame, cl *client.State, pose Pose, owner *client.Entity)
}

// Flashlight places a flashlight on the local player or on another entity
// and hands it to the renderer-specific emitter.
type Flashlight struct {
	view    *config.ViewConfig
	cfg     *config.FlashlightConfig
	emitter Emitter
}

// NewFlashlight creates a flashlight controller. The configs are read on
// every call.
func NewFlashlight(view *config.ViewConfig, cfg *config.FlashlightConfig, emitter Emitter) *Flashlight {
	return &Flashlight{view: view, cfg: cfg, emitter: emitter}
}

// Add emits a flashlight for ent, or for the local player when ent is nil
// or state names the player entity.
func (fl *Flashlight) Add(f *scene.Frame, cl *client.State, ent *scene.Entity, state *client.EntityState) {
	pose := fl.Pose(cl, ent, state)

	num := cl.PlayerEntityNum()
	if state != nil {
		num = state.Number
	}
	fl.emitter.Emit(f, cl, pose, cl.Entity(num))
}

// Pose resolves the flashlight position and basis.
func (fl *Flashlight) Pose(cl *client.State, ent *scene.Entity, state *client.EntityState) Pose {
	if ent == nil || state == nil || state.Number == cl.PlayerEntityNum() {
		return fl.playerPose(cl)
	}

	var p Pose
	p.Origin = ent.Origin
	p.Forward, p.Right, p.Up = math.AngleVectors(ent.Angles)
	return p
}

// playerPose follows the predicted view and gun kick, then moves the light
// to where the gun is held.
func (fl *Flashlight) playerPose(cl *client.State) Pose {
	ps, ops := &cl.Frame.PS, &cl.OldFrame.PS
	lerp := cl.LerpFrac

	var angles math.Vec3
	if cl.DemoPlayback {
		angles = math.LerpAngles(ops.ViewAngles, ps.ViewAngles, lerp)
	} else {
		angles = cl.PredictedAngles
	}
	angles = angles.Add(math.LerpVec3(ops.GunAngles, ps.GunAngles, lerp))

	var p Pose
	p.Forward, p.Right, p.Up = math.AngleVectors(angles)

	viewOffset := math.LerpVec3(ops.ViewOffset, ps.ViewOffset, lerp)
	p.Origin = cl.PlayerEntityOrigin.Add(viewOffset)

	scale := fl.view.GunScale
	off := fl.cfg.Offset

	lateral := off[0] * scale
	switch fl.view.Hand {
	case config.HandLeft:
		lateral = -lateral
	case config.HandCenter:
		lateral = 0
	}

	p.Origin = math.MA(p.Origin, off[2]*scale, p.Forward)
	p.Origin = math.MA(p.Origin, lateral, p.Right)
	p.Origin = math.MA(p.Origin, off[1]*scale, p.Up)
	return p
}

// SpotEmitter emits a textured spot light.
type SpotEmitter struct {
	Config  *config.FlashlightConfig
	Texture asset.Handle
}

// Emit adds a white spot light along the pose's forward axis.
func (e *SpotEmitter) Emit(f *scene.Frame, _ *client.State, pose Pose, _ *client.Entity) {
	f.AddSpotLightTextured(pose.Origin, pose.Forward, e.Config.Intensity, 1, 1, 1, flashlightWidth, e.Texture)
}

// TracedEmitter approximates a flashlight with a point light placed along
// a world trace. The light slides toward the trace endpoint over time so it
// does not jump when the hit distance changes abruptly.
type TracedEmitter struct {
	Config *config.FlashlightConfig
	Tracer picking.Tracer
}

// Emit traces from the pose, places the light at the owner's smoothed
// fraction, then advances the smoothing toward the new hit.
func (e *TracedEmitter) Emit(f *scene.Frame, cl *client.State, pose Pose, owner *client.Entity) {
	cfg := e.Config
	end := math.MA(pose.Origin, cfg.TraceDistance, pose.Forward)
	tr := e.Tracer.Trace(pose.Origin, end, picking.MaskSolidMonster)

	frac := tr.Fraction
	if owner != nil {
		frac = owner.FlashlightFrac
	}

	f.AddSphereLight(math.LerpVec3(pose.Origin, end, frac), cfg.FallbackIntensity, 1, 1, 1, cfg.FallbackRadius)

	if owner != nil {
		client.AdvanceValue(&owner.FlashlightFrac, tr.Fraction, cfg.SmoothingSpeed, cl.FrameTime)
	}
}
