// Package view assembles the scene for each rendered frame and submits it
// to the renderer.
//
// RenderView runs once per displayed frame: it clears the frame buffers,
// lets the entity builder and the flashlight populate them, applies the
// inclusion policy, derives the field of view, sorts entities and submits
// the result. When the current server frame is invalid the previous frame
// description is submitted again unchanged.
package view

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/q2view/internal/client"
	"github.com/Faultbox/q2view/internal/config"
	"github.com/Faultbox/q2view/internal/engine/asset"
	"github.com/Faultbox/q2view/internal/engine/camera"
	"github.com/Faultbox/q2view/internal/engine/picking"
	"github.com/Faultbox/q2view/internal/engine/renderer"
	"github.com/Faultbox/q2view/internal/engine/scene"
	"github.com/Faultbox/q2view/internal/logger"
	"github.com/Faultbox/q2view/pkg/math"
)

// viewJitter keeps the eye off exact node boundaries; the protocol only
// carries 1/8 unit precision.
const viewJitter = 1.0 / 16

// lightLevelScale converts a sampled light color to the level reported to the server.
const lightLevelScale = 150

// FlashlightProfileImage is the emission texture used by the textured flashlight.
const FlashlightProfileImage = "flashlight_profile"

// EntityBuilder populates the frame with interpolated entities and effects
// and stores the camera for this frame in cl.View.
type EntityBuilder interface {
	AddEntities(f *scene.Frame, cl *client.State)
}

// EntityBuilderFunc adapts a function to EntityBuilder.
type EntityBuilderFunc func(f *scene.Frame, cl *client.State)

// AddEntities calls fn.
func (fn EntityBuilderFunc) AddEntities(f *scene.Frame, cl *client.State) { fn(f, cl) }

// Options carries optional collaborators for New.
type Options struct {
	// Tracer answers world queries for the point-light flashlight.
	// Required unless the renderer is TypeRTX.
	Tracer picking.Tracer

	// Settings receives client settings that the server must know about.
	Settings client.SettingsSink

	// Overrides replaces the default debug scene overrides.
	Overrides []SceneOverride
}

// Assembler builds and submits one FrameDescriptor per rendered frame.
type Assembler struct {
	cfg      *config.Config
	cl       *client.State
	builder  EntityBuilder
	renderer renderer.Renderer
	settings client.SettingsSink
	log      *zap.Logger

	frame      *scene.Frame
	fd         scene.FrameDescriptor
	flashlight *Flashlight
	profile    asset.Handle
	overrides  []SceneOverride

	gunFrame int
	gunModel asset.Handle
}

// New creates an assembler. cfg is read on every frame, so changes made
// through it take effect on the next RenderView.
func New(cfg *config.Config, cl *client.State, r renderer.Renderer, b EntityBuilder, opts Options) (*Assembler, error) {
	if cfg == nil || cl == nil || r == nil || b == nil {
		return nil, errors.New("view: config, client state, renderer and entity builder are required")
	}

	a := &Assembler{
		cfg:      cfg,
		cl:       cl,
		builder:  b,
		renderer: r,
		settings: opts.Settings,
		log:      logger.Named("view"),
		frame:    scene.NewFrame(),
	}

	var emitter Emitter
	switch r.Type() {
	case renderer.TypeRTX:
		a.profile = r.RegisterImage(FlashlightProfileImage, renderer.ImagePermanent|renderer.ImageBilerp)
		emitter = &SpotEmitter{Config: &cfg.Flashlight, Texture: a.profile}
	default:
		if opts.Tracer == nil {
			return nil, fmt.Errorf("view: renderer %s needs a world tracer for the flashlight", r.Type())
		}
		emitter = &TracedEmitter{Config: &cfg.Flashlight, Tracer: opts.Tracer}
	}
	a.flashlight = NewFlashlight(&cfg.View, &cfg.Flashlight, emitter)

	a.overrides = opts.Overrides
	if a.overrides == nil {
		a.overrides = DebugOverrides(&cfg.Debug, r)
	}

	a.log.Info("view initialized",
		zap.Stringer("renderer", r.Type()),
		zap.Int("overrides", len(a.overrides)),
	)
	return a, nil
}

// Close releases renderer resources owned by the view.
func (a *Assembler) Close() {
	if a.profile != asset.None {
		a.renderer.UnregisterImage(a.profile)
		a.profile = asset.None
	}
}

// Frame returns the frame buffers, for callers that add entities, particles,
// lights and light styles.
func (a *Assembler) Frame() *scene.Frame { return a.frame }

// Flashlight returns the flashlight controller, for entities carrying the
// flashlight effect.
func (a *Assembler) Flashlight() *Flashlight { return a.flashlight }

// Descriptor returns the last successfully assembled frame description.
func (a *Assembler) Descriptor() *scene.FrameDescriptor { return &a.fd }

// SetBlend toggles screen blends and tells the server whether to send them.
func (a *Assembler) SetBlend(on bool) {
	a.cfg.View.Blend = on
	if a.settings == nil {
		return
	}
	noBlend := 0
	if !on {
		noBlend = 1
	}
	a.settings.SendSetting(client.SettingNoBlend, noBlend)
}

// RenderView assembles and submits the current frame. A bad field of view
// aborts the frame before anything is submitted and leaves the last good
// descriptor in place.
func (a *Assembler) RenderView() error {
	if a.cl.Frame.Valid {
		fd, err := a.assemble()
		if err != nil {
			return fmt.Errorf("render view: %w", err)
		}
		// detached from the frame buffers so an invalid frame can resubmit it
		a.fd = fd.Clone()
	}

	a.renderer.RenderFrame(&a.fd)

	if a.cfg.View.Stats {
		a.log.Info("frame stats",
			zap.Int("entities", len(a.fd.Entities)),
			zap.Int("lights", len(a.fd.Lights)),
			zap.Int("particles", len(a.fd.Particles)),
		)
	}

	a.setLightLevel()
	return nil
}

func (a *Assembler) assemble() (scene.FrameDescriptor, error) {
	var fd scene.FrameDescriptor
	f := a.frame
	cl := a.cl
	vc := &a.cfg.View

	fovX, fovY, err := camera.BaseFov(vc.FOV)
	if err != nil {
		return fd, err
	}

	f.Clear()
	f.ShowLights = vc.ShowLights
	cl.View.FovX, cl.View.FovY = fovX, fovY

	a.builder.AddEntities(f, cl)

	fd.ViewOrigin = cl.View.Origin
	fd.ViewAngles = cl.View.Angles
	fd.Blend = cl.View.Blend

	for _, o := range a.overrides {
		o.Override(f, &fd, cl)
	}

	if a.cfg.Flashlight.Enabled && !a.playerHasFlashlight() {
		a.flashlight.Add(f, cl, nil, nil)
	}

	fd.ViewOrigin = fd.ViewOrigin.Add(math.Vec3{viewJitter, viewJitter, viewJitter})

	fd.Viewport = cl.Screen
	width, height := float32(fd.Viewport.Width), float32(fd.Viewport.Height)
	if vc.AdjustFOV {
		fd.FovY = cl.View.FovY
		fd.FovX, err = camera.CalcFov(fd.FovY, height, width)
	} else {
		fd.FovX = cl.View.FovX
		fd.FovY, err = camera.CalcFov(fd.FovX, width, height)
	}
	if err != nil {
		return fd, err
	}

	fd.Time = float32(cl.Time) * 0.001

	if len(cl.Frame.AreaBits) > 0 {
		fd.AreaBits = cl.Frame.AreaBits
	}

	if !vc.Entities {
		f.DropEntities()
	}
	if !vc.Particles {
		f.DropParticles()
	}
	if !vc.Lights {
		f.DropLights()
	}
	if !vc.Blend {
		fd.Blend = [4]float32{}
	}

	fd.RDFlags = cl.Frame.PS.RDFlags
	fd.Attach(f)

	scene.SortEntities(fd.Entities)
	return fd, nil
}

func (a *Assembler) playerHasFlashlight() bool {
	rec := a.cl.Entity(a.cl.PlayerEntityNum())
	return rec != nil && rec.Current.MoreFX&client.EffectFlashlight != 0
}

// setLightLevel samples the lighting at the eye and keeps the brightest
// channel for the server.
func (a *Assembler) setLightLevel() {
	shade := a.renderer.LightPoint(a.fd.ViewOrigin)
	a.cl.LightLevel = lightLevelScale * math.MaxComponent(shade)
}
