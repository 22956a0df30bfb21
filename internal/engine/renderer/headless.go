package renderer

import (
	"go.uber.org/zap"

	"github.com/Faultbox/q2view/internal/engine/asset"
	"github.com/Faultbox/q2view/internal/engine/debug"
	"github.com/Faultbox/q2view/internal/engine/scene"
	"github.com/Faultbox/q2view/internal/logger"
	"github.com/Faultbox/q2view/pkg/math"
)

// DefaultAmbient is the light level LightPoint reports with no dynamic lights.
var DefaultAmbient = math.Vec3{0.2, 0.2, 0.2}

var (
	_ Renderer    = (*Headless)(nil)
	_ DebugDrawer = (*Headless)(nil)
)

// Headless is a Renderer that records submitted frames instead of drawing
// them. It can optionally write a labelled PNG snapshot every N frames.
type Headless struct {
	typ    Type
	assets *asset.Registry
	log    *zap.Logger

	ambient func(p math.Vec3) math.Vec3

	frames     int
	last       scene.FrameDescriptor
	pending    []debug.Point
	lastPoints []debug.Point

	capture       *debug.Capture
	snapshot      debug.Snapshot
	snapshotEvery int
	snapshots     []string
}

// Option configures a Headless renderer.
type Option func(*Headless)

// WithAmbient overrides the static lighting term returned by LightPoint.
func WithAmbient(fn func(p math.Vec3) math.Vec3) Option {
	return func(h *Headless) { h.ambient = fn }
}

// WithSnapshots writes a width x height PNG to c every n frames.
func WithSnapshots(c *debug.Capture, every, width, height int) Option {
	return func(h *Headless) {
		h.capture = c
		h.snapshotEvery = every
		h.snapshot = debug.Snapshot{Width: width, Height: height}
	}
}

// NewHeadless creates a recording renderer of the given type.
func NewHeadless(t Type, opts ...Option) *Headless {
	h := &Headless{
		typ:     t,
		assets:  asset.NewRegistry(),
		log:     logger.Named("renderer"),
		ambient: func(math.Vec3) math.Vec3 { return DefaultAmbient },
	}
	for _, opt := range opts {
		opt(h)
	}
	h.log.Info("headless renderer ready", zap.Stringer("type", t))
	return h
}

// Type returns the renderer type.
func (h *Headless) Type() Type { return h.typ }

// RenderFrame records a deep copy of fd.
func (h *Headless) RenderFrame(fd *scene.FrameDescriptor) {
	h.frames++
	h.last = fd.Clone()
	h.lastPoints, h.pending = h.pending, nil

	h.log.Debug("frame",
		zap.Int("frame", h.frames),
		zap.Int("entities", len(fd.Entities)),
		zap.Int("particles", len(fd.Particles)),
		zap.Int("lights", len(fd.Lights)),
		zap.Float32("fov_x", fd.FovX),
		zap.Float32("fov_y", fd.FovY),
	)

	if h.capture != nil && h.snapshotEvery > 0 && h.frames%h.snapshotEvery == 0 {
		img := h.snapshot.Draw(&h.last, h.lastPoints)
		path, err := h.capture.Write(img, h.frames)
		if err != nil {
			h.log.Warn("snapshot failed", zap.Error(err))
			return
		}
		h.snapshots = append(h.snapshots, path)
	}
}

// LightPoint returns the ambient term plus the contribution of every light
// in the last submitted frame: (intensity - distance) / 256 scaled by color.
func (h *Headless) LightPoint(p math.Vec3) math.Vec3 {
	c := h.ambient(p)
	for _, l := range h.last.Lights {
		b := l.Base()
		add := (b.Intensity - b.Origin.Sub(p).Len()) / 256
		if add > 0 {
			c = math.MA(c, add, b.Color)
		}
	}
	return c
}

// RegisterImage registers an image by name.
func (h *Headless) RegisterImage(name string, _ ImageFlags) asset.Handle {
	return h.assets.Register(asset.KindImage, name)
}

// UnregisterImage releases an image handle.
func (h *Headless) UnregisterImage(handle asset.Handle) {
	h.assets.Unregister(handle)
}

// RegisterModel registers a model by name.
func (h *Headless) RegisterModel(name string) asset.Handle {
	return h.assets.Register(asset.KindModel, name)
}

// AddDebugPoint queues a point for the next frame.
func (h *Headless) AddDebugPoint(p math.Vec3, size float32, color uint32, _ float32, _ bool) {
	h.pending = append(h.pending, debug.Point{Origin: p, Size: size, Color: color})
}

// AddDebugText queues a label for the next frame.
func (h *Headless) AddDebugText(p math.Vec3, text string, size float32, color uint32, _ float32, _ bool) {
	h.pending = append(h.pending, debug.Point{Origin: p, Size: size, Color: color, Label: text})
}

// Frames returns the number of frames rendered so far.
func (h *Headless) Frames() int { return h.frames }

// Last returns a copy of the most recently rendered frame.
func (h *Headless) Last() scene.FrameDescriptor { return h.last }

// LastDebugPoints returns the debug primitives drawn with the last frame.
func (h *Headless) LastDebugPoints() []debug.Point { return h.lastPoints }

// Assets returns the registration table.
func (h *Headless) Assets() *asset.Registry { return h.assets }

// Snapshots returns the paths of snapshots written so far.
func (h *Headless) Snapshots() []string { return h.snapshots }
