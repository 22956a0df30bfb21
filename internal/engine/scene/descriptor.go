package scene

import (
	"github.com/Faultbox/q2view/internal/engine/lighting"
	"github.com/Faultbox/q2view/pkg/math"
)

// Rect is a viewport rectangle in pixels.
type Rect struct {
	X, Y          int
	Width, Height int
}

// FrameDescriptor is everything the renderer needs to draw one view.
// The slices alias the Frame buffers and are only valid until the next Clear.
type FrameDescriptor struct {
	Viewport   Rect
	FovX, FovY float32
	ViewOrigin math.Vec3
	ViewAngles math.Vec3
	Time       float32 // seconds
	AreaBits   []byte  // nil when every area is visible
	Blend      [4]float32
	RDFlags    int32

	Entities    []Entity
	Particles   []Particle
	Lights      []lighting.Light
	LightStyles []LightStyle
}

// Attach points the descriptor at the frame's current buffers.
func (fd *FrameDescriptor) Attach(f *Frame) {
	fd.Entities = f.Entities()
	fd.Particles = f.Particles()
	fd.Lights = f.Lights()
	fd.LightStyles = f.LightStyles()
}

// Clone returns a deep copy that stays valid after the frame is reused.
func (fd *FrameDescriptor) Clone() FrameDescriptor {
	c := *fd
	c.AreaBits = cloneOrNil(fd.AreaBits)
	c.Entities = cloneOrNil(fd.Entities)
	c.Particles = cloneOrNil(fd.Particles)
	c.Lights = cloneOrNil(fd.Lights)
	c.LightStyles = cloneOrNil(fd.LightStyles)
	return c
}

func cloneOrNil[S ~[]E, E any](s S) S {
	if s == nil {
		return nil
	}
	return append(S(nil), s...)
}
