// Package scene holds the per-frame render lists handed to the renderer.
//
// A Frame is cleared at the start of every rendered frame, populated by the
// entity builder, effects and the flashlight, then read once by the renderer.
// All buffers have fixed capacity; additions past capacity are dropped.
package scene

import (
	"github.com/Faultbox/q2view/internal/engine/lighting"
)

// Buffer capacities.
const (
	MaxEntities    = 2048
	MaxParticles   = 8192
	MaxLights      = 1024
	MaxLightStyles = 256
)

// Frame owns the fixed-capacity entity, particle and light buffers for one
// frame plus the light-style table, which persists across frames.
type Frame struct {
	entities     [MaxEntities]Entity
	numEntities  int
	particles    [MaxParticles]Particle
	numParticles int
	lights       [MaxLights]lighting.Light
	numLights    int

	lightStyles [MaxLightStyles]LightStyle

	// ShowLights adds a marker particle for every sphere light.
	ShowLights bool
}

// NewFrame allocates an empty frame.
func NewFrame() *Frame {
	return &Frame{}
}

// Clear empties the entity, particle and light buffers.
// Light styles are left untouched.
func (f *Frame) Clear() {
	f.numEntities = 0
	f.numParticles = 0
	f.numLights = 0
}

// AddEntity copies e into the entity buffer.
func (f *Frame) AddEntity(e Entity) {
	if f.numEntities >= MaxEntities {
		return
	}
	f.entities[f.numEntities] = e
	f.numEntities++
}

// AddParticle copies p into the particle buffer.
func (f *Frame) AddParticle(p Particle) {
	if f.numParticles >= MaxParticles {
		return
	}
	f.particles[f.numParticles] = p
	f.numParticles++
}

func (f *Frame) addLight(l lighting.Light) bool {
	if f.numLights >= MaxLights {
		return false
	}
	f.lights[f.numLights] = l
	f.numLights++
	return true
}

// Entities returns the populated part of the entity buffer.
func (f *Frame) Entities() []Entity { return f.entities[:f.numEntities] }

// Particles returns the populated part of the particle buffer.
func (f *Frame) Particles() []Particle { return f.particles[:f.numParticles] }

// Lights returns the populated part of the light buffer.
func (f *Frame) Lights() []lighting.Light { return f.lights[:f.numLights] }

// NumEntities returns the entity count.
func (f *Frame) NumEntities() int { return f.numEntities }

// NumParticles returns the particle count.
func (f *Frame) NumParticles() int { return f.numParticles }

// NumLights returns the light count.
func (f *Frame) NumLights() int { return f.numLights }

// DropEntities discards every entity added so far this frame.
func (f *Frame) DropEntities() { f.numEntities = 0 }

// DropParticles discards every particle added so far this frame.
func (f *Frame) DropParticles() { f.numParticles = 0 }

// DropLights discards every light added so far this frame.
func (f *Frame) DropLights() { f.numLights = 0 }

// ResetEntities replaces the entity buffer with n zeroed slots and returns
// them for the caller to fill. n is clamped to capacity.
func (f *Frame) ResetEntities(n int) []Entity {
	n = clampCount(n, MaxEntities)
	clear(f.entities[:n])
	f.numEntities = n
	return f.entities[:n]
}

// ResetParticles replaces the particle buffer with n zeroed slots.
func (f *Frame) ResetParticles(n int) []Particle {
	n = clampCount(n, MaxParticles)
	clear(f.particles[:n])
	f.numParticles = n
	return f.particles[:n]
}

// ResetLights replaces the light buffer with n empty slots.
func (f *Frame) ResetLights(n int) []lighting.Light {
	n = clampCount(n, MaxLights)
	clear(f.lights[:n])
	f.numLights = n
	return f.lights[:n]
}

func clampCount(n, limit int) int {
	if n < 0 {
		return 0
	}
	if n > limit {
		return limit
	}
	return n
}
