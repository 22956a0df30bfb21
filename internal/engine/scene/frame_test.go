package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/q2view/internal/engine/asset"
	"github.com/Faultbox/q2view/pkg/math"
)

func TestAddEntitySaturates(t *testing.T) {
	f := NewFrame()
	for i := 0; i < MaxEntities; i++ {
		f.AddEntity(Entity{ID: int32(i)})
	}
	require.Equal(t, MaxEntities, f.NumEntities())

	before := append([]Entity(nil), f.Entities()...)
	f.AddEntity(Entity{ID: -1, Model: asset.Handle(42)})

	assert.Equal(t, MaxEntities, f.NumEntities())
	assert.Equal(t, before, f.Entities(), "overflowing add must leave the buffer untouched")
}

func TestAddParticleSaturates(t *testing.T) {
	f := NewFrame()
	for i := 0; i < MaxParticles+10; i++ {
		f.AddParticle(Particle{Color: int32(i)})
	}
	assert.Equal(t, MaxParticles, f.NumParticles())
	assert.Equal(t, int32(MaxParticles-1), f.Particles()[MaxParticles-1].Color)
}

func TestInsertionOrder(t *testing.T) {
	f := NewFrame()
	f.AddEntity(Entity{ID: 3})
	f.AddEntity(Entity{ID: 1})
	f.AddEntity(Entity{ID: 2})

	ids := []int32{}
	for _, e := range f.Entities() {
		ids = append(ids, e.ID)
	}
	assert.Equal(t, []int32{3, 1, 2}, ids)
}

func TestClearKeepsLightStyles(t *testing.T) {
	f := NewFrame()
	f.AddEntity(Entity{})
	f.AddParticle(Particle{})
	f.AddLight(math.Vec3{}, 100, 1, 1, 1)
	f.AddLightStyle(5, 0.75)

	f.Clear()

	assert.Zero(t, f.NumEntities())
	assert.Zero(t, f.NumParticles())
	assert.Zero(t, f.NumLights())
	assert.Empty(t, f.Entities())
	assert.Equal(t, float32(0.75), f.LightStyles()[5].White)
}

func TestDropBuffers(t *testing.T) {
	f := NewFrame()
	f.AddEntity(Entity{})
	f.AddParticle(Particle{})
	f.AddLight(math.Vec3{}, 100, 1, 1, 1)

	f.DropLights()
	assert.Zero(t, f.NumLights())
	assert.Equal(t, 1, f.NumEntities())

	f.DropEntities()
	f.DropParticles()
	assert.Zero(t, f.NumEntities())
	assert.Zero(t, f.NumParticles())
}

func TestResetBuffers(t *testing.T) {
	f := NewFrame()
	f.AddEntity(Entity{ID: 7, Model: 3})

	ents := f.ResetEntities(32)
	require.Len(t, ents, 32)
	assert.Equal(t, Entity{}, ents[0], "reset slots are zeroed")
	assert.Equal(t, 32, f.NumEntities())

	assert.Len(t, f.ResetParticles(MaxParticles*2), MaxParticles)
	assert.Len(t, f.ResetLights(-1), 0)
	assert.Zero(t, f.NumLights())
}

func TestLightStyleOutOfRangePanics(t *testing.T) {
	f := NewFrame()
	assert.Panics(t, func() { f.AddLightStyle(-1, 1) })
	assert.Panics(t, func() { f.AddLightStyle(MaxLightStyles, 1) })
	assert.NotPanics(t, func() { f.AddLightStyle(MaxLightStyles-1, 1) })
}

func TestDescriptorAttachAndClone(t *testing.T) {
	f := NewFrame()
	f.AddEntity(Entity{ID: 1})
	f.AddLight(math.Vec3{1, 2, 3}, 10, 1, 1, 1)

	var fd FrameDescriptor
	fd.Attach(f)
	require.Len(t, fd.Entities, 1)
	require.Len(t, fd.Lights, 1)
	assert.Len(t, fd.LightStyles, MaxLightStyles)

	snap := fd.Clone()
	f.Clear()
	f.AddEntity(Entity{ID: 99})

	assert.Equal(t, int32(99), fd.Entities[0].ID, "attached slices alias the frame")
	assert.Equal(t, int32(1), snap.Entities[0].ID, "clones do not")
	assert.Nil(t, snap.AreaBits)
}
