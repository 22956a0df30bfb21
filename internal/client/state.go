// Package client holds the client-side game state that the view reads each frame.
//
// Everything here is produced by snapshot parsing, prediction and entity
// interpolation; the view only reads it, except for the per-entity
// flashlight smoothing value and the sampled light level.
package client

import (
	"github.com/Faultbox/q2view/internal/engine/asset"
	"github.com/Faultbox/q2view/internal/engine/scene"
	"github.com/Faultbox/q2view/pkg/math"
)

// Extended entity effect flags.
const (
	EffectFlashlight uint32 = 1 << 0
)

// PlayerState is the subset of the networked player state used by the view.
type PlayerState struct {
	ViewAngles math.Vec3
	ViewOffset math.Vec3
	GunAngles  math.Vec3
	RDFlags    int32
}

// Snapshot is one server frame.
type Snapshot struct {
	Valid     bool
	Number    int
	ClientNum int
	PS        PlayerState
	AreaBits  []byte
}

// EntityState is the interpolated network state of an entity.
type EntityState struct {
	Number int
	MoreFX uint32
}

// Entity is the persistent client record of a networked entity.
type Entity struct {
	Current EntityState

	// FlashlightFrac is the smoothed trace fraction of the fallback flashlight.
	FlashlightFrac float32
}

// ClientInfo identifies the model and skin of a player.
type ClientInfo struct {
	Model asset.Handle
	Skin  asset.Handle
}

// View is the camera computed by the entity builder for this frame.
type View struct {
	Origin  math.Vec3
	Angles  math.Vec3
	Forward math.Vec3
	Right   math.Vec3
	Up      math.Vec3
	FovX    float32
	FovY    float32
	Blend   [4]float32
}

// State is the client state shared between the entity builder and the view.
type State struct {
	Frame    Snapshot
	OldFrame Snapshot

	LerpFrac  float32
	Time      int     // milliseconds
	FrameTime float32 // seconds since the previous rendered frame

	DemoPlayback       bool
	PredictedAngles    math.Vec3
	PlayerEntityOrigin math.Vec3

	Entities       []Entity
	BaseClientInfo ClientInfo
	Screen         scene.Rect
	View           View

	// LightLevel is the ambient light at the view origin, written by the view.
	LightLevel float32
}

// NewState creates a state with room for maxEntities entity records.
func NewState(maxEntities int) *State {
	return &State{Entities: make([]Entity, maxEntities)}
}

// PlayerEntityNum returns the entity number of the local player.
func (s *State) PlayerEntityNum() int {
	return s.Frame.ClientNum + 1
}

// Entity returns the record for entity number n, or nil if out of range.
func (s *State) Entity(n int) *Entity {
	if n < 0 || n >= len(s.Entities) {
		return nil
	}
	return &s.Entities[n]
}

// SetView stores the camera and derives its basis vectors.
func (s *State) SetView(origin, angles math.Vec3) {
	s.View.Origin = origin
	s.View.Angles = angles
	s.View.Forward, s.View.Right, s.View.Up = math.AngleVectors(angles)
}
