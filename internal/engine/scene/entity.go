package scene

import (
	"github.com/Faultbox/q2view/internal/engine/asset"
	"github.com/Faultbox/q2view/pkg/math"
)

// Render flags carried on entities.
const (
	FlagMinLight    uint32 = 1 << 0
	FlagViewerModel uint32 = 1 << 1
	FlagWeaponModel uint32 = 1 << 2
	FlagFullBright  uint32 = 1 << 3
	FlagDepthHack   uint32 = 1 << 4
	FlagTranslucent uint32 = 1 << 5
)

// GunEntityID is the identity tag used for the view weapon.
const GunEntityID = 1

// Entity is a renderable model instance for one frame.
type Entity struct {
	ID        int32
	Model     asset.Handle
	Skin      asset.Handle
	SkinNum   int32
	Origin    math.Vec3
	OldOrigin math.Vec3
	Angles    math.Vec3
	Frame     int32
	OldFrame  int32
	BackLerp  float32
	Alpha     float32
	Scale     float32
	Flags     uint32
}

// PaletteRGBA marks a particle whose color comes from RGBA instead of the palette.
const PaletteRGBA int32 = -1

// Particle is a single point sprite for one frame.
type Particle struct {
	Origin     math.Vec3
	Radius     float32
	Brightness float32
	Color      int32 // palette index, or PaletteRGBA
	RGBA       [4]uint8
	Alpha      float32
}
