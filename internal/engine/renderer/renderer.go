// Package renderer defines the contract between the view and a renderer backend.
package renderer

import (
	"fmt"

	"github.com/Faultbox/q2view/internal/engine/asset"
	"github.com/Faultbox/q2view/internal/engine/scene"
	"github.com/Faultbox/q2view/pkg/math"
)

// Type identifies the renderer backend and with it its lighting capabilities.
type Type uint8

const (
	// TypeGL is a rasterizer that only understands point lights.
	TypeGL Type = iota
	// TypeRTX is a path tracer that handles spot lights and occlusion itself.
	TypeRTX
)

func (t Type) String() string {
	switch t {
	case TypeGL:
		return "gl"
	case TypeRTX:
		return "rtx"
	default:
		return fmt.Sprintf("Type(%d)", uint8(t))
	}
}

// ParseType converts a config name to a Type.
func ParseType(s string) (Type, error) {
	switch s {
	case "gl":
		return TypeGL, nil
	case "rtx":
		return TypeRTX, nil
	default:
		return 0, fmt.Errorf("unknown renderer type %q", s)
	}
}

// Image registration flags.
type ImageFlags uint32

const (
	ImagePermanent ImageFlags = 1 << 0
	ImageBilerp    ImageFlags = 1 << 1
)

// Renderer draws assembled frames and answers lighting queries.
type Renderer interface {
	Type() Type

	// RenderFrame draws fd. The descriptor's slices are only valid for the call.
	RenderFrame(fd *scene.FrameDescriptor)

	// LightPoint samples the static and dynamic lighting at p.
	LightPoint(p math.Vec3) math.Vec3

	RegisterImage(name string, flags ImageFlags) asset.Handle
	UnregisterImage(h asset.Handle)
	RegisterModel(name string) asset.Handle
}

// DebugDrawer is implemented by renderers that can overlay debug primitives.
type DebugDrawer interface {
	AddDebugPoint(p math.Vec3, size float32, color uint32, seconds float32, depthTest bool)
	AddDebugText(p math.Vec3, text string, size float32, color uint32, seconds float32, depthTest bool)
}

// Debug colors, 0xAABBGGRR.
const (
	ColorRed     uint32 = 0xFF0000FF
	ColorGreen   uint32 = 0xFF00FF00
	ColorBlue    uint32 = 0xFFFF0000
	ColorYellow  uint32 = 0xFF00FFFF
	ColorMagenta uint32 = 0xFFFF00FF
	ColorCyan    uint32 = 0xFFFFFF00
)
