// Package lighting defines the dynamic light variants submitted with each frame.
package lighting

import (
	"github.com/Faultbox/q2view/internal/engine/asset"
	"github.com/Faultbox/q2view/pkg/math"
)

// Common holds the fields shared by every light variant.
// A color with negative components marks a subtractive light.
type Common struct {
	Origin    math.Vec3
	Color     math.Vec3
	Intensity float32
	Radius    float32
}

// Light is a dynamic light: either PointLight or SpotLight.
// Renderers are expected to type switch over the two variants.
type Light interface {
	Base() Common
	isLight()
}

// PointLight is a spherical light.
type PointLight struct {
	Common
}

// SpotLight is a directional cone light with an emission profile.
type SpotLight struct {
	Common
	Direction math.Vec3
	Emission  Emission
}

// Base returns the shared light fields.
func (l PointLight) Base() Common { return l.Common }

// Base returns the shared light fields.
func (l SpotLight) Base() Common { return l.Common }

func (PointLight) isLight() {}
func (SpotLight) isLight()  {}

// Emission is the angular emission profile of a spot light:
// either FalloffEmission or TextureEmission.
type Emission interface {
	isEmission()
}

// FalloffEmission attenuates between two cone angles. Both are stored as cosines.
type FalloffEmission struct {
	CosTotalWidth   float32
	CosFalloffStart float32
}

// TextureEmission samples an emission texture by angle from the spot axis.
type TextureEmission struct {
	TotalWidth float32 // angle from the axis to the cone edge, radians
	Texture    asset.Handle
}

func (FalloffEmission) isEmission() {}
func (TextureEmission) isEmission() {}

// IsSubtractive reports whether the light removes light from the scene.
func IsSubtractive(l Light) bool {
	c := l.Base().Color
	return c[0] < 0 && c[1] < 0 && c[2] < 0
}
