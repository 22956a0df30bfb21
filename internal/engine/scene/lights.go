package scene

import (
	gomath "math"

	"github.com/Faultbox/q2view/internal/engine/asset"
	"github.com/Faultbox/q2view/internal/engine/lighting"
	"github.com/Faultbox/q2view/pkg/math"
)

// DefaultLightRadius is the sphere radius used by AddLight.
const DefaultLightRadius = 10

// spot lights are treated as having a unit source radius
const spotLightRadius = 1

// AddSphereLight adds a point light. With ShowLights set, a marker particle
// tinted with the light's normalized color is added at the same origin.
func (f *Frame) AddSphereLight(origin math.Vec3, intensity, r, g, b, radius float32) {
	l := lighting.PointLight{Common: lighting.Common{
		Origin:    origin,
		Color:     math.Vec3{r, g, b},
		Intensity: intensity,
		Radius:    radius,
	}}
	if !f.addLight(l) {
		return
	}

	if !f.ShowLights {
		return
	}
	rgba, brightness, ok := lighting.VisualizationColor(r, g, b)
	if !ok {
		return
	}
	f.AddParticle(Particle{
		Origin:     origin,
		Radius:     radius,
		Brightness: brightness,
		Color:      PaletteRGBA,
		RGBA:       rgba,
		Alpha:      1,
	})
}

// AddLight adds a point light with DefaultLightRadius.
func (f *Frame) AddLight(origin math.Vec3, intensity, r, g, b float32) {
	f.AddSphereLight(origin, intensity, r, g, b, DefaultLightRadius)
}

// AddSpotLight adds a spot light whose intensity falls off between
// falloffAngle and widthAngle (degrees, measured from the axis).
func (f *Frame) AddSpotLight(origin, dir math.Vec3, intensity, r, g, b, widthAngle, falloffAngle float32) {
	f.addLight(lighting.SpotLight{
		Common:    spotCommon(origin, intensity, r, g, b),
		Direction: dir,
		Emission: lighting.FalloffEmission{
			CosTotalWidth:   cosDeg(widthAngle),
			CosFalloffStart: cosDeg(falloffAngle),
		},
	})
}

// AddSpotLightTextured adds a spot light whose emission is looked up from tex
// by angle from the axis. widthAngle is the angle from the axis to the cone
// edge, in degrees.
func (f *Frame) AddSpotLightTextured(origin, dir math.Vec3, intensity, r, g, b, widthAngle float32, tex asset.Handle) {
	f.addLight(lighting.SpotLight{
		Common:    spotCommon(origin, intensity, r, g, b),
		Direction: dir,
		Emission: lighting.TextureEmission{
			TotalWidth: math.DegToRad(widthAngle),
			Texture:    tex,
		},
	})
}

func spotCommon(origin math.Vec3, intensity, r, g, b float32) lighting.Common {
	return lighting.Common{
		Origin:    origin,
		Color:     math.Vec3{r, g, b},
		Intensity: intensity,
		Radius:    spotLightRadius,
	}
}

func cosDeg(deg float32) float32 {
	return float32(gomath.Cos(float64(math.DegToRad(deg))))
}
