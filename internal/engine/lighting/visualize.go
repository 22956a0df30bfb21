package lighting

import "github.com/Faultbox/q2view/pkg/math"

// VisualizationColor normalizes (r, g, b) against its largest component and
// returns it as 8-bit RGBA with full opacity. ok is false when the brightest
// component is not positive, in which case no marker should be drawn.
func VisualizationColor(r, g, b float32) (rgba [4]uint8, brightness float32, ok bool) {
	brightness = math.MaxComponent(math.Vec3{r, g, b})
	if brightness <= 0 {
		return rgba, brightness, false
	}

	rgba[0] = toByte(r / brightness)
	rgba[1] = toByte(g / brightness)
	rgba[2] = toByte(b / brightness)
	rgba[3] = 255
	return rgba, brightness, true
}

func toByte(v float32) uint8 {
	return uint8(math.Clamp(v*255, 0, 255))
}
