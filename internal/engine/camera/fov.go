package camera

import (
	"errors"
	"fmt"
	gomath "math"
)

// ErrBadFOV is returned for a field of view outside (0, 179] degrees.
var ErrBadFOV = errors.New("bad fov")

// MaxFOV is the widest accepted field of view in degrees.
const MaxFOV = 179

// CalcFov returns the field of view subtended by other, given that primary
// spans fov degrees on the same image plane. Passing (fovX, width, height)
// yields the vertical FOV; (fovY, height, width) yields the horizontal one.
func CalcFov(fov, primary, other float32) (float32, error) {
	if fov <= 0 || fov > MaxFOV {
		return 0, fmt.Errorf("%w: %f", ErrBadFOV, fov)
	}

	// focal length in the same units as the extents
	x := float64(primary) / gomath.Tan(float64(fov)*gomath.Pi/360)
	a := gomath.Atan(float64(other) / x)
	return float32(a * 360 / gomath.Pi), nil
}

// BaseFov turns a horizontal FOV authored for a 4:3 screen into the
// (fovX, fovY) pair used before any aspect adjustment.
func BaseFov(fovX float32) (float32, float32, error) {
	fovY, err := CalcFov(fovX, 4, 3)
	if err != nil {
		return 0, 0, err
	}
	return fovX, fovY, nil
}
