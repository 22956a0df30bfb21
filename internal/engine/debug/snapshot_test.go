package debug

import (
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/q2view/internal/engine/lighting"
	"github.com/Faultbox/q2view/internal/engine/scene"
	"github.com/Faultbox/q2view/pkg/math"
)

func TestSnapshotProjectsAhead(t *testing.T) {
	s := Snapshot{Width: 128, Height: 128}
	fd := &scene.FrameDescriptor{
		FovX:     90,
		FovY:     90,
		Entities: []scene.Entity{{Model: 1, Origin: math.Vec3{100, 0, 0}}},
	}

	img := s.Draw(fd, nil)
	assert.NotEqual(t, background, img.RGBAAt(64, 64), "entity straight ahead lands in the center")
	assert.Equal(t, background, img.RGBAAt(120, 120))
}

func TestSnapshotSkipsBehindCamera(t *testing.T) {
	s := Snapshot{Width: 128, Height: 128}
	fd := &scene.FrameDescriptor{
		FovY:     90,
		Entities: []scene.Entity{{Model: 1, Origin: math.Vec3{-100, 0, 0}}},
	}

	img := s.Draw(fd, nil)
	assert.Equal(t, background, img.RGBAAt(64, 64))
}

func TestSnapshotLightAndPoint(t *testing.T) {
	s := Snapshot{Width: 128, Height: 128}
	fd := &scene.FrameDescriptor{
		FovY: 90,
		Lights: []lighting.Light{
			lighting.PointLight{Common: lighting.Common{Origin: math.Vec3{100, 0, 0}, Color: math.Vec3{-1, -1, -1}}},
		},
	}

	img := s.Draw(fd, []Point{{Origin: math.Vec3{100, 0, 0}, Color: 0xFF00FF00}})
	assert.Equal(t, color.RGBA{0, 255, 0, 255}, img.RGBAAt(64, 64), "debug points draw over lights")
	assert.Equal(t, subtractive, img.RGBAAt(64+3, 64), "subtractive light cross arm")
}

func TestCaptureWrite(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "snaps")
	c := NewCapture(dir, "view")

	img := Snapshot{Width: 32, Height: 16}.Draw(&scene.FrameDescriptor{}, nil)
	path, err := c.Write(img, 12)
	require.NoError(t, err)

	assert.Equal(t, c.Filename(12), path)
	assert.True(t, strings.HasSuffix(path, "_000012.png"))
	assert.Contains(t, path, c.Session()[:8])

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	decoded, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 32, decoded.Bounds().Dx())
}

func TestCaptureSessionsDiffer(t *testing.T) {
	a := NewCapture("", "x")
	b := NewCapture("", "x")
	assert.NotEqual(t, a.Filename(1), b.Filename(1))
}
