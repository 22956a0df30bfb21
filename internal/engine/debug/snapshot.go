package debug

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/Faultbox/q2view/internal/engine/lighting"
	"github.com/Faultbox/q2view/internal/engine/scene"
	"github.com/Faultbox/q2view/pkg/math"
)

const (
	nearPlane = 4
	farPlane  = 8192
)

var (
	background  = color.RGBA{16, 16, 24, 255}
	subtractive = color.RGBA{255, 0, 255, 255}
)

// Point is a debug point queued for a snapshot.
type Point struct {
	Origin math.Vec3
	Size   float32
	Color  uint32 // 0xAABBGGRR
	Label  string
}

// Snapshot rasterizes a frame description as markers seen from its camera:
// entities as squares, particles as dots, lights as crosses.
type Snapshot struct {
	Width, Height int
}

// Draw renders fd plus any debug points into a new image.
func (s Snapshot) Draw(fd *scene.FrameDescriptor, points []Point) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, s.Width, s.Height))
	draw.Draw(img, img.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)

	mvp := s.viewProjection(fd)

	for _, e := range fd.Entities {
		if x, y, ok := s.project(mvp, e.Origin); ok {
			fillSquare(img, x, y, 3, modelColor(e))
		}
	}
	for _, p := range fd.Particles {
		if x, y, ok := s.project(mvp, p.Origin); ok {
			img.Set(x, y, particleColor(p))
		}
	}
	for _, l := range fd.Lights {
		if x, y, ok := s.project(mvp, l.Base().Origin); ok {
			drawCross(img, x, y, 4, lightColor(l))
		}
	}
	for _, pt := range points {
		if x, y, ok := s.project(mvp, pt.Origin); ok {
			fillSquare(img, x, y, 1, unpackColor(pt.Color))
			if pt.Label != "" {
				drawText(img, x+3, y, pt.Label)
			}
		}
	}

	if fd.Blend[3] > 0 {
		tint(img, fd.Blend)
	}

	drawText(img, 4, 14, fmt.Sprintf("ent %d  lt %d  part %d  t %.2f",
		len(fd.Entities), len(fd.Lights), len(fd.Particles), fd.Time))
	drawText(img, 4, 28, fmt.Sprintf("fov %.1f x %.1f", fd.FovX, fd.FovY))
	return img
}

func (s Snapshot) viewProjection(fd *scene.FrameDescriptor) mgl32.Mat4 {
	forward, _, up := math.AngleVectors(fd.ViewAngles)
	eye := fd.ViewOrigin
	view := mgl32.LookAtV(eye, eye.Add(forward), up)

	aspect := float32(s.Width) / float32(s.Height)
	fovY := fd.FovY
	if fovY <= 0 {
		fovY = 74
	}
	proj := mgl32.Perspective(mgl32.DegToRad(fovY), aspect, nearPlane, farPlane)
	return proj.Mul4(view)
}

func (s Snapshot) project(mvp mgl32.Mat4, p math.Vec3) (int, int, bool) {
	clip := mvp.Mul4x1(p.Vec4(1))
	if clip.W() <= 0 {
		return 0, 0, false
	}
	ndc := clip.Vec3().Mul(1 / clip.W())
	if ndc.X() < -1 || ndc.X() > 1 || ndc.Y() < -1 || ndc.Y() > 1 {
		return 0, 0, false
	}
	x := int((ndc.X() + 1) / 2 * float32(s.Width))
	y := int((1 - ndc.Y()) / 2 * float32(s.Height))
	return x, y, true
}

func modelColor(e scene.Entity) color.RGBA {
	h := uint32(e.Model)*2654435761 + uint32(e.Skin)*40503
	return color.RGBA{uint8(h >> 24), uint8(h >> 16), uint8(h >> 8), 255}
}

func particleColor(p scene.Particle) color.RGBA {
	if p.Color == scene.PaletteRGBA {
		return color.RGBA{p.RGBA[0], p.RGBA[1], p.RGBA[2], 255}
	}
	g := uint8(p.Color)
	return color.RGBA{g, g, g, 255}
}

func lightColor(l lighting.Light) color.RGBA {
	if lighting.IsSubtractive(l) {
		return subtractive
	}
	c := l.Base().Color
	rgba, _, ok := lighting.VisualizationColor(c[0], c[1], c[2])
	if !ok {
		return color.RGBA{128, 128, 128, 255}
	}
	return color.RGBA{rgba[0], rgba[1], rgba[2], rgba[3]}
}

func unpackColor(c uint32) color.RGBA {
	return color.RGBA{uint8(c), uint8(c >> 8), uint8(c >> 16), uint8(c >> 24)}
}

func fillSquare(img *image.RGBA, x, y, r int, c color.RGBA) {
	draw.Draw(img, image.Rect(x-r, y-r, x+r+1, y+r+1), image.NewUniform(c), image.Point{}, draw.Src)
}

func drawCross(img *image.RGBA, x, y, r int, c color.RGBA) {
	for d := -r; d <= r; d++ {
		img.SetRGBA(x+d, y, c)
		img.SetRGBA(x, y+d, c)
	}
}

func tint(img *image.RGBA, blend [4]float32) {
	a := math.Clamp(blend[3], 0, 1)
	over := color.RGBA{
		uint8(math.Clamp(blend[0], 0, 1) * a * 255),
		uint8(math.Clamp(blend[1], 0, 1) * a * 255),
		uint8(math.Clamp(blend[2], 0, 1) * a * 255),
		uint8(a * 255),
	}
	draw.Draw(img, img.Bounds(), image.NewUniform(over), image.Point{}, draw.Over)
}

func drawText(img *image.RGBA, x, y int, text string) {
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.White),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}
