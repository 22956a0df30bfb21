// Package picking provides world ray queries used by client-side effects.
package picking

import (
	"github.com/Faultbox/q2view/pkg/math"
)

// Contents is a bitmask of brush content types.
type Contents uint32

const (
	ContentsSolid   Contents = 1 << 0
	ContentsWindow  Contents = 1 << 1
	ContentsWater   Contents = 1 << 5
	ContentsMonster Contents = 1 << 25
)

// MaskSolidMonster blocks on world geometry and monsters.
const MaskSolidMonster = ContentsSolid | ContentsMonster

// Trace is the result of a segment query.
type Trace struct {
	Fraction   float32 // 0..1 along start->end; 1 means nothing was hit
	EndPos     math.Vec3
	StartSolid bool
	Contents   Contents
}

// Tracer answers line-of-sight queries against the world.
type Tracer interface {
	Trace(start, end math.Vec3, mask Contents) Trace
}

// AABB represents an axis-aligned bounding box.
type AABB struct {
	Min math.Vec3
	Max math.Vec3
}

// NewAABB creates an AABB from two corners in any order.
func NewAABB(a, b math.Vec3) AABB {
	box := AABB{Min: a, Max: b}
	for i := 0; i < 3; i++ {
		if box.Min[i] > box.Max[i] {
			box.Min[i], box.Max[i] = box.Max[i], box.Min[i]
		}
	}
	return box
}

// Contains reports whether p lies inside or on the box.
func (b AABB) Contains(p math.Vec3) bool {
	for i := 0; i < 3; i++ {
		if p[i] < b.Min[i] || p[i] > b.Max[i] {
			return false
		}
	}
	return true
}

// IntersectSegment clips the segment start + t*delta, t in [0, 1], against
// the box and returns the entry parameter.
func (b AABB) IntersectSegment(start, delta math.Vec3) (t float32, hit bool) {
	tmin := float32(0)
	tmax := float32(1)

	for i := 0; i < 3; i++ {
		if delta[i] == 0 {
			if start[i] < b.Min[i] || start[i] > b.Max[i] {
				return 0, false
			}
			continue
		}
		t1 := (b.Min[i] - start[i]) / delta[i]
		t2 := (b.Max[i] - start[i]) / delta[i]
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tmin {
			tmin = t1
		}
		if t2 < tmax {
			tmax = t2
		}
		if tmin > tmax {
			return 0, false
		}
	}
	return tmin, true
}

// Brush is a solid box with content flags.
type Brush struct {
	Bounds   AABB
	Contents Contents
}

// BoxWorld is a Tracer over a flat list of boxes.
type BoxWorld struct {
	Brushes []Brush
}

// NewBoxWorld creates a world from the given brushes.
func NewBoxWorld(brushes ...Brush) *BoxWorld {
	return &BoxWorld{Brushes: brushes}
}

// Add appends a brush.
func (w *BoxWorld) Add(bounds AABB, contents Contents) {
	w.Brushes = append(w.Brushes, Brush{Bounds: bounds, Contents: contents})
}

// Trace returns the nearest hit among brushes matching mask.
func (w *BoxWorld) Trace(start, end math.Vec3, mask Contents) Trace {
	delta := end.Sub(start)
	best := Trace{Fraction: 1, EndPos: end}

	for _, br := range w.Brushes {
		if br.Contents&mask == 0 {
			continue
		}
		if br.Bounds.Contains(start) {
			return Trace{Fraction: 0, EndPos: start, StartSolid: true, Contents: br.Contents}
		}
		t, hit := br.Bounds.IntersectSegment(start, delta)
		if !hit || t >= best.Fraction {
			continue
		}
		best.Fraction = t
		best.Contents = br.Contents
	}

	if best.Fraction < 1 {
		best.EndPos = math.LerpVec3(start, end, best.Fraction)
	}
	return best
}

// Room builds the six walls of a hollow box with the given interior bounds
// and wall thickness.
func Room(interior AABB, thickness float32) []Brush {
	lo, hi := interior.Min, interior.Max
	th := thickness
	walls := []AABB{
		NewAABB(math.Vec3{lo[0] - th, lo[1] - th, lo[2] - th}, math.Vec3{hi[0] + th, hi[1] + th, lo[2]}), // floor
		NewAABB(math.Vec3{lo[0] - th, lo[1] - th, hi[2]}, math.Vec3{hi[0] + th, hi[1] + th, hi[2] + th}), // ceiling
		NewAABB(math.Vec3{lo[0] - th, lo[1] - th, lo[2]}, math.Vec3{lo[0], hi[1] + th, hi[2]}),
		NewAABB(math.Vec3{hi[0], lo[1] - th, lo[2]}, math.Vec3{hi[0] + th, hi[1] + th, hi[2]}),
		NewAABB(math.Vec3{lo[0], lo[1] - th, lo[2]}, math.Vec3{hi[0], lo[1], hi[2]}),
		NewAABB(math.Vec3{lo[0], hi[1], lo[2]}, math.Vec3{hi[0], hi[1] + th, hi[2]}),
	}
	brushes := make([]Brush, len(walls))
	for i, w := range walls {
		brushes[i] = Brush{Bounds: w, Contents: ContentsSolid}
	}
	return brushes
}

// Distance returns the traced distance along the segment.
func (tr Trace) Distance(start, end math.Vec3) float32 {
	return end.Sub(start).Len() * tr.Fraction
}
