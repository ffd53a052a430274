package diagram

import (
	"math"

	"github.com/alexiusacademia/gohouse/internal/roof"
)

// Point represents a 2D coordinate on the gable-end elevation (m)
type Point struct {
	X float64
	Y float64
}

// ProfileData holds everything needed to draw the gable-end elevation of a building
type ProfileData struct {
	RoofType roof.RoofType
	Result   roof.Result

	// Outline counter-clockwise from bottom-left
	Vertices []Point

	Width     float64 // footprint width (m)
	RidgeY    float64 // highest point (m)
	EaveY     float64 // lowest roof corner (m), may be zero or negative
	StepX     float64 // multi-level step position, 0 otherwise
	SlopeEdge [][2]Point
}

// NewProfileData builds the elevation outline for a computed result
func NewProfileData(rt roof.RoofType, res roof.Result) ProfileData {
	data := ProfileData{RoofType: rt, Result: res}
	for _, s := range res.Slopes {
		data.Width += s.Width
	}
	w := data.Width

	switch {
	case rt == roof.Single && len(res.Slopes) == 1:
		s := res.Slopes[0]
		data.Vertices = []Point{{0, 0}, {w, 0}, {w, s.MinHeight}, {0, s.MaxHeight}}
		data.SlopeEdge = [][2]Point{{{0, s.MaxHeight}, {w, s.MinHeight}}}

	case rt == roof.Double && len(res.Slopes) == 2:
		s := res.Slopes[0]
		data.Vertices = []Point{{0, 0}, {w, 0}, {w, s.MinHeight}, {w / 2, s.MaxHeight}, {0, s.MinHeight}}
		data.SlopeEdge = [][2]Point{
			{{0, s.MinHeight}, {w / 2, s.MaxHeight}},
			{{w / 2, s.MaxHeight}, {w, s.MinHeight}},
		}

	case rt == roof.Multi && len(res.Slopes) == 2:
		s1, s2 := res.Slopes[0], res.Slopes[1]
		data.StepX = s1.Width
		data.Vertices = []Point{
			{0, 0},
			{w, 0},
			{w, s2.MinHeight},
			{s1.Width, s2.MaxHeight},
			{s1.Width, s1.MaxHeight},
			{0, s1.MinHeight},
		}
		data.SlopeEdge = [][2]Point{
			{{0, s1.MinHeight}, {s1.Width, s1.MaxHeight}},
			{{s1.Width, s2.MaxHeight}, {w, s2.MinHeight}},
		}
	}

	corners := data.RoofCorners()
	if len(corners) == 0 {
		return data
	}
	data.EaveY = math.Inf(1)
	for _, v := range corners {
		data.RidgeY = math.Max(data.RidgeY, v.Y)
		data.EaveY = math.Min(data.EaveY, v.Y)
	}
	return data
}

// RoofCorners returns the outline vertices above the two ground corners
func (d ProfileData) RoofCorners() []Point {
	if len(d.Vertices) < 3 {
		return nil
	}
	return d.Vertices[2:]
}

// HeightAt returns the top of the outline at horizontal position x
func (d ProfileData) HeightAt(x float64) float64 {
	n := len(d.Vertices)
	top := 0.0
	for i := 0; i < n; i++ {
		curr := d.Vertices[i]
		next := d.Vertices[(i+1)%n]
		if curr.X == next.X {
			continue
		}
		if (curr.X <= x && next.X >= x) || (next.X <= x && curr.X >= x) {
			t := (x - curr.X) / (next.X - curr.X)
			y := curr.Y + t*(next.Y-curr.Y)
			if y > top {
				top = y
			}
		}
	}
	return top
}

// AreaAndCentroid uses the shoelace formula on the outline. The area is the
// gable-end wall including its roof triangles.
func (d ProfileData) AreaAndCentroid() (area, cx, cy float64) {
	n := len(d.Vertices)
	if n < 3 {
		return 0, 0, 0
	}

	var signedArea float64
	var sumX, sumY float64

	for i := 0; i < n; i++ {
		j := (i + 1) % n
		cross := d.Vertices[i].X*d.Vertices[j].Y - d.Vertices[j].X*d.Vertices[i].Y
		signedArea += cross
		sumX += (d.Vertices[i].X + d.Vertices[j].X) * cross
		sumY += (d.Vertices[i].Y + d.Vertices[j].Y) * cross
	}

	signedArea /= 2
	area = math.Abs(signedArea)

	if area > 0 {
		cx = sumX / (6 * signedArea)
		cy = sumY / (6 * signedArea)
	}

	return area, cx, cy
}
