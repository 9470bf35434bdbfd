package curve

import (
	"fmt"
	"math"

	"seehuhn.de/go/geom/vec"
)

const (
	loopPoints = 360 // one sample per degree

	parabolaSteps = 200 // x = i/100 for i in [-200, 200]
	parabolaScale = 100.0

	hyperbolaPoints = 100
	hyperbolaTMax   = 1.5

	gridLines = 10 // lines at k/5 for k in [-10, 10]
	gridStep  = 5.0
	gridSpan  = 2.0
)

// Polyline is an ordered point sequence in world coordinates. A closed
// polyline joins its last point back to the first.
type Polyline struct {
	Points []vec.Vec2
	Closed bool
}

// Sample returns the polylines that draw kind k with parameters p.
func Sample(k Kind, p Params) []Polyline {
	switch k {
	case Circle:
		r := p.Circle.Radius
		return []Polyline{sampleLoop(r, r)}
	case Parabola:
		return []Polyline{sampleParabola(p.Parabola.A, p.Parabola.B)}
	case Ellipse:
		return []Polyline{sampleLoop(p.Ellipse.A, p.Ellipse.B)}
	case Hyperbola:
		return sampleHyperbola(p.Hyperbola.A, p.Hyperbola.B)
	}
	return nil
}

// sampleLoop samples x = a·cos θ, y = b·sin θ at whole degrees.
func sampleLoop(a, b float64) Polyline {
	pts := make([]vec.Vec2, loopPoints)
	for i := range pts {
		theta := float64(i) * math.Pi / 180
		pts[i] = vec.Vec2{X: a * math.Cos(theta), Y: b * math.Sin(theta)}
	}
	return Polyline{Points: pts, Closed: true}
}

func sampleParabola(a, b float64) Polyline {
	pts := make([]vec.Vec2, 0, 2*parabolaSteps+1)
	for i := -parabolaSteps; i <= parabolaSteps; i++ {
		x := float64(i) / parabolaScale
		pts = append(pts, vec.Vec2{X: x, Y: a*x*x + b})
	}
	return Polyline{Points: pts}
}

// sampleHyperbola returns the right-upper, right-lower, left-upper and
// left-lower quarters of x = ±a·cosh t, y = ±b·sinh t for t in [0, 1.5].
func sampleHyperbola(a, b float64) []Polyline {
	signs := [4][2]float64{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	dt := hyperbolaTMax / (hyperbolaPoints - 1)

	out := make([]Polyline, 0, len(signs))
	for _, s := range signs {
		pts := make([]vec.Vec2, hyperbolaPoints)
		for i := range pts {
			t := float64(i) * dt
			pts[i] = vec.Vec2{X: s[0] * a * math.Cosh(t), Y: s[1] * b * math.Sinh(t)}
		}
		out = append(out, Polyline{Points: pts})
	}
	return out
}

// Grid returns the background grid segments of the plot, spanning [-2, 2]
// on both axes.
func Grid() [][2]vec.Vec2 {
	out := make([][2]vec.Vec2, 0, 2*(2*gridLines+1))
	for k := -gridLines; k <= gridLines; k++ {
		x := float64(k) / gridStep
		out = append(out, [2]vec.Vec2{{X: x, Y: -gridSpan}, {X: x, Y: gridSpan}})
	}
	for k := -gridLines; k <= gridLines; k++ {
		y := float64(k) / gridStep
		out = append(out, [2]vec.Vec2{{X: -gridSpan, Y: y}, {X: gridSpan, Y: y}})
	}
	return out
}

// Fact returns the equation text for kind k with the current parameters
// printed to two decimals.
func Fact(k Kind, p Params) string {
	switch k {
	case Circle:
		return fmt.Sprintf("A circle is all points equidistant from its center (radius = %.2f).", p.Circle.Radius)
	case Parabola:
		return fmt.Sprintf("A parabola: y = %.2fx² + %.2f", p.Parabola.A, p.Parabola.B)
	case Ellipse:
		return fmt.Sprintf("An ellipse: (x/%.2f)² + (y/%.2f)² = 1", p.Ellipse.A, p.Ellipse.B)
	case Hyperbola:
		return fmt.Sprintf("A hyperbola: (x/%.2f)² - (y/%.2f)² = 1", p.Hyperbola.A, p.Hyperbola.B)
	}
	return ""
}
