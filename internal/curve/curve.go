// Package curve holds the curve kinds the visualizer can plot, their
// parameters, and the closed-form samplers that turn them into polylines.
package curve

import "fmt"

// Kind selects which curve is plotted.
type Kind int

const (
	Circle Kind = iota
	Parabola
	Ellipse
	Hyperbola
)

// Kinds lists every curve kind in button order.
var Kinds = [...]Kind{Circle, Parabola, Ellipse, Hyperbola}

func (k Kind) String() string {
	switch k {
	case Circle:
		return "Circle"
	case Parabola:
		return "Parabola"
	case Ellipse:
		return "Ellipse"
	case Hyperbola:
		return "Hyperbola"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Field names one numeric parameter of a curve.
type Field int

const (
	FieldRadius Field = iota
	FieldA
	FieldB
)

// Range is a closed interval of admissible parameter values.
type Range struct {
	Min, Max float64
}

// Clamp limits v to [r.Min, r.Max].
func (r Range) Clamp(v float64) float64 {
	return max(r.Min, min(r.Max, v))
}

// Lerp maps ratio in [0, 1] linearly onto the range. The ratio is clamped first.
func (r Range) Lerp(ratio float64) float64 {
	ratio = max(0, min(1, ratio))
	return (1-ratio)*r.Min + ratio*r.Max
}

// Ratio is the inverse of Lerp.
func (r Range) Ratio(v float64) float64 {
	if r.Max == r.Min {
		return 0
	}
	return (v - r.Min) / (r.Max - r.Min)
}

var (
	radiusRange = Range{Min: 0.1, Max: 1.5}
	coeffRange  = Range{Min: -2.0, Max: 2.0}
	axisRange   = Range{Min: 0.1, Max: 2.0}
)

// Control describes one slider-adjustable parameter of a curve kind.
type Control struct {
	Label string
	Field Field
	Range Range
}

var controls = map[Kind][]Control{
	Circle: {
		{Label: "Radius", Field: FieldRadius, Range: radiusRange},
	},
	Parabola: {
		{Label: "A (x² coeff)", Field: FieldA, Range: coeffRange},
		{Label: "B (constant)", Field: FieldB, Range: coeffRange},
	},
	Ellipse: {
		{Label: "A (x-axis)", Field: FieldA, Range: axisRange},
		{Label: "B (y-axis)", Field: FieldB, Range: axisRange},
	},
	Hyperbola: {
		{Label: "A (x-axis)", Field: FieldA, Range: axisRange},
		{Label: "B (y-axis)", Field: FieldB, Range: axisRange},
	},
}

// Controls returns the adjustable parameters of k in slider order.
func (k Kind) Controls() []Control {
	return controls[k]
}

// CircleParams parametrizes x = r·cos θ, y = r·sin θ.
type CircleParams struct {
	Radius float64
}

// ConicParams holds the two coefficients shared by the parabola, ellipse and
// hyperbola formulas.
type ConicParams struct {
	A, B float64
}

// Params keeps one parameter record per kind. Records are independent, so
// switching kinds never disturbs the values of another kind.
type Params struct {
	Circle    CircleParams
	Parabola  ConicParams
	Ellipse   ConicParams
	Hyperbola ConicParams
}

// DefaultParams returns the parameters shown on first launch.
func DefaultParams() Params {
	conic := ConicParams{A: 1, B: 0.5}
	return Params{
		Circle:    CircleParams{Radius: 0.5},
		Parabola:  conic,
		Ellipse:   conic,
		Hyperbola: conic,
	}
}

func (p *Params) conic(k Kind) *ConicParams {
	switch k {
	case Parabola:
		return &p.Parabola
	case Ellipse:
		return &p.Ellipse
	case Hyperbola:
		return &p.Hyperbola
	}
	return nil
}

// Get returns field f of kind k, or 0 if k has no such field.
func (p Params) Get(k Kind, f Field) float64 {
	if k == Circle {
		if f == FieldRadius {
			return p.Circle.Radius
		}
		return 0
	}
	c := p.conic(k)
	if c == nil {
		return 0
	}
	switch f {
	case FieldA:
		return c.A
	case FieldB:
		return c.B
	}
	return 0
}

// Set stores v into field f of kind k, clamped to the field's range. It
// reports whether the kind has the field.
func (p *Params) Set(k Kind, f Field, v float64) bool {
	var r Range
	found := false
	for _, c := range k.Controls() {
		if c.Field == f {
			r, found = c.Range, true
			break
		}
	}
	if !found {
		return false
	}
	v = r.Clamp(v)

	if k == Circle {
		p.Circle.Radius = v
		return true
	}
	c := p.conic(k)
	switch f {
	case FieldA:
		c.A = v
	case FieldB:
		c.B = v
	}
	return true
}
