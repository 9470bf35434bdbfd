// Package ui implements panels with explicit coordinate transforms and the
// immediate-mode widgets (buttons, sliders) drawn into them.
package ui

import (
	"github.com/iburimskiy/curves-visualizer/internal/draw"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// Panel is a rectangular region of the window with its own coordinate
// system. The transform maps panel-local coordinates to window pixels.
// Pointer coordinates must go through ToLocal before they are compared with
// a panel's local layout.
type Panel struct {
	Bounds   draw.Rect // window pixels
	toWindow matrix.Matrix
	toLocal  matrix.Matrix
}

// NewPanel returns a panel whose local origin is its top-left corner, with
// one local unit per pixel and y growing downwards.
func NewPanel(bounds draw.Rect) Panel {
	return newPanel(bounds, matrix.Matrix{1, 0, 0, 1, bounds.X, bounds.Y})
}

// NewCenteredPanel returns a panel whose local origin is its center, with y
// growing upwards. The local extent is [-halfH·aspect, halfH·aspect] ×
// [-halfH, halfH], where aspect is the panel's width over its height.
func NewCenteredPanel(bounds draw.Rect, halfH float64) Panel {
	scale := bounds.H / (2 * halfH)
	cx := bounds.X + bounds.W/2
	cy := bounds.Y + bounds.H/2
	return newPanel(bounds, matrix.Matrix{scale, 0, 0, -scale, cx, cy})
}

func newPanel(bounds draw.Rect, m matrix.Matrix) Panel {
	return Panel{Bounds: bounds, toWindow: m, toLocal: invert(m)}
}

// Extent returns the local coordinates of the panel's left, right, bottom and
// top window edges.
func (p Panel) Extent() (left, right, bottom, top float64) {
	tl := p.ToLocal(p.Bounds.Min())
	br := p.ToLocal(vec.Vec2{X: p.Bounds.X + p.Bounds.W, Y: p.Bounds.Y + p.Bounds.H})
	return tl.X, br.X, br.Y, tl.Y
}

// ToWindow maps a local point to window pixels.
func (p Panel) ToWindow(v vec.Vec2) vec.Vec2 { return apply(p.toWindow, v) }

// ToLocal maps a window pixel position to local coordinates.
func (p Panel) ToLocal(v vec.Vec2) vec.Vec2 { return apply(p.toLocal, v) }

// Contains reports whether the window position v lies inside the panel.
func (p Panel) Contains(v vec.Vec2) bool { return p.Bounds.Contains(v) }

// RectToWindow maps a local rectangle to window pixels. The result is
// normalized so that W and H are non-negative.
func (p Panel) RectToWindow(r draw.Rect) draw.Rect {
	a := p.ToWindow(vec.Vec2{X: r.X, Y: r.Y})
	b := p.ToWindow(vec.Vec2{X: r.X + r.W, Y: r.Y + r.H})
	return draw.Rect{
		X: min(a.X, b.X),
		Y: min(a.Y, b.Y),
		W: max(a.X, b.X) - min(a.X, b.X),
		H: max(a.Y, b.Y) - min(a.Y, b.Y),
	}
}

// PointsToWindow maps a slice of local points to window pixels.
func (p Panel) PointsToWindow(pts []vec.Vec2) []vec.Vec2 {
	out := make([]vec.Vec2, len(pts))
	for i, v := range pts {
		out[i] = p.ToWindow(v)
	}
	return out
}

// SegmentsToWindow maps local segments to window pixels.
func (p Panel) SegmentsToWindow(segs [][2]vec.Vec2) [][2]vec.Vec2 {
	out := make([][2]vec.Vec2, len(segs))
	for i, s := range segs {
		out[i] = [2]vec.Vec2{p.ToWindow(s[0]), p.ToWindow(s[1])}
	}
	return out
}

// apply maps v through m, using the [a b c d e f] layout
// x' = a·x + c·y + e, y' = b·x + d·y + f.
func apply(m matrix.Matrix, v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: m[0]*v.X + m[2]*v.Y + m[4],
		Y: m[1]*v.X + m[3]*v.Y + m[5],
	}
}

// invert returns the inverse of m. Panels are built from non-degenerate
// rectangles, so the determinant is never zero.
func invert(m matrix.Matrix) matrix.Matrix {
	det := m[0]*m[3] - m[1]*m[2]
	a := m[3] / det
	b := -m[1] / det
	c := -m[2] / det
	d := m[0] / det
	return matrix.Matrix{a, b, c, d, -(a*m[4] + c*m[5]), -(b*m[4] + d*m[5])}
}
