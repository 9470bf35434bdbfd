// Package app holds the visualizer's state, routes pointer input to it and
// builds each frame as a draw list. It has no graphics dependencies.
package app

import (
	"github.com/iburimskiy/curves-visualizer/internal/curve"
	"seehuhn.de/go/geom/vec"
)

// NoSlider marks that no slider is being dragged.
const NoSlider = -1

// Pointer is the mouse state sampled once per frame. Pressed is the current
// level of the primary button, not a press edge.
type Pointer struct {
	Pos     vec.Vec2 // window pixels
	Pressed bool
}

// Effects reports what an Update changed.
type Effects struct {
	PageChanged  bool
	KindChanged  bool
	ValueChanged bool
}

// Any reports whether anything changed.
func (e Effects) Any() bool { return e.PageChanged || e.KindChanged || e.ValueChanged }

// State is the complete state of the visualizer.
type State struct {
	Page   Page
	Kind   curve.Kind
	Params curve.Params

	// ActiveSlider is the index, in Kind's control order, of the slider last
	// grabbed while the button is held, or NoSlider.
	ActiveSlider int

	ly layout
}

// New returns the state shown at launch: the start page with a circle of
// radius 0.5 selected.
func New() *State {
	return &State{
		Page:         PageStart,
		Kind:         curve.Circle,
		Params:       curve.DefaultParams(),
		ActiveSlider: NoSlider,
		ly:           newLayout(),
	}
}

// Update applies one frame of pointer input. While the button is held every
// frame re-applies its effect: a held button over a slider keeps setting the
// value, and a held button over a page button keeps triggering it.
func (s *State) Update(p Pointer) Effects {
	if !p.Pressed {
		s.ActiveSlider = NoSlider
		return Effects{}
	}

	page, kind, params := s.Page, s.Kind, s.Params
	switch s.Page {
	case PageStart:
		if s.ly.start.Hit(s.ly.window.ToLocal(p.Pos)) {
			s.Page = s.Page.Advance()
		}
	case PageInfo:
		local := s.ly.window.ToLocal(p.Pos)
		if s.ly.back.Hit(local) {
			s.Page = s.Page.Back()
		} else if s.ly.cont.Hit(local) {
			s.Page = s.Page.Advance()
		}
	case PageMain:
		s.updateMain(p.Pos)
	}

	return Effects{
		PageChanged:  s.Page != page,
		KindChanged:  s.Kind != kind,
		ValueChanged: s.Params != params,
	}
}

func (s *State) updateMain(pos vec.Vec2) {
	if !s.ly.left.Contains(pos) {
		return
	}
	local := s.ly.left.ToLocal(pos)

	for i, b := range s.ly.curveBtn {
		if b.Hit(local) {
			s.Kind = curve.Kinds[i]
		}
	}

	controls := s.Kind.Controls()
	for i, sl := range s.ly.sliders(s.Kind) {
		if sl.Hit(local) {
			s.ActiveSlider = i
			s.Params.Set(s.Kind, controls[i].Field, sl.ValueAt(local.X))
			break
		}
	}
}
