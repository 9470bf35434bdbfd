package app

import (
	"github.com/iburimskiy/curves-visualizer/internal/config"
	"github.com/iburimskiy/curves-visualizer/internal/curve"
	"github.com/iburimskiy/curves-visualizer/internal/draw"
	"seehuhn.de/go/geom/vec"
)

var infoLines = []string{
	"- Interactive visualizations with real-time controls",
	"- Adjust parameters using sliders",
	"- Educational facts and equations",
}

// Frame builds the draw list for the current page. Hover highlights follow
// cursor regardless of the button state.
func (s *State) Frame(cursor vec.Vec2) *draw.List {
	l := &draw.List{}
	l.Clear(config.ColorBG)

	switch s.Page {
	case PageStart:
		s.drawStart(l, cursor)
	case PageInfo:
		s.drawInfo(l, cursor)
	case PageMain:
		s.drawControls(l, cursor)
		s.drawPlot(l)
		s.drawFact(l)
	}
	return l
}

func (s *State) drawStart(l *draw.List, cursor vec.Vec2) {
	w := s.ly.window
	l.Text(config.WindowTitle, w.ToWindow(vec.Vec2{X: config.StartTitleX, Y: config.StartTitleY}),
		config.TitleSize, config.ColorAccent)
	s.ly.start.Draw(l, w, s.ly.start.Hit(w.ToLocal(cursor)), false)
}

func (s *State) drawInfo(l *draw.List, cursor vec.Vec2) {
	w := s.ly.window
	local := w.ToLocal(cursor)

	l.Text("Learn Mathematical Curves", w.ToWindow(vec.Vec2{X: config.InfoTextX, Y: config.InfoTitleY}),
		config.HeadingSize, config.ColorAccent)
	for i, line := range infoLines {
		pos := vec.Vec2{X: config.InfoTextX, Y: float64(config.InfoFirstLineY + i*config.InfoLineStride)}
		l.Text(line, w.ToWindow(pos), config.BodySize, config.ColorText)
	}
	s.ly.back.Draw(l, w, s.ly.back.Hit(local), false)
	s.ly.cont.Draw(l, w, s.ly.cont.Hit(local), false)
}

func (s *State) drawControls(l *draw.List, cursor vec.Vec2) {
	p := s.ly.left
	local := p.ToLocal(cursor)
	over := p.Contains(cursor)

	l.FillRect(p.Bounds, config.ColorPanel)
	l.Text("Select Curve:", p.ToWindow(vec.Vec2{X: config.HeadingX, Y: config.SelectHeaderY}),
		config.SectionSize, config.ColorText)
	for i, b := range s.ly.curveBtn {
		b.Draw(l, p, over && b.Hit(local), s.Kind == curve.Kinds[i])
	}

	l.Text("Parameters:", p.ToWindow(vec.Vec2{X: config.HeadingX, Y: config.ParamsHeaderY}),
		config.SectionSize, config.ColorText)
	controls := s.Kind.Controls()
	for i, sl := range s.ly.sliders(s.Kind) {
		sl.Draw(l, p, s.Params.Get(s.Kind, controls[i].Field), s.ActiveSlider == i)
	}
}

func (s *State) drawPlot(l *draw.List) {
	p := s.ly.plot
	l.SetClip(p.Bounds)
	defer l.SetClip(draw.Rect{})

	l.Lines(p.SegmentsToWindow(curve.Grid()), config.GridWidth, config.ColorGrid)
	for _, line := range curve.Sample(s.Kind, s.Params) {
		l.Polyline(p.PointsToWindow(line.Points), line.Closed, config.CurveWidth, config.ColorAccent)
	}
}

func (s *State) drawFact(l *draw.List) {
	p := s.ly.info
	l.FillRect(p.Bounds, config.ColorPanel)
	l.Text(curve.Fact(s.Kind, s.Params), p.ToWindow(vec.Vec2{X: config.FactX, Y: config.FactY}),
		config.FactSize, config.ColorText)
}
