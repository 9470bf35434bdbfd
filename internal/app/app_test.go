package app

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/iburimskiy/curves-visualizer/internal/config"
	"github.com/iburimskiy/curves-visualizer/internal/curve"
	"github.com/iburimskiy/curves-visualizer/internal/draw"
	"seehuhn.de/go/geom/vec"
)

func press(x, y float64) Pointer { return Pointer{Pos: vec.Vec2{X: x, Y: y}, Pressed: true} }

func hover(x, y float64) Pointer { return Pointer{Pos: vec.Vec2{X: x, Y: y}} }

// Button centers in window pixels.
var (
	startBtn    = vec.Vec2{X: 640, Y: 435}
	backBtn     = vec.Vec2{X: 375, Y: 625}
	continueBtn = vec.Vec2{X: 825, Y: 625}
)

func curveBtn(k curve.Kind) vec.Vec2 {
	return vec.Vec2{X: 140, Y: 120 + 80*float64(k)}
}

func mainState() *State {
	s := New()
	s.Page = PageMain
	return s
}

func TestPageSequence(t *testing.T) {
	tests := []struct {
		p             Page
		advance, back Page
	}{
		{PageStart, PageInfo, PageStart},
		{PageInfo, PageMain, PageStart},
		{PageMain, PageMain, PageMain},
	}
	for _, tc := range tests {
		if got := tc.p.Advance(); got != tc.advance {
			t.Errorf("%v.Advance() = %v, want %v", tc.p, got, tc.advance)
		}
		if got := tc.p.Back(); got != tc.back {
			t.Errorf("%v.Back() = %v, want %v", tc.p, got, tc.back)
		}
	}
}

func TestPageTransitions(t *testing.T) {
	tests := []struct {
		name string
		from Page
		at   vec.Vec2
		want Page
	}{
		{"start", PageStart, startBtn, PageInfo},
		{"back", PageInfo, backBtn, PageStart},
		{"continue", PageInfo, continueBtn, PageMain},
		{"start misses", PageStart, vec.Vec2{X: 10, Y: 10}, PageStart},
		{"continue spot on start page", PageStart, continueBtn, PageStart},
		{"start spot on info page", PageInfo, startBtn, PageInfo},
		{"main has no page buttons", PageMain, continueBtn, PageMain},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := New()
			s.Page = tc.from
			eff := s.Update(Pointer{Pos: tc.at, Pressed: true})
			if s.Page != tc.want {
				t.Errorf("page = %v, want %v", s.Page, tc.want)
			}
			if eff.PageChanged != (tc.from != tc.want) {
				t.Errorf("PageChanged = %v", eff.PageChanged)
			}
		})
	}
}

func TestReleasedButtonDoesNothing(t *testing.T) {
	s := New()
	if eff := s.Update(hover(startBtn.X, startBtn.Y)); eff.Any() {
		t.Errorf("hover changed state: %+v", eff)
	}
	if s.Page != PageStart {
		t.Errorf("page = %v", s.Page)
	}
}

func TestHeldButtonRepeats(t *testing.T) {
	s := New()
	s.Update(press(startBtn.X, startBtn.Y))
	if s.Page != PageInfo {
		t.Fatalf("page = %v, want info", s.Page)
	}

	// Moving onto Continue with the button still held triggers it.
	s.Update(press(continueBtn.X, continueBtn.Y))
	if s.Page != PageMain {
		t.Fatalf("page = %v, want main", s.Page)
	}
}

func TestRadiusDragScenario(t *testing.T) {
	s := mainState()
	if s.Kind != curve.Circle || s.Params.Circle.Radius != 0.5 {
		t.Fatalf("unexpected initial state %v %+v", s.Kind, s.Params.Circle)
	}

	// right edge of the radius track
	eff := s.Update(press(config.SliderX+config.SliderWidth, config.FirstSliderY+10))
	if !eff.ValueChanged {
		t.Error("value change not reported")
	}
	if s.Params.Circle.Radius != 1.5 {
		t.Fatalf("radius = %v, want 1.5", s.Params.Circle.Radius)
	}
	if s.ActiveSlider != 0 {
		t.Errorf("active slider = %d, want 0", s.ActiveSlider)
	}

	maxX := math.Inf(-1)
	for _, pt := range curve.Sample(s.Kind, s.Params)[0].Points {
		maxX = max(maxX, pt.X)
	}
	if math.Abs(maxX-1.5) > 1e-9 {
		t.Errorf("max x = %v, want 1.5", maxX)
	}

	s.Update(hover(0, 0))
	if s.ActiveSlider != NoSlider {
		t.Errorf("active slider = %d after release", s.ActiveSlider)
	}
}

func TestSliderMapping(t *testing.T) {
	y := config.FirstSliderY + 10.0
	tests := []struct {
		x, want float64
	}{
		{config.SliderX, 0.1},
		{config.SliderX + config.SliderWidth/2, 0.8},
		{config.SliderX + config.SliderWidth, 1.5},
	}
	for _, tc := range tests {
		s := mainState()
		s.Update(press(tc.x, y))
		if got := s.Params.Circle.Radius; math.Abs(got-tc.want) > 1e-12 {
			t.Errorf("x=%v: radius = %v, want %v", tc.x, got, tc.want)
		}
	}
}

func TestSliderGrabBand(t *testing.T) {
	s := mainState()
	// 10 px above the track still grabs it
	s.Update(press(config.SliderX, config.FirstSliderY-10))
	if s.Params.Circle.Radius != 0.1 {
		t.Errorf("radius = %v, want 0.1", s.Params.Circle.Radius)
	}

	s = mainState()
	s.Update(press(config.SliderX, config.FirstSliderY-11))
	if s.Params.Circle.Radius != 0.5 {
		t.Errorf("radius = %v, want unchanged 0.5", s.Params.Circle.Radius)
	}
}

func TestHeldSliderFollowsPointer(t *testing.T) {
	s := mainState()
	s.Update(press(curveBtn(curve.Parabola).X, curveBtn(curve.Parabola).Y))

	y := config.SecondSliderY + 10.0
	for _, x := range []float64{30, 90, 150, 270} {
		s.Update(press(x, y))
		want := -2 + (x-30)/240*4
		if got := s.Params.Parabola.B; math.Abs(got-want) > 1e-12 {
			t.Errorf("x=%v: b = %v, want %v", x, got, want)
		}
	}
	if s.ActiveSlider != 1 {
		t.Errorf("active slider = %d, want 1", s.ActiveSlider)
	}
	if s.Params.Parabola.A != 1 {
		t.Errorf("a = %v, want untouched 1", s.Params.Parabola.A)
	}
}

func TestSelectKind(t *testing.T) {
	for _, k := range curve.Kinds {
		s := mainState()
		c := curveBtn(k)
		eff := s.Update(press(c.X, c.Y))
		if s.Kind != k {
			t.Errorf("clicked %v, got %v", k, s.Kind)
		}
		if eff.KindChanged != (k != curve.Circle) {
			t.Errorf("%v: KindChanged = %v", k, eff.KindChanged)
		}
	}
}

func TestSwitchKindPreservesParams(t *testing.T) {
	s := mainState()
	s.Params.Set(curve.Circle, curve.FieldRadius, 0.8)
	ellipse := s.Params.Ellipse

	c := curveBtn(curve.Ellipse)
	s.Update(press(c.X, c.Y))
	if s.Kind != curve.Ellipse {
		t.Fatalf("kind = %v", s.Kind)
	}
	if d := cmp.Diff(ellipse, s.Params.Ellipse); d != "" {
		t.Errorf("ellipse params reset: %s", d)
	}
	if s.Params.Circle.Radius != 0.8 {
		t.Errorf("radius = %v, want 0.8", s.Params.Circle.Radius)
	}

	c = curveBtn(curve.Circle)
	s.Update(press(c.X, c.Y))
	if s.Params.Circle.Radius != 0.8 {
		t.Errorf("radius after switching back = %v", s.Params.Circle.Radius)
	}
}

func TestPlotPanelIgnoresClicks(t *testing.T) {
	s := mainState()
	before := *s
	// Window positions that would hit the curve buttons or sliders if they
	// were compared without moving into the left panel's space.
	for _, p := range []Pointer{press(500, 120), press(700, config.FirstSliderY+10), press(1279, 719)} {
		if eff := s.Update(p); eff.Any() {
			t.Errorf("%v changed state: %+v", p.Pos, eff)
		}
	}
	if s.Kind != before.Kind || s.Params != before.Params {
		t.Error("state changed")
	}
}

func findText(l *draw.List, str string) (draw.Text, bool) {
	for _, c := range l.Commands {
		if t, ok := c.(draw.Text); ok && t.Str == str {
			return t, true
		}
	}
	return draw.Text{}, false
}

func TestFrameStart(t *testing.T) {
	s := New()
	l := s.Frame(vec.Vec2{})
	if _, ok := l.Commands[0].(draw.Clear); !ok {
		t.Errorf("first command %T, want Clear", l.Commands[0])
	}
	want := []string{"Math Curves Visualizer", "Start"}
	if d := cmp.Diff(want, l.Texts()); d != "" {
		t.Error(d)
	}

	fillOf := func(cursor vec.Vec2) draw.FillRect {
		for _, c := range s.Frame(cursor).Commands {
			if f, ok := c.(draw.FillRect); ok {
				return f
			}
		}
		t.Fatal("no button fill")
		return draw.FillRect{}
	}
	if got := fillOf(startBtn).Color; got != config.ColorButtonOver {
		t.Errorf("hovered start button fill %v", got)
	}
	if got := fillOf(vec.Vec2{}).Color; got != config.ColorButton {
		t.Errorf("idle start button fill %v", got)
	}
}

func TestFrameInfo(t *testing.T) {
	s := New()
	s.Page = PageInfo
	want := []string{
		"Learn Mathematical Curves",
		"- Interactive visualizations with real-time controls",
		"- Adjust parameters using sliders",
		"- Educational facts and equations",
		"Back",
		"Continue",
	}
	if d := cmp.Diff(want, s.Frame(vec.Vec2{}).Texts()); d != "" {
		t.Error(d)
	}
}

func TestFrameMain(t *testing.T) {
	s := mainState()
	s.Kind = curve.Ellipse
	l := s.Frame(vec.Vec2{})

	want := []string{
		"Select Curve:", "Circle", "Parabola", "Ellipse", "Hyperbola",
		"Parameters:", "A (x-axis): 1.00", "B (y-axis): 0.50",
		"An ellipse: (x/1.00)² + (y/0.50)² = 1",
	}
	if d := cmp.Diff(want, l.Texts()); d != "" {
		t.Error(d)
	}

	var polylines []draw.Polyline
	var grids int
	for _, c := range l.Commands {
		switch c := c.(type) {
		case draw.Polyline:
			polylines = append(polylines, c)
		case draw.Lines:
			grids++
			if c.Clip != s.ly.plot.Bounds {
				t.Errorf("grid clip = %+v", c.Clip)
			}
		}
	}
	if grids != 1 || len(polylines) != 1 {
		t.Fatalf("got %d grids and %d polylines", grids, len(polylines))
	}

	// θ=0 of the ellipse lies a=1 world units right of the plot center.
	pl := polylines[0]
	if !pl.Closed || len(pl.Points) != 360 {
		t.Errorf("polyline closed=%v len=%d", pl.Closed, len(pl.Points))
	}
	if d := cmp.Diff(vec.Vec2{X: 832 + 180, Y: 360}, pl.Points[0]); d != "" {
		t.Error(d)
	}
	if pl.Clip != s.ly.plot.Bounds {
		t.Errorf("curve clip = %+v", pl.Clip)
	}
}

func TestFrameSelectedKindHighlight(t *testing.T) {
	s := mainState()
	s.Kind = curve.Hyperbola
	l := s.Frame(vec.Vec2{})

	var fills []draw.FillRect
	for _, c := range l.Commands {
		if f, ok := c.(draw.FillRect); ok && f.Rect.X == config.CurveButtonX && f.Rect.W == config.CurveButtonWidth {
			fills = append(fills, f)
		}
	}
	if len(fills) != len(curve.Kinds) {
		t.Fatalf("got %d curve button fills", len(fills))
	}
	for i, f := range fills {
		want := config.ColorButton
		if curve.Kinds[i] == curve.Hyperbola {
			want = config.ColorAccent
		}
		if f.Color != want {
			t.Errorf("button %d fill %v, want %v", i, f.Color, want)
		}
	}
}

func TestFrameActiveThumb(t *testing.T) {
	s := mainState()
	s.Update(press(150, config.FirstSliderY+10))

	l := s.Frame(vec.Vec2{X: 150, Y: config.FirstSliderY + 10})
	found := false
	for _, c := range l.Commands {
		if f, ok := c.(draw.FillRect); ok && f.Rect.W == config.SliderThumbW {
			found = true
			if f.Color != config.ColorHighlight {
				t.Errorf("active thumb fill %v", f.Color)
			}
		}
	}
	if !found {
		t.Error("no thumb drawn")
	}
	if _, ok := findText(l, "Radius: 0.80"); !ok {
		t.Errorf("caption missing in %q", l.Texts())
	}
}
