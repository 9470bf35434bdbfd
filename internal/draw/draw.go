// Package draw describes a frame as a flat list of 2D drawing commands in
// window pixel coordinates (origin top-left, y down). A backend consumes the
// list; nothing here depends on a graphics context.
package draw

import (
	"image/color"

	"seehuhn.de/go/geom/vec"
)

// Rect is an axis-aligned rectangle given by its top-left corner and size.
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p vec.Vec2) bool {
	return p.X >= r.X && p.X <= r.X+r.W && p.Y >= r.Y && p.Y <= r.Y+r.H
}

// Grow returns r enlarged by dx on the left and right and dy on the top and
// bottom.
func (r Rect) Grow(dx, dy float64) Rect {
	return Rect{X: r.X - dx, Y: r.Y - dy, W: r.W + 2*dx, H: r.H + 2*dy}
}

// Offset returns r translated by d.
func (r Rect) Offset(d vec.Vec2) Rect {
	return Rect{X: r.X + d.X, Y: r.Y + d.Y, W: r.W, H: r.H}
}

// Empty reports whether r covers no area.
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Min returns the top-left corner.
func (r Rect) Min() vec.Vec2 { return vec.Vec2{X: r.X, Y: r.Y} }

// Align positions text within its box.
type Align int

const (
	AlignTopLeft Align = iota
	AlignCenter
)

// Command is one drawing primitive.
type Command interface {
	isCommand()
}

// Clear fills the whole target.
type Clear struct {
	Color color.NRGBA
}

// FillRect fills a rectangle.
type FillRect struct {
	Rect  Rect
	Color color.NRGBA
}

// StrokeRect outlines a rectangle.
type StrokeRect struct {
	Rect  Rect
	Width float64
	Color color.NRGBA
}

// Lines draws independent segments. A non-empty Clip limits drawing to that
// rectangle.
type Lines struct {
	Segments [][2]vec.Vec2
	Width    float64
	Color    color.NRGBA
	Clip     Rect
}

// Polyline draws connected segments through Points, joining the last point
// back to the first when Closed is set. A non-empty Clip limits drawing to
// that rectangle.
type Polyline struct {
	Points []vec.Vec2
	Closed bool
	Width  float64
	Color  color.NRGBA
	Clip   Rect
}

// Text draws a single line of text. With AlignTopLeft, Pos is the top-left
// corner of the line box; with AlignCenter the line is centered in Box.
type Text struct {
	Str   string
	Pos   vec.Vec2
	Box   Rect
	Align Align
	Size  float64
	Color color.NRGBA
}

func (Clear) isCommand()      {}
func (FillRect) isCommand()   {}
func (StrokeRect) isCommand() {}
func (Lines) isCommand()      {}
func (Polyline) isCommand()   {}
func (Text) isCommand()       {}

// List collects the commands of one frame in painting order.
type List struct {
	Commands []Command

	clip Rect
}

// SetClip makes subsequent Lines and Polyline commands clip to r. The zero
// Rect removes the clip.
func (l *List) SetClip(r Rect) { l.clip = r }

func (l *List) add(c Command) { l.Commands = append(l.Commands, c) }

func (l *List) Clear(c color.NRGBA) { l.add(Clear{Color: c}) }

func (l *List) FillRect(r Rect, c color.NRGBA) { l.add(FillRect{Rect: r, Color: c}) }

func (l *List) StrokeRect(r Rect, width float64, c color.NRGBA) {
	l.add(StrokeRect{Rect: r, Width: width, Color: c})
}

func (l *List) Lines(segs [][2]vec.Vec2, width float64, c color.NRGBA) {
	l.add(Lines{Segments: segs, Width: width, Color: c, Clip: l.clip})
}

func (l *List) Polyline(pts []vec.Vec2, closed bool, width float64, c color.NRGBA) {
	l.add(Polyline{Points: pts, Closed: closed, Width: width, Color: c, Clip: l.clip})
}

// Text adds a top-left anchored line of text.
func (l *List) Text(s string, pos vec.Vec2, size float64, c color.NRGBA) {
	l.add(Text{Str: s, Pos: pos, Size: size, Color: c})
}

// CenteredText adds a line of text centered in box.
func (l *List) CenteredText(s string, box Rect, size float64, c color.NRGBA) {
	l.add(Text{Str: s, Pos: box.Min(), Box: box, Align: AlignCenter, Size: size, Color: c})
}

// Texts returns the strings of all text commands in order.
func (l *List) Texts() []string {
	var out []string
	for _, c := range l.Commands {
		if t, ok := c.(Text); ok {
			out = append(out, t.Str)
		}
	}
	return out
}

// Segments returns the line segments a Polyline command draws.
func (p Polyline) Segments() [][2]vec.Vec2 {
	if len(p.Points) < 2 {
		return nil
	}
	out := make([][2]vec.Vec2, 0, len(p.Points))
	for i := 1; i < len(p.Points); i++ {
		out = append(out, [2]vec.Vec2{p.Points[i-1], p.Points[i]})
	}
	if p.Closed {
		out = append(out, [2]vec.Vec2{p.Points[len(p.Points)-1], p.Points[0]})
	}
	return out
}
