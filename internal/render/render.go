// Package render draws a draw.List onto an ebiten image.
package render

import (
	"fmt"
	"image"
	"log/slog"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/iburimskiy/curves-visualizer/internal/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
)

// Renderer executes draw lists with ebiten's vector and text packages. Text
// faces are created per pixel size on first use.
type Renderer struct {
	font   *opentype.Font
	faces  map[float64]text.Face
	logger *slog.Logger
}

// New parses the bundled Go Bold font.
func New(logger *slog.Logger) (*Renderer, error) {
	f, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse gobold: %w", err)
	}
	return &Renderer{
		font:   f,
		faces:  map[float64]text.Face{},
		logger: logger,
	}, nil
}

func (r *Renderer) face(size float64) text.Face {
	if f, ok := r.faces[size]; ok {
		return f
	}
	xf, err := opentype.NewFace(r.font, &opentype.FaceOptions{Size: size, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		r.logger.Warn("falling back to basic font", "size", size, "err", err)
		xf = basicfont.Face7x13
	}
	f := text.NewGoXFace(xf)
	r.faces[size] = f
	return f
}

// Draw paints l onto dst in order.
func (r *Renderer) Draw(dst *ebiten.Image, l *draw.List) {
	for _, c := range l.Commands {
		switch c := c.(type) {
		case draw.Clear:
			dst.Fill(c.Color)
		case draw.FillRect:
			vector.DrawFilledRect(dst, f32(c.Rect.X), f32(c.Rect.Y), f32(c.Rect.W), f32(c.Rect.H), c.Color, false)
		case draw.StrokeRect:
			vector.StrokeRect(dst, f32(c.Rect.X), f32(c.Rect.Y), f32(c.Rect.W), f32(c.Rect.H), f32(c.Width), c.Color, true)
		case draw.Lines:
			target := clip(dst, c.Clip)
			for _, s := range c.Segments {
				vector.StrokeLine(target, f32(s[0].X), f32(s[0].Y), f32(s[1].X), f32(s[1].Y), f32(c.Width), c.Color, true)
			}
		case draw.Polyline:
			target := clip(dst, c.Clip)
			for _, s := range c.Segments() {
				vector.StrokeLine(target, f32(s[0].X), f32(s[0].Y), f32(s[1].X), f32(s[1].Y), f32(c.Width), c.Color, true)
			}
		case draw.Text:
			r.drawText(dst, c)
		}
	}
}

func (r *Renderer) drawText(dst *ebiten.Image, t draw.Text) {
	face := r.face(t.Size)
	x, y := t.Pos.X, t.Pos.Y
	if t.Align == draw.AlignCenter {
		w, h := text.Measure(t.Str, face, 0)
		x = t.Box.X + (t.Box.W-w)/2
		y = t.Box.Y + (t.Box.H-h)/2
	}

	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(t.Color)
	text.Draw(dst, t.Str, face, op)
}

// clip returns the part of dst inside r. Sub-images keep dst's coordinates.
func clip(dst *ebiten.Image, r draw.Rect) *ebiten.Image {
	if r.Empty() {
		return dst
	}
	rect := image.Rect(
		int(math.Floor(r.X)), int(math.Floor(r.Y)),
		int(math.Ceil(r.X+r.W)), int(math.Ceil(r.Y+r.H)),
	)
	return dst.SubImage(rect).(*ebiten.Image)
}

func f32(v float64) float32 { return float32(v) }
