// Package game runs the visualizer inside ebiten's game loop.
package game

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/iburimskiy/curves-visualizer/internal/app"
	"github.com/iburimskiy/curves-visualizer/internal/audio"
	"github.com/iburimskiy/curves-visualizer/internal/config"
	"github.com/iburimskiy/curves-visualizer/internal/render"
	"seehuhn.de/go/geom/vec"
)

const audioBuffer = time.Second / 20

type game struct {
	state    *app.State
	renderer *render.Renderer
	clicker  *audio.Clicker

	cursor  vec.Vec2
	showTPS bool
}

// New returns an ebiten.Game showing the start page.
func New() (ebiten.Game, error) {
	r, err := render.New(logger)
	if err != nil {
		return nil, fmt.Errorf("create renderer: %w", err)
	}
	return &game{
		state:    app.New(),
		renderer: r,
		clicker:  openSpeaker(),
	}, nil
}

func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		g.showTPS = !g.showTPS
	}

	p := pollPointer()
	g.cursor = p.Pos

	eff := g.state.Update(p)
	if eff.PageChanged {
		logger.Info("page", "to", g.state.Page)
		g.clicker.PageClick()
	}
	if eff.KindChanged {
		logger.Info("curve", "kind", g.state.Kind)
		g.clicker.KindClick()
	}
	if eff.ValueChanged {
		logger.Debug("parameters", "kind", g.state.Kind, "params", g.state.Params)
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.state.Frame(g.cursor))
	if g.showTPS {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS: %0.1f", ebiten.ActualTPS()), config.WindowWidth-80, config.WindowHeight-20)
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.WindowWidth, config.WindowHeight
}
