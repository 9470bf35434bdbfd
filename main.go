package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/iburimskiy/curves-visualizer/internal/config"
	"github.com/iburimskiy/curves-visualizer/internal/game"
	"github.com/ncruces/zenity"
)

func run() error {
	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetTPS(config.TPS)

	g, err := game.New()
	if err != nil {
		return err
	}
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	game.SetLogger(logger)

	if err := run(); err != nil {
		logger.Error("fatal", "err", err)
		if dlgErr := zenity.Error(err.Error(), zenity.Title(config.WindowTitle)); dlgErr != nil {
			logger.Warn("error dialog", "err", dlgErr)
		}
		os.Exit(1)
	}
}
