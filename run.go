package sketchpad

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title     string
	Width     int
	Height    int
	Resizable bool
	// ShowFPS prints FPS, TPS and the current zoom in the top-left corner.
	ShowFPS bool
}

// game adapts a Canvas to ebiten.Game.
type game struct {
	canvas  *Canvas
	showFPS bool
}

func (g *game) Update() error {
	g.canvas.Update()
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.canvas.Draw(screen)
	if g.showFPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nZoom: %.2f",
			ebiten.ActualFPS(), ebiten.ActualTPS(), g.canvas.Camera().Zoom()))
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.canvas.Resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

// Run opens a window and drives canvas until the window is closed.
func Run(canvas *Canvas, cfg RunConfig) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("run: invalid window size %dx%d", cfg.Width, cfg.Height)
	}
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(cfg.Title)
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	canvas.Resize(cfg.Width, cfg.Height)
	if err := ebiten.RunGame(&game{canvas: canvas, showFPS: cfg.ShowFPS}); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}
