//go:build ebiten

package app

import (
	"fmt"
	"image/color"
	"time"

	"toroid-life/internal/render"
	"toroid-life/internal/sim"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts the simulation driver to the ebiten.Game interface. It starts
// paused, matching the terminal build's blocking first frame.
type Game struct {
	drv     *sim.Driver
	painter *render.GridPainter

	onColor  color.Color
	offColor color.Color

	scale    int
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game around the provided driver.
func New(drv *sim.Driver, scale int, seed int64) *Game {
	h, w := drv.Current().Dims()
	return &Game{
		drv:      drv,
		painter:  render.NewGridPainter(w, h),
		onColor:  color.White,
		offColor: color.Black,
		scale:    scale,
		paused:   true,
		seed:     seed,
	}
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.drv.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.drv.Reset(time.Now().UnixNano())
	}

	if (!g.paused) || g.tickOnce {
		g.tickOnce = false
		if err := g.drv.Step(); err != nil {
			return err
		}
	}
	return nil
}

// Draw renders the current generation plus a one-line status summary.
func (g *Game) Draw(screen *ebiten.Image) {
	grid := g.drv.Current()
	g.painter.Blit(screen, grid.Cells(), g.onColor, g.offColor, g.scale)

	h, w := grid.Dims()
	ebitenutil.DebugPrint(screen, fmt.Sprintf("(%d x %d)  Gen:%6d  Lives:%6d  Time: %.6f",
		h, w, g.drv.Gen(), grid.LiveCount(), g.drv.Elapsed().Seconds()))
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	h, w := g.drv.Current().Dims()
	return w * g.scale, h * g.scale
}
