//go:build ebiten

package app

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"cellgame/internal/render"
	"cellgame/internal/ui"
	"cellgame/pkg/cell"
	"cellgame/pkg/cellnet"
	"cellgame/pkg/event"
)

// Game adapts a cell net to the ebiten.Game interface.
type Game struct {
	net     *cellnet.Net
	grid    *cellnet.Grid
	painter *render.GridPainter
	overlay *ui.Overlay
	log     *zap.Logger

	onColor  color.Color
	offColor color.Color

	cfg      *Config
	kind     *cell.Kind
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game running a fresh grid net from the configuration.
func New(cfg *Config, kind *cell.Kind, log *zap.Logger) *Game {
	g := &Game{
		painter:  render.NewGridPainter(cfg.Cols, cfg.Rows),
		overlay:  ui.NewOverlay(),
		log:      log,
		onColor:  color.White,
		offColor: color.Black,
		cfg:      cfg,
		kind:     kind,
		seed:     cfg.Seed,
	}
	g.Reset(cfg.Seed)
	return g
}

// Reset rebuilds the net and reseeds the initial generation.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	bus := event.NewBus()
	g.grid = cellnet.NewGrid(g.kind, g.cfg.Rows, g.cfg.Cols, bus)
	g.net = cellnet.New(g.grid, bus)
	if g.cfg.Random {
		if err := SeedGrid(g.grid, seed); err != nil {
			g.log.Error("seed grid", zap.Error(err))
		}
	}
	g.tickOnce = false
	g.log.Info("reset", zap.Int64("seed", seed),
		zap.Int("rows", g.cfg.Rows), zap.Int("cols", g.cfg.Cols))
}

// Update handles per-frame input and advances the net.
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
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}

	g.overlay.Update()

	if !g.paused || g.tickOnce {
		if err := g.net.Tick(1); err != nil {
			return err
		}
		g.tickOnce = false
	}
	g.overlay.SetGeneration(g.net.Generation())
	return nil
}

// Draw renders the current generation.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.grid, g.onColor, g.offColor, g.cfg.Scale)
	g.overlay.Draw(screen)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Cols * g.cfg.Scale, g.cfg.Rows * g.cfg.Scale
}
