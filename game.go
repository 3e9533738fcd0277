package main

import (
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/dashcore/config"
	"github.com/milk9111/dashcore/levels"
	"github.com/milk9111/dashcore/session"
	"github.com/milk9111/dashcore/watch"
)

type Game struct {
	sess    *session.Session
	ui      *ebitenui.UI
	watcher *watch.Watcher
	logger  *log.Logger

	configPath string
	levelName  string

	paused bool
	quit   bool
	debug  bool
}

func NewGame(sess *session.Session, levelName, configPath string, watcher *watch.Watcher, logger *log.Logger, debug bool) *Game {
	g := &Game{
		sess:       sess,
		watcher:    watcher,
		logger:     logger,
		configPath: configPath,
		levelName:  levelName,
		debug:      debug,
	}
	g.ui = NewPauseUI(g)
	return g
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.paused = !g.paused
	}
	if g.paused {
		g.ui.Update()
		return nil
	}

	g.hotReload()
	g.sess.Step()
	return nil
}

// hotReload rebuilds config and level after an edit. A broken file is
// logged and the running state is kept.
func (g *Game) hotReload() {
	if g.watcher == nil {
		return
	}
	paths, errs := g.watcher.Poll()
	for _, err := range errs {
		g.logger.Warn("watcher", "err", err)
	}
	if len(paths) == 0 {
		return
	}
	for _, p := range paths {
		g.logger.Debug("changed", "path", filepath.Base(p))
	}

	cfg, err := config.Load(g.configPath)
	if err != nil {
		g.logger.Error("reload config", "err", err)
		return
	}
	grid, err := levels.LoadFrom(cfg.Level.Dir, g.levelName, cfg.Level.BlockSize)
	if err != nil {
		g.logger.Error("reload level", "level", g.levelName, "err", err)
		return
	}
	g.sess.Reload(cfg, grid)
	g.logger.Info("reloaded", "level", g.levelName, "solids", grid.Len())
}

func (g *Game) Draw(screen *ebiten.Image) {
	cfg := g.sess.Config()
	grid := g.sess.World.Grid()
	v := newView(g.sess.CameraState(), cfg.Window.Width, cfg.Window.Height)

	drawLevel(screen, v, grid)
	p := g.sess.PlayerState()
	if grid != nil {
		drawPlayer(screen, v, p, grid.HalfBlock())
	}

	if p != nil {
		hud := fmt.Sprintf("dash: %s  charges: %d\nlast: %.1f  best: %.1f",
			p.Dash.State, p.Dash.Charges, g.sess.Records.Last(), g.sess.Records.Best())
		if g.debug {
			hud += fmt.Sprintf("\npos: (%.1f, %.1f)  vel: (%.1f, %.1f)  grounded: %t\nTPS: %.1f  FPS: %.1f",
				p.Body.Position.X, p.Body.Position.Y, p.Body.Velocity.X, p.Body.Velocity.Y,
				p.Body.Grounded, ebiten.ActualTPS(), ebiten.ActualFPS())
		}
		ebitenutil.DebugPrint(screen, hud)
	}

	if g.paused {
		g.ui.Draw(screen)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	cfg := g.sess.Config()
	return float64(cfg.Window.Width), float64(cfg.Window.Height)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
