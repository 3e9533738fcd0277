package main

import (
	"flag"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/dashcore/config"
	"github.com/milk9111/dashcore/input"
	"github.com/milk9111/dashcore/levels"
	"github.com/milk9111/dashcore/records"
	"github.com/milk9111/dashcore/session"
	"github.com/milk9111/dashcore/telemetry"
	"github.com/milk9111/dashcore/watch"
)

func main() {
	configPath := flag.String("config", "", "YAML config overlay")
	levelName := flag.String("level", "", "level name in levels/ (defaults to the configured level)")
	debug := flag.Bool("debug", false, "enable debug logging and HUD")
	traceDir := flag.String("trace", "", "directory for a per-tick CSV trace")
	hot := flag.Bool("watch", false, "reload config and level on edit")
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true, Prefix: "dashcore"})

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Fatal("config", "err", err)
	}
	if *debug {
		logger.SetLevel(log.DebugLevel)
	} else if lvl, err := log.ParseLevel(cfg.Log.Level); err == nil {
		logger.SetLevel(lvl)
	}

	name := *levelName
	if name == "" {
		name = cfg.Level.Name
	}
	grid, err := levels.LoadFrom(cfg.Level.Dir, name, cfg.Level.BlockSize)
	if err != nil {
		logger.Fatal("level", "name", name, "err", err)
	}

	store, err := records.Open(cfg.Records.AppName)
	if err != nil {
		logger.Warn("records unavailable, keeping them in memory", "err", err)
		store = records.New(nil)
	}
	if err := store.Load(); err != nil {
		logger.Warn("records", "err", err)
	}

	dir := *traceDir
	if dir == "" {
		dir = cfg.Telemetry.Dir
	}
	rec, err := telemetry.NewFileRecorder(dir)
	if err != nil {
		logger.Fatal("trace", "err", err)
	}
	defer rec.Close()

	km, err := input.NewKeymap(cfg.Input)
	if err != nil {
		logger.Fatal("input", "err", err)
	}
	keys, err := newEbitenKeys(km)
	if err != nil {
		logger.Fatal("input", "err", err)
	}

	sess, err := session.New(session.Options{
		Config:   cfg,
		Grid:     grid,
		Keys:     keys,
		Recorder: rec,
		Records:  store,
		Logger:   logger,
	})
	if err != nil {
		logger.Fatal("session", "err", err)
	}

	var watcher *watch.Watcher
	if *hot {
		dirs := []string{cfg.Level.Dir}
		if *configPath != "" {
			dirs = append(dirs, filepath.Dir(*configPath))
		}
		watcher, err = watch.New(dirs...)
		if err != nil {
			logger.Warn("hot reload disabled", "err", err)
			watcher = nil
		} else {
			defer watcher.Close()
		}
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetTPS(cfg.Window.TPS)

	logger.Info("starting", "level", name, "solids", grid.Len(), "tps", cfg.Window.TPS)
	game := NewGame(sess, name, *configPath, watcher, logger, *debug)
	if err := ebiten.RunGame(game); err != nil {
		logger.Error("run", "err", err)
		rec.Close()
		os.Exit(1)
	}
}
