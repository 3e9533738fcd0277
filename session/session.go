// Package session assembles a playable world: one player on a level, a
// following camera and the systems in frame order. The game and the
// headless simulator both drive a Session.
package session

import (
	"errors"
	"time"

	"github.com/charmbracelet/log"
	"github.com/milk9111/dashcore/config"
	"github.com/milk9111/dashcore/ecs"
	"github.com/milk9111/dashcore/ecs/component"
	"github.com/milk9111/dashcore/ecs/system"
	"github.com/milk9111/dashcore/input"
	"github.com/milk9111/dashcore/level"
	"github.com/milk9111/dashcore/physics"
	"github.com/milk9111/dashcore/records"
	"github.com/milk9111/dashcore/telemetry"
)

var ErrNoGrid = errors.New("session: no level grid")

type Options struct {
	Config   *config.Config
	Grid     *level.Grid
	Keys     input.KeyState
	Recorder *telemetry.Recorder // optional CSV trace
	Records  *records.Store      // optional, memory only when nil
	// KeepSamples holds every telemetry sample in memory for Summary.
	KeepSamples bool
	Logger      *log.Logger
}

type Session struct {
	World  *ecs.World
	Player ecs.Entity
	Camera ecs.Entity

	Physics   *system.PhysicsSystem
	Records   *system.RecordsSystem
	Telemetry *system.TelemetrySystem
	Events    *system.EventSink

	cfg  *config.Config
	tick time.Duration
}

func New(opts Options) (*Session, error) {
	if opts.Grid == nil {
		return nil, ErrNoGrid
	}
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	store := opts.Records
	if store == nil {
		store = records.New(nil)
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	w := ecs.NewWorld()
	w.SetGrid(opts.Grid)

	s := &Session{
		World:     w,
		Physics:   system.NewPhysicsSystem(physics.NewIntegrator(cfg.Tuning(), opts.Grid), logger),
		Records:   system.NewRecordsSystem(store, logger),
		Telemetry: system.NewTelemetrySystem(opts.Recorder, opts.KeepSamples, logger),
		Events:    system.NewEventSink(logger),
		cfg:       cfg,
		tick:      cfg.Derived.Tick,
	}

	s.Player = w.CreateEntity()
	w.SetPlayer(s.Player, component.NewPlayer(opts.Grid.Spawn(), cfg.Tuning()))
	s.Camera = w.CreateEntity()
	w.SetCameraFollow(s.Camera, component.CameraFollow{
		TargetEntity: s.Player.ID,
		Smoothing:    cfg.Camera.Smoothing,
		Zoom:         cfg.Camera.Zoom,
		ViewW:        float64(cfg.Window.Width),
		ViewH:        float64(cfg.Window.Height),
	})

	w.AddSystem(system.NewInputSystem(opts.Keys))
	w.AddSystem(s.Physics)
	w.AddSystem(system.NewDashTimerSystem())
	w.AddSystem(s.Records)
	w.AddSystem(system.NewCameraSystem())
	w.AddSystem(s.Telemetry)
	w.AddSystem(s.Events)
	return s, nil
}

// Step runs one fixed tick.
func (s *Session) Step() {
	s.World.Update(s.tick)
}

// StepDuration runs one tick of an explicit length.
func (s *Session) StepDuration(dt time.Duration) {
	s.World.Update(dt)
}

func (s *Session) Tick() time.Duration {
	return s.tick
}

func (s *Session) Config() *config.Config {
	return s.cfg
}

// PlayerState returns the live player component.
func (s *Session) PlayerState() *component.Player {
	return s.World.GetPlayer(s.Player)
}

// CameraState returns the resolved camera, nil before the first tick.
func (s *Session) CameraState() *component.CameraState {
	return s.World.GetCameraState(s.Camera)
}

// Respawn puts the player back at the level spawn with fresh state.
func (s *Session) Respawn() {
	s.World.SetPlayer(s.Player, component.NewPlayer(s.World.Grid().Spawn(), s.cfg.Tuning()))
}

// Reload swaps configuration and level, rebuilding the integrator with the
// new tuning and respawning the player. A nil argument keeps the current one.
func (s *Session) Reload(cfg *config.Config, g *level.Grid) {
	if cfg != nil {
		s.cfg = cfg
		s.tick = cfg.Derived.Tick
		if f := s.World.GetCameraFollow(s.Camera); f != nil {
			f.Smoothing = cfg.Camera.Smoothing
			f.Zoom = cfg.Camera.Zoom
		}
	}
	if g != nil {
		s.World.SetGrid(g)
	}
	s.Physics.SetIntegrator(physics.NewIntegrator(s.cfg.Tuning(), s.World.Grid()))
	s.Respawn()
}
