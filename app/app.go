package app

import (
	"context"
	"fmt"
	"runtime/debug"
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"cubedrop/config"
	"cubedrop/gfx"
	"cubedrop/hal"
	"cubedrop/panel"
	"cubedrop/physics"
	"cubedrop/stats"
)

// statusTTL is how long a status message stays on screen, in ticks (ms).
const statusTTL = 2500

// Config selects what the demo shows and where its parameters live.
type Config struct {
	// Params are the starting parameters. The zero value means
	// config.Default().
	Params config.Params

	// ParamsPath is where 's' saves and, with Watch, what is reloaded.
	ParamsPath string
	Watch      bool

	ShowPanel   bool
	ShowStats   bool
	ShowHelpers bool

	// Clock times frames for the stats overlay; time.Now when nil.
	Clock func() time.Time
}

// App is the demo: a scene and a physics world kept in step, plus the panel
// and overlays. Step is its only entry point after New.
type App struct {
	h   hal.HAL
	log hal.Logger
	cfg Config

	params config.Params // live, bound to the panel
	base   config.Params // what 'r' resets to

	fb    hal.Framebuffer
	keys  <-chan hal.KeyEvent
	ptr   <-chan hal.PointerEvent
	ticks <-chan uint64
	now   uint64

	scene    *gfx.Scene
	renderer *gfx.Renderer
	controls *gfx.OrbitControls
	plane    *gfx.Mesh
	cube     *gfx.Mesh
	axes     *gfx.Mesh
	helper   *gfx.LightHelper

	world  *physics.World
	ground *physics.Body
	box    *physics.Body

	panel *panel.Panel
	stats *stats.Stats

	paused      bool
	showStats   bool
	showHelpers bool

	status      string
	statusUntil uint64

	reload      chan config.Params
	stopWatch   context.CancelFunc
	frame       uint64
	crashed     bool
	crashReport []string
}

// New builds the scene, the world and the panel from cfg.
func New(h hal.HAL, cfg Config) (*App, error) {
	if h == nil {
		return nil, fmt.Errorf("app: nil HAL")
	}
	if cfg.Params == (config.Params{}) {
		cfg.Params = config.Default()
	}
	if err := cfg.Params.Validate(); err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}

	a := &App{
		h:           h,
		log:         h.Logger(),
		cfg:         cfg,
		params:      cfg.Params,
		base:        cfg.Params,
		showStats:   cfg.ShowStats,
		showHelpers: cfg.ShowHelpers,
		reload:      make(chan config.Params, 1),
	}
	if d := h.Display(); d != nil {
		a.fb = d.Framebuffer()
	}
	if in := h.Input(); in != nil {
		if k := in.Keyboard(); k != nil {
			a.keys = k.Events()
		}
		if p := in.Pointer(); p != nil {
			a.ptr = p.Events()
		}
	}
	if t := h.Time(); t != nil {
		a.ticks = t.Ticks()
	}

	a.buildScene()
	if err := a.buildWorld(); err != nil {
		return nil, err
	}
	a.panel = a.buildPanel()
	a.panel.Hidden = !cfg.ShowPanel
	a.stats = stats.New(cfg.Clock)
	a.sync()
	a.applyParams()

	if cfg.Watch && cfg.ParamsPath != "" {
		ctx, cancel := context.WithCancel(context.Background())
		if err := config.Watch(ctx, cfg.ParamsPath, a.onReload); err != nil {
			cancel()
			return nil, fmt.Errorf("app: %w", err)
		}
		a.stopWatch = cancel
		a.logf("app: watching %s", cfg.ParamsPath)
	}
	a.logf("app: ready, cube at %v, step %.4fs", a.box.Position, a.params.Physics.Timestep)
	return a, nil
}

// StepFunc adapts New to the HAL runners. The created App is stored in *out
// when out is not nil.
func StepFunc(cfg Config, out **App) hal.NewAppFunc {
	return func(h hal.HAL) (hal.StepFunc, error) {
		a, err := New(h, cfg)
		if err != nil {
			return nil, err
		}
		if out != nil {
			*out = a
		}
		return a.Step, nil
	}
}

// Close stops the parameter file watcher.
func (a *App) Close() {
	if a.stopWatch != nil {
		a.stopWatch()
		a.stopWatch = nil
	}
}

// Step runs one frame: input, physics, transform copy, render, present.
//
// A panic inside the frame is recovered once; from then on Step only shows
// the crash report and waits for Escape.
func (a *App) Step() (err error) {
	if a.crashed {
		return a.crashStep()
	}
	defer func() {
		if v := recover(); v != nil {
			a.crash(v, debug.Stack())
			err = nil
		}
	}()

	a.drainTicks()
	if err := a.handleInput(); err != nil {
		return err
	}
	a.applyReload()

	a.stats.Begin()
	a.controls.Update(&a.scene.Camera)
	if !a.paused {
		a.world.Step(a.params.Physics.Timestep)
	}
	a.sync()
	a.applyParams()
	a.draw()
	a.stats.End()
	a.frame++

	if a.fb != nil {
		return a.fb.Present()
	}
	return nil
}

// Pose is a body transform next to the transform of its mesh.
type Pose struct {
	BodyPosition   mgl32.Vec3
	BodyQuaternion mgl32.Quat
	MeshPosition   mgl32.Vec3
	MeshQuaternion mgl32.Quat
}

// Snapshot returns the plane and cube transforms.
func (a *App) Snapshot() (plane, cube Pose) {
	pose := func(b *physics.Body, m *gfx.Mesh) Pose {
		return Pose{
			BodyPosition:   b.Position,
			BodyQuaternion: b.Quaternion,
			MeshPosition:   m.Position,
			MeshQuaternion: m.Quaternion,
		}
	}
	return pose(a.ground, a.plane), pose(a.box, a.cube)
}

// Params returns a copy of the live parameters.
func (a *App) Params() config.Params { return a.params }

// Paused reports whether the simulation is paused.
func (a *App) Paused() bool { return a.paused }

// Frames is the number of completed frames.
func (a *App) Frames() uint64 { return a.frame }

func (a *App) drainTicks() {
	for {
		select {
		case seq, ok := <-a.ticks:
			if !ok {
				a.ticks = nil
				return
			}
			a.now = seq
		default:
			return
		}
	}
}

func (a *App) setStatus(s string) {
	a.status = s
	a.statusUntil = a.now + statusTTL
	a.logf("app: %s", s)
}

func (a *App) logf(format string, args ...any) {
	if a.log != nil {
		a.log.WriteLineString(fmt.Sprintf(format, args...))
	}
}
