package app

import (
	"errors"
	"io"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"cubedrop/config"
	"cubedrop/hal"
)

type fakeHAL struct {
	host  hal.HAL
	keys  chan hal.KeyEvent
	ptr   chan hal.PointerEvent
	ticks chan uint64
}

func newFakeHAL() *fakeHAL {
	return &fakeHAL{
		host:  hal.New(hal.Options{Width: 160, Height: 120, Log: io.Discard}),
		keys:  make(chan hal.KeyEvent, 16),
		ptr:   make(chan hal.PointerEvent, 16),
		ticks: make(chan uint64, 16),
	}
}

func (h *fakeHAL) Logger() hal.Logger       { return h.host.Logger() }
func (h *fakeHAL) Display() hal.Display     { return h.host.Display() }
func (h *fakeHAL) Input() hal.Input         { return h }
func (h *fakeHAL) Time() hal.Time           { return h }
func (h *fakeHAL) Keyboard() hal.Keyboard   { return keyboard(h.keys) }
func (h *fakeHAL) Pointer() hal.Pointer     { return pointer(h.ptr) }
func (h *fakeHAL) Ticks() <-chan uint64     { return h.ticks }
func (h *fakeHAL) press(r rune)             { h.keys <- hal.KeyEvent{Rune: r, Press: true} }
func (h *fakeHAL) pressCode(c hal.KeyCode)  { h.keys <- hal.KeyEvent{Code: c, Press: true} }
func (h *fakeHAL) move(ev hal.PointerEvent) { h.ptr <- ev }

type keyboard chan hal.KeyEvent

func (k keyboard) Events() <-chan hal.KeyEvent { return k }

type pointer chan hal.PointerEvent

func (p pointer) Events() <-chan hal.PointerEvent { return p }

func newTestApp(t *testing.T, cfg Config) (*App, *fakeHAL) {
	t.Helper()
	h := newFakeHAL()
	if cfg.Clock == nil {
		now := time.Unix(0, 0)
		cfg.Clock = func() time.Time {
			now = now.Add(16 * time.Millisecond)
			return now
		}
	}
	a, err := New(h, cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(a.Close)
	return a, h
}

func step(t *testing.T, a *App, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		if err := a.Step(); err != nil {
			t.Fatalf("Step %d: %v", i, err)
		}
	}
}

func TestMeshesFollowBodies(t *testing.T) {
	p := config.Default()
	p.Cube.Y = 2
	a, _ := newTestApp(t, Config{Params: p, ShowPanel: true, ShowStats: true, ShowHelpers: true})

	for i := 0; i < 90; i++ {
		step(t, a, 1)
		plane, cube := a.Snapshot()
		for name, pose := range map[string]Pose{"plane": plane, "cube": cube} {
			if pose.MeshPosition != pose.BodyPosition || pose.MeshQuaternion != pose.BodyQuaternion {
				t.Fatalf("frame %d: %s mesh %v/%v does not match body %v/%v", i, name,
					pose.MeshPosition, pose.MeshQuaternion, pose.BodyPosition, pose.BodyQuaternion)
			}
		}
	}
	if a.Frames() != 90 {
		t.Fatalf("expected 90 frames, got %d", a.Frames())
	}
}

func TestCubeFallsAndRests(t *testing.T) {
	p := config.Default()
	p.Cube.Y = 3
	a, _ := newTestApp(t, Config{Params: p})

	step(t, a, 20)
	_, cube := a.Snapshot()
	if y := cube.BodyPosition.Y(); y >= 3 || y <= 0.5 {
		t.Fatalf("expected cube to be falling, y=%v", y)
	}
	step(t, a, 280)
	_, cube = a.Snapshot()
	if y := cube.BodyPosition.Y(); y < 0.47 || y > 0.53 {
		t.Fatalf("expected cube to rest on the plane, y=%v", y)
	}
	plane, _ := a.Snapshot()
	if plane.BodyPosition.Len() != 0 {
		t.Fatalf("expected static plane at origin, got %v", plane.BodyPosition)
	}
}

func TestPauseAndReset(t *testing.T) {
	p := config.Default()
	p.Cube.Y = 3
	a, h := newTestApp(t, Config{Params: p})

	step(t, a, 30)
	h.press('p')
	step(t, a, 1)
	if !a.Paused() {
		t.Fatalf("expected paused")
	}
	_, before := a.Snapshot()
	step(t, a, 10)
	_, after := a.Snapshot()
	if before.BodyPosition != after.BodyPosition {
		t.Fatalf("expected no motion while paused: %v -> %v", before.BodyPosition, after.BodyPosition)
	}

	h.press('r')
	step(t, a, 1)
	_, cube := a.Snapshot()
	if cube.BodyPosition.Y() != 3 {
		t.Fatalf("expected reset to y=3 while paused, got %v", cube.BodyPosition.Y())
	}

	h.press('p')
	step(t, a, 5)
	_, cube = a.Snapshot()
	if cube.BodyPosition.Y() >= 3 {
		t.Fatalf("expected cube to fall after unpause, y=%v", cube.BodyPosition.Y())
	}
}

func TestSaveWritesLivePositions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cube.toml")
	p := config.Default()
	p.Cube.Y = 3
	a, h := newTestApp(t, Config{Params: p, ParamsPath: path})

	step(t, a, 10)
	_, cube := a.Snapshot()
	h.press('s')
	step(t, a, 1)

	got, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Cube.Y != cube.BodyPosition.Y() {
		t.Fatalf("expected saved y %v, got %v", cube.BodyPosition.Y(), got.Cube.Y)
	}
	if got.Camera.Z != 4 {
		t.Fatalf("expected saved camera z 4, got %v", got.Camera.Z)
	}
}

func TestEscapeQuits(t *testing.T) {
	a, h := newTestApp(t, Config{})
	h.pressCode(hal.KeyEscape)
	if err := a.Step(); !errors.Is(err, hal.ErrQuit) {
		t.Fatalf("expected ErrQuit, got %v", err)
	}
}

func TestTabTogglesPanel(t *testing.T) {
	a, h := newTestApp(t, Config{ShowPanel: true})
	h.pressCode(hal.KeyTab)
	step(t, a, 1)
	if !a.panel.Hidden {
		t.Fatalf("expected panel hidden after Tab")
	}
	h.pressCode(hal.KeyTab)
	step(t, a, 1)
	if a.panel.Hidden {
		t.Fatalf("expected panel shown after second Tab")
	}
}

func TestPanelEditsMoveCube(t *testing.T) {
	a, h := newTestApp(t, Config{ShowPanel: true})
	step(t, a, 1)
	// Rows: cube header, x, y. Raise the cube by one step.
	h.pressCode(hal.KeyDown)
	h.pressCode(hal.KeyDown)
	h.pressCode(hal.KeyRight)
	step(t, a, 1)
	_, cube := a.Snapshot()
	if y := cube.BodyPosition.Y(); y <= 0.55 {
		t.Fatalf("expected panel to raise the cube, y=%v", y)
	}
}

func TestDragOrbitsCamera(t *testing.T) {
	a, h := newTestApp(t, Config{})
	step(t, a, 1)
	before := a.scene.Camera.Position
	h.move(hal.PointerEvent{Kind: hal.PointerMove, X: 10, Y: 100, DX: 30, Held: hal.ButtonLeft})
	step(t, a, 1)
	after := a.scene.Camera.Position
	if after.Sub(before).Len() < 1e-3 {
		t.Fatalf("expected camera to orbit, stayed at %v", after)
	}
	if d0, d1 := before.Len(), after.Len(); d1-d0 > 1e-3 || d0-d1 > 1e-3 {
		t.Fatalf("expected orbit to keep distance %v, got %v", d0, d1)
	}
}

func TestReloadResetsToNewParams(t *testing.T) {
	a, _ := newTestApp(t, Config{ParamsPath: "cube.toml"})
	step(t, a, 5)

	p := config.Default()
	p.Cube.Y = 4
	a.onReload(config.Default(), errors.New("ignored"))
	a.onReload(p, nil)
	step(t, a, 1)

	if a.Params().Cube.Y != 4 {
		t.Fatalf("expected reloaded params, got %+v", a.Params().Cube)
	}
	_, cube := a.Snapshot()
	if y := cube.BodyPosition.Y(); y > 4 || y < 3.9 {
		t.Fatalf("expected cube near y=4 after reload, got %v", y)
	}
}

func TestSaveWithWatchKeepsCube(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cube.toml")
	if err := config.Save(path, config.Default()); err != nil {
		t.Fatalf("Save: %v", err)
	}
	a, h := newTestApp(t, Config{ParamsPath: path, Watch: true})

	h.press('p')
	step(t, a, 1)
	a.box.SetQuaternion(mgl32.AnglesToQuat(0.3, 0.2, 0.1, mgl32.XYZ))
	tilt := a.box.Quaternion
	h.press('s')
	step(t, a, 1)

	saved, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	a.onReload(saved, nil)
	time.Sleep(300 * time.Millisecond)
	step(t, a, 1)

	_, cube := a.Snapshot()
	if cube.BodyQuaternion != tilt {
		t.Fatalf("expected save to keep the cube pose %v, got %v", tilt, cube.BodyQuaternion)
	}
	if strings.HasPrefix(a.status, "reloaded") {
		t.Fatalf("expected own save not to reload, status %q", a.status)
	}
}

func TestInvalidParams(t *testing.T) {
	p := config.Default()
	p.Physics.Timestep = 0
	if _, err := New(newFakeHAL(), Config{Params: p}); !errors.Is(err, config.ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
}

func TestPanicShowsCrashScreen(t *testing.T) {
	a, h := newTestApp(t, Config{})
	step(t, a, 1)
	a.cube = nil

	if err := a.Step(); err != nil {
		t.Fatalf("expected recovered panic, got %v", err)
	}
	if !a.crashed || len(a.crashReport) == 0 {
		t.Fatalf("expected crash report")
	}
	fb := h.Display().Framebuffer()
	if r, g, b := hal.PixelRGB(fb, fb.Width()-1, fb.Height()-1); r != 0xFF || g != 0xFF || b != 0xFF {
		t.Fatalf("expected white crash background, got %d,%d,%d", r, g, b)
	}
	step(t, a, 2)
	h.pressCode(hal.KeyEscape)
	if err := a.Step(); !errors.Is(err, hal.ErrQuit) {
		t.Fatalf("expected ErrQuit from crash screen, got %v", err)
	}
}

func TestStepFuncStoresApp(t *testing.T) {
	var a *App
	step, err := StepFunc(Config{}, &a)(newFakeHAL())
	if err != nil {
		t.Fatalf("StepFunc: %v", err)
	}
	defer a.Close()
	if err := step(); err != nil {
		t.Fatalf("step: %v", err)
	}
	if a == nil || a.Frames() != 1 {
		t.Fatalf("expected stored app with one frame")
	}
}
