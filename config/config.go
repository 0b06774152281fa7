// Package config holds the live demo parameters and their TOML file form.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"cubedrop/gfx"
)

// ErrInvalid is wrapped by Validate errors.
var ErrInvalid = errors.New("invalid parameters")

// Params is every tunable value of the demo. Panel controls bind to its
// fields directly.
type Params struct {
	Cube    Cube    `toml:"cube"`
	Plane   Plane   `toml:"plane"`
	Camera  Camera  `toml:"camera"`
	Lights  Lights  `toml:"lights"`
	Physics Physics `toml:"physics"`
}

type Cube struct {
	X         float32   `toml:"x"`
	Y         float32   `toml:"y"`
	Z         float32   `toml:"z"`
	Mass      float32   `toml:"mass" comment:"kg; 0 or less makes the cube immovable"`
	Wireframe bool      `toml:"wireframe"`
	Color     gfx.Color `toml:"color"`
}

type Plane struct {
	ScaleX    float32   `toml:"scale_x"`
	ScaleY    float32   `toml:"scale_y"`
	Wireframe bool      `toml:"wireframe"`
	Color     gfx.Color `toml:"color"`
}

type Camera struct {
	X   float32 `toml:"x"`
	Y   float32 `toml:"y"`
	Z   float32 `toml:"z"`
	FOV float32 `toml:"fov" comment:"vertical, degrees"`
}

type Lights struct {
	DLX         float32   `toml:"dl_x"`
	DLY         float32   `toml:"dl_y"`
	DLZ         float32   `toml:"dl_z"`
	DLRotX      float32   `toml:"dl_rot_x" comment:"radians"`
	DLRotY      float32   `toml:"dl_rot_y"`
	DLRotZ      float32   `toml:"dl_rot_z"`
	DLIntensity float32   `toml:"dl_intensity"`
	DLColor     gfx.Color `toml:"dl_color"`
	ALIntensity float32   `toml:"al_intensity"`
	ALColor     gfx.Color `toml:"al_color"`
}

type Physics struct {
	Gravity    float32 `toml:"gravity" comment:"m/s^2 along Y"`
	Timestep   float32 `toml:"timestep" comment:"seconds per frame"`
	Iterations int     `toml:"iterations" comment:"solver passes per step"`
}

// Default returns the stock scene: a 1 kg grey cube half a metre above a
// white 5x5 plane, lit from above and in front.
func Default() Params {
	white := gfx.Hex(0xFFFFFF)
	return Params{
		Cube: Cube{
			X: 1, Y: 0.5, Z: 0,
			Mass:  1,
			Color: gfx.Hex(0x9C9C9C),
		},
		Plane: Plane{
			ScaleX: 1, ScaleY: 1,
			Color: white,
		},
		Camera: Camera{X: 0, Y: 2, Z: 4, FOV: 75},
		Lights: Lights{
			DLX: 0, DLY: 2, DLZ: 2,
			DLIntensity: 0.7,
			DLColor:     white,
			ALIntensity: 0.8,
			ALColor:     white,
		},
		Physics: Physics{
			Gravity:    -9.81,
			Timestep:   1.0 / 60,
			Iterations: 10,
		},
	}
}

// Validate reports parameters the simulation cannot run with.
func (p Params) Validate() error {
	ts := p.Physics.Timestep
	if !(ts > 0) || ts > 1 {
		return fmt.Errorf("%w: timestep %v must be in (0, 1]", ErrInvalid, ts)
	}
	if p.Physics.Iterations < 1 {
		return fmt.Errorf("%w: iterations %d must be at least 1", ErrInvalid, p.Physics.Iterations)
	}
	if p.Camera.FOV <= 0 || p.Camera.FOV >= 180 {
		return fmt.Errorf("%w: fov %v must be in (0, 180)", ErrInvalid, p.Camera.FOV)
	}
	return nil
}

// Parse decodes TOML over the defaults, so missing keys keep their default
// values. Unknown keys are an error.
func Parse(data []byte) (Params, error) {
	p := Default()
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&p); err != nil {
		var de *toml.DecodeError
		if errors.As(err, &de) {
			row, col := de.Position()
			return Default(), fmt.Errorf("line %d column %d: %w", row, col, err)
		}
		return Default(), err
	}
	if err := p.Validate(); err != nil {
		return Default(), err
	}
	return p, nil
}

// Load reads and parses path. On error the defaults are returned with it.
func Load(path string) (Params, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Default(), fmt.Errorf("config: load: %w", err)
	}
	p, err := Parse(data)
	if err != nil {
		return p, fmt.Errorf("config: load %s: %w", path, err)
	}
	return p, nil
}

// Marshal encodes p as TOML.
func Marshal(p Params) ([]byte, error) {
	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	if err := enc.Encode(p); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Save writes p to path atomically: a temporary file in the same directory
// is written, synced and renamed over path.
func Save(path string, p Params) error {
	data, err := Marshal(p)
	if err != nil {
		return fmt.Errorf("config: save: %w", err)
	}
	dir := filepath.Dir(path)
	f, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("config: save: %w", err)
	}
	tmp := f.Name()
	ok := false
	defer func() {
		if !ok {
			os.Remove(tmp)
		}
	}()
	if _, err := f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("config: save: %w", err)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return fmt.Errorf("config: save: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("config: save: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("config: save: %w", err)
	}
	ok = true
	return nil
}
