// Package config holds the tunable constants of the demo. Defaults match the
// built-in values; a YAML file can override any subset of them.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"

	"github.com/leterax/go-spincube/pkg/scene"
)

// ErrInvalid is wrapped by every validation failure
var ErrInvalid = errors.New("invalid config")

// Rotation selects how the world matrix is built from the animation state
type Rotation string

const (
	// RotateY spins the cube about the Y axis only
	RotateY Rotation = "y"
	// RotateYawPitchRoll combines the yaw, pitch and angle accumulators
	RotateYawPitchRoll Rotation = "ypr"
)

// Config is the complete demo configuration
type Config struct {
	Window    Window     `yaml:"window"`
	Camera    Camera     `yaml:"camera"`
	Light     Light      `yaml:"light"`
	Material  Material   `yaml:"material"`
	Ambient   [4]float32 `yaml:"ambient"`
	Animation Animation  `yaml:"animation"`
}

// Window describes the presentation surface
type Window struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	VSync  bool   `yaml:"vsync"`
}

// Camera holds the fixed view and projection parameters
type Camera struct {
	Eye    [3]float32 `yaml:"eye"`
	Target [3]float32 `yaml:"target"`
	Up     [3]float32 `yaml:"up"`
	FOV    float32    `yaml:"fov"` // vertical, degrees
	Near   float32    `yaml:"near"`
	Far    float32    `yaml:"far"`
}

type Light struct {
	Diffuse   [4]float32 `yaml:"diffuse"`
	Direction [3]float32 `yaml:"direction"`
}

type Material struct {
	Diffuse [4]float32 `yaml:"diffuse"`
	Ambient [4]float32 `yaml:"ambient"`
}

// Animation configures the oscillator and the world rotation
type Animation struct {
	Step     float32  `yaml:"step"`
	Bound    float32  `yaml:"bound"`
	Rotation Rotation `yaml:"rotation"`
}

// Window defaults
const (
	DefaultWidth  = 400
	DefaultHeight = 400
	DefaultTitle  = "Spinning Cube"
)

// Camera defaults
const (
	// Vertical field of view, degrees
	DefaultFOV = 45.0

	// Clipping planes
	DefaultNear = 1.0
	DefaultFar  = 100.0
)

// Camera placement: looking at the origin from above and in front, Y up
var (
	DefaultEye    = mgl32.Vec3{0, 8, 25}
	DefaultTarget = mgl32.Vec3{0, 0, 0}
	DefaultUp     = mgl32.Vec3{0, 1, 0}
)

// Default returns the built-in configuration
func Default() Config {
	lighting := scene.DefaultLighting()

	return Config{
		Window: Window{
			Width:  DefaultWidth,
			Height: DefaultHeight,
			Title:  DefaultTitle,
			VSync:  true,
		},
		Camera: Camera{
			Eye:    DefaultEye,
			Target: DefaultTarget,
			Up:     DefaultUp,
			FOV:    DefaultFOV,
			Near:   DefaultNear,
			Far:    DefaultFar,
		},
		Light: Light{
			Diffuse:   lighting.Light.Diffuse,
			Direction: lighting.Light.Direction,
		},
		Material: Material{
			Diffuse: lighting.Material.Diffuse,
			Ambient: lighting.Material.Ambient,
		},
		Ambient: lighting.Ambient,
		Animation: Animation{
			Step:     scene.DefaultStep,
			Bound:    scene.DefaultBound,
			Rotation: RotateY,
		},
	}
}

// Load reads a YAML file on top of Default. An empty path returns the defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML on top of Default and validates the result.
// Unknown keys are rejected so typos do not silently fall back to defaults.
func Parse(data []byte) (Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the ranges the renderer depends on
func (c Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	case c.Camera.FOV <= 0 || c.Camera.FOV >= 180:
		return fmt.Errorf("%w: fov %v must be in (0,180)", ErrInvalid, c.Camera.FOV)
	case c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near:
		return fmt.Errorf("%w: clip planes near=%v far=%v", ErrInvalid, c.Camera.Near, c.Camera.Far)
	case mgl32.Vec3(c.Camera.Eye) == mgl32.Vec3(c.Camera.Target):
		return fmt.Errorf("%w: camera eye and target coincide", ErrInvalid)
	case mgl32.Vec3(c.Camera.Up).Len() == 0:
		return fmt.Errorf("%w: camera up vector is zero", ErrInvalid)
	case mgl32.Vec3(c.Light.Direction).Len() == 0:
		return fmt.Errorf("%w: light direction is zero", ErrInvalid)
	case c.Animation.Step <= 0:
		return fmt.Errorf("%w: animation step %v", ErrInvalid, c.Animation.Step)
	case c.Animation.Bound < c.Animation.Step:
		return fmt.Errorf("%w: animation bound %v below step %v", ErrInvalid, c.Animation.Bound, c.Animation.Step)
	}

	switch c.Animation.Rotation {
	case RotateY, RotateYawPitchRoll:
	default:
		return fmt.Errorf("%w: unknown rotation %q", ErrInvalid, c.Animation.Rotation)
	}
	return nil
}

// Override applies command line values on top of the config and revalidates.
// Empty strings leave the corresponding setting alone.
func (c *Config) Override(vsync, rotation string) error {
	switch vsync {
	case "":
	case "on", "true", "1":
		c.Window.VSync = true
	case "off", "false", "0":
		c.Window.VSync = false
	default:
		return fmt.Errorf("%w: vsync %q", ErrInvalid, vsync)
	}

	if rotation != "" {
		c.Animation.Rotation = Rotation(rotation)
	}

	return c.Validate()
}

// Lighting converts the light section into scene values
func (c Config) Lighting() scene.Lighting {
	return scene.Lighting{
		Light: scene.DirectionalLight{
			Diffuse:   c.Light.Diffuse,
			Direction: c.Light.Direction,
		},
		Material: scene.Material{
			Diffuse: c.Material.Diffuse,
			Ambient: c.Material.Ambient,
		},
		Ambient: c.Ambient,
	}
}
