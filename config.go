package main

import (
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"os"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"gopkg.in/yaml.v3"

	"glfractals/camera"
	"glfractals/canvas"
	"glfractals/input"
)

const (
	DefaultConfigPath     = "glfractals.yaml"
	DefaultWindowWidth    = 800
	DefaultWindowHeight   = 600
	DefaultWindowTitle    = "glFractals"
	DefaultFontSize       = 16.0
	DefaultScreenshotPath = "screenshot.png"
)

var (
	ColorBackground  = color.RGBA{30, 30, 35, 255}
	ColorAxis        = color.RGBA{255, 255, 255, 60}
	ColorOriginCross = color.RGBA{255, 100, 100, 150}
)

// DefaultKeys and DefaultMouse are the bindings used when the config file
// does not override them.
var (
	DefaultKeys = map[string]string{
		"Escape": "EXIT",
		"W":      "MOVE_UP",
		"S":      "MOVE_DOWN",
		"A":      "MOVE_LEFT",
		"D":      "MOVE_RIGHT",
		"E":      "INCREASE_ITERATIONS",
		"Q":      "DECREASE_ITERATIONS",
		"Space":  "RESET_CAMERA",
	}
	DefaultMouse = map[string]string{
		"left":  "DRAG_CAMERA",
		"right": "DRAG_SEED",
	}
)

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

type FontConfig struct {
	Path string  `yaml:"path"`
	Size float64 `yaml:"size"`
}

type OverlayConfig struct {
	Visible bool `yaml:"visible"`
	Axes    bool `yaml:"axes"`
}

// AppConfig is the optional glfractals.yaml file. Fields left out keep their
// defaults; keys and mouse entries are merged over the default bindings.
type AppConfig struct {
	Window         WindowConfig      `yaml:"window"`
	Fractal        string            `yaml:"fractal"`
	Camera         camera.Config     `yaml:"camera"`
	Keys           map[string]string `yaml:"keys,omitempty"`
	Mouse          map[string]string `yaml:"mouse,omitempty"`
	Font           FontConfig        `yaml:"font"`
	Overlay        OverlayConfig     `yaml:"overlay"`
	ScreenshotPath string            `yaml:"screenshot_path"`
}

func DefaultAppConfig() *AppConfig {
	return &AppConfig{
		Window: WindowConfig{
			Width:  DefaultWindowWidth,
			Height: DefaultWindowHeight,
			Title:  DefaultWindowTitle,
		},
		Fractal:        camera.Mandelbrot.String(),
		Camera:         camera.DefaultConfig(),
		Font:           FontConfig{Size: DefaultFontSize},
		Overlay:        OverlayConfig{Visible: true},
		ScreenshotPath: DefaultScreenshotPath,
	}
}

// LoadConfig reads the file at path over the defaults. A missing file is not
// an error.
func LoadConfig(path string) (*AppConfig, error) {
	cfg := DefaultAppConfig()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading config %s: %w", path, err)
	}
	if err := ParseConfig(data, cfg); err != nil {
		return nil, fmt.Errorf("loading config %s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig decodes YAML into cfg and validates the result.
func ParseConfig(data []byte, cfg *AppConfig) error {
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing yaml: %w", err)
	}
	return cfg.Validate()
}

func (c *AppConfig) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	if _, err := camera.ParseKind(c.Fractal); err != nil {
		errs = append(errs, err)
	}
	if err := c.Camera.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("camera: %w", err))
	}
	if c.Font.Size <= 0 {
		errs = append(errs, fmt.Errorf("font size %v must be positive", c.Font.Size))
	}
	if _, _, err := c.bindings(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Kind returns the configured fractal. Validate has already checked it.
func (c *AppConfig) Kind() camera.Kind {
	k, _ := camera.ParseKind(c.Fractal)
	return k
}

// resolution returns the window size as a canvas resolution.
func (c *AppConfig) resolution() canvas.Resolution {
	return canvas.Resolution{Width: c.Window.Width, Height: c.Window.Height}
}

type keyBinding struct {
	key   ebiten.Key
	event input.Event
}

type mouseBinding struct {
	button ebiten.MouseButton
	event  input.Event
}

// bindings merges the configured bindings over the defaults and resolves
// every name.
func (c *AppConfig) bindings() ([]keyBinding, []mouseBinding, error) {
	var errs []error
	var keys []keyBinding
	for name, ev := range merge(DefaultKeys, c.Keys) {
		k, err := input.ParseKey(name)
		if err != nil {
			errs = append(errs, fmt.Errorf("keys: %w", err))
			continue
		}
		event, err := input.ParseEvent(ev)
		if err != nil {
			errs = append(errs, fmt.Errorf("keys.%s: %w", name, err))
			continue
		}
		keys = append(keys, keyBinding{k, event})
	}

	var buttons []mouseBinding
	for name, ev := range merge(DefaultMouse, c.Mouse) {
		b, err := input.ParseMouseButton(name)
		if err != nil {
			errs = append(errs, fmt.Errorf("mouse: %w", err))
			continue
		}
		event, err := input.ParseEvent(ev)
		if err != nil {
			errs = append(errs, fmt.Errorf("mouse.%s: %w", name, err))
			continue
		}
		buttons = append(buttons, mouseBinding{b, event})
	}
	return keys, buttons, errors.Join(errs...)
}

// Bind installs the key and mouse maps on src.
func (c *AppConfig) Bind(src *input.Source) error {
	keys, buttons, err := c.bindings()
	if err != nil {
		return err
	}
	for _, b := range keys {
		src.MapKey(b.key, b.event)
	}
	for _, b := range buttons {
		src.MapMouseButton(b.button, b.event)
	}
	return nil
}

// WriteConfig writes the effective configuration, default bindings
// included, as YAML.
func WriteConfig(c *AppConfig, filename string) error {
	out := *c
	out.Keys = merge(DefaultKeys, c.Keys)
	out.Mouse = merge(DefaultMouse, c.Mouse)

	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	defer f.Close()

	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	if err := enc.Encode(&out); err != nil {
		return fmt.Errorf("writing config %s: %w", filename, err)
	}
	return enc.Close()
}

// merge returns base with over applied. Names are compared case-insensitively
// so that "escape" in a file replaces the default "Escape".
func merge(base, over map[string]string) map[string]string {
	out := make(map[string]string, len(base)+len(over))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range over {
		for bk := range base {
			if bk != k && strings.EqualFold(bk, k) {
				delete(out, bk)
			}
		}
		out[k] = v
	}
	return out
}
