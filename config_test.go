package main

import (
	"bytes"
	"image"
	"image/color"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"glfractals/camera"
	"glfractals/input"
)

type keyRecorder struct {
	events []input.Event
}

func (r *keyRecorder) NotifyKey(event input.Event, state input.ButtonState) {
	r.events = append(r.events, event)
}

type mouseRecorder struct {
	events []input.Event
}

func (r *mouseRecorder) NotifyMouse(x, y, sx, sy float64, event input.Event, state input.ButtonState) {
	r.events = append(r.events, event)
}

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Expected no error for a missing file, got %v", err)
	}
	if cfg.Window.Width != 800 || cfg.Window.Height != 600 {
		t.Errorf("Expected 800x600, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Camera != camera.DefaultConfig() {
		t.Errorf("Expected default camera config, got %+v", cfg.Camera)
	}
	if cfg.Kind() != camera.Mandelbrot {
		t.Errorf("Expected mandelbrot, got %v", cfg.Kind())
	}
}

func TestParseConfigOverrides(t *testing.T) {
	cfg := DefaultAppConfig()
	data := []byte(`
window:
  title: Fractals
fractal: julia
camera:
  zoom_factor: 0.5
keys:
  ArrowUp: MOVE_UP
overlay:
  visible: false
`)
	if err := ParseConfig(data, cfg); err != nil {
		t.Fatalf("ParseConfig failed: %v", err)
	}
	if cfg.Window.Title != "Fractals" || cfg.Window.Width != 800 {
		t.Errorf("Expected title override with default width, got %+v", cfg.Window)
	}
	if cfg.Camera.ZoomFactor != 0.5 || cfg.Camera.DefaultHeight != 2.5 {
		t.Errorf("Expected zoom factor override only, got %+v", cfg.Camera)
	}
	if cfg.Kind() != camera.Julia {
		t.Errorf("Expected julia, got %v", cfg.Kind())
	}
	if cfg.Overlay.Visible {
		t.Errorf("Expected overlay hidden")
	}
}

func TestParseConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"malformed", "window: [", "parsing yaml"},
		{"fractal", "fractal: sierpinski", "unknown fractal"},
		{"event", "keys:\n  W: JUMP", "unknown event"},
		{"key", "keys:\n  NotAKey: EXIT", "unknown key"},
		{"button", "mouse:\n  fourth: EXIT", "unknown mouse button"},
		{"zoom", "camera:\n  zoom_factor: 1.5", "zoom factor"},
		{"window", "window:\n  width: 0", "window size"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ParseConfig([]byte(tt.yaml), DefaultAppConfig())
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Expected error containing %q, got %v", tt.want, err)
			}
		})
	}
}

func TestLoadConfigWrapsPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("fractal: nope"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := LoadConfig(path)
	if err == nil || !strings.Contains(err.Error(), path) {
		t.Errorf("Expected error naming %s, got %v", path, err)
	}
}

func TestBindDefaults(t *testing.T) {
	src := input.NewSource(nil)
	if err := DefaultAppConfig().Bind(src); err != nil {
		t.Fatalf("Bind failed: %v", err)
	}
	keys := &keyRecorder{}
	mouse := &mouseRecorder{}
	src.RegisterKeyListener(keys)
	src.RegisterMouseListener(mouse)

	for _, k := range []ebiten.Key{ebiten.KeyEscape, ebiten.KeyW, ebiten.KeyS, ebiten.KeyA, ebiten.KeyD, ebiten.KeyE, ebiten.KeyQ, ebiten.KeySpace, ebiten.KeyZ} {
		src.DispatchKey(k, input.Pressed)
	}
	want := []input.Event{input.Exit, input.MoveUp, input.MoveDown, input.MoveLeft, input.MoveRight,
		input.IncreaseIterations, input.DecreaseIterations, input.ResetCamera}
	if len(keys.events) != len(want) {
		t.Fatalf("Expected %d key events, got %v", len(want), keys.events)
	}
	for i := range want {
		if keys.events[i] != want[i] {
			t.Errorf("Event %d: expected %v, got %v", i, want[i], keys.events[i])
		}
	}

	src.DispatchMouseButton(ebiten.MouseButtonLeft, input.Pressed)
	src.DispatchMouseButton(ebiten.MouseButtonRight, input.Pressed)
	src.DispatchMouseButton(ebiten.MouseButtonMiddle, input.Pressed)
	if len(mouse.events) != 2 || mouse.events[0] != input.DragCamera || mouse.events[1] != input.DragSeed {
		t.Errorf("Expected DRAG_CAMERA, DRAG_SEED, got %v", mouse.events)
	}
}

func TestBindOverride(t *testing.T) {
	cfg := DefaultAppConfig()
	cfg.Keys = map[string]string{"escape": "RESET_CAMERA"}
	cfg.Mouse = map[string]string{"Middle": "DRAG_CAMERA"}
	src := input.NewSource(nil)
	if err := cfg.Bind(src); err != nil {
		t.Fatalf("Bind failed: %v", err)
	}
	keys := &keyRecorder{}
	mouse := &mouseRecorder{}
	src.RegisterKeyListener(keys)
	src.RegisterMouseListener(mouse)

	src.DispatchKey(ebiten.KeyEscape, input.Pressed)
	if len(keys.events) != 1 || keys.events[0] != input.ResetCamera {
		t.Errorf("Expected Escape rebound to RESET_CAMERA, got %v", keys.events)
	}
	src.DispatchMouseButton(ebiten.MouseButtonMiddle, input.Pressed)
	if len(mouse.events) != 1 || mouse.events[0] != input.DragCamera {
		t.Errorf("Expected middle button bound to DRAG_CAMERA, got %v", mouse.events)
	}
}

func TestMerge(t *testing.T) {
	out := merge(map[string]string{"Escape": "EXIT", "W": "MOVE_UP"}, map[string]string{"ESCAPE": "NONE"})
	if len(out) != 2 || out["ESCAPE"] != "NONE" || out["W"] != "MOVE_UP" {
		t.Errorf("Unexpected merge result %v", out)
	}
	if _, ok := out["Escape"]; ok {
		t.Errorf("Expected default Escape to be replaced")
	}
}

func TestWriteConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")
	cfg := DefaultAppConfig()
	cfg.Fractal = "julia"
	if err := WriteConfig(cfg, path); err != nil {
		t.Fatalf("WriteConfig failed: %v", err)
	}
	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if loaded.Kind() != camera.Julia {
		t.Errorf("Expected julia, got %v", loaded.Kind())
	}
	if loaded.Keys["Space"] != "RESET_CAMERA" {
		t.Errorf("Expected default bindings written out, got %v", loaded.Keys)
	}
}

func TestResolveKind(t *testing.T) {
	tests := []struct {
		flag   string
		args   []string
		config string
		want   camera.Kind
	}{
		{"", nil, "mandelbrot", camera.Mandelbrot},
		{"", []string{"julia"}, "mandelbrot", camera.Julia},
		{"", []string{"other", "julia"}, "mandelbrot", camera.Mandelbrot},
		{"", nil, "julia", camera.Julia},
		{"mandelbrot", []string{"julia"}, "julia", camera.Mandelbrot},
	}
	for _, tt := range tests {
		got, err := resolveKind(tt.flag, tt.args, tt.config)
		if err != nil {
			t.Errorf("resolveKind(%q, %v, %q) failed: %v", tt.flag, tt.args, tt.config, err)
			continue
		}
		if got != tt.want {
			t.Errorf("resolveKind(%q, %v, %q): expected %v, got %v", tt.flag, tt.args, tt.config, tt.want, got)
		}
	}
	if _, err := resolveKind("koch", nil, ""); err == nil {
		t.Errorf("Expected error for unknown fractal flag")
	}
}

func TestRunHeadless(t *testing.T) {
	dir := t.TempDir()
	script := filepath.Join(dir, "input.star")
	if err := os.WriteFile(script, []byte(`tap("INCREASE_ITERATIONS", times=5)`), 0o644); err != nil {
		t.Fatal(err)
	}
	var out bytes.Buffer
	opts := options{
		configPath: filepath.Join(dir, "missing.yaml"),
		script:     script,
		headless:   true,
		args:       []string{"julia"},
	}
	if err := run(opts, slog.New(slog.DiscardHandler), &out); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("Expected 4 diagnostic lines, got %q", lines)
	}
	if lines[2] != "iterations: 105" {
		t.Errorf("Expected iterations: 105, got %q", lines[2])
	}
	if !strings.HasPrefix(lines[3], "seed: ") {
		t.Errorf("Expected seed line for julia, got %q", lines[3])
	}
}

func TestRunHeadlessNeedsScript(t *testing.T) {
	err := run(options{headless: true}, slog.New(slog.DiscardHandler), &bytes.Buffer{})
	if err == nil {
		t.Errorf("Expected error for -headless without -script")
	}
}

func TestSaveScreenshot(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	img.Set(1, 1, color.RGBA{255, 0, 0, 255})
	path := filepath.Join(t.TempDir(), "shot.png")
	if err := SaveScreenshot(img, path); err != nil {
		t.Fatalf("SaveScreenshot failed: %v", err)
	}
	if info, err := os.Stat(path); err != nil || info.Size() == 0 {
		t.Errorf("Expected non-empty png, got %v %v", info, err)
	}
	if err := SaveScreenshot(img, filepath.Join(t.TempDir(), "missing", "shot.png")); err == nil {
		t.Errorf("Expected error for missing directory")
	}
}
