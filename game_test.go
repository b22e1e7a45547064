package main

import (
	"log/slog"
	"math"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"glfractals/camera"
	"glfractals/canvas"
	"glfractals/input"
)

func newTestGame(t *testing.T, cfg *AppConfig) (*Game, *camera.SeededCamera) {
	t.Helper()
	ctrl := camera.NewSeeded(cfg.resolution(), cfg.Camera)
	g, err := NewGame(cfg, ctrl, nil, nil, slog.New(slog.DiscardHandler))
	if err != nil {
		t.Fatalf("NewGame failed: %v", err)
	}
	return g, ctrl
}

func TestHUDClickFollowsDragBinding(t *testing.T) {
	cfg := DefaultAppConfig()
	cfg.Mouse = map[string]string{"left": "DRAG_SEED", "right": "DRAG_CAMERA"}
	g, ctrl := newTestGame(t, cfg)

	if g.hud.ClickButton != ebiten.MouseButtonRight {
		t.Fatalf("Expected HUD to click with the right button, got %v", g.hud.ClickButton)
	}

	// Over the zoom-in button: the right press is the HUD's, the left press
	// still reaches the controller.
	g.input.DispatchCursor(770, 20)
	g.input.DispatchMouseButton(ebiten.MouseButtonRight, input.Pressed)
	if ctrl.Dragging() {
		t.Errorf("Expected right press over the HUD to be swallowed")
	}
	g.input.DispatchMouseButton(ebiten.MouseButtonLeft, input.Pressed)
	if !ctrl.SeedDragging() {
		t.Errorf("Expected left press to start a seed drag")
	}
}

func TestHUDClickDefaultsToLeft(t *testing.T) {
	g, ctrl := newTestGame(t, DefaultAppConfig())
	if g.hud.ClickButton != ebiten.MouseButtonLeft {
		t.Errorf("Expected HUD to click with the left button, got %v", g.hud.ClickButton)
	}
	g.input.DispatchCursor(770, 20)
	g.input.DispatchMouseButton(ebiten.MouseButtonLeft, input.Pressed)
	if ctrl.Dragging() {
		t.Errorf("Expected left press over the HUD to be swallowed")
	}
}

func TestZoomButtonKeepsDrag(t *testing.T) {
	g, ctrl := newTestGame(t, DefaultAppConfig())
	g.input.DispatchCursor(100, 100)
	ctrl.Update(0)
	g.input.DispatchMouseButton(ebiten.MouseButtonRight, input.Pressed)
	ctrl.Update(0)

	if !g.hud.Handle(770, 20, true) {
		t.Fatalf("Expected zoom-in button to be clicked")
	}
	ctrl.Update(0)

	if ctrl.Seed() != (canvas.Point{}) {
		t.Errorf("Expected seed to stay put, got %v", ctrl.Seed())
	}
	if !ctrl.Center().Near(canvas.Point{}, 1e-12) {
		t.Errorf("Expected zoom about the window centre, got center %v", ctrl.Center())
	}
	if math.Abs(ctrl.Height()-2.5*0.85) > 1e-12 {
		t.Errorf("Expected one zoom-in tick, got height %v", ctrl.Height())
	}
}
