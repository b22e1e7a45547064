package main

import (
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/font"

	"glfractals/camera"
	"glfractals/canvas"
	"glfractals/input"
	"glfractals/ui"
)

type Game struct {
	ctrl         camera.Controller
	screenWidth  int
	screenHeight int

	// Sub-systems
	input *input.Source
	hud   *ui.HUD

	shader   *ebiten.Shader
	uniforms map[string]any
	logger   *slog.Logger

	showAxes            bool
	screenshotPath      string
	screenshotRequested bool
	lastUpdate          time.Time
}

// NewGame wires the event source, controller and overlay together. The
// controller is registered first so it sees every event before anyone else.
func NewGame(cfg *AppConfig, ctrl camera.Controller, shader *ebiten.Shader, face font.Face, logger *slog.Logger) (*Game, error) {
	g := &Game{
		ctrl:           ctrl,
		screenWidth:    cfg.Window.Width,
		screenHeight:   cfg.Window.Height,
		shader:         shader,
		uniforms:       make(map[string]any),
		logger:         logger,
		showAxes:       cfg.Overlay.Axes,
		screenshotPath: cfg.ScreenshotPath,
	}

	g.input = input.NewSource(logger)
	if err := cfg.Bind(g.input); err != nil {
		return nil, err
	}
	g.input.Register(ctrl)

	g.hud = ui.NewHUD(face, DrawTextLines, g.screenWidth,
		&ui.Button{Label: "+", Action: func() { g.zoomAtCenter(1) }},
		&ui.Button{Label: "-", Action: func() { g.zoomAtCenter(-1) }},
	)
	g.hud.Overlay.Visible = cfg.Overlay.Visible
	if b, ok := g.input.ButtonFor(input.DragCamera); ok {
		g.hud.ClickButton = b
	}
	g.input.CaptureFilter = g.hud.Captures
	return g, nil
}

// zoomAtCenter queues a wheel-sized zoom anchored at the middle of the
// window. The cursor is left alone so an active drag keeps its position.
func (g *Game) zoomAtCenter(dy float64) {
	g.ctrl.ZoomAt(float64(g.screenWidth)/2, float64(g.screenHeight)/2, dy)
}

func (g *Game) Update() error {
	now := time.Now()
	dt := 0.0
	if !g.lastUpdate.IsZero() {
		dt = now.Sub(g.lastUpdate).Seconds()
	}
	g.lastUpdate = now

	// Delegate to sub-systems
	g.input.Poll()
	g.hud.Update()
	g.handleControlKeys()

	g.ctrl.Update(dt)
	g.hud.Overlay.Lines = g.ctrl.StateStrings()

	if g.ctrl.ShouldClose() {
		g.logger.Info("closing")
		return ebiten.Termination
	}
	return nil
}

// handleControlKeys covers the application keys that are not controller
// events.
func (g *Game) handleControlKeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		g.screenshotRequested = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.hud.Overlay.Toggle()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF2) {
		g.showAxes = !g.showAxes
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(ColorBackground)

	g.ctrl.ProgramUniforms(g.uniforms)
	op := &ebiten.DrawRectShaderOptions{Uniforms: g.uniforms}
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	screen.DrawRectShader(w, h, g.shader, op)

	if g.showAxes {
		canvas.DrawAxes(screen, g.ctrl.View(), ColorAxis, ColorOriginCross)
	}

	g.hud.Draw(screen)

	if g.screenshotRequested {
		g.screenshotRequested = false
		if err := SaveScreenshot(screen, g.screenshotPath); err != nil {
			g.logger.Warn("screenshot failed", "err", err)
		} else {
			g.logger.Info("screenshot saved", "path", g.screenshotPath)
		}
	}
}

// Layout records the new size; the event source announces it to listeners
// on the next tick.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.screenWidth = outsideWidth
	g.screenHeight = outsideHeight
	g.input.SetResolution(outsideWidth, outsideHeight)
	g.hud.Layout(outsideWidth)
	return outsideWidth, outsideHeight
}

func SaveScreenshot(img image.Image, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("saving screenshot: %w", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encoding screenshot %s: %w", path, err)
	}
	return nil
}
