package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"glfractals/camera"
	"glfractals/engine"
)

type options struct {
	configPath  string
	fractal     string
	script      string
	writeConfig string
	headless    bool
	verbose     bool
	args        []string
}

func main() {
	var opts options
	flag.StringVar(&opts.configPath, "config", DefaultConfigPath, "path to the YAML config file")
	flag.StringVar(&opts.fractal, "fractal", "", "fractal to draw: mandelbrot or julia")
	flag.StringVar(&opts.script, "script", "", "Starlark input script to run before the first frame")
	flag.StringVar(&opts.writeConfig, "write-config", "", "write the effective config to this path and exit")
	flag.BoolVar(&opts.headless, "headless", false, "run -script without a window and print the diagnostic lines")
	flag.BoolVar(&opts.verbose, "v", false, "debug logging")
	flag.Parse()
	opts.args = flag.Args()

	level := slog.LevelInfo
	if opts.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	camera.SetLogger(logger)

	if err := run(opts, logger, os.Stdout); err != nil {
		logger.Error("glfractals", "err", err)
		os.Exit(1)
	}
}

func run(opts options, logger *slog.Logger, stdout io.Writer) error {
	if opts.headless && opts.script == "" {
		return errors.New("-headless needs -script")
	}
	cfg, err := LoadConfig(opts.configPath)
	if err != nil {
		return err
	}
	kind, err := resolveKind(opts.fractal, opts.args, cfg.Fractal)
	if err != nil {
		return err
	}
	cfg.Fractal = kind.String()

	if opts.writeConfig != "" {
		return WriteConfig(cfg, opts.writeConfig)
	}

	ctrl := camera.NewController(kind, cfg.resolution(), cfg.Camera)
	if opts.script != "" {
		if err := runScript(opts.script, ctrl, logger, stdout); err != nil {
			return err
		}
	}
	if opts.headless {
		return nil
	}
	return runWindow(cfg, kind, ctrl, logger)
}

// resolveKind picks the fractal: the -fractal flag wins, then a leading
// "julia" argument, then the config file.
func resolveKind(flagValue string, args []string, configValue string) (camera.Kind, error) {
	switch {
	case flagValue != "":
		return camera.ParseKind(flagValue)
	case len(args) > 0 && args[0] == "julia":
		return camera.Julia, nil
	}
	return camera.ParseKind(configValue)
}

// runScript feeds the script's input to ctrl and prints the resulting
// diagnostic lines.
func runScript(path string, ctrl camera.Controller, logger *slog.Logger, stdout io.Writer) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading script: %w", err)
	}
	out, err := engine.Run(path, string(src), ctrl, func(msg string) {
		fmt.Fprintln(stdout, msg)
	})
	if err != nil {
		return err
	}
	logger.Debug("script done", "path", path, "params", engine.ParamNames(out.Params))
	for _, l := range out.Lines {
		fmt.Fprintln(stdout, l)
	}
	return nil
}

func runWindow(cfg *AppConfig, kind camera.Kind, ctrl camera.Controller, logger *slog.Logger) error {
	shader, err := NewFractalShader(kind)
	if err != nil {
		return err
	}
	face := LoadUIFont(cfg.Font.Path, cfg.Font.Size, logger)

	g, err := NewGame(cfg, ctrl, shader, face, logger)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)

	logger.Info("starting", "fractal", kind, "width", cfg.Window.Width, "height", cfg.Window.Height)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
