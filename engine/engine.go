package engine

import (
	"fmt"
	"sort"

	"go.starlark.net/starlark"
	"go.starlark.net/starlarkstruct"
	"go.starlark.net/syntax"

	"glfractals/camera"
	"glfractals/input"
)

// Result is the controller state after a script has run.
type Result struct {
	Params  map[string]float64     // render parameters, by uniform name
	Lines   []string               // diagnostic lines
	Globals map[string]interface{} // script globals with native Go values
}

// paramNames maps uniform names to the attribute names scripts see.
var paramNames = map[string]string{
	"Iterations":  "iterations",
	"CompWidth":   "width",
	"CompHeight":  "height",
	"CompCenterX": "center_x",
	"CompCenterY": "center_y",
	"ViewWidth":   "view_width",
	"ViewHeight":  "view_height",
	"SeedX":       "seed_x",
	"SeedY":       "seed_y",
}

// Scripts are flat lists of input steps, so loops and conditionals are
// allowed at the top level.
var scriptOptions = &syntax.FileOptions{
	TopLevelControl: true,
	GlobalReassign:  true,
}

// Run executes an input script against ctrl. The script talks to the
// controller only through notifications and update(), exactly as the event
// source and frame loop would. printFn receives the script's print() output
// and may be nil.
func Run(name, script string, ctrl camera.Controller, printFn func(msg string)) (*Result, error) {
	thread := &starlark.Thread{Name: name, Print: func(_ *starlark.Thread, msg string) {
		if printFn != nil {
			printFn(msg)
		}
	}}

	globals, err := starlark.ExecFileOptions(scriptOptions, thread, name, script, builtins(ctrl))
	if err != nil {
		return nil, fmt.Errorf("running script %s: %w", name, err)
	}

	res := &Result{
		Params:  params(ctrl),
		Lines:   ctrl.StateStrings(),
		Globals: make(map[string]interface{}),
	}
	for k, v := range globals {
		res.Globals[k] = FromStarlarkValue(v)
	}
	return res, nil
}

func builtins(ctrl camera.Controller) starlark.StringDict {
	return starlark.StringDict{
		"key": starlark.NewBuiltin("key", func(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			var ev string
			st := "pressed"
			if err := starlark.UnpackArgs(b.Name(), args, kwargs, "event", &ev, "state?", &st); err != nil {
				return nil, err
			}
			event, state, err := parse(ev, st)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", b.Name(), err)
			}
			ctrl.NotifyKey(event, state)
			return starlark.None, nil
		}),

		"tap": starlark.NewBuiltin("tap", func(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			var ev string
			times := 1
			if err := starlark.UnpackArgs(b.Name(), args, kwargs, "event", &ev, "times?", &times); err != nil {
				return nil, err
			}
			event, err := input.ParseEvent(ev)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", b.Name(), err)
			}
			for i := 0; i < times; i++ {
				ctrl.NotifyKey(event, input.Pressed)
				ctrl.NotifyKey(event, input.Released)
			}
			return starlark.None, nil
		}),

		"mouse": starlark.NewBuiltin("mouse", func(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			var x, y floatArg
			ev, st := "NONE", "released"
			if err := starlark.UnpackArgs(b.Name(), args, kwargs, "x", &x, "y", &y, "event?", &ev, "state?", &st); err != nil {
				return nil, err
			}
			event, state, err := parse(ev, st)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", b.Name(), err)
			}
			ctrl.NotifyMouse(float64(x), float64(y), 0, 0, event, state)
			return starlark.None, nil
		}),

		"scroll": starlark.NewBuiltin("scroll", func(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			var x, y, dy, dx floatArg
			if err := starlark.UnpackArgs(b.Name(), args, kwargs, "x", &x, "y", &y, "dy", &dy, "dx?", &dx); err != nil {
				return nil, err
			}
			ctrl.NotifyMouse(float64(x), float64(y), float64(dx), float64(dy), input.None, input.Released)
			return starlark.None, nil
		}),

		"drag": starlark.NewBuiltin("drag", func(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			var ev string
			var x0, y0, x1, y1, dt floatArg
			steps := 1
			if err := starlark.UnpackArgs(b.Name(), args, kwargs,
				"event", &ev, "x0", &x0, "y0", &y0, "x1", &x1, "y1", &y1, "steps?", &steps, "dt?", &dt); err != nil {
				return nil, err
			}
			event, err := input.ParseEvent(ev)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", b.Name(), err)
			}
			if steps < 1 {
				return nil, fmt.Errorf("%s: steps must be at least 1, got %d", b.Name(), steps)
			}
			sx, sy, ex, ey, step := float64(x0), float64(y0), float64(x1), float64(y1), float64(dt)
			ctrl.NotifyMouse(sx, sy, 0, 0, input.None, input.Released)
			ctrl.Update(step)
			ctrl.NotifyMouse(sx, sy, 0, 0, event, input.Pressed)
			for i := 1; i <= steps; i++ {
				t := float64(i) / float64(steps)
				ctrl.NotifyMouse(sx+(ex-sx)*t, sy+(ey-sy)*t, 0, 0, input.None, input.Released)
				ctrl.Update(step)
			}
			ctrl.NotifyMouse(ex, ey, 0, 0, event, input.Released)
			return starlark.None, nil
		}),

		"resize": starlark.NewBuiltin("resize", func(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			var w, h int
			if err := starlark.UnpackArgs(b.Name(), args, kwargs, "width", &w, "height", &h); err != nil {
				return nil, err
			}
			if w <= 0 || h <= 0 {
				return nil, fmt.Errorf("%s: resolution must be positive, got %dx%d", b.Name(), w, h)
			}
			ctrl.NotifyResolution(w, h)
			return starlark.None, nil
		}),

		"update": starlark.NewBuiltin("update", func(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			var dt floatArg
			frames := 1
			if err := starlark.UnpackArgs(b.Name(), args, kwargs, "dt?", &dt, "frames?", &frames); err != nil {
				return nil, err
			}
			if dt < 0 {
				return nil, fmt.Errorf("%s: dt must not be negative, got %v", b.Name(), dt)
			}
			for i := 0; i < frames; i++ {
				ctrl.Update(float64(dt))
			}
			return starlark.None, nil
		}),

		"close": starlark.NewBuiltin("close", func(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			if err := starlark.UnpackArgs(b.Name(), args, kwargs); err != nil {
				return nil, err
			}
			return starlark.Bool(ctrl.NotifyClose()), nil
		}),

		"view": starlark.NewBuiltin("view", func(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			if err := starlark.UnpackArgs(b.Name(), args, kwargs); err != nil {
				return nil, err
			}
			fields := starlark.StringDict{}
			for k, v := range params(ctrl) {
				fields[paramNames[k]] = starlark.Float(v)
			}
			fields["should_close"] = starlark.Bool(ctrl.ShouldClose())
			return starlarkstruct.FromStringDict(starlark.String("view"), fields), nil
		}),

		"lines": starlark.NewBuiltin("lines", func(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			if err := starlark.UnpackArgs(b.Name(), args, kwargs); err != nil {
				return nil, err
			}
			var out []starlark.Value
			for _, l := range ctrl.StateStrings() {
				out = append(out, starlark.String(l))
			}
			return starlark.NewList(out), nil
		}),
	}
}

// floatArg accepts either a Starlark int or float.
type floatArg float64

func (f *floatArg) Unpack(v starlark.Value) error {
	x, ok := starlark.AsFloat(v)
	if !ok {
		return fmt.Errorf("got %s, want number", v.Type())
	}
	*f = floatArg(x)
	return nil
}

func parse(ev, st string) (input.Event, input.ButtonState, error) {
	event, err := input.ParseEvent(ev)
	if err != nil {
		return input.None, input.Released, err
	}
	state, err := input.ParseButtonState(st)
	if err != nil {
		return input.None, input.Released, err
	}
	return event, state, nil
}

// params reads the controller's render parameters as float64.
func params(ctrl camera.Controller) map[string]float64 {
	u := map[string]any{}
	ctrl.ProgramUniforms(u)
	out := make(map[string]float64, len(u))
	for k, v := range u {
		switch val := v.(type) {
		case float32:
			out[k] = float64(val)
		case float64:
			out[k] = val
		case int:
			out[k] = float64(val)
		}
	}
	return out
}

// ParamNames returns the uniform names in ps, sorted.
func ParamNames(ps map[string]float64) []string {
	names := make([]string, 0, len(ps))
	for k := range ps {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

func FromStarlarkValue(v starlark.Value) interface{} {
	switch val := v.(type) {
	case starlark.String:
		return string(val)
	case starlark.Int:
		i, _ := val.Int64()
		return int(i)
	case starlark.Float:
		return float64(val)
	case starlark.Bool:
		return bool(val)
	case *starlark.List:
		out := make([]interface{}, 0, val.Len())
		for i := 0; i < val.Len(); i++ {
			out = append(out, FromStarlarkValue(val.Index(i)))
		}
		return out
	}
	return nil
}
