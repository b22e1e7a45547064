package camera

import (
	"errors"
	"fmt"
)

// Config holds the constants a controller is built with.
type Config struct {
	// ZoomFactor scales the view height on one zoom-in tick; a zoom-out tick
	// scales by its reciprocal. Must be in (0, 1).
	ZoomFactor float64 `yaml:"zoom_factor"`

	// SeedSensitivity scales seed drags relative to camera drags.
	SeedSensitivity float64 `yaml:"seed_sensitivity"`

	// DefaultIterations and DefaultHeight are restored on reset.
	DefaultIterations int     `yaml:"default_iterations"`
	DefaultHeight     float64 `yaml:"default_height"`
}

func DefaultConfig() Config {
	return Config{
		ZoomFactor:        0.85,
		SeedSensitivity:   0.1,
		DefaultIterations: 100,
		DefaultHeight:     2.5,
	}
}

// Validate reports every field that would break the view invariants.
func (c Config) Validate() error {
	var errs []error
	if !(c.ZoomFactor > 0 && c.ZoomFactor < 1) {
		errs = append(errs, fmt.Errorf("zoom factor %v not in (0, 1)", c.ZoomFactor))
	}
	if !(c.DefaultHeight > 0) {
		errs = append(errs, fmt.Errorf("default height %v must be positive", c.DefaultHeight))
	}
	if c.DefaultIterations < 0 {
		errs = append(errs, fmt.Errorf("default iterations %d must not be negative", c.DefaultIterations))
	}
	return errors.Join(errs...)
}
