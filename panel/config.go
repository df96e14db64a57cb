package panel

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// ErrInvalidConfig is wrapped by every configuration invariant violation.
var ErrInvalidConfig = errors.New("invalid panel config")

// Config holds the panel geometry and timing.
type Config struct {
	// HandlerHeight is the collapsed height, the always visible handle strip.
	HandlerHeight float64
	// MaxHeight is the fully expanded height.
	MaxHeight float64
	// Sensitivity divides MaxHeight into the open/close threshold band.
	// Values below 1 are clamped to 0, which disables the band.
	Sensitivity float64
	// AnimationDuration is the length of an open or close transition.
	AnimationDuration time.Duration
	// TickInterval is the period of the animation tick source.
	TickInterval time.Duration
	// FlickWindow is how far back drag motion counts towards the release
	// velocity. Zero means every release is motionless.
	FlickWindow time.Duration
	// ScrollSettle is the quiet period after the last wheel event that ends
	// a scroll gesture.
	ScrollSettle time.Duration
	// Open is the initial state.
	Open bool
}

const (
	defaultHandlerHeight     = 3
	defaultMaxHeight         = 16
	defaultSensitivity       = 8
	defaultAnimationDuration = 200 * time.Millisecond
	defaultTickInterval      = time.Millisecond
	defaultFlickWindow       = 80 * time.Millisecond
	defaultScrollSettle      = 150 * time.Millisecond
)

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() Config {
	return Config{
		HandlerHeight:     defaultHandlerHeight,
		MaxHeight:         defaultMaxHeight,
		Sensitivity:       defaultSensitivity,
		AnimationDuration: defaultAnimationDuration,
		TickInterval:      defaultTickInterval,
		FlickWindow:       defaultFlickWindow,
		ScrollSettle:      defaultScrollSettle,
	}
}

// Validate reports the first violated invariant.
func (c Config) Validate() error {
	if err := validateHeights(c.HandlerHeight, c.MaxHeight); err != nil {
		return err
	}
	if math.IsNaN(c.Sensitivity) || math.IsInf(c.Sensitivity, 0) {
		return fmt.Errorf("%w: sensitivity must be finite, got %v", ErrInvalidConfig, c.Sensitivity)
	}
	if err := validateDuration("animation duration", c.AnimationDuration); err != nil {
		return err
	}
	if err := validateDuration("tick interval", c.TickInterval); err != nil {
		return err
	}
	if c.FlickWindow < 0 {
		return fmt.Errorf("%w: flick window must not be negative, got %s", ErrInvalidConfig, c.FlickWindow)
	}
	return validateDuration("scroll settle", c.ScrollSettle)
}

func validateHeights(handler, maxHeight float64) error {
	switch {
	case math.IsNaN(handler) || math.IsInf(handler, 0) || handler < 0:
		return fmt.Errorf("%w: handler height must be a non-negative number, got %v", ErrInvalidConfig, handler)
	case math.IsNaN(maxHeight) || math.IsInf(maxHeight, 0):
		return fmt.Errorf("%w: max height must be finite, got %v", ErrInvalidConfig, maxHeight)
	case maxHeight < handler:
		return fmt.Errorf("%w: max height %v is below handler height %v", ErrInvalidConfig, maxHeight, handler)
	}
	return nil
}

func validateDuration(name string, d time.Duration) error {
	if d <= 0 {
		return fmt.Errorf("%w: %s must be positive, got %s", ErrInvalidConfig, name, d)
	}
	return nil
}

// clampSensitivity maps anything below 1 to 0.
func clampSensitivity(s float64) float64 {
	if s < 1 {
		return 0
	}
	return s
}

// normalized returns the config with sensitivity clamped. It panics when
// the config is invalid.
func (c Config) normalized() Config {
	if err := c.Validate(); err != nil {
		panic(err)
	}
	c.Sensitivity = clampSensitivity(c.Sensitivity)
	return c
}
