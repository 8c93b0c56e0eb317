package xbrz

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidArgument is returned for unsupported scale factors, malformed
// configuration, and buffers that do not match the requested geometry.
var ErrInvalidArgument = errors.New("invalid argument")

// Config holds the thresholds that steer edge detection. A Config is read
// once per scaling call and never modified by the engine.
type Config struct {
	// LuminanceWeight scales the luma term of the color distance relative
	// to the two chroma terms.
	LuminanceWeight float64

	// EqualColorTolerance is the distance below which two colors count as
	// equal. It is compared against squared distances, so it is squared
	// once when a Scaler is created.
	EqualColorTolerance float64

	// DominantDirectionThreshold is the ratio between the two diagonal
	// gradient sums above which a corner blend is marked dominant.
	DominantDirectionThreshold float64

	// SteepDirectionThreshold is the ratio that separates shallow and steep
	// lines from a plain diagonal.
	SteepDirectionThreshold float64
}

// DefaultConfig returns the thresholds xBRZ was tuned with.
func DefaultConfig() Config {
	return Config{
		LuminanceWeight:            1,
		EqualColorTolerance:        30,
		DominantDirectionThreshold: 3.6,
		SteepDirectionThreshold:    2.2,
	}
}

// Validate reports whether every threshold is usable.
func (c Config) Validate() error {
	fields := []struct {
		name  string
		value float64
	}{
		{"luminance weight", c.LuminanceWeight},
		{"equal color tolerance", c.EqualColorTolerance},
		{"dominant direction threshold", c.DominantDirectionThreshold},
		{"steep direction threshold", c.SteepDirectionThreshold},
	}
	for _, f := range fields {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) || f.value < 0 {
			return fmt.Errorf("%w: %s must be a finite non-negative number, got %v",
				ErrInvalidArgument, f.name, f.value)
		}
	}
	if c.LuminanceWeight == 0 {
		return fmt.Errorf("%w: luminance weight must be positive", ErrInvalidArgument)
	}
	return nil
}
