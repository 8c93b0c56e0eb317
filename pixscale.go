// Package pixscale upscales pixel art by integer factors.
//
// Every algorithm implements Filter and works on packed 0xAARRGGBB pixel
// buffers in row-major order. Filters are selected by name with ByName,
// which accepts the same aliases as the command line tool:
//
//	f, err := pixscale.ByName("xbrz4")
//	if err != nil {
//		return err
//	}
//	out, err := f.Apply(pixels, nil, width, height)
//
// Output alpha is always fully opaque.
package pixscale

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/wbrown/pixscale/xbrz"
)

var (
	// ErrInvalidArgument reports a bad factor, configuration or buffer
	// size. It is the same value as xbrz.ErrInvalidArgument.
	ErrInvalidArgument = xbrz.ErrInvalidArgument

	// ErrUnknownFilter is returned by ByName for names it does not know.
	ErrUnknownFilter = fmt.Errorf("%w: unknown filter", ErrInvalidArgument)

	// ErrUnsupportedFilter is returned for filters that are recognised but
	// not built into this package.
	ErrUnsupportedFilter = errors.New("unsupported filter")
)

const alphaMask = 0xff000000

// Filter scales a packed pixel buffer by a fixed integer factor.
type Filter interface {
	// Name returns the canonical name of the filter, as accepted by ByName.
	Name() string

	// Factor returns the scale factor.
	Factor() int

	// Apply scales the width×height image in src. dst may be nil, in which
	// case a new buffer is allocated, or hold exactly
	// (width·Factor())·(height·Factor()) pixels, which are all overwritten.
	// The buffer written to is returned. src is never modified. A zero or
	// negative size is a no-op that returns dst unchanged.
	Apply(src, dst []uint32, width, height int) ([]uint32, error)
}

// algorithms is the help text for the names understood by ByName.
var algorithms = []string{
	"Identity (1x):            identity|none",
	"Nearest Neighbor (2..5x): ?xnn|?xnearest|nearest?|nearest_?|nearest_neighbor_?",
	"xBRZ (2..5x):             xbrz?|xbrz_?|?xbrz",
	"2xBRZ+ (2x):              2xbrzp",
	"AdvMAME (2|3x):           advmame2|advmame_2|advmame2x|advmame3|advmame_3|advmame3x",
	"Eagle (2x):               eagle",
	"HQX (2..4x):              hqx?|hqx_?|hqx?x (not built in)",
}

// Algorithms returns one line per filter family listing the accepted names.
// A '?' stands for the scale factor.
func Algorithms() []string {
	return append([]string(nil), algorithms...)
}

// ByName returns the filter registered under name. Matching is
// case-insensitive. xBRZ filters use the default configuration and a
// single worker; use NewXBRZ to change either.
func ByName(name string) (Filter, error) {
	key := strings.ToLower(strings.TrimSpace(name))

	switch key {
	case "none", "identity":
		return Identity{}, nil
	case "2xbrzp":
		return NewXBRZPlus()
	case "advmame2", "advmame_2", "advmame2x":
		return NewAdvMAME(2)
	case "advmame3", "advmame_3", "advmame3x":
		return NewAdvMAME(3)
	case "eagle":
		return Eagle{}, nil
	}

	for n := 2; n <= 5; n++ {
		d := strconv.Itoa(n)
		switch key {
		case d + "xnn", d + "xnearest", "nearest" + d, "nearest_" + d, "nearest_neighbor_" + d:
			return NewNearest(n)
		case "xbrz" + d, "xbrz_" + d, d + "xbrz":
			return NewXBRZ(n)
		}
		if n <= 4 {
			switch key {
			case "hqx" + d, "hqx_" + d, "hqx" + d + "x":
				return nil, fmt.Errorf("%w: %s", ErrUnsupportedFilter, name)
			}
		}
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownFilter, name)
}

// prepare validates the buffers for a filter of factor f and returns the
// destination to write, allocating it if dst is nil. ok is false for
// degenerate sizes, which callers treat as a no-op.
func prepare(src, dst []uint32, width, height, f int) (out []uint32, ok bool, err error) {
	if width <= 0 || height <= 0 {
		return dst, false, nil
	}
	if len(src) < width*height {
		return nil, false, fmt.Errorf("%w: source holds %d pixels, %dx%d needs %d",
			ErrInvalidArgument, len(src), width, height, width*height)
	}
	want := width * f * height * f
	if dst == nil {
		return make([]uint32, want), true, nil
	}
	if len(dst) != want {
		return nil, false, fmt.Errorf("%w: destination holds %d pixels, want %d",
			ErrInvalidArgument, len(dst), want)
	}
	return dst, true, nil
}
