package pixscale

import (
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/wbrown/pixscale/xbrz"
)

// XBRZ adapts an xbrz.Scaler to the Filter interface and optionally splits
// the work across goroutines.
type XBRZ struct {
	cfg     xbrz.Config
	workers int
	scaler  *xbrz.Scaler
}

// XBRZOption is a functional option for configuring an XBRZ filter.
type XBRZOption func(*XBRZ)

// WithConfig replaces the default xBRZ thresholds.
func WithConfig(cfg xbrz.Config) XBRZOption {
	return func(f *XBRZ) {
		f.cfg = cfg
	}
}

// WithWorkers sets how many goroutines scale row slices concurrently.
// n <= 0 selects runtime.GOMAXPROCS(0).
func WithWorkers(n int) XBRZOption {
	return func(f *XBRZ) {
		if n <= 0 {
			n = runtime.GOMAXPROCS(0)
		}
		f.workers = n
	}
}

// NewXBRZ returns an xBRZ filter for factor 2..5.
// Defaults: xbrz.DefaultConfig(), one worker.
func NewXBRZ(factor int, opts ...XBRZOption) (*XBRZ, error) {
	f := &XBRZ{
		cfg:     xbrz.DefaultConfig(),
		workers: 1,
	}
	for _, opt := range opts {
		opt(f)
	}

	s, err := xbrz.New(factor, &f.cfg)
	if err != nil {
		return nil, err
	}
	f.scaler = s
	return f, nil
}

// Name returns "xbrzN" for factor N.
func (f *XBRZ) Name() string { return fmt.Sprintf("xbrz%d", f.scaler.Factor()) }

// Factor returns the scale factor.
func (f *XBRZ) Factor() int { return f.scaler.Factor() }

// Workers returns how many row slices Apply scales concurrently.
func (f *XBRZ) Workers() int { return f.workers }

// Config returns the xBRZ thresholds in use.
func (f *XBRZ) Config() xbrz.Config { return f.cfg }

// Apply scales src with xBRZ. With more than one worker the rows are split
// into disjoint slices, and the result equals a single-threaded run.
func (f *XBRZ) Apply(src, dst []uint32, width, height int) ([]uint32, error) {
	dst, ok, err := prepare(src, dst, width, height, f.Factor())
	if !ok {
		return dst, err
	}

	slices := rowSlices(height, f.workers)
	if len(slices) == 1 {
		if err := f.scaler.Scale(src, dst, width, height); err != nil {
			return nil, err
		}
		return dst, nil
	}

	var g errgroup.Group
	for _, s := range slices {
		g.Go(func() error {
			return f.scaler.ScaleRows(src, dst, width, height, s[0], s[1])
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return dst, nil
}

// rowSlices splits [0, height) into at most n contiguous, disjoint ranges
// of near-equal size.
func rowSlices(height, n int) [][2]int {
	n = max(min(n, height), 1)
	slices := make([][2]int, 0, n)
	for i := range n {
		slices = append(slices, [2]int{i * height / n, (i + 1) * height / n})
	}
	return slices
}

// XBRZPlus is the "2xbrzp" filter: xBRZ at 4× followed by a 2:1 box
// downsample, giving an anti-aliased 2× result.
type XBRZPlus struct {
	inner *XBRZ
}

// NewXBRZPlus returns the 2xBRZ+ filter. Options apply to the inner 4×
// xBRZ pass.
func NewXBRZPlus(opts ...XBRZOption) (*XBRZPlus, error) {
	inner, err := NewXBRZ(4, opts...)
	if err != nil {
		return nil, err
	}
	return &XBRZPlus{inner: inner}, nil
}

// Name returns "2xbrzp".
func (f *XBRZPlus) Name() string { return "2xbrzp" }

// Factor returns 2.
func (f *XBRZPlus) Factor() int { return 2 }

// Apply scales src to 4× with xBRZ and box-halves the result into dst.
func (f *XBRZPlus) Apply(src, dst []uint32, width, height int) ([]uint32, error) {
	dst, ok, err := prepare(src, dst, width, height, 2)
	if !ok {
		return dst, err
	}
	big, err := f.inner.Apply(src, nil, width, height)
	if err != nil {
		return nil, err
	}
	boxHalve(big, dst, width*4, height*4)
	return dst, nil
}

// boxHalve averages each 2×2 block of the w×h image src into one pixel of
// dst. Channels are rounded to nearest.
func boxHalve(src, dst []uint32, w, h int) {
	outW := w / 2
	for y := range h / 2 {
		r0 := src[2*y*w:]
		r1 := src[(2*y+1)*w:]
		for x := range outW {
			a, b := r0[2*x], r0[2*x+1]
			c, d := r1[2*x], r1[2*x+1]
			var px uint32
			for _, shift := range [3]uint{16, 8, 0} {
				sum := (a>>shift)&0xff + (b>>shift)&0xff + (c>>shift)&0xff + (d>>shift)&0xff
				px |= ((sum + 2) / 4) << shift
			}
			dst[y*outW+x] = px | alphaMask
		}
	}
}
