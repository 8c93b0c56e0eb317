// Package xbrz implements the xBRZ ("scale by rules") pixel-art upscaler by
// Zenju, a rule-based refinement of xBR that preserves small image features.
//
// A Scaler maps a w×h source to a (w·n)×(h·n) target for n in 2..5. Pixels
// are packed 0xAARRGGBB; alpha is ignored by the color metric and written as
// fully opaque.
//
// Parts of the same image may be scaled concurrently as long as the
// [yFirst, yLast) row ranges passed to ScaleRows do not overlap. Each call
// re-reads the two rows of context above its range, so very thin slices
// repeat some work.
package xbrz

import (
	"fmt"
)

// Scaler upscales images by a fixed factor. It is immutable and safe for
// concurrent use.
type Scaler struct {
	n      int
	cfg    Config
	metric colorMetric
}

// New returns a Scaler for factor n using cfg, or DefaultConfig if cfg is
// nil.
func New(n int, cfg *Config) (*Scaler, error) {
	if n < minScale || n > maxScale {
		return nil, fmt.Errorf("%w: unsupported xBRZ scale factor %d (want %d..%d)",
			ErrInvalidArgument, n, minScale, maxScale)
	}
	c := DefaultConfig()
	if cfg != nil {
		c = *cfg
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &Scaler{n: n, cfg: c, metric: newColorMetric(c)}, nil
}

// Factor returns the scale factor.
func (s *Scaler) Factor() int { return s.n }

// Config returns the thresholds the Scaler was built with.
func (s *Scaler) Config() Config { return s.cfg }

// Scale scales the whole source image into dst.
func (s *Scaler) Scale(src, dst []uint32, width, height int) error {
	return s.ScaleRows(src, dst, width, height, 0, height)
}

// ScaleRows scales source rows [yFirst, yLast) into the matching rows of
// dst. dst must hold (width·n)·(height·n) pixels; only the target rows of
// the slice are written. Degenerate geometry or an empty row range is a
// no-op.
func (s *Scaler) ScaleRows(src, dst []uint32, width, height, yFirst, yLast int) error {
	yFirst = max(yFirst, 0)
	yLast = min(yLast, height)
	if width <= 0 || height <= 0 || yFirst >= yLast {
		return nil
	}
	if len(src) < width*height {
		return fmt.Errorf("%w: source holds %d pixels, %dx%d needs %d",
			ErrInvalidArgument, len(src), width, height, width*height)
	}
	if want := width * s.n * height * s.n; len(dst) != want {
		return fmt.Errorf("%w: destination holds %d pixels, want %d",
			ErrInvalidArgument, len(dst), want)
	}

	s.scaleRows(src, dst, width, height, yFirst, yLast)
	return nil
}

// rowOffsets returns the clamped start indices of rows y-1 .. y+2.
func rowOffsets(y, width, height int) (sM1, s0, sP1, sP2 int) {
	sM1 = width * max(y-1, 0)
	s0 = width * y
	sP1 = width * min(y+1, height-1)
	sP2 = width * min(y+2, height-1)
	return
}

// load4x4 reads the clamped 4×4 neighborhood with (x, y) at position F.
func load4x4(ker *kernel4x4, src []uint32, x, width, sM1, s0, sP1, sP2 int) {
	xM1 := max(x-1, 0)
	xP1 := min(x+1, width-1)
	xP2 := min(x+2, width-1)

	ker.a = src[sM1+xM1]
	ker.b = src[sM1+x]
	ker.c = src[sM1+xP1]
	ker.d = src[sM1+xP2]

	ker.e = src[s0+xM1]
	ker.f = src[s0+x]
	ker.g = src[s0+xP1]
	ker.h = src[s0+xP2]

	ker.i = src[sP1+xM1]
	ker.j = src[sP1+x]
	ker.k = src[sP1+xP1]
	ker.l = src[sP1+xP2]

	ker.m = src[sP2+xM1]
	ker.n = src[sP2+x]
	ker.o = src[sP2+xP1]
	ker.p = src[sP2+xP2]
}

func (s *Scaler) scaleRows(src, dst []uint32, width, height, yFirst, yLast int) {
	n := s.n
	dstWidth := width * n

	// Blend info for corners that are not fully known yet: entry x holds
	// the partial result for (x, y) while row y is scanned.
	preProc := make([]blendInfo, width)

	var ker4 kernel4x4

	// Seed the carried state with the lower corners of row yFirst-1. This
	// cannot be shared with the slice above; doing so would race.
	if yFirst > 0 {
		y := yFirst - 1
		sM1, s0, sP1, sP2 := rowOffsets(y, width, height)
		for x := range width {
			load4x4(&ker4, src, x, width, sM1, s0, sP1, sP2)
			res := classifyCorner(&ker4, s.metric, s.cfg.DominantDirectionThreshold)

			preProc[x] = preProc[x].setTopR(res.j)
			if x+1 < width {
				preProc[x+1] = preProc[x+1].setTopL(res.k)
			}
		}
	}

	out := newOutputBlock(dst, dstWidth, n)

	for y := yFirst; y < yLast; y++ {
		trgi := n * y * dstWidth
		sM1, s0, sP1, sP2 := rowOffsets(y, width, height)

		// corner blending for the (x, y+1) position
		var blendXY1 blendInfo

		for x := 0; x < width; x, trgi = x+1, trgi+n {
			load4x4(&ker4, src, x, width, sM1, s0, sP1, sP2)
			res := classifyCorner(&ker4, s.metric, s.cfg.DominantDirectionThreshold)

			// All four corners of (x, y) are known at this point.
			blendXY := preProc[x].setBottomR(res.f)

			// second known corner of (x, y+1), kept for the next row
			blendXY1 = blendXY1.setTopR(res.j)
			preProc[x] = blendXY1

			// first known corner of (x+1, y+1), carried to the next column
			blendXY1 = blendInfo(0).setTopL(res.k)

			// third known corner of (x+1, y)
			if x+1 < width {
				preProc[x+1] = preProc[x+1].setBottomL(res.g)
			}

			fillBlock(dst, trgi, dstWidth, src[s0+x]|alphaMask, n)

			if blendXY == 0 {
				continue
			}

			xM1 := max(x-1, 0)
			xP1 := min(x+1, width-1)
			ker3 := kernel3x3{
				src[sM1+xM1], src[sM1+x], src[sM1+xP1],
				src[s0+xM1], src[s0+x], src[s0+xP1],
				src[sP1+xM1], src[sP1+x], src[sP1+xP1],
			}

			for r := range rotation(numRotations) {
				s.scalePixel(r, &ker3, &out, trgi, blendXY)
			}
		}
	}
}

// fillBlock sets an n×n block starting at index i to col.
func fillBlock(dst []uint32, i, stride int, col uint32, n int) {
	for y := 0; y < n; y, i = y+1, i+stride {
		block := dst[i : i+n]
		for x := range block {
			block[x] = col
		}
	}
}
