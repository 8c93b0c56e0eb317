package pixscale

import (
	"fmt"
)

// Identity copies the image unchanged.
type Identity struct{}

// Name returns "identity".
func (Identity) Name() string { return "identity" }

// Factor returns 1.
func (Identity) Factor() int { return 1 }

// Apply copies src into dst with alpha forced opaque.
func (Identity) Apply(src, dst []uint32, width, height int) ([]uint32, error) {
	dst, ok, err := prepare(src, dst, width, height, 1)
	if !ok {
		return dst, err
	}
	for i, c := range src[:width*height] {
		dst[i] = c | alphaMask
	}
	return dst, nil
}

// Nearest replicates every source pixel into a factor×factor block.
type Nearest struct {
	factor int
}

// NewNearest returns a nearest-neighbor filter. Any factor of at least 1 is
// accepted.
func NewNearest(factor int) (*Nearest, error) {
	if factor < 1 {
		return nil, fmt.Errorf("%w: nearest neighbor factor must be at least 1, got %d",
			ErrInvalidArgument, factor)
	}
	return &Nearest{factor: factor}, nil
}

// Name returns "nearestN" for factor N.
func (f *Nearest) Name() string { return fmt.Sprintf("nearest%d", f.factor) }

// Factor returns the scale factor.
func (f *Nearest) Factor() int { return f.factor }

// Apply replicates each source pixel into a factor×factor block.
func (f *Nearest) Apply(src, dst []uint32, width, height int) ([]uint32, error) {
	dst, ok, err := prepare(src, dst, width, height, f.factor)
	if !ok {
		return dst, err
	}
	outW, outH := width*f.factor, height*f.factor
	for y := range outH {
		row := src[(y*height/outH)*width:]
		out := dst[y*outW : (y+1)*outW]
		for x := range out {
			out[x] = row[x*width/outW] | alphaMask
		}
	}
	return dst, nil
}

// fillBlock sets the f×f output block of source pixel (x, y) to c.
func fillBlock(dst []uint32, outW, x, y, f int, c uint32) {
	c |= alphaMask
	for j := range f {
		row := dst[(y*f+j)*outW+x*f:]
		for i := range f {
			row[i] = c
		}
	}
}

// isEdge reports whether (x, y) lies on the image border.
func isEdge(x, y, width, height int) bool {
	return x == 0 || y == 0 || x == width-1 || y == height-1
}
