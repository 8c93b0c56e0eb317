package pixscale

import (
	"fmt"
)

// AdvMAME implements the AdvMAME2x and AdvMAME3x (Scale2x/Scale3x) rules.
// Border pixels are replicated.
type AdvMAME struct {
	factor int
}

// NewAdvMAME returns the AdvMAME filter for factor 2 or 3.
func NewAdvMAME(factor int) (*AdvMAME, error) {
	if factor != 2 && factor != 3 {
		return nil, fmt.Errorf("%w: AdvMAME supports factors 2 and 3, got %d",
			ErrInvalidArgument, factor)
	}
	return &AdvMAME{factor: factor}, nil
}

// Name returns "advmame2" or "advmame3".
func (f *AdvMAME) Name() string { return fmt.Sprintf("advmame%d", f.factor) }

// Factor returns 2 or 3.
func (f *AdvMAME) Factor() int { return f.factor }

// Apply runs the Scale2x or Scale3x rules over src.
func (f *AdvMAME) Apply(src, dst []uint32, width, height int) ([]uint32, error) {
	dst, ok, err := prepare(src, dst, width, height, f.factor)
	if !ok {
		return dst, err
	}
	outW := width * f.factor

	for y := range height {
		for x := range width {
			if isEdge(x, y, width, height) {
				fillBlock(dst, outW, x, y, f.factor, src[y*width+x])
				continue
			}
			if f.factor == 2 {
				advMAME2x(src, dst, width, outW, x, y)
			} else {
				advMAME3x(src, dst, width, outW, x, y)
			}
		}
	}
	return dst, nil
}

// advMAME2x expands interior pixel P:
//
//	  A    --\ 1 2
//	C P B  --/ 3 4
//	  D
func advMAME2x(src, dst []uint32, width, outW, x, y int) {
	p := src[y*width+x]
	a := src[(y-1)*width+x]
	b := src[y*width+x+1]
	c := src[y*width+x-1]
	d := src[(y+1)*width+x]

	e0, e1, e2, e3 := p, p, p, p
	if c == a && c != d && a != b {
		e0 = a
	}
	if a == b && a != c && b != d {
		e1 = b
	}
	if d == c && d != b && c != a {
		e2 = c
	}
	if b == d && b != a && d != c {
		e3 = d
	}

	i := 2*y*outW + 2*x
	dst[i] = e0 | alphaMask
	dst[i+1] = e1 | alphaMask
	dst[i+outW] = e2 | alphaMask
	dst[i+outW+1] = e3 | alphaMask
}

// advMAME3x expands interior pixel E:
//
//	A B C --\  1 2 3
//	D E F    > 4 5 6
//	G H I --/  7 8 9
func advMAME3x(src, dst []uint32, width, outW, x, y int) {
	up, mid, down := src[(y-1)*width:], src[y*width:], src[(y+1)*width:]
	a, b, c := up[x-1], up[x], up[x+1]
	d, e, f := mid[x-1], mid[x], mid[x+1]
	g, h, i := down[x-1], down[x], down[x+1]

	db := d == b && d != h && b != f
	bf := b == f && b != d && f != h
	hd := h == d && h != f && d != b
	fh := f == h && f != b && h != d

	pick := func(cond bool, col uint32) uint32 {
		if cond {
			return col | alphaMask
		}
		return e | alphaMask
	}

	o := 3*y*outW + 3*x
	dst[o] = pick(db, d)
	dst[o+1] = pick((db && e != c) || (bf && e != a), b)
	dst[o+2] = pick(bf, f)

	o += outW
	dst[o] = pick((hd && e != a) || (db && e != g), d)
	dst[o+1] = e | alphaMask
	dst[o+2] = pick((bf && e != i) || (fh && e != c), f)

	o += outW
	dst[o] = pick(hd, d)
	dst[o+1] = pick((fh && e != g) || (hd && e != i), h)
	dst[o+2] = pick(fh, f)
}
