package pixscale

// Eagle is the Eagle 2× filter. An output corner takes the color of the
// three source neighbors around it when they agree. Border pixels are
// replicated.
type Eagle struct{}

// Name returns "eagle".
func (Eagle) Name() string { return "eagle" }

// Factor returns 2.
func (Eagle) Factor() int { return 2 }

// Apply works on the neighborhood
//
//	S T U  --\ 1 2
//	V C W  --/ 3 4
//	X Y Z
//
// where 1 becomes S if V==S==T, 2 becomes U if T==U==W, 3 becomes X if
// V==X==Y and 4 becomes Z if W==Z==Y.
func (Eagle) Apply(src, dst []uint32, width, height int) ([]uint32, error) {
	dst, ok, err := prepare(src, dst, width, height, 2)
	if !ok {
		return dst, err
	}
	outW := width * 2

	for y := range height {
		for x := range width {
			if isEdge(x, y, width, height) {
				fillBlock(dst, outW, x, y, 2, src[y*width+x])
				continue
			}
			up, mid, down := src[(y-1)*width:], src[y*width:], src[(y+1)*width:]
			s, t, u := up[x-1], up[x], up[x+1]
			v, c, w := mid[x-1], mid[x], mid[x+1]
			xx, yy, z := down[x-1], down[x], down[x+1]

			e0, e1, e2, e3 := c, c, c, c
			if s == v && s == t {
				e0 = s
			}
			if u == t && u == w {
				e1 = u
			}
			if xx == v && xx == yy {
				e2 = xx
			}
			if z == w && z == yy {
				e3 = z
			}

			i := 2*y*outW + 2*x
			dst[i] = e0 | alphaMask
			dst[i+1] = e1 | alphaMask
			dst[i+outW] = e2 | alphaMask
			dst[i+outW+1] = e3 | alphaMask
		}
	}
	return dst, nil
}
