package xbrz

// patternKind selects one of the five blend shapes.
type patternKind int

const (
	patternLineShallow patternKind = iota
	patternLineSteep
	patternLineSteepAndShallow
	patternLineDiagonal
	patternCorner

	numPatterns
)

func (k patternKind) String() string {
	switch k {
	case patternLineShallow:
		return "shallow"
	case patternLineSteep:
		return "steep"
	case patternLineSteepAndShallow:
		return "steep+shallow"
	case patternLineDiagonal:
		return "diagonal"
	case patternCorner:
		return "corner"
	}
	return "unknown"
}

// blendOp mixes num/den of the picked color into output cell (i, j). When
// num == den the cell is overwritten.
type blendOp struct {
	i, j     int
	num, den int
}

func set(i, j int) blendOp { return blendOp{i, j, 1, 1} }

// patterns[n-minScale][kind] lists the cells each shape touches for the
// bottom-right corner of an n×n block. The fractions are tuned constants and
// are not derived at runtime.
var patterns = [maxScale - minScale + 1][numPatterns][]blendOp{
	// 2x
	{
		patternLineShallow: {
			{1, 0, 1, 4},
			{1, 1, 3, 4},
		},
		patternLineSteep: {
			{0, 1, 1, 4},
			{1, 1, 3, 4},
		},
		patternLineSteepAndShallow: {
			{1, 0, 1, 4},
			{0, 1, 1, 4},
			{1, 1, 5, 6}, // 7/8 in xBR
		},
		patternLineDiagonal: {
			{1, 1, 1, 2},
		},
		patternCorner: {
			{1, 1, 21, 100}, // 1 - pi/4 = 0.2146018366
		},
	},
	// 3x
	{
		patternLineShallow: {
			{2, 0, 1, 4},
			{1, 2, 1, 4},
			{2, 1, 3, 4},
			set(2, 2),
		},
		patternLineSteep: {
			{0, 2, 1, 4},
			{2, 1, 1, 4},
			{1, 2, 3, 4},
			set(2, 2),
		},
		patternLineSteepAndShallow: {
			{2, 0, 1, 4},
			{0, 2, 1, 4},
			{2, 1, 3, 4},
			{1, 2, 3, 4},
			set(2, 2),
		},
		patternLineDiagonal: {
			{1, 2, 1, 8},
			{2, 1, 1, 8},
			{2, 2, 7, 8},
		},
		patternCorner: {
			{2, 2, 45, 100}, // 0.4545939598
		},
	},
	// 4x
	{
		patternLineShallow: {
			{3, 0, 1, 4},
			{2, 2, 1, 4},
			{3, 1, 3, 4},
			{2, 3, 3, 4},
			set(3, 2),
			set(3, 3),
		},
		patternLineSteep: {
			{0, 3, 1, 4},
			{2, 2, 1, 4},
			{1, 3, 3, 4},
			{3, 2, 3, 4},
			set(2, 3),
			set(3, 3),
		},
		patternLineSteepAndShallow: {
			{3, 1, 3, 4},
			{1, 3, 3, 4},
			{3, 0, 1, 4},
			{0, 3, 1, 4},
			{2, 2, 1, 3}, // 1/4 in xBR
			set(3, 3),
			set(3, 2),
			set(2, 3),
		},
		patternLineDiagonal: {
			{3, 2, 1, 2},
			{2, 3, 1, 2},
			set(3, 3),
		},
		patternCorner: {
			{3, 3, 68, 100}, // 0.6848532563
			{3, 2, 9, 100},  // 0.08677704501
			{2, 3, 9, 100},
		},
	},
	// 5x
	{
		patternLineShallow: {
			{4, 0, 1, 4},
			{3, 2, 1, 4},
			{2, 4, 1, 4},
			{4, 1, 3, 4},
			{3, 3, 3, 4},
			set(4, 2),
			set(4, 3),
			set(4, 4),
			set(3, 4),
		},
		patternLineSteep: {
			{0, 4, 1, 4},
			{2, 3, 1, 4},
			{4, 2, 1, 4},
			{1, 4, 3, 4},
			{3, 3, 3, 4},
			set(2, 4),
			set(3, 4),
			set(4, 4),
			set(4, 3),
		},
		patternLineSteepAndShallow: {
			{0, 4, 1, 4},
			{2, 3, 1, 4},
			{1, 4, 3, 4},
			{4, 0, 1, 4},
			{3, 2, 1, 4},
			{4, 1, 3, 4},
			set(2, 4),
			set(3, 4),
			set(4, 2),
			set(4, 3),
			set(4, 4),
			{3, 3, 2, 3},
		},
		patternLineDiagonal: {
			{4, 2, 1, 8},
			{3, 3, 1, 8},
			{2, 4, 1, 8},
			{4, 3, 7, 8},
			{3, 4, 7, 8},
			set(4, 4),
		},
		patternCorner: {
			{4, 4, 86, 100}, // 0.8631434088
			{4, 3, 23, 100}, // 0.2306749731
			{3, 4, 23, 100},
		},
	},
}

// apply writes pattern kind for a block of size o.n into the destination.
func (o *outputBlock) apply(kind patternKind, col uint32) {
	for _, op := range patterns[o.n-minScale][kind] {
		idx := o.index(op.i, op.j)
		if op.num == op.den {
			o.dst[idx] = col | alphaMask
			continue
		}
		o.dst[idx] = alphaBlend(op.num, op.den, o.dst[idx], col)
	}
}

// alphaBlend mixes num/den of col into dst per RGB channel. The upper eight
// bits of each masked channel are free, so products of at most 255*255 fit.
func alphaBlend(num, den int, dst, col uint32) uint32 {
	n, m := uint32(num), uint32(den)
	blend := func(mask uint32) uint32 {
		return mask & (((col&mask)*n + (dst&mask)*(m-n)) / m)
	}
	return blend(redMask) | blend(greenMask) | blend(blueMask) | alphaMask
}
