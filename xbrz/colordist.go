package xbrz

const (
	redMask   = 0xff0000
	greenMask = 0x00ff00
	blueMask  = 0x0000ff
	alphaMask = 0xff000000
)

// ITU-R BT.709 luma coefficients.
const (
	kB = 0.0722
	kR = 0.2126
	kG = 1 - kB - kR

	scaleB = 0.5 / (1 - kB)
	scaleR = 0.5 / (1 - kR)
)

// colorMetric compares packed ARGB colors. The alpha lane is ignored by the
// distance but takes part in bit-identity checks.
type colorMetric struct {
	lumaWeight  float64
	eqThreshold float64 // squared equal-color tolerance
}

func newColorMetric(cfg Config) colorMetric {
	return colorMetric{
		lumaWeight:  cfg.LuminanceWeight,
		eqThreshold: cfg.EqualColorTolerance * cfg.EqualColorTolerance,
	}
}

// dist returns the squared YCbCr distance between two colors. The square
// root is left out; eq compares against a squared tolerance instead.
func (m colorMetric) dist(c1, c2 uint32) float64 {
	if c1 == c2 {
		return 0
	}
	return distYCbCr(c1, c2, m.lumaWeight)
}

// eq reports whether two colors are perceptually equal.
func (m colorMetric) eq(c1, c2 uint32) bool {
	return m.dist(c1, c2) < m.eqThreshold
}

func distYCbCr(c1, c2 uint32, lumaWeight float64) float64 {
	// YCbCr is linear in RGB, so the channel deltas can be converted directly.
	rDiff := (int(c1&redMask) - int(c2&redMask)) >> 16
	gDiff := (int(c1&greenMask) - int(c2&greenMask)) >> 8
	bDiff := int(c1&blueMask) - int(c2&blueMask)

	y := kR*float64(rDiff) + kG*float64(gDiff) + kB*float64(bDiff)
	cb := scaleB * (float64(bDiff) - y)
	cr := scaleR * (float64(rDiff) - y)

	ly := lumaWeight * y
	return ly*ly + cb*cb + cr*cr
}
