package xbrz

import (
	"math"
	"testing"
)

func TestColorDistIdentical(t *testing.T) {
	m := newColorMetric(DefaultConfig())
	for _, c := range []uint32{0xff000000, 0xffffffff, 0xff123456, 0x00abcdef} {
		if d := m.dist(c, c); d != 0 {
			t.Errorf("Expected distance 0 for %08x, got %f", c, d)
		}
		if !m.eq(c, c) {
			t.Errorf("Color %08x should equal itself", c)
		}
	}
}

func TestColorDistBlackWhite(t *testing.T) {
	m := newColorMetric(DefaultConfig())

	// Pure gray differences have no chroma component: the result is the
	// squared luma delta.
	got := m.dist(0xff000000, 0xffffffff)
	if math.Abs(got-255*255) > 1e-6 {
		t.Errorf("Expected %f, got %f", float64(255*255), got)
	}
	if m.eq(0xff000000, 0xffffffff) {
		t.Error("Black and white should not be equal")
	}
}

func TestColorDistSymmetric(t *testing.T) {
	m := newColorMetric(Config{LuminanceWeight: 1.7, EqualColorTolerance: 30})
	pairs := [][2]uint32{
		{0xffff0000, 0xff00ff00},
		{0xff102030, 0xff302010},
		{0xff808080, 0xff7f8081},
	}
	for _, p := range pairs {
		if a, b := m.dist(p[0], p[1]), m.dist(p[1], p[0]); a != b {
			t.Errorf("dist(%08x, %08x)=%f but reversed=%f", p[0], p[1], a, b)
		}
	}
}

func TestColorDistIgnoresAlpha(t *testing.T) {
	m := newColorMetric(DefaultConfig())
	if d := m.dist(0x00ff8040, 0xffff8040); d != 0 {
		t.Errorf("Alpha should not contribute to distance, got %f", d)
	}
}

func TestColorDistLuminanceWeight(t *testing.T) {
	base := newColorMetric(DefaultConfig())
	heavy := newColorMetric(Config{LuminanceWeight: 2, EqualColorTolerance: 30})

	// Gray deltas are pure luma, so doubling the weight quadruples the result.
	a, b := uint32(0xff404040), uint32(0xff505050)
	if got, want := heavy.dist(a, b), 4*base.dist(a, b); math.Abs(got-want) > 1e-9 {
		t.Errorf("Expected %f, got %f", want, got)
	}
}

func TestColorEqTolerance(t *testing.T) {
	m := newColorMetric(DefaultConfig())

	// A gray step of 29 is a luma delta of ~29 < 30.
	if !m.eq(0xff404040, 0xff5d5d5d) {
		t.Error("Colors within tolerance should be equal")
	}
	// A gray step of 31 is outside the tolerance.
	if m.eq(0xff404040, 0xff5f5f5f) {
		t.Error("Colors outside tolerance should not be equal")
	}
}

func TestConfigValidate(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("Default config should be valid: %v", err)
	}

	bad := []Config{
		{LuminanceWeight: 0, EqualColorTolerance: 30, DominantDirectionThreshold: 3.6, SteepDirectionThreshold: 2.2},
		{LuminanceWeight: 1, EqualColorTolerance: -1, DominantDirectionThreshold: 3.6, SteepDirectionThreshold: 2.2},
		{LuminanceWeight: 1, EqualColorTolerance: 30, DominantDirectionThreshold: math.NaN(), SteepDirectionThreshold: 2.2},
		{LuminanceWeight: 1, EqualColorTolerance: 30, DominantDirectionThreshold: 3.6, SteepDirectionThreshold: math.Inf(1)},
	}
	for i, cfg := range bad {
		if err := cfg.Validate(); err == nil {
			t.Errorf("Config %d should be rejected: %+v", i, cfg)
		}
	}
}
