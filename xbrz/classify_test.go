package xbrz

import (
	"math/rand"
	"testing"
)

const (
	black = uint32(0xff000000)
	white = uint32(0xffffffff)
)

func uniformKernel(c uint32) kernel4x4 {
	return kernel4x4{c, c, c, c, c, c, c, c, c, c, c, c, c, c, c, c}
}

func TestClassifyCornerUniform(t *testing.T) {
	ker := uniformKernel(black)
	res := classifyCorner(&ker, newColorMetric(DefaultConfig()), 3.6)
	if res != (blendResult{}) {
		t.Errorf("Uniform kernel should not blend, got %+v", res)
	}
}

func TestClassifyCornerNoDiagonalDisagreement(t *testing.T) {
	m := newColorMetric(DefaultConfig())

	// Vertical edge: F==J and G==K.
	ker := uniformKernel(black)
	ker.g, ker.k = white, white
	if res := classifyCorner(&ker, m, 3.6); res != (blendResult{}) {
		t.Errorf("Vertical edge should not blend, got %+v", res)
	}

	// Horizontal edge: F==G and J==K.
	ker = uniformKernel(black)
	ker.j, ker.k = white, white
	if res := classifyCorner(&ker, m, 3.6); res != (blendResult{}) {
		t.Errorf("Horizontal edge should not blend, got %+v", res)
	}
}

func TestClassifyCornerSingleOddPixel(t *testing.T) {
	m := newColorMetric(DefaultConfig())

	// Only K differs: jg = 2D, fk = 4D, so the F-K pair is marked but F
	// matches its neighbors and only K blends, with normal strength.
	ker := uniformKernel(black)
	ker.k = white
	res := classifyCorner(&ker, m, 3.6)
	if want := (blendResult{k: blendNormal}); res != want {
		t.Errorf("Expected %+v, got %+v", want, res)
	}

	// Only F differs: the mirrored case.
	ker = uniformKernel(black)
	ker.f = white
	res = classifyCorner(&ker, m, 3.6)
	if want := (blendResult{f: blendNormal}); res != want {
		t.Errorf("Expected %+v, got %+v", want, res)
	}

	// Only G differs: the other diagonal is marked.
	ker = uniformKernel(black)
	ker.g = white
	res = classifyCorner(&ker, m, 3.6)
	if want := (blendResult{g: blendNormal}); res != want {
		t.Errorf("Expected %+v, got %+v", want, res)
	}
}

func TestClassifyCornerDominantDiagonal(t *testing.T) {
	m := newColorMetric(DefaultConfig())

	// A 45° staircase: everything on or above the anti-diagonal through F
	// is black, the rest white. J, G and K share a color and the jg sum is
	// zero, so F is marked dominant.
	//
	//	A B C D     b b b b
	//	E F G H  =  b b w w
	//	I J K L     b w w w
	//	M N O P     w w w w
	ker := kernel4x4{
		black, black, black, black,
		black, black, white, white,
		black, white, white, white,
		white, white, white, white,
	}
	res := classifyCorner(&ker, m, 3.6)
	if want := (blendResult{f: blendDominant}); res != want {
		t.Errorf("Expected %+v, got %+v", want, res)
	}

	// With an enormous threshold the same corner is only normal.
	res = classifyCorner(&ker, m, 1e9)
	if res.f != blendDominant && res.f != blendNormal {
		t.Errorf("Expected F to be marked, got %+v", res)
	}
}

func TestClassifyCornerMutuallyExclusive(t *testing.T) {
	m := newColorMetric(DefaultConfig())
	palette := []uint32{black, white, 0xffff0000, 0xff00ff00, 0xff202020}
	rng := rand.New(rand.NewSource(1))

	for range 20000 {
		var v [16]uint32
		for i := range v {
			v[i] = palette[rng.Intn(len(palette))]
		}
		ker := kernel4x4{
			v[0], v[1], v[2], v[3],
			v[4], v[5], v[6], v[7],
			v[8], v[9], v[10], v[11],
			v[12], v[13], v[14], v[15],
		}
		res := classifyCorner(&ker, m, 3.6)

		fk := res.f != blendNone || res.k != blendNone
		jg := res.j != blendNone || res.g != blendNone
		if fk && jg {
			t.Fatalf("Both diagonals marked for %v: %+v", v, res)
		}
	}
}
