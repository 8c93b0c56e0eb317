package xbrz

import (
	"errors"
	"math/rand"
	"testing"
)

func mustScaler(t *testing.T, n int) *Scaler {
	t.Helper()
	s, err := New(n, nil)
	if err != nil {
		t.Fatalf("New(%d): %v", n, err)
	}
	return s
}

func scaleAll(t *testing.T, s *Scaler, src []uint32, w, h int) []uint32 {
	t.Helper()
	dst := make([]uint32, w*s.Factor()*h*s.Factor())
	if err := s.Scale(src, dst, w, h); err != nil {
		t.Fatalf("Scale: %v", err)
	}
	return dst
}

// randomImage builds a w×h image from a small palette so that edges of
// every kind show up.
func randomImage(w, h int, seed int64) []uint32 {
	palette := []uint32{black, white, 0xffd03030, 0xff3060c0, 0xff30a040, 0xffe0e060}
	rng := rand.New(rand.NewSource(seed))
	img := make([]uint32, w*h)
	for i := range img {
		// Runs of equal pixels look more like pixel art than noise.
		if i > 0 && rng.Intn(3) > 0 {
			img[i] = img[i-1]
			continue
		}
		img[i] = palette[rng.Intn(len(palette))]
	}
	return img
}

// staircase returns a w×h image that is a above the anti-diagonal x+y < k
// and b elsewhere.
func staircase(w, h, k int, a, b uint32) []uint32 {
	img := make([]uint32, w*h)
	for y := range h {
		for x := range w {
			if x+y < k {
				img[y*w+x] = a
			} else {
				img[y*w+x] = b
			}
		}
	}
	return img
}

// rotateCW turns a w×h image clockwise, returning an h×w image.
func rotateCW(img []uint32, w, h int) []uint32 {
	out := make([]uint32, len(img))
	for y := range h {
		for x := range w {
			out[x*h+(h-1-y)] = img[y*w+x]
		}
	}
	return out
}

func TestNewRejectsFactor(t *testing.T) {
	for _, n := range []int{-1, 0, 1, 6, 8} {
		if _, err := New(n, nil); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("New(%d): expected ErrInvalidArgument, got %v", n, err)
		}
	}
	for n := minScale; n <= maxScale; n++ {
		s, err := New(n, nil)
		if err != nil {
			t.Fatalf("New(%d): %v", n, err)
		}
		if s.Factor() != n {
			t.Errorf("Expected factor %d, got %d", n, s.Factor())
		}
		if s.Config() != DefaultConfig() {
			t.Errorf("Expected default config, got %+v", s.Config())
		}
	}
}

func TestNewRejectsConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LuminanceWeight = -2
	if _, err := New(2, &cfg); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Expected ErrInvalidArgument, got %v", err)
	}
}

func TestScaleBufferValidation(t *testing.T) {
	s := mustScaler(t, 3)
	src := make([]uint32, 4*4)

	if err := s.Scale(src[:15], make([]uint32, 12*12), 4, 4); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Undersized source: expected ErrInvalidArgument, got %v", err)
	}
	if err := s.Scale(src, make([]uint32, 12*12-1), 4, 4); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Short destination: expected ErrInvalidArgument, got %v", err)
	}
	if err := s.Scale(src, make([]uint32, 12*12+1), 4, 4); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Long destination: expected ErrInvalidArgument, got %v", err)
	}
	if err := s.Scale(src, nil, 4, 4); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Nil destination: expected ErrInvalidArgument, got %v", err)
	}
}

func TestScaleDegenerateIsNoop(t *testing.T) {
	s := mustScaler(t, 2)
	dst := []uint32{1, 2, 3}

	cases := []struct {
		name          string
		w, h          int
		yFirst, yLast int
	}{
		{"zero width", 0, 4, 0, 4},
		{"zero height", 4, 0, 0, 0},
		{"negative width", -3, 4, 0, 4},
		{"empty range", 4, 4, 2, 2},
		{"inverted range", 4, 4, 3, 1},
		{"range past end", 4, 4, 4, 9},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := s.ScaleRows(nil, dst, tc.w, tc.h, tc.yFirst, tc.yLast); err != nil {
				t.Errorf("Expected no error, got %v", err)
			}
			if dst[0] != 1 || dst[1] != 2 || dst[2] != 3 {
				t.Errorf("Destination was modified: %v", dst)
			}
		})
	}
}

func TestScaleUniformColor(t *testing.T) {
	const c = 0xff4080c0
	for n := minScale; n <= maxScale; n++ {
		s := mustScaler(t, n)
		src := make([]uint32, 7*5)
		for i := range src {
			src[i] = c
		}
		for i, got := range scaleAll(t, s, src, 7, 5) {
			if got != c {
				t.Fatalf("n=%d: pixel %d is %08x, expected %08x", n, i, got, uint32(c))
			}
		}
	}
}

func TestScaleForcesOpaqueAlpha(t *testing.T) {
	s := mustScaler(t, 2)
	src := randomImage(6, 6, 3)
	for i := range src {
		src[i] &^= alphaMask
	}
	for i, got := range scaleAll(t, s, src, 6, 6) {
		if got&alphaMask != alphaMask {
			t.Fatalf("Pixel %d is not opaque: %08x", i, got)
		}
	}
}

func TestScaleDeterministic(t *testing.T) {
	src := randomImage(17, 11, 42)
	for n := minScale; n <= maxScale; n++ {
		s := mustScaler(t, n)
		first := scaleAll(t, s, src, 17, 11)
		second := scaleAll(t, s, src, 17, 11)
		for i := range first {
			if first[i] != second[i] {
				t.Fatalf("n=%d: pixel %d differs between runs: %08x vs %08x", n, i, first[i], second[i])
			}
		}
	}
}

func TestScaleDoesNotMutateSource(t *testing.T) {
	src := randomImage(9, 9, 7)
	orig := append([]uint32(nil), src...)
	scaleAll(t, mustScaler(t, 4), src, 9, 9)
	for i := range src {
		if src[i] != orig[i] {
			t.Fatalf("Source pixel %d changed", i)
		}
	}
}

func TestScaleRowsComposable(t *testing.T) {
	const w, h = 13, 12
	src := randomImage(w, h, 99)

	for n := minScale; n <= maxScale; n++ {
		s := mustScaler(t, n)
		whole := scaleAll(t, s, src, w, h)

		for _, split := range []int{1, 2, 5, 11} {
			sliced := make([]uint32, len(whole))
			if err := s.ScaleRows(src, sliced, w, h, split, h); err != nil {
				t.Fatal(err)
			}
			if err := s.ScaleRows(src, sliced, w, h, 0, split); err != nil {
				t.Fatal(err)
			}
			for i := range whole {
				if whole[i] != sliced[i] {
					t.Fatalf("n=%d split=%d: pixel %d differs: %08x vs %08x",
						n, split, i, whole[i], sliced[i])
				}
			}
		}
	}
}

func TestScaleRowsWritesOnlyItsRows(t *testing.T) {
	const w, h, n = 6, 6, 2
	s := mustScaler(t, n)
	dst := make([]uint32, w*n*h*n)
	if err := s.ScaleRows(randomImage(w, h, 5), dst, w, h, 2, 4); err != nil {
		t.Fatal(err)
	}
	for i, v := range dst {
		row := i / (w * n)
		inside := row >= 2*n && row < 4*n
		if inside && v == 0 {
			t.Errorf("Pixel %d inside the slice was not written", i)
		}
		if !inside && v != 0 {
			t.Errorf("Pixel %d outside the slice was written", i)
		}
	}
}

func TestScaleRotationSymmetry(t *testing.T) {
	const w, h = 8, 6
	src := staircase(w, h, 6, black, white)

	for n := minScale; n <= maxScale; n++ {
		s := mustScaler(t, n)

		scaledThenRotated := rotateCW(scaleAll(t, s, src, w, h), w*n, h*n)
		rotatedThenScaled := scaleAll(t, s, rotateCW(src, w, h), h, w)

		for i := range scaledThenRotated {
			if scaledThenRotated[i] != rotatedThenScaled[i] {
				t.Fatalf("n=%d: pixel %d differs: %08x vs %08x",
					n, i, scaledThenRotated[i], rotatedThenScaled[i])
			}
		}
	}
}

func TestScaleIsolatedPixel(t *testing.T) {
	const a, b = black, white
	src := []uint32{
		a, a, a,
		a, b, a,
		a, a, a,
	}
	s := mustScaler(t, 2)
	dst := scaleAll(t, s, src, 3, 3)

	// Every neighbor block stays pure a.
	for y := range 6 {
		for x := range 6 {
			if x/2 == 1 && y/2 == 1 {
				continue
			}
			if got := dst[y*6+x]; got != a {
				t.Errorf("(%d,%d): expected %08x, got %08x", x, y, a, got)
			}
		}
	}

	// The lone pixel has all four corners marked, so the insular pixel
	// guard limits each rotation to a round corner.
	want := alphaBlend(21, 100, b, a)
	for _, p := range [][2]int{{2, 2}, {3, 2}, {2, 3}, {3, 3}} {
		if got := dst[p[1]*6+p[0]]; got != want {
			t.Errorf("(%d,%d): expected corner blend %08x, got %08x", p[0], p[1], want, got)
		}
	}
}

func TestScaleDiagonalEdge(t *testing.T) {
	const w, h, k, n = 8, 8, 8, 2
	const a, b = black, white
	src := staircase(w, h, k, a, b)
	dst := scaleAll(t, mustScaler(t, n), src, w, h)

	mid := alphaBlend(1, 2, a, b)
	block := func(x, y int) [4]uint32 {
		i := y*n*w*n + x*n
		return [4]uint32{dst[i], dst[i+1], dst[i+w*n], dst[i+w*n+1]}
	}

	// Pixels just above the edge blend only their bottom-right cell.
	for _, p := range [][2]int{{3, 4}, {4, 3}} {
		if got, want := block(p[0], p[1]), [4]uint32{a, a, a, mid}; got != want {
			t.Errorf("above edge (%d,%d): expected %08x, got %08x", p[0], p[1], want, got)
		}
	}
	// Pixels just below the edge blend only their top-left cell.
	for _, p := range [][2]int{{4, 4}, {3, 5}, {5, 3}} {
		if got, want := block(p[0], p[1]), [4]uint32{mid, b, b, b}; got != want {
			t.Errorf("below edge (%d,%d): expected %08x, got %08x", p[0], p[1], want, got)
		}
	}
	// Away from the edge nothing changes.
	for _, p := range [][2]int{{1, 1}, {2, 3}, {6, 6}, {5, 5}} {
		want := [4]uint32{a, a, a, a}
		if p[0]+p[1] >= k {
			want = [4]uint32{b, b, b, b}
		}
		if got := block(p[0], p[1]); got != want {
			t.Errorf("off edge (%d,%d): expected %08x, got %08x", p[0], p[1], want, got)
		}
	}
}
