package imageutil

import (
	"image/color"
	"math"
)

// CreateSolidImage creates a solid color image.
func CreateSolidImage(width, height int, c color.RGBA) *RGBAImage {
	img := NewRGBAImage(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

// CreateCheckerboardImage creates a black and white checkerboard.
func CreateCheckerboardImage(width, height, squareSize int) *RGBAImage {
	img := NewRGBAImage(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if ((x/squareSize)+(y/squareSize))%2 == 0 {
				img.SetRGBA(x, y, color.RGBA{R: 255, G: 255, B: 255, A: 255})
			} else {
				img.SetRGBA(x, y, color.RGBA{R: 0, G: 0, B: 0, A: 255})
			}
		}
	}
	return img
}

// CreateStaircaseImage creates an image split along the anti-diagonal:
// fg where x+y < k, bg elsewhere. It is the simplest 45° edge.
func CreateStaircaseImage(width, height, k int, fg, bg color.RGBA) *RGBAImage {
	img := NewRGBAImage(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if x+y < k {
				img.SetRGBA(x, y, fg)
			} else {
				img.SetRGBA(x, y, bg)
			}
		}
	}
	return img
}

// CreateSpriteImage creates a small pixel-art style test image: a filled
// circle with a one pixel outline and a highlight on a flat background.
func CreateSpriteImage(width, height int) *RGBAImage {
	var (
		background = color.RGBA{R: 0x5c, G: 0x94, B: 0xfc, A: 255}
		outline    = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 255}
		fill       = color.RGBA{R: 0xe4, G: 0x5c, B: 0x10, A: 255}
		highlight  = color.RGBA{R: 0xfc, G: 0xfc, B: 0xfc, A: 255}
	)

	img := CreateSolidImage(width, height, background)
	cx, cy := float64(width-1)/2, float64(height-1)/2
	r := math.Min(cx, cy) - 1

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			d := math.Hypot(float64(x)-cx, float64(y)-cy)
			switch {
			case d <= r-1:
				img.SetRGBA(x, y, fill)
			case d <= r:
				img.SetRGBA(x, y, outline)
			}
		}
	}
	hx, hy := int(cx-r/2), int(cy-r/2)
	if hx >= 0 && hy >= 0 {
		img.SetRGBA(hx, hy, highlight)
	}
	return img
}

// CalculateMSE calculates the Mean Squared Error between two RGBA images.
func CalculateMSE(img1, img2 *RGBAImage) float64 {
	if img1.Width() != img2.Width() || img1.Height() != img2.Height() {
		return math.MaxFloat64
	}

	width, height := img1.Width(), img1.Height()
	var sumSq float64
	count := float64(width * height * 3) // 3 channels

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c1 := img1.RGBAAt(x, y)
			c2 := img2.RGBAAt(x, y)
			dr := float64(c1.R) - float64(c2.R)
			dg := float64(c1.G) - float64(c2.G)
			db := float64(c1.B) - float64(c2.B)
			sumSq += dr*dr + dg*dg + db*db
		}
	}

	return sumSq / count
}

// CalculateMaxDiff calculates the maximum pixel difference between two images.
func CalculateMaxDiff(img1, img2 *RGBAImage) int {
	if img1.Width() != img2.Width() || img1.Height() != img2.Height() {
		return 256
	}

	width, height := img1.Width(), img1.Height()
	maxDiff := 0

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c1 := img1.RGBAAt(x, y)
			c2 := img2.RGBAAt(x, y)
			maxDiff = max(maxDiff,
				abs(int(c1.R)-int(c2.R)),
				abs(int(c1.G)-int(c2.G)),
				abs(int(c1.B)-int(c2.B)))
		}
	}

	return maxDiff
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
