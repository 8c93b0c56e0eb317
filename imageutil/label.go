package imageutil

import (
	"fmt"
	"image"
	"image/color"
	"sync"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

// LabelSize is the caption font size in points at 72 DPI.
const LabelSize = 14

var (
	labelFontOnce sync.Once
	labelFont     *truetype.Font
	labelFontErr  error
)

// loadLabelFont parses the embedded Go Regular font once.
func loadLabelFont() (*truetype.Font, error) {
	labelFontOnce.Do(func() {
		labelFont, labelFontErr = freetype.ParseFont(goregular.TTF)
	})
	return labelFont, labelFontErr
}

// Label renders text in Go Regular onto a new image of the given width,
// horizontally centered, with fg on bg.
func Label(text string, width int, fg, bg color.Color) (*RGBAImage, error) {
	ttf, err := loadLabelFont()
	if err != nil {
		return nil, fmt.Errorf("failed to parse label font: %w", err)
	}

	face := truetype.NewFace(ttf, &truetype.Options{
		Size:    LabelSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	defer face.Close()

	metrics := face.Metrics()
	ascent := metrics.Ascent.Ceil()
	descent := metrics.Descent.Ceil()
	height := ascent + descent + 4

	img := NewRGBAImage(width, height)
	draw.Draw(img.RGBA, img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)

	textWidth := font.MeasureString(face, text).Ceil()
	x := max((width-textWidth)/2, 0)

	ctx := freetype.NewContext()
	ctx.SetDPI(72)
	ctx.SetFont(ttf)
	ctx.SetFontSize(LabelSize)
	ctx.SetClip(img.Bounds())
	ctx.SetDst(img.RGBA)
	ctx.SetSrc(image.NewUniform(fg))
	ctx.SetHinting(font.HintingFull)

	if _, err := ctx.DrawString(text, freetype.Pt(x, 2+ascent)); err != nil {
		return nil, fmt.Errorf("failed to draw label %q: %w", text, err)
	}
	return img, nil
}
