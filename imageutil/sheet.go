package imageutil

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// Tile is one captioned entry of a comparison sheet.
type Tile struct {
	Image *RGBAImage
	Label string
}

// SheetGutter is the spacing in pixels around and between tiles.
const SheetGutter = 8

var (
	sheetBackground = color.RGBA{R: 0x20, G: 0x20, B: 0x20, A: 0xff}
	sheetForeground = color.RGBA{R: 0xe0, G: 0xe0, B: 0xe0, A: 0xff}
)

// Sheet lays tiles out left to right with a caption under each. Tiles are
// scaled with nearest neighbor to the height of the tallest one so that
// pixels stay visible side by side.
func Sheet(tiles []Tile) (*RGBAImage, error) {
	if len(tiles) == 0 {
		return NewRGBAImage(0, 0), nil
	}

	height := 0
	for _, t := range tiles {
		height = max(height, t.Image.Height())
	}

	scaled := make([]*RGBAImage, len(tiles))
	labels := make([]*RGBAImage, len(tiles))
	width := SheetGutter
	labelHeight := 0
	for i, t := range tiles {
		img := t.Image
		if img.Height() != height {
			img = ResizeToHeight(img, height, InterpolationNearest)
		}
		scaled[i] = img

		label, err := Label(t.Label, img.Width(), sheetForeground, sheetBackground)
		if err != nil {
			return nil, err
		}
		labels[i] = label
		labelHeight = max(labelHeight, label.Height())
		width += img.Width() + SheetGutter
	}

	sheet := NewRGBAImage(width, SheetGutter+height+labelHeight+SheetGutter)
	draw.Draw(sheet.RGBA, sheet.Bounds(), image.NewUniform(sheetBackground), image.Point{}, draw.Src)

	x := SheetGutter
	for i, img := range scaled {
		r := image.Rect(x, SheetGutter, x+img.Width(), SheetGutter+img.Height())
		draw.Draw(sheet.RGBA, r, img.RGBA, image.Point{}, draw.Src)

		lr := image.Rect(x, SheetGutter+height, x+img.Width(), SheetGutter+height+labels[i].Height())
		draw.Draw(sheet.RGBA, lr, labels[i].RGBA, image.Point{}, draw.Src)

		x += img.Width() + SheetGutter
	}
	return sheet, nil
}
