package imageutil

import (
	"image"
	"image/gif"

	"github.com/soniakeys/quant/median"
	"golang.org/x/image/draw"
)

// Quantize maps img onto an adaptive median-cut palette of at most n colors.
// Pixels are matched to their nearest palette entry without dithering,
// which keeps hard pixel-art edges intact.
func Quantize(img image.Image, n int) *image.Paletted {
	if p, ok := img.(*image.Paletted); ok && len(p.Palette) <= n {
		return p
	}
	paletted := median.Quantizer(n).Paletted(img)
	draw.Draw(paletted, img.Bounds(), img, img.Bounds().Min, draw.Src)
	return paletted
}

// Frames renders every frame of g onto the full logical screen, honoring
// each frame's disposal method, and returns one full-size image per frame.
func Frames(g *gif.GIF) []*RGBAImage {
	width, height := g.Config.Width, g.Config.Height
	if width == 0 || height == 0 {
		var r image.Rectangle
		for _, frame := range g.Image {
			r = r.Union(frame.Bounds())
		}
		width, height = r.Max.X, r.Max.Y
	}

	canvas := NewRGBAImage(width, height)
	frames := make([]*RGBAImage, 0, len(g.Image))

	for i, frame := range g.Image {
		var disposal byte
		if i < len(g.Disposal) {
			disposal = g.Disposal[i]
		}

		var saved *RGBAImage
		if disposal == gif.DisposalPrevious {
			saved = canvas.Clone()
		}

		draw.Draw(canvas.RGBA, frame.Bounds(), frame, frame.Bounds().Min, draw.Over)
		frames = append(frames, canvas.Clone())

		switch disposal {
		case gif.DisposalBackground:
			draw.Draw(canvas.RGBA, frame.Bounds(), image.Transparent, image.Point{}, draw.Src)
		case gif.DisposalPrevious:
			canvas = saved
		}
	}
	return frames
}

// Animation builds a GIF from full-size frames, taking frame delays and the
// loop count from timing. Each frame gets its own 256-color palette.
func Animation(frames []*RGBAImage, timing *gif.GIF) *gif.GIF {
	out := &gif.GIF{
		Image:     make([]*image.Paletted, 0, len(frames)),
		Delay:     make([]int, 0, len(frames)),
		LoopCount: timing.LoopCount,
	}
	for i, frame := range frames {
		out.Image = append(out.Image, Quantize(frame, 256))
		delay := 0
		if i < len(timing.Delay) {
			delay = timing.Delay[i]
		}
		out.Delay = append(out.Delay, delay)
	}
	if len(frames) > 0 {
		out.Config = image.Config{
			Width:  frames[0].Width(),
			Height: frames[0].Height(),
		}
	}
	return out
}
