package pixscale

import (
	"fmt"
	"image"
	"image/gif"

	"github.com/wbrown/pixscale/imageutil"
)

// ApplyImage scales a decoded image with f.
func ApplyImage(f Filter, img image.Image) (*imageutil.RGBAImage, error) {
	pix, width, height := imageutil.ToPacked(img)
	out, err := f.Apply(pix, nil, width, height)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", f.Name(), err)
	}
	return imageutil.FromPacked(out, width*f.Factor(), height*f.Factor()), nil
}

// ApplyGIF scales every frame of an animation with f. Frames are composed
// onto the full screen before scaling, so the result carries full frames
// with the original delays and loop count.
func ApplyGIF(f Filter, g *gif.GIF) (*gif.GIF, error) {
	frames := imageutil.Frames(g)
	for i, frame := range frames {
		scaled, err := ApplyImage(f, frame)
		if err != nil {
			return nil, fmt.Errorf("frame %d: %w", i, err)
		}
		frames[i] = scaled
	}
	return imageutil.Animation(frames, g), nil
}
