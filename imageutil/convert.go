package imageutil

import (
	"image"

	"golang.org/x/image/draw"
)

// ToPacked flattens img into row-major 0xAARRGGBB pixels. Colors are taken
// without alpha premultiplication so that translucent pixels keep their
// hue once the filters force them opaque.
func ToPacked(img image.Image) (pix []uint32, width, height int) {
	bounds := img.Bounds()
	width, height = bounds.Dx(), bounds.Dy()

	nrgba, ok := img.(*image.NRGBA)
	if !ok || bounds.Min != (image.Point{}) {
		nrgba = image.NewNRGBA(image.Rect(0, 0, width, height))
		draw.Draw(nrgba, nrgba.Bounds(), img, bounds.Min, draw.Src)
	}

	pix = make([]uint32, width*height)
	for y := 0; y < height; y++ {
		row := nrgba.Pix[y*nrgba.Stride : y*nrgba.Stride+width*4]
		out := pix[y*width : (y+1)*width]
		for x := range out {
			p := row[x*4 : x*4+4 : x*4+4]
			out[x] = uint32(p[3])<<24 | uint32(p[0])<<16 | uint32(p[1])<<8 | uint32(p[2])
		}
	}
	return pix, width, height
}

// FromPacked builds an image from row-major 0xAARRGGBB pixels. Packed
// values are treated as opaque-or-premultiplied, which holds for every
// filter output.
func FromPacked(pix []uint32, width, height int) *RGBAImage {
	img := NewRGBAImage(width, height)
	for y := 0; y < height; y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+width*4]
		for x, c := range pix[y*width : (y+1)*width] {
			p := row[x*4 : x*4+4 : x*4+4]
			p[0] = uint8(c >> 16)
			p[1] = uint8(c >> 8)
			p[2] = uint8(c)
			p[3] = uint8(c >> 24)
		}
	}
	return img
}
