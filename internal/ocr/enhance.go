package ocr

import (
	"image"
	"image/color"
)

// Enhance converts a page image to grayscale and stretches its contrast to the
// full 0-255 range. Used for the quality-gated second OCR pass on low-contrast
// scans and photos.
func Enhance(img image.Image) image.Image {
	bounds := img.Bounds()
	gray := image.NewGray(bounds)

	lo, hi := uint8(255), uint8(0)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			g := color.GrayModel.Convert(img.At(x, y)).(color.Gray)
			gray.SetGray(x, y, g)
			if g.Y < lo {
				lo = g.Y
			}
			if g.Y > hi {
				hi = g.Y
			}
		}
	}

	// Flat image: nothing to stretch.
	if hi <= lo {
		return gray
	}

	span := int(hi) - int(lo)
	for i, v := range gray.Pix {
		gray.Pix[i] = uint8((int(v) - int(lo)) * 255 / span)
	}
	return gray
}
