package packager

import (
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
)

const iconSize = 256

var (
	iconBackground = color.NRGBA{R: 0x1F, G: 0x6A, B: 0xA5, A: 0xFF}
	iconStrandA    = color.NRGBA{R: 0x2C, G: 0xC9, B: 0x85, A: 0xFF}
	iconStrandB    = color.NRGBA{R: 0xF2, G: 0xF2, B: 0xF2, A: 0xFF}
)

// Icon draws the bundle icon: two interleaved strands on a solid tile.
func Icon() image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, iconSize, iconSize))
	for y := 0; y < iconSize; y++ {
		for x := 0; x < iconSize; x++ {
			img.SetNRGBA(x, y, iconBackground)
		}
	}

	mid := float64(iconSize) / 2
	amp := float64(iconSize) / 4
	for y := 16; y < iconSize-16; y++ {
		phase := float64(y) / float64(iconSize) * 2 * math.Pi * 1.5
		a := int(mid + amp*math.Sin(phase))
		b := int(mid - amp*math.Sin(phase))
		for dx := -6; dx <= 6; dx++ {
			img.SetNRGBA(a+dx, y, iconStrandA)
			img.SetNRGBA(b+dx, y, iconStrandB)
		}
		if y%24 == 0 {
			lo, hi := a, b
			if lo > hi {
				lo, hi = hi, lo
			}
			for x := lo; x <= hi; x++ {
				img.SetNRGBA(x, y, iconStrandB)
			}
		}
	}
	return img
}

func writeIcon(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := png.Encode(f, Icon()); err != nil {
		return err
	}
	return f.Close()
}
