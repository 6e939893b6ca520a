package main

import (
	"image"
	"image/color"
	"math"
	"slices"

	"github.com/gogpu/fractal"
)

// A paletteFunc maps a normalized escape count in [0, 1] to a color.
// Interior pixels arrive as 0 and should stay dark.
type paletteFunc func(t float64) color.RGBA

var palettes = map[string]paletteFunc{
	"gray": grayRamp,
	"fire": fireRamp,
	"ice":  iceRamp,
}

func paletteNames() []string {
	names := make([]string, 0, len(palettes))
	for name := range palettes {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func grayRamp(t float64) color.RGBA {
	v := rampByte(t)
	return color.RGBA{v, v, v, 0xff}
}

// fireRamp runs black, red, yellow, white.
func fireRamp(t float64) color.RGBA {
	switch {
	case t < 1.0/3:
		return color.RGBA{rampByte(3 * t), 0, 0, 0xff}
	case t < 2.0/3:
		return color.RGBA{0xff, rampByte(3*t - 1), 0, 0xff}
	default:
		return color.RGBA{0xff, 0xff, rampByte(3*t - 2), 0xff}
	}
}

// iceRamp runs black, blue, cyan, white.
func iceRamp(t float64) color.RGBA {
	switch {
	case t < 1.0/3:
		return color.RGBA{0, 0, rampByte(3 * t), 0xff}
	case t < 2.0/3:
		return color.RGBA{0, rampByte(3*t - 1), 0xff, 0xff}
	default:
		v := rampByte(3*t - 2)
		return color.RGBA{v, 0xff, 0xff, 0xff}
	}
}

func rampByte(t float64) uint8 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 0xff
	}
	return uint8(math.Round(255 * t))
}

// normalize scales q onto [0, 1] within the field's value range. A
// flat field maps to 0 so all-interior frames come out black.
func normalize(q, lo, hi float64) float64 {
	if hi <= lo {
		return 0
	}
	return (q - lo) / (hi - lo)
}

// rasterize maps the field through pal into an RGBA image.
func rasterize(field *fractal.Field, pal paletteFunc) *image.RGBA {
	lo, hi := field.MinMax()
	img := image.NewRGBA(image.Rect(0, 0, field.Width(), field.Height()))
	for y := 0; y < field.Height(); y++ {
		for x := 0; x < field.Width(); x++ {
			img.SetRGBA(x, y, pal(normalize(field.At(x, y), lo, hi)))
		}
	}
	return img
}
