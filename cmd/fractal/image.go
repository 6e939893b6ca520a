package main

import (
	"bufio"
	"fmt"
	"image"
	"image/png"
	"math"
	"os"

	"golang.org/x/image/draw"

	"github.com/gogpu/fractal"
)

// downscale resizes img to width x height with Catmull-Rom resampling,
// which keeps the thin filaments supersampling is meant to preserve.
func downscale(img *image.RGBA, width, height int) *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(out, out.Bounds(), img, img.Bounds(), draw.Src, nil)
	return out
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(f)
	if err := png.Encode(w, img); err != nil {
		f.Close()
		return err
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// writePGM writes the field as a binary 16-bit PGM, normalized to the
// field's own value range. Sample values are big-endian per the format.
func writePGM(path string, field *fractal.Field) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(f)
	fmt.Fprintf(w, "P5\n%d %d\n65535\n", field.Width(), field.Height())

	lo, hi := field.MinMax()
	for y := 0; y < field.Height(); y++ {
		for _, q := range field.Row(y) {
			v := uint16(math.Round(65535 * normalize(q, lo, hi)))
			w.WriteByte(byte(v >> 8))
			w.WriteByte(byte(v))
		}
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
