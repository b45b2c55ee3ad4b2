package main

import (
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"

	"github.com/intuitionamiga/pixeltoaster"
)

// trueColorCanvas lets tinyfont draw straight into a true color frame.
type trueColorCanvas struct {
	pix  []pixeltoaster.TrueColorPixel
	w, h int
}

func (c *trueColorCanvas) Size() (x, y int16) { return int16(c.w), int16(c.h) }

func (c *trueColorCanvas) SetPixel(x, y int16, col color.RGBA) {
	if x < 0 || y < 0 || int(x) >= c.w || int(y) >= c.h {
		return
	}
	c.pix[int(y)*c.w+int(x)] = pixeltoaster.TrueColorPixel{R: col.R, G: col.G, B: col.B, A: col.A}
}

func (c *trueColorCanvas) Display() error { return nil }

// floatCanvas is trueColorCanvas for floating point frames.
type floatCanvas struct {
	pix  []pixeltoaster.FloatingPointPixel
	w, h int
}

func (c *floatCanvas) Size() (x, y int16) { return int16(c.w), int16(c.h) }

func (c *floatCanvas) SetPixel(x, y int16, col color.RGBA) {
	if x < 0 || y < 0 || int(x) >= c.w || int(y) >= c.h {
		return
	}
	c.pix[int(y)*c.w+int(x)] = pixeltoaster.FloatingPointPixel{
		R: float32(col.R) / 255,
		G: float32(col.G) / 255,
		B: float32(col.B) / 255,
		A: float32(col.A) / 255,
	}
}

func (c *floatCanvas) Display() error { return nil }

var captionColor = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}

// caption writes s with its baseline at y.
func caption(d drivers.Displayer, x, y int16, s string) {
	tinyfont.WriteLine(d, &tinyfont.TomThumb, x, y, s, captionColor)
}

var (
	_ drivers.Displayer = (*trueColorCanvas)(nil)
	_ drivers.Displayer = (*floatCanvas)(nil)
)
