// pixel_surface.go - Native pixel surfaces

/*
 ██▓ ███▄    █ ▄▄▄█████▓ █    ██  ██▓▄▄▄█████▓ ██▓ ▒█████   ███▄    █    ▓█████  ███▄    █   ▄████  ██▓ ███▄    █ ▓█████
▓██▒ ██ ▀█   █ ▓  ██▒ ▓▒ ██  ▓██▒▓██▒▓  ██▒ ▓▒▓██▒▒██▒  ██▒ ██ ▀█   █    ▓█   ▀  ██ ▀█   █  ██▒ ▀█▒▓██▒ ██ ▀█   █ ▓█   ▀
▒██▒▓██  ▀█ ██▒▒ ▓██░ ▒░▓██  ▒██░▒██▒▒ ▓██░ ▒░▒██▒▒██░  ██▒▓██  ▀█ ██▒   ▒███   ▓██  ▀█ ██▒▒██░▄▄▄░▒██▒▓██  ▀█ ██▒▒███
░██░▓██▒  ▐▌██▒░ ▓██▓ ░ ▓▓█  ░██░░██░░ ▓██▓ ░ ░██░▒██   ██░▓██▒  ▐▌██▒   ▒▓█  ▄ ▓██▒  ▐▌██▒░▓█  ██▓░██░▓██▒  ▐▌██▒▒▓█  ▄
░██░▒██░   ▓██░  ▒██▒ ░ ▒▒█████▓ ░██░  ▒██▒ ░ ░██░░ ████▓▒░▒██░   ▓██░   ░▒████▒▒██░   ▓██░░▒▓███▀▒░██░▒██░   ▓██░░▒████▒
░▓  ░ ▒░   ▒ ▒   ▒ ░░   ░▒▓▒ ▒ ▒ ░▓    ▒ ░░   ░▓  ░ ▒░▒░▒░ ░ ▒░   ▒ ▒    ░░ ▒░ ░░ ▒░   ▒ ▒  ░▒   ▒ ░▓  ░ ▒░   ▒ ▒ ░░ ▒░ ░
 ▒ ░░ ░░   ░ ▒░    ░    ░░▒░ ░ ░  ▒ ░    ░     ▒ ░  ░ ▒ ▒░ ░ ░░   ░ ▒░    ░ ░  ░░ ░░   ░ ▒░  ░   ░  ▒ ░░ ░░   ░ ▒░ ░ ░  ░
 ▒ ░   ░   ░ ░   ░       ░░░ ░ ░  ▒ ░  ░       ▒ ░░ ░ ░ ▒     ░   ░ ░       ░      ░   ░ ░ ░ ░   ░  ▒ ░   ░   ░ ░    ░
 ░           ░             ░      ░            ░      ░ ░           ░       ░  ░         ░       ░  ░           ░    ░  ░

(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/IntuitionEngine
License: GPLv3 or later
*/

package pixeltoaster

import (
	"image"
	"image/color"
)

// Surface is a native pixel buffer: the thing a backend presents and the
// thing converters write into. Rows are Stride bytes apart.
type Surface struct {
	Pix    []byte
	Format Format
	Width  int
	Height int
	Stride int
}

// NewSurface allocates a tightly packed surface.
func NewSurface(format Format, width, height int) (*Surface, error) {
	if !format.valid() {
		return nil, invalidParameterError("new surface", CodeUnknownFormat, "invalid surface format %s", format)
	}
	if width <= 0 || height <= 0 {
		return nil, invalidParameterError("new surface", CodeInvalidWidth,
			"invalid surface size %dx%d", width, height)
	}
	stride := width * format.BytesPerPixel()
	return &Surface{
		Pix:    make([]byte, stride*height),
		Format: format,
		Width:  width,
		Height: height,
		Stride: stride,
	}, nil
}

// PixOffset returns the index of the first byte of pixel (x, y).
func (s *Surface) PixOffset(x, y int) int {
	return y*s.Stride + x*s.Format.BytesPerPixel()
}

// Span returns the bytes of n pixels starting at (x, y).
func (s *Surface) Span(x, y, n int) []byte {
	off := s.PixOffset(x, y)
	return s.Pix[off : off+n*s.Format.BytesPerPixel()]
}

// Clear zeroes the whole surface.
func (s *Surface) Clear() {
	clear(s.Pix)
}

// Clone returns a deep copy.
func (s *Surface) Clone() *Surface {
	c := *s
	c.Pix = append([]byte(nil), s.Pix...)
	return &c
}

var _ image.Image = (*Surface)(nil)

func (s *Surface) ColorModel() color.Model { return color.NRGBAModel }

func (s *Surface) Bounds() image.Rectangle {
	return image.Rect(0, 0, s.Width, s.Height)
}

func (s *Surface) At(x, y int) color.Color {
	if !(image.Point{x, y}.In(s.Bounds())) {
		return color.NRGBA{}
	}
	var px [1]TrueColorPixel
	s.Format.UnpackTrueColor(px[:], s.Span(x, y, 1))
	return color.NRGBA{R: px[0].R, G: px[0].G, B: px[0].B, A: px[0].A}
}

// CopyOpaqueRGBA decodes the surface into dst as width*height*4 bytes of
// R,G,B,A with alpha forced to 0xFF, the layout ebiten and image.RGBA use.
func (s *Surface) CopyOpaqueRGBA(dst []byte) {
	rowBytes := s.Width * 4
	for y := 0; y < s.Height && (y+1)*rowBytes <= len(dst); y++ {
		row := trueColorView(dst[y*rowBytes : (y+1)*rowBytes])
		s.Format.UnpackTrueColor(row, s.Span(0, y, s.Width))
		for i := range row {
			row[i].A = 0xFF
		}
	}
}

// RGBA returns an opaque image.RGBA copy of the surface.
func (s *Surface) RGBA() *image.RGBA {
	img := image.NewRGBA(s.Bounds())
	s.CopyOpaqueRGBA(img.Pix)
	return img
}
