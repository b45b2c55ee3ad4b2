// pixel_convert.go - Converter strategies for floating point source pixels

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
	"encoding/binary"

	"github.com/chewxy/math32"
)

// Converter is a stateless conversion from one canonical source format to
// one destination format. Converters are owned by a Registry and are safe
// to share between any number of displays.
type Converter interface {
	Source() Format
	Destination() Format
}

// FloatingPointConverter converts FloatRGBA source pixels.
type FloatingPointConverter interface {
	Converter
	// ConvertFloatingPoint packs min(len(src), len(dst)/bpp) pixels into dst
	// and returns how many it wrote.
	ConvertFloatingPoint(dst []byte, src []FloatingPointPixel) int
}

// TrueColorConverter converts TrueColorRGBA source pixels.
type TrueColorConverter interface {
	Converter
	// ConvertTrueColor packs min(len(src), len(dst)/bpp) pixels into dst
	// and returns how many it wrote.
	ConvertTrueColor(dst []byte, src []TrueColorPixel) int
}

type floatConverter struct {
	dst     Format
	bpp     int
	convert func(dst []byte, src []FloatingPointPixel)
}

func (c *floatConverter) Source() Format      { return FormatFloatRGBA }
func (c *floatConverter) Destination() Format { return c.dst }

func (c *floatConverter) ConvertFloatingPoint(dst []byte, src []FloatingPointPixel) int {
	n := min(len(src), len(dst)/c.bpp)
	if n == 0 {
		return 0
	}
	c.convert(dst[:n*c.bpp], src[:n])
	return n
}

// Quantizers. Channels are clamped to [0,1] (NaN counts as 0) and rounded
// half up, so a value v lands on round(v*scale).

func quantize(v, scale float32) uint32 {
	if !(v > 0) {
		return 0
	}
	if v >= 1 {
		return uint32(scale)
	}
	return uint32(math32.Round(v * scale))
}

func quantize8(v float32) uint32 { return quantize(v, 255) }
func quantize6(v float32) uint32 { return quantize(v, 63) }
func quantize5(v float32) uint32 { return quantize(v, 31) }

func floatToFloatRGBA(dst []byte, src []FloatingPointPixel) {
	copy(dst, FloatingPointBytes(src))
}

func floatToTrueColorRGBA(dst []byte, src []FloatingPointPixel) {
	for i, p := range src {
		d := dst[i*4 : i*4+4 : i*4+4]
		d[0] = uint8(quantize8(p.R))
		d[1] = uint8(quantize8(p.G))
		d[2] = uint8(quantize8(p.B))
		d[3] = uint8(quantize8(p.A))
	}
}

func floatToXRGB8888(dst []byte, src []FloatingPointPixel) {
	for i, p := range src {
		binary.LittleEndian.PutUint32(dst[i*4:], quantize8(p.R)<<16|quantize8(p.G)<<8|quantize8(p.B))
	}
}

func floatToXBGR8888(dst []byte, src []FloatingPointPixel) {
	for i, p := range src {
		binary.LittleEndian.PutUint32(dst[i*4:], quantize8(p.B)<<16|quantize8(p.G)<<8|quantize8(p.R))
	}
}

func floatToRGB888(dst []byte, src []FloatingPointPixel) {
	for i, p := range src {
		d := dst[i*3 : i*3+3 : i*3+3]
		d[0] = uint8(quantize8(p.R))
		d[1] = uint8(quantize8(p.G))
		d[2] = uint8(quantize8(p.B))
	}
}

func floatToBGR888(dst []byte, src []FloatingPointPixel) {
	for i, p := range src {
		d := dst[i*3 : i*3+3 : i*3+3]
		d[0] = uint8(quantize8(p.B))
		d[1] = uint8(quantize8(p.G))
		d[2] = uint8(quantize8(p.R))
	}
}

func floatToRGB565(dst []byte, src []FloatingPointPixel) {
	for i, p := range src {
		binary.LittleEndian.PutUint16(dst[i*2:], uint16(quantize5(p.R)<<11|quantize6(p.G)<<5|quantize5(p.B)))
	}
}

func floatToBGR565(dst []byte, src []FloatingPointPixel) {
	for i, p := range src {
		binary.LittleEndian.PutUint16(dst[i*2:], uint16(quantize5(p.B)<<11|quantize6(p.G)<<5|quantize5(p.R)))
	}
}

func floatToXRGB1555(dst []byte, src []FloatingPointPixel) {
	for i, p := range src {
		binary.LittleEndian.PutUint16(dst[i*2:], uint16(quantize5(p.R)<<10|quantize5(p.G)<<5|quantize5(p.B)))
	}
}

func floatToXBGR1555(dst []byte, src []FloatingPointPixel) {
	for i, p := range src {
		binary.LittleEndian.PutUint16(dst[i*2:], uint16(quantize5(p.B)<<10|quantize5(p.G)<<5|quantize5(p.R)))
	}
}

var floatConversions = [formatCount]func(dst []byte, src []FloatingPointPixel){
	FormatFloatRGBA:     floatToFloatRGBA,
	FormatTrueColorRGBA: floatToTrueColorRGBA,
	FormatXRGB8888:      floatToXRGB8888,
	FormatXBGR8888:      floatToXBGR8888,
	FormatRGB888:        floatToRGB888,
	FormatBGR888:        floatToBGR888,
	FormatRGB565:        floatToRGB565,
	FormatBGR565:        floatToBGR565,
	FormatXRGB1555:      floatToXRGB1555,
	FormatXBGR1555:      floatToXBGR1555,
}
