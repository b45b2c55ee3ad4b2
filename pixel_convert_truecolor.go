// pixel_convert_truecolor.go - Converter strategies for true color source pixels

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
	"math"
)

type trueColorConverter struct {
	dst     Format
	bpp     int
	convert func(dst []byte, src []TrueColorPixel)
}

func (c *trueColorConverter) Source() Format      { return FormatTrueColorRGBA }
func (c *trueColorConverter) Destination() Format { return c.dst }

func (c *trueColorConverter) ConvertTrueColor(dst []byte, src []TrueColorPixel) int {
	n := min(len(src), len(dst)/c.bpp)
	if n == 0 {
		return 0
	}
	c.convert(dst[:n*c.bpp], src[:n])
	return n
}

// True color sources never touch floating point on the way to a native
// layout: 8 bit channels are copied or truncated to 5/6 bits.

func trueColorToFloatRGBA(dst []byte, src []TrueColorPixel) {
	for i, p := range src {
		d := dst[i*16 : i*16+16 : i*16+16]
		binary.LittleEndian.PutUint32(d[0:], math.Float32bits(float32(p.R)/255))
		binary.LittleEndian.PutUint32(d[4:], math.Float32bits(float32(p.G)/255))
		binary.LittleEndian.PutUint32(d[8:], math.Float32bits(float32(p.B)/255))
		binary.LittleEndian.PutUint32(d[12:], math.Float32bits(float32(p.A)/255))
	}
}

func trueColorToTrueColorRGBA(dst []byte, src []TrueColorPixel) {
	copy(dst, TrueColorBytes(src))
}

func trueColorToXRGB8888(dst []byte, src []TrueColorPixel) {
	for i, p := range src {
		binary.LittleEndian.PutUint32(dst[i*4:], uint32(p.R)<<16|uint32(p.G)<<8|uint32(p.B))
	}
}

func trueColorToXBGR8888(dst []byte, src []TrueColorPixel) {
	for i, p := range src {
		binary.LittleEndian.PutUint32(dst[i*4:], uint32(p.B)<<16|uint32(p.G)<<8|uint32(p.R))
	}
}

func trueColorToRGB888(dst []byte, src []TrueColorPixel) {
	for i, p := range src {
		d := dst[i*3 : i*3+3 : i*3+3]
		d[0] = p.R
		d[1] = p.G
		d[2] = p.B
	}
}

func trueColorToBGR888(dst []byte, src []TrueColorPixel) {
	for i, p := range src {
		d := dst[i*3 : i*3+3 : i*3+3]
		d[0] = p.B
		d[1] = p.G
		d[2] = p.R
	}
}

func trueColorToRGB565(dst []byte, src []TrueColorPixel) {
	for i, p := range src {
		binary.LittleEndian.PutUint16(dst[i*2:], uint16(p.R>>3)<<11|uint16(p.G>>2)<<5|uint16(p.B>>3))
	}
}

func trueColorToBGR565(dst []byte, src []TrueColorPixel) {
	for i, p := range src {
		binary.LittleEndian.PutUint16(dst[i*2:], uint16(p.B>>3)<<11|uint16(p.G>>2)<<5|uint16(p.R>>3))
	}
}

func trueColorToXRGB1555(dst []byte, src []TrueColorPixel) {
	for i, p := range src {
		binary.LittleEndian.PutUint16(dst[i*2:], uint16(p.R>>3)<<10|uint16(p.G>>3)<<5|uint16(p.B>>3))
	}
}

func trueColorToXBGR1555(dst []byte, src []TrueColorPixel) {
	for i, p := range src {
		binary.LittleEndian.PutUint16(dst[i*2:], uint16(p.B>>3)<<10|uint16(p.G>>3)<<5|uint16(p.R>>3))
	}
}

var trueColorConversions = [formatCount]func(dst []byte, src []TrueColorPixel){
	FormatFloatRGBA:     trueColorToFloatRGBA,
	FormatTrueColorRGBA: trueColorToTrueColorRGBA,
	FormatXRGB8888:      trueColorToXRGB8888,
	FormatXBGR8888:      trueColorToXBGR8888,
	FormatRGB888:        trueColorToRGB888,
	FormatBGR888:        trueColorToBGR888,
	FormatRGB565:        trueColorToRGB565,
	FormatBGR565:        trueColorToBGR565,
	FormatXRGB1555:      trueColorToXRGB1555,
	FormatXBGR1555:      trueColorToXBGR1555,
}
