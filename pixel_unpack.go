// pixel_unpack.go - Decoding native layouts back into canonical pixels

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

// channelLayout locates the colour channels inside a little-endian pixel word.
// Formats without alpha decode as opaque.
type channelLayout struct {
	rShift, gShift, bShift uint
	rBits, gBits, bBits    uint
}

var packedLayouts = [formatCount]channelLayout{
	FormatXRGB8888: {rShift: 16, gShift: 8, bShift: 0, rBits: 8, gBits: 8, bBits: 8},
	FormatXBGR8888: {rShift: 0, gShift: 8, bShift: 16, rBits: 8, gBits: 8, bBits: 8},
	FormatRGB888:   {rShift: 0, gShift: 8, bShift: 16, rBits: 8, gBits: 8, bBits: 8},
	FormatBGR888:   {rShift: 16, gShift: 8, bShift: 0, rBits: 8, gBits: 8, bBits: 8},
	FormatRGB565:   {rShift: 11, gShift: 5, bShift: 0, rBits: 5, gBits: 6, bBits: 5},
	FormatBGR565:   {rShift: 0, gShift: 5, bShift: 11, rBits: 5, gBits: 6, bBits: 5},
	FormatXRGB1555: {rShift: 10, gShift: 5, bShift: 0, rBits: 5, gBits: 5, bBits: 5},
	FormatXBGR1555: {rShift: 0, gShift: 5, bShift: 10, rBits: 5, gBits: 5, bBits: 5},
}

func readWord(px []byte, bpp int) uint32 {
	switch bpp {
	case 2:
		return uint32(binary.LittleEndian.Uint16(px))
	case 3:
		return uint32(px[0]) | uint32(px[1])<<8 | uint32(px[2])<<16
	}
	return binary.LittleEndian.Uint32(px)
}

func field(word uint32, shift, bits uint) uint32 {
	return (word >> shift) & (1<<bits - 1)
}

// expand8 widens an n bit channel to 8 bits, rounding to nearest.
func expand8(q uint32, bits uint) uint8 {
	if bits == 8 {
		return uint8(q)
	}
	top := uint32(1)<<bits - 1
	return uint8((q*255 + top/2) / top)
}

func expandFloat(q uint32, bits uint) float32 {
	return float32(q) / float32(uint32(1)<<bits-1)
}

// UnpackTrueColor decodes min(len(dst), len(src)/bpp) pixels of format f from
// src and returns how many it decoded.
func (f Format) UnpackTrueColor(dst []TrueColorPixel, src []byte) int {
	bpp := f.BytesPerPixel()
	if bpp == 0 {
		return 0
	}
	n := min(len(dst), len(src)/bpp)
	switch f {
	case FormatTrueColorRGBA:
		copy(TrueColorBytes(dst[:n]), src)
	case FormatFloatRGBA:
		for i := range dst[:n] {
			s := src[i*16:]
			dst[i] = TrueColorPixel{
				R: uint8(quantize8(math.Float32frombits(binary.LittleEndian.Uint32(s[0:])))),
				G: uint8(quantize8(math.Float32frombits(binary.LittleEndian.Uint32(s[4:])))),
				B: uint8(quantize8(math.Float32frombits(binary.LittleEndian.Uint32(s[8:])))),
				A: uint8(quantize8(math.Float32frombits(binary.LittleEndian.Uint32(s[12:])))),
			}
		}
	default:
		l := packedLayouts[f]
		for i := range dst[:n] {
			w := readWord(src[i*bpp:], bpp)
			dst[i] = TrueColorPixel{
				R: expand8(field(w, l.rShift, l.rBits), l.rBits),
				G: expand8(field(w, l.gShift, l.gBits), l.gBits),
				B: expand8(field(w, l.bShift, l.bBits), l.bBits),
				A: 0xFF,
			}
		}
	}
	return n
}

// UnpackFloatingPoint decodes min(len(dst), len(src)/bpp) pixels of format f
// from src into [0,1] floats and returns how many it decoded.
func (f Format) UnpackFloatingPoint(dst []FloatingPointPixel, src []byte) int {
	bpp := f.BytesPerPixel()
	if bpp == 0 {
		return 0
	}
	n := min(len(dst), len(src)/bpp)
	switch f {
	case FormatFloatRGBA:
		copy(FloatingPointBytes(dst[:n]), src)
	case FormatTrueColorRGBA:
		for i := range dst[:n] {
			s := src[i*4 : i*4+4 : i*4+4]
			dst[i] = FloatingPointPixel{
				R: float32(s[0]) / 255,
				G: float32(s[1]) / 255,
				B: float32(s[2]) / 255,
				A: float32(s[3]) / 255,
			}
		}
	default:
		l := packedLayouts[f]
		for i := range dst[:n] {
			w := readWord(src[i*bpp:], bpp)
			dst[i] = FloatingPointPixel{
				R: expandFloat(field(w, l.rShift, l.rBits), l.rBits),
				G: expandFloat(field(w, l.gShift, l.gBits), l.gBits),
				B: expandFloat(field(w, l.bShift, l.bBits), l.bBits),
				A: 1,
			}
		}
	}
	return n
}
