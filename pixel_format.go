// pixel_format.go - Pixel format tags and their memory layouts

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
	"fmt"
	"strings"
)

// Format is a closed set of pixel layouts. FloatRGBA and TrueColorRGBA are
// the canonical source formats; the rest are native destination layouts.
// Multi-byte layouts are stored least significant byte first.
type Format int

const (
	FormatUnknown Format = iota
	FormatFloatRGBA
	FormatTrueColorRGBA
	FormatXRGB8888
	FormatXBGR8888
	FormatRGB888
	FormatBGR888
	FormatRGB565
	FormatBGR565
	FormatXRGB1555
	FormatXBGR1555

	formatCount
)

// FormatLayout describes a format for tables and diagnostics.
type FormatLayout struct {
	Name          string
	BitsPerPixel  int
	BytesPerPixel int
	Layout        string
}

var formatLayouts = [formatCount]FormatLayout{
	FormatUnknown:       {"Unknown", 0, 0, "-"},
	FormatFloatRGBA:     {"FloatRGBA", 128, 16, "R,G,B,A float32"},
	FormatTrueColorRGBA: {"TrueColorRGBA", 32, 4, "R,G,B,A bytes"},
	FormatXRGB8888:      {"XRGB8888", 32, 4, "unused:R:G:B, 8 bits each"},
	FormatXBGR8888:      {"XBGR8888", 32, 4, "unused:B:G:R, 8 bits each"},
	FormatRGB888:        {"RGB888", 24, 3, "R,G,B bytes"},
	FormatBGR888:        {"BGR888", 24, 3, "B,G,R bytes"},
	FormatRGB565:        {"RGB565", 16, 2, "R(5):G(6):B(5)"},
	FormatBGR565:        {"BGR565", 16, 2, "B(5):G(6):R(5)"},
	FormatXRGB1555:      {"XRGB1555", 16, 2, "unused(1):R(5):G(5):B(5)"},
	FormatXBGR1555:      {"XBGR1555", 16, 2, "unused(1):B(5):G(5):R(5)"},
}

// Formats returns every known format except FormatUnknown, canonical first.
func Formats() []Format {
	out := make([]Format, 0, formatCount-1)
	for f := FormatFloatRGBA; f < formatCount; f++ {
		out = append(out, f)
	}
	return out
}

func (f Format) valid() bool { return f > FormatUnknown && f < formatCount }

func (f Format) String() string {
	if f >= 0 && f < formatCount {
		return formatLayouts[f].Name
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// Layout returns the layout description of f.
func (f Format) Layout() FormatLayout {
	if f >= 0 && f < formatCount {
		return formatLayouts[f]
	}
	return formatLayouts[FormatUnknown]
}

// BytesPerPixel returns the stride of a single pixel, 0 for unknown formats.
func (f Format) BytesPerPixel() int { return f.Layout().BytesPerPixel }

// Canonical reports whether f is one of the two source formats.
func (f Format) Canonical() bool {
	return f == FormatFloatRGBA || f == FormatTrueColorRGBA
}

// ParseFormat looks a format up by tag name, ignoring case.
func ParseFormat(name string) (Format, error) {
	for f := FormatFloatRGBA; f < formatCount; f++ {
		if strings.EqualFold(name, formatLayouts[f].Name) {
			return f, nil
		}
	}
	return FormatUnknown, invalidParameterError("parse format", CodeUnknownFormat, "unknown pixel format %q", name)
}

func (f Format) MarshalText() ([]byte, error) { return []byte(f.String()), nil }

func (f *Format) UnmarshalText(text []byte) error {
	parsed, err := ParseFormat(strings.TrimSpace(string(text)))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}
