// pixel_types.go - Canonical pixel types, rectangles and display modes

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

// FloatingPointPixel is the floating point source pixel. Channels are
// expected in [0,1] but nothing enforces that on write; converters clamp.
type FloatingPointPixel struct {
	R, G, B, A float32
}

// TrueColorPixel is the 8 bit per channel source pixel.
type TrueColorPixel struct {
	R, G, B, A uint8
}

// Rectangle is a region in destination pixel coordinates.
type Rectangle struct {
	X, Y          int
	Width, Height int
}

// Valid reports whether the rectangle satisfies x>=0, y>=0, width>0, height>0.
func (r Rectangle) Valid() bool {
	return r.X >= 0 && r.Y >= 0 && r.Width > 0 && r.Height > 0
}

// clip intersects a valid r with a width x height frame. ok is false when
// nothing is left. Extents are compared against the space left in the frame
// so huge widths and heights cannot overflow.
func (r Rectangle) clip(width, height int) (Rectangle, bool) {
	if r.X >= width || r.Y >= height {
		return Rectangle{}, false
	}
	return Rectangle{X: r.X, Y: r.Y, Width: min(r.Width, width-r.X), Height: min(r.Height, height-r.Y)}, true
}

func (r Rectangle) String() string {
	return fmt.Sprintf("x=%d, y=%d, width=%d, height=%d", r.X, r.Y, r.Width, r.Height)
}

// Output selects how the display is presented.
type Output int

const (
	OutputDefault Output = iota
	OutputWindowed
	OutputFullscreen
)

var outputNames = [...]string{"default", "windowed", "fullscreen"}

func (o Output) String() string {
	if o >= 0 && int(o) < len(outputNames) {
		return outputNames[o]
	}
	return fmt.Sprintf("Output(%d)", int(o))
}

func (o Output) MarshalText() ([]byte, error) { return []byte(o.String()), nil }

func (o *Output) UnmarshalText(text []byte) error {
	s := strings.ToLower(strings.TrimSpace(string(text)))
	for i, name := range outputNames {
		if s == name {
			*o = Output(i)
			return nil
		}
	}
	return invalidParameterError("parse output", 0, "unknown output %q", string(text))
}

// Mode selects the canonical pixel type the application renders with.
type Mode int

const (
	ModeTrueColor Mode = iota
	ModeFloatingPoint
)

func (m Mode) String() string {
	switch m {
	case ModeTrueColor:
		return "truecolor"
	case ModeFloatingPoint:
		return "floatingpoint"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// Format returns the canonical source format matching the mode.
func (m Mode) Format() Format {
	if m == ModeTrueColor {
		return FormatTrueColorRGBA
	}
	return FormatFloatRGBA
}

func (m Mode) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

func (m *Mode) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "truecolor", "true-color", "tc":
		*m = ModeTrueColor
	case "floatingpoint", "floating-point", "float", "fp":
		*m = ModeFloatingPoint
	default:
		return invalidParameterError("parse mode", 0, "unknown mode %q", string(text))
	}
	return nil
}
