// display_backend_displayer.go - Backend for TinyGo display panels

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
	"image/color"

	"tinygo.org/x/drivers"
)

// DisplayerBackend presents frames on any TinyGo drivers.Displayer, such as
// an SPI LCD panel. The panel takes color.RGBA per pixel, so the native
// format is TrueColorRGBA and the true color path is a plain copy.
type DisplayerBackend struct {
	panel  drivers.Displayer
	open   bool
	config DisplayConfig
	row    []TrueColorPixel
}

// NewDisplayerBackend wraps panel.
func NewDisplayerBackend(panel drivers.Displayer) *DisplayerBackend {
	return &DisplayerBackend{panel: panel}
}

func (db *DisplayerBackend) Open(config DisplayConfig) error {
	if db.panel == nil {
		return fmt.Errorf("no display panel")
	}
	pw, ph := db.panel.Size()
	if config.Width > int(pw) || config.Height > int(ph) {
		return fmt.Errorf("%dx%d frame does not fit %dx%d panel", config.Width, config.Height, pw, ph)
	}
	config.Format = FormatTrueColorRGBA
	db.config = config
	db.row = make([]TrueColorPixel, config.Width)
	db.open = true
	return nil
}

func (db *DisplayerBackend) Close() error {
	db.open = false
	return nil
}

func (db *DisplayerBackend) NativeFormat() Format { return FormatTrueColorRGBA }

func (db *DisplayerBackend) Update(frame *Surface, dirty Rectangle) bool {
	if !db.open {
		return false
	}
	row := db.row[:dirty.Width]
	for y := dirty.Y; y < dirty.Y+dirty.Height; y++ {
		frame.Format.UnpackTrueColor(row, frame.Span(dirty.X, y, dirty.Width))
		for i, p := range row {
			db.panel.SetPixel(int16(dirty.X+i), int16(y), color.RGBA{R: p.R, G: p.G, B: p.B, A: 0xFF})
		}
	}
	return db.panel.Display() == nil
}

var _ DisplayBackend = (*DisplayerBackend)(nil)
