// display_adapter.go - Display adapter state machine

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
	"log/slog"
	"unicode/utf8"
)

const (
	// MaxDimension bounds display width and height.
	MaxDimension = 8192
	// MaxTitleLength is the longest title kept, in bytes.
	MaxTitleLength = 255
)

// Display is the display adapter. It owns the lifecycle state, validates
// every call, converts canonical frames into the backend's native format
// and dispatches backend events to the listener.
//
// A Display is not safe for concurrent use. All calls, including listener
// callbacks, happen on the caller's goroutine.
type Display struct {
	backend  DisplayBackend
	registry *Registry
	logger   *slog.Logger

	scale  int
	format Format

	title  string
	width  int
	height int
	output Output
	mode   Mode
	open   bool

	frame     *Surface
	converter Converter
	events    []Event

	listener Listener
	wrapper  DisplayInterface
}

var _ DisplayInterface = (*Display)(nil)

// Option configures a Display.
type Option func(*Display)

// WithRegistry shares a converter registry between displays.
func WithRegistry(r *Registry) Option {
	return func(d *Display) { d.registry = r }
}

// WithLogger sets the logger used for lifecycle debug messages.
func WithLogger(l *slog.Logger) Option {
	return func(d *Display) { d.logger = l }
}

// WithListener attaches a listener up front.
func WithListener(l Listener) Option {
	return func(d *Display) { d.listener = l }
}

// WithScale sets the integer window scale passed to the backend.
func WithScale(scale int) Option {
	return func(d *Display) { d.scale = scale }
}

// WithNativeFormat asks the backend for a specific native format.
func WithNativeFormat(f Format) Option {
	return func(d *Display) { d.format = f }
}

// NewDisplay creates a closed display presenting through backend.
func NewDisplay(backend DisplayBackend, opts ...Option) (*Display, error) {
	if backend == nil {
		return nil, nullPointerError("create display", CodeNilBackend, "display backend cannot be nil")
	}
	d := &Display{backend: backend, scale: 1}
	for _, opt := range opts {
		opt(d)
	}
	if d.registry == nil {
		d.registry = NewRegistry()
	}
	if d.logger == nil {
		d.logger = slog.New(slog.DiscardHandler)
	}
	d.defaults()
	return d, nil
}

// Backend returns the backend the display presents through.
func (d *Display) Backend() DisplayBackend { return d.backend }

func (d *Display) defaults() {
	d.title = ""
	d.width = 0
	d.height = 0
	d.mode = ModeFloatingPoint
	d.output = OutputDefault
	d.open = false
	d.frame = nil
	d.converter = nil
	d.events = d.events[:0]
}

// Open validates the parameters and opens the display. An open display is
// closed first, so re-opening always starts from a clean state. Validation
// errors leave the display exactly as it was.
func (d *Display) Open(title string, width, height int, output Output, mode Mode) error {
	if width <= 0 || width > MaxDimension {
		return invalidParameterError("open", CodeInvalidWidth,
			"invalid width parameter: %d. Width must be between 1 and %d", width, MaxDimension)
	}
	if height <= 0 || height > MaxDimension {
		return invalidParameterError("open", CodeInvalidHeight,
			"invalid height parameter: %d. Height must be between 1 and %d", height, MaxDimension)
	}

	_ = d.Close()

	title = truncateTitle(title)
	cfg := DisplayConfig{
		Title:  title,
		Width:  width,
		Height: height,
		Output: output,
		Mode:   mode,
		Scale:  d.scale,
		Format: d.format,
	}
	if err := d.backend.Open(cfg); err != nil {
		return resourceError("open", CodeSurfaceCreate, err, "failed to open display backend")
	}
	frame, err := NewSurface(d.backend.NativeFormat(), width, height)
	if err != nil {
		_ = d.backend.Close()
		return resourceError("open", CodeSurfaceCreate, err, "failed to create %dx%d surface", width, height)
	}

	d.title = title
	d.width = width
	d.height = height
	d.output = output
	d.mode = mode
	d.frame = frame
	d.open = true
	d.logger.Debug("display opened", "title", title, "width", width, "height", height,
		"output", output, "mode", mode, "native", frame.Format)

	if d.listener != nil {
		d.listener.OnOpen(d.receiver())
	}
	return nil
}

// Close releases the backend and resets the display to its defaults. It is
// idempotent. The display is reset even when the backend fails to close.
func (d *Display) Close() error {
	if !d.open {
		d.defaults()
		return nil
	}
	err := d.backend.Close()
	d.defaults()
	d.logger.Debug("display closed")
	if err != nil {
		return resourceError("close", CodeBackendClose, err, "failed to close display backend")
	}
	return nil
}

// IsOpen reports whether the display is open.
func (d *Display) IsOpen() bool { return d.open }

// UpdateTrueColor presents a frame of width*height true color pixels. A nil
// dirty box updates the whole frame, otherwise only that region is converted
// and presented; a box entirely outside the frame presents nothing and still
// succeeds. The boolean result is false when the display is closed or the
// backend could not present the frame.
func (d *Display) UpdateTrueColor(pixels []TrueColorPixel, dirty *Rectangle) (bool, error) {
	if pixels == nil {
		return false, nullPointerError("update", CodeNilPixels, "TrueColorPixel pixels slice cannot be nil")
	}
	if err := validateDirtyBox(dirty); err != nil {
		return false, err
	}
	return d.update(pixels, nil, dirty)
}

// UpdateFloatingPoint is UpdateTrueColor for floating point frames.
func (d *Display) UpdateFloatingPoint(pixels []FloatingPointPixel, dirty *Rectangle) (bool, error) {
	if pixels == nil {
		return false, nullPointerError("update", CodeNilPixels, "FloatingPointPixel pixels slice cannot be nil")
	}
	if err := validateDirtyBox(dirty); err != nil {
		return false, err
	}
	return d.update(nil, pixels, dirty)
}

func validateDirtyBox(dirty *Rectangle) error {
	if dirty != nil && !dirty.Valid() {
		return invalidParameterError("update", CodeInvalidDirtyBox, "invalid dirtyBox parameters: %s", *dirty)
	}
	return nil
}

// update receives exactly one non-nil pixel slice.
func (d *Display) update(tc []TrueColorPixel, fp []FloatingPointPixel, dirty *Rectangle) (bool, error) {
	if !d.open {
		return false, nil
	}
	source, have := FormatTrueColorRGBA, len(tc)
	if tc == nil {
		source, have = FormatFloatRGBA, len(fp)
	}
	if need := d.width * d.height; have < need {
		return false, invalidParameterError("update", CodeShortFrame,
			"frame has %d pixels, display needs %d", have, need)
	}

	region := Rectangle{Width: d.width, Height: d.height}
	if dirty != nil {
		r, ok := dirty.clip(d.width, d.height)
		if !ok {
			d.pumpEvents()
			return d.open, nil
		}
		region = r
	}

	conv, err := d.converterFor(source)
	if err != nil {
		return false, err
	}
	end := region.Y + region.Height
	if tc != nil {
		c := conv.(TrueColorConverter)
		for y := region.Y; y < end; y++ {
			row := y*d.width + region.X
			c.ConvertTrueColor(d.frame.Span(region.X, y, region.Width), tc[row:row+region.Width])
		}
	} else {
		c := conv.(FloatingPointConverter)
		for y := region.Y; y < end; y++ {
			row := y*d.width + region.X
			c.ConvertFloatingPoint(d.frame.Span(region.X, y, region.Width), fp[row:row+region.Width])
		}
	}

	shown := d.backend.Update(d.frame, region)
	d.pumpEvents()
	return shown && d.open, nil
}

// converterFor returns the cached converter while neither side of the pair changes.
func (d *Display) converterFor(source Format) (Converter, error) {
	dst := d.frame.Format
	if c := d.converter; c != nil && c.Source() == source && c.Destination() == dst {
		return c, nil
	}
	c, err := d.registry.RequestConverter(source, dst)
	if err != nil {
		return nil, err
	}
	d.converter = c
	return c, nil
}

func (d *Display) pumpEvents() {
	src, ok := d.backend.(EventSource)
	if !ok {
		return
	}
	d.events = src.PollEvents(d.events[:0])
	for _, ev := range d.events {
		if !d.dispatch(ev) || !d.open {
			break
		}
	}
	d.events = d.events[:0]
}

// Windowed switches to windowed output.
func (d *Display) Windowed() error { return d.switchOutput(OutputWindowed) }

// Fullscreen switches to fullscreen output.
func (d *Display) Fullscreen() error { return d.switchOutput(OutputFullscreen) }

func (d *Display) switchOutput(output Output) error {
	if d.open {
		if sw, ok := d.backend.(OutputSwitcher); ok {
			if err := sw.SetOutput(output); err != nil {
				return resourceError("switch output", CodeOutputSwitch, err, "failed to switch to %s output", output)
			}
		}
		d.logger.Debug("display output switched", "output", output)
	}
	d.output = output
	return nil
}

func (d *Display) Title() string { return d.title }

// SetTitle changes the title without touching any other state.
func (d *Display) SetTitle(title string) {
	d.title = truncateTitle(title)
	if d.open {
		if ts, ok := d.backend.(TitleSetter); ok {
			ts.SetTitle(d.title)
		}
	}
}

func (d *Display) Width() int     { return d.width }
func (d *Display) Height() int    { return d.height }
func (d *Display) Mode() Mode     { return d.mode }
func (d *Display) Output() Output { return d.output }

func (d *Display) Listener() Listener            { return d.listener }
func (d *Display) SetListener(listener Listener) { d.listener = listener }

func (d *Display) Wrapper() DisplayInterface           { return d.wrapper }
func (d *Display) SetWrapper(display DisplayInterface) { d.wrapper = display }

func (d *Display) receiver() DisplayInterface {
	if d.wrapper != nil {
		return d.wrapper
	}
	return d
}

func truncateTitle(title string) string {
	if len(title) <= MaxTitleLength {
		return title
	}
	cut := MaxTitleLength
	for cut > 0 && !utf8.RuneStart(title[cut]) {
		cut--
	}
	return title[:cut]
}
