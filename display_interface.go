// display_interface.go - Display and backend interfaces for PixelToaster

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

// DisplayConfig contains the hardware-independent configuration handed to a
// backend when the display opens.
type DisplayConfig struct {
	Title  string `toml:"title"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Output Output `toml:"output"`
	Mode   Mode   `toml:"mode"`
	Scale  int    `toml:"scale"`  // Integer scaling factor for windowed output
	Format Format `toml:"format"` // Native format request, FormatUnknown lets the backend choose
}

// DisplayBackend is the platform collaborator behind a Display. The Display
// does all validation and conversion; a backend only acquires a surface and
// shows already converted native pixels.
type DisplayBackend interface {
	// Open acquires the platform surface described by config.
	Open(config DisplayConfig) error
	// Close releases it. It must be safe to call on a closed backend.
	Close() error
	// NativeFormat is the layout Update expects. Only called while open.
	NativeFormat() Format
	// Update presents the dirty region of frame. It returns false when the
	// frame could not be shown, e.g. because the surface was lost.
	Update(frame *Surface, dirty Rectangle) bool
}

// Optional backend capabilities.

// EventSource is implemented by backends that pump platform input. Events
// are drained and dispatched to the listener from inside Display updates.
type EventSource interface {
	// PollEvents appends all pending events to dst and returns it.
	PollEvents(dst []Event) []Event
}

// OutputSwitcher is implemented by backends that can change between
// windowed and fullscreen output while open.
type OutputSwitcher interface {
	SetOutput(output Output) error
}

// TitleSetter is implemented by backends with a visible title.
type TitleSetter interface {
	SetTitle(title string)
}

// DisplayInterface is the caller-visible display surface. Display implements
// it; wrappers that embed a Display can implement it too so listener
// callbacks see the wrapper rather than the inner adapter.
type DisplayInterface interface {
	Open(title string, width, height int, output Output, mode Mode) error
	Close() error
	IsOpen() bool

	UpdateTrueColor(pixels []TrueColorPixel, dirty *Rectangle) (bool, error)
	UpdateFloatingPoint(pixels []FloatingPointPixel, dirty *Rectangle) (bool, error)

	Title() string
	SetTitle(title string)
	Width() int
	Height() int
	Mode() Mode
	Output() Output

	Listener() Listener
	SetListener(listener Listener)
	Wrapper() DisplayInterface
	SetWrapper(display DisplayInterface)
}
