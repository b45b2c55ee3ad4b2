package pixeltoaster

import "sync/atomic"

// HeadlessBackend presents into memory. It is always available and is what
// tests and servers use; events can be injected to drive listeners.
type HeadlessBackend struct {
	format     Format
	started    bool
	config     DisplayConfig
	presented  *Surface
	lastDirty  Rectangle
	frameCount uint64

	pending     []Event
	surfaceLost bool
	openErr     error
}

// NewHeadlessBackend creates a headless backend with the given native
// format. FormatUnknown selects XRGB8888.
func NewHeadlessBackend(format Format) *HeadlessBackend {
	if !format.valid() {
		format = FormatXRGB8888
	}
	return &HeadlessBackend{format: format}
}

func (h *HeadlessBackend) Open(config DisplayConfig) error {
	if h.openErr != nil {
		return h.openErr
	}
	format := h.format
	if config.Format.valid() {
		format = config.Format
	}
	s, err := NewSurface(format, config.Width, config.Height)
	if err != nil {
		return err
	}
	h.config = config
	h.config.Format = format
	h.presented = s
	h.lastDirty = Rectangle{}
	h.started = true
	return nil
}

func (h *HeadlessBackend) Close() error {
	h.started = false
	h.pending = h.pending[:0]
	return nil
}

func (h *HeadlessBackend) NativeFormat() Format {
	if h.started {
		return h.config.Format
	}
	return h.format
}

func (h *HeadlessBackend) Update(frame *Surface, dirty Rectangle) bool {
	if !h.started || h.surfaceLost {
		return false
	}
	for y := dirty.Y; y < dirty.Y+dirty.Height; y++ {
		copy(h.presented.Span(dirty.X, y, dirty.Width), frame.Span(dirty.X, y, dirty.Width))
	}
	h.lastDirty = dirty
	atomic.AddUint64(&h.frameCount, 1)
	return true
}

func (h *HeadlessBackend) PollEvents(dst []Event) []Event {
	dst = append(dst, h.pending...)
	h.pending = h.pending[:0]
	return dst
}

func (h *HeadlessBackend) SetOutput(output Output) error {
	h.config.Output = output
	return nil
}

func (h *HeadlessBackend) SetTitle(title string) {
	h.config.Title = title
}

// IsStarted reports whether the backend is open.
func (h *HeadlessBackend) IsStarted() bool { return h.started }

// DisplayConfig returns the configuration of the last Open, updated by
// output and title changes.
func (h *HeadlessBackend) DisplayConfig() DisplayConfig { return h.config }

// FrameCount is the number of frames presented so far.
func (h *HeadlessBackend) FrameCount() uint64 {
	return atomic.LoadUint64(&h.frameCount)
}

// LastDirty is the region of the most recent Update.
func (h *HeadlessBackend) LastDirty() Rectangle { return h.lastDirty }

// Snapshot returns a copy of what has been presented, or nil before Open.
func (h *HeadlessBackend) Snapshot() *Surface {
	if h.presented == nil {
		return nil
	}
	return h.presented.Clone()
}

// InjectEvent queues an event for the next PollEvents.
func (h *HeadlessBackend) InjectEvent(ev Event) {
	h.pending = append(h.pending, ev)
}

// SetSurfaceLost makes Update fail until cleared, like a lost window surface.
func (h *HeadlessBackend) SetSurfaceLost(lost bool) { h.surfaceLost = lost }

// FailOpen makes the next Opens fail with err; nil clears it.
func (h *HeadlessBackend) FailOpen(err error) { h.openErr = err }

var (
	_ DisplayBackend = (*HeadlessBackend)(nil)
	_ EventSource    = (*HeadlessBackend)(nil)
	_ OutputSwitcher = (*HeadlessBackend)(nil)
	_ TitleSetter    = (*HeadlessBackend)(nil)
)
