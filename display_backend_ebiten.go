//go:build !headless

// display_backend_ebiten.go - Desktop window backend built on Ebiten

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
	"bytes"
	"fmt"
	"image/color"
	"image/png"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.design/x/clipboard"
	"golang.org/x/image/font/basicfont"
)

// Ebiten allows a single game loop per process.
var ebitenLoopStarted atomic.Bool

func init() {
	registerFeature("backend:ebiten")
}

const (
	keyRepeatDelay    = 30 // ticks before a held key repeats
	keyRepeatInterval = 4
)

// EbitenBackend shows frames in a desktop window. The game loop runs on its
// own goroutine; frames and events cross over under bufferMutex.
type EbitenBackend struct {
	logger *slog.Logger

	running     atomic.Bool
	bufferMutex sync.RWMutex
	config      DisplayConfig
	front       *Surface
	rgba        []byte
	frameDirty  bool
	window      *ebiten.Image
	frameCount  uint64
	vsyncChan   chan struct{}
	done        chan struct{}
	loopErr     error

	events     []Event
	pressed    []ebiten.Key
	mouse      Mouse
	focused    bool
	showStatus bool

	clipboardOnce sync.Once
	clipboardOK   bool
}

// NewEbitenBackend creates the window backend. A nil logger discards.
func NewEbitenBackend(logger *slog.Logger) (DisplayBackend, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &EbitenBackend{
		logger:     logger,
		vsyncChan:  make(chan struct{}, 1),
		showStatus: true,
	}, nil
}

func (eb *EbitenBackend) Open(config DisplayConfig) error {
	if eb.running.Load() {
		return fmt.Errorf("ebiten window already open")
	}
	if !config.Format.valid() {
		config.Format = FormatXBGR8888
	}
	if config.Scale < 1 {
		config.Scale = 1
	}
	front, err := NewSurface(config.Format, config.Width, config.Height)
	if err != nil {
		return err
	}
	if !ebitenLoopStarted.CompareAndSwap(false, true) {
		return fmt.Errorf("ebiten game loop cannot be restarted in this process")
	}

	eb.bufferMutex.Lock()
	eb.config = config
	eb.front = front
	eb.rgba = make([]byte, config.Width*config.Height*4)
	eb.frameDirty = true
	eb.done = make(chan struct{})
	eb.loopErr = nil
	eb.bufferMutex.Unlock()

	ebiten.SetWindowTitle(config.Title)
	ebiten.SetWindowSize(config.Width*config.Scale, config.Height*config.Scale)
	ebiten.SetWindowResizable(true)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetRunnableOnUnfocused(true)
	ebiten.SetVsyncEnabled(true)
	ebiten.SetFullscreen(config.Output == OutputFullscreen)

	eb.running.Store(true)
	done := eb.done
	go func() {
		defer close(done)
		if err := ebiten.RunGame(ebitenGame{eb}); err != nil {
			eb.logger.Warn("ebiten game loop exited", "err", err)
			eb.bufferMutex.Lock()
			eb.loopErr = err
			eb.bufferMutex.Unlock()
		}
		eb.running.Store(false)
	}()

	// Wait for the first draw so the window exists before Open returns.
	select {
	case <-eb.vsyncChan:
		return nil
	case <-done:
		eb.bufferMutex.RLock()
		err := eb.loopErr
		eb.bufferMutex.RUnlock()
		if err == nil {
			err = fmt.Errorf("ebiten game loop exited before the first frame")
		}
		return err
	}
}

func (eb *EbitenBackend) Close() error {
	if !eb.running.Swap(false) {
		return nil
	}
	eb.bufferMutex.RLock()
	done := eb.done
	eb.bufferMutex.RUnlock()
	select {
	case <-done:
	case <-time.After(time.Second):
		eb.logger.Warn("ebiten game loop did not stop within 1s")
	}
	return nil
}

func (eb *EbitenBackend) NativeFormat() Format {
	eb.bufferMutex.RLock()
	defer eb.bufferMutex.RUnlock()
	if !eb.config.Format.valid() {
		return FormatXBGR8888
	}
	return eb.config.Format
}

func (eb *EbitenBackend) Update(frame *Surface, dirty Rectangle) bool {
	if !eb.running.Load() {
		return false
	}
	eb.bufferMutex.Lock()
	for y := dirty.Y; y < dirty.Y+dirty.Height; y++ {
		copy(eb.front.Span(dirty.X, y, dirty.Width), frame.Span(dirty.X, y, dirty.Width))
	}
	eb.frameDirty = true
	eb.bufferMutex.Unlock()
	return true
}

func (eb *EbitenBackend) PollEvents(dst []Event) []Event {
	eb.bufferMutex.Lock()
	dst = append(dst, eb.events...)
	eb.events = eb.events[:0]
	eb.bufferMutex.Unlock()
	return dst
}

func (eb *EbitenBackend) SetOutput(output Output) error {
	eb.bufferMutex.Lock()
	eb.config.Output = output
	w, h := eb.config.Width*eb.config.Scale, eb.config.Height*eb.config.Scale
	eb.bufferMutex.Unlock()

	ebiten.SetFullscreen(output == OutputFullscreen)
	if output != OutputFullscreen {
		ebiten.SetWindowSize(w, h)
	}
	return nil
}

func (eb *EbitenBackend) SetTitle(title string) {
	eb.bufferMutex.Lock()
	eb.config.Title = title
	eb.bufferMutex.Unlock()
	ebiten.SetWindowTitle(title)
}

// FrameCount is the number of frames drawn by the game loop.
func (eb *EbitenBackend) FrameCount() uint64 {
	return atomic.LoadUint64(&eb.frameCount)
}

func (eb *EbitenBackend) queue(ev Event) {
	eb.bufferMutex.Lock()
	eb.events = append(eb.events, ev)
	eb.bufferMutex.Unlock()
}

// ebitenGame is the ebiten.Game side of the backend. It is a separate type
// because ebiten.Game and DisplayBackend both want an Update method.
type ebitenGame struct {
	eb *EbitenBackend
}

func (g ebitenGame) Update() error              { return g.eb.tick() }
func (g ebitenGame) Draw(screen *ebiten.Image)  { g.eb.draw(screen) }
func (g ebitenGame) Layout(w, h int) (int, int) { return g.eb.layout(w, h) }

// tick only gathers input; presentation happens in draw.
func (eb *EbitenBackend) tick() error {
	if ebiten.IsWindowBeingClosed() {
		eb.queue(Event{Type: EventClose})
	}
	if !eb.running.Load() {
		return ebiten.Termination
	}

	if focused := ebiten.IsFocused(); focused != eb.focused {
		eb.focused = focused
		eb.queue(Event{Type: EventActivate, Active: focused})
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		eb.bufferMutex.Lock()
		eb.showStatus = !eb.showStatus
		eb.bufferMutex.Unlock()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		eb.copyFrameToClipboard()
	}

	eb.pressed = inpututil.AppendJustPressedKeys(eb.pressed[:0])
	for _, k := range eb.pressed {
		if key, ok := translateKey(k); ok {
			eb.queue(Event{Type: EventKeyDown, Key: key})
		}
	}
	eb.pressed = ebiten.AppendPressedKeys(eb.pressed[:0])
	for _, k := range eb.pressed {
		if d := inpututil.KeyPressDuration(k); d > keyRepeatDelay && (d-keyRepeatDelay)%keyRepeatInterval == 0 {
			if key, ok := translateKey(k); ok {
				eb.queue(Event{Type: EventKeyDown, Key: key, Repeat: true})
			}
		}
	}
	eb.pressed = inpututil.AppendJustReleasedKeys(eb.pressed[:0])
	for _, k := range eb.pressed {
		if key, ok := translateKey(k); ok {
			eb.queue(Event{Type: EventKeyUp, Key: key})
		}
	}

	eb.pollMouse()
	return nil
}

func (eb *EbitenBackend) pollMouse() {
	x, y := ebiten.CursorPosition()
	m := Mouse{
		Buttons: MouseButtons{
			Left:   ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
			Middle: ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle),
			Right:  ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight),
		},
		X: float32(x),
		Y: float32(y),
	}
	if m.X != eb.mouse.X || m.Y != eb.mouse.Y {
		eb.queue(Event{Type: EventMouseMove, Mouse: m})
	}
	for _, b := range []ebiten.MouseButton{ebiten.MouseButtonLeft, ebiten.MouseButtonMiddle, ebiten.MouseButtonRight} {
		if inpututil.IsMouseButtonJustPressed(b) {
			eb.queue(Event{Type: EventMouseButtonDown, Mouse: m})
		}
		if inpututil.IsMouseButtonJustReleased(b) {
			eb.queue(Event{Type: EventMouseButtonUp, Mouse: m})
		}
	}
	eb.mouse = m
}

func (eb *EbitenBackend) draw(screen *ebiten.Image) {
	eb.bufferMutex.Lock()
	w, h := eb.config.Width, eb.config.Height
	if eb.window == nil || eb.window.Bounds().Dx() != w || eb.window.Bounds().Dy() != h {
		if eb.window != nil {
			eb.window.Deallocate()
		}
		eb.window = ebiten.NewImage(w, h)
		eb.frameDirty = true
	}
	if eb.frameDirty {
		eb.front.CopyOpaqueRGBA(eb.rgba)
		eb.window.WritePixels(eb.rgba)
		eb.frameDirty = false
	}
	showStatus := eb.showStatus
	title, format := eb.config.Title, eb.config.Format
	eb.bufferMutex.Unlock()

	screen.DrawImage(eb.window, nil)
	if showStatus {
		drawStatusBar(screen, w, h, title, format)
	}

	atomic.AddUint64(&eb.frameCount, 1)
	select {
	case eb.vsyncChan <- struct{}{}:
	default:
	}
}

func (eb *EbitenBackend) layout(_, _ int) (int, int) {
	eb.bufferMutex.RLock()
	defer eb.bufferMutex.RUnlock()
	return eb.config.Width, eb.config.Height
}

func drawStatusBar(screen *ebiten.Image, width, height int, title string, format Format) {
	const barHeight = 17
	if barHeight*2 >= height {
		return
	}
	y := height - barHeight
	ebitenutil.DrawRect(screen, 0, float64(y), float64(width), barHeight, color.RGBA{0, 0, 0, 180})
	line := fmt.Sprintf("%s  %s  %.1f FPS", title, format, ebiten.ActualFPS())
	text.Draw(screen, line, basicfont.Face7x13, 4, y+13, color.RGBA{190, 190, 190, 255})

	legend := "F9 Copy  F11 Fullscreen  F12 Status"
	legendX := max(width-text.BoundString(basicfont.Face7x13, legend).Dx()-4, 4)
	text.Draw(screen, legend, basicfont.Face7x13, legendX, y+13, color.RGBA{120, 120, 120, 255})
}

func (eb *EbitenBackend) copyFrameToClipboard() {
	eb.clipboardOnce.Do(func() {
		if err := clipboard.Init(); err != nil {
			eb.logger.Warn("clipboard unavailable", "err", err)
			return
		}
		eb.clipboardOK = true
	})
	if !eb.clipboardOK {
		return
	}
	eb.bufferMutex.RLock()
	img := eb.front.RGBA()
	eb.bufferMutex.RUnlock()

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		eb.logger.Warn("frame encode failed", "err", err)
		return
	}
	clipboard.Write(clipboard.FmtImage, buf.Bytes())
}

var ebitenKeys = map[ebiten.Key]Key{
	ebiten.KeyEnter:        KeyEnter,
	ebiten.KeyNumpadEnter:  KeyEnter,
	ebiten.KeyBackspace:    KeyBackspace,
	ebiten.KeyTab:          KeyTab,
	ebiten.KeyEscape:       KeyEscape,
	ebiten.KeySpace:        KeySpace,
	ebiten.KeyShiftLeft:    KeyShift,
	ebiten.KeyShiftRight:   KeyShift,
	ebiten.KeyControlLeft:  KeyControl,
	ebiten.KeyControlRight: KeyControl,
	ebiten.KeyAltLeft:      KeyAlt,
	ebiten.KeyAltRight:     KeyAlt,
	ebiten.KeyArrowLeft:    KeyLeft,
	ebiten.KeyArrowUp:      KeyUp,
	ebiten.KeyArrowRight:   KeyRight,
	ebiten.KeyArrowDown:    KeyDown,
	ebiten.KeyHome:         KeyHome,
	ebiten.KeyEnd:          KeyEnd,
	ebiten.KeyPageUp:       KeyPageUp,
	ebiten.KeyPageDown:     KeyPageDown,
	ebiten.KeyInsert:       KeyInsert,
	ebiten.KeyDelete:       KeyDelete,
	ebiten.KeyDigit0:       Key0,
	ebiten.KeyDigit1:       Key1,
	ebiten.KeyDigit2:       Key2,
	ebiten.KeyDigit3:       Key3,
	ebiten.KeyDigit4:       Key4,
	ebiten.KeyDigit5:       Key5,
	ebiten.KeyDigit6:       Key6,
	ebiten.KeyDigit7:       Key7,
	ebiten.KeyDigit8:       Key8,
	ebiten.KeyDigit9:       Key9,
	ebiten.KeyA:            KeyA,
	ebiten.KeyB:            KeyB,
	ebiten.KeyC:            KeyC,
	ebiten.KeyD:            KeyD,
	ebiten.KeyE:            KeyE,
	ebiten.KeyF:            KeyF,
	ebiten.KeyG:            KeyG,
	ebiten.KeyH:            KeyH,
	ebiten.KeyI:            KeyI,
	ebiten.KeyJ:            KeyJ,
	ebiten.KeyK:            KeyK,
	ebiten.KeyL:            KeyL,
	ebiten.KeyM:            KeyM,
	ebiten.KeyN:            KeyN,
	ebiten.KeyO:            KeyO,
	ebiten.KeyP:            KeyP,
	ebiten.KeyQ:            KeyQ,
	ebiten.KeyR:            KeyR,
	ebiten.KeyS:            KeyS,
	ebiten.KeyT:            KeyT,
	ebiten.KeyU:            KeyU,
	ebiten.KeyV:            KeyV,
	ebiten.KeyW:            KeyW,
	ebiten.KeyX:            KeyX,
	ebiten.KeyY:            KeyY,
	ebiten.KeyZ:            KeyZ,
	ebiten.KeyF1:           KeyF1,
	ebiten.KeyF2:           KeyF2,
	ebiten.KeyF3:           KeyF3,
	ebiten.KeyF4:           KeyF4,
	ebiten.KeyF5:           KeyF5,
	ebiten.KeyF6:           KeyF6,
	ebiten.KeyF7:           KeyF7,
	ebiten.KeyF8:           KeyF8,
	ebiten.KeyF9:           KeyF9,
	ebiten.KeyF10:          KeyF10,
	ebiten.KeyF11:          KeyF11,
	ebiten.KeyF12:          KeyF12,
}

func translateKey(k ebiten.Key) (Key, bool) {
	key, ok := ebitenKeys[k]
	return key, ok
}

var (
	_ DisplayBackend = (*EbitenBackend)(nil)
	_ EventSource    = (*EbitenBackend)(nil)
	_ OutputSwitcher = (*EbitenBackend)(nil)
	_ TitleSetter    = (*EbitenBackend)(nil)
	_ ebiten.Game    = ebitenGame{}
)
