// display_listener.go - Listener callbacks and input events

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

// Listener receives input and window notifications. Callbacks run
// synchronously on the goroutine that called Display.Update*, with the
// display's wrapper (or the display itself) as receiver.
//
// A listener must not call Open, Close or Update on the display it is being
// notified about; SetTitle and the accessors are fine.
type Listener interface {
	// DefaultKeyHandlers enables Escape-to-close and F11 output toggling.
	DefaultKeyHandlers() bool

	OnKeyDown(display DisplayInterface, key Key)
	OnKeyPressed(display DisplayInterface, key Key)
	OnKeyUp(display DisplayInterface, key Key)

	OnMouseButtonDown(display DisplayInterface, mouse Mouse)
	OnMouseButtonUp(display DisplayInterface, mouse Mouse)
	OnMouseMove(display DisplayInterface, mouse Mouse)

	OnActivate(display DisplayInterface, active bool)
	OnOpen(display DisplayInterface)
	// OnClose is asked before a platform close request is honoured.
	OnClose(display DisplayInterface) bool
}

// BaseListener implements Listener with the default behaviour. Embed it and
// override what you need.
type BaseListener struct{}

func (BaseListener) DefaultKeyHandlers() bool                  { return true }
func (BaseListener) OnKeyDown(DisplayInterface, Key)           {}
func (BaseListener) OnKeyPressed(DisplayInterface, Key)        {}
func (BaseListener) OnKeyUp(DisplayInterface, Key)             {}
func (BaseListener) OnMouseButtonDown(DisplayInterface, Mouse) {}
func (BaseListener) OnMouseButtonUp(DisplayInterface, Mouse)   {}
func (BaseListener) OnMouseMove(DisplayInterface, Mouse)       {}
func (BaseListener) OnActivate(DisplayInterface, bool)         {}
func (BaseListener) OnOpen(DisplayInterface)                   {}
func (BaseListener) OnClose(DisplayInterface) bool             { return true }

// Key identifies a keyboard key.
type Key int

const (
	KeyUndefined Key = iota
	KeyEnter
	KeyBackspace
	KeyTab
	KeyEscape
	KeySpace
	KeyShift
	KeyControl
	KeyAlt
	KeyLeft
	KeyUp
	KeyRight
	KeyDown
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyInsert
	KeyDelete
	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
)

// MouseButtons is the state of the three mouse buttons.
type MouseButtons struct {
	Left, Middle, Right bool
}

// Mouse is a pointer position in display pixel coordinates plus button state.
type Mouse struct {
	Buttons MouseButtons
	X, Y    float32
}

// EventType tells which fields of an Event are meaningful.
type EventType int

const (
	EventKeyDown EventType = iota + 1
	EventKeyUp
	EventMouseButtonDown
	EventMouseButtonUp
	EventMouseMove
	EventActivate
	EventClose
)

// Event is a queued platform notification.
type Event struct {
	Type   EventType
	Key    Key
	Repeat bool // EventKeyDown: key was already held
	Mouse  Mouse
	Active bool // EventActivate
}

// dispatch delivers one event. It returns false when the event closed the display.
func (d *Display) dispatch(ev Event) bool {
	recv := d.receiver()
	l := d.listener
	defaults := l == nil || l.DefaultKeyHandlers()

	switch ev.Type {
	case EventKeyDown:
		if l != nil {
			l.OnKeyDown(recv, ev.Key)
			if !ev.Repeat {
				l.OnKeyPressed(recv, ev.Key)
			}
		}
		if defaults && !ev.Repeat {
			switch ev.Key {
			case KeyEscape:
				_ = d.Close()
				return false
			case KeyF11:
				if d.output == OutputFullscreen {
					_ = d.Windowed()
				} else {
					_ = d.Fullscreen()
				}
			}
		}
	case EventKeyUp:
		if l != nil {
			l.OnKeyUp(recv, ev.Key)
		}
	case EventMouseButtonDown:
		if l != nil {
			l.OnMouseButtonDown(recv, ev.Mouse)
		}
	case EventMouseButtonUp:
		if l != nil {
			l.OnMouseButtonUp(recv, ev.Mouse)
		}
	case EventMouseMove:
		if l != nil {
			l.OnMouseMove(recv, ev.Mouse)
		}
	case EventActivate:
		if l != nil {
			l.OnActivate(recv, ev.Active)
		}
	case EventClose:
		if l == nil || l.OnClose(recv) {
			_ = d.Close()
			return false
		}
	}
	return true
}
