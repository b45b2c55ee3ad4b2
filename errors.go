// errors.go - Error kinds and codes for PixelToaster

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
	"errors"
	"fmt"

	goerrors "github.com/go-errors/errors"
)

// ErrorKind separates "fix your call" errors (NullPointer, InvalidParameter)
// from "retry or fall back" errors (Resource, Platform).
type ErrorKind int

const (
	KindNullPointer ErrorKind = iota + 1
	KindInvalidParameter
	KindResource
	KindPlatform
)

func (k ErrorKind) String() string {
	switch k {
	case KindNullPointer:
		return "null pointer"
	case KindInvalidParameter:
		return "invalid parameter"
	case KindResource:
		return "resource"
	case KindPlatform:
		return "platform"
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Error codes. 1xxx are factory failures, 2xxx converter requests, 3xxx
// argument validation and 4xxx backend failures.
const (
	CodeDisplayCreate      = 1001
	CodeDisplayUnsupported = 1002
	CodeTimerCreate        = 1003
	CodeTimerUnsupported   = 1004

	CodeUnknownFormat                   = 2001
	CodeUnsupportedFloatDestination     = 2002
	CodeUnsupportedTrueColorDestination = 2003
	CodeUnsupportedSource               = 2004

	CodeInvalidWidth    = 3001
	CodeInvalidHeight   = 3002
	CodeNilPixels       = 3004
	CodeInvalidDirtyBox = 3005
	CodeShortFrame      = 3006
	CodeNilBackend      = 3007

	CodeSurfaceCreate = 4001
	CodeOutputSwitch  = 4002
	CodeBackendClose  = 4003
)

// Error is the single error type returned by the package.
type Error struct {
	Kind    ErrorKind
	Code    int
	Op      string // What operation was being attempted
	Message string
	Err     error // Underlying error if any
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("pixeltoaster %s: %s (code %d): %v", e.Op, e.Message, e.Code, e.Err)
	}
	return fmt.Sprintf("pixeltoaster %s: %s (code %d)", e.Op, e.Message, e.Code)
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports a match against the kind sentinels below, so callers can write
// errors.Is(err, ErrInvalidParameter) without caring about the code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Code == 0 {
		return e.Kind == t.Kind
	}
	return e.Kind == t.Kind && e.Code == t.Code
}

// Kind sentinels for errors.Is.
var (
	ErrNullPointer      = &Error{Kind: KindNullPointer, Message: "null pointer"}
	ErrInvalidParameter = &Error{Kind: KindInvalidParameter, Message: "invalid parameter"}
	ErrResource         = &Error{Kind: KindResource, Message: "resource failure"}
	ErrPlatform         = &Error{Kind: KindPlatform, Message: "unsupported platform"}
)

// KindOf returns the kind of a package error, or 0 for foreign errors.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

// CodeOf returns the numeric code of a package error, or 0 for foreign errors.
func CodeOf(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return 0
}

func nullPointerError(op string, code int, format string, args ...any) *Error {
	return &Error{Kind: KindNullPointer, Code: code, Op: op, Message: fmt.Sprintf(format, args...)}
}

func invalidParameterError(op string, code int, format string, args ...any) *Error {
	return &Error{Kind: KindInvalidParameter, Code: code, Op: op, Message: fmt.Sprintf(format, args...)}
}

func platformError(op string, code int, format string, args ...any) *Error {
	return &Error{Kind: KindPlatform, Code: code, Op: op, Message: fmt.Sprintf(format, args...)}
}

// resourceError converts a lower-level failure into a Resource error. The
// cause keeps the stack of the place it was wrapped.
func resourceError(op string, code int, cause error, format string, args ...any) *Error {
	e := &Error{Kind: KindResource, Code: code, Op: op, Message: fmt.Sprintf(format, args...)}
	if cause != nil {
		var pe *Error
		if errors.As(cause, &pe) {
			e.Err = cause
		} else {
			e.Err = goerrors.Wrap(cause, 2)
		}
	}
	return e
}
