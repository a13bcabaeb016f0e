package clierr

import (
	"errors"
	"fmt"

	"github.com/habedi/gols/pkg/fsys"
)

// Kind names the variant an Error holds.
type Kind string

const (
	Fs     Kind = "Fs"     // filesystem operation failure (*fsys.Error)
	Io     Kind = "Io"     // low-level I/O failure
	Custom Kind = "Custom" // plain message
)

// Error is the one error type returned by gols operations.
// It holds exactly one cause, selected by its kind, and is never modified
// after construction.
type Error struct {
	kind Kind
	fs   *fsys.Error
	io   error
	msg  string
}

var (
	_ error          = (*Error)(nil)
	_ fmt.GoStringer = (*Error)(nil)
)

// FromFs wraps a filesystem failure. A nil cause yields nil.
func FromFs(cause *fsys.Error) *Error {
	if cause == nil {
		return nil
	}
	return &Error{kind: Fs, fs: cause}
}

// FromIo wraps an I/O failure. Errors that already have a variant keep it:
//   - nil => nil
//   - an *Error in the chain => that same pointer
//   - an *fsys.Error in the chain => Fs
//   - anything else => Io
func FromIo(cause error) *Error {
	if cause == nil {
		return nil
	}

	var e *Error
	if errors.As(cause, &e) {
		return e
	}

	var fe *fsys.Error
	if errors.As(cause, &fe) {
		return FromFs(fe)
	}

	return &Error{kind: Io, io: cause}
}

// FromString wraps a message.
func FromString(msg string) *Error { return &Error{kind: Custom, msg: msg} }

// Customf formats a message and wraps it.
func Customf(format string, args ...any) *Error {
	return FromString(fmt.Sprintf(format, args...))
}

// From classifies an arbitrary error the same way FromIo does.
func From(err error) *Error { return FromIo(err) }

// Kind reports the variant; a nil receiver reports "".
func (e *Error) Kind() Kind {
	if e == nil {
		return ""
	}
	return e.kind
}

func (e *Error) Fs() (*fsys.Error, bool) {
	if e == nil || e.kind != Fs {
		return nil, false
	}
	return e.fs, true
}

func (e *Error) Io() (error, bool) {
	if e == nil || e.kind != Io {
		return nil, false
	}
	return e.io, true
}

func (e *Error) Custom() (string, bool) {
	if e == nil || e.kind != Custom {
		return "", false
	}
	return e.msg, true
}

// Error renders the structural dump of the error, Kind(<cause %#v>).
// It is the same text GoString returns.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}

	switch e.kind {
	case Fs:
		return fmt.Sprintf("%s(%#v)", e.kind, e.fs)
	case Io:
		return fmt.Sprintf("%s(%#v)", e.kind, e.io)
	default:
		return fmt.Sprintf("%s(%#v)", e.kind, e.msg)
	}
}

func (e *Error) GoString() string { return e.Error() }

// Exit codes for a failed command.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitFs      = 2
	ExitIo      = 3
)

// ExitCode maps an error returned by a command to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}

	var e *Error
	if !errors.As(err, &e) {
		return ExitFailure
	}

	switch e.Kind() {
	case Fs:
		return ExitFs
	case Io:
		return ExitIo
	default:
		return ExitFailure
	}
}
