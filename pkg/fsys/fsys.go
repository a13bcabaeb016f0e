package fsys

import (
	"errors"
	"io/fs"
	"os"
	"strings"
)

// Kind classifies a filesystem operation failure.
type Kind string

const (
	NotFound         Kind = "not_found"
	NotADirectory    Kind = "not_a_directory"
	PermissionDenied Kind = "permission_denied"
)

// Error is a failed filesystem operation on a single path.
type Error struct {
	Op   string
	Path string
	Kind Kind
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	return e.Op + " " + e.Path + ": " + strings.ReplaceAll(string(e.Kind), "_", " ")
}

// Is lets errors.Is match the io/fs sentinels that correspond to a Kind.
func (e *Error) Is(target error) bool {
	if e == nil {
		return false
	}
	switch target {
	case fs.ErrNotExist:
		return e.Kind == NotFound
	case fs.ErrPermission:
		return e.Kind == PermissionDenied
	}
	return false
}

// CheckDir verifies that path names an accessible directory.
// Missing, forbidden and non-directory paths yield an *Error; any other
// stat failure is returned as is.
func CheckDir(op, path string) error {
	info, err := os.Stat(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return &Error{Op: op, Path: path, Kind: NotFound}
	case errors.Is(err, fs.ErrPermission):
		return &Error{Op: op, Path: path, Kind: PermissionDenied}
	case err != nil:
		return err
	case !info.IsDir():
		return &Error{Op: op, Path: path, Kind: NotADirectory}
	}
	return nil
}
