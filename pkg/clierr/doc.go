// Package clierr defines the single error type returned by gols.
//
// An Error is a closed sum type: it holds exactly one of
//   - Fs: an *fsys.Error describing a failed filesystem operation
//   - Io: any other I/O error (path errors, timeouts, short reads)
//   - Custom: a plain message
//
// Each cause type has its own constructor (FromFs, FromIo, FromString).
// FromIo and From accept any error but never demote one: an *fsys.Error
// still becomes Fs and an existing *Error is returned as is. The wrapped
// cause is returned unchanged by the accessor of its variant.
//
// Error and GoString both render the structural dump, for example
//
//	Fs(&fsys.Error{Op:"list", Path:"/srv", Kind:"not_found"})
//	Custom("No files found")
//
// Error has no Unwrap method, so errors.Unwrap returns nil for it. Inspect
// the cause through Fs, Io or Custom instead.
package clierr
