package clierr

// Result is either a value or the Error that prevented producing it.
// Functions return (T, error); Result is for when the outcome has to be
// stored or sent somewhere first.
type Result[T any] struct {
	Value T
	Err   *Error
}

// Ok returns a successful Result.
func Ok[T any](v T) Result[T] { return Result[T]{Value: v} }

// Fail returns a failed Result. A nil err is replaced by an opaque cause.
func Fail[T any](err *Error) Result[T] {
	if err == nil {
		err = FromString("unknown error")
	}
	return Result[T]{Err: err}
}

func (r Result[T]) IsOk() bool { return r.Err == nil }

// Get unpacks the Result into the usual (value, error) pair.
// The error is an untyped nil on success.
func (r Result[T]) Get() (T, error) {
	if r.Err != nil {
		return r.Value, r.Err
	}
	return r.Value, nil
}
