package idcode

// Result is the outcome of decoding one field: either Value is set and Err is
// nil, or Err explains why the field is absent.
type Result[T any] struct {
	Value T
	Err   error
}

// OK reports whether the field was decoded.
func (r Result[T]) OK() bool { return r.Err == nil }

func resultOf[T any](v T, err error) Result[T] {
	if err != nil {
		return Result[T]{Err: err}
	}

	return Result[T]{Value: v}
}
