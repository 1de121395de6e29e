package withposition

import "context"

// peekIter wraps an Iterator with single-value lookahead. Peek buffers at
// most one value pulled from the source; the following Next drains the
// buffer before touching the source again, so each source value is pulled
// exactly once. Exhaustion latches: once the source reports no more values,
// the source is never pulled again.
type peekIter[T any] struct {
	source Iterator[T]
	buf    T
	ready  bool
	done   bool
}

func newPeekIter[T any](source Iterator[T]) *peekIter[T] {
	return &peekIter[T]{source: source}
}

// Next returns the buffered value if one is pending, otherwise pulls the source.
func (it *peekIter[T]) Next(ctx context.Context) (T, bool, error) {
	if it.ready {
		val := it.buf
		var zero T
		it.buf = zero
		it.ready = false
		return val, true, nil
	}
	var zero T
	if it.done {
		return zero, false, nil
	}
	val, ok, err := it.source.Next(ctx)
	if err != nil {
		return zero, false, err
	}
	if !ok {
		it.done = true
		return zero, false, nil
	}
	return val, true, nil
}

// Peek reports whether another value is available without consuming it.
// Idempotent: repeated calls without an intervening Next pull the source at
// most once. A source error surfaces unmodified and buffers nothing.
func (it *peekIter[T]) Peek(ctx context.Context) (bool, error) {
	if it.ready {
		return true, nil
	}
	if it.done {
		return false, nil
	}
	val, ok, err := it.source.Next(ctx)
	if err != nil {
		return false, err
	}
	if !ok {
		it.done = true
		return false, nil
	}
	it.buf = val
	it.ready = true
	return true, nil
}

func (it *peekIter[T]) Close() error { return it.source.Close() }
