package withposition

import "context"

// Iterator provides pull-based sequential access to a stream of values.
type Iterator[T any] interface {
	// Next returns the next value. Returns (zero, false, nil) when exhausted.
	Next(ctx context.Context) (T, bool, error)
	// Close releases any resources held by the iterator.
	Close() error
}

// Stream represents a lazy, pull-based sequence of values.
// No work happens until values are pulled via Collect, ForEach, or Iter.
type Stream[T any] struct {
	open func(ctx context.Context) Iterator[T]
}

// --- Constructors ---

// From creates a stream from an existing Iterator.
func From[T any](src Iterator[T]) *Stream[T] {
	return &Stream[T]{
		open: func(_ context.Context) Iterator[T] {
			return src
		},
	}
}

// FromSlice creates a stream from a slice of values.
func FromSlice[T any](items []T) *Stream[T] {
	return &Stream[T]{
		open: func(_ context.Context) Iterator[T] {
			return &sliceIter[T]{items: items}
		},
	}
}

// FromFunc creates a stream from a factory that produces an Iterator.
func FromFunc[T any](open func(ctx context.Context) Iterator[T]) *Stream[T] {
	return &Stream[T]{open: open}
}

// --- Terminals ---

// Collect pulls the stream to exhaustion and returns all values as a slice.
func Collect[T any](ctx context.Context, s *Stream[T]) ([]T, error) {
	iter := s.open(ctx)
	defer iter.Close()
	var result []T
	for {
		val, ok, err := iter.Next(ctx)
		if err != nil {
			return result, err
		}
		if !ok {
			return result, nil
		}
		result = append(result, val)
	}
}

// ForEach pulls all values and calls fn for each, stopping on the first error.
func ForEach[T any](ctx context.Context, s *Stream[T], fn func(context.Context, T) error) error {
	iter := s.open(ctx)
	defer iter.Close()
	for {
		val, ok, err := iter.Next(ctx)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		if err := fn(ctx, val); err != nil {
			return err
		}
	}
}

// Iter returns the raw Iterator for this stream. The caller must Close() it.
func (s *Stream[T]) Iter(ctx context.Context) Iterator[T] {
	return s.open(ctx)
}

// --- Internal iterators ---

type sliceIter[T any] struct {
	items []T
	index int
}

func (it *sliceIter[T]) Next(_ context.Context) (T, bool, error) {
	if it.index >= len(it.items) {
		var zero T
		return zero, false, nil
	}
	val := it.items[it.index]
	it.index++
	return val, true, nil
}

func (it *sliceIter[T]) Close() error { return nil }
