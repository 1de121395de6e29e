package withposition

import "context"

// Position indicates the structural role of a value within its sequence.
type Position int

const (
	// First is the opening value of a sequence with more than one value.
	First Position = iota
	// Middle is any value with at least one value before and after it.
	Middle
	// Last is the closing value of a sequence with more than one value.
	Last
	// Only is the sole value of a single-value sequence.
	Only
)

// IsFirst reports whether the value opens its sequence (First or Only).
func (p Position) IsFirst() bool {
	return p == First || p == Only
}

// IsLast reports whether the value closes its sequence (Last or Only).
func (p Position) IsLast() bool {
	return p == Last || p == Only
}

// IsOnly reports whether the value is the sole value of its sequence.
func (p Position) IsOnly() bool {
	return p == Only
}

// String returns the position name.
func (p Position) String() string {
	switch p {
	case First:
		return "first"
	case Middle:
		return "middle"
	case Last:
		return "last"
	case Only:
		return "only"
	default:
		return "unknown"
	}
}

// Annotated pairs a value with its Position in the sequence.
type Annotated[T any] struct {
	Position Position
	Value    T
}

// Annotate wraps a stream so each value is paired with its Position.
// Annotation is lazy and single-pass, using one value of lookahead to decide
// each label before yielding. An empty stream stays empty; a single-value
// stream yields one pair labeled Only.
func Annotate[T any](s *Stream[T]) *Stream[Annotated[T]] {
	return &Stream[Annotated[T]]{
		open: func(ctx context.Context) Iterator[Annotated[T]] {
			return &positionIter[T]{source: newPeekIter(s.open(ctx))}
		},
	}
}

type positionIter[T any] struct {
	source  *peekIter[T]
	started bool
	done    bool
}

func (it *positionIter[T]) Next(ctx context.Context) (Annotated[T], bool, error) {
	var zero Annotated[T]
	if it.done {
		return zero, false, nil
	}

	subsequent := it.started
	it.started = true

	val, ok, err := it.source.Next(ctx)
	if err != nil {
		return zero, false, err
	}
	if !ok {
		it.done = true
		return zero, false, nil
	}

	more, err := it.source.Peek(ctx)
	if err != nil {
		return zero, false, err
	}

	var pos Position
	switch {
	case !subsequent && more:
		pos = First
	case !subsequent:
		pos = Only
	case more:
		pos = Middle
	default:
		pos = Last
	}
	return Annotated[T]{Position: pos, Value: val}, true, nil
}

func (it *positionIter[T]) Close() error { return it.source.Close() }
