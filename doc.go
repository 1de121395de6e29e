// Package withposition annotates each value of a pull-based sequence with
// its structural position: First, Middle, Last, or Only.
//
// Annotation is lazy — no value is pulled from the source until the caller
// pulls from the annotated stream, and deciding each label needs only a
// single value of lookahead. The whole sequence is never buffered.
//
// # Positions
//
//   - First: opening value of a multi-value sequence
//   - Middle: value with neighbors on both sides
//   - Last: closing value of a multi-value sequence
//   - Only: sole value of a single-value sequence
//
// IsFirst is true for First and Only; IsLast for Last and Only. An empty
// source yields nothing at all.
//
// # Usage
//
//	src := withposition.FromSlice([]string{"a", "b", "c"})
//	err := withposition.ForEach(ctx, withposition.Annotate(src),
//	    func(_ context.Context, item withposition.Annotated[string]) error {
//	        if !item.Position.IsFirst() {
//	            fmt.Print(", ")
//	        }
//	        fmt.Print(item.Value)
//	        return nil
//	    })
//
// Any pull-based source plugs in through the Iterator interface and From;
// FromSlice and FromFunc cover the common cases.
//
// # Limitations
//
// Labels are decided by reading one value past the current one, so the
// source must be finite for Last/Only to ever appear: wrapping an unbounded
// source is legal but yields First followed by Middle forever. Errors from
// the source pass through unmodified; exhaustion is not an error. A stream
// iterator must not be shared across goroutines without external
// synchronization.
package withposition
