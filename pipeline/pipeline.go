package pipeline

import "context"

// Iterator provides pull-based sequential access to a stream of values.
type Iterator[T any] interface {
	// Next returns the next value, or (zero, false, nil) once exhausted.
	Next(ctx context.Context) (T, bool, error)
	// Close releases the resources behind the iterator.
	Close() error
}

// Pipeline is a lazy stream. Nothing is opened or read until a terminal
// (Collect, Drain or ForEach) pulls from it.
type Pipeline[T any] struct {
	create func(ctx context.Context) Iterator[T]
}

// Runnable is a pipeline bound to its sink, ready to execute.
type Runnable struct {
	run func(ctx context.Context) error
}

// Run executes until the source is exhausted, a stage fails or ctx ends.
func (r *Runnable) Run(ctx context.Context) error {
	return r.run(ctx)
}

// FromSlice streams the items in order.
func FromSlice[T any](items []T) *Pipeline[T] {
	return &Pipeline[T]{
		create: func(context.Context) Iterator[T] {
			return &sliceIter[T]{items: items}
		},
	}
}

// Drain returns a Runnable that sends every value to sink. The source is
// closed when the run ends, and a close error is reported if nothing else
// failed first.
func Drain[T any](p *Pipeline[T], sink func(context.Context, T) error) *Runnable {
	return &Runnable{
		run: func(ctx context.Context) (err error) {
			it := p.create(ctx)
			defer func() {
				if cerr := it.Close(); err == nil {
					err = cerr
				}
			}()
			for {
				if err := ctx.Err(); err != nil {
					return err
				}
				v, ok, err := it.Next(ctx)
				if err != nil || !ok {
					return err
				}
				if err := sink(ctx, v); err != nil {
					return err
				}
			}
		},
	}
}

// Collect runs the pipeline and returns its values. On error the values
// pulled so far come back with it.
func Collect[T any](ctx context.Context, p *Pipeline[T]) ([]T, error) {
	var out []T
	err := ForEach(ctx, p, func(_ context.Context, v T) error {
		out = append(out, v)
		return nil
	})
	return out, err
}

// ForEach runs the pipeline, calling fn for each value.
func ForEach[T any](ctx context.Context, p *Pipeline[T], fn func(context.Context, T) error) error {
	return Drain(p, fn).Run(ctx)
}

type sliceIter[T any] struct {
	items []T
}

func (it *sliceIter[T]) Next(context.Context) (T, bool, error) {
	if len(it.items) == 0 {
		var zero T
		return zero, false, nil
	}
	v := it.items[0]
	it.items = it.items[1:]
	return v, true, nil
}

func (it *sliceIter[T]) Close() error { return nil }
