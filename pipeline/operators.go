package pipeline

import "context"

// derive builds a stage whose iterator wraps the one p creates.
func derive[I, O any](p *Pipeline[I], wrap func(Iterator[I]) Iterator[O]) *Pipeline[O] {
	return &Pipeline[O]{
		create: func(ctx context.Context) Iterator[O] {
			return wrap(p.create(ctx))
		},
	}
}

// Map transforms each value with fn. An error from fn ends the stream.
func Map[I, O any](p *Pipeline[I], fn func(context.Context, I) (O, error)) *Pipeline[O] {
	return derive(p, func(src Iterator[I]) Iterator[O] {
		return &mapIter[I, O]{stage: stage[I]{src}, fn: fn}
	})
}

// Tap calls fn for each value and passes the value on unchanged.
func Tap[T any](p *Pipeline[T], fn func(context.Context, T) error) *Pipeline[T] {
	return Map(p, func(ctx context.Context, v T) (T, error) {
		return v, fn(ctx, v)
	})
}

// FlatMap expands each value into an inner iterator and streams the inner
// values in order. Only one inner iterator is open at a time; each is closed
// as soon as it is exhausted.
func FlatMap[I, O any](p *Pipeline[I], fn func(context.Context, I) (Iterator[O], error)) *Pipeline[O] {
	return derive(p, func(src Iterator[I]) Iterator[O] {
		return &flatMapIter[I, O]{stage: stage[I]{src}, fn: fn}
	})
}

// Filter drops the values keep rejects.
func Filter[T any](p *Pipeline[T], keep func(T) bool) *Pipeline[T] {
	return derive(p, func(src Iterator[T]) Iterator[T] {
		return &filterIter[T]{stage: stage[T]{src}, keep: keep}
	})
}

// Scan emits the accumulator after each value, so an empty input yields
// nothing.
func Scan[T, R any](p *Pipeline[T], init R, fn func(R, T) R) *Pipeline[R] {
	return derive(p, func(src Iterator[T]) Iterator[R] {
		return &foldIter[T, R]{stage: stage[T]{src}, acc: init, fn: fn, running: true}
	})
}

// Reduce yields exactly one value: the final accumulator, init for an empty
// input.
func Reduce[T, R any](p *Pipeline[T], init R, fn func(R, T) R) *Pipeline[R] {
	return derive(p, func(src Iterator[T]) Iterator[R] {
		return &foldIter[T, R]{stage: stage[T]{src}, acc: init, fn: fn}
	})
}

// Gather collects the whole input and hands it to fn once. The stream yields
// fn's result, or the first error from the input or from fn.
func Gather[T, R any](p *Pipeline[T], fn func(context.Context, []T) (R, error)) *Pipeline[R] {
	return &Pipeline[R]{
		create: func(context.Context) Iterator[R] {
			return &gatherIter[T, R]{input: p, fn: fn}
		},
	}
}

// stage is embedded by iterators that own a single upstream source.
type stage[T any] struct {
	source Iterator[T]
}

func (s stage[T]) Close() error { return s.source.Close() }

type mapIter[I, O any] struct {
	stage[I]
	fn func(context.Context, I) (O, error)
}

func (it *mapIter[I, O]) Next(ctx context.Context) (O, bool, error) {
	var zero O
	v, ok, err := it.source.Next(ctx)
	if err != nil || !ok {
		return zero, false, err
	}
	out, err := it.fn(ctx, v)
	if err != nil {
		return zero, false, err
	}
	return out, true, nil
}

type flatMapIter[I, O any] struct {
	stage[I]
	fn    func(context.Context, I) (Iterator[O], error)
	inner Iterator[O]
}

func (it *flatMapIter[I, O]) Next(ctx context.Context) (O, bool, error) {
	var zero O
	for {
		if it.inner != nil {
			v, ok, err := it.inner.Next(ctx)
			if err != nil {
				return zero, false, err
			}
			if ok {
				return v, true, nil
			}
			inner := it.inner
			it.inner = nil
			if err := inner.Close(); err != nil {
				return zero, false, err
			}
		}
		in, ok, err := it.source.Next(ctx)
		if err != nil || !ok {
			return zero, false, err
		}
		if it.inner, err = it.fn(ctx, in); err != nil {
			return zero, false, err
		}
	}
}

func (it *flatMapIter[I, O]) Close() error {
	if it.inner != nil {
		_ = it.inner.Close()
		it.inner = nil
	}
	return it.source.Close()
}

type filterIter[T any] struct {
	stage[T]
	keep func(T) bool
}

func (it *filterIter[T]) Next(ctx context.Context) (T, bool, error) {
	for {
		v, ok, err := it.source.Next(ctx)
		if err != nil || !ok || it.keep(v) {
			return v, ok && err == nil, err
		}
	}
}

// foldIter backs Scan (running) and Reduce.
type foldIter[T, R any] struct {
	stage[T]
	acc     R
	fn      func(R, T) R
	running bool
	done    bool
}

func (it *foldIter[T, R]) Next(ctx context.Context) (R, bool, error) {
	var zero R
	for !it.done {
		v, ok, err := it.source.Next(ctx)
		if err != nil {
			return zero, false, err
		}
		if !ok {
			it.done = true
			if it.running {
				return zero, false, nil
			}
			return it.acc, true, nil
		}
		it.acc = it.fn(it.acc, v)
		if it.running {
			return it.acc, true, nil
		}
	}
	return zero, false, nil
}

type gatherIter[T, R any] struct {
	input *Pipeline[T]
	fn    func(context.Context, []T) (R, error)
	done  bool
}

func (it *gatherIter[T, R]) Next(ctx context.Context) (R, bool, error) {
	var zero R
	if it.done {
		return zero, false, nil
	}
	it.done = true
	items, err := Collect(ctx, it.input)
	if err != nil {
		return zero, false, err
	}
	out, err := it.fn(ctx, items)
	if err != nil {
		return zero, false, err
	}
	return out, true, nil
}

// Close has nothing to release: Collect closes the input as it finishes.
func (it *gatherIter[T, R]) Close() error { return nil }
