package calc

import (
	"context"

	"github.com/kbukum/streamcalc/errors"
	"github.com/kbukum/streamcalc/pipeline"
	"github.com/kbukum/streamcalc/stats"
)

func scalar(p *pipeline.Pipeline[float64]) *pipeline.Pipeline[Result] {
	return pipeline.Map(p, func(_ context.Context, x float64) (Result, error) {
		return Scalar(x), nil
	})
}

// Fold reduces the stream to one Scalar, starting from init. An empty
// stream yields init.
func Fold(init float64, fn func(acc, x float64) float64) Transform {
	return func(in *pipeline.Pipeline[float64]) *pipeline.Pipeline[Result] {
		return scalar(pipeline.Reduce(in, init, fn))
	}
}

// Running emits the accumulator after every value.
func Running(init float64, fn func(acc, x float64) float64) Transform {
	return func(in *pipeline.Pipeline[float64]) *pipeline.Pipeline[Result] {
		return scalar(pipeline.Scan(in, init, fn))
	}
}

// Elementwise applies fn to every value, in order.
func Elementwise(fn func(float64) float64) Transform {
	return func(in *pipeline.Pipeline[float64]) *pipeline.Pipeline[Result] {
		return scalar(pipeline.Map(in, func(_ context.Context, x float64) (float64, error) {
			return fn(x), nil
		}))
	}
}

type extreme struct {
	value float64
	seen  bool
}

// Extremum keeps the value for which better(x, current) holds. An empty
// stream is an EMPTY_INPUT error named after op.
func Extremum(op string, better func(x, current float64) bool) Transform {
	return func(in *pipeline.Pipeline[float64]) *pipeline.Pipeline[Result] {
		acc := pipeline.Reduce(in, extreme{}, func(e extreme, x float64) extreme {
			if !e.seen || better(x, e.value) {
				return extreme{value: x, seen: true}
			}
			return e
		})
		return pipeline.Map(acc, func(_ context.Context, e extreme) (Result, error) {
			if !e.seen {
				return nil, errors.EmptyInput(op)
			}
			return Scalar(e.value), nil
		})
	}
}

// WithMoments runs a Welford pass and hands the result to fn.
func WithMoments(fn func(Moments) Result) Transform {
	return func(in *pipeline.Pipeline[float64]) *pipeline.Pipeline[Result] {
		acc := pipeline.Reduce(in, Moments{}, func(m Moments, x float64) Moments {
			m.Add(x)
			return m
		})
		return pipeline.Map(acc, func(_ context.Context, m Moments) (Result, error) {
			return fn(m), nil
		})
	}
}

// Batch gathers the whole stream and passes it to fn once.
func Batch(fn func(ctx context.Context, xs []float64) (Result, error)) Transform {
	return func(in *pipeline.Pipeline[float64]) *pipeline.Pipeline[Result] {
		return pipeline.Gather(in, fn)
	}
}

// Median needs at least one value.
func Median(backend stats.Backend) Transform {
	return Batch(func(_ context.Context, xs []float64) (Result, error) {
		if len(xs) == 0 {
			return nil, errors.EmptyInput("median")
		}
		return Scalar(backend.Median(xs)), nil
	})
}

// Hist splits the input range into bins equal-width bins. An empty input
// produces zero counts over [0,1]; a range that is not finite is a
// RANGE_ERROR.
func Hist(backend stats.Backend, bins int) Transform {
	return Batch(func(_ context.Context, xs []float64) (Result, error) {
		if bins < 1 {
			return nil, errors.InvalidInput("bin_count", "bin count must be at least 1")
		}
		counts, edges, err := backend.Histogram(xs, bins)
		if err != nil {
			return nil, err
		}
		return Histogram{Counts: counts, Edges: edges}, nil
	})
}

// Describe computes the summary row; it needs at least one value.
func Describe(backend stats.Backend) Transform {
	return Batch(func(_ context.Context, xs []float64) (Result, error) {
		if len(xs) == 0 {
			return nil, errors.EmptyInput("summary")
		}
		return Summary(backend.Describe(xs)), nil
	})
}

func add(acc, x float64) float64 { return acc + x }
func mul(acc, x float64) float64 { return acc * x }

var (
	greater = func(x, cur float64) bool { return x > cur }
	less    = func(x, cur float64) bool { return x < cur }
)
