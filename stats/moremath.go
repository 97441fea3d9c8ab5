package stats

import (
	"context"
	"math"

	"github.com/aclements/go-moremath/stats"

	"github.com/kbukum/streamcalc/errors"
)

// MoreMath is the backend name of the go-moremath implementation.
const MoreMath = "moremath"

func init() {
	Register(MoreMath, func(map[string]any) (Backend, error) {
		return &moremathBackend{}, nil
	})
}

// moremathBackend implements Backend on github.com/aclements/go-moremath/stats.
type moremathBackend struct{}

func (b *moremathBackend) Name() string                      { return MoreMath }
func (b *moremathBackend) IsAvailable(_ context.Context) bool { return true }

// sorted copies xs so callers keep their order.
func sorted(xs []float64) *stats.Sample {
	s := &stats.Sample{Xs: append([]float64(nil), xs...)}
	return s.Sort()
}

func (b *moremathBackend) Median(xs []float64) float64 {
	return median(sorted(xs).Xs)
}

// median of an already sorted, non-empty slice. Percentile(0.5) interpolates
// with rounding noise, so the two middle values are averaged directly.
func median(xs []float64) float64 {
	n := len(xs)
	if n%2 == 1 {
		return xs[n/2]
	}
	return (xs[n/2-1] + xs[n/2]) / 2
}

func (b *moremathBackend) Histogram(xs []float64, bins int) ([]int, []float64, error) {
	lo, hi := bounds(xs)
	if !finite(lo) || !finite(hi) || !finite(hi-lo) {
		return nil, nil, errors.NonFiniteRange("hist", lo, hi)
	}
	lo, hi = HistRange(lo, hi, len(xs))

	edges := Edges(lo, hi, bins)
	counts := make([]int, bins)
	for _, x := range xs {
		counts[bin(edges, x)]++
	}
	return counts, edges, nil
}

// bounds returns the sample range. A NaN anywhere makes both ends NaN.
func bounds(xs []float64) (float64, float64) {
	if len(xs) == 0 {
		return 0, 0
	}
	for _, x := range xs {
		if math.IsNaN(x) {
			return math.NaN(), math.NaN()
		}
	}
	s := stats.Sample{Xs: xs}
	return s.Bounds()
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

func (b *moremathBackend) Describe(xs []float64) Description {
	s := sorted(xs)
	lo, hi := s.Bounds()
	return Description{
		Size:   len(s.Xs),
		Min:    lo,
		Mean:   s.Mean(),
		Median: median(s.Xs),
		Max:    hi,
		Var:    s.Variance(),
		StdDev: s.StdDev(),
	}
}
