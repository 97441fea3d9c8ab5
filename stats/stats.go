package stats

import (
	"sort"

	"github.com/kbukum/streamcalc/provider"
)

// Backend computes the order statistics and distributions that need the
// whole sample in memory. Callers guarantee xs is non-empty for Median and
// Describe; Histogram accepts an empty sample.
type Backend interface {
	provider.Provider
	// Median returns the middle value, or the mean of the two middle values
	// for an even-sized sample.
	Median(xs []float64) float64
	// Histogram splits the sample range into bins equal-width bins, the last
	// one closed. It returns bins counts and bins+1 non-decreasing edges, or a
	// RANGE_ERROR when the range is not finite.
	Histogram(xs []float64, bins int) (counts []int, edges []float64, err error)
	// Describe returns the summary statistics of the sample.
	Describe(xs []float64) Description
}

// Description is the five-number-plus-spread summary of a sample.
// Var and StdDev are sample statistics (n-1 denominator).
type Description struct {
	Size   int
	Min    float64
	Mean   float64
	Median float64
	Max    float64
	Var    float64
	StdDev float64
}

// HistRange returns the interval a histogram over a sample with the given
// bounds covers. An empty sample covers [0,1]; a constant sample c covers
// [c-0.5, c+0.5].
func HistRange(lo, hi float64, n int) (float64, float64) {
	switch {
	case n == 0:
		return 0, 1
	case lo == hi:
		return lo - 0.5, hi + 0.5
	default:
		return lo, hi
	}
}

// Edges returns bins+1 equally spaced edges from lo to hi. The last edge is
// exactly hi.
func Edges(lo, hi float64, bins int) []float64 {
	edges := make([]float64, bins+1)
	width := (hi - lo) / float64(bins)
	for i := range edges {
		edges[i] = lo + float64(i)*width
	}
	edges[bins] = hi
	return edges
}

// bin returns the index of the bin of edges that holds x: the last i with
// edges[i] <= x, so x on an edge goes to the bin that edge opens. x equal to
// the last edge falls in the closed last bin.
func bin(edges []float64, x float64) int {
	i := sort.Search(len(edges), func(j int) bool { return edges[j] > x }) - 1
	return min(max(i, 0), len(edges)-2)
}
