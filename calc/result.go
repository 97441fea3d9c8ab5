package calc

import (
	"fmt"
	"math"

	"github.com/kbukum/streamcalc/errors"
)

// Result is a value produced by a command's transform.
type Result interface {
	result()
}

// Scalar is a single number.
type Scalar float64

// MeanVar is the one-pass mean and sample variance.
type MeanVar struct {
	Mean float64
	Var  float64
}

// Histogram holds bin counts and the edges around them; Edges[i] and
// Edges[i+1] bound Counts[i].
type Histogram struct {
	Counts []int
	Edges  []float64
}

// Summary is the single row produced by the summary command.
type Summary struct {
	Size   int
	Min    float64
	Mean   float64
	Median float64
	Max    float64
	Var    float64
	StdDev float64
}

func (Scalar) result()    {}
func (MeanVar) result()   {}
func (Histogram) result() {}
func (Summary) result()   {}

// Validate checks that edges are finite, bracket every bin and never
// decrease. A histogram failing it was built wrong, so the error is internal.
func (h Histogram) Validate() error {
	if len(h.Counts) == 0 {
		return errors.Internal(fmt.Errorf("histogram has no bins"))
	}
	if len(h.Edges) != len(h.Counts)+1 {
		return errors.Internal(fmt.Errorf("%d edges for %d bins", len(h.Edges), len(h.Counts)))
	}
	for i, e := range h.Edges {
		if math.IsNaN(e) || math.IsInf(e, 0) {
			return errors.Internal(fmt.Errorf("edge %d is %g", i, e))
		}
		if i > 0 && e < h.Edges[i-1] {
			return errors.Internal(fmt.Errorf("edge %d (%g) is below edge %d (%g)", i, e, i-1, h.Edges[i-1]))
		}
	}
	return nil
}
