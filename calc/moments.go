package calc

import "math"

// Moments accumulates count, mean and sum of squared deviations in a single
// pass (Welford). The zero value is an empty accumulator.
type Moments struct {
	N    int
	mean float64
	m2   float64
}

// Add folds x into the accumulator.
func (m *Moments) Add(x float64) {
	m.N++
	if m.N == 1 {
		m.mean = x
		m.m2 = 0
		return
	}
	prev := m.mean
	m.mean = prev + (x-prev)/float64(m.N)
	m.m2 += (x - prev) * (x - m.mean)
}

// Mean is 0 for an empty accumulator.
func (m Moments) Mean() float64 {
	if m.N == 0 {
		return 0
	}
	return m.mean
}

// Var is the sample variance, 0 for fewer than two values.
func (m Moments) Var() float64 {
	if m.N < 2 {
		return 0
	}
	return m.m2 / float64(m.N-1)
}

// Std is the square root of Var.
func (m Moments) Std() float64 {
	return math.Sqrt(m.Var())
}
