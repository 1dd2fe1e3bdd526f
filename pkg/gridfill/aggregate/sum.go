package aggregate

import "math"

// Accumulator sums floats with Neumaier compensation, which keeps the error bounded
// when many small quantities are added to a large running total.
type Accumulator struct {
	sum   float64
	comp  float64
	count int
}

// Add adds v to the running total.
func (a *Accumulator) Add(v float64) {
	t := a.sum + v
	if math.Abs(a.sum) >= math.Abs(v) {
		a.comp += (a.sum - t) + v
	} else {
		a.comp += (v - t) + a.sum
	}
	a.sum = t
	a.count++
}

// Sum returns the compensated total. It is 0 when nothing was added.
func (a *Accumulator) Sum() float64 {
	return a.sum + a.comp
}

// Count returns how many values were added.
func (a *Accumulator) Count() int {
	return a.count
}

// SumFloats returns the compensated sum of values.
func SumFloats(values []float64) float64 {
	var acc Accumulator
	for _, v := range values {
		acc.Add(v)
	}
	return acc.Sum()
}
