package chart

import (
	"math"

	"github.com/matzehuels/linechart/pkg/errors"
)

// MinDatasetLength is the smallest dataset a chart can be drawn from.
const MinDatasetLength = 2

// primeAdjustThreshold is the dataset length above which prime lengths are
// padded by one slot so segment reduction can divide them evenly.
const primeAdjustThreshold = 20

// Statistics holds the summary values derived from a dataset.
//
// Statistics is computed once per render and never mutated afterwards.
type Statistics struct {
	Max     float64
	Min     float64
	Range   float64 // Max-Min, at least 1
	Average float64
	Count   int

	// PrimeAdjustedLength is Count+1 when Count is a prime greater than 20,
	// otherwise Count. It is the number of horizontal slots the x axis is
	// divided into.
	PrimeAdjustedLength int
}

// NewStatistics validates dataset and computes its statistics.
//
// The dataset must hold at least [MinDatasetLength] finite values, and its
// range must be finite too. Errors carry [errors.ErrCodeInvalidDataset] and
// name the offending index and value.
func NewStatistics(dataset []float64) (*Statistics, error) {
	if err := validateDataset(dataset); err != nil {
		return nil, err
	}

	lo, hi := dataset[0], dataset[0]
	for _, v := range dataset {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if math.IsInf(hi-lo, 0) {
		return nil, errors.New(errors.ErrCodeInvalidDataset,
			"dataset range %v..%v is too large to scale", lo, hi)
	}

	n := len(dataset)
	return &Statistics{
		Max:                 hi,
		Min:                 lo,
		Range:               math.Max(hi-lo, 1),
		Average:             average(dataset),
		Count:               n,
		PrimeAdjustedLength: primeAdjustedLength(n),
	}, nil
}

// average returns the mean of dataset. When the plain sum overflows it falls
// back to a running mean, which stays within the range of the values.
func average(dataset []float64) float64 {
	sum := 0.0
	for _, v := range dataset {
		sum += v
	}
	if !math.IsInf(sum, 0) {
		return sum / float64(len(dataset))
	}
	avg := 0.0
	for i, v := range dataset {
		avg += (v - avg) / float64(i+1)
	}
	return avg
}

func validateDataset(dataset []float64) error {
	if len(dataset) < MinDatasetLength {
		return errors.New(errors.ErrCodeInvalidDataset,
			"dataset must contain at least %d values, got %d", MinDatasetLength, len(dataset))
	}
	for i, v := range dataset {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return errors.New(errors.ErrCodeInvalidDataset,
				"dataset[%d] = %v is not a finite number", i, v)
		}
	}
	return nil
}

func primeAdjustedLength(n int) int {
	if n > primeAdjustThreshold && isPrime(n) {
		return n + 1
	}
	return n
}

// isPrime reports whether n is prime using trial division.
func isPrime(n int) bool {
	if n < 2 {
		return false
	}
	if n%2 == 0 {
		return n == 2
	}
	for d := 3; d*d <= n; d += 2 {
		if n%d == 0 {
			return false
		}
	}
	return true
}
