package hotwords

import (
	"fmt"

	"github.com/opencouncil/scribe/pkg/scribe/internalerr"
)

// Rescale linearly maps raw occurrence counts onto [rangeMin, rangeMax].
// The least frequent term maps to exactly rangeMin, the most frequent to
// exactly rangeMax, and the rest interpolate. The input table is not
// modified; a new mapping with the same key set is returned.
//
// When every term has the same count there is no spread to interpolate
// over; every term is assigned the midpoint of the range.
func Rescale(freqs map[string]int, rangeMin, rangeMax int) (map[string]float64, error) {
	if rangeMin >= rangeMax {
		return nil, fmt.Errorf("range [%d, %d]: %w", rangeMin, rangeMax, internalerr.ErrInvalidConfig)
	}
	if len(freqs) == 0 {
		return nil, fmt.Errorf("no terms to rescale: %w", internalerr.ErrEmptyInput)
	}

	minCount, maxCount := countBounds(freqs)

	weights := make(map[string]float64, len(freqs))
	if minCount == maxCount {
		mid := float64(rangeMin+rangeMax) / 2
		for term := range freqs {
			weights[term] = mid
		}
		return weights, nil
	}

	span := float64(maxCount - minCount)
	width := float64(rangeMax - rangeMin)
	for term, count := range freqs {
		weights[term] = float64(count-minCount)/span*width + float64(rangeMin)
	}
	return weights, nil
}

func countBounds(freqs map[string]int) (minCount, maxCount int) {
	first := true
	for _, c := range freqs {
		if first {
			minCount, maxCount = c, c
			first = false
			continue
		}
		if c < minCount {
			minCount = c
		}
		if c > maxCount {
			maxCount = c
		}
	}
	return minCount, maxCount
}
