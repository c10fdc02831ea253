package calculator

import "sort"

// DetectLevels finds candidate support and resistance price levels in a
// closing-price series via local-extrema detection.
//
// A point is a local maximum (resistance candidate) when it is strictly
// greater than every other point within window positions on either side;
// the symmetric strictly-less rule yields local minima (support). A larger
// window means fewer, more significant levels.
//
// Duplicate prices are collapsed before ranking. Resistance levels are
// returned sorted descending and support ascending, each truncated to the
// first maxLevels entries of the sorted list. Series shorter than
// 2*window+1 points, or maxLevels == 0, yield empty results; degenerate
// input is never an error.
func DetectLevels(closes []float64, window, maxLevels int) (support, resistance []float64) {
	support = []float64{}
	resistance = []float64{}
	if window < 1 || maxLevels <= 0 || len(closes) < 2*window+1 {
		return support, resistance
	}

	minSeen := make(map[float64]bool)
	maxSeen := make(map[float64]bool)
	for i := range closes {
		isMax, isMin := true, true
		lo, hi := i-window, i+window
		if lo < 0 {
			lo = 0
		}
		if hi > len(closes)-1 {
			hi = len(closes) - 1
		}
		for j := lo; j <= hi; j++ {
			if j == i {
				continue
			}
			if closes[i] <= closes[j] {
				isMax = false
			}
			if closes[i] >= closes[j] {
				isMin = false
			}
			if !isMax && !isMin {
				break
			}
		}
		if isMax && !maxSeen[closes[i]] {
			maxSeen[closes[i]] = true
			resistance = append(resistance, closes[i])
		}
		if isMin && !minSeen[closes[i]] {
			minSeen[closes[i]] = true
			support = append(support, closes[i])
		}
	}

	sort.Float64s(support)
	sort.Sort(sort.Reverse(sort.Float64Slice(resistance)))
	if len(support) > maxLevels {
		support = support[:maxLevels]
	}
	if len(resistance) > maxLevels {
		resistance = resistance[:maxLevels]
	}
	return support, resistance
}
