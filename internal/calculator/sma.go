package calculator

import "errors"

// CalculateSMA computes the simple moving average of the final period
// points of the given prices.
func CalculateSMA(prices []float64, period int) (float64, error) {
	if period <= 0 {
		return 0, errors.New("period must be positive")
	}
	if len(prices) < period {
		return 0, errors.New("not enough data for SMA calculation")
	}
	sum := 0.0
	for i := len(prices) - period; i < len(prices); i++ {
		sum += prices[i]
	}
	return sum / float64(period), nil
}

// RollingSMA computes the trailing simple moving average at every position
// of prices. The first period-1 positions have no defined value; the
// returned slice contains only the defined points and start is the index
// of the first one. An empty slice with start 0 means the series is too
// short for the period.
func RollingSMA(prices []float64, period int) (values []float64, start int) {
	if period <= 0 || len(prices) < period {
		return nil, 0
	}
	start = period - 1
	values = make([]float64, 0, len(prices)-start)

	sum := 0.0
	for i, p := range prices {
		sum += p
		if i >= period {
			sum -= prices[i-period]
		}
		if i >= start {
			values = append(values, sum/float64(period))
		}
	}
	return values, start
}
