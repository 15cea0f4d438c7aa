package indicators

import "math"

// RelativeStrength computes the rolling relative-strength ratio of a stock
// versus a benchmark: (1+stock_return) / (1+benchmark_return) over period
// bars. Values above 1 mean the stock outperformed.
//
// When the benchmark return is exactly -100% the denominator is zero; the
// result is NaN rather than infinity, and callers treat NaN as "no data".
func RelativeStrength(stockClose, benchClose []float64, period int) []float64 {
	n := len(stockClose)
	if len(benchClose) < n {
		n = len(benchClose)
	}
	rs := nanSlice(len(stockClose))

	for i := period; i < n; i++ {
		if stockClose[i-period] == 0 || benchClose[i-period] == 0 {
			continue
		}
		stockRet := stockClose[i]/stockClose[i-period] - 1
		benchRet := benchClose[i]/benchClose[i-period] - 1
		denom := 1 + benchRet
		if denom == 0 || math.IsNaN(stockRet) || math.IsNaN(benchRet) {
			continue
		}
		rs[i] = (1 + stockRet) / denom
	}
	return rs
}
