package indicators

// Pivot is a local extreme in a price series.
type Pivot struct {
	Index int
	Price float64
}

// PivotHighs returns bars whose high equals the maximum over the symmetric
// window [i-window, i+window]. Ties qualify. Endpoints that cannot fit a
// full window on both sides are skipped.
func PivotHighs(highs []float64, window int) []Pivot {
	var pivots []Pivot
	for i := window; i < len(highs)-window; i++ {
		max := highs[i-window]
		for j := i - window + 1; j <= i+window; j++ {
			if highs[j] > max {
				max = highs[j]
			}
		}
		if highs[i] == max {
			pivots = append(pivots, Pivot{Index: i, Price: highs[i]})
		}
	}
	return pivots
}

// PivotLows mirrors PivotHighs for local minima.
func PivotLows(lows []float64, window int) []Pivot {
	var pivots []Pivot
	for i := window; i < len(lows)-window; i++ {
		min := lows[i-window]
		for j := i - window + 1; j <= i+window; j++ {
			if lows[j] < min {
				min = lows[j]
			}
		}
		if lows[i] == min {
			pivots = append(pivots, Pivot{Index: i, Price: lows[i]})
		}
	}
	return pivots
}
