package indicators

import "testing"

func TestPivotHighsUnimodal(t *testing.T) {
	// Single peak at index 7.
	highs := []float64{1, 2, 3, 4, 5, 6, 7, 8, 7, 6, 5, 4, 3, 2, 1}
	pivots := PivotHighs(highs, 5)

	if len(pivots) != 1 {
		t.Fatalf("expected 1 pivot, got %d", len(pivots))
	}
	if pivots[0].Index != 7 || pivots[0].Price != 8 {
		t.Errorf("pivot = %+v, want index 7 price 8", pivots[0])
	}
}

func TestPivotHighsTiesQualify(t *testing.T) {
	highs := []float64{1, 1, 5, 5, 5, 1, 1}
	pivots := PivotHighs(highs, 2)

	// Indices 2, 3 and 4 all equal the window max.
	if len(pivots) != 3 {
		t.Fatalf("expected 3 tied pivots, got %d", len(pivots))
	}
	for i, p := range pivots {
		if p.Index != i+2 {
			t.Errorf("pivot %d index = %d, want %d", i, p.Index, i+2)
		}
	}
}

func TestPivotHighsSkipsEndpoints(t *testing.T) {
	// Strictly increasing series: the max is always at the right edge,
	// which never has a full window on both sides.
	highs := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	if pivots := PivotHighs(highs, 3); len(pivots) != 0 {
		t.Errorf("expected no pivots in a monotonic series, got %d", len(pivots))
	}
}

func TestPivotLowsUnimodal(t *testing.T) {
	lows := []float64{9, 8, 7, 6, 5, 4, 5, 6, 7, 8, 9}
	pivots := PivotLows(lows, 3)

	if len(pivots) != 1 {
		t.Fatalf("expected 1 pivot, got %d", len(pivots))
	}
	if pivots[0].Index != 5 || pivots[0].Price != 4 {
		t.Errorf("pivot = %+v, want index 5 price 4", pivots[0])
	}
}

func TestClusterLevelsGroupsNearby(t *testing.T) {
	prices := []float64{100, 100.5, 101, 150, 150.2}
	clusters := ClusterLevels(prices, 0.02)

	if len(clusters) != 2 {
		t.Fatalf("expected 2 clusters, got %d", len(clusters))
	}
	if clusters[0].Touches != 3 {
		t.Errorf("first cluster touches = %d, want 3", clusters[0].Touches)
	}
	if clusters[0].Price != 100.5 {
		t.Errorf("first cluster price = %v, want 100.5", clusters[0].Price)
	}
	if clusters[0].ZoneBottom != 100 || clusters[0].ZoneTop != 101 {
		t.Errorf("first cluster zone = [%v, %v], want [100, 101]", clusters[0].ZoneBottom, clusters[0].ZoneTop)
	}
	if clusters[1].Touches != 2 {
		t.Errorf("second cluster touches = %d, want 2", clusters[1].Touches)
	}
}

func TestClusterLevelsSinglePrice(t *testing.T) {
	clusters := ClusterLevels([]float64{42}, 0.01)
	if len(clusters) != 1 || clusters[0].Touches != 1 || clusters[0].Price != 42 {
		t.Errorf("unexpected clusters: %+v", clusters)
	}
}

func TestClusterLevelsEmpty(t *testing.T) {
	if clusters := ClusterLevels(nil, 0.01); clusters != nil {
		t.Errorf("expected nil for empty input, got %+v", clusters)
	}
}
