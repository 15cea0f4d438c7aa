package indicators

import "sort"

// Cluster is a group of nearby price levels.
type Cluster struct {
	Price      float64
	Touches    int
	ZoneTop    float64
	ZoneBottom float64
}

// ClusterLevels sorts prices ascending and groups them in one left-to-right
// pass: a price joins the current cluster when its distance from the running
// cluster average stays within tolerance fraction of that average, otherwise
// it starts a new cluster. No merging afterward; boundaries depend on the
// running mean. Downstream consumers rely on this exact greedy grouping.
func ClusterLevels(prices []float64, tolerance float64) []Cluster {
	if len(prices) == 0 {
		return nil
	}

	sorted := make([]float64, len(prices))
	copy(sorted, prices)
	sort.Float64s(sorted)

	var clusters []Cluster
	current := []float64{sorted[0]}
	avg := sorted[0]

	flush := func() {
		top := current[0]
		bottom := current[0]
		for _, p := range current {
			if p > top {
				top = p
			}
			if p < bottom {
				bottom = p
			}
		}
		clusters = append(clusters, Cluster{
			Price:      Round2(avg),
			Touches:    len(current),
			ZoneTop:    top,
			ZoneBottom: bottom,
		})
	}

	for _, p := range sorted[1:] {
		dist := p - avg
		if dist < 0 {
			dist = -dist
		}
		if avg != 0 && dist/avg <= tolerance {
			current = append(current, p)
			sum := 0.0
			for _, c := range current {
				sum += c
			}
			avg = sum / float64(len(current))
			continue
		}
		flush()
		current = []float64{p}
		avg = p
	}
	flush()

	return clusters
}
