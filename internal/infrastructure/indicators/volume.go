package indicators

// VolumeSMA is the simple moving average of volume.
func VolumeSMA(volumes []float64, period int) []float64 {
	return SMA(volumes, period)
}

// VolumeSurge flags bars where volume exceeds multiplier times the 20-bar
// average. False during warm-up.
func VolumeSurge(volumes []float64, multiplier float64) []bool {
	avg := VolumeSMA(volumes, 20)
	out := make([]bool, len(volumes))
	for i := range volumes {
		out[i] = volumes[i] > multiplier*avg[i]
	}
	return out
}

// VolumeClimax flags down candles (close < open) with volume above
// multiplier times the 20-bar average: exhaustion selling.
func VolumeClimax(opens, closes, volumes []float64, multiplier float64) []bool {
	avg := VolumeSMA(volumes, 20)
	out := make([]bool, len(closes))
	for i := range closes {
		out[i] = closes[i] < opens[i] && volumes[i] > multiplier*avg[i]
	}
	return out
}
