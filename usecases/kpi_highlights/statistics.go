package kpi_highlights

import "math"

type Statistics struct {
	Count  int
	Mean   float64
	StdDev float64
}

// Mean returns the arithmetic mean of the values, 0 for an empty sample.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	total := 0.0
	for _, v := range values {
		total += v
	}
	return total / float64(len(values))
}

// PopulationStdDev divides by N, not N-1: the lookback window is the whole population of interest.
func PopulationStdDev(values []float64, mean float64) float64 {
	if len(values) == 0 {
		return 0
	}
	variance := 0.0
	for _, v := range values {
		diff := v - mean
		variance += diff * diff
	}
	return math.Sqrt(variance / float64(len(values)))
}

func ComputeStatistics(values []float64) Statistics {
	mean := Mean(values)
	return Statistics{
		Count:  len(values),
		Mean:   mean,
		StdDev: PopulationStdDev(values, mean),
	}
}
