package pure_utils

import (
	"strings"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
)

const ClosestMatchThreshold = 0.8

// ClosestMatch returns the candidate most similar to input, or "" when no candidate reaches
// ClosestMatchThreshold. Comparison is case insensitive, using the Jaro-Winkler algorithm
// which is well suited to short strings like column names.
func ClosestMatch(input string, candidates []string) string {
	inputLower := strings.ToLower(input)
	metric := metrics.NewJaroWinkler()

	bestMatch := ""
	highestScore := 0.0

	for _, candidate := range candidates {
		score := strutil.Similarity(inputLower, strings.ToLower(candidate), metric)
		if score > highestScore || (score == highestScore && candidate < bestMatch) {
			highestScore = score
			bestMatch = candidate
		}
	}

	if highestScore >= ClosestMatchThreshold {
		return bestMatch
	}
	return ""
}
