// Package similarity provides normalized string similarity scoring backed
// by edit-distance computations.
package similarity

import (
	edlib "github.com/hbollon/go-edlib"
)

// Score returns the normalized Levenshtein similarity of a and b in [0,1]:
// (maxLen - distance) / maxLen over rune counts. Identical strings score 1,
// including two empty strings; otherwise an empty string on either side
// scores 0.
func Score(a, b string) float64 {
	if a == b {
		return 1
	}
	if a == "" || b == "" {
		return 0
	}
	sim, err := edlib.StringsSimilarity(a, b, edlib.Levenshtein)
	if err != nil {
		return 0
	}
	return float64(sim)
}

// Distance returns the Levenshtein edit distance between a and b, counted
// in runes.
func Distance(a, b string) int {
	return edlib.LevenshteinDistance(a, b)
}
