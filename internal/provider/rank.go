package provider

import "sort"

// Ranking is one merged, sorted, truncated pass over every provider.
type Ranking struct {
	Candidates []Candidate
	Total      int // candidate count before truncation
}

// Rank merges the candidates from providers for query, sorts them by
// descending score, and truncates to max entries (max <= 0 means no cap).
// Ties keep provider-listing order: the sort is stable and providers are
// consulted in the order given, so ranking is fully deterministic.
func Rank(providers []Provider, query string, max int) Ranking {
	var merged []Candidate
	for _, p := range providers {
		merged = append(merged, p.Candidates(query)...)
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Score > merged[j].Score
	})

	total := len(merged)
	if max > 0 && len(merged) > max {
		merged = merged[:max]
	}
	return Ranking{Candidates: merged, Total: total}
}

// DisplayNumber returns the 1-based direct-launch number for the candidate
// at index i, or 0 when i is outside the numbered range. Only the first
// nine results get numbers.
func (r Ranking) DisplayNumber(i int) int {
	if i < 0 || i >= len(r.Candidates) || i >= 9 {
		return 0
	}
	return i + 1
}
