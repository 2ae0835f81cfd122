// Package fuzzy scores queries against candidate labels using greedy
// case-insensitive subsequence matching.
package fuzzy

import "unicode"

// Scoring weights. Contiguous runs escalate so substrings beat scattered
// matches, and every unmatched label character costs enough that tight
// matches on short labels rank above loose matches on long ones. The
// word-start bonus is deliberately no larger than the unmatched penalty:
// inserting a separator into a label must never raise its score.
const (
	matchPoint       = 4
	runBonusStep     = 3
	startOfLabel     = 8
	startOfWord      = 2
	unmatchedPenalty = 2
)

// Match scores query against label. It reports ok=false when the query is
// not a case-insensitive subsequence of the label; otherwise the score is
// non-negative and higher means a better match. An empty query matches
// everything with score zero.
func Match(query, label string) (score int, ok bool) {
	if query == "" {
		return 0, true
	}

	q := foldRunes(query)
	l := foldRunes(label)

	qi := 0
	run := 0
	matched := 0
	for i, ch := range l {
		if qi >= len(q) || q[qi] != ch {
			run = 0
			continue
		}

		score += matchPoint
		score += run * runBonusStep
		if i == 0 {
			score += startOfLabel
		} else if isSeparator(l[i-1]) {
			score += startOfWord
		}

		run++
		matched++
		qi++
	}
	if qi < len(q) {
		return 0, false
	}

	score -= (len(l) - matched) * unmatchedPenalty
	if score < 0 {
		score = 0
	}
	return score, true
}

func foldRunes(s string) []rune {
	rs := []rune(s)
	for i, r := range rs {
		rs[i] = unicode.ToLower(r)
	}
	return rs
}

func isSeparator(r rune) bool {
	return r == ' ' || r == '-' || r == '_'
}
