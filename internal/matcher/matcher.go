// Package matcher implements the fuzzy subsequence scorer used to rank
// candidate paths against the picker query.
package matcher

import (
	"math"
	"sort"
	"unicode"
)

// Scoring constants. Matched runes earn the base plus at most one bonus;
// skipped candidate runes cost a gap penalty depending on where they sit.
// The trailing penalty is deliberately steep: a match that never reaches the
// tail of a long path is mostly noise from the shared prefix, and it should
// sink below the reject threshold rather than clutter the ranked list.
const (
	matchBase        = 0.5
	bonusConsecutive = 1.0
	bonusBoundary    = 0.9
	bonusWord        = 0.8
	bonusCapital     = 0.7
	bonusDot         = 0.6

	gapLeading  = -0.005
	gapInner    = -0.01
	gapTrailing = -0.2

	// rejectThreshold is the cutoff applied by Rank; only strictly positive
	// scores survive.
	rejectThreshold = 0.0

	// maxCandidateLen bounds the score matrices.
	maxCandidateLen = 1024
)

var (
	scoreMin = math.Inf(-1)
	scoreMax = math.Inf(1)
)

// Result is a scored candidate produced by Rank.
type Result struct {
	Index     int
	Text      string
	Score     float64
	Positions []int
}

// Match scores query against candidate. The query must appear as a
// case-insensitive ordered subsequence of the candidate; otherwise ok is
// false. An empty query matches everything with the maximal score and no
// positions. Positions are rune offsets into the original candidate, for
// highlighting only.
func Match(query, candidate string) (score float64, positions []int, ok bool) {
	if query == "" {
		return scoreMax, nil, true
	}
	q := []rune(query)
	for i, r := range q {
		q[i] = unicode.ToLower(r)
	}
	c := []rune(candidate)
	n, m := len(q), len(c)
	if m == 0 || n > m || m > maxCandidateLen {
		return 0, nil, false
	}
	lower := make([]rune, m)
	for j, r := range c {
		lower[j] = unicode.ToLower(r)
	}
	bonus := precomputeBonus(c)

	// M[i][j] is the best score where candidate[j] is consumed for query[i].
	// B[i][j] is the best score of matching query[0..i] anywhere within
	// candidate[0..j], skips allowed.
	M := make([][]float64, n)
	B := make([][]float64, n)
	for i := 0; i < n; i++ {
		M[i] = make([]float64, m)
		B[i] = make([]float64, m)
		gap := gapInner
		if i == n-1 {
			gap = gapTrailing
		}
		prev := scoreMin
		for j := 0; j < m; j++ {
			if q[i] == lower[j] {
				s := scoreMin
				if i == 0 {
					s = float64(j)*gapLeading + matchBase + bonus[j]
				} else if j > 0 {
					s = math.Max(
						B[i-1][j-1]+matchBase+bonus[j],
						M[i-1][j-1]+matchBase+bonusConsecutive,
					)
				}
				M[i][j] = s
				prev = math.Max(s, prev+gap)
			} else {
				M[i][j] = scoreMin
				prev += gap
			}
			B[i][j] = prev
		}
	}
	best := B[n-1][m-1]
	if math.IsInf(best, -1) {
		return 0, nil, false
	}
	return best, backtrack(M, B, n, m), true
}

// backtrack recovers the matched positions that produced the final score.
// Where several paths tie, the latest positions in the candidate win.
func backtrack(M, B [][]float64, n, m int) []int {
	positions := make([]int, n)
	matchRequired := false
	j := m - 1
	for i := n - 1; i >= 0; i-- {
		for ; j >= 0; j-- {
			if !math.IsInf(M[i][j], -1) && (matchRequired || M[i][j] == B[i][j]) {
				// A score built from the consecutive bonus forces the
				// previous query rune onto the previous candidate rune.
				matchRequired = i > 0 && j > 0 &&
					M[i][j] == M[i-1][j-1]+matchBase+bonusConsecutive
				positions[i] = j
				j--
				break
			}
		}
	}
	return positions
}

func precomputeBonus(c []rune) []float64 {
	bonus := make([]float64, len(c))
	prev := '/'
	for j, r := range c {
		bonus[j] = bonusFor(prev, r)
		prev = r
	}
	return bonus
}

func bonusFor(prev, r rune) float64 {
	if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
		return 0
	}
	switch prev {
	case '/':
		return bonusBoundary
	case '-', '_', ' ':
		return bonusWord
	case '.':
		return bonusDot
	}
	if unicode.IsUpper(r) && unicode.IsLower(prev) {
		return bonusCapital
	}
	return 0
}

// Rank scores every candidate against the query, drops candidates at or
// below the reject threshold, and orders the rest by score descending.
// Equal scores keep the candidates' original relative order, so a ranked
// list never jitters between re-renders of the same query.
func Rank(query string, candidates []string) []Result {
	results := make([]Result, 0, len(candidates))
	for i, text := range candidates {
		score, positions, ok := Match(query, text)
		if !ok || score <= rejectThreshold {
			continue
		}
		results = append(results, Result{Index: i, Text: text, Score: score, Positions: positions})
	}
	sort.SliceStable(results, func(a, b int) bool {
		if results[a].Score != results[b].Score {
			return results[a].Score > results[b].Score
		}
		return results[a].Index < results[b].Index
	})
	return results
}
