package symspell

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/lexicore/symspell/internal/editdist"
)

// LookupCompoundOptions tunes CompoundLookup beyond the (phrase,
// maxEditDistance) pair named in spec.md. IgnoreNonWords is absent from the
// original Go port but present in the Python service this was distilled
// from (helpers.is_acronym / helpers.try_parse_int64): when set, a token
// that is an acronym or parses as an int64 passes through untouched instead
// of being run through single-term correction.
type LookupCompoundOptions struct {
	IgnoreNonWords bool
}

// LookupCompound implements CompoundLookup: it corrects a whole phrase,
// including missing or spurious spaces, by walking the tokens left to
// right and choosing between a per-token correction, a merge with the
// previous token, or a split of the current token. Always returns exactly
// one SuggestItem: the best full-phrase reconstruction.
func (s *SymSpell) LookupCompound(phrase string, maxEditDistance int, opts LookupCompoundOptions) ([]SuggestItem, error) {
	tokens := parseWords(phrase, false)
	tokensCased := parseWords(phrase, true)
	comparer := editdist.NewComparer()

	var suggestionParts []SuggestItem
	isLastCombi := false

	for i, t := range tokens {
		if opts.IgnoreNonWords {
			if n, ok := tryParseInt64(t); ok {
				suggestionParts = append(suggestionParts, SuggestItem{Term: strconv.FormatInt(n, 10)})
				isLastCombi = false
				continue
			}
			if isAcronym(tokensCased[i]) {
				suggestionParts = append(suggestionParts, SuggestItem{Term: tokensCased[i]})
				isLastCombi = false
				continue
			}
		}

		sug, err := s.Lookup(t, Top, maxEditDistance, false)
		if err != nil {
			return nil, err
		}

		// Merge with previous, always attempted before the split path.
		if i > 0 && !isLastCombi {
			combined := tokens[i-1] + t
			sugCombi, err := s.Lookup(combined, Top, maxEditDistance, false)
			if err != nil {
				return nil, err
			}
			if len(sugCombi) > 0 {
				best1 := suggestionParts[len(suggestionParts)-1]
				best2 := SuggestItem{Term: t, Distance: maxEditDistance + 1, Count: 0}
				if len(sug) > 0 {
					best2 = sug[0]
				}

				dSplit := comparer.Compare(tokens[i-1]+" "+t, best1.Term+" "+best2.Term, maxEditDistance)
				if dSplit >= 0 && sugCombi[0].Distance+1 < dSplit {
					merged := sugCombi[0]
					merged.Distance++
					suggestionParts[len(suggestionParts)-1] = merged
					isLastCombi = true
					continue
				}
			}
		}
		isLastCombi = false

		runes := []rune(t)
		if len(sug) > 0 && (sug[0].Distance == 0 || len(runes) == 1) {
			suggestionParts = append(suggestionParts, sug[0])
			continue
		}

		best := bestSplit(s, comparer, t, runes, sug, maxEditDistance)
		suggestionParts = append(suggestionParts, best)
	}

	var sb strings.Builder
	minCount := int64(-1)
	for _, p := range suggestionParts {
		sb.WriteString(p.Term)
		sb.WriteString(" ")
		if minCount == -1 || p.Count < minCount {
			minCount = p.Count
		}
	}
	if minCount == -1 {
		minCount = 0
	}
	joined := strings.TrimRight(sb.String(), " ")
	distance := comparer.Compare(phrase, joined, math.MaxInt32)

	return []SuggestItem{{Term: joined, Distance: distance, Count: minCount}}, nil
}

// bestSplit tries every split position inside t (a missing-space repair),
// and returns whichever of the unsplit suggestion or the best split
// candidate wins under the SuggestItem order — or the unknown-word sentinel
// if neither produced anything.
func bestSplit(s *SymSpell, comparer *editdist.Comparer, t string, runes []rune, sug []SuggestItem, maxEditDistance int) SuggestItem {
	var best *SuggestItem
	if len(sug) > 0 {
		tmp := sug[0]
		best = &tmp
	}

	if len(runes) > 1 {
		var candidates SuggestItems
		for j := 1; j < len(runes); j++ {
			part1 := string(runes[:j])
			part2 := string(runes[j:])

			sug1, err := s.Lookup(part1, Top, maxEditDistance, false)
			if err != nil || len(sug1) == 0 {
				continue
			}
			sug2, err := s.Lookup(part2, Top, maxEditDistance, false)
			if err != nil || len(sug2) == 0 {
				continue
			}

			if len(sug) > 0 && (sug[0].Term == sug1[0].Term || sug[0].Term == sug2[0].Term) {
				break
			}

			combined := sug1[0].Term + " " + sug2[0].Term
			d := comparer.Compare(t, combined, maxEditDistance)
			if d < 0 {
				d = maxEditDistance + 1
			}
			count := sug1[0].Count
			if sug2[0].Count < count {
				count = sug2[0].Count
			}
			candidates = append(candidates, SuggestItem{Term: combined, Distance: d, Count: count})
			if d == 1 {
				break
			}
		}

		if len(candidates) > 0 {
			sort.Sort(candidates)
			cand := candidates[0]
			if best == nil || cand.Distance < best.Distance || (cand.Distance == best.Distance && cand.Count > best.Count) {
				best = &cand
			}
		}
	}

	if best != nil {
		return *best
	}
	return SuggestItem{Term: t, Distance: maxEditDistance + 1, Count: 0}
}
