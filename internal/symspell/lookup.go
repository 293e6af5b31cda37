package symspell

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lexicore/symspell/internal/editdist"
)

// Lookup implements SingleTermLookup: given one word or short phrase, it
// returns ranked SuggestItems within maxEditDistance of phrase, following
// the policy named by verbosity.
func (s *SymSpell) Lookup(phrase string, verbosity Verbosity, maxEditDistance int, includeUnknown bool) ([]SuggestItem, error) {
	if maxEditDistance > s.maxEditDistance {
		return nil, fmt.Errorf("symspell: max_edit_distance %d exceeds engine max %d", maxEditDistance, s.maxEditDistance)
	}

	var suggestions SuggestItems
	phraseLen := len(phrase)

	if phraseLen-maxEditDistance > s.dict.maxLength {
		if includeUnknown {
			suggestions = append(suggestions, SuggestItem{Term: phrase, Distance: maxEditDistance + 1, Count: 0})
		}
		return suggestions, nil
	}

	if count, ok := s.dict.live[phrase]; ok {
		suggestions = append(suggestions, SuggestItem{Term: phrase, Distance: 0, Count: count})
		if verbosity != All {
			return suggestions, nil
		}
	}

	if maxEditDistance == 0 {
		if includeUnknown && len(suggestions) == 0 {
			suggestions = append(suggestions, SuggestItem{Term: phrase, Distance: maxEditDistance + 1, Count: 0})
		}
		return suggestions, nil
	}

	consideredDeletes := make(map[string]struct{})
	consideredSuggestions := map[string]struct{}{phrase: {}}

	max2 := maxEditDistance
	phrasePrefixLen := phraseLen
	var candidates []string
	if phrasePrefixLen > s.prefixLength {
		phrasePrefixLen = s.prefixLength
		candidates = append(candidates, phrase[:phrasePrefixLen])
	} else {
		candidates = append(candidates, phrase)
	}

	comparer := editdist.NewComparer()

	for cp := 0; cp < len(candidates); cp++ {
		candidate := candidates[cp]
		candidateLen := len(candidate)
		lenDiff := phrasePrefixLen - candidateLen

		if lenDiff > max2 {
			if verbosity == All {
				continue
			}
			break
		}

		if dictSuggestions, found := s.dict.deletes.buckets[s.dict.deletes.getStringHash(candidate)]; found {
			for _, suggestion := range dictSuggestions {
				suggestionLen := len(suggestion)
				if suggestion == phrase {
					continue
				}
				if absInt(suggestionLen-phraseLen) > max2 ||
					suggestionLen < candidateLen ||
					(suggestionLen == candidateLen && suggestion != candidate) {
					continue
				}

				suggPrefixLen := minInt(suggestionLen, s.prefixLength)
				if suggPrefixLen > phrasePrefixLen && suggPrefixLen-candidateLen > max2 {
					continue
				}

				var distance int
				switch {
				case candidateLen == 0:
					distance = maxInt(phraseLen, suggestionLen)
					if distance > max2 || !addToSet(consideredSuggestions, suggestion) {
						continue
					}
				case suggestionLen == 1:
					if strings.ContainsRune(phrase, rune(suggestion[0])) {
						distance = phraseLen - 1
					} else {
						distance = phraseLen
					}
					if distance > max2 || !addToSet(consideredSuggestions, suggestion) {
						continue
					}
				case s.prefixLength-maxEditDistance == candidateLen:
					minLen := minInt(phraseLen, suggestionLen) - s.prefixLength
					if (minLen > 1 && phrase[phraseLen-minLen:] != suggestion[suggestionLen-minLen:]) ||
						(minLen > 0 &&
							phrase[phraseLen-minLen] != suggestion[suggestionLen-minLen] &&
							(phrase[phraseLen-minLen-1] != suggestion[suggestionLen-minLen] ||
								phrase[phraseLen-minLen] != suggestion[suggestionLen-minLen-1])) {
						continue
					}
					if !addToSet(consideredSuggestions, suggestion) {
						continue
					}
					distance = comparer.Compare(phrase, suggestion, max2)
					if distance < 0 {
						continue
					}
				default:
					if (verbosity != All && !deleteInSuggestionPrefix(candidate, candidateLen, suggestion, suggestionLen, s.prefixLength)) ||
						!addToSet(consideredSuggestions, suggestion) {
						continue
					}
					distance = comparer.Compare(phrase, suggestion, max2)
					if distance < 0 {
						continue
					}
				}

				if distance > max2 {
					continue
				}

				si := SuggestItem{Term: suggestion, Distance: distance, Count: s.dict.live[suggestion]}
				if len(suggestions) > 0 {
					switch verbosity {
					case Closest:
						if distance < max2 {
							suggestions = suggestions[:0]
						}
					case Top:
						if distance < max2 || si.Count > suggestions[0].Count {
							max2 = distance
							suggestions[0] = si
						}
						continue
					}
				}
				if verbosity != All {
					max2 = distance
				}
				suggestions = append(suggestions, si)
			}
		}

		if lenDiff < maxEditDistance && candidateLen <= s.prefixLength {
			if verbosity != All && lenDiff >= max2 {
				continue
			}
			for i := 0; i < candidateLen; i++ {
				deleted := candidate[:i] + candidate[i+1:]
				if _, found := consideredDeletes[deleted]; !found {
					consideredDeletes[deleted] = struct{}{}
					candidates = append(candidates, deleted)
				}
			}
		}
	}

	if len(suggestions) > 1 {
		sort.Sort(suggestions)
	}

	if includeUnknown && len(suggestions) == 0 {
		suggestions = append(suggestions, SuggestItem{Term: phrase, Distance: maxEditDistance + 1, Count: 0})
	}

	return suggestions, nil
}

// deleteInSuggestionPrefix is a cheap pre-filter: it requires that deleted
// (a candidate's delete-variant) be reconstructable as a subsequence of
// suggestion's prefix window. Skipping it is always safe, only slower —
// Verbosity All skips it for exactly that reason.
func deleteInSuggestionPrefix(deleted string, deleteLen int, suggestion string, suggestionLen int, prefixLength int) bool {
	if deleteLen == 0 {
		return true
	}
	if prefixLength < suggestionLen {
		suggestionLen = prefixLength
	}
	j := 0
	for i := 0; i < deleteLen; i++ {
		delChar := deleted[i]
		for j < suggestionLen && delChar != suggestion[j] {
			j++
		}
		if j == suggestionLen {
			return false
		}
	}
	return true
}

func addToSet(set map[string]struct{}, s string) bool {
	if _, found := set[s]; found {
		return false
	}
	set[s] = struct{}{}
	return true
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
