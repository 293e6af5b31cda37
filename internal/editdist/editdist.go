// Package editdist computes a bounded Damerau-OSA (optimal string alignment)
// edit distance between two strings.
//
// The comparer allows adjacent transpositions to be credited as a single
// edit, but (unlike true Damerau-Levenshtein) never re-edits a transposed
// pair. It accepts a ceiling and aborts early once the true distance is
// known to exceed it, which is what lets the SingleTermLookup BFS in
// internal/symspell prune aggressively.
package editdist

// Comparer computes bounded Damerau-OSA distances. Its scratch rows grow to
// fit the longest string seen, but a Comparer must not be shared across
// goroutines — create one per lookup, the way the callers in
// internal/symspell do.
type Comparer struct {
	charCosts     []int
	prevCharCosts []int
}

// NewComparer returns a Comparer with empty scratch rows.
func NewComparer() *Comparer {
	return &Comparer{}
}

// Compare returns the Damerau-OSA distance between a and b, or -1 if that
// distance exceeds max. Two equal strings (including two empty strings)
// always return 0.
func (c *Comparer) Compare(a, b string, max int) int {
	if a == "" || b == "" {
		return nullDistance(a, b, max)
	}
	if max <= 0 {
		if a == b {
			return 0
		}
		return -1
	}

	ra := []rune(a)
	rb := []rune(b)

	// The dp below assumes ra is the shorter string.
	if len(ra) > len(rb) {
		ra, rb = rb, ra
	}
	if len(rb)-len(ra) > max {
		return -1
	}

	len1, len2, start := prefixSuffixPrep(ra, rb)
	if len1 == 0 {
		if len2 <= max {
			return len2
		}
		return -1
	}

	if len2 > len(c.charCosts) {
		c.charCosts = make([]int, len2)
		c.prevCharCosts = make([]int, len2)
	}

	if max < len2 {
		return distanceBounded(ra, rb, len1, len2, start, max, c.charCosts, c.prevCharCosts)
	}
	return distance(ra, rb, len1, len2, start, c.charCosts, c.prevCharCosts)
}

// nullDistance handles the case where a or b is empty.
func nullDistance(a, b string, max int) int {
	if a == b {
		return 0
	}
	lenA := len([]rune(a))
	lenB := len([]rune(b))
	d := lenA
	if lenB > d {
		d = lenB
	}
	if d > max {
		return -1
	}
	return d
}

// prefixSuffixPrep trims the equal trailing run then the equal leading run
// shared by the two (already shorter-first) strings, returning the
// remaining effective lengths and the shared start offset into both runes.
func prefixSuffixPrep(a, b []rune) (len1, len2, start int) {
	len1 = len(a)
	len2 = len(b)

	for len1 != 0 && a[len1-1] == b[len2-1] {
		len1--
		len2--
	}

	start = 0
	for start != len1 && a[start] == b[start] {
		start++
	}
	if start != 0 {
		len1 -= start
		len2 -= start
	}
	return len1, len2, start
}

// distance runs the unbounded row-wise OSA dynamic program.
func distance(a, b []rune, len1, len2, start int, charCosts, prevCharCosts []int) int {
	for j := 0; j < len2; j++ {
		charCosts[j] = j + 1
	}

	var char1 rune
	currentCost := 0

	for i := 0; i < len1; i++ {
		prevChar1 := char1
		char1 = a[start+i]

		var char2 rune
		leftCharCost := i
		aboveCharCost := i
		nextTransCost := 0

		for j := 0; j < len2; j++ {
			thisTransCost := nextTransCost
			nextTransCost = prevCharCosts[j]
			prevCharCosts[j] = currentCost
			currentCost = leftCharCost
			leftCharCost = charCosts[j]

			prevChar2 := char2
			char2 = b[start+j]

			if char1 != char2 {
				if aboveCharCost < currentCost {
					currentCost = aboveCharCost
				}
				if leftCharCost < currentCost {
					currentCost = leftCharCost
				}
				currentCost++
				if i != 0 && j != 0 && char1 == prevChar2 && prevChar1 == char2 && thisTransCost+1 < currentCost {
					currentCost = thisTransCost + 1
				}
			}
			charCosts[j] = currentCost
			aboveCharCost = currentCost
		}
	}
	return currentCost
}

// distanceBounded is distance with a sliding column window and early abort
// once the diagonal cell is known to exceed max.
func distanceBounded(a, b []rune, len1, len2, start, max int, charCosts, prevCharCosts []int) int {
	for j := 0; j < max; j++ {
		charCosts[j] = j + 1
	}
	for j := max; j < len2; j++ {
		charCosts[j] = max + 1
	}

	lenDiff := len2 - len1
	jStartOffset := max - lenDiff
	jStart := 0
	jEnd := max

	var char1 rune
	currentCost := 0

	for i := 0; i < len1; i++ {
		prevChar1 := char1
		char1 = a[start+i]

		var char2 rune
		leftCharCost := i
		aboveCharCost := i
		nextTransCost := 0

		if i > jStartOffset {
			jStart++
		}
		if jEnd < len2 {
			jEnd++
		}

		for j := jStart; j < jEnd; j++ {
			thisTransCost := nextTransCost
			nextTransCost = prevCharCosts[j]
			prevCharCosts[j] = currentCost
			currentCost = leftCharCost
			leftCharCost = charCosts[j]

			prevChar2 := char2
			char2 = b[start+j]

			if char1 != char2 {
				if aboveCharCost < currentCost {
					currentCost = aboveCharCost
				}
				if leftCharCost < currentCost {
					currentCost = leftCharCost
				}
				currentCost++
				if i != 0 && j != 0 && char1 == prevChar2 && prevChar1 == char2 && thisTransCost+1 < currentCost {
					currentCost = thisTransCost + 1
				}
			}
			charCosts[j] = currentCost
			aboveCharCost = currentCost
		}

		if charCosts[i+lenDiff] > max {
			return -1
		}
	}

	if currentCost <= max {
		return currentCost
	}
	return -1
}
