// Package symspell implements the symmetric-delete spelling correction
// algorithm (SymSpell): a delete-index is built once from a frequency
// dictionary so that single-term and whole-phrase lookups can be answered by
// probing a bounded number of precomputed delete variants instead of
// comparing against every dictionary entry.
package symspell

// Verbosity controls how many suggestions Lookup returns.
type Verbosity int

const (
	// Top returns the single best suggestion: smallest distance, ties
	// broken by largest count.
	Top Verbosity = iota
	// Closest returns every suggestion tied at the smallest distance found.
	Closest
	// All returns every suggestion within the requested distance.
	All
)

func (v Verbosity) String() string {
	switch v {
	case Top:
		return "top"
	case Closest:
		return "closest"
	case All:
		return "all"
	default:
		return "unknown"
	}
}

// SuggestItem is a single candidate correction: a dictionary term, its edit
// distance from the query, and its dictionary frequency.
type SuggestItem struct {
	Term     string
	Distance int
	Count    int64
}

// SuggestItems is a slice of SuggestItem with the SymSpell total order:
// smaller distance wins, ties broken by larger count, further ties by term.
type SuggestItems []SuggestItem

func (s SuggestItems) Len() int      { return len(s) }
func (s SuggestItems) Swap(i, j int) { s[i], s[j] = s[j], s[i] }

func (s SuggestItems) Less(i, j int) bool {
	if s[i].Distance != s[j].Distance {
		return s[i].Distance < s[j].Distance
	}
	if s[i].Count != s[j].Count {
		return s[i].Count > s[j].Count
	}
	return s[i].Term < s[j].Term
}

// saturatingAdd adds b to a, clamping at the maximum int64 rather than
// wrapping. Frequency counts are saturating per the data model: an overflow
// must never silently corrupt ranking.
func saturatingAdd(a, b int64) int64 {
	const maxInt64 = 1<<63 - 1
	if a > maxInt64-b {
		return maxInt64
	}
	return a + b
}
