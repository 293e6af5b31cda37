package symspell

// deleteIndex maps a compacted hash of a delete-variant to the dictionary
// terms that can produce it. Buckets are append-only; a bucket may hold
// multiple distinct terms colliding on the same hash, since the hash is
// compacted for memory and lookup always re-verifies with EditDistance.
type deleteIndex struct {
	buckets     map[uint32][]string
	compactMask uint32
}

func newDeleteIndex(compactLevel int) *deleteIndex {
	return &deleteIndex{
		buckets:     make(map[uint32][]string),
		compactMask: compactMaskFor(compactLevel),
	}
}

// compactMaskFor derives the compact_mask from compact_level ∈ [0,16]:
// (0xFFFFFFFF >> (3 + compact_level)) << 2.
func compactMaskFor(compactLevel int) uint32 {
	return (uint32(0xFFFFFFFF) >> uint(3+compactLevel)) << 2
}

// getStringHash computes a 32-bit FNV-1a hash over s, masks it with the
// index's compact_mask, then overwrites the low 2 bits with min(len(s), 3) —
// a coarse length tag riding along with the compressed hash.
func (d *deleteIndex) getStringHash(s string) uint32 {
	h := fnv1a32(s)
	h &= d.compactMask
	lenTag := len(s)
	if lenTag > 3 {
		lenTag = 3
	}
	h = (h &^ 3) | uint32(lenTag)
	return h
}

func fnv1a32(s string) uint32 {
	const offset32 = 2166136261
	const prime32 = 16777619
	h := uint32(offset32)
	for i := 0; i < len(s); i++ {
		h ^= uint32(s[i])
		h *= prime32
	}
	return h
}

// insert computes every delete variant of term's prefix and appends term to
// each variant's bucket.
func (d *deleteIndex) insert(term string, prefixLength, maxEditDistance int) {
	key := term
	if len([]rune(key)) > prefixLength {
		key = string([]rune(key)[:prefixLength])
	}
	for variant := range editsPrefix(key, maxEditDistance, prefixLength) {
		h := d.getStringHash(variant)
		d.buckets[h] = append(d.buckets[h], term)
	}
}

func (d *deleteIndex) lookup(hash uint32) []string {
	return d.buckets[hash]
}

// editsPrefix returns the set of delete variants of key: the empty string
// (if key is short enough to be fully deleted within maxEditDistance), key
// itself truncated to prefixLength, and recursively every string obtainable
// by deleting one more character, up to maxEditDistance deletions total.
func editsPrefix(key string, maxEditDistance, prefixLength int) map[string]struct{} {
	seen := make(map[string]struct{})

	if len([]rune(key)) <= maxEditDistance {
		seen[""] = struct{}{}
	}
	if len([]rune(key)) > prefixLength {
		key = string([]rune(key)[:prefixLength])
	}
	seen[key] = struct{}{}
	edits(key, maxEditDistance, seen)
	return seen
}

// edits recursively deletes one character at a time from word, adding every
// new variant to seen, down to editDistance total deletions remaining.
func edits(word string, editDistance int, seen map[string]struct{}) {
	if editDistance <= 0 {
		return
	}
	editDistance--
	runes := []rune(word)
	if len(runes) <= 1 {
		seen[""] = struct{}{}
		return
	}
	for i := range runes {
		deleted := string(runes[:i]) + string(runes[i+1:])
		if _, ok := seen[deleted]; !ok {
			seen[deleted] = struct{}{}
			edits(deleted, editDistance, seen)
		}
	}
}
