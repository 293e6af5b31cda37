package symspell

import "fmt"

// SymSpell is the symmetric-delete spelling correction engine: a Dictionary
// plus DeleteIndex built once from a frequency dictionary, queried through
// Lookup (single term) and LookupCompound (phrase).
type SymSpell struct {
	dict *dictionary

	maxEditDistance int
	prefixLength    int
}

// EngineConfig holds the construction parameters named in the engine's
// external interface: initial_capacity, max_dictionary_edit_distance,
// prefix_length, count_threshold, compact_level.
type EngineConfig struct {
	InitialCapacity          int
	MaxDictionaryEditDistance int
	PrefixLength              int
	CountThreshold            int64
	CompactLevel              int
}

// DefaultEngineConfig mirrors the common SymSpell defaults: edit distance 2,
// a prefix window of 7 characters, a count threshold of 1 (every positive
// count goes live at once), and hash compaction level 5.
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		InitialCapacity:           16,
		MaxDictionaryEditDistance: 2,
		PrefixLength:              7,
		CountThreshold:            1,
		CompactLevel:              5,
	}
}

// New validates cfg and constructs an empty engine. Invalid configuration is
// rejected here, at construction, with no recovery path — per the error
// taxonomy, this is the one class of failure that is neither a missing
// dictionary nor a bad query bound.
func New(cfg EngineConfig) (*SymSpell, error) {
	if cfg.InitialCapacity < 0 {
		return nil, fmt.Errorf("symspell: initial_capacity must be >= 0, got %d", cfg.InitialCapacity)
	}
	if cfg.MaxDictionaryEditDistance < 0 {
		return nil, fmt.Errorf("symspell: max_dictionary_edit_distance must be >= 0, got %d", cfg.MaxDictionaryEditDistance)
	}
	if cfg.PrefixLength < 1 {
		return nil, fmt.Errorf("symspell: prefix_length must be >= 1, got %d", cfg.PrefixLength)
	}
	if cfg.PrefixLength <= cfg.MaxDictionaryEditDistance {
		return nil, fmt.Errorf("symspell: prefix_length (%d) must be > max_dictionary_edit_distance (%d)", cfg.PrefixLength, cfg.MaxDictionaryEditDistance)
	}
	if cfg.CountThreshold < 0 {
		return nil, fmt.Errorf("symspell: count_threshold must be >= 0, got %d", cfg.CountThreshold)
	}
	if cfg.CompactLevel < 0 || cfg.CompactLevel > 16 {
		return nil, fmt.Errorf("symspell: compact_level must be in [0, 16], got %d", cfg.CompactLevel)
	}

	return &SymSpell{
		dict:            newDictionary(cfg.MaxDictionaryEditDistance, cfg.PrefixLength, cfg.CountThreshold, cfg.CompactLevel),
		maxEditDistance: cfg.MaxDictionaryEditDistance,
		prefixLength:    cfg.PrefixLength,
	}, nil
}

// CreateDictionaryEntry inserts or accumulates (term, count). Returns true
// iff a new live entry was created by this call.
func (s *SymSpell) CreateDictionaryEntry(term string, count int64) bool {
	return s.dict.createEntry(term, count)
}

// LoadDictionary reads a whitespace-separated frequency dictionary from
// path, taking the term from termIndex and the count from countIndex.
// Returns false only when path could not be opened.
func (s *SymSpell) LoadDictionary(path string, termIndex, countIndex int) (bool, error) {
	return s.dict.loadDictionary(path, termIndex, countIndex)
}

// EngineStats summarizes the loaded dictionary for operational visibility
// (the `symspell stats` CLI subcommand, the /healthz HTTP endpoint).
type EngineStats struct {
	TermCount     int
	StagedCount   int
	BucketCount   int
	MaxTermLength int
}

// Stats reports the current size of the dictionary and delete index.
func (s *SymSpell) Stats() EngineStats {
	return EngineStats{
		TermCount:     len(s.dict.live),
		StagedCount:   len(s.dict.staging),
		BucketCount:   len(s.dict.deletes.buckets),
		MaxTermLength: s.dict.maxLength,
	}
}
