package symspell

import "sync"

// Corrector is a concurrency-safe façade over a loaded SymSpell engine for
// the HTTP and CLI layers: one engine is built once at startup, then served
// to arbitrarily many concurrent callers. This mirrors the engine's own
// concurrency model (read-only after load) rather than adding any locking
// the engine itself needs — the RWMutex here only protects the Corrector's
// own fields during a future reload, not individual lookups.
type Corrector struct {
	engine          *SymSpell
	maxEditDistance int
	ignoreNonWords  bool
	mu              sync.RWMutex
}

// NewCorrector wraps an already-loaded engine.
func NewCorrector(engine *SymSpell, maxEditDistance int, ignoreNonWords bool) *Corrector {
	return &Corrector{
		engine:          engine,
		maxEditDistance: maxEditDistance,
		ignoreNonWords:  ignoreNonWords,
	}
}

// CorrectPhrase runs CompoundLookup over phrase and returns the
// reconstructed phrase alongside the full SuggestItem (including its
// distance and count) for callers that want more than the bare string.
func (c *Corrector) CorrectPhrase(phrase string) (string, SuggestItem, error) {
	if c == nil || c.engine == nil {
		return phrase, SuggestItem{Term: phrase}, nil
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	items, err := c.engine.LookupCompound(phrase, c.maxEditDistance, LookupCompoundOptions{IgnoreNonWords: c.ignoreNonWords})
	if err != nil {
		return phrase, SuggestItem{}, err
	}
	return items[0].Term, items[0], nil
}

// CorrectToken runs a single-term lookup at Top verbosity and reports
// whether a correction distinct from the input token was found.
func (c *Corrector) CorrectToken(token string) (SuggestItem, bool, error) {
	if c == nil || c.engine == nil {
		return SuggestItem{Term: token}, false, nil
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	items, err := c.engine.Lookup(token, Top, c.maxEditDistance, false)
	if err != nil {
		return SuggestItem{}, false, err
	}
	if len(items) == 0 {
		return SuggestItem{Term: token}, false, nil
	}
	return items[0], items[0].Distance > 0, nil
}

// Stats reports the underlying engine's dictionary size.
func (c *Corrector) Stats() EngineStats {
	if c == nil || c.engine == nil {
		return EngineStats{}
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.engine.Stats()
}
