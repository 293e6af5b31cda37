package symspell

import (
	"sort"
	"testing"
)

// buildSpecDictionary builds the worked-example dictionary from the
// component design document: small, hand-picked frequencies exercising
// single-term and compound correction together.
func buildSpecDictionary(t *testing.T) *SymSpell {
	t.Helper()
	cfg := DefaultEngineConfig()
	cfg.MaxDictionaryEditDistance = 2
	cfg.PrefixLength = 7

	engine, err := New(cfg)
	if err != nil {
		t.Fatalf("New(%+v) = %v", cfg, err)
	}

	entries := map[string]int64{
		"the": 10000, "quick": 500, "brown": 400, "fox": 300,
		"jumps": 200, "over": 600, "lazy": 150, "dog": 250, "member": 50,
	}
	for term, count := range entries {
		engine.CreateDictionaryEntry(term, count)
	}
	return engine
}

func TestLookupExactMatch(t *testing.T) {
	engine := buildSpecDictionary(t)
	got, err := engine.Lookup("the", Top, 2, false)
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if len(got) != 1 || got[0].Term != "the" || got[0].Distance != 0 || got[0].Count != 10000 {
		t.Fatalf("Lookup(the, Top, 2) = %+v, want [{the 0 10000}]", got)
	}
}

func TestLookupKnownDistances(t *testing.T) {
	engine := buildSpecDictionary(t)

	tests := []struct {
		query    string
		wantTerm string
		wantDist int
	}{
		{"teh", "the", 1},
		{"membr", "member", 1},
	}
	for _, tt := range tests {
		got, err := engine.Lookup(tt.query, Top, 2, false)
		if err != nil {
			t.Fatalf("Lookup(%q): %v", tt.query, err)
		}
		if len(got) != 1 {
			t.Fatalf("Lookup(%q) = %+v, want exactly one suggestion", tt.query, got)
		}
		if got[0].Term != tt.wantTerm || got[0].Distance != tt.wantDist {
			t.Errorf("Lookup(%q) = %+v, want term %q distance %d", tt.query, got[0], tt.wantTerm, tt.wantDist)
		}
	}
}

func TestLookupIncludeUnknown(t *testing.T) {
	engine := buildSpecDictionary(t)
	got, err := engine.Lookup("xyz", Top, 2, true)
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if len(got) != 1 || got[0].Term != "xyz" || got[0].Distance != 3 || got[0].Count != 0 {
		t.Fatalf("Lookup(xyz, Top, 2, includeUnknown) = %+v, want [{xyz 3 0}]", got)
	}
}

func TestLookupInvalidBound(t *testing.T) {
	engine := buildSpecDictionary(t)
	if _, err := engine.Lookup("the", Top, 5, false); err == nil {
		t.Fatal("Lookup with max_edit_distance beyond engine max should return an error")
	}
}

func TestLookupClosestSharesMinDistance(t *testing.T) {
	engine := buildSpecDictionary(t)
	got, err := engine.Lookup("dogg", Closest, 2, false)
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if len(got) == 0 {
		t.Fatal("Lookup(dogg, Closest, 2) returned nothing")
	}
	min := got[0].Distance
	for _, s := range got {
		if s.Distance != min {
			t.Errorf("Closest result %+v has distance != min %d", s, min)
		}
	}
}

func TestLookupTopReturnsAtMostOne(t *testing.T) {
	engine := buildSpecDictionary(t)
	got, err := engine.Lookup("brwn", Top, 2, false)
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if len(got) > 1 {
		t.Fatalf("Lookup(..., Top, ...) returned %d items, want at most 1", len(got))
	}
}

func TestLookupCompoundWorkedExample(t *testing.T) {
	engine := buildSpecDictionary(t)
	got, err := engine.LookupCompound("teh quikc broown fox", 2, LookupCompoundOptions{})
	if err != nil {
		t.Fatalf("LookupCompound: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("LookupCompound returned %d items, want 1", len(got))
	}
	if got[0].Term != "the quick brown fox" {
		t.Errorf("LookupCompound term = %q, want %q", got[0].Term, "the quick brown fox")
	}
	if got[0].Count != 300 {
		t.Errorf("LookupCompound count = %d, want min-across-parts 300", got[0].Count)
	}
}

func TestLookupCompoundSplitsMissingSpace(t *testing.T) {
	engine := buildSpecDictionary(t)
	got, err := engine.LookupCompound("thequick brown fox", 2, LookupCompoundOptions{})
	if err != nil {
		t.Fatalf("LookupCompound: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("LookupCompound returned %d items, want 1", len(got))
	}
	if got[0].Term != "the quick brown fox" {
		t.Errorf("LookupCompound(thequick brown fox) = %q, want %q", got[0].Term, "the quick brown fox")
	}
}

func TestLookupCompoundUnchangedPhraseRoundTrips(t *testing.T) {
	engine := buildSpecDictionary(t)
	got, err := engine.LookupCompound("the quick brown fox", 2, LookupCompoundOptions{})
	if err != nil {
		t.Fatalf("LookupCompound: %v", err)
	}
	if got[0].Term != "the quick brown fox" || got[0].Distance != 0 {
		t.Errorf("LookupCompound on a correctly spelled phrase = %+v, want distance 0", got[0])
	}
}

func TestLookupCompoundIgnoreNonWordsPreservesAcronymCase(t *testing.T) {
	engine := buildSpecDictionary(t)
	got, err := engine.LookupCompound("the NASA dog", 2, LookupCompoundOptions{IgnoreNonWords: true})
	if err != nil {
		t.Fatalf("LookupCompound: %v", err)
	}
	if got[0].Term != "the NASA dog" {
		t.Errorf("LookupCompound(IgnoreNonWords) term = %q, want %q", got[0].Term, "the NASA dog")
	}
}

func TestCreateDictionaryEntryStaging(t *testing.T) {
	cfg := DefaultEngineConfig()
	cfg.CountThreshold = 5
	engine, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if engine.CreateDictionaryEntry("rare", 2) {
		t.Fatal("staged entry below threshold should not report a new live entry")
	}
	if _, ok := engine.dict.live["rare"]; ok {
		t.Fatal("entry below threshold should not be live yet")
	}
	if !engine.CreateDictionaryEntry("rare", 3) {
		t.Fatal("accumulating staged count to threshold should create a live entry")
	}
	if count := engine.dict.live["rare"]; count != 5 {
		t.Errorf("promoted entry count = %d, want 5 (2+3)", count)
	}
	if _, staged := engine.dict.staging["rare"]; staged {
		t.Fatal("promoted entry must be removed from staging")
	}
}

func TestCreateDictionaryEntrySaturates(t *testing.T) {
	cfg := DefaultEngineConfig()
	engine, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	engine.CreateDictionaryEntry("big", 1<<62)
	engine.CreateDictionaryEntry("big", 1<<62)
	got := engine.dict.live["big"]
	want := int64(1<<63 - 1)
	if got != want {
		t.Errorf("saturating accumulate = %d, want clamp at %d", got, want)
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	tests := []EngineConfig{
		{InitialCapacity: -1, MaxDictionaryEditDistance: 2, PrefixLength: 7},
		{MaxDictionaryEditDistance: -1, PrefixLength: 7},
		{MaxDictionaryEditDistance: 2, PrefixLength: 0},
		{MaxDictionaryEditDistance: 2, PrefixLength: 2},
		{MaxDictionaryEditDistance: 2, PrefixLength: 7, CountThreshold: -1},
		{MaxDictionaryEditDistance: 2, PrefixLength: 7, CompactLevel: 17},
	}
	for _, cfg := range tests {
		if _, err := New(cfg); err == nil {
			t.Errorf("New(%+v) should have rejected invalid configuration", cfg)
		}
	}
}

func TestVerbosityString(t *testing.T) {
	tests := map[Verbosity]string{Top: "top", Closest: "closest", All: "all"}
	for v, want := range tests {
		if got := v.String(); got != want {
			t.Errorf("Verbosity(%d).String() = %q, want %q", v, got, want)
		}
	}
}

func TestSuggestItemsOrder(t *testing.T) {
	items := SuggestItems{
		{Term: "b", Distance: 1, Count: 10},
		{Term: "a", Distance: 1, Count: 10},
		{Term: "c", Distance: 0, Count: 1},
		{Term: "d", Distance: 1, Count: 20},
	}
	want := []string{"c", "d", "a", "b"}
	sort.Sort(items)
	for i, term := range want {
		if items[i].Term != term {
			t.Errorf("items[%d].Term = %q, want %q", i, items[i].Term, term)
		}
	}
}

func TestCorrectorCorrectsPhrase(t *testing.T) {
	engine := buildSpecDictionary(t)
	corrector := NewCorrector(engine, 2, false)

	corrected, item, err := corrector.CorrectPhrase("teh quikc broown fox")
	if err != nil {
		t.Fatalf("CorrectPhrase: %v", err)
	}
	if corrected != "the quick brown fox" {
		t.Errorf("CorrectPhrase = %q, want %q", corrected, "the quick brown fox")
	}
	if item.Term != corrected {
		t.Errorf("item.Term = %q, want %q", item.Term, corrected)
	}
}
