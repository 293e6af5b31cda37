package symspell

import "testing"

func TestParseWords(t *testing.T) {
	got := parseWords("The Quick-Brown fox's NASA2", false)
	want := []string{"the", "quick", "brown", "fox's", "nasa2"}
	if len(got) != len(want) {
		t.Fatalf("parseWords = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("parseWords[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestParseWordsPreserveCase(t *testing.T) {
	got := parseWords("Hello World", true)
	if got[0] != "Hello" || got[1] != "World" {
		t.Errorf("parseWords preserveCase = %v, want [Hello World]", got)
	}
}

func TestTryParseInt64(t *testing.T) {
	if n, ok := tryParseInt64("42"); !ok || n != 42 {
		t.Errorf("tryParseInt64(42) = (%d, %v), want (42, true)", n, ok)
	}
	if _, ok := tryParseInt64("not-a-number"); ok {
		t.Error("tryParseInt64 on non-numeric input should fail")
	}
}

func TestIsAcronym(t *testing.T) {
	if !isAcronym("NASA") {
		t.Error("NASA should be recognized as an acronym")
	}
	if !isAcronym("A1") {
		t.Error("A1 should be recognized as an acronym")
	}
	if isAcronym("Nasa") {
		t.Error("mixed-case word should not be an acronym")
	}
	if isAcronym("I") {
		t.Error("single-character token should not match the acronym pattern")
	}
}
