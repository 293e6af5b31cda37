package symspell

import "testing"

func TestEditsPrefixIncludesIdentity(t *testing.T) {
	variants := editsPrefix("member", 2, 7)
	if _, ok := variants["member"]; !ok {
		t.Error("editsPrefix must include the untouched prefix itself")
	}
}

func TestEditsPrefixIncludesEmptyWhenShortEnough(t *testing.T) {
	variants := editsPrefix("ab", 2, 7)
	if _, ok := variants[""]; !ok {
		t.Error("editsPrefix should include the empty string when len(key) <= maxEditDistance")
	}
}

func TestEditsPrefixExcludesEmptyWhenTooLong(t *testing.T) {
	variants := editsPrefix("members", 1, 7)
	if _, ok := variants[""]; ok {
		t.Error("editsPrefix should not include the empty string when len(key) > maxEditDistance")
	}
}

func TestCompactMaskFor(t *testing.T) {
	tests := []struct {
		level int
		want  uint32
	}{
		{0, (uint32(0xFFFFFFFF) >> 3) << 2},
		{16, (uint32(0xFFFFFFFF) >> 19) << 2},
	}
	for _, tt := range tests {
		if got := compactMaskFor(tt.level); got != tt.want {
			t.Errorf("compactMaskFor(%d) = %#x, want %#x", tt.level, got, tt.want)
		}
	}
}

func TestGetStringHashEncodesLengthTag(t *testing.T) {
	idx := newDeleteIndex(0)
	tests := []struct {
		s    string
		want uint32
	}{
		{"", 0},
		{"a", 1},
		{"ab", 2},
		{"abcdef", 3},
	}
	for _, tt := range tests {
		if got := idx.getStringHash(tt.s) & 3; got != tt.want {
			t.Errorf("getStringHash(%q) low 2 bits = %d, want %d", tt.s, got, tt.want)
		}
	}
}

func TestDeleteIndexInsertRecordsIdentityVariant(t *testing.T) {
	idx := newDeleteIndex(0)
	idx.insert("member", 7, 2)

	h := idx.getStringHash("member")
	found := false
	for _, term := range idx.lookup(h) {
		if term == "member" {
			found = true
		}
	}
	if !found {
		t.Error("insert must record the term's own prefix as a delete variant")
	}
}
