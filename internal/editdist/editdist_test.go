package editdist

import "testing"

func TestCompareEqualStrings(t *testing.T) {
	c := NewComparer()
	for _, s := range []string{"", "a", "hello", "transposition"} {
		if got := c.Compare(s, s, 5); got != 0 {
			t.Errorf("Compare(%q, %q, 5) = %d, want 0", s, s, got)
		}
	}
}

func TestCompareSymmetric(t *testing.T) {
	c := NewComparer()
	pairs := [][2]string{
		{"the", "teh"},
		{"kitten", "sitting"},
		{"brown", "borwn"},
		{"", "abc"},
		{"abcdef", "xyz"},
	}
	for _, p := range pairs {
		a := c.Compare(p[0], p[1], 10)
		b := c.Compare(p[1], p[0], 10)
		if a != b {
			t.Errorf("Compare(%q,%q)=%d but Compare(%q,%q)=%d, want symmetric", p[0], p[1], a, p[1], p[0], b)
		}
	}
}

func TestCompareKnownDistances(t *testing.T) {
	tests := []struct {
		a, b string
		max  int
		want int
	}{
		{"the", "teh", 2, 1},       // adjacent transposition
		{"member", "membr", 2, 1},  // single deletion
		{"kitten", "sitting", 5, 3},
		{"", "", 5, 0},
		{"a", "", 5, 1},
		{"", "a", 5, 1},
		{"abc", "abc", 0, 0},
		{"abc", "abd", 0, -1},
	}
	c := NewComparer()
	for _, tt := range tests {
		got := c.Compare(tt.a, tt.b, tt.max)
		if got != tt.want {
			t.Errorf("Compare(%q, %q, %d) = %d, want %d", tt.a, tt.b, tt.max, got, tt.want)
		}
	}
}

func TestCompareExceedsMaxReturnsNegativeOne(t *testing.T) {
	c := NewComparer()
	if got := c.Compare("aaaaaaaaaa", "bbbbbbbbbb", 3); got != -1 {
		t.Errorf("Compare with distance > max = %d, want -1", got)
	}
}

func TestCompareBoundedMatchesUnbounded(t *testing.T) {
	pairs := [][2]string{
		{"symmetric", "symetric"},
		{"delete", "dleete"},
		{"correction", "corection"},
		{"algorithm", "algorithym"},
	}
	for _, p := range pairs {
		unbounded := NewComparer().Compare(p[0], p[1], 1<<20)
		bounded := NewComparer().Compare(p[0], p[1], unbounded)
		if bounded != unbounded {
			t.Errorf("Compare(%q,%q, unbounded=%d) at bound = %d, want %d", p[0], p[1], unbounded, bounded, unbounded)
		}
		if unbounded > 0 {
			tooTight := NewComparer().Compare(p[0], p[1], unbounded-1)
			if tooTight != -1 {
				t.Errorf("Compare(%q,%q, %d) = %d, want -1", p[0], p[1], unbounded-1, tooTight)
			}
		}
	}
}
