package phonenumber

import "testing"

func TestRegexCacheGet(t *testing.T) {
	cache, err := NewRegexCache(8)
	if err != nil {
		t.Fatalf("NewRegexCache: %v", err)
	}

	first, err := cache.Get(`\d{2}`)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	second, err := cache.Get(`\d{2}`)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if first != second {
		t.Fatal("expected the cached regexp on the second lookup")
	}
	if cache.Len() != 1 {
		t.Fatalf("cache holds %d entries, want 1", cache.Len())
	}
}

func TestRegexCacheStripsWhitespace(t *testing.T) {
	cache, err := NewRegexCache(8)
	if err != nil {
		t.Fatalf("NewRegexCache: %v", err)
	}

	// Metadata patterns come pretty-printed; the cache keys on the
	// condensed form.
	spaced, err := cache.Get("\\d{2}\n  \\d{3}")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	plain, err := cache.Get(`\d{2}\d{3}`)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if spaced != plain {
		t.Fatal("whitespace variants should share an entry")
	}
	if !spaced.MatchString("12345") {
		t.Fatal("condensed pattern should match")
	}
}

func TestRegexCacheInvalidPattern(t *testing.T) {
	cache, err := NewRegexCache(8)
	if err != nil {
		t.Fatalf("NewRegexCache: %v", err)
	}
	if _, err := cache.Get(`(`); err == nil {
		t.Fatal("expected a compile error")
	}
}

func TestCachedPatternMatching(t *testing.T) {
	cache, err := NewRegexCache(8)
	if err != nil {
		t.Fatalf("NewRegexCache: %v", err)
	}

	var zero CachedPattern
	if !zero.IsZero() {
		t.Fatal("zero value should report IsZero")
	}

	// An unanchored leftmost match would stop at the first alternative.
	p := CachedPattern{cache: cache, source: `1|12`}
	if !p.MatchesFully("12") {
		t.Fatal("MatchesFully should try the longer alternative")
	}
	if p.MatchesFully("123") {
		t.Fatal("MatchesFully should reject trailing input")
	}

	q := CachedPattern{cache: cache, source: `\d{2}`}
	if !q.MatchesAt("12a") {
		t.Fatal("MatchesAt should accept a match at the start")
	}
	if q.MatchesAt("a12") {
		t.Fatal("MatchesAt should reject a match past the start")
	}
}

func TestParseRegionNames(t *testing.T) {
	tests := []struct {
		input string
		want  Region
	}{
		{"NZ", NZ},
		{"nz", NZ},
		{"001", RegionNonGeographic},
	}

	for _, tt := range tests {
		got, err := ParseRegion(tt.input)
		if err != nil {
			t.Fatalf("ParseRegion(%q): %v", tt.input, err)
		}
		if got != tt.want {
			t.Fatalf("ParseRegion(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}

	if _, err := ParseRegion("not a region"); err == nil {
		t.Fatal("expected an error for a malformed region")
	}
}
