package phonenumber

import (
	"regexp"
	"strings"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
)

// defaultCacheSize bounds how many compiled patterns a cache keeps. Metadata
// for all bundled regions compiles to well under this.
const defaultCacheSize = 512

// RegexCache compiles metadata patterns on demand and keeps the most
// recently used ones. Patterns in the metadata use free-spacing layout, so
// whitespace is stripped before compiling.
type RegexCache struct {
	mu    sync.Mutex
	cache *lru.Cache[string, *regexp.Regexp]
}

// NewRegexCache returns a cache bounded to size compiled patterns.
func NewRegexCache(size int) (*RegexCache, error) {
	if size <= 0 {
		size = defaultCacheSize
	}
	cache, err := lru.New[string, *regexp.Regexp](size)
	if err != nil {
		return nil, err
	}
	return &RegexCache{cache: cache}, nil
}

// Get returns the compiled form of pattern, compiling and caching it on
// first use.
func (c *RegexCache) Get(pattern string) (*regexp.Regexp, error) {
	key := stripPatternSpace(pattern)

	c.mu.Lock()
	defer c.mu.Unlock()

	if re, ok := c.cache.Get(key); ok {
		return re, nil
	}
	re, err := regexp.Compile(key)
	if err != nil {
		return nil, err
	}
	c.cache.Add(key, re)
	return re, nil
}

// Len reports how many compiled patterns the cache currently holds.
func (c *RegexCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cache.Len()
}

// stripPatternSpace removes the whitespace that metadata patterns use for
// readability. Phone patterns never match literal whitespace, it only ever
// appears inside classes like validPunctuation which the metadata does not
// use.
func stripPatternSpace(pattern string) string {
	if !strings.ContainsAny(pattern, " \t\n\r") {
		return pattern
	}
	var b strings.Builder
	b.Grow(len(pattern))
	for _, r := range pattern {
		switch r {
		case ' ', '\t', '\n', '\r':
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// CachedPattern pairs a pattern source with the cache that compiles it. The
// zero source matches nothing.
type CachedPattern struct {
	cache  *RegexCache
	source string
}

// Source returns the raw pattern text.
func (p CachedPattern) Source() string {
	return p.source
}

// IsZero reports whether the pattern is absent.
func (p CachedPattern) IsZero() bool {
	return p.source == ""
}

// Regexp compiles the pattern through the cache.
func (p CachedPattern) Regexp() (*regexp.Regexp, error) {
	if p.source == "" {
		return nil, nil
	}
	return p.cache.Get(p.source)
}

// Anchored compiles the pattern wrapped so it only matches the whole input.
func (p CachedPattern) Anchored() (*regexp.Regexp, error) {
	if p.source == "" {
		return nil, nil
	}
	return p.cache.Get(`^(?:` + p.source + `)$`)
}

// MatchesFully reports whether s as a whole matches the pattern. An absent
// or uncompilable pattern matches nothing.
func (p CachedPattern) MatchesFully(s string) bool {
	re, err := p.Anchored()
	if err != nil || re == nil {
		return false
	}
	return re.MatchString(s)
}

// MatchesAt reports whether the pattern matches a prefix of s starting at
// offset zero.
func (p CachedPattern) MatchesAt(s string) bool {
	re, err := p.Regexp()
	if err != nil || re == nil {
		return false
	}
	loc := re.FindStringIndex(s)
	return loc != nil && loc[0] == 0
}
