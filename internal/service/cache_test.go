package service

import (
	"strings"
	"testing"
)

func TestCacheKeyDeterministic(t *testing.T) {
	a := cacheKey("hello world", 2, 1)
	b := cacheKey("hello world", 2, 1)
	if a != b {
		t.Fatalf("identical parameters must hash identically: %q %q", a, b)
	}
	if !strings.HasPrefix(a, "playlist:") {
		t.Fatalf("keys must carry the namespace prefix: %q", a)
	}
}

func TestCacheKeyDistinguishesParameters(t *testing.T) {
	base := cacheKey("hello", 1, 2)
	for _, other := range []string{
		cacheKey("hello!", 1, 2),
		cacheKey("hello", 2, 2),
		cacheKey("hello", 1, 3),
		cacheKey("hello|1", 1, 2),
	} {
		if other == base {
			t.Fatalf("distinct parameters must not collide: %q", base)
		}
	}
}
