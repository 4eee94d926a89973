package random

import (
	"strings"
	"testing"
)

func TestStringSecure(t *testing.T) {
	for _, n := range []int{0, 1, 32, 64} {
		s, err := StringSecure(n)
		if err != nil {
			t.Fatal(err)
		}
		if len(s) != n {
			t.Fatalf("expected length %d, got %d", n, len(s))
		}
		for _, r := range s {
			if !strings.ContainsRune(charset, r) {
				t.Fatalf("unexpected rune %q in %q", r, s)
			}
		}
	}
}
