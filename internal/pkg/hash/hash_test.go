package hash

import (
	"strings"
	"testing"
)

func TestDigest_Deterministic(t *testing.T) {
	if Digest("password1") != Digest("password1") {
		t.Fatalf("same input produced different digests")
	}
}

func TestDigest_DistinctInputs(t *testing.T) {
	if Digest("password1") == Digest("password2") {
		t.Fatalf("distinct inputs collided")
	}
}

func TestDigest_Format(t *testing.T) {
	for _, in := range []string{"", "a", strings.Repeat("x", 10_000)} {
		d := Digest(in)
		if len(d) != 64 {
			t.Fatalf("digest of %d-byte input has length %d, want 64", len(in), len(d))
		}
		if d != strings.ToLower(d) {
			t.Fatalf("digest is not lowercase: %s", d)
		}
	}
}
