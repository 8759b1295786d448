package seed

import "testing"

func TestModIsStableAndInRange(t *testing.T) {
	keys := []string{"", "0363010000000001", "Utrecht-Utrecht", "Amsterdam-Amsterdam"}
	for _, key := range keys {
		first := Mod(key, 70)
		for i := 0; i < 5; i++ {
			if got := Mod(key, 70); got != first {
				t.Fatalf("key %q: expected stable seed %d, got %d", key, first, got)
			}
		}
		if first < 0 || first >= 70 {
			t.Fatalf("key %q: seed %d out of range", key, first)
		}
	}
}

func TestHashDiffersPerKey(t *testing.T) {
	if Hash("Utrecht-Utrecht") == Hash("Utrecht-Amersfoort") {
		t.Fatalf("expected different hashes for different keys")
	}
}
