package ratelimit

import "testing"

func TestAllowConsumesCapacity(t *testing.T) {
	l := New()

	for i := 0; i < 3; i++ {
		if !l.Allow("yahoo", 3, 0) {
			t.Fatalf("call %d should be allowed", i)
		}
	}
	if l.Allow("yahoo", 3, 0) {
		t.Fatal("bucket should be empty")
	}
}

func TestAllowKeysAreIndependent(t *testing.T) {
	l := New()

	if !l.Allow("yahoo", 1, 0) {
		t.Fatal("first yahoo call should be allowed")
	}
	if l.Allow("yahoo", 1, 0) {
		t.Fatal("yahoo bucket should be empty")
	}
	if !l.Allow("fmp", 1, 0) {
		t.Fatal("fmp bucket should be untouched")
	}
}
