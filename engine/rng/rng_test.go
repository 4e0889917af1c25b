package rng

import "testing"

func TestDeterministic(t *testing.T) {
	a := New(42)
	b := New(42)

	for i := 0; i < 50; i++ {
		x := a.Roll(6)
		y := b.Roll(6)
		if x != y {
			t.Fatalf("roll %d: got %d and %d from same seed", i, x, y)
		}
	}
}

func TestRoll_Range(t *testing.T) {
	r := New(99)

	for i := 0; i < 1000; i++ {
		v := r.Roll(6)
		if v < 1 || v > 6 {
			t.Fatalf("roll out of range [1,6]: got %d", v)
		}
	}
}

func TestRoll_OneSided(t *testing.T) {
	r := New(1)

	for i := 0; i < 10; i++ {
		if v := r.Roll(1); v != 1 {
			t.Fatalf("1-sided die should always be 1, got %d", v)
		}
	}
}

func TestFlip_OnlyEvenOrOdd(t *testing.T) {
	r := New(7)
	seen := map[string]bool{}

	for i := 0; i < 200; i++ {
		v := r.Flip()
		if v != "even" && v != "odd" {
			t.Fatalf("unexpected flip value %q", v)
		}
		seen[v] = true
	}
	if !seen["even"] || !seen["odd"] {
		t.Errorf("expected both parities over 200 flips, got %v", seen)
	}
}

func TestPosition_CountsCalls(t *testing.T) {
	r := New(5)
	r.Roll(6)
	r.Intn(10)
	r.Flip()

	if r.Position() != 3 {
		t.Errorf("expected position 3, got %d", r.Position())
	}
}

func TestRestore_SurvivesMixedCallKinds(t *testing.T) {
	// Non-power-of-two bounds and mixed call kinds must not desync
	// the replay: each call consumes exactly one source draw.
	orig := New(88)
	for i := 0; i < 30; i++ {
		orig.Roll(6)
		orig.Intn(7)
		orig.Flip()
		orig.Roll(3)
	}

	restored := Restore(88, orig.Position())

	for i := 0; i < 30; i++ {
		if a, b := orig.Roll(5), restored.Roll(5); a != b {
			t.Fatalf("roll %d after restore: got %d, want %d", i, b, a)
		}
		if a, b := orig.Intn(11), restored.Intn(11); a != b {
			t.Fatalf("intn %d after restore: got %d, want %d", i, b, a)
		}
		if a, b := orig.Flip(), restored.Flip(); a != b {
			t.Fatalf("flip %d after restore: got %s, want %s", i, b, a)
		}
	}
}

func TestRestore_ReproducesSequence(t *testing.T) {
	orig := New(1234)
	for i := 0; i < 17; i++ {
		orig.Roll(20)
	}

	restored := Restore(1234, orig.Position())

	for i := 0; i < 20; i++ {
		a := orig.Roll(20)
		b := restored.Roll(20)
		if a != b {
			t.Fatalf("call %d after restore: got %d, want %d", i, b, a)
		}
	}
}
