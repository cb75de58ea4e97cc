package salondata

import "testing"

func TestNewFakerNamesDeterministic(t *testing.T) {
	a := NewFakerNames(99)
	b := NewFakerNames(99)

	for i := 0; i < 50; i++ {
		for _, g := range Genders {
			if got, want := a.FirstName(g), b.FirstName(g); got != want {
				t.Fatalf("draw %d: first name %q != %q for gender %s", i, got, want, g)
			}
		}
		if got, want := a.LastName(), b.LastName(); got != want {
			t.Fatalf("draw %d: last name %q != %q", i, got, want)
		}
	}
}

func TestNewFakerNamesNonEmpty(t *testing.T) {
	names := NewFakerNames(1)
	for _, g := range Genders {
		if names.FirstName(g) == "" {
			t.Errorf("empty first name for gender %s", g)
		}
	}
	if names.LastName() == "" {
		t.Error("empty last name")
	}
}

func TestSeedFromString(t *testing.T) {
	if SeedFromString("pasta") != SeedFromString("pasta") {
		t.Error("same string produced different seeds")
	}
	if SeedFromString("pasta") == SeedFromString("pizza") {
		t.Error("different strings produced the same seed")
	}
}
