package engine

import (
	"math/rand"
	"slices"
	"testing"
)

func TestShufflePermutes(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	palette := DefaultConfig().Palette

	for n := 3; n <= 7; n++ {
		items := slices.Clone(palette[:n])
		got := Shuffle(slices.Clone(items), rng)

		if len(got) != n {
			t.Fatalf("Shuffle length = %d, expected %d", len(got), n)
		}
		sortedGot := slices.Clone(got)
		slices.Sort(sortedGot)
		slices.Sort(items)
		if !slices.Equal(sortedGot, items) {
			t.Errorf("Shuffle(%d) changed the multiset: %v", n, got)
		}
	}
}

func TestShuffleEdgeCases(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	if got := Shuffle([]int{}, rng); len(got) != 0 {
		t.Errorf("Shuffle(empty) = %v, expected empty", got)
	}
	if got := Shuffle([]int{42}, rng); len(got) != 1 || got[0] != 42 {
		t.Errorf("Shuffle([42]) = %v, expected [42]", got)
	}
}

func TestShuffleUniform(t *testing.T) {
	const trials = 20000
	rng := rand.New(rand.NewSource(7))

	for n := 3; n <= 7; n++ {
		counts := make([][]int, n) // counts[position][item]
		for i := range counts {
			counts[i] = make([]int, n)
		}

		base := make([]int, n)
		for i := range base {
			base[i] = i
		}
		for range trials {
			perm := Shuffle(slices.Clone(base), rng)
			for pos, item := range perm {
				counts[pos][item]++
			}
		}

		expected := float64(trials) / float64(n)
		for pos := range counts {
			for item, c := range counts[pos] {
				if dev := (float64(c) - expected) / expected; dev > 0.1 || dev < -0.1 {
					t.Errorf("n=%d: item %d at position %d seen %d times, expected about %.0f", n, item, pos, c, expected)
				}
			}
		}
	}
}

func TestShuffleLeavesSourceUntouched(t *testing.T) {
	palette := DefaultConfig().Palette
	before := slices.Clone(palette)

	if _, err := CreateSpecs(7, palette, 7, rand.New(rand.NewSource(3))); err != nil {
		t.Fatalf("CreateSpecs() failed: %v", err)
	}
	if !slices.Equal(palette, before) {
		t.Errorf("palette mutated: %v, expected %v", palette, before)
	}
}
