package engine

// Source is the randomness the engine draws from. *math/rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
	Float64() float64
}

// Shuffle permutes items in place with Fisher-Yates and returns the same slice.
// Callers that must not disturb shared data shuffle a copy.
func Shuffle[T any](items []T, rng Source) []T {
	for i := len(items) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		items[i], items[j] = items[j], items[i]
	}
	return items
}
