package service

import (
	"math/rand"

	"github.com/lshigami/Olingo/internal/model"
)

// ShuffleChoices returns a fresh uniformly random permutation of choices for
// display. The input slice is never mutated, so the canonical stored order
// stays intact, and each call produces an independent permutation: two
// learners rendering the same question concurrently may see different orders.
// Shuffling is display-only and must never reach the grading path.
func ShuffleChoices(choices []model.Choice) []model.Choice {
	shuffled := make([]model.Choice, len(choices))
	copy(shuffled, choices)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled
}
