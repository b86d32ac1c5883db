package game

import (
	"golang.org/x/exp/rand"
)

// Dice is the randomness provider for combat. *rand.Rand satisfies it.
type Dice interface {
	// Intn returns a random int in [0, n).
	Intn(n int) int
}

// NewDice returns a pseudo-random source seeded with seed.
func NewDice(seed uint64) Dice {
	return rand.New(rand.NewSource(seed))
}

// Roll throws one die with the given number of sides, returning a value in [1, sides].
func Roll(dice Dice, sides int) int {
	return dice.Intn(sides) + 1
}
