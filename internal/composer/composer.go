// Package composer assembles affirmation texts from fixed phrase banks.
//
// Compose is a pure function of its input and the draws it takes from the
// supplied RandomSource, so a scripted or seeded source reproduces output
// byte for byte.
package composer

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
)

// InclusionProbability is the chance that a non-empty fear or blessing
// section makes it into the text.
const InclusionProbability = 0.8

// ErrEmptyField is returned when a required input field is blank.
var ErrEmptyField = errors.New("required field is empty")

// RandomSource supplies uniform draws. *rand.Rand from math/rand/v2
// satisfies it.
type RandomSource interface {
	// IntN returns a value in [0, n).
	IntN(n int) int
	// Float64 returns a value in [0.0, 1.0).
	Float64() float64
}

// Input holds the form fields an affirmation is built from.
type Input struct {
	Desire   string
	Fear     string
	Blessing string
	Outcome  string
	Address  string
}

type globalSource struct{}

func (globalSource) IntN(n int) int   { return rand.IntN(n) }
func (globalSource) Float64() float64 { return rand.Float64() }

// DefaultSource returns a RandomSource backed by the math/rand/v2 top-level
// generator. It is safe for concurrent use.
func DefaultSource() RandomSource {
	return globalSource{}
}

// Compose builds an affirmation for in. Desire and Outcome must be non-blank.
func Compose(in Input, rng RandomSource) (string, error) {
	if strings.TrimSpace(in.Desire) == "" {
		return "", fmt.Errorf("desire: %w", ErrEmptyField)
	}
	if strings.TrimSpace(in.Outcome) == "" {
		return "", fmt.Errorf("outcome: %w", ErrEmptyField)
	}
	if rng == nil {
		rng = DefaultSource()
	}

	var b strings.Builder

	var opening string
	if in.Address != "" {
		opening = fmt.Sprintf(pick(rng, addressOpenings), in.Address)
	} else {
		opening = pick(rng, openings)
	}
	b.WriteString(opening)
	b.WriteString(" ")

	if in.Address == "" || !strings.Contains(opening, in.Address) {
		b.WriteString(pick(rng, identities))
		b.WriteString(". ")
	}

	b.WriteString(fmt.Sprintf(pick(rng, desireOpeners), in.Desire))
	b.WriteString(" ")
	b.WriteString(pick(rng, desireMeanings))
	b.WriteString(". ")

	if in.Fear != "" && include(rng) {
		b.WriteString(fmt.Sprintf(pick(rng, fearTransformations), in.Fear))
		b.WriteString(". ")
	}

	if in.Blessing != "" && include(rng) {
		b.WriteString(fmt.Sprintf(pick(rng, blessingIntegrations), in.Blessing))
		b.WriteString(". ")
	}

	b.WriteString(fmt.Sprintf(pick(rng, outcomePhrases), in.Outcome))
	b.WriteString(". ")

	k := rng.IntN(2) + 1
	for i := 0; i < k; i++ {
		b.WriteString(pick(rng, empowermentPhrases))
		b.WriteString(" ")
	}

	b.WriteString(pick(rng, closings))

	return b.String(), nil
}

func pick(rng RandomSource, bank []string) string {
	return bank[rng.IntN(len(bank))]
}

func include(rng RandomSource) bool {
	return rng.Float64() < InclusionProbability
}
