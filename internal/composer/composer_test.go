package composer_test

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"testing"

	"affirm/internal/composer"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedSource replays fixed draws and falls back to zero once exhausted.
type scriptedSource struct {
	ints   []int
	floats []float64
}

func (s *scriptedSource) IntN(n int) int {
	if len(s.ints) == 0 {
		return 0
	}
	v := s.ints[0]
	s.ints = s.ints[1:]
	return v % n
}

func (s *scriptedSource) Float64() float64 {
	if len(s.floats) == 0 {
		return 0
	}
	v := s.floats[0]
	s.floats = s.floats[1:]
	return v
}

func seeded(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed*31+7))
}

func countIdentities(text string) int {
	n := 0
	for _, p := range composer.Phrases(composer.BankIdentities) {
		n += strings.Count(text, p)
	}
	return n
}

func TestCompose_ForcedDrawsProduceExactText(t *testing.T) {
	in := composer.Input{
		Desire:   "peace",
		Fear:     "failure",
		Blessing: "Athena",
		Outcome:  "to be happy",
	}

	text, err := composer.Compose(in, &scriptedSource{})
	require.NoError(t, err)

	expected := "You are a magnificent being of infinite potential. " +
		"Your longing for peace is not just a wish—it's a calling from your soul. " +
		"The fear of failure is like a shadow that disappears when you turn on the light of your awareness. " +
		"With the sacred energy of Athena flowing through you, you are divinely supported. " +
		"Your vision of to be happy is already taking shape in the quantum field of possibilities. " +
		"Every breath you take, every step you make, you are co-creating this reality " +
		"You are exactly where you need to be, and everything is unfolding perfectly."
	assert.Equal(t, expected, text)
}

func TestCompose_OptionalSectionsFollowInclusionDraws(t *testing.T) {
	in := composer.Input{Desire: "peace", Fear: "failure", Blessing: "Athena", Outcome: "to be happy"}

	tests := []struct {
		name         string
		floats       []float64
		wantFear     bool
		wantBlessing bool
	}{
		{"both included", []float64{0.1, 0.79}, true, true},
		{"fear only", []float64{0.5, 0.8}, true, false},
		{"blessing only", []float64{0.95, 0.0}, false, true},
		{"neither", []float64{0.8, 0.99}, false, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			text, err := composer.Compose(in, &scriptedSource{floats: tc.floats})
			require.NoError(t, err)
			assert.Equal(t, tc.wantFear, strings.Contains(text, "failure"))
			assert.Equal(t, tc.wantBlessing, strings.Contains(text, "Athena"))
			assert.Contains(t, text, "peace")
			assert.Contains(t, text, "to be happy")
		})
	}
}

func TestCompose_EmptyOptionalFieldsTakeNoDraws(t *testing.T) {
	// With no fear or blessing, the only float draws would be inclusion
	// checks; a source that panics on Float64 proves none are taken.
	src := &panicOnFloat{}
	text, err := composer.Compose(composer.Input{Desire: "love", Outcome: "a family"}, src)
	require.NoError(t, err)
	assert.Contains(t, text, "love")
	assert.Contains(t, text, "a family")
}

type panicOnFloat struct{ scriptedSource }

func (p *panicOnFloat) Float64() float64 { panic("unexpected inclusion draw") }

func TestCompose_AddressSkipsIdentity(t *testing.T) {
	for seed := uint64(1); seed <= 200; seed++ {
		withAddress, err := composer.Compose(composer.Input{Desire: "peace", Outcome: "calm", Address: "Maya"}, seeded(seed))
		require.NoError(t, err)
		assert.Contains(t, withAddress, "Maya")
		assert.Equal(t, 0, countIdentities(withAddress), "seed %d: %s", seed, withAddress)

		without, err := composer.Compose(composer.Input{Desire: "peace", Outcome: "calm"}, seeded(seed))
		require.NoError(t, err)
		assert.Equal(t, 1, countIdentities(without), "seed %d: %s", seed, without)
	}
}

func TestCompose_EmpowermentCount(t *testing.T) {
	in := composer.Input{Desire: "peace", Outcome: "calm"}
	empowerment := composer.Phrases(composer.BankEmpowermentPhrases)

	// opening, identity, desire opener, desire meaning, outcome, k, phrases..., closing
	one, err := composer.Compose(in, &scriptedSource{ints: []int{0, 0, 0, 0, 0, 0, 4, 0}})
	require.NoError(t, err)
	assert.Contains(t, one, empowerment[4]+" ")
	assert.NotContains(t, one, empowerment[5])

	two, err := composer.Compose(in, &scriptedSource{ints: []int{0, 0, 0, 0, 0, 1, 2, 3, 0}})
	require.NoError(t, err)
	assert.Contains(t, two, empowerment[2]+" "+empowerment[3]+" ")
}

func TestCompose_DeterministicWithSeed(t *testing.T) {
	in := composer.Input{Desire: "courage", Fear: "the dark", Blessing: "my grandmother", Outcome: "a brave life", Address: "friend"}
	for seed := uint64(1); seed <= 25; seed++ {
		a, err := composer.Compose(in, seeded(seed))
		require.NoError(t, err)
		b, err := composer.Compose(in, seeded(seed))
		require.NoError(t, err)
		assert.Equal(t, a, b)
	}
}

func TestCompose_RequiredFields(t *testing.T) {
	_, err := composer.Compose(composer.Input{Outcome: "calm"}, seeded(1))
	assert.ErrorIs(t, err, composer.ErrEmptyField)
	assert.Contains(t, err.Error(), "desire")

	_, err = composer.Compose(composer.Input{Desire: "peace", Outcome: "   "}, seeded(1))
	assert.ErrorIs(t, err, composer.ErrEmptyField)
	assert.Contains(t, err.Error(), "outcome")
}

func TestCompose_InputsAppearVerbatim(t *testing.T) {
	in := composer.Input{Desire: "100% focus", Fear: "being 50% wrong", Blessing: "Guru Nanak", Outcome: "a calm {mind}", Address: "warrior"}
	text, err := composer.Compose(in, &scriptedSource{})
	require.NoError(t, err)
	for _, s := range []string{in.Desire, in.Fear, in.Blessing, in.Outcome, in.Address} {
		assert.Contains(t, text, s)
	}
	assert.NotContains(t, text, "%!")
}

func TestPhrases_BankSizes(t *testing.T) {
	sizes := map[composer.Bank]int{
		composer.BankOpenings:             10,
		composer.BankAddressOpenings:      10,
		composer.BankIdentities:           15,
		composer.BankDesireOpeners:        10,
		composer.BankDesireMeanings:       15,
		composer.BankFearTransformations:  9,
		composer.BankBlessingIntegrations: 10,
		composer.BankOutcomePhrases:       10,
		composer.BankEmpowermentPhrases:   15,
		composer.BankClosings:             10,
	}
	for bank, want := range sizes {
		assert.Len(t, composer.Phrases(bank), want, fmt.Sprintf("bank %d", bank))
	}
	assert.Nil(t, composer.Phrases(composer.Bank(99)))
}

func TestPhrases_ReturnsCopy(t *testing.T) {
	p := composer.Phrases(composer.BankClosings)
	p[0] = "mutated"
	assert.NotEqual(t, "mutated", composer.Phrases(composer.BankClosings)[0])
}
