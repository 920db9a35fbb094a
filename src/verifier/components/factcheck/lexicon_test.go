package factcheck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/truthlens/truthlens/src/verifier/types"
)

func TestNormalizeRating(t *testing.T) {
	cases := []struct {
		raw  string
		want types.Rating
	}{
		{"True", types.RatingTrue},
		{"Mostly True", types.RatingTrue},
		{"Correct", types.RatingTrue},
		{"Accurate.", types.RatingTrue},
		{"False", types.RatingFalse},
		{"Mostly False", types.RatingFalse},
		{"PANTS ON FIRE!", types.RatingFalse},
		{"Incorrect", types.RatingFalse},
		{"Wrong", types.RatingFalse},
		{"Misleading", types.RatingMisleading},
		{"Half True", types.RatingMisleading},
		{"Partly false", types.RatingMisleading},
		{"Mixture", types.RatingMisleading},
		{"Taken out of context", types.RatingMisleading},
		{"Unproven", types.RatingUnverifiable},
		{"Unverified claims", types.RatingUnverifiable},
		{"No evidence", types.RatingUnverifiable},
		{"Needs Context", types.RatingUnverifiable},
	}
	for _, tc := range cases {
		got, ok := NormalizeRating(tc.raw)
		assert.True(t, ok, tc.raw)
		assert.Equal(t, tc.want, got, tc.raw)
	}
}

// Already-normalized labels resolve to themselves on the lexicon path.
func TestNormalizeRatingIdempotent(t *testing.T) {
	for _, rating := range []types.Rating{
		types.RatingTrue,
		types.RatingFalse,
		types.RatingMisleading,
		types.RatingUnverifiable,
	} {
		got, ok := NormalizeRating(string(rating))
		assert.True(t, ok, rating)
		assert.Equal(t, rating, got, rating)
	}
}

// Specific phrases win before the generic phrases they contain.
func TestNormalizeRatingOrdering(t *testing.T) {
	got, _ := NormalizeRating("mostly false")
	assert.Equal(t, types.RatingFalse, got)

	got, _ = NormalizeRating("half true")
	assert.Equal(t, types.RatingMisleading, got)

	got, _ = NormalizeRating("incorrect")
	assert.Equal(t, types.RatingFalse, got)
}

// Matching is substring, not whole-word; these known mis-fires are part of
// the contract.
func TestNormalizeRatingSubstringBehavior(t *testing.T) {
	got, ok := NormalizeRating("inaccurate")
	assert.True(t, ok)
	assert.Equal(t, types.RatingTrue, got)
}

func TestNormalizeRatingNoMatch(t *testing.T) {
	_, ok := NormalizeRating("Four Pinocchios")
	assert.False(t, ok)

	_, ok = NormalizeRating("")
	assert.False(t, ok)

	_, ok = NormalizeRating("   ")
	assert.False(t, ok)
}
