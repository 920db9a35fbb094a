package factcheck

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/truthlens/truthlens/src/ai/core"
	"github.com/truthlens/truthlens/src/verifier/types"
)

type fakeLLM struct {
	resp       string
	err        error
	lastPrompt string
}

func (f *fakeLLM) Complete(_ context.Context, prompt string, _ core.Options) (string, error) {
	f.lastPrompt = prompt
	return f.resp, f.err
}

func TestNormalizeNoReviewIsNotFound(t *testing.T) {
	n := NewNormalizer(nil)

	result := n.Normalize(context.Background(), "some claim", nil)

	assert.False(t, result.Found)
	assert.Empty(t, result.Rating)
}

func TestNormalizeEmptyRatingTextIsNotFound(t *testing.T) {
	n := NewNormalizer(nil)

	result := n.Normalize(context.Background(), "some claim", &Review{Summary: "a summary"})

	assert.False(t, result.Found)
}

func TestNormalizeLexiconPathPassesFieldsThrough(t *testing.T) {
	n := NewNormalizer(nil)
	review := &Review{
		RatingText: "Mostly False",
		Summary:    "The claim was reviewed.",
		Publisher:  "PolitiFact",
		URL:        "https://politifact.com/x",
	}

	result := n.Normalize(context.Background(), "some claim", review)

	assert.True(t, result.Found)
	assert.Equal(t, types.RatingFalse, result.Rating)
	assert.Equal(t, "Mostly False", result.OriginalRating)
	assert.Equal(t, "The claim was reviewed.", result.Summary)
	assert.Equal(t, "PolitiFact", result.Source)
	assert.Equal(t, "https://politifact.com/x", result.URL)
}

func TestNormalizeLexiconMissWithoutModelIsUnverifiable(t *testing.T) {
	n := NewNormalizer(nil)

	result := n.Normalize(context.Background(), "some claim", &Review{RatingText: "Four Pinocchios"})

	assert.True(t, result.Found)
	assert.Equal(t, types.RatingUnverifiable, result.Rating)
}

func TestNormalizeDisambiguationUsesModel(t *testing.T) {
	llm := &fakeLLM{resp: "FALSE"}
	n := NewNormalizer(llm)
	review := &Review{
		RatingText: "Four Pinocchios",
		Summary:    "Reviewed statement about vaccines.",
		Publisher:  "The Washington Post",
		URL:        "https://washingtonpost.com/fact-check",
	}

	result := n.Normalize(context.Background(), "vaccines cause autism", review)

	assert.Equal(t, types.RatingFalse, result.Rating)
	// The prompt must carry the claim and the publisher context, not just the
	// rating text.
	assert.Contains(t, llm.lastPrompt, "vaccines cause autism")
	assert.Contains(t, llm.lastPrompt, "Four Pinocchios")
	assert.Contains(t, llm.lastPrompt, "The Washington Post")
	assert.Contains(t, llm.lastPrompt, "washingtonpost.com")
}

func TestNormalizeDisambiguationFailureIsUnverifiable(t *testing.T) {
	n := NewNormalizer(&fakeLLM{err: errors.New("boom")})

	result := n.Normalize(context.Background(), "claim", &Review{RatingText: "Four Pinocchios"})

	assert.Equal(t, types.RatingUnverifiable, result.Rating)
}

func TestParseDisambiguation(t *testing.T) {
	cases := []struct {
		resp string
		want types.Rating
	}{
		{"TRUE", types.RatingTrue},
		{"false", types.RatingFalse},
		{" MISLEADING ", types.RatingMisleading},
		{"UNVERIFIABLE", types.RatingUnverifiable},
		{"The fact-check clearly refutes it: FALSE.", types.RatingFalse},
		{"I believe this is MISLEADING overall", types.RatingMisleading},
		{"no idea", types.RatingUnverifiable},
		{"", types.RatingUnverifiable},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, parseDisambiguation(tc.resp), tc.resp)
	}
}
