package llmverdict

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/truthlens/truthlens/src/ai/core"
	"github.com/truthlens/truthlens/src/verifier/types"
)

type fakeLLM struct {
	resp string
	err  error
}

func (f *fakeLLM) Complete(context.Context, string, core.Options) (string, error) {
	return f.resp, f.err
}

func TestAssessEmptyClaimOrNilClient(t *testing.T) {
	assert.False(t, NewAssessor(&fakeLLM{resp: "VERDICT: TRUE"}).Assess(context.Background(), "  ").Used)
	assert.False(t, NewAssessor(nil).Assess(context.Background(), "the claim").Used)
}

func TestAssessCallFailure(t *testing.T) {
	a := NewAssessor(&fakeLLM{err: errors.New("boom")})

	assert.False(t, a.Assess(context.Background(), "the claim").Used)
}

func TestAssessFullResponse(t *testing.T) {
	a := NewAssessor(&fakeLLM{resp: "VERDICT: FALSE\nCONFIDENCE: HIGH\nREASONING: The earth is an oblate spheroid."})

	got := a.Assess(context.Background(), "the earth is flat")

	assert.True(t, got.Used)
	assert.Equal(t, types.VerdictLikelyFalse, got.Verdict)
	assert.Equal(t, types.ConfidenceHigh, got.Confidence)
	assert.Equal(t, "The earth is an oblate spheroid.", got.Reasoning)
}

func TestParseAssessmentLineOrderIrrelevant(t *testing.T) {
	got := parseAssessment("REASONING: consensus is clear\nCONFIDENCE: MEDIUM\nVERDICT: TRUE")

	assert.True(t, got.Used)
	assert.Equal(t, types.VerdictLikelyTrue, got.Verdict)
	assert.Equal(t, types.ConfidenceMedium, got.Confidence)
	assert.Equal(t, "consensus is clear", got.Reasoning)
}

func TestParseAssessmentUncertain(t *testing.T) {
	got := parseAssessment("VERDICT: UNCERTAIN\nCONFIDENCE: LOW\nREASONING: too recent to verify")

	assert.False(t, got.Used)
	assert.Empty(t, got.Verdict)
}

func TestParseAssessmentToleratesNoise(t *testing.T) {
	got := parseAssessment("Here is my assessment:\n\nVERDICT: FALSE (clearly)\nCONFIDENCE: HIGH\nREASONING: well documented\nThanks!")

	assert.True(t, got.Used)
	assert.Equal(t, types.VerdictLikelyFalse, got.Verdict)
	assert.Equal(t, types.ConfidenceHigh, got.Confidence)
}

func TestParseAssessmentMissingConfidenceDefaultsLow(t *testing.T) {
	// A confidence line that names no level still resolves to low.
	got := parseAssessment("VERDICT: TRUE\nCONFIDENCE: whatever")

	assert.Equal(t, types.ConfidenceLow, got.Confidence)
}

func TestApplyKeepsOriginalWhenUnused(t *testing.T) {
	original := types.VerdictResult{
		Verdict:    types.VerdictNeedsVerification,
		Confidence: types.ConfidenceLow,
		Basis:      types.BasisInsufficientEvidence,
	}

	got := Apply(original, Assessment{})

	assert.Equal(t, original, got)
}

// Replacement is total: verdict, confidence and basis all come from the
// assessment, nothing from the deterministic result survives.
func TestApplyReplacesResult(t *testing.T) {
	original := types.VerdictResult{
		Verdict:    types.VerdictNeedsVerification,
		Confidence: types.ConfidenceLow,
		Basis:      types.BasisMixedEvidence,
	}
	assessment := Assessment{
		Verdict:    types.VerdictLikelyFalse,
		Confidence: types.ConfidenceHigh,
		Used:       true,
	}

	got := Apply(original, assessment)

	assert.Equal(t, types.VerdictLikelyFalse, got.Verdict)
	assert.Equal(t, types.ConfidenceHigh, got.Confidence)
	assert.Equal(t, types.BasisLLMAssessment, got.Basis)
}

func TestApplyDefaultsConfidenceToMedium(t *testing.T) {
	got := Apply(types.VerdictResult{}, Assessment{Verdict: types.VerdictLikelyTrue, Used: true})

	assert.Equal(t, types.ConfidenceMedium, got.Confidence)
}
