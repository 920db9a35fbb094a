package llmverdict

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/truthlens/truthlens/src/ai/core"
	"github.com/truthlens/truthlens/src/verifier/types"
)

// Assessment is the model's direct opinion on a claim. Used reports whether
// the opinion is decisive enough to override a deterministic result.
type Assessment struct {
	Verdict    types.Verdict    `json:"verdict,omitempty"`
	Confidence types.Confidence `json:"confidence,omitempty"`
	Reasoning  string           `json:"reasoning,omitempty"`
	Used       bool             `json:"used"`
}

// Assessor asks the model for a direct verdict on a claim. It is invoked only
// when the aggregator reports an inconclusive basis (insufficient or mixed
// evidence); the caller decides whether to apply the result.
type Assessor struct {
	llm core.Client
}

func NewAssessor(llm core.Client) *Assessor {
	return &Assessor{llm: llm}
}

// Assess returns the model's opinion. An empty claim, a nil client, a failed
// call, or an UNCERTAIN/unparsable verdict all come back with Used=false, in
// which case the caller keeps the aggregator's original result.
func (a *Assessor) Assess(ctx context.Context, claim string) Assessment {
	if strings.TrimSpace(claim) == "" || a.llm == nil {
		return Assessment{}
	}

	prompt := fmt.Sprintf(`You are a fact-checker AI. Assess the following claim based on scientific consensus and widely verified facts.

CLAIM: %q

Instructions:
1. For well-known FALSE claims (flat earth, vaccine microchips, 5G conspiracies, etc.) - say FALSE with HIGH confidence.
2. For well-known TRUE claims backed by scientific consensus (climate change, vaccine safety, etc.) - say TRUE with HIGH confidence.
3. ONLY say UNCERTAIN if the claim is genuinely ambiguous or requires very recent/specialized information.
4. Be DECISIVE - most common misinformation claims have clear answers.

Respond in this EXACT format:
VERDICT: [TRUE/FALSE/UNCERTAIN]
CONFIDENCE: [HIGH/MEDIUM/LOW]
REASONING: [1-2 sentence explanation with specific facts]

Now assess the claim:`, claim)

	resp, err := a.llm.Complete(ctx, prompt, core.Options{})
	if err != nil {
		log.Printf("llmverdict: assessment failed, keeping deterministic result: %v", err)
		return Assessment{}
	}

	return parseAssessment(resp)
}

// parseAssessment reads the VERDICT/CONFIDENCE/REASONING lines independently
// by prefix; line order does not matter and missing lines are tolerated.
func parseAssessment(resp string) Assessment {
	var out Assessment

	for _, line := range strings.Split(resp, "\n") {
		line = strings.TrimSpace(line)
		upper := strings.ToUpper(line)

		switch {
		case strings.HasPrefix(upper, "VERDICT:"):
			verdictText := strings.TrimSpace(strings.TrimPrefix(upper, "VERDICT:"))
			if strings.Contains(verdictText, "TRUE") && !strings.Contains(verdictText, "FALSE") {
				out.Verdict = types.VerdictLikelyTrue
			} else if strings.Contains(verdictText, "FALSE") {
				out.Verdict = types.VerdictLikelyFalse
			}
			// UNCERTAIN or anything else leaves the verdict empty: no override.
		case strings.HasPrefix(upper, "CONFIDENCE:"):
			confText := strings.TrimSpace(strings.TrimPrefix(upper, "CONFIDENCE:"))
			if strings.Contains(confText, "HIGH") {
				out.Confidence = types.ConfidenceHigh
			} else if strings.Contains(confText, "MEDIUM") {
				out.Confidence = types.ConfidenceMedium
			} else {
				out.Confidence = types.ConfidenceLow
			}
		case strings.HasPrefix(upper, "REASONING:"):
			out.Reasoning = strings.TrimSpace(line[len("REASONING:"):])
		}
	}

	out.Used = out.Verdict != ""
	return out
}

// Apply replaces the aggregator's result with the assessment when it is
// decisive. The replacement is total: verdict and confidence come from the
// assessment and the basis is forced to llm_assessment, discarding the prior
// basis rather than merging with it.
func Apply(original types.VerdictResult, assessment Assessment) types.VerdictResult {
	if !assessment.Used {
		return original
	}

	confidence := assessment.Confidence
	if confidence == "" {
		confidence = types.ConfidenceMedium
	}

	return types.VerdictResult{
		Verdict:    assessment.Verdict,
		Confidence: confidence,
		Basis:      types.BasisLLMAssessment,
	}
}
