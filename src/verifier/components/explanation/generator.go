package explanation

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/truthlens/truthlens/src/ai/core"
	"github.com/truthlens/truthlens/src/verifier/components/domaintrust"
	"github.com/truthlens/truthlens/src/verifier/types"
)

// Signals is everything the generator may cite: only information inside this
// struct appears in the explanation.
type Signals struct {
	Claim       string
	Result      types.VerdictResult
	FactCheck   types.FactCheckResult
	Stance      types.StanceSummary
	DomainTrust domaintrust.Result
}

// Generator writes a short user-facing explanation of a verdict. Without a
// model it falls back to a deterministic template.
type Generator struct {
	llm core.Client
}

func NewGenerator(llm core.Client) *Generator {
	return &Generator{llm: llm}
}

func (g *Generator) Explain(ctx context.Context, signals Signals) string {
	if g.llm == nil {
		return fallbackExplanation(signals)
	}

	prompt := fmt.Sprintf(`Based on the following analysis signals, write a brief, user-friendly explanation (2-3 sentences) of why the claim received this verdict.

%s

Rules:
1. Use only the information provided above - do not add external information
2. Be clear and accessible to a general audience
3. Explain the key factors that led to this verdict
4. Do not use technical jargon

Explanation:`, contextBlock(signals))

	resp, err := g.llm.Complete(ctx, prompt, core.Options{})
	if err != nil {
		log.Printf("explanation: generation failed, using template: %v", err)
		return fallbackExplanation(signals)
	}
	return strings.TrimSpace(resp)
}

func contextBlock(signals Signals) string {
	parts := []string{
		fmt.Sprintf("Claim analyzed: %q", signals.Claim),
		fmt.Sprintf("Final verdict: %s", signals.Result.Verdict),
		fmt.Sprintf("Confidence level: %s", signals.Result.Confidence),
	}

	if signals.FactCheck.Found {
		parts = append(parts, fmt.Sprintf("Fact-check found: %s (Source: %s)",
			signals.FactCheck.Rating, orUnknown(signals.FactCheck.Source)))
	} else {
		parts = append(parts, "No existing fact-check found for this claim.")
	}

	counts := signals.Stance.Counts
	if counts[types.StanceSupports]+counts[types.StanceRefutes]+counts[types.StanceDiscuss]+counts[types.StanceUnrelated] > 0 {
		parts = append(parts, fmt.Sprintf("Evidence analysis: %d sources support, %d sources refute, %d sources discuss the claim.",
			counts[types.StanceSupports], counts[types.StanceRefutes], counts[types.StanceDiscuss]))
	}

	if signals.DomainTrust.Domain != "" {
		parts = append(parts, fmt.Sprintf("Source domain (%s): Trust level is %s.",
			signals.DomainTrust.Domain, signals.DomainTrust.Tier))
	}

	return strings.Join(parts, "\n")
}

func fallbackExplanation(signals Signals) string {
	if signals.FactCheck.Found {
		return fmt.Sprintf("This claim has been rated as '%s' by %s. Our verdict is %s with %s confidence.",
			signals.FactCheck.Rating,
			orUnknown(signals.FactCheck.Source),
			signals.Result.Verdict,
			signals.Result.Confidence)
	}

	supports := signals.Stance.Counts[types.StanceSupports]
	refutes := signals.Stance.Counts[types.StanceRefutes]

	var evidenceDesc string
	switch {
	case supports > refutes:
		evidenceDesc = "supporting evidence from news sources"
	case refutes > supports:
		evidenceDesc = "contradicting evidence from news sources"
	default:
		evidenceDesc = "limited or mixed evidence"
	}

	return fmt.Sprintf("Based on %s, our analysis suggests this claim is %s. Confidence level: %s.",
		evidenceDesc, signals.Result.Verdict, signals.Result.Confidence)
}

func orUnknown(s string) string {
	if strings.TrimSpace(s) == "" {
		return "a fact-checking organization"
	}
	return s
}
