package factcheck

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/truthlens/truthlens/src/ai/core"
	"github.com/truthlens/truthlens/src/verifier/types"
)

// Review is the raw output of a fact-check registry lookup before
// normalization.
type Review struct {
	RatingText string `json:"rating_text"`
	Summary    string `json:"summary"`
	Publisher  string `json:"publisher"`
	URL        string `json:"url"`
}

// Normalizer maps registry reviews onto the closed rating vocabulary, asking
// the model to disambiguate ratings the lexicon cannot place. A nil client
// resolves every lexicon miss to Unverifiable.
type Normalizer struct {
	llm core.Client
}

func NewNormalizer(llm core.Client) *Normalizer {
	return &Normalizer{llm: llm}
}

// Normalize produces the engine's FactCheckResult for a review. A nil review
// or one with an empty rating text is the no-fact-check-found sentinel and
// short-circuits normalization. The original rating text, summary, publisher
// and URL pass through unchanged for downstream explanation use.
func (n *Normalizer) Normalize(ctx context.Context, claim string, rev *Review) types.FactCheckResult {
	if rev == nil || strings.TrimSpace(rev.RatingText) == "" {
		return types.FactCheckResult{Found: false}
	}

	rating, ok := NormalizeRating(rev.RatingText)
	if !ok {
		rating = n.disambiguate(ctx, claim, rev)
	}

	return types.FactCheckResult{
		Found:          true,
		Rating:         rating,
		OriginalRating: rev.RatingText,
		Summary:        rev.Summary,
		Source:         rev.Publisher,
		URL:            rev.URL,
	}
}

// disambiguate asks the model what a rating the lexicon missed means for the
// original claim. Summaries often restate the claim instead of the verdict,
// so the prompt carries the publisher and URL context as well. Anything other
// than one of the four tokens, including call failure, resolves to
// Unverifiable.
func (n *Normalizer) disambiguate(ctx context.Context, claim string, rev *Review) types.Rating {
	if n.llm == nil {
		return types.RatingUnverifiable
	}

	prompt := fmt.Sprintf(`A fact-checking organization reviewed a claim and published a rating we could not map automatically.

Original claim: %q
Publisher rating: %q
Fact-check summary: %q
Publisher: %s
Fact-check URL: %s

Decide what the cited fact-check concludes about the ORIGINAL CLAIM (not about the rating text alone; the summary may restate the claim rather than the verdict).

Respond with EXACTLY one of these tokens:
- TRUE: the fact-check supports the claim
- FALSE: the fact-check refutes the claim
- MISLEADING: the fact-check finds the claim misleading or only partly accurate
- UNVERIFIABLE: the fact-check could not establish the claim either way

Answer:`, claim, rev.RatingText, rev.Summary, rev.Publisher, rev.URL)

	resp, err := n.llm.Complete(ctx, prompt, core.Options{})
	if err != nil {
		log.Printf("factcheck: rating disambiguation failed: %v", err)
		return types.RatingUnverifiable
	}
	return parseDisambiguation(resp)
}

func parseDisambiguation(resp string) types.Rating {
	upper := strings.ToUpper(strings.TrimSpace(resp))
	switch upper {
	case "TRUE":
		return types.RatingTrue
	case "FALSE":
		return types.RatingFalse
	case "MISLEADING":
		return types.RatingMisleading
	case "UNVERIFIABLE":
		return types.RatingUnverifiable
	}

	// Tolerate a token embedded in extra text. UNVERIFIABLE and MISLEADING
	// are checked before FALSE/TRUE so the longer tokens win.
	switch {
	case strings.Contains(upper, "UNVERIFIABLE"):
		return types.RatingUnverifiable
	case strings.Contains(upper, "MISLEADING"):
		return types.RatingMisleading
	case strings.Contains(upper, "FALSE"):
		return types.RatingFalse
	case strings.Contains(upper, "TRUE"):
		return types.RatingTrue
	}
	return types.RatingUnverifiable
}
