package stance

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/truthlens/truthlens/src/ai/core"
	"github.com/truthlens/truthlens/src/verifier/types"
)

// Overlap threshold for the keyword fallback: this many distinct shared words
// between claim and snippet count as topical relatedness.
const fallbackOverlap = 3

// Classifier assigns each evidence snippet one of the four stance labels
// relative to the claim. The model path is primary; without a model (or on
// any call failure) a keyword-overlap fallback applies, which can only tell
// related from unrelated, never direction.
type Classifier struct {
	llm     core.Client
	workers int
}

func NewClassifier(llm core.Client) *Classifier {
	return &Classifier{llm: llm, workers: 3}
}

// Classify labels one snippet. Empty inputs are UNRELATED by definition.
func (c *Classifier) Classify(ctx context.Context, claim, snippet string) types.Stance {
	if strings.TrimSpace(claim) == "" || strings.TrimSpace(snippet) == "" {
		return types.StanceUnrelated
	}

	if c.llm == nil {
		return fallbackStance(claim, snippet)
	}

	prompt := fmt.Sprintf(`Classify the stance of the following text snippet toward the given claim.

Claim: %s

Snippet: %s

Classify as exactly one of:
- SUPPORTS: The snippet provides evidence supporting the claim
- REFUTES: The snippet contradicts or disproves the claim
- DISCUSS: The snippet discusses the claim's topic but doesn't clearly support or refute
- UNRELATED: The snippet is not relevant to the claim

Respond with ONLY the classification label (SUPPORTS, REFUTES, DISCUSS, or UNRELATED):`, claim, snippet)

	resp, err := c.llm.Complete(ctx, prompt, core.Options{})
	if err != nil {
		log.Printf("stance: classification failed, item treated as unrelated: %v", err)
		return types.StanceUnrelated
	}
	return parseStance(resp)
}

// ClassifyAll labels every item independently, fanning out over a bounded
// worker pool. Results land by index so the output order always matches the
// input order. Each item is classified exactly once; nothing is cached
// across requests.
func (c *Classifier) ClassifyAll(ctx context.Context, claim string, items []types.EvidenceItem) []types.EvidenceItem {
	out := make([]types.EvidenceItem, len(items))
	copy(out, items)

	var wg sync.WaitGroup
	semaphore := make(chan struct{}, c.workers)

	for i := range out {
		wg.Add(1)
		go func(index int) {
			defer wg.Done()

			if ctx.Err() != nil {
				out[index].Stance = types.StanceUnrelated
				return
			}

			select {
			case semaphore <- struct{}{}:
				defer func() { <-semaphore }()
			case <-ctx.Done():
				out[index].Stance = types.StanceUnrelated
				return
			}

			snippet := strings.TrimSpace(out[index].Title + " " + out[index].Description)
			out[index].Stance = c.Classify(ctx, claim, snippet)
		}(i)
	}

	wg.Wait()
	return out
}

// parseStance recovers a stance label from model output, tolerating a label
// embedded in extra text; the first label found in recognition order wins.
func parseStance(resp string) types.Stance {
	upper := strings.ToUpper(strings.TrimSpace(resp))
	for _, label := range types.Stances {
		if upper == string(label) {
			return label
		}
	}
	for _, label := range types.Stances {
		if strings.Contains(upper, string(label)) {
			return label
		}
	}
	return types.StanceUnrelated
}

// fallbackStance measures distinct word overlap between claim and snippet.
// It can establish relatedness but not direction, so it never returns
// SUPPORTS or REFUTES.
func fallbackStance(claim, snippet string) types.Stance {
	claimWords := map[string]bool{}
	for _, w := range strings.Fields(strings.ToLower(claim)) {
		claimWords[w] = true
	}

	seen := map[string]bool{}
	overlap := 0
	for _, w := range strings.Fields(strings.ToLower(snippet)) {
		if claimWords[w] && !seen[w] {
			seen[w] = true
			overlap++
		}
	}

	if overlap >= fallbackOverlap {
		return types.StanceDiscuss
	}
	return types.StanceUnrelated
}
