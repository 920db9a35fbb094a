package stance

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/truthlens/truthlens/src/ai/core"
	"github.com/truthlens/truthlens/src/verifier/types"
)

type fakeLLM struct {
	fn func(prompt string) (string, error)
}

func (f *fakeLLM) Complete(_ context.Context, prompt string, _ core.Options) (string, error) {
	return f.fn(prompt)
}

func fixedLLM(resp string) *fakeLLM {
	return &fakeLLM{fn: func(string) (string, error) { return resp, nil }}
}

func TestClassifyEmptyInputs(t *testing.T) {
	c := NewClassifier(fixedLLM("SUPPORTS"))

	assert.Equal(t, types.StanceUnrelated, c.Classify(context.Background(), "", "snippet"))
	assert.Equal(t, types.StanceUnrelated, c.Classify(context.Background(), "claim", ""))
	assert.Equal(t, types.StanceUnrelated, c.Classify(context.Background(), "  ", "snippet"))
}

func TestClassifyModelLabels(t *testing.T) {
	for _, label := range types.Stances {
		c := NewClassifier(fixedLLM(string(label)))
		assert.Equal(t, label, c.Classify(context.Background(), "claim text", "snippet text"))
	}
}

func TestClassifyLabelEmbeddedInText(t *testing.T) {
	c := NewClassifier(fixedLLM("The snippet clearly REFUTES the claim."))

	assert.Equal(t, types.StanceRefutes, c.Classify(context.Background(), "claim", "snippet"))
}

func TestClassifyUnrecognizableResponse(t *testing.T) {
	c := NewClassifier(fixedLLM("I am not sure about this one."))

	assert.Equal(t, types.StanceUnrelated, c.Classify(context.Background(), "claim", "snippet"))
}

func TestClassifyModelFailure(t *testing.T) {
	c := NewClassifier(&fakeLLM{fn: func(string) (string, error) { return "", errors.New("timeout") }})

	assert.Equal(t, types.StanceUnrelated, c.Classify(context.Background(), "claim", "snippet"))
}

func TestClassifyFallbackOverlap(t *testing.T) {
	c := NewClassifier(nil)

	// Three distinct shared words: related.
	got := c.Classify(context.Background(), "the moon landing happened", "experts say the moon landing happened in 1969")
	assert.Equal(t, types.StanceDiscuss, got)

	// Fewer than three: unrelated.
	got = c.Classify(context.Background(), "the moon landing happened", "stock markets closed higher today")
	assert.Equal(t, types.StanceUnrelated, got)
}

func TestFallbackCountsDistinctWordsOnly(t *testing.T) {
	// "moon" repeated in the snippet still counts once.
	got := fallbackStance("moon base alpha", "moon moon moon")
	assert.Equal(t, types.StanceUnrelated, got)
}

// The fallback cannot distinguish direction, so it never yields a
// directional stance.
func TestFallbackNeverDirectional(t *testing.T) {
	got := fallbackStance("vaccines are safe and effective", "vaccines are safe and effective according to studies")
	assert.Equal(t, types.StanceDiscuss, got)
}

func TestClassifyAllPreservesOrder(t *testing.T) {
	// Route each item to a stance based on the snippet inside the prompt.
	llm := &fakeLLM{fn: func(prompt string) (string, error) {
		switch {
		case strings.Contains(prompt, "item-a"):
			return "SUPPORTS", nil
		case strings.Contains(prompt, "item-b"):
			return "REFUTES", nil
		case strings.Contains(prompt, "item-c"):
			return "DISCUSS", nil
		default:
			return "UNRELATED", nil
		}
	}}
	c := NewClassifier(llm)

	items := make([]types.EvidenceItem, 0, 8)
	for i := 0; i < 8; i++ {
		suffix := string(rune('a' + i%4))
		items = append(items, types.EvidenceItem{
			Title:       fmt.Sprintf("article %d item-%s", i, suffix),
			Description: "description",
		})
	}

	out := c.ClassifyAll(context.Background(), "the claim", items)

	assert.Len(t, out, len(items))
	want := []types.Stance{types.StanceSupports, types.StanceRefutes, types.StanceDiscuss, types.StanceUnrelated}
	for i := range out {
		assert.Equal(t, items[i].Title, out[i].Title, "output order must match input order")
		assert.Equal(t, want[i%4], out[i].Stance, out[i].Title)
	}
}

func TestClassifyAllDoesNotMutateInput(t *testing.T) {
	c := NewClassifier(fixedLLM("SUPPORTS"))
	items := []types.EvidenceItem{{Title: "one two three", Description: "x"}}

	_ = c.ClassifyAll(context.Background(), "claim", items)

	assert.Empty(t, items[0].Stance)
}

func TestClassifyAllCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := NewClassifier(fixedLLM("SUPPORTS"))
	out := c.ClassifyAll(ctx, "claim", []types.EvidenceItem{{Title: "t", Description: "d"}})

	assert.Len(t, out, 1)
	assert.Equal(t, types.StanceUnrelated, out[0].Stance)
}
