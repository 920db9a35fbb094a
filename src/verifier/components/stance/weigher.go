package stance

import (
	"github.com/truthlens/truthlens/src/verifier/components/domaintrust"
	"github.com/truthlens/truthlens/src/verifier/types"
)

// tierWeights maps a source's trust tier to its evidence weight. Unrecognized
// tiers weigh the same as unknown.
var tierWeights = map[types.TrustTier]float64{
	types.TierTrusted: 1.0,
	types.TierMixed:   0.5,
	types.TierLow:     0.1,
	types.TierUnknown: 0.3,
}

const defaultWeight = 0.3

// Weigher aggregates classified evidence into trust-weighted support and
// refute scores.
type Weigher struct {
	trust *domaintrust.Table
}

func NewWeigher(trust *domaintrust.Table) *Weigher {
	return &Weigher{trust: trust}
}

// Weigh counts every item under its stance label and adds the item's domain
// trust weight to the supports or refutes score. DISCUSS and UNRELATED items
// contribute to counts only. Counts always carries all four stance keys.
func (w *Weigher) Weigh(items []types.EvidenceItem) types.StanceSummary {
	summary := types.StanceSummary{
		Counts: map[types.Stance]int{
			types.StanceSupports:  0,
			types.StanceRefutes:   0,
			types.StanceDiscuss:   0,
			types.StanceUnrelated: 0,
		},
		TotalArticles: len(items),
	}

	for _, item := range items {
		stance := item.Stance
		if _, ok := summary.Counts[stance]; !ok {
			stance = types.StanceUnrelated
		}
		summary.Counts[stance]++

		switch stance {
		case types.StanceSupports:
			summary.Weighted.Supports += w.weightFor(item.URL)
		case types.StanceRefutes:
			summary.Weighted.Refutes += w.weightFor(item.URL)
		}
	}

	return summary
}

func (w *Weigher) weightFor(url string) float64 {
	tier := types.TierUnknown
	if w.trust != nil {
		tier = w.trust.Tier(url)
	}
	if weight, ok := tierWeights[tier]; ok {
		return weight
	}
	return defaultWeight
}
