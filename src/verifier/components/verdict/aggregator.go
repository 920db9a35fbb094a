package verdict

import (
	"github.com/truthlens/truthlens/src/verifier/types"
)

// Dominance thresholds for the evidence rules: a side must carry at least
// strongThreshold of weighted mass and more than twice the opposing mass; at
// mediumThreshold the confidence steps up from low to medium.
const (
	strongThreshold = 1.5
	mediumThreshold = 2.0
)

var ratingVerdicts = map[types.Rating]types.Verdict{
	types.RatingTrue:         types.VerdictLikelyTrue,
	types.RatingFalse:        types.VerdictLikelyFalse,
	types.RatingMisleading:   types.VerdictMisleading,
	types.RatingUnverifiable: types.VerdictNeedsVerification,
}

// Aggregate combines the fact-check result and the stance summary into a
// verdict. It is a pure function evaluated in fixed rule order; the first
// matching rule wins and no further rules are considered.
func Aggregate(fc types.FactCheckResult, summary types.StanceSummary) types.VerdictResult {
	// Rule 1: a found fact-check pre-empts all evidence rules. A rating the
	// normalizer could not place arrives as Unverifiable and still lands
	// here; it does not fall through.
	if fc.Found && fc.Rating != "" {
		v, ok := ratingVerdicts[fc.Rating]
		if !ok {
			v = types.VerdictNeedsVerification
		}
		return types.VerdictResult{
			Verdict:    v,
			Confidence: types.ConfidenceHigh,
			Basis:      types.BasisFactCheck,
		}
	}

	// Rule 2: no relevant evidence at all. UNRELATED items do not count.
	totalRelevant := summary.Counts[types.StanceSupports] +
		summary.Counts[types.StanceRefutes] +
		summary.Counts[types.StanceDiscuss]
	if totalRelevant == 0 {
		return types.VerdictResult{
			Verdict:    types.VerdictNeedsVerification,
			Confidence: types.ConfidenceLow,
			Basis:      types.BasisInsufficientEvidence,
		}
	}

	supports := summary.Weighted.Supports
	refutes := summary.Weighted.Refutes

	// Rule 3: strong refutation.
	if refutes >= strongThreshold && refutes > supports*2 {
		confidence := types.ConfidenceLow
		if refutes >= mediumThreshold {
			confidence = types.ConfidenceMedium
		}
		return types.VerdictResult{
			Verdict:    types.VerdictLikelyFalse,
			Confidence: confidence,
			Basis:      types.BasisEvidenceRefutes,
		}
	}

	// Rule 4: strong support, symmetric to rule 3.
	if supports >= strongThreshold && supports > refutes*2 {
		confidence := types.ConfidenceLow
		if supports >= mediumThreshold {
			confidence = types.ConfidenceMedium
		}
		return types.VerdictResult{
			Verdict:    types.VerdictLikelyTrue,
			Confidence: confidence,
			Basis:      types.BasisEvidenceSupports,
		}
	}

	// Rule 5: directional evidence exists but neither side dominates.
	if supports > 0 || refutes > 0 {
		return types.VerdictResult{
			Verdict:    types.VerdictNeedsVerification,
			Confidence: types.ConfidenceLow,
			Basis:      types.BasisMixedEvidence,
		}
	}

	// Rule 6: fallback default.
	return types.VerdictResult{
		Verdict:    types.VerdictNeedsVerification,
		Confidence: types.ConfidenceLow,
		Basis:      types.BasisInsufficientEvidence,
	}
}
