package factcheck

import (
	"strings"

	"github.com/truthlens/truthlens/src/verifier/types"
)

type lexiconEntry struct {
	phrase string
	rating types.Rating
}

// ratingLexicon maps publisher rating phrases onto the closed rating
// vocabulary by case-insensitive substring match. Iteration order is part of
// the contract: the first matching phrase wins, so longer and more specific
// phrases sit before the generic ones they contain ("mostly false" before
// "false", "incorrect" before "correct"). Matching is substring, not
// whole-word, so e.g. "inaccurate" resolves via "accurate"; that behavior is
// intentional and pinned by tests.
var ratingLexicon = []lexiconEntry{
	// Specific phrases first.
	{"mostly true", types.RatingTrue},
	{"mostly false", types.RatingFalse},
	{"partly true", types.RatingMisleading},
	{"partly false", types.RatingMisleading},
	{"half true", types.RatingMisleading},
	{"pants on fire", types.RatingFalse},
	{"out of context", types.RatingMisleading},
	{"needs context", types.RatingUnverifiable},
	{"no evidence", types.RatingUnverifiable},

	// Generic phrases.
	{"misleading", types.RatingMisleading},
	{"mixture", types.RatingMisleading},
	{"incorrect", types.RatingFalse},
	{"correct", types.RatingTrue},
	{"accurate", types.RatingTrue},
	{"wrong", types.RatingFalse},
	{"unverifiable", types.RatingUnverifiable},
	{"unverified", types.RatingUnverifiable},
	{"unproven", types.RatingUnverifiable},
	{"true", types.RatingTrue},
	{"false", types.RatingFalse},
}

// NormalizeRating resolves a raw publisher rating against the lexicon,
// reporting whether any phrase matched. Already-normalized labels resolve to
// themselves.
func NormalizeRating(raw string) (types.Rating, bool) {
	lowered := strings.ToLower(strings.TrimSpace(raw))
	if lowered == "" {
		return "", false
	}
	for _, entry := range ratingLexicon {
		if strings.Contains(lowered, entry.phrase) {
			return entry.rating, true
		}
	}
	return "", false
}
