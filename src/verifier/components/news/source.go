package news

import (
	"context"
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/truthlens/truthlens/src/verifier/types"
)

// DefaultMaxResults bounds evidence retrieval when the caller does not ask
// for a specific number of articles.
const DefaultMaxResults = 5

// Source retrieves evidence snippets for a claim. Implementations degrade to
// an empty result on transport failure; they never surface errors to the end
// user (the pipeline logs and continues).
type Source interface {
	Search(ctx context.Context, claim string, max int) ([]types.EvidenceItem, error)
}

// News APIs return titles and descriptions with embedded markup; everything
// is stripped to plain text before stance classification.
var sanitizer = bluemonday.StrictPolicy()

func sanitize(s string) string {
	return strings.TrimSpace(html.UnescapeString(sanitizer.Sanitize(s)))
}

// truncateQuery caps a claim used as a search query.
func truncateQuery(claim string, limit int) string {
	if len(claim) <= limit {
		return claim
	}
	return claim[:limit]
}
