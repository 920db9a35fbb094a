package domaintrust

import (
	"fmt"
	"log"
	"net/url"
	"strings"
	"sync"

	"github.com/truthlens/truthlens/src/verifier/types"
)

// Entry is one row of the trust table, immutable once loaded.
type Entry struct {
	Domain   string
	Tier     types.TrustTier
	Score    int
	Category string
	Label    string
	Notes    string
}

// Result is the outcome of scoring a URL. Domain is empty when no usable
// domain could be extracted; Score never leaves [0,100].
type Result struct {
	Domain   string          `json:"domain,omitempty"`
	Tier     types.TrustTier `json:"trust_tier"`
	Score    int             `json:"score"`
	Category string          `json:"category"`
	Label    string          `json:"label"`
	Reason   string          `json:"reason"`
}

// tierDefaults are the numeric scores used when an entry carries no valid score.
var tierDefaults = map[types.TrustTier]int{
	types.TierTrusted: 85,
	types.TierMixed:   55,
	types.TierLow:     20,
	types.TierUnknown: 50,
}

// DefaultScore returns the default numeric score for a trust tier.
func DefaultScore(tier types.TrustTier) int {
	if score, ok := tierDefaults[tier]; ok {
		return score
	}
	return 50
}

// Table is the process-scoped domain trust table. The first Score call loads
// it exactly once; concurrent first access is serialized by sync.Once and the
// table is read-only afterward.
type Table struct {
	once    sync.Once
	load    LoadFunc
	entries map[string]Entry
}

func NewTable(load LoadFunc) *Table {
	return &Table{load: load}
}

func (t *Table) init() {
	t.once.Do(func() {
		t.entries = map[string]Entry{}
		if t.load == nil {
			return
		}
		entries, err := t.load()
		if err != nil {
			log.Printf("domaintrust: load failed, all lookups resolve unknown: %v", err)
			return
		}
		// Last load wins on duplicate domains.
		for _, e := range entries {
			domain := strings.ToLower(strings.TrimSpace(e.Domain))
			if domain == "" {
				continue
			}
			e.Domain = domain
			t.entries[domain] = e
		}
		log.Printf("domaintrust: loaded %d domains", len(t.entries))
	})
}

// Score evaluates the trust of a URL's domain. It never fails: a missing or
// unparsable URL and an unknown domain each resolve to a neutral default.
func (t *Table) Score(rawURL string) Result {
	if strings.TrimSpace(rawURL) == "" {
		return Result{
			Tier:     types.TierUnknown,
			Score:    DefaultScore(types.TierUnknown),
			Category: "unknown",
			Label:    "No URL provided",
			Reason:   "No URL was provided for domain trust analysis.",
		}
	}

	domain := ExtractDomain(rawURL)
	if domain == "" {
		return Result{
			Tier:     types.TierUnknown,
			Score:    DefaultScore(types.TierUnknown),
			Category: "unknown",
			Label:    "Invalid URL",
			Reason:   "Could not extract a domain from the provided URL.",
		}
	}

	t.init()

	entry, ok := t.entries[domain]
	if !ok {
		return Result{
			Domain:   domain,
			Tier:     types.TierUnknown,
			Score:    DefaultScore(types.TierUnknown),
			Category: "unknown",
			Label:    "Unknown Source",
			Reason:   "This domain is not in our trust database. Exercise caution and verify from other sources.",
		}
	}

	score := entry.Score
	if score <= 0 || score > 100 {
		score = DefaultScore(entry.Tier)
	}
	reason := entry.Notes
	if reason == "" {
		reason = fmt.Sprintf("Domain is classified as %s based on our trust database.", entry.Tier)
	}

	return Result{
		Domain:   domain,
		Tier:     entry.Tier,
		Score:    score,
		Category: entry.Category,
		Label:    entry.Label,
		Reason:   reason,
	}
}

// Tier returns the trust tier for a URL; used by the stance weigher.
func (t *Table) Tier(rawURL string) types.TrustTier {
	return t.Score(rawURL).Tier
}

// ExtractDomain lowercases the network-location portion of a URL and strips a
// leading "www.". It returns empty when no domain is present. Lookups against
// the table are exact; no suffix or subdomain matching is attempted.
func ExtractDomain(rawURL string) string {
	parsed, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return ""
	}
	domain := strings.ToLower(parsed.Host)
	domain = strings.TrimPrefix(domain, "www.")
	return domain
}

// ParseTier maps free-form tier text onto the tier vocabulary, defaulting to
// unknown.
func ParseTier(s string) types.TrustTier {
	switch types.TrustTier(strings.ToLower(strings.TrimSpace(s))) {
	case types.TierTrusted:
		return types.TierTrusted
	case types.TierMixed:
		return types.TierMixed
	case types.TierLow:
		return types.TierLow
	default:
		return types.TierUnknown
	}
}
