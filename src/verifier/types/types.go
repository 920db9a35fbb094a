package types

// TrustTier is the coarse bucket used to weight evidence from a domain.
type TrustTier string

const (
	TierTrusted TrustTier = "trusted"
	TierMixed   TrustTier = "mixed"
	TierLow     TrustTier = "low"
	TierUnknown TrustTier = "unknown"
)

// Rating is a fact-check rating normalized onto the closed vocabulary.
// The empty string means "no normalized rating".
type Rating string

const (
	RatingTrue         Rating = "True"
	RatingFalse        Rating = "False"
	RatingMisleading   Rating = "Misleading"
	RatingUnverifiable Rating = "Unverifiable"
)

// Stance is an evidence item's relationship to the claim.
type Stance string

const (
	StanceSupports  Stance = "SUPPORTS"
	StanceRefutes   Stance = "REFUTES"
	StanceDiscuss   Stance = "DISCUSS"
	StanceUnrelated Stance = "UNRELATED"
)

// Stances lists the four labels in recognition order; the order matters when
// recovering a label embedded in free-form model output.
var Stances = []Stance{StanceSupports, StanceRefutes, StanceDiscuss, StanceUnrelated}

type Verdict string

const (
	VerdictLikelyTrue        Verdict = "Likely True"
	VerdictLikelyFalse       Verdict = "Likely False"
	VerdictMisleading        Verdict = "Misleading"
	VerdictNeedsVerification Verdict = "Needs More Verification"
)

type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// Basis tags which rule produced a verdict, for downstream explanations.
type Basis string

const (
	BasisFactCheck            Basis = "fact_check"
	BasisEvidenceRefutes      Basis = "evidence_refutes"
	BasisEvidenceSupports     Basis = "evidence_supports"
	BasisMixedEvidence        Basis = "mixed_evidence"
	BasisInsufficientEvidence Basis = "insufficient_evidence"
	BasisLLMAssessment        Basis = "llm_assessment"
)

// FactCheckResult is the normalized outcome of a fact-check registry lookup.
type FactCheckResult struct {
	Found          bool   `json:"found"`
	Rating         Rating `json:"rating,omitempty"`
	OriginalRating string `json:"original_rating,omitempty"`
	Summary        string `json:"summary,omitempty"`
	Source         string `json:"source,omitempty"`
	URL            string `json:"url,omitempty"`
}

// EvidenceItem is one retrieved news snippet. Stance is assigned exactly once
// by the classifier and immutable afterward.
type EvidenceItem struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	URL          string `json:"url"`
	SourceDomain string `json:"source_domain,omitempty"`
	SourceName   string `json:"source_name,omitempty"`
	PublishedAt  string `json:"published_at,omitempty"`
	Stance       Stance `json:"stance,omitempty"`
}

// WeightedStance carries trust-weighted support/refute mass, not counts.
type WeightedStance struct {
	Supports float64 `json:"supports"`
	Refutes  float64 `json:"refutes"`
}

// StanceSummary aggregates per-item stances. Counts always contains all four
// stance keys, zero-filled.
type StanceSummary struct {
	Counts        map[Stance]int `json:"counts"`
	Weighted      WeightedStance `json:"weighted"`
	TotalArticles int            `json:"total_articles"`
}

// VerdictResult is the terminal output of the engine.
type VerdictResult struct {
	Verdict    Verdict    `json:"verdict"`
	Confidence Confidence `json:"confidence"`
	Basis      Basis      `json:"basis"`
}

// Setting is a configuration row loaded once at startup.
type Setting struct {
	ID     uint8  `gorm:"primaryKey"`
	Name   string `gorm:"size:32;not null"`
	Value  string `gorm:"type:text;not null"`
	Active uint8  `gorm:"not null"`
}

// TrustDomain is a row of the domain trust table when backed by MySQL.
type TrustDomain struct {
	ID       uint64 `gorm:"primaryKey;autoIncrement"`
	Domain   string `gorm:"size:255;uniqueIndex"`
	Tier     string `gorm:"column:trust_tier;size:16"`
	Score    int    `gorm:"column:score"`
	Category string `gorm:"size:64"`
	Label    string `gorm:"size:128"`
	Notes    string `gorm:"type:text"`
}

// TableName implements gorm's tabler interface.
func (TrustDomain) TableName() string {
	return "trust_domains"
}
