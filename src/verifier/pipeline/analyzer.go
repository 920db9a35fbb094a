package pipeline

import (
	"context"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/truthlens/truthlens/src/ai/core"
	"github.com/truthlens/truthlens/src/cache"
	"github.com/truthlens/truthlens/src/data"
	"github.com/truthlens/truthlens/src/verifier/components/domaintrust"
	"github.com/truthlens/truthlens/src/verifier/components/explanation"
	"github.com/truthlens/truthlens/src/verifier/components/factcheck"
	"github.com/truthlens/truthlens/src/verifier/components/llmverdict"
	"github.com/truthlens/truthlens/src/verifier/components/news"
	"github.com/truthlens/truthlens/src/verifier/components/stance"
	"github.com/truthlens/truthlens/src/verifier/components/verdict"
	"github.com/truthlens/truthlens/src/verifier/config"
	"github.com/truthlens/truthlens/src/verifier/types"
	"gorm.io/gorm"
)

// Request is one unit of analysis work. Evidence may be supplied by the
// caller; when nil the analyzer retrieves it from its news source.
type Request struct {
	Claim       string
	URL         string
	Evidence    []types.EvidenceItem
	MaxEvidence int
}

// Report is the full analysis output: the verdict plus every intermediate
// signal the caller needs to build an explanation.
type Report struct {
	ID          string               `json:"id"`
	Claim       string               `json:"claim"`
	Result      types.VerdictResult  `json:"result"`
	DomainTrust domaintrust.Result   `json:"domain_trust"`
	FactCheck   types.FactCheckResult `json:"factcheck"`
	Evidence    []types.EvidenceItem `json:"evidence"`
	Stance      types.StanceSummary  `json:"stance_summary"`
	Explanation string               `json:"explanation"`
}

// Analyzer wires the engine components into the produced analyze() interface.
// Requests share no mutable state beyond the read-only trust table, so one
// Analyzer serves concurrent callers.
type Analyzer struct {
	trust      *domaintrust.Table
	registry   *factcheck.Client
	normalizer *factcheck.Normalizer
	source     news.Source
	classifier *stance.Classifier
	weigher    *stance.Weigher
	assessor   *llmverdict.Assessor
	explainer  *explanation.Generator

	maxEvidence int
}

// New assembles an analyzer from configuration. Every missing credential
// leaves the corresponding capability on its fallback path; nothing here
// fails hard except nothing.
func New(cfg config.Config, db *gorm.DB) *Analyzer {
	llm, err := core.NewClient(core.FactoryConfig{
		Provider:  cfg.AIProvider,
		Model:     cfg.AIModel,
		GeminiKey: cfg.GeminiKey,
		OpenAIKey: cfg.OpenAIKey,
	})
	if err != nil {
		log.Printf("pipeline: model capability unavailable, fallbacks apply: %v", err)
		llm = nil
	}

	rdb, err := data.OpenRedis(cfg.RedisURL)
	if err != nil {
		log.Printf("pipeline: redis unavailable, running uncached: %v", err)
		rdb = nil
	}
	responses := cache.NewResponses(rdb, cfg.CacheTTL)

	var loaders []domaintrust.LoadFunc
	if db != nil {
		loaders = append(loaders, domaintrust.DBLoader(db))
	}
	if cfg.TrustCSVPath != "" {
		if _, err := os.Stat(cfg.TrustCSVPath); err == nil {
			loaders = append(loaders, domaintrust.CSVLoader(cfg.TrustCSVPath))
		}
	}
	trust := domaintrust.NewTable(domaintrust.ChainLoader(loaders...))

	var source news.Source
	if cfg.GNewsKey != "" {
		source = news.NewGNewsClient(cfg.GNewsKey, responses)
	} else {
		source = news.NewRSSSource(responses)
	}

	maxEvidence := cfg.MaxEvidence
	if maxEvidence <= 0 {
		maxEvidence = news.DefaultMaxResults
	}

	return &Analyzer{
		trust:       trust,
		registry:    factcheck.NewClient(cfg.FactCheckKey, responses),
		normalizer:  factcheck.NewNormalizer(llm),
		source:      source,
		classifier:  stance.NewClassifier(llm),
		weigher:     stance.NewWeigher(trust),
		assessor:    llmverdict.NewAssessor(llm),
		explainer:   explanation.NewGenerator(llm),
		maxEvidence: maxEvidence,
	}
}

// NewWithComponents assembles an analyzer from explicit collaborators; used
// by tests and by callers that bring their own capability implementations.
func NewWithComponents(
	trust *domaintrust.Table,
	registry *factcheck.Client,
	normalizer *factcheck.Normalizer,
	source news.Source,
	classifier *stance.Classifier,
	weigher *stance.Weigher,
	assessor *llmverdict.Assessor,
	explainer *explanation.Generator,
) *Analyzer {
	return &Analyzer{
		trust:       trust,
		registry:    registry,
		normalizer:  normalizer,
		source:      source,
		classifier:  classifier,
		weigher:     weigher,
		assessor:    assessor,
		explainer:   explainer,
		maxEvidence: news.DefaultMaxResults,
	}
}

// Analyze runs the full verification pipeline for one claim. It always
// produces a structurally valid verdict; external failures degrade to each
// component's fallback and only context cancellation aborts the request.
func (a *Analyzer) Analyze(ctx context.Context, req Request) (*Report, error) {
	id := uuid.NewString()
	log.Printf("[%s] analyzing claim: %.120q", id, req.Claim)

	trustResult := a.trust.Score(req.URL)

	review, err := a.registry.Search(ctx, req.Claim)
	if err != nil {
		log.Printf("[%s] fact-check lookup degraded: %v", id, err)
		review = nil
	}
	factCheck := a.normalizer.Normalize(ctx, req.Claim, review)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	evidence := req.Evidence
	if evidence == nil && a.source != nil {
		max := req.MaxEvidence
		if max <= 0 {
			max = a.maxEvidence
		}
		evidence, err = a.source.Search(ctx, req.Claim, max)
		if err != nil {
			log.Printf("[%s] evidence retrieval degraded: %v", id, err)
			evidence = nil
		}
	}

	classified := a.classifier.ClassifyAll(ctx, req.Claim, evidence)
	summary := a.weigher.Weigh(classified)

	result := verdict.Aggregate(factCheck, summary)

	if result.Basis == types.BasisInsufficientEvidence || result.Basis == types.BasisMixedEvidence {
		assessment := a.assessor.Assess(ctx, req.Claim)
		if assessment.Used {
			log.Printf("[%s] inconclusive basis %s overridden by model assessment", id, result.Basis)
		}
		result = llmverdict.Apply(result, assessment)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	explanationText := a.explainer.Explain(ctx, explanation.Signals{
		Claim:       req.Claim,
		Result:      result,
		FactCheck:   factCheck,
		Stance:      summary,
		DomainTrust: trustResult,
	})

	log.Printf("[%s] verdict=%q confidence=%s basis=%s", id, result.Verdict, result.Confidence, result.Basis)

	return &Report{
		ID:          id,
		Claim:       req.Claim,
		Result:      result,
		DomainTrust: trustResult,
		FactCheck:   factCheck,
		Evidence:    classified,
		Stance:      summary,
		Explanation: explanationText,
	}, nil
}
