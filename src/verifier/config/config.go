package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/truthlens/truthlens/src/data"
	"gorm.io/gorm"
)

// Config carries every credential and knob the verdict engine uses. Any field
// may be empty; each consuming component degrades to its documented fallback
// when its capability is not configured.
type Config struct {
	AIProvider string
	AIModel    string
	GeminiKey  string
	OpenAIKey  string

	FactCheckKey string
	GNewsKey     string

	MySQLDSN     string
	RedisURL     string
	TrustCSVPath string

	MaxEvidence int
	CacheTTL    time.Duration
}

// Load reads configuration from the settings table when a database is
// available, falling back to environment variables per key. The engine runs
// fully env-configured with a nil db.
func Load(db *gorm.DB) Config {
	if err := data.LoadSettings(db); err != nil {
		log.Printf("config: failed to load settings: %v", err)
	}

	cfg := Config{
		AIProvider:   getSetting("ai_provider", "AI_PROVIDER", "gemini"),
		AIModel:      getSetting("ai_model", "AI_MODEL", ""),
		GeminiKey:    getSetting("gemini_api_key", "GEMINI_API_KEY", ""),
		OpenAIKey:    getSetting("openai_api_key", "OPENAI_API_KEY", ""),
		FactCheckKey: getSetting("google_factcheck_api_key", "GOOGLE_FACTCHECK_API_KEY", ""),
		GNewsKey:     getSetting("gnews_api_key", "GNEWS_API_KEY", ""),
		MySQLDSN:     data.GetMySQLDSN(),
		RedisURL:     getSetting("redis_url", "REDIS_URL", ""),
		TrustCSVPath: getSetting("domain_trust_csv", "DOMAIN_TRUST_CSV", "data/domain_trust_seed.csv"),
		MaxEvidence:  5,
		CacheTTL:     15 * time.Minute,
	}

	if raw := getSetting("max_evidence", "MAX_EVIDENCE", ""); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			cfg.MaxEvidence = n
		}
	}

	return cfg
}

// getSetting retrieves a setting with env fallback.
func getSetting(name, envKey, defaultValue string) string {
	val := data.GetSetting(name)
	if val == "" {
		val = os.Getenv(envKey)
	}
	if val == "" {
		val = defaultValue
	}
	return val
}
