package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	aicore "github.com/truthlens/truthlens/src/ai/core"
	_ "github.com/truthlens/truthlens/src/ai/providers"
)

var (
	providersFlag = flag.String("providers", "gemini", "Comma-separated provider list or 'all'")
	modelFlag     = flag.String("model", "", "Override model name")
	promptFlag    = flag.String("prompt", defaultPrompt, "User prompt")
	timeoutFlag   = flag.Duration("timeout", 45*time.Second, "Per-provider timeout")
	tempFlag      = flag.Float64("temp", 0.2, "Completion temperature")
)

const defaultPrompt = "Reply with the single word READY."

var allProviders = []string{"gemini", "openai"}

func main() {
	log.SetFlags(0)
	flag.Parse()

	providers := resolveProviders(*providersFlag)
	if len(providers) == 0 {
		log.Fatal("no providers specified")
	}

	for _, provider := range providers {
		if err := runProvider(provider); err != nil {
			log.Printf("[%s] ERROR: %v", provider, err)
		}
	}
}

func runProvider(provider string) error {
	client, err := aicore.NewClient(aicore.FactoryConfig{
		Provider:    provider,
		Model:       *modelFlag,
		Temperature: *tempFlag,
		GeminiKey:   os.Getenv("GEMINI_API_KEY"),
		OpenAIKey:   os.Getenv("OPENAI_API_KEY"),
	})
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeoutFlag)
	defer cancel()

	start := time.Now()
	resp, err := client.Complete(ctx, *promptFlag, aicore.Options{})
	if err != nil {
		return err
	}

	fmt.Printf("[%s] %s (%.1fs)\n", provider, strings.TrimSpace(resp), time.Since(start).Seconds())
	return nil
}

func resolveProviders(raw string) []string {
	raw = strings.TrimSpace(raw)
	if strings.EqualFold(raw, "all") {
		return allProviders
	}
	var out []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
