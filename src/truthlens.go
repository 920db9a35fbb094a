package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/truthlens/truthlens/src/ai/providers"
	"github.com/truthlens/truthlens/src/data"
	"github.com/truthlens/truthlens/src/verifier/config"
	"github.com/truthlens/truthlens/src/verifier/pipeline"
	"gorm.io/gorm"
)

var (
	urlFlag     = flag.String("url", "", "Source URL the claim was found at")
	maxFlag     = flag.Int("max", 0, "Maximum evidence articles to retrieve")
	timeoutFlag = flag.Duration("timeout", 2*time.Minute, "Analysis timeout")
)

func main() {
	_ = godotenv.Load()
	flag.Parse()

	claim := strings.TrimSpace(strings.Join(flag.Args(), " "))
	if claim == "" {
		log.Fatal("usage: truthlens [-url URL] [-max N] <claim text>")
	}

	var db *gorm.DB
	if dsn := data.GetMySQLDSN(); dsn != "" {
		var err error
		db, err = data.ConnectMySQL(dsn)
		if err != nil {
			log.Printf("mysql unavailable, continuing without settings table: %v", err)
			db = nil
		}
	}

	cfg := config.Load(db)
	analyzer := pipeline.New(cfg, db)

	ctx, cancel := context.WithTimeout(context.Background(), *timeoutFlag)
	defer cancel()

	report, err := analyzer.Analyze(ctx, pipeline.Request{
		Claim:       claim,
		URL:         *urlFlag,
		MaxEvidence: *maxFlag,
	})
	if err != nil {
		log.Fatalf("analysis aborted: %v", err)
	}

	out, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		log.Fatalf("encode report: %v", err)
	}
	os.Stdout.Write(append(out, '\n'))
}
