package domaintrust

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/truthlens/truthlens/src/verifier/types"
	"gorm.io/gorm"
)

// LoadFunc produces the full set of trust table rows. Loading happens once
// per process lifetime.
type LoadFunc func() ([]Entry, error)

// StaticLoader serves a fixed entry list; used in tests and as a seed.
func StaticLoader(entries []Entry) LoadFunc {
	return func() ([]Entry, error) {
		return entries, nil
	}
}

// CSVLoader reads trust rows from a CSV file with a header row of
// domain,trust_level,category,score,label,notes. Column order is free; an
// unparsable score falls back to the tier default at lookup time.
func CSVLoader(path string) LoadFunc {
	return func() ([]Entry, error) {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open trust csv: %w", err)
		}
		defer f.Close()
		return parseCSV(f)
	}
}

func parseCSV(r io.Reader) ([]Entry, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read trust csv header: %w", err)
	}
	col := map[string]int{}
	for i, name := range header {
		col[strings.ToLower(strings.TrimSpace(name))] = i
	}

	field := func(record []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	var entries []Entry
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read trust csv row: %w", err)
		}

		domain := strings.ToLower(field(record, "domain"))
		if domain == "" {
			continue
		}

		score, err := strconv.Atoi(field(record, "score"))
		if err != nil {
			score = 0
		}

		entries = append(entries, Entry{
			Domain:   domain,
			Tier:     ParseTier(field(record, "trust_level")),
			Score:    score,
			Category: field(record, "category"),
			Label:    field(record, "label"),
			Notes:    field(record, "notes"),
		})
	}
	return entries, nil
}

// DBLoader reads trust rows from the trust_domains table.
func DBLoader(db *gorm.DB) LoadFunc {
	return func() ([]Entry, error) {
		var rows []types.TrustDomain
		if err := db.Find(&rows).Error; err != nil {
			return nil, fmt.Errorf("load trust_domains: %w", err)
		}
		entries := make([]Entry, 0, len(rows))
		for _, row := range rows {
			entries = append(entries, Entry{
				Domain:   row.Domain,
				Tier:     ParseTier(row.Tier),
				Score:    row.Score,
				Category: row.Category,
				Label:    row.Label,
				Notes:    row.Notes,
			})
		}
		return entries, nil
	}
}

// ChainLoader tries loaders in order and returns the first non-empty result.
func ChainLoader(loaders ...LoadFunc) LoadFunc {
	return func() ([]Entry, error) {
		var lastErr error
		for _, load := range loaders {
			if load == nil {
				continue
			}
			entries, err := load()
			if err != nil {
				lastErr = err
				continue
			}
			if len(entries) > 0 {
				return entries, nil
			}
		}
		return nil, lastErr
	}
}
