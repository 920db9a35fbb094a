package news

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/mmcdole/gofeed"
	"github.com/truthlens/truthlens/src/cache"
	"github.com/truthlens/truthlens/src/verifier/components/domaintrust"
	"github.com/truthlens/truthlens/src/verifier/types"
	"github.com/truthlens/truthlens/src/webclient"
)

const rssBaseURL = "https://news.google.com/rss/search"

// RSSSource retrieves evidence from the Google News RSS feed. It needs no
// credential and serves as the evidence source when no GNews key is
// configured.
type RSSSource struct {
	parser    *gofeed.Parser
	responses *cache.Responses
}

func NewRSSSource(responses *cache.Responses) *RSSSource {
	parser := gofeed.NewParser()
	parser.Client = webclient.NewDefault(10 * time.Second)
	return &RSSSource{parser: parser, responses: responses}
}

func (s *RSSSource) Search(ctx context.Context, claim string, max int) ([]types.EvidenceItem, error) {
	if claim == "" {
		return nil, nil
	}
	if max <= 0 {
		max = DefaultMaxResults
	}

	key := cache.NewsKey("rss:"+claim, max)
	var cached []types.EvidenceItem
	if s.responses.Get(ctx, key, &cached) {
		return cached, nil
	}

	query := url.Values{}
	query.Set("q", truncateQuery(claim, queryMaxChars))
	query.Set("hl", "en-US")
	query.Set("gl", "US")
	query.Set("ceid", "US:en")

	feed, err := s.parser.ParseURLWithContext(rssBaseURL+"?"+query.Encode(), ctx)
	if err != nil {
		return nil, fmt.Errorf("news rss: %w", err)
	}

	items := make([]types.EvidenceItem, 0, max)
	for _, entry := range feed.Items {
		if len(items) >= max {
			break
		}

		published := entry.Published
		if entry.PublishedParsed != nil {
			published = entry.PublishedParsed.Format(time.RFC3339)
		}

		sourceName := ""
		// Google News wraps the original publisher in a per-item source tag.
		if entry.Custom != nil {
			sourceName = entry.Custom["source"]
		}

		items = append(items, types.EvidenceItem{
			Title:        sanitize(entry.Title),
			Description:  sanitize(entry.Description),
			URL:          entry.Link,
			SourceDomain: domaintrust.ExtractDomain(entry.Link),
			SourceName:   sourceName,
			PublishedAt:  published,
		})
	}

	s.responses.Set(ctx, key, items)
	return items, nil
}
