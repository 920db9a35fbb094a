package news

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/truthlens/truthlens/src/cache"
	"github.com/truthlens/truthlens/src/verifier/components/domaintrust"
	"github.com/truthlens/truthlens/src/verifier/types"
	"github.com/truthlens/truthlens/src/webclient"
	"golang.org/x/time/rate"
)

const (
	gnewsAPIURL   = "https://gnews.io/api/v4/search"
	queryMaxChars = 200
)

// GNewsClient retrieves evidence from the GNews search API, sorted by
// relevance.
type GNewsClient struct {
	apiKey     string
	httpClient *http.Client
	limiter    *rate.Limiter
	responses  *cache.Responses
}

func NewGNewsClient(apiKey string, responses *cache.Responses) *GNewsClient {
	return &GNewsClient{
		apiKey:     apiKey,
		httpClient: webclient.NewDefault(10 * time.Second),
		limiter:    rate.NewLimiter(rate.Every(time.Second), 2),
		responses:  responses,
	}
}

type gnewsResponse struct {
	Articles []struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		URL         string `json:"url"`
		PublishedAt string `json:"publishedAt"`
		Source      struct {
			Name string `json:"name"`
		} `json:"source"`
	} `json:"articles"`
}

func (c *GNewsClient) Search(ctx context.Context, claim string, max int) ([]types.EvidenceItem, error) {
	if claim == "" || c.apiKey == "" {
		return nil, nil
	}
	if max <= 0 {
		max = DefaultMaxResults
	}

	key := cache.NewsKey(claim, max)
	var cached []types.EvidenceItem
	if c.responses.Get(ctx, key, &cached) {
		return cached, nil
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	query := url.Values{}
	query.Set("apikey", c.apiKey)
	query.Set("q", truncateQuery(claim, queryMaxChars))
	query.Set("lang", "en")
	query.Set("max", strconv.Itoa(max))
	query.Set("sortby", "relevance")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, gnewsAPIURL+"?"+query.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("gnews: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("gnews: status %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var result gnewsResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("gnews: %w", err)
	}

	items := make([]types.EvidenceItem, 0, len(result.Articles))
	for _, article := range result.Articles {
		items = append(items, types.EvidenceItem{
			Title:        sanitize(article.Title),
			Description:  sanitize(article.Description),
			URL:          article.URL,
			SourceDomain: domaintrust.ExtractDomain(article.URL),
			SourceName:   article.Source.Name,
			PublishedAt:  article.PublishedAt,
		})
	}

	c.responses.Set(ctx, key, items)
	return items, nil
}
