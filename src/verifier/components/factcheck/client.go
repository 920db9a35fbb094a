package factcheck

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/truthlens/truthlens/src/cache"
	"github.com/truthlens/truthlens/src/webclient"
	"golang.org/x/time/rate"
)

const apiURL = "https://factchecktools.googleapis.com/v1alpha1/claims:search"

// Client queries the Google Fact Check Tools registry. The first claim review
// of the first result is used; everything else about a lookup failure
// degrades to "no fact-check found" at the caller.
type Client struct {
	apiKey     string
	httpClient *http.Client
	limiter    *rate.Limiter
	responses  *cache.Responses
}

func NewClient(apiKey string, responses *cache.Responses) *Client {
	return &Client{
		apiKey:     apiKey,
		httpClient: webclient.NewDefault(10 * time.Second),
		limiter:    rate.NewLimiter(rate.Every(time.Second), 2),
		responses:  responses,
	}
}

type searchResponse struct {
	Claims []struct {
		Text        string `json:"text"`
		ClaimReview []struct {
			Publisher struct {
				Name string `json:"name"`
			} `json:"publisher"`
			URL           string `json:"url"`
			TextualRating string `json:"textualRating"`
		} `json:"claimReview"`
	} `json:"claims"`
}

type cachedLookup struct {
	Found  bool   `json:"found"`
	Review Review `json:"review"`
}

// Search looks up existing fact-checks for a claim. A nil review with a nil
// error means the registry had no match; a nil client or an absent API key
// behaves the same way so the engine runs unconfigured.
func (c *Client) Search(ctx context.Context, claim string) (*Review, error) {
	if c == nil || claim == "" || c.apiKey == "" {
		return nil, nil
	}

	key := cache.FactCheckKey(claim)
	var cached cachedLookup
	if c.responses.Get(ctx, key, &cached) {
		if !cached.Found {
			return nil, nil
		}
		rev := cached.Review
		return &rev, nil
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	query := url.Values{}
	query.Set("key", c.apiKey)
	query.Set("query", claim)
	query.Set("languageCode", "en")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL+"?"+query.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fact-check registry: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fact-check registry: status %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var result searchResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("fact-check registry: %w", err)
	}

	rev := firstReview(result)
	if rev == nil {
		c.responses.Set(ctx, key, cachedLookup{Found: false})
		return nil, nil
	}

	c.responses.Set(ctx, key, cachedLookup{Found: true, Review: *rev})
	return rev, nil
}

func firstReview(result searchResponse) *Review {
	if len(result.Claims) == 0 {
		return nil
	}
	first := result.Claims[0]
	if len(first.ClaimReview) == 0 {
		return nil
	}
	review := first.ClaimReview[0]
	return &Review{
		RatingText: review.TextualRating,
		Summary:    first.Text,
		Publisher:  review.Publisher.Name,
		URL:        review.URL,
	}
}
