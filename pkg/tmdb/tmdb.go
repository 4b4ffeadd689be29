// Package tmdb is a client for the TMDB catalog, covering the three lookups
// the scan engine needs: movie search, tv search, and episode titles.
package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	mhttp "github.com/mediasort/mediasort/pkg/http"
	"github.com/mediasort/mediasort/pkg/logger"
	"go.uber.org/zap"
)

const (
	DefaultBaseURL = "https://api.themoviedb.org"

	maxQueryLength = 100
	requestTimeout = time.Second * 15
)

// MovieResult is a single movie match from the catalog.
type MovieResult struct {
	ID         int
	Title      string
	Year       *int
	PosterPath string
}

// TVResult is a single series match from the catalog.
type TVResult struct {
	ID         int
	Name       string
	Year       *int
	PosterPath string
}

// ClientInterface is the catalog surface consumed by the scan engine.
// A nil result with a nil error means no match.
type ClientInterface interface {
	SearchMovie(ctx context.Context, name string, year *int) (*MovieResult, error)
	SearchTV(ctx context.Context, name string) (*TVResult, error)
	GetEpisodeTitle(ctx context.Context, seriesID, season, episode int) (string, error)
}

// Client talks to the TMDB HTTP API through a retrying client.
type Client struct {
	baseURL string
	apiKey  string
	client  mhttp.HTTPClient
}

var _ ClientInterface = (*Client)(nil)

// New creates a catalog client. An empty API key is allowed; every lookup
// then reports no match without touching the network.
func New(baseURL, apiKey string, opts ...mhttp.ClientOption) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		apiKey:  apiKey,
		client:  mhttp.NewRetryingClient(opts...),
	}
}

type searchResponse struct {
	Results []searchResult `json:"results"`
}

type searchResult struct {
	ID           int     `json:"id"`
	Title        *string `json:"title,omitempty"`
	Name         *string `json:"name,omitempty"`
	ReleaseDate  *string `json:"release_date,omitempty"`
	FirstAirDate *string `json:"first_air_date,omitempty"`
	PosterPath   *string `json:"poster_path,omitempty"`
}

type episodeResponse struct {
	Name string `json:"name"`
}

// SearchMovie looks up a movie by name. When a year is supplied a result with
// that exact release year is preferred; otherwise the first result wins.
func (c *Client) SearchMovie(ctx context.Context, name string, year *int) (*MovieResult, error) {
	if c.apiKey == "" {
		return nil, nil
	}

	query := CleanQuery(name)
	if query == "" {
		return nil, nil
	}

	var resp searchResponse
	ok, err := c.get(ctx, "/3/search/movie", url.Values{"query": []string{query}}, &resp)
	if err != nil || !ok || len(resp.Results) == 0 {
		return nil, err
	}

	selected := resp.Results[0]
	if year != nil {
		for _, r := range resp.Results {
			if y := yearOf(r.ReleaseDate); y != nil && *y == *year {
				selected = r
				break
			}
		}
	}

	result := &MovieResult{
		ID:   selected.ID,
		Year: yearOf(selected.ReleaseDate),
	}
	if selected.Title != nil {
		result.Title = *selected.Title
	}
	if selected.PosterPath != nil {
		result.PosterPath = *selected.PosterPath
	}

	return result, nil
}

// SearchTV looks up a series by name and returns the first result.
func (c *Client) SearchTV(ctx context.Context, name string) (*TVResult, error) {
	if c.apiKey == "" {
		return nil, nil
	}

	query := CleanQuery(name)
	if query == "" {
		return nil, nil
	}

	var resp searchResponse
	ok, err := c.get(ctx, "/3/search/tv", url.Values{"query": []string{query}}, &resp)
	if err != nil || !ok || len(resp.Results) == 0 {
		return nil, err
	}

	selected := resp.Results[0]
	result := &TVResult{
		ID:   selected.ID,
		Year: yearOf(selected.FirstAirDate),
	}
	if selected.Name != nil {
		result.Name = *selected.Name
	}
	if selected.PosterPath != nil {
		result.PosterPath = *selected.PosterPath
	}

	return result, nil
}

// GetEpisodeTitle fetches the title of a single episode. An empty string
// means the episode is unknown to the catalog.
func (c *Client) GetEpisodeTitle(ctx context.Context, seriesID, season, episode int) (string, error) {
	if c.apiKey == "" {
		return "", nil
	}

	path := fmt.Sprintf("/3/tv/%d/season/%d/episode/%d", seriesID, season, episode)

	var resp episodeResponse
	ok, err := c.get(ctx, path, nil, &resp)
	if err != nil || !ok {
		return "", err
	}

	return resp.Name, nil
}

// get performs a single catalog request. It reports ok=false for any
// non-success response so callers treat it as a miss rather than a failure.
func (c *Client) get(ctx context.Context, path string, params url.Values, out any) (bool, error) {
	log := logger.FromCtx(ctx)

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return false, err
	}
	req.Header.Add("Authorization", "Bearer "+c.apiKey)
	req.Header.Add("accept", "application/json")

	res, err := c.client.Do(req)
	if err != nil {
		return false, err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		log.Debug("catalog lookup miss", zap.String("path", path), zap.String("status", res.Status))
		return false, nil
	}

	b, err := io.ReadAll(res.Body)
	if err != nil {
		return false, err
	}

	return true, json.Unmarshal(b, out)
}

var (
	nonAlphanumericRegex = regexp.MustCompile(`[^a-zA-Z0-9\s]`)
	querySpaceRegex      = regexp.MustCompile(`\s+`)
)

var stopWords = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "and": {}, "of": {},
	"in": {}, "on": {}, "at": {}, "to": {}, "for": {},
}

// CleanQuery prepares a title for the catalog's search endpoint: strip
// non-alphanumerics, drop stop words, collapse whitespace, truncate.
func CleanQuery(name string) string {
	name = nonAlphanumericRegex.ReplaceAllString(name, " ")
	words := querySpaceRegex.Split(strings.TrimSpace(name), -1)

	kept := words[:0]
	for _, w := range words {
		if w == "" {
			continue
		}
		if _, stop := stopWords[strings.ToLower(w)]; stop {
			continue
		}
		kept = append(kept, w)
	}

	query := strings.Join(kept, " ")
	if len(query) > maxQueryLength {
		query = query[:maxQueryLength]
	}

	return query
}

func yearOf(date *string) *int {
	if date == nil || len(*date) < 4 {
		return nil
	}

	year, err := strconv.Atoi((*date)[:4])
	if err != nil {
		return nil
	}

	return &year
}
