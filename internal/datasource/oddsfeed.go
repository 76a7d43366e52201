package datasource

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const oddsFeedSourceName = "odds_feed"

// OddsFeedClient implements DataSource against a h2h odds feed API
type OddsFeedClient struct {
	httpClient *RateLimitedHTTPClient
	baseURL    string
	apiKey     string
	regions    string
	markets    string
	enabled    bool
	logger     *log.Logger
}

// feedEvent represents an upcoming event as returned by the feed
type feedEvent struct {
	ID           string          `json:"id"`
	SportKey     string          `json:"sport_key"`
	SportTitle   string          `json:"sport_title"`
	CommenceTime time.Time       `json:"commence_time"`
	HomeTeam     string          `json:"home_team"`
	AwayTeam     string          `json:"away_team"`
	Bookmakers   []feedBookmaker `json:"bookmakers"`
}

type feedBookmaker struct {
	Key        string       `json:"key"`
	Title      string       `json:"title"`
	LastUpdate time.Time    `json:"last_update"`
	Markets    []feedMarket `json:"markets"`
}

type feedMarket struct {
	Key      string        `json:"key"`
	Outcomes []feedOutcome `json:"outcomes"`
}

type feedOutcome struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// feedScore represents a completed or in-play event with scores
type feedScore struct {
	ID           string           `json:"id"`
	SportKey     string           `json:"sport_key"`
	CommenceTime time.Time        `json:"commence_time"`
	Completed    bool             `json:"completed"`
	HomeTeam     string           `json:"home_team"`
	AwayTeam     string           `json:"away_team"`
	Scores       []feedScoreEntry `json:"scores"`
}

type feedScoreEntry struct {
	Name  string `json:"name"`
	Score string `json:"score"`
}

// NewOddsFeedClient creates a new odds feed API client
func NewOddsFeedClient(httpClient *RateLimitedHTTPClient, baseURL, apiKey, regions, markets string, logger *log.Logger) *OddsFeedClient {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	if regions == "" {
		regions = "uk"
	}
	if markets == "" {
		markets = "h2h"
	}
	return &OddsFeedClient{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		regions:    regions,
		markets:    markets,
		enabled:    apiKey != "",
		logger:     logger,
	}
}

// Name returns the name of the data source
func (c *OddsFeedClient) Name() string {
	return oddsFeedSourceName
}

// IsEnabled returns whether this data source is currently enabled
func (c *OddsFeedClient) IsEnabled() bool {
	return c.enabled
}

// FetchOdds retrieves upcoming events with bookmaker odds for a sport
func (c *OddsFeedClient) FetchOdds(ctx context.Context, sportKey string) ([]EventData, error) {
	if !c.enabled {
		return nil, NewDataSourceError(oddsFeedSourceName, ErrCodeAuthenticationFailed, "data source disabled, no API key configured", nil)
	}

	q := url.Values{}
	q.Set("apiKey", c.apiKey)
	q.Set("regions", c.regions)
	q.Set("markets", c.markets)
	q.Set("oddsFormat", "decimal")
	endpoint := fmt.Sprintf("%s/sports/%s/odds?%s", c.baseURL, url.PathEscape(sportKey), q.Encode())

	body, err := c.getJSON(ctx, endpoint)
	if err != nil {
		return nil, err
	}

	var events []feedEvent
	if err := json.Unmarshal(body, &events); err != nil {
		return nil, NewDataSourceError(oddsFeedSourceName, ErrCodeInvalidData, "failed to decode odds response", err)
	}

	fetchedAt := time.Now().UTC()
	out := make([]EventData, 0, len(events))
	for _, ev := range events {
		out = append(out, normalizeEvent(ev, fetchedAt))
	}

	c.logger.Printf("Fetched %d events for sport %s", len(out), sportKey)
	return out, nil
}

// FetchScores retrieves recent results for a sport
func (c *OddsFeedClient) FetchScores(ctx context.Context, sportKey string, daysBack int) ([]ScoreData, error) {
	if !c.enabled {
		return nil, NewDataSourceError(oddsFeedSourceName, ErrCodeAuthenticationFailed, "data source disabled, no API key configured", nil)
	}
	if daysBack < 1 {
		daysBack = 1
	}

	q := url.Values{}
	q.Set("apiKey", c.apiKey)
	q.Set("daysFrom", strconv.Itoa(daysBack))
	endpoint := fmt.Sprintf("%s/sports/%s/scores?%s", c.baseURL, url.PathEscape(sportKey), q.Encode())

	body, err := c.getJSON(ctx, endpoint)
	if err != nil {
		return nil, err
	}

	var scores []feedScore
	if err := json.Unmarshal(body, &scores); err != nil {
		return nil, NewDataSourceError(oddsFeedSourceName, ErrCodeInvalidData, "failed to decode scores response", err)
	}

	fetchedAt := time.Now().UTC()
	out := make([]ScoreData, 0, len(scores))
	for _, sc := range scores {
		out = append(out, normalizeScore(sc, fetchedAt))
	}

	c.logger.Printf("Fetched %d score records for sport %s", len(out), sportKey)
	return out, nil
}

// getJSON executes a GET and returns the body, mapping HTTP statuses to domain errors
func (c *OddsFeedClient) getJSON(ctx context.Context, endpoint string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, NewDataSourceError(oddsFeedSourceName, ErrCodeNetworkError, "failed to create request", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(ctx, req)
	if err != nil {
		return nil, NewDataSourceError(oddsFeedSourceName, ErrCodeNetworkError, "request failed", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, NewDataSourceError(oddsFeedSourceName, ErrCodeAuthenticationFailed, "invalid API key", ErrAuthenticationFailed)
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, NewDataSourceError(oddsFeedSourceName, ErrCodeRateLimitExceeded, "feed quota exhausted", ErrRateLimitExceeded)
	case resp.StatusCode == http.StatusNotFound:
		return nil, NewDataSourceError(oddsFeedSourceName, ErrCodeNotFound, "unknown sport or endpoint", nil)
	case resp.StatusCode != http.StatusOK:
		return nil, NewDataSourceError(oddsFeedSourceName, ErrCodeServerError, fmt.Sprintf("unexpected status %d", resp.StatusCode), nil)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, NewDataSourceError(oddsFeedSourceName, ErrCodeNetworkError, "failed to read response body", err)
	}
	return body, nil
}

// normalizeEvent converts a feed event to the provider-neutral form, keeping
// only h2h markets. Bookmakers without a h2h market are dropped.
func normalizeEvent(ev feedEvent, fetchedAt time.Time) EventData {
	out := EventData{
		SourceID:     ev.ID,
		SportKey:     ev.SportKey,
		SportTitle:   ev.SportTitle,
		CommenceTime: ev.CommenceTime.UTC(),
		HomeTeam:     ev.HomeTeam,
		AwayTeam:     ev.AwayTeam,
		FetchedAt:    fetchedAt,
	}

	for _, bk := range ev.Bookmakers {
		for _, mk := range bk.Markets {
			if mk.Key != "h2h" {
				continue
			}
			quote := BookmakerQuote{
				Key:        bk.Key,
				Title:      bk.Title,
				LastUpdate: bk.LastUpdate.UTC(),
				Outcomes:   make([]OutcomeQuote, 0, len(mk.Outcomes)),
			}
			for _, oc := range mk.Outcomes {
				quote.Outcomes = append(quote.Outcomes, OutcomeQuote{Name: oc.Name, Price: oc.Price})
			}
			out.Bookmakers = append(out.Bookmakers, quote)
			break
		}
	}

	return out
}

// normalizeScore converts a feed score record, matching score entries to the
// home and away teams by name. Events without reported scores keep nil scores.
func normalizeScore(sc feedScore, fetchedAt time.Time) ScoreData {
	out := ScoreData{
		SourceID:  sc.ID,
		SportKey:  sc.SportKey,
		Completed: sc.Completed,
		HomeTeam:  sc.HomeTeam,
		AwayTeam:  sc.AwayTeam,
		FetchedAt: fetchedAt,
	}

	for _, entry := range sc.Scores {
		val, err := strconv.Atoi(strings.TrimSpace(entry.Score))
		if err != nil {
			continue
		}
		switch {
		case strings.EqualFold(entry.Name, sc.HomeTeam):
			v := val
			out.HomeScore = &v
		case strings.EqualFold(entry.Name, sc.AwayTeam):
			v := val
			out.AwayScore = &v
		}
	}

	return out
}
