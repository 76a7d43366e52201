package datasource

import (
	"fmt"
	"log"

	"github.com/yourusername/odds-iq/internal/config"
)

// SourceType represents the type of data source
type SourceType string

const (
	// Live odds feed data source type
	OddsFeedSourceType SourceType = "odds_feed"
)

// Factory creates DataSource implementations based on configuration
type Factory struct {
	logger *log.Logger
	config *config.Config
}

// NewFactory creates a new data source factory
func NewFactory(cfg *config.Config, logger *log.Logger) *Factory {
	return &Factory{
		logger: logger,
		config: cfg,
	}
}

// Create creates a new data source of the given type sharing the provided HTTP client
func (f *Factory) Create(sourceType SourceType, httpClient *RateLimitedHTTPClient) (DataSource, error) {
	if httpClient == nil {
		return nil, fmt.Errorf("HTTP client is required")
	}

	switch sourceType {
	case OddsFeedSourceType:
		feed := f.config.OddsFeed
		if feed.APIKey == "" {
			return nil, fmt.Errorf("odds feed API key is required")
		}
		return NewOddsFeedClient(httpClient, feed.APIURL, feed.APIKey, feed.Regions, feed.Markets, f.logger), nil

	default:
		return nil, fmt.Errorf("unknown data source type: %s", sourceType)
	}
}

// NewOddsFeed builds the default odds feed source with its own rate-limited client
func (f *Factory) NewOddsFeed() (DataSource, *RateLimitedHTTPClient, error) {
	httpClient := NewRateLimitedHTTPClient(HTTPClientConfigFromFeed(f.config.OddsFeed), f.logger)

	source, err := f.Create(OddsFeedSourceType, httpClient)
	if err != nil {
		httpClient.Close()
		return nil, nil, err
	}

	if f.logger != nil {
		f.logger.Printf("Created data source: %s", source.Name())
	}
	return source, httpClient, nil
}
