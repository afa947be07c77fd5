package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/redis/go-redis/v9"

	"pestdesk/internal/pkg/config"
	"pestdesk/internal/pkg/errs"
)

var (
	ErrNoAPIKey  = errs.New("geocoding API key not configured")
	ErrNoResults = errs.New("no geocoding results for address")
)

const geocodeEndpoint = "https://maps.googleapis.com/maps/api/geocode/json"

// GoogleClient resolves street addresses through the Google Geocoding API.
// Results are cached in redis; pest-control customers rarely move, so a
// long TTL saves most of the quota.
type GoogleClient struct {
	apiKey   string
	cacheTTL time.Duration
	http     *http.Client
	cache    *redis.Client
}

func NewGoogleClient(cfg config.GeocodeConfig, cache *redis.Client) *GoogleClient {
	return &GoogleClient{
		apiKey:   cfg.APIKey,
		cacheTTL: cfg.CacheTTL,
		http:     &http.Client{Timeout: 10 * time.Second},
		cache:    cache,
	}
}

type cachedLocation struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type geocodeResponse struct {
	Status  string `json:"status"`
	Results []struct {
		Geometry struct {
			Location cachedLocation `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

func (c *GoogleClient) Geocode(ctx context.Context, address string) (float64, float64, error) {
	if c.apiKey == "" {
		return 0, 0, ErrNoAPIKey
	}

	cacheKey := "geocode:" + address
	if cached, err := c.cache.Get(ctx, cacheKey).Result(); err == nil {
		var loc cachedLocation
		if err := json.Unmarshal([]byte(cached), &loc); err == nil {
			return loc.Lat, loc.Lng, nil
		}
	} else if !errors.Is(err, redis.Nil) {
		slog.Warn("geocode cache lookup failed", "error", err.Error())
	}

	loc, err := c.lookup(ctx, address)
	if err != nil {
		return 0, 0, err
	}

	if payload, err := json.Marshal(loc); err == nil {
		if err := c.cache.Set(ctx, cacheKey, payload, c.cacheTTL).Err(); err != nil {
			slog.Warn("geocode cache store failed", "error", err.Error())
		}
	}

	return loc.Lat, loc.Lng, nil
}

func (c *GoogleClient) lookup(ctx context.Context, address string) (cachedLocation, error) {
	endpoint := fmt.Sprintf("%s?address=%s&key=%s", geocodeEndpoint, url.QueryEscape(address), url.QueryEscape(c.apiKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return cachedLocation{}, errs.Wrap(err, "failed to build geocoding request")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return cachedLocation{}, errs.Wrap(err, "geocoding request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return cachedLocation{}, errs.New(fmt.Sprintf("geocoding API returned status %d", resp.StatusCode))
	}

	var data geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return cachedLocation{}, errs.Wrap(err, "failed to decode geocoding response")
	}

	if data.Status != "OK" || len(data.Results) == 0 {
		return cachedLocation{}, ErrNoResults
	}

	return data.Results[0].Geometry.Location, nil
}
