package rateshop

import (
	"context"
	"encoding/json"
	"fmt"
	"hash/fnv"
	"net/http"
	"net/url"
	"time"

	"rateshopper/config"
	"rateshopper/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const competitorRatesPrefix = "competitorRates:"

// DefaultRateShopService caches competitor rates in Redis and shops them
// from the configured rate-search API. Without an API endpoint it serves a
// deterministic stub set so the pricing engine stays exercisable offline.
type DefaultRateShopService struct {
	Cache      *redis.Client
	HTTPClient *http.Client
}

func NewDefaultRateShopService(cache *redis.Client) *DefaultRateShopService {
	return &DefaultRateShopService{
		Cache:      cache,
		HTTPClient: &http.Client{Timeout: 5 * time.Second},
	}
}

type rateSearchResponse struct {
	Rates []float64 `json:"rates"`
}

// FetchCompetitorRates returns the cached competitor rates for a property,
// refreshing them on a cache miss.
func (s *DefaultRateShopService) FetchCompetitorRates(ctx context.Context, propertyID string) ([]float64, error) {
	if s.Cache != nil {
		data, err := s.Cache.Get(ctx, competitorRatesPrefix+propertyID).Result()
		if err == nil {
			var rates []float64
			if err := json.Unmarshal([]byte(data), &rates); err == nil {
				return rates, nil
			}
		}
	}
	return s.Refresh(ctx, propertyID)
}

// Refresh re-shops the competitor rates and rewrites the cache entry.
func (s *DefaultRateShopService) Refresh(ctx context.Context, propertyID string) ([]float64, error) {
	rates, err := s.shop(ctx, propertyID)
	if err != nil {
		return nil, err
	}

	if s.Cache != nil {
		ttl := time.Duration(config.AppConfig.CompetitorCacheTTLMin) * time.Minute
		if ttl <= 0 {
			ttl = time.Hour
		}
		data, err := json.Marshal(rates)
		if err == nil {
			if err := s.Cache.Set(ctx, competitorRatesPrefix+propertyID, data, ttl).Err(); err != nil {
				utils.GetLogger().Warn("Failed to cache competitor rates",
					zap.String("propertyId", propertyID), zap.Error(err))
			}
		}
	}
	return rates, nil
}

func (s *DefaultRateShopService) shop(ctx context.Context, propertyID string) ([]float64, error) {
	apiURL := config.AppConfig.RateSearchAPIURL
	if apiURL == "" {
		return stubRates(propertyID), nil
	}

	endpoint := fmt.Sprintf("%s?property=%s&key=%s",
		apiURL, url.QueryEscape(propertyID), url.QueryEscape(config.AppConfig.RateSearchAPIKey))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build rate search request: %w", err)
	}
	resp, err := s.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("rate search request failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("rate search returned status %d", resp.StatusCode)
	}

	var body rateSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode rate search response: %w", err)
	}
	return body.Rates, nil
}

// stubRates derives a stable comp set from the property ID so repeated
// calls return identical figures.
func stubRates(propertyID string) []float64 {
	h := fnv.New32a()
	h.Write([]byte(propertyID))
	base := 2000 + float64(h.Sum32()%1500)
	return []float64{base * 0.9, base, base * 1.1, base * 1.2}
}
