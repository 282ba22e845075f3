package rateshop

import "context"

// RateShopService supplies competitor nightly rates for a property's comp
// set. The engine treats it as an opaque collaborator: failures or empty
// results simply disable the competitor pricing dimension.
type RateShopService interface {
	// FetchCompetitorRates returns the current competitor rates, serving
	// from cache when possible.
	FetchCompetitorRates(ctx context.Context, propertyID string) ([]float64, error)
	// Refresh re-shops the rates from the upstream search API and rewrites
	// the cache.
	Refresh(ctx context.Context, propertyID string) ([]float64, error)
}
