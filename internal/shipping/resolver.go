package shipping

import (
	"context"
	"sort"
	"sync"

	"storefront-service/internal/models"
	"storefront-service/internal/util"

	"go.uber.org/zap"
)

// RateSource provides the authoritative shipping rates. Satisfied by the
// database store.
type RateSource interface {
	GetShippingRates(ctx context.Context) ([]models.ShippingRate, error)
}

// Resolver serves the neighborhood→fee mapping, fetching it from the source
// once and memoizing the result for the rest of the session. A failed fetch
// falls back to the static table and is cached the same way, so a transient
// failure holds until ClearCache or restart.
type Resolver struct {
	source RateSource
	logger *zap.Logger

	mu     sync.Mutex
	cached map[string]int64
}

// NewResolver creates a resolver over the given source.
func NewResolver(source RateSource) *Resolver {
	return &Resolver{
		source: source,
		logger: util.GetLogger(),
	}
}

// Rates returns the neighborhood→fee mapping (fees in centavos).
func (r *Resolver) Rates(ctx context.Context) map[string]int64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.cached != nil {
		return r.cached
	}

	ctx, span := util.StartSpan(ctx, "shipping.Resolver.Rates")
	defer span.End()

	rates, err := r.source.GetShippingRates(ctx)
	if err != nil {
		util.ShippingRateFetchesTotal.WithLabelValues("fallback").Inc()
		r.logger.Warn("Failed to fetch shipping rates, using fallback table", zap.Error(err))
		r.cached = FallbackRates()
		return r.cached
	}

	util.ShippingRateFetchesTotal.WithLabelValues("success").Inc()
	mapping := make(map[string]int64, len(rates))
	for _, rate := range rates {
		mapping[rate.Neighborhood] = rate.Fee
	}
	r.cached = mapping
	return r.cached
}

// FeeFor returns the fee for a neighborhood in centavos. Unknown or empty
// neighborhoods resolve to 0.
func (r *Resolver) FeeFor(ctx context.Context, neighborhood string) int64 {
	if neighborhood == "" {
		return 0
	}
	return r.Rates(ctx)[neighborhood]
}

// Neighborhoods returns the known neighborhood names, sorted.
func (r *Resolver) Neighborhoods(ctx context.Context) []string {
	rates := r.Rates(ctx)
	names := make([]string, 0, len(rates))
	for name := range rates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ClearCache forces the next call to re-fetch from the source. Called after
// admin rate updates so they take effect without a restart.
func (r *Resolver) ClearCache() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cached = nil
}
