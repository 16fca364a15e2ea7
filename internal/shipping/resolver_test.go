package shipping

import (
	"context"
	"errors"
	"testing"

	"storefront-service/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	rates []models.ShippingRate
	err   error
	calls int
}

func (f *fakeSource) GetShippingRates(ctx context.Context) ([]models.ShippingRate, error) {
	f.calls++
	return f.rates, f.err
}

func TestResolverBuildsMappingFromSource(t *testing.T) {
	src := &fakeSource{rates: []models.ShippingRate{
		{Neighborhood: "Centro", Fee: 600},
		{Neighborhood: "Junco", Fee: 500},
	}}
	r := NewResolver(src)

	rates := r.Rates(context.Background())
	assert.Equal(t, int64(600), rates["Centro"])
	assert.Equal(t, int64(500), rates["Junco"])
}

func TestResolverMemoizesSingleFetch(t *testing.T) {
	src := &fakeSource{rates: []models.ShippingRate{{Neighborhood: "Centro", Fee: 600}}}
	r := NewResolver(src)

	ctx := context.Background()
	r.Rates(ctx)
	r.Rates(ctx)
	r.FeeFor(ctx, "Centro")

	assert.Equal(t, 1, src.calls)
}

func TestResolverFallsBackAndCachesFailure(t *testing.T) {
	src := &fakeSource{err: errors.New("connection refused")}
	r := NewResolver(src)

	ctx := context.Background()
	rates := r.Rates(ctx)
	require.NotEmpty(t, rates)
	assert.Equal(t, fallbackRates, rates)

	// The fallback result is cached like a successful fetch.
	r.Rates(ctx)
	assert.Equal(t, 1, src.calls)
}

func TestClearCacheForcesRefetch(t *testing.T) {
	src := &fakeSource{err: errors.New("connection refused")}
	r := NewResolver(src)

	ctx := context.Background()
	r.Rates(ctx)

	src.err = nil
	src.rates = []models.ShippingRate{{Neighborhood: "Derby", Fee: 600}}
	r.ClearCache()

	rates := r.Rates(ctx)
	assert.Equal(t, 2, src.calls)
	assert.Equal(t, int64(600), rates["Derby"])
}

func TestFeeForUnknownNeighborhoodIsZero(t *testing.T) {
	src := &fakeSource{rates: []models.ShippingRate{{Neighborhood: "Centro", Fee: 600}}}
	r := NewResolver(src)

	ctx := context.Background()
	assert.Equal(t, int64(0), r.FeeFor(ctx, ""))
	assert.Equal(t, int64(0), r.FeeFor(ctx, "Bairro Inexistente"))
	assert.Equal(t, int64(600), r.FeeFor(ctx, "Centro"))
}

func TestFallbackTableShape(t *testing.T) {
	rates := FallbackRates()
	assert.Len(t, rates, 22)
	assert.Equal(t, int64(0), rates["Retirar na loja"])
	for name, fee := range rates {
		assert.Contains(t, []int64{0, 500, 600, 700}, fee, "unexpected fee for %s", name)
	}

	// FallbackRates returns a copy, mutating it must not leak.
	rates["Centro"] = 9999
	assert.Equal(t, int64(600), FallbackRates()["Centro"])
}
