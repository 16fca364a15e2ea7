package checkout

import (
	"context"
	"net/url"
	"strings"
	"testing"

	"storefront-service/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCartStore struct {
	carts map[string][]models.CartLine
}

func (f *fakeCartStore) Load(ctx context.Context, cartID string) (*models.Cart, error) {
	lines := f.carts[cartID]
	if lines == nil {
		lines = []models.CartLine{}
	}
	return &models.Cart{ID: cartID, Lines: lines}, nil
}

func (f *fakeCartStore) Clear(ctx context.Context, cartID string) error {
	f.carts[cartID] = []models.CartLine{}
	return nil
}

type fakeResolver struct {
	rates map[string]int64
}

func (f *fakeResolver) Rates(ctx context.Context) map[string]int64 {
	return f.rates
}

type fakePublisher struct {
	events []*models.OrderPlacedEvent
}

func (f *fakePublisher) PublishOrderPlaced(ctx context.Context, e *models.OrderPlacedEvent) error {
	f.events = append(f.events, e)
	return nil
}

func TestFinalizeHappyPath(t *testing.T) {
	carts := &fakeCartStore{carts: map[string][]models.CartLine{
		"c1": {{Product: models.Product{ID: 1, Name: "Açaí", Price: 399}, Quantity: 3}},
	}}
	resolver := &fakeResolver{rates: map[string]int64{"Centro": 600}}
	publisher := &fakePublisher{}

	o := NewOrchestrator(carts, resolver, publisher, "5588996559305")

	res, fieldErrs, err := o.Finalize(context.Background(), "c1", validInfo())
	require.NoError(t, err)
	require.Nil(t, fieldErrs)
	require.NotNil(t, res)

	assert.Equal(t, int64(3*399), res.Subtotal)
	assert.Equal(t, int64(600), res.ShippingFee)
	assert.Equal(t, int64(1797), res.Total)

	// Cart cleared after handoff.
	c, _ := carts.Load(context.Background(), "c1")
	assert.Empty(t, c.Lines)

	// Deep link targets the configured contact and carries the encoded message.
	assert.True(t, strings.HasPrefix(res.WhatsAppURL, "https://wa.me/5588996559305?text="))
	parsed, perr := url.Parse(res.WhatsAppURL)
	require.NoError(t, perr)
	assert.Equal(t, res.Message, parsed.Query().Get("text"))

	// One OrderPlaced event with the same totals.
	require.Len(t, publisher.events, 1)
	assert.Equal(t, int64(1797), publisher.events[0].Total)
	assert.Equal(t, "c1", publisher.events[0].CartID)
}

func TestFinalizeValidationFailureLeavesCartUntouched(t *testing.T) {
	carts := &fakeCartStore{carts: map[string][]models.CartLine{
		"c1": {{Product: models.Product{ID: 1, Name: "Açaí", Price: 399}, Quantity: 1}},
	}}
	publisher := &fakePublisher{}
	o := NewOrchestrator(carts, &fakeResolver{rates: map[string]int64{}}, publisher, "5588996559305")

	info := validInfo()
	info.Name = "X"

	res, fieldErrs, err := o.Finalize(context.Background(), "c1", info)
	require.NoError(t, err)
	assert.Nil(t, res)
	assert.Contains(t, fieldErrs, "name")

	c, _ := carts.Load(context.Background(), "c1")
	assert.Len(t, c.Lines, 1)
	assert.Empty(t, publisher.events)
}

func TestFinalizeEmptyCartFails(t *testing.T) {
	carts := &fakeCartStore{carts: map[string][]models.CartLine{}}
	o := NewOrchestrator(carts, &fakeResolver{rates: map[string]int64{}}, &fakePublisher{}, "5588996559305")

	res, fieldErrs, err := o.Finalize(context.Background(), "missing", validInfo())
	assert.Error(t, err)
	assert.Nil(t, res)
	assert.Nil(t, fieldErrs)
}

func TestFinalizeUnknownNeighborhoodFeeZero(t *testing.T) {
	carts := &fakeCartStore{carts: map[string][]models.CartLine{
		"c1": {{Product: models.Product{ID: 1, Name: "Açaí", Price: 499}, Quantity: 2}},
	}}
	o := NewOrchestrator(carts, &fakeResolver{rates: map[string]int64{"Centro": 500}}, &fakePublisher{}, "5588996559305")

	info := validInfo()
	info.Neighborhood = "Bairro Novo"

	res, fieldErrs, err := o.Finalize(context.Background(), "c1", info)
	require.NoError(t, err)
	require.Nil(t, fieldErrs)
	assert.Equal(t, int64(0), res.ShippingFee)
	assert.Equal(t, int64(998), res.Total)
}
