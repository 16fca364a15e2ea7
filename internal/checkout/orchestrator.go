package checkout

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"storefront-service/internal/models"
	"storefront-service/internal/util"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CartStore is the slice of the cart store the orchestrator needs.
type CartStore interface {
	Load(ctx context.Context, cartID string) (*models.Cart, error)
	Clear(ctx context.Context, cartID string) error
}

// RateResolver serves the memoized neighborhood→fee mapping.
type RateResolver interface {
	Rates(ctx context.Context) map[string]int64
}

// EventPublisher publishes the order-placed event, best effort.
type EventPublisher interface {
	PublishOrderPlaced(ctx context.Context, event *models.OrderPlacedEvent) error
}

// Result is the outcome of a finalized checkout. The caller opens
// WhatsAppURL; the service observes no delivery signal for it.
type Result struct {
	Message     string `json:"message"`
	WhatsAppURL string `json:"whatsapp_url"`
	Subtotal    int64  `json:"subtotal"`
	ShippingFee int64  `json:"shipping_fee"`
	Total       int64  `json:"total"`
}

// Orchestrator runs the checkout pipeline: validate, total, format, hand
// off, clear.
type Orchestrator struct {
	carts     CartStore
	rates     RateResolver
	publisher EventPublisher
	validator *DeliveryValidator
	contact   string
	logger    *zap.Logger
}

// NewOrchestrator creates a checkout orchestrator. contact is the WhatsApp
// destination number, digits only with country code.
func NewOrchestrator(carts CartStore, rates RateResolver, publisher EventPublisher, contact string) *Orchestrator {
	return &Orchestrator{
		carts:     carts,
		rates:     rates,
		publisher: publisher,
		validator: NewDeliveryValidator(),
		contact:   contact,
		logger:    util.GetLogger(),
	}
}

// Finalize validates the delivery form, computes totals, renders the order
// message, builds the handoff deep link, publishes the order event and
// clears the cart. Field errors short-circuit the pipeline with the cart
// untouched. The handoff is fire-and-forget: the cart is cleared even if
// the caller never opens the link, which is why Result carries the full
// message for retries.
func (o *Orchestrator) Finalize(ctx context.Context, cartID string, info models.DeliveryInfo) (*Result, FieldErrors, error) {
	ctx, span := util.StartSpan(ctx, "checkout.Orchestrator.Finalize")
	defer span.End()

	if errs := o.validator.Validate(info); errs != nil {
		util.CheckoutsFailedTotal.WithLabelValues("validation").Inc()
		return nil, errs, nil
	}

	c, err := o.carts.Load(ctx, cartID)
	if err != nil {
		util.CheckoutsFailedTotal.WithLabelValues("cart_load").Inc()
		return nil, nil, fmt.Errorf("failed to load cart: %w", err)
	}
	if len(c.Lines) == 0 {
		util.CheckoutsFailedTotal.WithLabelValues("empty_cart").Inc()
		return nil, nil, fmt.Errorf("cart %s is empty", cartID)
	}

	rates := o.rates.Rates(ctx)
	subtotal := c.Subtotal()
	fee := rates[info.Neighborhood]
	total := subtotal + fee

	message := FormatOrderMessage(*c, info, rates)
	link := fmt.Sprintf("https://wa.me/%s?text=%s", o.contact, url.QueryEscape(message))

	o.publishOrderPlaced(ctx, cartID, info, c, subtotal, fee, total)

	if err := o.carts.Clear(ctx, cartID); err != nil {
		// The handoff already happened, so the checkout still counts.
		o.logger.Error("Failed to clear cart after checkout",
			zap.String("cart_id", cartID),
			zap.Error(err))
	}

	util.CheckoutsTotal.Inc()
	util.CheckoutValue.Observe(float64(total))
	o.logger.Info("Checkout finalized",
		zap.String("cart_id", cartID),
		zap.String("neighborhood", info.Neighborhood),
		zap.Int64("total", total))

	return &Result{
		Message:     message,
		WhatsAppURL: link,
		Subtotal:    subtotal,
		ShippingFee: fee,
		Total:       total,
	}, nil, nil
}

func (o *Orchestrator) publishOrderPlaced(ctx context.Context, cartID string, info models.DeliveryInfo, c *models.Cart, subtotal, fee, total int64) {
	items := make([]models.OrderItemData, 0, len(c.Lines))
	for _, line := range c.Lines {
		items = append(items, models.OrderItemData{
			ProductID: line.Product.ID,
			Name:      line.Product.Name,
			Quantity:  line.Quantity,
			UnitPrice: line.Product.Price,
		})
	}

	event := &models.OrderPlacedEvent{
		BaseEvent: models.BaseEvent{
			EventID:   uuid.New().String(),
			EventType: models.EventTypeOrderPlaced,
			Timestamp: time.Now(),
		},
		CartID:       cartID,
		CustomerName: info.Name,
		WhatsApp:     StripNonDigits(info.WhatsApp),
		Neighborhood: info.Neighborhood,
		Subtotal:     subtotal,
		ShippingFee:  fee,
		Total:        total,
		Items:        items,
	}

	if err := o.publisher.PublishOrderPlaced(ctx, event); err != nil {
		util.OrderEventsPublished.WithLabelValues("error").Inc()
		o.logger.Error("Failed to publish OrderPlaced event", zap.Error(err))
		return
	}
	util.OrderEventsPublished.WithLabelValues("success").Inc()
}
