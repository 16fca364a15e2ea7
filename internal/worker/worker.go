package worker

import (
	"context"
	"log"

	"storefront-service/internal/broker"
	"storefront-service/internal/models"
	"storefront-service/internal/util"

	"go.uber.org/zap"
)

// NotifyWorker consumes OrderPlaced events for logging and metrics. The
// storefront does no server-side order processing; this worker only gives
// the shop an audit trail of handoffs.
type NotifyWorker struct {
	consumer     *broker.Consumer
	eventHandler *broker.EventHandler
}

// NewNotifyWorker creates a new notification worker
func NewNotifyWorker(consumer *broker.Consumer) *NotifyWorker {
	eventHandler := broker.NewEventHandler()
	logger := util.GetLogger()

	eventHandler.OnOrderPlaced(func(ctx context.Context, event *models.OrderPlacedEvent) error {
		util.OrdersNotifiedTotal.Inc()
		logger.Info("Order placed",
			zap.String("event_id", event.EventID),
			zap.String("cart_id", event.CartID),
			zap.String("customer", event.CustomerName),
			zap.String("neighborhood", event.Neighborhood),
			zap.Int64("total", event.Total),
			zap.Int("items", len(event.Items)))
		return nil
	})

	return &NotifyWorker{
		consumer:     consumer,
		eventHandler: eventHandler,
	}
}

// Start starts the worker
func (w *NotifyWorker) Start(ctx context.Context) error {
	log.Println("Starting order notification worker...")
	return w.consumer.StartConsuming(ctx, w.eventHandler.HandleMessage)
}

// Stop stops the worker
func (w *NotifyWorker) Stop() error {
	log.Println("Stopping order notification worker...")
	return w.consumer.Close()
}
