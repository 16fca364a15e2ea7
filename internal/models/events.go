package models

import "time"

// Event types
const (
	EventTypeOrderPlaced = "ORDER_PLACED"
)

// BaseEvent contains common fields for all events
type BaseEvent struct {
	EventID   string    `json:"event_id"`
	EventType string    `json:"event_type"`
	Timestamp time.Time `json:"timestamp"`
}

// OrderPlacedEvent is published when a checkout is finalized and the order
// message has been handed off. It is the only durable record of the order.
type OrderPlacedEvent struct {
	BaseEvent
	CartID       string          `json:"cart_id"`
	CustomerName string          `json:"customer_name"`
	WhatsApp     string          `json:"whatsapp"`
	Neighborhood string          `json:"neighborhood"`
	Subtotal     int64           `json:"subtotal"`
	ShippingFee  int64           `json:"shipping_fee"`
	Total        int64           `json:"total"`
	Items        []OrderItemData `json:"items"`
}

// OrderItemData represents item data in events
type OrderItemData struct {
	ProductID int64  `json:"product_id"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	UnitPrice int64  `json:"unit_price"`
}
