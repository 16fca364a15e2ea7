package models

import (
	"time"

	"github.com/lib/pq"
)

// Product represents an item in the catalog. Price is in centavos.
type Product struct {
	ID          int64          `db:"id" json:"id"`
	Name        string         `db:"name" json:"name"`
	Price       int64          `db:"price" json:"price"`
	ImageURL    string         `db:"image_url" json:"image_url"`
	Category    string         `db:"category" json:"category"`
	Description string         `db:"description" json:"description"`
	Tags        pq.StringArray `db:"tags" json:"tags,omitempty"`
	Available   bool           `db:"available" json:"available"`
	CreatedAt   time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at" json:"updated_at"`
}

// Product categories
const (
	CategoryTradicionais = "TRADICIONAIS"
	CategoryPremium      = "PREMIUM"
	CategoryOutros       = "OUTROS"
)

// ValidCategory reports whether c is one of the known categories.
func ValidCategory(c string) bool {
	switch c {
	case CategoryTradicionais, CategoryPremium, CategoryOutros:
		return true
	}
	return false
}

// ShippingRate is a per-neighborhood flat delivery fee in centavos.
type ShippingRate struct {
	ID           int64     `db:"id" json:"id"`
	Neighborhood string    `db:"neighborhood" json:"neighborhood"`
	Fee          int64     `db:"fee" json:"fee"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// CartLine is one entry in a cart: a product snapshot taken at add time,
// a quantity and free-text notes. At most one line exists per product ID.
type CartLine struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
	Notes    string  `json:"notes,omitempty"`
}

// Total returns the line total in centavos.
func (l CartLine) Total() int64 {
	return l.Product.Price * int64(l.Quantity)
}

// Cart is an ordered sequence of lines.
type Cart struct {
	ID    string     `json:"id"`
	Lines []CartLine `json:"lines"`
}

// Subtotal sums all line totals in centavos.
func (c Cart) Subtotal() int64 {
	var sum int64
	for _, l := range c.Lines {
		sum += l.Total()
	}
	return sum
}

// Payment methods
const (
	PaymentPix        = "pix"
	PaymentCreditCard = "credit_card"
	PaymentDebitCard  = "debit_card"
	PaymentCash       = "cash"
)

// PaymentMethodLabel maps a payment method to its customer-facing label.
func PaymentMethodLabel(method string) string {
	switch method {
	case PaymentPix:
		return "Pix"
	case PaymentCreditCard:
		return "Cartão de Crédito"
	case PaymentDebitCard:
		return "Cartão de Débito"
	case PaymentCash:
		return "Dinheiro"
	}
	return method
}

// DeliveryInfo holds the customer-entered delivery form. ChangeAmount is a
// comma-decimal currency string, only meaningful when paying cash.
type DeliveryInfo struct {
	Name          string `json:"name" validate:"min=2"`
	WhatsApp      string `json:"whatsapp" validate:"brphone"`
	Neighborhood  string `json:"neighborhood" validate:"required"`
	Address       string `json:"address" validate:"min=5"`
	GeneralNotes  string `json:"general_notes,omitempty" validate:"-"`
	PaymentMethod string `json:"payment_method" validate:"oneof=pix credit_card debit_card cash"`
	ChangeAmount  string `json:"change_amount,omitempty" validate:"-"`
}

// StoreStatus is the open/closed flag for the storefront.
type StoreStatus struct {
	IsOpen    bool      `db:"is_open" json:"is_open"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
