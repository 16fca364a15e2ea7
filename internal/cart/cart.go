package cart

import (
	"context"
	"fmt"
	"time"

	"storefront-service/internal/models"
	"storefront-service/internal/redisclient"
	"storefront-service/internal/util"

	"go.uber.org/zap"
)

// Store persists carts in Redis, one key per cart holding the serialized
// line list. The serialized form is the source of truth: every operation
// reads, mutates and writes back the whole cart. Mutations are
// last-write-wins; carts are single-client by design so there is no
// concurrent-writer coordination.
type Store struct {
	redis  *redisclient.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewStore creates a cart store. ttl bounds how long an abandoned cart
// survives; every write refreshes it.
func NewStore(redis *redisclient.Client, ttl time.Duration) *Store {
	return &Store{
		redis:  redis,
		ttl:    ttl,
		logger: util.GetLogger(),
	}
}

// Load reads and deserializes the persisted cart. A missing or malformed
// cart loads as empty.
func (s *Store) Load(ctx context.Context, cartID string) (*models.Cart, error) {
	payload, found, err := s.redis.GetCart(ctx, cartID)
	if err != nil {
		return nil, err
	}
	if !found {
		return &models.Cart{ID: cartID, Lines: []models.CartLine{}}, nil
	}
	return &models.Cart{ID: cartID, Lines: DecodeLines(payload)}, nil
}

// AddOrMerge adds a product to the cart. If a line for the product already
// exists its quantity is increased and its notes replaced only when the new
// notes are non-empty; otherwise a new line is appended. Persists immediately.
func (s *Store) AddOrMerge(ctx context.Context, cartID string, product models.Product, quantity int, notes string) (*models.Cart, error) {
	if quantity <= 0 {
		return nil, fmt.Errorf("quantity must be positive: %d", quantity)
	}

	c, err := s.Load(ctx, cartID)
	if err != nil {
		return nil, err
	}

	c.Lines = mergeLine(c.Lines, product, quantity, notes)

	if err := s.persist(ctx, c); err != nil {
		return nil, err
	}

	util.CartOperationsTotal.WithLabelValues("add").Inc()
	s.logger.Info("Cart line added",
		zap.String("cart_id", cartID),
		zap.Int64("product_id", product.ID),
		zap.Int("quantity", quantity))
	return c, nil
}

// SetQuantity overwrites a line's quantity. A quantity of zero or less
// removes the line entirely. Persists immediately.
func (s *Store) SetQuantity(ctx context.Context, cartID string, productID int64, quantity int) (*models.Cart, error) {
	c, err := s.Load(ctx, cartID)
	if err != nil {
		return nil, err
	}

	c.Lines = setQuantity(c.Lines, productID, quantity)

	if err := s.persist(ctx, c); err != nil {
		return nil, err
	}

	util.CartOperationsTotal.WithLabelValues("set_quantity").Inc()
	return c, nil
}

// Remove deletes a line; no-op if the product is not in the cart.
// Persists immediately.
func (s *Store) Remove(ctx context.Context, cartID string, productID int64) (*models.Cart, error) {
	c, err := s.Load(ctx, cartID)
	if err != nil {
		return nil, err
	}

	c.Lines = removeLine(c.Lines, productID)

	if err := s.persist(ctx, c); err != nil {
		return nil, err
	}

	util.CartOperationsTotal.WithLabelValues("remove").Inc()
	return c, nil
}

// Clear empties the cart and persists the empty state.
func (s *Store) Clear(ctx context.Context, cartID string) error {
	c := &models.Cart{ID: cartID, Lines: []models.CartLine{}}
	if err := s.persist(ctx, c); err != nil {
		return err
	}
	util.CartOperationsTotal.WithLabelValues("clear").Inc()
	return nil
}

func (s *Store) persist(ctx context.Context, c *models.Cart) error {
	payload, err := EncodeLines(c.Lines)
	if err != nil {
		return fmt.Errorf("failed to encode cart: %w", err)
	}
	return s.redis.SaveCart(ctx, c.ID, payload, s.ttl)
}

// mergeLine applies the add-or-merge rule: at most one line per product ID.
func mergeLine(lines []models.CartLine, product models.Product, quantity int, notes string) []models.CartLine {
	for i := range lines {
		if lines[i].Product.ID == product.ID {
			lines[i].Quantity += quantity
			if notes != "" {
				lines[i].Notes = notes
			}
			return lines
		}
	}
	return append(lines, models.CartLine{Product: product, Quantity: quantity, Notes: notes})
}

func setQuantity(lines []models.CartLine, productID int64, quantity int) []models.CartLine {
	if quantity <= 0 {
		return removeLine(lines, productID)
	}
	for i := range lines {
		if lines[i].Product.ID == productID {
			lines[i].Quantity = quantity
			break
		}
	}
	return lines
}

func removeLine(lines []models.CartLine, productID int64) []models.CartLine {
	out := lines[:0]
	for _, l := range lines {
		if l.Product.ID != productID {
			out = append(out, l)
		}
	}
	return out
}
