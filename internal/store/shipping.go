package store

import (
	"context"
	"database/sql"
	"fmt"

	"storefront-service/internal/models"
)

// GetShippingRates retrieves all shipping rates ordered by neighborhood.
func (s *Store) GetShippingRates(ctx context.Context) ([]models.ShippingRate, error) {
	var rates []models.ShippingRate
	err := s.db.SelectContext(ctx, &rates, "SELECT * FROM shipping_rates ORDER BY neighborhood")
	return rates, err
}

// GetShippingRateByID retrieves a shipping rate by ID
func (s *Store) GetShippingRateByID(ctx context.Context, id int64) (*models.ShippingRate, error) {
	var rate models.ShippingRate
	err := s.db.GetContext(ctx, &rate, "SELECT * FROM shipping_rates WHERE id = $1", id)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("shipping rate not found: %d", id)
	}
	if err != nil {
		return nil, err
	}
	return &rate, nil
}

// CreateShippingRate inserts a new shipping rate. Neighborhood is unique.
func (s *Store) CreateShippingRate(ctx context.Context, r *models.ShippingRate) error {
	query := `
		INSERT INTO shipping_rates (neighborhood, fee)
		VALUES ($1, $2)
		RETURNING id, created_at, updated_at`

	return s.db.GetContext(ctx, r, query, r.Neighborhood, r.Fee)
}

// UpdateShippingRate updates an existing shipping rate
func (s *Store) UpdateShippingRate(ctx context.Context, r *models.ShippingRate) error {
	query := `
		UPDATE shipping_rates
		SET neighborhood = $1, fee = $2, updated_at = NOW()
		WHERE id = $3
		RETURNING updated_at`

	err := s.db.GetContext(ctx, &r.UpdatedAt, query, r.Neighborhood, r.Fee, r.ID)
	if err == sql.ErrNoRows {
		return fmt.Errorf("shipping rate not found: %d", r.ID)
	}
	return err
}

// DeleteShippingRate removes a shipping rate
func (s *Store) DeleteShippingRate(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM shipping_rates WHERE id = $1", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("shipping rate not found: %d", id)
	}
	return nil
}

// GetStoreStatus retrieves the single store status row. A missing row is
// treated as open.
func (s *Store) GetStoreStatus(ctx context.Context) (*models.StoreStatus, error) {
	var status models.StoreStatus
	err := s.db.GetContext(ctx, &status, "SELECT is_open, updated_at FROM store_status LIMIT 1")
	if err == sql.ErrNoRows {
		return &models.StoreStatus{IsOpen: true}, nil
	}
	if err != nil {
		return nil, err
	}
	return &status, nil
}

// SetStoreStatus toggles the store open/closed flag
func (s *Store) SetStoreStatus(ctx context.Context, isOpen bool) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO store_status (id, is_open, updated_at) VALUES (1, $1, NOW())
		ON CONFLICT (id) DO UPDATE SET is_open = $1, updated_at = NOW()`, isOpen)
	return err
}
