package services

import (
	"context"

	"dalshop-gateway/models"
	"dalshop-gateway/utils/logger"
)

// CartService wraps the cart resource client. Every mutation reloads the cart
// so the caller always sees the backend's wholesale view, totals included; no
// amount is ever recomputed locally.
type CartService struct {
	carts  CartAPIInterface
	logger logger.Logger
}

// NewCartService creates a new cart service
func NewCartService(carts CartAPIInterface, log logger.Logger) *CartService {
	return &CartService{
		carts:  carts,
		logger: log,
	}
}

// View returns the current server-derived cart.
func (s *CartService) View(ctx context.Context, userID string) (*models.Cart, error) {
	return s.carts.Get(ctx, userID)
}

// Add puts an item in the cart and returns the reloaded cart.
func (s *CartService) Add(ctx context.Context, userID string, m models.CartMutation) (*models.Cart, error) {
	if err := s.carts.Add(ctx, userID, m.ProductID, m.Qty); err != nil {
		return nil, err
	}
	return s.carts.Get(ctx, userID)
}

// Update changes an item's quantity. A quantity of zero or less is the same
// as removing the item; the backend never sees such an update.
func (s *CartService) Update(ctx context.Context, userID string, m models.CartMutation) (*models.Cart, error) {
	if m.Qty <= 0 {
		s.logger.Debugf("Cart update with qty %d treated as remove: %s", m.Qty, m.ProductID)
		return s.Remove(ctx, userID, m.ProductID)
	}
	if err := s.carts.Update(ctx, userID, m.ProductID, m.Qty); err != nil {
		return nil, err
	}
	return s.carts.Get(ctx, userID)
}

// Remove drops an item and returns the reloaded cart.
func (s *CartService) Remove(ctx context.Context, userID, productID string) (*models.Cart, error) {
	if err := s.carts.Remove(ctx, userID, productID); err != nil {
		return nil, err
	}
	return s.carts.Get(ctx, userID)
}
