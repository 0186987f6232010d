package services

import (
	"context"

	"dalshop-gateway/models"
	"dalshop-gateway/utils/logger"
)

// CheckoutService sequences order creation, cart clearing and cart reload.
// There is no compensating transaction: once the order-create call succeeds
// the order exists server-side no matter what happens next. The cart-clear
// step gets exactly one retry; if it still fails the result carries the
// created order ID in the OrderPlacedCartNotCleared state so the divergence
// is visible instead of silent.
type CheckoutService struct {
	orders OrderAPIInterface
	carts  CartAPIInterface
	logger logger.Logger
}

// NewCheckoutService creates a new checkout service
func NewCheckoutService(orders OrderAPIInterface, carts CartAPIInterface, log logger.Logger) *CheckoutService {
	return &CheckoutService{
		orders: orders,
		carts:  carts,
		logger: log,
	}
}

// PlaceOrder runs the checkout state machine:
// ReviewingCart -> PlacingOrder -> OrderPlaced, or -> Failed back to review.
func (s *CheckoutService) PlaceOrder(ctx context.Context, userID string) (*models.CheckoutResult, error) {
	s.logger.Infof("Checkout: placing order for user %s", userID)

	created, err := s.orders.Create(ctx, userID)
	if err != nil {
		s.logger.Errorf("Checkout failed, order not created: %v", err)
		return &models.CheckoutResult{State: models.CheckoutFailed}, err
	}

	if err := s.carts.Clear(ctx, userID); err != nil {
		s.logger.Warnf("Cart clear failed after order %s, retrying once: %v", created.OrderID, err)
		if err := s.carts.Clear(ctx, userID); err != nil {
			// Order exists server-side but the cart is still populated. Report
			// failure carrying the order ID rather than pretending nothing
			// happened.
			s.logger.Errorf("Cart clear failed again after order %s: %v", created.OrderID, err)
			return &models.CheckoutResult{
				State:   models.CheckoutOrderPlacedCartNotCleared,
				OrderID: created.OrderID,
			}, err
		}
	}

	result := &models.CheckoutResult{
		State:   models.CheckoutOrderPlaced,
		OrderID: created.OrderID,
	}

	cart, err := s.carts.Get(ctx, userID)
	if err != nil {
		// The order is placed and the cart cleared; a failed reload only
		// costs the fresh view.
		s.logger.Warnf("Cart reload failed after checkout %s: %v", created.OrderID, err)
		return result, nil
	}
	result.Cart = cart

	s.logger.Infof("Checkout complete: order %s", created.OrderID)
	return result, nil
}
