package models

import "time"

// Order is created once at checkout and immutable from the gateway's side.
type Order struct {
	OrderID   string     `json:"orderId"`
	UserID    string     `json:"userId"`
	Items     []CartItem `json:"items"`
	Total     float64    `json:"total"`
	CreatedAt time.Time  `json:"createdAt"`
}

// CheckoutState tracks the checkout flow's state machine.
type CheckoutState string

const (
	CheckoutReviewingCart CheckoutState = "ReviewingCart"
	CheckoutPlacingOrder  CheckoutState = "PlacingOrder"
	CheckoutOrderPlaced   CheckoutState = "OrderPlaced"
	CheckoutFailed        CheckoutState = "Failed"

	// CheckoutOrderPlacedCartNotCleared is the documented divergence: the
	// order exists server-side but the cart-clear step failed even after one
	// retry. The user is shown a failure carrying the order ID.
	CheckoutOrderPlacedCartNotCleared CheckoutState = "OrderPlacedCartNotCleared"
)

// CheckoutResult is the terminal outcome of one checkout attempt.
type CheckoutResult struct {
	State   CheckoutState `json:"state"`
	OrderID string        `json:"orderId,omitempty"`
	Cart    *Cart         `json:"cart,omitempty"`
}
