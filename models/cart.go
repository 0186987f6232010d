package models

// CartItem is one line of the server-derived cart. Subtotal comes from the
// backend; the gateway never recomputes it.
type CartItem struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Qty       int     `json:"qty"`
	UnitPrice float64 `json:"unitPrice"`
	Subtotal  float64 `json:"subtotal"`
}

// Cart is replaced wholesale on every load or mutation. CartTotal is whatever
// the backend last returned, displayed verbatim.
type Cart struct {
	Items     []CartItem `json:"items"`
	CartTotal float64    `json:"cartTotal"`
}

// CartMutation is the explicit form for cart add/update/remove requests.
// Qty may be zero or negative on update, which callers must treat as remove.
type CartMutation struct {
	ProductID string `json:"productId" binding:"required"`
	Qty       int    `json:"qty"`
}
