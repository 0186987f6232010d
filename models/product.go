package models

// Product is owned by the commerce backend; the gateway never mutates it
// field by field. Admin edits are whole-record replaces, last writer wins.
type Product struct {
	ProductID   string  `json:"productId"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	ImageURL    string  `json:"imageUrl"`
}

// ProductForm is the explicit admin form for add/update. Validation rules live
// in the binding tags, not in handler code.
type ProductForm struct {
	Name        string  `json:"name" binding:"required"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	Quantity    int     `json:"quantity" binding:"gte=0"`
	Category    string  `json:"category" binding:"required"`
	Description string  `json:"description,omitempty"`
	ImageURL    string  `json:"imageUrl,omitempty" binding:"omitempty,url"`
}
