package cart

// AddItemRequest is the payload for adding produce to the cart.
type AddItemRequest struct {
	ProductID int `json:"product_id" validate:"required,min=1"`
	Quantity  int `json:"quantity" validate:"required,min=1"`
}

// UpdateItemRequest sets the absolute quantity for a cart entry. Zero removes
// the entry.
type UpdateItemRequest struct {
	Quantity int `json:"quantity" validate:"min=0"`
}
