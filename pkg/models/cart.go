package models

// Cart request DTOs for the session cart endpoints

type AddToCartRequest struct {
	ProductID int64  `json:"product_id" binding:"required"`
	Size      string `json:"size"`
}

type UpdateCartItemRequest struct {
	ProductID int64  `json:"product_id" binding:"required"`
	Size      string `json:"size"`
	Quantity  *int   `json:"quantity" binding:"required"`
}

type RemoveFromCartRequest struct {
	ProductID int64  `json:"product_id" binding:"required"`
	Size      string `json:"size"`
}
