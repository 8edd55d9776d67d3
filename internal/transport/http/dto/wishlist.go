package dto

import "solemate/internal/domain/models"

// AddWishlistInput carries the product snapshot the client wants saved.
// The id field is the product id, not a wishlist row id.
type AddWishlistInput struct {
	ProductID int64   `json:"id" validate:"required"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Category  string  `json:"category"`
	Image     string  `json:"image"`
}

func (input AddWishlistInput) ToDomain() models.WishlistItem {
	return models.WishlistItem{
		ProductID: input.ProductID,
		Name:      input.Name,
		Price:     input.Price,
		Category:  input.Category,
		Image:     input.Image,
	}
}
