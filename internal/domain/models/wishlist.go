package models

// WishlistItem keys on ProductID: the wishlist holds at most one row per
// product. The reference to products is logical only, never enforced.
type WishlistItem struct {
	ID        int64   `db:"id" json:"-"`
	ProductID int64   `db:"product_id" json:"id"`
	Name      string  `db:"name" json:"name"`
	Price     float64 `db:"price" json:"price"`
	Category  string  `db:"category" json:"category"`
	Image     string  `db:"image" json:"image"`
}
