package models

type Product struct {
	ID       int64   `db:"id" json:"id"`
	Name     string  `db:"name" json:"name"`
	Price    float64 `db:"price" json:"price"`
	Category string  `db:"category" json:"category"`
	Image    string  `db:"image" json:"image"`
	Link     string  `db:"link" json:"link"`
}
