package models

import "encoding/json"

// Order is immutable once placed. Items carries the line entries exactly as
// the client sent them; each RawMessage round-trips byte for byte.
type Order struct {
	ID              int64             `db:"id" json:"-"`
	CustomerName    string            `db:"customer_name" json:"-"`
	CustomerAddress string            `db:"customer_address" json:"-"`
	CustomerPhone   string            `db:"customer_phone" json:"-"`
	Items           []json.RawMessage `json:"items"`
	Total           float64           `db:"total" json:"total"`
	PaymentMethod   string            `db:"payment_method" json:"paymentMethod"`
	DeliveryDate    string            `db:"delivery_date" json:"deliveryDate"`
}
