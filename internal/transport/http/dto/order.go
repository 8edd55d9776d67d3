package dto

import (
	"encoding/json"

	"solemate/internal/domain/models"
)

type OrderCustomer struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

// PlaceOrderInput mirrors the checkout payload. Items stay RawMessage so
// whatever line shape the client sends is stored and listed back verbatim.
type PlaceOrderInput struct {
	Customer      OrderCustomer     `json:"customer"`
	Items         []json.RawMessage `json:"items"`
	Total         float64           `json:"total"`
	PaymentMethod string            `json:"paymentMethod"`
	DeliveryDate  string            `json:"deliveryDate"`
}

func (input PlaceOrderInput) ToDomain() models.Order {
	return models.Order{
		CustomerName:    input.Customer.Name,
		CustomerAddress: input.Customer.Address,
		CustomerPhone:   input.Customer.Phone,
		Items:           input.Items,
		Total:           input.Total,
		PaymentMethod:   input.PaymentMethod,
		DeliveryDate:    input.DeliveryDate,
	}
}

type OrderResponse struct {
	Customer      OrderCustomer     `json:"customer"`
	Items         []json.RawMessage `json:"items"`
	Total         float64           `json:"total"`
	PaymentMethod string            `json:"paymentMethod"`
	DeliveryDate  string            `json:"deliveryDate"`
}

func OrderResponseFromDomain(order models.Order) OrderResponse {
	return OrderResponse{
		Customer: OrderCustomer{
			Name:    order.CustomerName,
			Address: order.CustomerAddress,
			Phone:   order.CustomerPhone,
		},
		Items:         order.Items,
		Total:         order.Total,
		PaymentMethod: order.PaymentMethod,
		DeliveryDate:  order.DeliveryDate,
	}
}
