package models

// OrderCollection is the document collection holding orders
const OrderCollection = "order"

// Order statuses. The field itself is free-form; these are the values the canteen uses.
const (
	StatusPending        = "pending"
	StatusConfirmed      = "confirmed"
	StatusOutForDelivery = "out_for_delivery"
	StatusDelivered      = "delivered"
	StatusCancelled      = "cancelled"
)

// OrderItem is a line of an order. Name and price are copied from the menu at order time.
type OrderItem struct {
	ItemID string   `json:"item_id" bson:"item_id" validate:"required"`
	Name   string   `json:"name" bson:"name" validate:"required"`
	Qty    int      `json:"qty" bson:"qty" validate:"gte=1"`
	Price  *float64 `json:"price" bson:"price" validate:"required,gte=0"`
}

// Order represents an order placed by a student staying in a hostel
type Order struct {
	CustomerName         string      `json:"customer_name" bson:"customer_name" validate:"required"`
	Phone                string      `json:"phone" bson:"phone" validate:"required"`
	Hostel               string      `json:"hostel" bson:"hostel" validate:"required"`
	Room                 string      `json:"room" bson:"room" validate:"required"`
	DeliveryInstructions *string     `json:"delivery_instructions" bson:"delivery_instructions"`
	Items                []OrderItem `json:"items" bson:"items" validate:"required,dive"` // an empty list is accepted
	TotalAmount          *float64    `json:"total_amount" bson:"total_amount" validate:"required,gte=0"`
	Status               string      `json:"status" bson:"status"` // pending | confirmed | out_for_delivery | delivered | cancelled
}

// NewOrder returns an Order carrying the schema defaults
func NewOrder() Order {
	return Order{Status: StatusPending}
}

// IsKnownStatus reports whether status is one of the documented order statuses
func IsKnownStatus(status string) bool {
	switch status {
	case StatusPending, StatusConfirmed, StatusOutForDelivery, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}
