package models

import "time"

type OrderStatus string

const (
	OrderStatusNew             OrderStatus = "new"
	OrderStatusProcessing      OrderStatus = "processing"
	OrderStatusShipped         OrderStatus = "shipped"
	OrderStatusCompleted       OrderStatus = "completed"
	OrderStatusCancelled       OrderStatus = "cancelled"
	OrderStatusReturnRequested OrderStatus = "return_requested"
	OrderStatusRefunded        OrderStatus = "refunded"
)

// orderTransitions is the closed transition table for the order lifecycle.
// cancelled and refunded are terminal. A transition to the current status is
// not listed and therefore invalid.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusNew:             {OrderStatusProcessing, OrderStatusCancelled, OrderStatusReturnRequested},
	OrderStatusProcessing:      {OrderStatusShipped, OrderStatusCancelled, OrderStatusReturnRequested},
	OrderStatusShipped:         {OrderStatusCompleted, OrderStatusReturnRequested},
	OrderStatusCompleted:       {OrderStatusReturnRequested},
	OrderStatusReturnRequested: {OrderStatusRefunded},
	OrderStatusCancelled:       {},
	OrderStatusRefunded:        {},
}

func (s OrderStatus) IsValid() bool {
	_, ok := orderTransitions[s]
	return ok
}

func (s OrderStatus) CanTransitionTo(target OrderStatus) bool {
	for _, allowed := range orderTransitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

type OrderItem struct {
	ProductID string  `json:"productId,omitempty" bson:"product_id,omitempty"`
	Name      string  `json:"name" bson:"name" validate:"required"`
	Qty       int     `json:"qty" bson:"qty" validate:"required,gt=0"`
	Price     float64 `json:"price" bson:"price" validate:"gte=0"`
}

type ShippingAddress struct {
	FullName   string `json:"fullName" bson:"full_name" validate:"required"`
	Email      string `json:"email" bson:"email" validate:"omitempty,email"`
	Phone      string `json:"phone" bson:"phone" validate:"required"`
	Country    string `json:"country" bson:"country" validate:"required"`
	State      string `json:"state,omitempty" bson:"state,omitempty"`
	City       string `json:"city" bson:"city" validate:"required"`
	Address1   string `json:"address1" bson:"address1" validate:"required"`
	Address2   string `json:"address2,omitempty" bson:"address2,omitempty"`
	PostalCode string `json:"postalCode,omitempty" bson:"postal_code,omitempty"`
	Notes      string `json:"notes,omitempty" bson:"notes,omitempty"`
}

type PaymentInfo struct {
	Method string `json:"method" bson:"method" validate:"required"`
}

type Order struct {
	ID           string          `json:"id" bson:"_id"`
	CreatedAt    time.Time       `json:"createdAt" bson:"created_at"`
	Status       OrderStatus     `json:"status" bson:"status"`
	Items        []OrderItem     `json:"items" bson:"items"`
	Shipping     ShippingAddress `json:"shipping" bson:"shipping"`
	Payment      PaymentInfo     `json:"payment" bson:"payment"`
	Currency     string          `json:"currency" bson:"currency"`
	Subtotal     float64         `json:"subtotal" bson:"subtotal"`
	CouponCode   string          `json:"couponCode,omitempty" bson:"coupon_code,omitempty"`
	Discount     float64         `json:"discount" bson:"discount"`
	ShippingCost float64         `json:"shippingCost" bson:"shipping_cost"`
	Total        float64         `json:"total" bson:"total"`
	UpdatedAt    time.Time       `json:"updatedAt" bson:"updated_at"`
}

// ItemCount is the sum of quantities, the unit the shipping calculator
// charges per-item rates on.
func (o *Order) ItemCount() int {
	count := 0
	for _, item := range o.Items {
		count += item.Qty
	}
	return count
}
