package models

// Request payloads bound from JSON by the handlers. Field-level rules live
// in the validate tags; cross-field rules live in internal/validators.

type CheckoutRequest struct {
	Items      []OrderItem     `json:"items" validate:"required,min=1,dive"`
	Shipping   ShippingAddress `json:"shipping" validate:"required"`
	Payment    PaymentInfo     `json:"payment" validate:"required"`
	Currency   string          `json:"currency"`
	CouponCode string          `json:"couponCode"`
}

type UpdateOrderStatusRequest struct {
	Status OrderStatus `json:"status" validate:"required"`
}

type CreateCouponRequest struct {
	Code        string     `json:"code" validate:"required,coupon_code"`
	Type        CouponType `json:"type" validate:"required"`
	Amount      *float64   `json:"amount" validate:"required,gte=0"`
	Active      *bool      `json:"active"`
	MinSubtotal *float64   `json:"minSubtotal" validate:"omitempty,gte=0"`
	MaxUses     *int       `json:"maxUses" validate:"omitempty,gte=0"`
	ExpiresAt   string     `json:"expiresAt"`
}

type UpdateCouponRequest struct {
	Code        *string  `json:"code" validate:"omitempty,coupon_code"`
	Type        *string  `json:"type"`
	Amount      *float64 `json:"amount" validate:"omitempty,gte=0"`
	Active      *bool    `json:"active"`
	MinSubtotal *float64 `json:"minSubtotal" validate:"omitempty,gte=0"`
	MaxUses     *int     `json:"maxUses" validate:"omitempty,gte=0"`
	ExpiresAt   *string  `json:"expiresAt"`
}

type CreateReturnRequest struct {
	Name    string       `json:"name" validate:"required"`
	Phone   string       `json:"phone" validate:"required"`
	Email   string       `json:"email" validate:"required,email"`
	Reason  ReturnReason `json:"reason" validate:"required"`
	OrderID string       `json:"orderId"`
	Details string       `json:"details"`
}

type UpdateReturnStatusRequest struct {
	Status ReturnStatus `json:"status" validate:"required"`
}

type CreateProductRequest struct {
	Name        string   `json:"name" validate:"required"`
	Slug        string   `json:"slug"`
	Category    string   `json:"category" validate:"required"`
	Price       *float64 `json:"price" validate:"required,gte=0"`
	Currency    string   `json:"currency"`
	Description string   `json:"description"`
	Images      []string `json:"images"`
	Featured    bool     `json:"featured"`
	Stock       *int     `json:"stock" validate:"omitempty,gte=0"`
}

type UpdateProductRequest struct {
	Name        *string   `json:"name"`
	Slug        *string   `json:"slug"`
	Category    *string   `json:"category"`
	Price       *float64  `json:"price" validate:"omitempty,gte=0"`
	Currency    *string   `json:"currency"`
	Description *string   `json:"description"`
	Images      *[]string `json:"images"`
	Featured    *bool     `json:"featured"`
	Stock       *int      `json:"stock" validate:"omitempty,gte=0"`
}

type ReplaceCategoriesRequest struct {
	Categories []StoreCategory `json:"categories" validate:"required"`
}

type CreateTicketRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone"`
	Topic   string `json:"topic" validate:"required"`
	OrderID string `json:"orderId"`
	Message string `json:"message" validate:"required"`
}

type UpdateTicketRequest struct {
	Status *TicketStatus `json:"status"`
	Notes  *string       `json:"notes"`
}

type ContactRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject"`
	Message string `json:"message" validate:"required"`
}

type UpdateMessageStatusRequest struct {
	Status MessageStatus `json:"status" validate:"required"`
}

type UpdateStoreSettingsRequest struct {
	Hero  map[string]interface{} `json:"hero"`
	Theme map[string]interface{} `json:"theme"`
}

type UpdatePaymentSettingsRequest struct {
	Paypal *PaypalConfig `json:"paypal"`
	Stripe *StripeConfig `json:"stripe"`
	COD    *CODConfig    `json:"cod"`
	Bank   *BankConfig   `json:"bank"`
}

type AdminLoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password" validate:"required"`
}
