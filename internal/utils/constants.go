package utils

// Application constants
const (
	AppName    = "LuxoraStore"
	AppVersion = "1.0.0"

	// Default values
	DefaultCurrency = "USD"
	DefaultCountry  = "MA"

	// Pagination
	DefaultPageSize = 20
	MaxPageSize     = 100
	MinPageSize     = 1

	// Record id prefixes; keep in sync with the stored collections.
	OrderIDPrefix    = "o_"
	CouponIDPrefix   = "c_"
	ReturnIDPrefix   = "r_"
	ProductIDPrefix  = "p_"
	TicketIDPrefix   = "t_"
	MessageIDPrefix  = "m_"
	ZoneIDPrefix     = "z_"
	RecordIDHexChars = 8

	// Admin session cookie
	AdminCookieName = "luxora_admin"
)

// Response status values
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Common error messages
const (
	ErrValidationFailed = "Validation failed"
	ErrInternalServer   = "Internal server error"
	ErrUnauthorized     = "Unauthorized"
	ErrForbidden        = "Forbidden"
	ErrNotFound         = "Resource not found"
)

// Machine-readable reason codes for business-rule failures. Clients branch
// on these, not on the human messages.
const (
	CodeCouponNotFound    = "COUPON_NOT_FOUND"
	CodeCouponInactive    = "COUPON_INACTIVE"
	CodeCouponExpired     = "COUPON_EXPIRED"
	CodeCouponMinSubtotal = "COUPON_MIN_SUBTOTAL"
	CodeCouponExhausted   = "COUPON_EXHAUSTED"
	CodeInvalidTransition = "INVALID_TRANSITION"
	CodeNoShippingZone    = "NO_SHIPPING_ZONE"
	CodeEmptyCart         = "EMPTY_CART"
)
