package services

import (
	"errors"

	"github.com/agatodfddd/luxora-store/internal/utils"
)

// DomainError is a business-rule failure: expected, recoverable by the
// caller, and carrying a machine-readable reason code. Infrastructure
// failures are plain wrapped errors and never use this type.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

var (
	ErrCouponNotFound     = &DomainError{Code: utils.CodeCouponNotFound, Message: "coupon code not found"}
	ErrCouponInactive     = &DomainError{Code: utils.CodeCouponInactive, Message: "coupon is not active"}
	ErrCouponExpired      = &DomainError{Code: utils.CodeCouponExpired, Message: "coupon has expired"}
	ErrCouponBelowMinimum = &DomainError{Code: utils.CodeCouponMinSubtotal, Message: "order subtotal is below the coupon minimum"}
	ErrCouponExhausted    = &DomainError{Code: utils.CodeCouponExhausted, Message: "coupon has no uses left"}
	ErrInvalidTransition  = &DomainError{Code: utils.CodeInvalidTransition, Message: "status transition not allowed"}
	ErrNoShippingZone     = &DomainError{Code: utils.CodeNoShippingZone, Message: "no shipping zone covers the destination"}
	ErrEmptyCart          = &DomainError{Code: utils.CodeEmptyCart, Message: "order must contain at least one item"}
)

// AsDomainError unwraps err to a DomainError if one is in the chain.
func AsDomainError(err error) (*DomainError, bool) {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr, true
	}
	return nil, false
}
