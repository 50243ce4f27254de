package validators

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

var couponCodeRegex = regexp.MustCompile(`^[A-Za-z0-9_-]{2,32}$`)

func init() {
	validate = validator.New()

	validate.RegisterValidation("coupon_code", validateCouponCode)
	validate.RegisterValidation("currency_code", validateCurrencyCode)
	validate.RegisterValidation("country_code", validateCountryCode)
}

// ValidationError represents a field validation error
type ValidationError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Message string `json:"message"`
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var messages []string
	for _, err := range v {
		messages = append(messages, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return strings.Join(messages, "; ")
}

// Details flattens the errors into the response shape the API uses.
func (v ValidationErrors) Details() map[string]string {
	details := make(map[string]string, len(v))
	for _, err := range v {
		details[err.Field] = err.Message
	}
	return details
}

// ValidateStruct validates a struct and returns detailed errors
func ValidateStruct(s interface{}) ValidationErrors {
	var validationErrors ValidationErrors

	err := validate.Struct(s)
	if err != nil {
		for _, fieldErr := range err.(validator.ValidationErrors) {
			validationErrors = append(validationErrors, ValidationError{
				Field:   fieldErr.Field(),
				Tag:     fieldErr.Tag(),
				Message: messageForTag(fieldErr),
			})
		}
	}

	return validationErrors
}

func messageForTag(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "this field is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must have at least %s entries", err.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", err.Param())
	case "gte":
		return fmt.Sprintf("must be %s or more", err.Param())
	case "coupon_code":
		return "must be 2-32 letters, digits, dashes or underscores"
	case "currency_code":
		return "must be a 3-letter currency code"
	case "country_code":
		return "must be a 2-letter country code or *"
	default:
		return fmt.Sprintf("failed %s validation", err.Tag())
	}
}

func validateCouponCode(fl validator.FieldLevel) bool {
	return couponCodeRegex.MatchString(fl.Field().String())
}

func validateCurrencyCode(fl validator.FieldLevel) bool {
	code := fl.Field().String()
	if len(code) != 3 {
		return false
	}
	for _, r := range code {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}

func validateCountryCode(fl validator.FieldLevel) bool {
	code := fl.Field().String()
	if code == "*" {
		return true
	}
	if len(code) != 2 {
		return false
	}
	for _, r := range strings.ToUpper(code) {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}
