package validators

import (
	"github.com/agatodfddd/luxora-store/internal/models"
)

// ValidateCheckoutRequest applies the checkout contract: at least one item
// with a positive quantity, and a shipping block with full name, phone,
// country, city and first address line.
func ValidateCheckoutRequest(req *models.CheckoutRequest) ValidationErrors {
	errs := ValidateStruct(req)

	for _, item := range req.Items {
		if item.Qty <= 0 {
			errs = append(errs, ValidationError{
				Field:   "items",
				Tag:     "gt",
				Message: "item quantities must be positive",
			})
			break
		}
	}

	return errs
}

// ValidateReturnRequest rejects unknown return reasons up front so the
// stored enum stays closed.
func ValidateReturnRequest(req *models.CreateReturnRequest) ValidationErrors {
	errs := ValidateStruct(req)

	if req.Reason != "" && !req.Reason.IsValid() {
		errs = append(errs, ValidationError{
			Field:   "reason",
			Tag:     "oneof",
			Message: "must be one of size, damaged, wrong_item, changed_mind, other",
		})
	}

	return errs
}
