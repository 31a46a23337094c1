package validation

import (
	"strings"

	validatorv10 "github.com/go-playground/validator/v10"
)

// Validation tags reported by the struct-level check; bind.go maps them to
// the client-facing messages.
const (
	tagIdentityRequired = "identity_required"
	tagItemsNonEmpty    = "items_non_empty"
	tagTotalNumeric     = "total_numeric"
)

// New returns a configured validator with custom struct-level validation registered.
func New() *validatorv10.Validate {
	v := validatorv10.New()

	v.RegisterStructValidation(submitOrderStructValidation, SubmitOrderRequest{})

	return v
}

// submitOrderStructValidation enforces the submission contract: fullName and
// phone must survive trimming, items must be a non-empty array, and
// totalAmount must coerce to a finite number.
func submitOrderStructValidation(sl validatorv10.StructLevel) {
	req := sl.Current().Interface().(SubmitOrderRequest)

	if strings.TrimSpace(req.FullName) == "" || strings.TrimSpace(req.Phone) == "" {
		sl.ReportError(req.FullName, "fullName", "FullName", tagIdentityRequired, "")
	}

	if len(req.Items) == 0 {
		sl.ReportError(req.Items, "items", "Items", tagItemsNonEmpty, "")
	}

	if _, ok := ToNumber(req.TotalAmount); !ok {
		sl.ReportError(req.TotalAmount, "totalAmount", "TotalAmount", tagTotalNumeric, "")
	}
}
