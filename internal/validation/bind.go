package validation

import (
	"net/http"

	"github.com/gin-gonic/gin"
	validatorv10 "github.com/go-playground/validator/v10"
)

// BindAndValidate binds JSON body into `out` and runs validation.
// If validation fails, it writes a 400 response and returns an error for the handler to short-circuit.
func BindAndValidate(c *gin.Context, out interface{}, v *validatorv10.Validate) error {
	if err := c.ShouldBindJSON(out); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "invalid request body",
		})
		return err
	}

	if err := v.Struct(out); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": Message(err),
		})
		return err
	}
	return nil
}

// Message translates a validation error into the human-readable message the
// API returns to clients.
func Message(err error) string {
	ve, ok := err.(validatorv10.ValidationErrors)
	if !ok || len(ve) == 0 {
		return err.Error()
	}
	switch ve[0].Tag() {
	case tagIdentityRequired:
		return "fullName and phone are required"
	case tagItemsNonEmpty:
		return "items must be a non-empty array"
	case tagTotalNumeric:
		return "totalAmount must be a valid number"
	default:
		return ve[0].Error()
	}
}
