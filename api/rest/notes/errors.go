package notes

import (
	"errors"
	"io"
	"strings"

	"codeberg.org/simpleapi/server/notes"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// converts a binding or normalization failure into the validation
// error envelope shared by all note endpoints
func bindErrorResponse(err error) gin.H {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return gin.H{"error": "Request body is required"}
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		details := make([]ValidationDetail, 0, len(validationErrs))
		for _, fieldErr := range validationErrs {
			details = append(details, ValidationDetail{
				Field:   strings.ToLower(fieldErr.Field()),
				Message: validationMessage(fieldErr),
				Type:    fieldErr.Tag(),
			})
		}

		return gin.H{"error": "Validation error", "details": details}
	}

	var fieldErr *notes.FieldError
	if errors.As(err, &fieldErr) {
		return gin.H{
			"error": "Validation error",
			"details": []ValidationDetail{{
				Field:   fieldErr.Field,
				Message: fieldErr.Message,
				Type:    "value_error",
			}},
		}
	}

	return gin.H{"error": "Bad request", "details": err.Error()}
}

func validationMessage(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return "Field is required"
	case "max":
		return "Field exceeds maximum length of " + fieldErr.Param()
	case "min":
		return "Field is below minimum length of " + fieldErr.Param()
	default:
		return "Field is invalid"
	}
}
