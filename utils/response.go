package utils

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// Error codes used in the response envelope.
const (
	CodeValidation = "validation_error"
	CodeAuth       = "auth_error"
	CodeNotFound   = "not_found"
	CodeConflict   = "conflict"
	CodeIntegrity  = "integrity_error"
)

type ErrorDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type errorBody struct {
	Code    string        `json:"code"`
	Message string        `json:"message"`
	Details []ErrorDetail `json:"details,omitempty"`
}

type errorEnvelope struct {
	Error errorBody `json:"error"`
}

func JSONError(c *gin.Context, status int, code, message string, details ...ErrorDetail) {
	c.JSON(status, errorEnvelope{Error: errorBody{
		Code:    code,
		Message: message,
		Details: details,
	}})
}

func JSON400(c *gin.Context, message string) {
	JSONError(c, http.StatusBadRequest, CodeIntegrity, message)
}

func JSON401(c *gin.Context, message string) {
	JSONError(c, http.StatusUnauthorized, CodeAuth, message)
}

func JSON404(c *gin.Context, message string) {
	JSONError(c, http.StatusNotFound, CodeNotFound, message)
}

func JSON409(c *gin.Context, message string) {
	JSONError(c, http.StatusConflict, CodeConflict, message)
}

func JSON422(c *gin.Context, message string, details ...ErrorDetail) {
	JSONError(c, http.StatusUnprocessableEntity, CodeValidation, message, details...)
}

// BindingErrorDetails turns gin binding failures into per-field
// details for the validation envelope.
func BindingErrorDetails(err error) []ErrorDetail {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []ErrorDetail{{Field: "body", Message: err.Error()}}
	}
	details := make([]ErrorDetail, 0, len(verrs))
	for _, fe := range verrs {
		details = append(details, ErrorDetail{
			Field:   strings.ToLower(fe.Field()),
			Message: validationMessage(fe),
		})
	}
	return details
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "datetime":
		return fmt.Sprintf("must match the format %s", fe.Param())
	default:
		return fmt.Sprintf("failed on the %s rule", fe.Tag())
	}
}
