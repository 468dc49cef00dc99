package response

import (
	"github.com/gin-gonic/gin"
)

// ErrorBody is the wire shape of every error response: a human-readable
// message, a stable machine code, and optional field-level details.
type ErrorBody struct {
	Message string       `json:"message"`
	Code    ErrCode      `json:"code"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// FieldError describes a single input-validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Success sends a successful JSON response with the given status code.
// Payloads are returned bare, without an envelope.
func Success(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// Fail sends an error response with a typed code and its default message.
func Fail(c *gin.Context, statusCode int, code ErrCode) {
	c.JSON(statusCode, ErrorBody{Message: GetMessage(code), Code: code})
}

// FailWithFields sends a validation error response with field-level details.
func FailWithFields(c *gin.Context, statusCode int, code ErrCode, fields map[string]string) {
	errs := make([]FieldError, 0, len(fields))
	for field, msg := range fields {
		errs = append(errs, FieldError{Field: field, Message: msg})
	}
	c.JSON(statusCode, ErrorBody{Message: GetMessage(code), Code: code, Errors: errs})
}
