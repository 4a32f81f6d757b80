package errors

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ValidationErrors maps a field name to the messages raised against it.
// It serializes directly as the 400 response body.
type ValidationErrors map[string][]string

// Add appends a message for field.
func (v ValidationErrors) Add(field, message string) {
	v[field] = append(v[field], message)
}

// Empty reports whether no field has an error.
func (v ValidationErrors) Empty() bool {
	return len(v) == 0
}

// ValidationError wraps field errors so services can return them through the
// error interface and handlers can recover the per-field payload.
type ValidationError struct {
	Fields ValidationErrors
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %d field(s)", len(e.Fields))
}

// NewFieldError builds a ValidationError with a single field message.
func NewFieldError(field, message string) *ValidationError {
	fields := ValidationErrors{}
	fields.Add(field, message)
	return &ValidationError{Fields: fields}
}

// Field error messages.
const (
	MsgRequired       = "This field is required."
	MsgBlank          = "This field may not be blank."
	MsgNull           = "This field may not be null."
	MsgNotString      = "Not a valid string."
	MsgNotBoolean     = "Must be a valid boolean."
	MsgNotInteger     = "A valid integer is required."
	MsgBadDatetime    = "Datetime has wrong format."
	MsgUsernameTaken  = "A user with that username already exists."
)

// MsgInvalidChoice formats the choice-set violation message for value.
func MsgInvalidChoice(value string) string {
	return fmt.Sprintf("%q is not a valid choice.", value)
}

// MsgInvalidPK formats the dangling-reference message for id.
func MsgInvalidPK(id uint64) string {
	return fmt.Sprintf("Invalid pk \"%d\" - object does not exist.", id)
}

// BadRequest sends a 400 with the per-field error payload.
func BadRequest(c *gin.Context, errs ValidationErrors) {
	c.JSON(http.StatusBadRequest, errs)
}

// ParseError sends a 400 for a body that is not a JSON object.
func ParseError(c *gin.Context) {
	c.JSON(http.StatusBadRequest, gin.H{"detail": "JSON parse error"})
}

// NotFound sends an empty-bodied 404.
func NotFound(c *gin.Context) {
	c.Status(http.StatusNotFound)
}

// NotFoundPayload sends a 404 with a custom error payload, used by the
// scoped create routes.
func NotFoundPayload(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, gin.H{"error": message})
}

// Unauthorized sends a 401 with a detail message.
func Unauthorized(c *gin.Context, detail string) {
	c.JSON(http.StatusUnauthorized, gin.H{"detail": detail})
}

// InternalError sends a 500.
func InternalError(c *gin.Context, message string) {
	if message == "" {
		message = "Internal server error"
	}
	c.JSON(http.StatusInternalServerError, gin.H{"detail": message})
}
