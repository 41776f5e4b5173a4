package errors

import (
	"net/http"
	"os"
	"strings"

	"codeberg.org/metawork/server/internal/logger"
	"github.com/gin-gonic/gin"
)

// Error Handling Guidelines:
//
// For HTTP REST handlers:
//   - Use errors.InternalError(), errors.BadRequest(), etc. for critical errors
//     These functions handle both logging and HTTP response automatically
//   - Use logger.ErrorErr() only for non-critical errors where processing continues
//   - Never call both logger.ErrorErr() and errors.InternalError() for the same error
//
// For repositories/internal packages:
//   - Return wrapped errors with context using fmt.Errorf("context: %w", err)
//   - Let the caller (handler) decide how to log and respond
//   - Do not log errors in non-handler code (avoid double logging)

// represents a standardized error response
type ErrorResponse struct {
	Error   string `json:"error"`             // error code (e.g., "unauthorized", "invalid_credentials")
	Message string `json:"message"`           // user-friendly message
	Details string `json:"details,omitempty"` // optional details (sanitized in production)
}

// standard error codes
const (
	CodeUnauthorized       = "unauthorized"
	CodeNotFound           = "not_found"
	CodeValidationError    = "validation_error"
	CodeServerError        = "server_error"
	CodeBadRequest         = "bad_request"
	CodeDuplicateEmail     = "duplicate_email"
	CodeInvalidCredentials = "invalid_credentials"
	CodeWrongAuthMethod    = "wrong_auth_method"
)

// returns a 401 unauthorized error
func Unauthorized(c *gin.Context, message string) {
	if message == "" {
		message = "authentication required"
	}

	c.JSON(http.StatusUnauthorized, ErrorResponse{
		Error:   CodeUnauthorized,
		Message: message,
	})
}

// returns a 404 not found error
func NotFound(c *gin.Context, resource string) {
	message := "resource not found"

	if resource != "" {
		message = resource + " not found"
	}

	c.JSON(http.StatusNotFound, ErrorResponse{
		Error:   CodeNotFound,
		Message: message,
	})
}

// returns a 400 bad request error
func BadRequest(c *gin.Context, message string, err error) {
	if message == "" {
		message = "invalid request"
	}

	response := ErrorResponse{
		Error:   CodeBadRequest,
		Message: message,
	}

	if err != nil {
		response.Details = sanitizeError(err)
	}

	c.JSON(http.StatusBadRequest, response)
}

// returns a 400 bad request error for validation failures
func ValidationError(c *gin.Context, message string) {
	if message == "" {
		message = "validation failed"
	}

	c.JSON(http.StatusBadRequest, ErrorResponse{
		Error:   CodeValidationError,
		Message: message,
	})
}

// returns a 400 error when the email is already registered
func DuplicateEmail(c *gin.Context) {
	c.JSON(http.StatusBadRequest, ErrorResponse{
		Error:   CodeDuplicateEmail,
		Message: "email is already in use",
	})
}

// returns a 400 error for a failed login.
// The message is identical for unknown email and wrong password so the
// endpoint cannot be used to enumerate accounts.
func InvalidCredentials(c *gin.Context) {
	c.JSON(http.StatusBadRequest, ErrorResponse{
		Error:   CodeInvalidCredentials,
		Message: "incorrect email or password",
	})
}

// returns a 400 error when a password login hits an OAuth-only account.
// Intentionally more specific than InvalidCredentials: the account holder
// needs to know to use the Google sign-in instead.
func WrongAuthMethod(c *gin.Context) {
	c.JSON(http.StatusBadRequest, ErrorResponse{
		Error:   CodeWrongAuthMethod,
		Message: "this account was registered with Google. Please sign in with Google",
	})
}

// returns a 500 internal server error
func InternalError(c *gin.Context, message string, err error) {
	if message == "" {
		message = "an error occurred"
	}

	// log full error server-side with context
	logger.ErrorErr(err, message,
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
		"user_id", c.GetString("user_id"),
	)

	// return sanitized error to client
	c.JSON(http.StatusInternalServerError, ErrorResponse{
		Error:   CodeServerError,
		Message: message,
		Details: sanitizeError(err),
	})
}

// sanitizes error messages for production
func sanitizeError(err error) string {
	if err == nil {
		return ""
	}

	errMsg := err.Error()
	env := os.Getenv("ENVIRONMENT")

	if env != "production" {
		return errMsg
	}

	if strings.Contains(errMsg, "database") || strings.Contains(errMsg, "sql") {
		return "database operation failed"
	}

	if strings.Contains(errMsg, "connection") || strings.Contains(errMsg, "network") {
		return "connection error occurred"
	}

	if strings.Contains(errMsg, "timeout") {
		return "request timed out"
	}

	if strings.Contains(errMsg, "not found") {
		return "resource not found"
	}

	return "an error occurred"
}
