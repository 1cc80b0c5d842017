package response

import (
	"net/http"

	"sab_waitlist/internal/apperr"
	"sab_waitlist/internal/models"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	// Machine-readable code
	// example: NOT_FOUND
	Code string `json:"code"`

	// Human-readable message, shown to users by the chat bot
	// example: User not in waitlist
	Message string `json:"message"`

	// Optional extra detail
	Details string `json:"details,omitempty"`
}

// ConflictResponse is returned when admitting an account already in the waitlist.
type ConflictResponse struct {
	ErrorResponse
	User *models.WaitlistEntry `json:"user,omitempty"`
}

// EntryResponse wraps a single waitlist entry.
type EntryResponse struct {
	Success bool                 `json:"success"`
	User    models.WaitlistEntry `json:"user"`
}

// AdmitResponse is returned by a successful admission.
type AdmitResponse struct {
	Success  bool                 `json:"success"`
	Position int                  `json:"position"`
	User     models.WaitlistEntry `json:"user"`
}

// ConsumeResponse reports whether consumption removed the entry.
type ConsumeResponse struct {
	Success bool                 `json:"success"`
	Removed bool                 `json:"removed"`
	User    models.WaitlistEntry `json:"user"`
}

// RepositionResponse carries the prior position for audit.
type RepositionResponse struct {
	Success     bool                 `json:"success"`
	User        models.WaitlistEntry `json:"user"`
	OldPosition int                  `json:"oldPosition"`
}

// ListResponse is the partitioned waitlist.
type ListResponse struct {
	All          []models.WaitlistEntry `json:"all"`
	Active       []models.WaitlistEntry `json:"active"`
	Waiting      []models.WaitlistEntry `json:"waiting"`
	TotalCount   int                    `json:"totalCount"`
	ActiveCount  int                    `json:"activeCount"`
	WaitingCount int                    `json:"waitingCount"`
}

// ExemptResponse is returned by exempt add/remove.
type ExemptResponse struct {
	Success  bool   `json:"success"`
	Username string `json:"username"`
	Existed  *bool  `json:"existed,omitempty"`
}

// Status maps a waitlist error code to its HTTP status.
func Status(err error) int {
	switch apperr.CodeOf(err) {
	case apperr.CodeInvalidArgument:
		return http.StatusBadRequest
	case apperr.CodeAlreadyExists:
		return http.StatusConflict
	case apperr.CodeNotFound:
		return http.StatusNotFound
	case apperr.CodeUnauthorized:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// Error writes err with the status its code maps to.
func Error(c *gin.Context, err error) {
	code := string(apperr.CodeOf(err))
	if code == "" {
		code = "INTERNAL"
	}
	c.JSON(Status(err), ErrorResponse{
		Code:    code,
		Message: err.Error(),
	})
}

// BadRequest writes a validation failure.
func BadRequest(c *gin.Context, message string, details string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    string(apperr.CodeInvalidArgument),
		Message: message,
		Details: details,
	})
}
