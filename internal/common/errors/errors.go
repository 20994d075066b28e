// internal/common/errors/errors.go
// Package errors provides standardized error handling for the wizard host
// and its external boundaries. Field-level validation failures are NOT
// errors in this sense; they travel as data ([]models.FieldError) so every
// problem can be rendered at once.
package errors

import (
	"fmt"
	"time"
)

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeGatewaySubmitFailed   ErrorCode = "GATEWAY_SUBMIT_FAILED"
	ErrCodeGatewayTimeout        ErrorCode = "GATEWAY_TIMEOUT"
	ErrCodePayloadRejected       ErrorCode = "PAYLOAD_REJECTED"
	ErrCodePaymentDeclined       ErrorCode = "PAYMENT_DECLINED"
	ErrCodeNotificationFailed    ErrorCode = "NOTIFICATION_SEND_FAILED"
	ErrCodeSessionNotFound       ErrorCode = "SESSION_NOT_FOUND"
	ErrCodeInvalidEditRequest    ErrorCode = "INVALID_EDIT_REQUEST"
	ErrCodeSubmissionInProgress  ErrorCode = "SUBMISSION_IN_PROGRESS"
	ErrCodeSubmissionNotFromLast ErrorCode = "SUBMISSION_NOT_FROM_REVIEW"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// NewGatewaySubmitFailedError creates a retryable gateway error.
func NewGatewaySubmitFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeGatewaySubmitFailed,
		Message:   "Submission gateway rejected the application",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewGatewayTimeoutError creates a retryable gateway timeout error.
func NewGatewayTimeoutError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeGatewayTimeout,
		Message:   "Submission gateway timed out",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewPayloadRejectedError creates a non-retryable payload schema error.
func NewPayloadRejectedError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodePayloadRejected,
		Message:   "Submission payload failed schema validation",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewPaymentDeclinedError creates a non-retryable payment error.
func NewPaymentDeclinedError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodePaymentDeclined,
		Message:   "Payment was declined",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewNotificationFailedError creates a retryable notification error.
func NewNotificationFailedError(channel string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeNotificationFailed,
		Message:   "Notification delivery failed",
		Details:   fmt.Sprintf("channel: %s, error: %s", channel, err.Error()),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewSessionNotFoundError creates a non-retryable session lookup error.
func NewSessionNotFoundError(sessionID string) *StandardError {
	return &StandardError{
		Code:      ErrCodeSessionNotFound,
		Message:   "Wizard session not found",
		Details:   fmt.Sprintf("sessionId: %s", sessionID),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewInvalidEditRequestError creates a non-retryable edit error.
func NewInvalidEditRequestError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeInvalidEditRequest,
		Message:   "Edit request could not be applied",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// IsRetryable reports whether an error is a retryable StandardError.
func IsRetryable(err error) bool {
	if se, ok := err.(*StandardError); ok {
		return se.Retryable
	}
	return false
}
