package agent

import (
	"context"
	"errors"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// UserMessage is the only failure text shown to end users
const UserMessage = "Failed to analyze book. Please try again."

var (
	// ErrEmptyInput is returned when the title is blank after trimming.
	// It is returned as is, not wrapped in AnalysisFailedError.
	ErrEmptyInput = errors.New("book title is empty")

	// ErrAnalysisFailed matches every *AnalysisFailedError
	ErrAnalysisFailed = errors.New("book analysis failed")

	// ErrEmptyResponse is the cause when the service returned no text
	ErrEmptyResponse = errors.New("no response received from API")

	// ErrParse is the cause when the reply was not the expected JSON
	ErrParse = errors.New("failed to parse API response")

	// ErrTransport is the cause for network and service-level failures
	ErrTransport = errors.New("generation service call failed")

	// ErrUnavailable is the cause when no analyzer is configured
	ErrUnavailable = errors.New("analysis service is not available")
)

// AnalysisFailedError is the single error surfaced by the analyzer.
// Error() never includes the cause; errors.Is still matches it.
type AnalysisFailedError struct {
	cause error
}

func NewAnalysisFailedError(cause error) *AnalysisFailedError {
	return &AnalysisFailedError{cause: cause}
}

func (e *AnalysisFailedError) Error() string {
	return UserMessage
}

func (e *AnalysisFailedError) Unwrap() []error {
	if e.cause == nil {
		return []error{ErrAnalysisFailed}
	}
	return []error{ErrAnalysisFailed, e.cause}
}

// SafeMessage returns the user-facing text for any analyzer error.
func SafeMessage(err error) string {
	var failed *AnalysisFailedError
	if errors.As(err, &failed) {
		return failed.Error()
	}
	return UserMessage
}

// classifyTransportError labels a transport failure for diagnostics only
func classifyTransportError(err error) string {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	case errors.Is(err, context.Canceled):
		return "canceled"
	}

	if s, ok := status.FromError(err); ok && s.Code() == codes.ResourceExhausted {
		return "quota"
	}
	errStr := err.Error()
	if strings.Contains(errStr, "RESOURCE_EXHAUSTED") ||
		strings.Contains(errStr, "429") ||
		strings.Contains(errStr, "quota") {
		return "quota"
	}
	if strings.Contains(errStr, "API key") || strings.Contains(errStr, "401") || strings.Contains(errStr, "403") {
		return "auth"
	}
	return "service"
}
