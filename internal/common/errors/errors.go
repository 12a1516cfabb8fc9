// Package errors provides standardized error handling for the resolution
// pipeline. Provider absence is not an error and never appears here; these
// codes cover the faults that surface to the caller or the operator.
package errors

import (
	"fmt"
	"time"
)

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeIdentityUnresolvable ErrorCode = "IDENTITY_UNRESOLVABLE"
	ErrCodeTaxonomyLoadFailed   ErrorCode = "TAXONOMY_LOAD_FAILED"
	ErrCodeProviderFault        ErrorCode = "PROVIDER_FAULT"
	ErrCodeAnalyzeFailed        ErrorCode = "ANALYZE_FAILED"
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

// NewIdentityUnresolvableError marks a query whose identity could not be
// established at all. Non-retryable: the same input yields the same result.
func NewIdentityUnresolvableError(query string) *StandardError {
	return &StandardError{
		Code:      ErrCodeIdentityUnresolvable,
		Message:   "Query could not be resolved to an additive identity",
		Details:   fmt.Sprintf("query: %q", query),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewTaxonomyLoadError wraps a failed bulk taxonomy fetch. Startup continues
// with an empty index, so this is logged rather than escalated.
func NewTaxonomyLoadError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeTaxonomyLoadFailed,
		Message:   "Bulk taxonomy fetch failed",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewProviderFaultError records a transport or decode fault at an adapter
// boundary before it is collapsed into absence.
func NewProviderFaultError(provider string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeProviderFault,
		Message:   fmt.Sprintf("Provider '%s' fault", provider),
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewAnalyzeFailedError wraps an unexpected orchestration fault surfaced to
// the caller as a generic failure.
func NewAnalyzeFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeAnalyzeFailed,
		Message:   "Additive analysis failed",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}
