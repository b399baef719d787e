// Package errors provides standardized error handling for tool dispatch.
package errors

import (
	"fmt"
	"time"
)

// ==========================
// 1. Standard Error Types
// ==========================

// ErrorCode represents standardized internal error codes.
type ErrorCode string

// Dispatch errors. The billing tools themselves are total functions and
// define no error codes of their own; everything here belongs to the
// argument-binding and transport layer.
const (
	ErrCodeToolNotFound     ErrorCode = "TOOL_NOT_FOUND"
	ErrCodeDuplicateTool    ErrorCode = "DUPLICATE_TOOL"
	ErrCodeParseError       ErrorCode = "PARSE_ERROR"
	ErrCodeInvalidArguments ErrorCode = "INVALID_ARGUMENTS"
	ErrCodeCacheUnavailable ErrorCode = "CACHE_UNAVAILABLE"
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

// ==========================
// 2. Wire Format
// ==========================

// ToolError is the JSON-representable error payload written back to the
// caller when an invocation is rejected.
type ToolError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

func (e *ToolError) Error() string {
	return fmt.Sprintf("ToolError[%s]: %s", e.Code, e.Message)
}

// FromStandard converts a StandardError into its wire form.
func FromStandard(err *StandardError) *ToolError {
	return &ToolError{
		Code:    string(err.Code),
		Message: err.Message,
		Details: err.Details,
	}
}

// ==========================
// 3. Error Constructors
// ==========================

// NewToolNotFoundError creates a non-retryable lookup error.
func NewToolNotFoundError(name string) *StandardError {
	return &StandardError{
		Code:      ErrCodeToolNotFound,
		Message:   "Tool not registered",
		Details:   fmt.Sprintf("tool: %s", name),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewDuplicateToolError creates a non-retryable registration error.
func NewDuplicateToolError(name string) *StandardError {
	return &StandardError{
		Code:      ErrCodeDuplicateTool,
		Message:   "Tool already registered",
		Details:   fmt.Sprintf("tool: %s", name),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewParseError creates a non-retryable request framing error.
func NewParseError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeParseError,
		Message:   "Malformed request",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewInvalidArgumentsError creates a non-retryable argument-binding error.
func NewInvalidArgumentsError(tool, details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeInvalidArguments,
		Message:   "Arguments do not match tool schema",
		Details:   details,
		Retryable: false,
		Metadata:  map[string]interface{}{"tool": tool},
		Timestamp: time.Now().UTC(),
	}
}

// NewCacheUnavailableError creates a retryable cache connectivity error.
func NewCacheUnavailableError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeCacheUnavailable,
		Message:   "Response cache unavailable",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}
