package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Dispatch errors
	ErrMsgUnsupportedVariant   = "unsupported item type"
	ErrMsgUnsupportedOperation = "unsupported static operation"

	// Variant errors
	ErrMsgNotArtifact   = "item is not an artifact"
	ErrMsgWrongVariant  = "record type does not match variant"
	ErrMsgInvalidRecord = "invalid item record"
	ErrMsgItemNotFound  = "item not found"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Dispatch errors
	ErrUnsupportedVariant   = errors.New(ErrMsgUnsupportedVariant)
	ErrUnsupportedOperation = errors.New(ErrMsgUnsupportedOperation)

	// Variant errors
	ErrNotArtifact   = errors.New(ErrMsgNotArtifact)
	ErrWrongVariant  = errors.New(ErrMsgWrongVariant)
	ErrInvalidRecord = errors.New(ErrMsgInvalidRecord)
	ErrItemNotFound  = errors.New(ErrMsgItemNotFound)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
