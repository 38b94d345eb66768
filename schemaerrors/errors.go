package schemaerrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrConstruction indicates an invalid document or base URI.
	ErrConstruction = errors.New("construction error")

	// ErrTransformerNotRegistered indicates a transformer unknown to a codec.
	ErrTransformerNotRegistered = errors.New("transformer not registered")

	// ErrReference indicates a $ref that could not be resolved.
	ErrReference = errors.New("reference error")

	// ErrStructuralMismatch indicates a value shaped differently than its schema.
	ErrStructuralMismatch = errors.New("structural mismatch")

	// ErrTransform indicates a transformation function failed.
	ErrTransform = errors.New("transform error")

	// ErrNotVisited indicates reverse ref lookups were requested before a full walk.
	ErrNotVisited = errors.New("refSources can't be called before visitSchema")

	// ErrParse indicates a parsing failure occurred.
	ErrParse = errors.New("parse error")

	// ErrResourceLimit indicates a resource limit was exceeded.
	ErrResourceLimit = errors.New("resource limit exceeded")

	// ErrConfig indicates an invalid configuration.
	ErrConfig = errors.New("configuration error")
)

// ConstructionError reports a document that cannot be registered.
type ConstructionError struct {
	// Op names the operation that failed, e.g. "add document"
	Op string
	// URI is the base or retrieval URI involved, if any
	URI string
	// Message describes the failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConstructionError) Error() string {
	msg := "construction error"
	if e.Op != "" {
		msg += " (" + e.Op + ")"
	}
	if e.URI != "" {
		msg += " for " + e.URI
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConstructionError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConstructionError) Is(target error) bool {
	return target == ErrConstruction
}

// TransformerError reports a transformer that a codec does not know.
type TransformerError struct {
	// Codec is the codec name
	Codec string
	// Transformer is the transformer name
	Transformer string
}

// Error returns a human-readable error message.
func (e *TransformerError) Error() string {
	return fmt.Sprintf("transformer %q is not registered with codec %q", e.Transformer, e.Codec)
}

// Is reports whether target matches this error type.
func (e *TransformerError) Is(target error) bool {
	return target == ErrTransformerNotRegistered
}

// ReferenceError represents a failure to resolve a $ref.
type ReferenceError struct {
	// Ref is the reference string that failed to resolve
	Ref string
	// Path is the value path being transformed when the reference was followed
	Path string
	// Message provides additional context about the failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ReferenceError) Error() string {
	msg := "reference error"
	if e.Path != "" {
		msg += " at " + e.Path
	}
	if e.Ref != "" {
		msg += ": " + e.Ref
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ReferenceError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ReferenceError) Is(target error) bool {
	return target == ErrReference
}

// StructuralError reports a value whose shape disagrees with its schema.
type StructuralError struct {
	// Path is the JSON pointer of the offending value ("" for the root)
	Path string
	// Expected is "object" or "array"
	Expected string
	// Got is the Go type of the value that was found
	Got string
}

// Error returns a human-readable error message.
func (e *StructuralError) Error() string {
	msg := "structural mismatch"
	if e.Path != "" {
		msg += " at " + e.Path
	}
	msg += ": value is not an " + e.Expected
	if e.Got != "" {
		msg += " (got " + e.Got + ")"
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *StructuralError) Is(target error) bool {
	return target == ErrStructuralMismatch
}

// TransformError wraps an error returned by a transformation function.
type TransformError struct {
	// Codec is the codec name
	Codec string
	// Transformer is the transformer name
	Transformer string
	// Path is the JSON pointer of the value being transformed
	Path string
	// Cause is the error returned by the function
	Cause error
}

// Error returns a human-readable error message.
func (e *TransformError) Error() string {
	msg := fmt.Sprintf("transform error (%s/%s)", e.Codec, e.Transformer)
	if e.Path != "" {
		msg += " at " + e.Path
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *TransformError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *TransformError) Is(target error) bool {
	return target == ErrTransform
}

// ParseError represents a failure to decode a schema document.
type ParseError struct {
	// Path is the file path or source identifier
	Path string
	// Format is "json" or "yaml" when known
	Format string
	// Message describes the parsing failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ParseError) Error() string {
	msg := "parse error"
	if e.Format != "" {
		msg = e.Format + " " + msg
	}
	if e.Path != "" {
		msg += " in " + e.Path
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// ResourceLimitError represents a resource exhaustion condition.
type ResourceLimitError struct {
	// ResourceType identifies what limit was exceeded, e.g. "document_size"
	ResourceType string
	// Limit is the configured maximum value
	Limit int64
	// Actual is the value that exceeded the limit (may be 0 if unknown)
	Actual int64
	// Message provides additional context
	Message string
}

// Error returns a human-readable error message.
func (e *ResourceLimitError) Error() string {
	msg := "resource limit exceeded"
	if e.ResourceType != "" {
		msg += ": " + e.ResourceType
	}
	if e.Limit > 0 {
		msg += fmt.Sprintf(" (limit: %d", e.Limit)
		if e.Actual > 0 {
			msg += fmt.Sprintf(", actual: %d", e.Actual)
		}
		msg += ")"
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *ResourceLimitError) Is(target error) bool {
	return target == ErrResourceLimit
}

// ConfigError represents an invalid configuration or input.
type ConfigError struct {
	// Option is the name of the problematic configuration option
	Option string
	// Value is the invalid value that was provided (may be nil)
	Value any
	// Message describes the configuration error
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += " for " + e.Option
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}
