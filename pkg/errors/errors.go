package errors

import (
	"fmt"
)

// ParseError represents a JSON or YAML parsing failure for an input document.
type ParseError struct {
	Path    string
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures plan or intake validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// RenderError represents a failure while composing or writing a PDF page.
type RenderError struct {
	Page string
	Err  error
}

// NewRenderError constructs a RenderError for the given page.
func NewRenderError(page string, err error) error {
	return &RenderError{Page: page, Err: err}
}

func (e *RenderError) Error() string {
	if e == nil {
		return ""
	}
	if e.Page != "" {
		return fmt.Sprintf("render error on page %s: %v", e.Page, e.Err)
	}
	return fmt.Sprintf("render error: %v", e.Err)
}

// Unwrap exposes the root error.
func (e *RenderError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// GenerationError indicates a failure while producing a plan with the coach backend.
type GenerationError struct {
	Stage   string
	Message string
	Err     error
}

// NewGenerationError constructs a GenerationError for the given pipeline stage.
func NewGenerationError(stage string, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &GenerationError{Stage: stage, Message: message, Err: err}
}

func (e *GenerationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Stage != "" {
		return fmt.Sprintf("generation error [%s]: %s", e.Stage, e.Message)
	}
	return fmt.Sprintf("generation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *GenerationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// NotifyError indicates a failure while building or delivering a notification.
type NotifyError struct {
	Recipient string
	Err       error
}

// NewNotifyError constructs a NotifyError for the given recipient.
func NewNotifyError(recipient string, err error) error {
	return &NotifyError{Recipient: recipient, Err: err}
}

func (e *NotifyError) Error() string {
	if e == nil {
		return ""
	}
	if e.Recipient != "" {
		return fmt.Sprintf("notify error for %s: %v", e.Recipient, e.Err)
	}
	return fmt.Sprintf("notify error: %v", e.Err)
}

// Unwrap exposes the root error.
func (e *NotifyError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
