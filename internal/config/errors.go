package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig indicates the merged settings could not be decoded,
// usually because a value has the wrong type.
var ErrInvalidConfig = errors.New("invalid configuration")

// ValidationError describes a validation failure for a setting.
type ValidationError struct {
	// Path is the dotted setting path that failed validation.
	Path string
	// Message describes the validation error.
	Message string
	// Value is the invalid value.
	Value any
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (value: %v)", e.Path, e.Message, e.Value)
}
