// Package errors provides structured error handling for the neumorphism
// packages.
package errors

import (
	stderrors "errors"
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindConfig indicates an invalid shadow, container or style configuration.
	KindConfig
	// KindRender indicates a rendering error.
	KindRender
	// KindPanic indicates a recovered panic.
	KindPanic
	// KindIO indicates a failure reading or writing images and style files.
	KindIO
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindRender:
		return "render"
	case KindPanic:
		return "panic"
	case KindIO:
		return "io"
	default:
		return "unknown"
	}
}

// ErrInvalidConfig is matched by every [ConfigError] via errors.Is.
var ErrInvalidConfig = stderrors.New("invalid config")

// Error represents a structured error raised by an operation.
type Error struct {
	// Op is the operation that failed (e.g., "effects.Configure").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// ConfigError reports a configuration value that was rejected.
type ConfigError struct {
	// Field names the offending setting (e.g., "shadows[1].color").
	Field string
	// Value is the rejected input.
	Value any
	// Reason says what is wrong with it.
	Reason string
}

func (e *ConfigError) Error() string {
	if e.Value == nil {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("invalid %s %v: %s", e.Field, e.Value, e.Reason)
}

// Is reports whether target is [ErrInvalidConfig].
func (e *ConfigError) Is(target error) bool {
	return target == ErrInvalidConfig
}

// InvalidConfig builds a ConfigError.
func InvalidConfig(field string, value any, format string, args ...any) *ConfigError {
	return &ConfigError{Field: field, Value: value, Reason: fmt.Sprintf(format, args...)}
}

// WithField returns a copy of err with its field name prefixed by prefix,
// so nested validation can report full paths like "styles.dark.shadows[0]".
// Errors that are not ConfigErrors are returned unchanged.
func WithField(prefix string, err error) error {
	var ce *ConfigError
	if !stderrors.As(err, &ce) {
		return err
	}
	field := prefix
	if ce.Field != "" {
		if ce.Field[0] == '[' {
			field = prefix + ce.Field
		} else {
			field = prefix + "." + ce.Field
		}
	}
	return &ConfigError{Field: field, Value: ce.Value, Reason: ce.Reason}
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "widgets.ShadowContainer.Paint").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// ErrorHandler receives errors reported by the rendering packages.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *Error)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
