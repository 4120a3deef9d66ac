package container

import (
	"errors"
	"fmt"
)

// Core error definitions
var (
	// Construction errors
	ErrInvalidArgument   = errors.New("invalid constructor argument")
	ErrNotAFile          = errors.New("not a readable file")
	ErrUnparsableContent = errors.New("content is neither JSON nor serialized")

	// Access errors
	ErrEmptyContainer = errors.New("container is empty")
	ErrOffsetNotFound = errors.New("offset not found")

	// Argument errors
	ErrBadLength   = errors.New("bad length")
	ErrBadArgument = errors.New("bad argument")

	// Iteration errors
	ErrConcurrentModification = errors.New("container modified during iteration")
)

// ContainerError represents a container operation error with essential context
type ContainerError struct {
	Op      string `json:"op"`      // Operation that failed
	Path    string `json:"path"`    // Dot path where error occurred
	Message string `json:"message"` // Human-readable error message
	Err     error  `json:"err"`     // Underlying error
}

func (e *ContainerError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("container %s failed at path '%s': %s", e.Op, e.Path, e.Message)
	}
	return fmt.Sprintf("container %s failed: %s", e.Op, e.Message)
}

// Unwrap returns the underlying error for error chain support
func (e *ContainerError) Unwrap() error {
	return e.Err
}

// Is implements error matching for errors.Is
func (e *ContainerError) Is(target error) bool {
	if target == nil {
		return false
	}

	if targetErr, ok := target.(*ContainerError); ok {
		return e.Op == targetErr.Op && e.Err == targetErr.Err
	}

	return errors.Is(e.Err, target)
}

// newOperationError creates a ContainerError for operation failures
func newOperationError(operation, message string, err error) error {
	return &ContainerError{
		Op:      operation,
		Message: message,
		Err:     err,
	}
}

// newPathError creates a ContainerError carrying the offending path
func newPathError(operation, path, message string, err error) error {
	return &ContainerError{
		Op:      operation,
		Path:    path,
		Message: message,
		Err:     err,
	}
}

// newLengthError reports a size that does not fit the container
func newLengthError(operation string, actual, limit int) error {
	return &ContainerError{
		Op:      operation,
		Message: fmt.Sprintf("length %d does not fit %d", actual, limit),
		Err:     ErrBadLength,
	}
}

// WrapError wraps an error with additional context
func WrapError(err error, op, message string) error {
	if err == nil {
		return nil
	}
	return &ContainerError{
		Op:      op,
		Message: message,
		Err:     err,
	}
}
