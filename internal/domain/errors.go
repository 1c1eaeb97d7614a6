package domain

import "fmt"

// NotFoundError represents a missing document.
type NotFoundError struct {
	Resource string
}

func (e NotFoundError) Error() string {
	if e.Resource == "" {
		return "not found"
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

// Is enables errors.Is matching on NotFoundError.
func (e NotFoundError) Is(target error) bool {
	_, ok := target.(NotFoundError)
	if ok {
		return true
	}
	_, ok = target.(*NotFoundError)
	return ok
}

// ErrNotFound is the sentinel error for missing documents.
var ErrNotFound = NotFoundError{}

// RequiredFieldError reports a save attempt with a required field absent.
type RequiredFieldError struct {
	Field  string
	Entity string
}

func (e RequiredFieldError) Error() string {
	return fmt.Sprintf("field %s is required for %s", e.Field, e.Entity)
}

// Is enables errors.Is matching on RequiredFieldError.
func (e RequiredFieldError) Is(target error) bool {
	_, ok := target.(RequiredFieldError)
	if ok {
		return true
	}
	_, ok = target.(*RequiredFieldError)
	return ok
}

// ErrRequiredField is the sentinel error for validation failures at save.
var ErrRequiredField = RequiredFieldError{}

// BackendError wraps a search backend connection or protocol failure.
// It is never handled locally, only propagated with context.
type BackendError struct {
	Op  string
	Err error
}

func (e BackendError) Error() string {
	return fmt.Sprintf("search backend %s: %v", e.Op, e.Err)
}

func (e BackendError) Unwrap() error { return e.Err }

// Is enables errors.Is matching on BackendError.
func (e BackendError) Is(target error) bool {
	_, ok := target.(BackendError)
	if ok {
		return true
	}
	_, ok = target.(*BackendError)
	return ok
}

// ErrBackend is the sentinel error for backend failures.
var ErrBackend = BackendError{}
