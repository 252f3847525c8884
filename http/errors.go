package http

import "fmt"

// DuplicateHeaderError is returned by AddHeader when the header key is
// already present on the request. The upsert variant WithHeader never
// produces this error.
type DuplicateHeaderError struct {
	Key string
}

// Error returns the error message
func (e *DuplicateHeaderError) Error() string {
	return fmt.Sprintf("header %q is already set", e.Key)
}

// AlreadySetError is returned when a write-once field (the request
// encoder or decoder) is assigned a second time.
type AlreadySetError struct {
	Field string
}

// Error returns the error message
func (e *AlreadySetError) Error() string {
	return fmt.Sprintf("%s is already set and can only be set once", e.Field)
}

// InvalidParamError is returned by AddParam when the parameter name is
// empty or the value is nil.
type InvalidParamError struct {
	Name   string
	Reason string
}

// Error returns the error message
func (e *InvalidParamError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("invalid query parameter: %s", e.Reason)
	}
	return fmt.Sprintf("invalid query parameter %q: %s", e.Name, e.Reason)
}

// SerializationError is returned by Request.Data when writing the request
// content fails for any reason, including encoder failures. The original
// cause is always preserved and available through errors.Unwrap.
type SerializationError struct {
	Cause error
}

// Error returns the error message
func (e *SerializationError) Error() string {
	return fmt.Sprintf("serializing request content: %v", e.Cause)
}

// Unwrap returns the underlying cause
func (e *SerializationError) Unwrap() error {
	return e.Cause
}
