package core

// errors.go defines the error taxonomy every operation reports through.
// Callers see only the message text inside the failure envelope; the typed
// errors exist so the web layer can pick an HTTP status with errors.As.

import "fmt"

// ValidationError reports missing or malformed required input.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// AuthorizationError reports an insufficient role for the attempted action.
type AuthorizationError struct {
	Msg string
}

func (e *AuthorizationError) Error() string { return e.Msg }

// NotFoundError reports that no row matched the requested key.
type NotFoundError struct {
	Msg string
}

func (e *NotFoundError) Error() string { return e.Msg }

// StoreError reports a missing table or required column in the backing store.
type StoreError struct {
	Msg string
	Err error
}

func (e *StoreError) Error() string { return e.Msg }

func (e *StoreError) Unwrap() error { return e.Err }

// ConfigError reports a malformed board table (for example a favorites
// table without its required columns).
type ConfigError struct {
	Msg string
}

func (e *ConfigError) Error() string { return e.Msg }

func errValidation(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

func errAuthorization(format string, args ...any) error {
	return &AuthorizationError{Msg: fmt.Sprintf(format, args...)}
}

func errNotFound(format string, args ...any) error {
	return &NotFoundError{Msg: fmt.Sprintf(format, args...)}
}

func errStore(err error, format string, args ...any) error {
	return &StoreError{Msg: fmt.Sprintf(format, args...), Err: err}
}

func errConfig(format string, args ...any) error {
	return &ConfigError{Msg: fmt.Sprintf(format, args...)}
}
