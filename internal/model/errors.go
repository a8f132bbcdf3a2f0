package model

import (
	"errors"
	"fmt"
)

// Store-level sentinel errors.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
)

// Token verification errors.
var (
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("token invalid")
)

// ErrorKind classifies a rejection so the boundary layer can map it to a
// transport status without looking at the message.
type ErrorKind int

const (
	KindInternal ErrorKind = iota
	KindValidation
	KindConflict
	KindExpired
	KindInvalidCredential
	KindInvalidCode
	KindNotFound
	KindForbidden
	KindStoreUnavailable
	KindFatal
)

var kindNames = map[ErrorKind]string{
	KindInternal:          "internal",
	KindValidation:        "validation",
	KindConflict:          "conflict",
	KindExpired:           "expired",
	KindInvalidCredential: "invalid_credential",
	KindInvalidCode:       "invalid_code",
	KindNotFound:          "not_found",
	KindForbidden:         "forbidden",
	KindStoreUnavailable:  "store_unavailable",
	KindFatal:             "fatal",
}

// String returns the wire name of the kind.
func (k ErrorKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Error is a tagged rejection returned by services.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the kind of the first *Error in err's chain, or KindInternal.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// NewValidationError reports malformed or missing input.
func NewValidationError(format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

// NewConflictError reports that a unique value is already taken.
func NewConflictError(format string, args ...any) *Error {
	return &Error{Kind: KindConflict, Message: fmt.Sprintf(format, args...)}
}

// NewExpiredError reports an elapsed flow or token.
func NewExpiredError(message string) *Error {
	return &Error{Kind: KindExpired, Message: message}
}

// NewInvalidCredentialError reports a password mismatch.
func NewInvalidCredentialError() *Error {
	return &Error{Kind: KindInvalidCredential, Message: "invalid password"}
}

// NewInvalidCodeError reports a one-time passcode mismatch.
func NewInvalidCodeError() *Error {
	return &Error{Kind: KindInvalidCode, Message: "invalid otp"}
}

// NewNotFoundError reports a missing resource.
func NewNotFoundError(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

// NewForbiddenError reports an operation on a resource the caller does not own.
func NewForbiddenError(message string) *Error {
	return &Error{Kind: KindForbidden, Message: message}
}

// NewStoreUnavailableError wraps a collaborator failure (database, mail).
func NewStoreUnavailableError(message string, err error) *Error {
	return &Error{Kind: KindStoreUnavailable, Message: message, Err: err}
}

// NewFatalError wraps an entropy or crypto primitive failure.
func NewFatalError(message string, err error) *Error {
	return &Error{Kind: KindFatal, Message: message, Err: err}
}
