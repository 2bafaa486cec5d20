// Package apperr defines the error taxonomy shared by repositories and
// handlers: every store failure is translated into one of these kinds before
// it crosses an operation boundary, so callers never see raw driver errors.
package apperr

import (
	"errors"

	"gorm.io/gorm"
)

type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindNotFound
	KindConflict
	KindAlreadyClockedIn
	KindNoActiveClockIn
	KindStoreUnavailable
)

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

func Validation(message string) *Error { return New(KindValidation, message) }
func NotFound(message string) *Error   { return New(KindNotFound, message) }
func Conflict(message string) *Error   { return New(KindConflict, message) }

func AlreadyClockedIn() *Error {
	return New(KindAlreadyClockedIn, "operator is already clocked in today")
}

func NoActiveClockIn() *Error {
	return New(KindNoActiveClockIn, "no active clock-in found for operator")
}

func StoreUnavailable(err error) *Error {
	return Wrap(KindStoreUnavailable, "store unavailable", err)
}

// KindOf reports the taxonomy kind of err, or KindInternal for anything that
// was not classified.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// Message returns the user-facing message for err without internal detail.
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return "internal server error"
}

// FromDB translates a store error into the taxonomy. Already-classified
// errors pass through unchanged.
func FromDB(err error, notFoundMsg, conflictMsg string) error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return err
	}
	if notFoundMsg == "" {
		notFoundMsg = "record not found"
	}
	if conflictMsg == "" {
		conflictMsg = "duplicate record"
	}
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return New(KindNotFound, notFoundMsg)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return New(KindConflict, conflictMsg)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return New(KindConflict, "record is still referenced by other records")
	default:
		return Wrap(KindInternal, "store operation failed", err)
	}
}
