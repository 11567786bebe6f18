// Package apperr defines the error kinds handlers translate into HTTP responses.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

type Kind int

const (
	KindInternal Kind = iota
	KindMissingFields
	KindInvalidCategory
	KindBadRequest
	KindNotFound
	KindConflict
	KindRegistrationIncomplete
)

// NoDataFound is the message every empty read result is reported with.
const NoDataFound = "No Data Found"

// Error carries a kind, a client-facing message and, for server faults, the cause.
// Err is logged but never rendered to the client.
type Error struct {
	Kind    Kind
	Message string
	Fields  []string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func MissingFields(fields []string) *Error {
	return &Error{
		Kind:    KindMissingFields,
		Message: "Missing required fields: " + strings.Join(fields, ", "),
		Fields:  fields,
	}
}

func InvalidCategory(raw int64) *Error {
	return &Error{Kind: KindInvalidCategory, Message: fmt.Sprintf("Invalid category_id: %d", raw)}
}

func BadRequest(msg string, err error) *Error {
	return &Error{Kind: KindBadRequest, Message: msg, Err: err}
}

func NotFound() *Error {
	return &Error{Kind: KindNotFound, Message: NoDataFound}
}

func Conflict(msg string) *Error {
	return &Error{Kind: KindConflict, Message: msg}
}

func RegistrationIncomplete(err error) *Error {
	return &Error{
		Kind:    KindRegistrationIncomplete,
		Message: "Registration incomplete: no identifier returned for the new record",
		Err:     err,
	}
}

func Internal(msg string, err error) *Error {
	return &Error{Kind: KindInternal, Message: msg, Err: err}
}

// KindOf reports the kind of err. Errors that are not *Error are internal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// Is reports whether err is an *Error of kind k.
func Is(err error, k Kind) bool {
	return err != nil && KindOf(err) == k
}

// Status maps err to the HTTP status it is reported with.
func Status(err error) int {
	switch KindOf(err) {
	case KindMissingFields, KindInvalidCategory, KindBadRequest:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Message returns the client-facing text for err.
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return "An error occurred"
}
