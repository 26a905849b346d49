package serrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an error for presentation purposes: validation
// problems render inline, not-found renders an empty state, network
// and server failures render as dismissible notifications.
type Kind string

const (
	KindValidation Kind = "validation"
	KindNotFound   Kind = "not_found"
	KindNetwork    Kind = "network"
	KindServer     Kind = "server"
)

// Base is a coded error with a user-facing message. Two Base errors
// compare equal under errors.Is when their codes match, so package
// level sentinels can be matched against wrapped copies.
type Base struct {
	Code    string
	Kind    Kind
	Message string
}

func NewError(code, message string, kind Kind) *Base {
	if kind == "" {
		kind = KindServer
	}
	return &Base{Code: code, Kind: kind, Message: message}
}

func (e *Base) Error() string {
	if e.Message == "" {
		return e.Code
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Base) Is(target error) bool {
	var other *Base
	if !errors.As(target, &other) {
		return false
	}
	return other.Code == e.Code
}

// WithMessage returns a copy carrying a more specific user message.
func (e *Base) WithMessage(message string) *Base {
	return &Base{Code: e.Code, Kind: e.Kind, Message: message}
}

var (
	ErrValidation = NewError("VALIDATION", "invalid input", KindValidation)
	ErrNotFound   = NewError("NOT_FOUND", "record not found", KindNotFound)
	ErrNetwork    = NewError("NETWORK", "network unreachable", KindNetwork)
	ErrServer     = NewError("SERVER", "server error", KindServer)
	ErrForbidden  = NewError("FORBIDDEN", "action not permitted", KindValidation)
)

// FromHTTPStatus maps a response status to the error taxonomy. The
// message argument is the best-effort extraction from the response
// body; when blank the sentinel's generic message is kept.
func FromHTTPStatus(status int, message string) *Base {
	var base *Base
	switch {
	case status == http.StatusNotFound:
		base = ErrNotFound
	case status >= 400 && status < 500:
		base = ErrValidation
	default:
		base = ErrServer
	}
	if message == "" {
		return base
	}
	return base.WithMessage(message)
}

// KindOf reports the Kind of err, or KindServer for errors outside
// the taxonomy.
func KindOf(err error) Kind {
	var base *Base
	if errors.As(err, &base) {
		return base.Kind
	}
	return KindServer
}

func IsValidation(err error) bool { return KindOf(err) == KindValidation }
func IsNotFound(err error) bool   { return KindOf(err) == KindNotFound }

// UserMessage extracts the message intended for display. Errors
// outside the taxonomy fall back to the provided generic string so a
// raw transport error never reaches the user verbatim.
func UserMessage(err error, fallback string) string {
	var base *Base
	if errors.As(err, &base) && base.Message != "" {
		return base.Message
	}
	return fallback
}
