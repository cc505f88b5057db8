package homework

import (
	"errors"
	"fmt"
)

// Kind classifies the failures the poller knows how to report.
type Kind int

const (
	KindUnclassified Kind = iota
	KindServiceUnavailable
	KindMalformedResponse
	KindInvalidType
	KindMissingField
	KindUnknownStatus
	KindDelivery
)

var kindNames = map[Kind]string{
	KindUnclassified:       "unclassified",
	KindServiceUnavailable: "service_unavailable",
	KindMalformedResponse:  "malformed_response",
	KindInvalidType:        "invalid_type",
	KindMissingField:       "missing_field",
	KindUnknownStatus:      "unknown_status",
	KindDelivery:           "delivery",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Error is a classified failure. Message is what the chat sees.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Kind.String()
}

// Unwrap returns the underlying error (for errors.Is and errors.As)
func (e *Error) Unwrap() error {
	return e.Err
}

// New creates an error of the given kind.
func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Message: msg}
}

// Newf creates an error of the given kind with a formatted message.
func Newf(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap attaches a kind and message to an underlying error.
func Wrap(err error, kind Kind, msg string) *Error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Message: msg, Err: err}
}

// KindOf extracts the kind from any error in the chain.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnclassified
}

// Is checks if the error chain carries the given kind.
func Is(err error, kind Kind) bool {
	if err == nil {
		return false
	}
	return KindOf(err) == kind
}

// IsRecognized reports whether the error should be forwarded to the chat.
func IsRecognized(err error) bool {
	switch KindOf(err) {
	case KindServiceUnavailable, KindMalformedResponse, KindInvalidType, KindMissingField, KindUnknownStatus:
		return true
	default:
		return false
	}
}
