// Package contract declares, per operation, which request headers must be
// present before any handler logic runs.
package contract

import (
	"errors"
	"fmt"
	"net/http"
	"net/textproto"
)

// Operation names a request operation carrying a header contract. The set is
// closed: operations not enumerated below fail validation instead of passing
// with an empty requirement list.
type Operation string

const (
	OpCreateAccount Operation = "create_account"
	OpLogin         Operation = "login"
	OpAuthTest      Operation = "auth_test"
	OpCreateTweet   Operation = "create_tweet"
	OpLike          Operation = "like"
	OpCreateComment Operation = "create_comment"
)

// requiredHeaders is the static contract table. Read-only after init, safe
// for unsynchronized concurrent reads.
var requiredHeaders = map[Operation][]string{
	OpCreateAccount: {"username", "display_name", "password", "email", "bio", "age"},
	OpLogin:         {"email", "password"},
	OpAuthTest:      {"Authorization"},
	OpCreateTweet:   {"Authorization", "content"},
	OpLike:          {"Authorization", "tweet"},
	OpCreateComment: {"Authorization", "tweet", "content"},
}

var ErrUnknownOperation = errors.New("unknown operation")

// MissingHeaderError reports the first required header absent from a request.
type MissingHeaderError struct {
	Operation Operation
	Header    string
}

func (e *MissingHeaderError) Error() string {
	return fmt.Sprintf("missing required header %q", e.Header)
}

// Required returns the declared header names for op, in declaration order.
func Required(op Operation) ([]string, error) {
	fields, ok := requiredHeaders[op]
	if !ok {
		return nil, ErrUnknownOperation
	}
	return fields, nil
}

// Validate checks that every header op declares is present in h. Presence
// only — an empty value passes. No side effects; callers short-circuit with
// a client error on failure.
func Validate(op Operation, h http.Header) error {
	fields, err := Required(op)
	if err != nil {
		return err
	}
	for _, name := range fields {
		if _, ok := h[textproto.CanonicalMIMEHeaderKey(name)]; !ok {
			return &MissingHeaderError{Operation: op, Header: name}
		}
	}
	return nil
}
