package engine

import (
	"errors"
	"fmt"
)

// Kind is the stable, machine-readable failure category surfaced to callers.
type Kind string

const (
	KindGameNotFound         Kind = "GAME_NOT_FOUND"
	KindDuplicateGame        Kind = "DUPLICATE_GAME"
	KindInvalidGameDate      Kind = "INVALID_GAME_DATE"
	KindInvalidGameState     Kind = "INVALID_GAME_STATE"
	KindInvalidCardEncoding  Kind = "INVALID_CARD_ENCODING"
	KindInvalidPlayerList    Kind = "INVALID_PLAYER_LIST"
	KindDuplicateStreet      Kind = "DUPLICATE_STREET"
	KindBrokenStreetSequence Kind = "BROKEN_STREET_SEQUENCE"
	KindStoreUnavailable     Kind = "STORE_UNAVAILABLE"
)

// Error attaches a Kind to a caller-safe message. Wrapped causes stay
// internal; only Kind and Message are meant for responses.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// E builds a typed error with a formatted message.
func E(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap attaches a kind and caller-safe message to an underlying cause.
func Wrap(kind Kind, err error, message string) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// KindOf extracts the Kind from an error chain, or "" for untyped errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// MessageOf returns the caller-safe message of a typed error. Untyped
// errors fall back to their full text.
func MessageOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
