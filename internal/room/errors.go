package room

import (
	"errors"
	"fmt"
)

// Kind classifies a construction failure.
type Kind string

const (
	KindSourceNotFound        Kind = "SOURCE_NOT_FOUND"
	KindMalformedBounds       Kind = "MALFORMED_BOUNDS"
	KindInvalidStartPosition  Kind = "INVALID_START_POSITION"
	KindInvalidDustPosition   Kind = "INVALID_DUST_POSITION"
	KindInvalidDirectionToken Kind = "INVALID_DIRECTION_TOKEN"
	KindMalformedLine         Kind = "MALFORMED_LINE"
)

// Sentinels for errors.Is. Any *Error with the same Kind matches.
var (
	ErrSourceNotFound        = &Error{Kind: KindSourceNotFound}
	ErrMalformedBounds       = &Error{Kind: KindMalformedBounds}
	ErrInvalidStartPosition  = &Error{Kind: KindInvalidStartPosition}
	ErrInvalidDustPosition   = &Error{Kind: KindInvalidDustPosition}
	ErrInvalidDirectionToken = &Error{Kind: KindInvalidDirectionToken}
	ErrMalformedLine         = &Error{Kind: KindMalformedLine}
)

// Error describes why a room description could not be built.
type Error struct {
	Kind Kind

	// Line is the 1-based input line, 0 when not tied to a line.
	Line int

	// Index is the 0-based position within the dust block.
	// Only meaningful for KindInvalidDustPosition.
	Index int

	// Char is the offending character for KindInvalidDirectionToken.
	Char rune

	Msg string
	Err error
}

func (e *Error) Error() string {
	msg := e.Msg
	if msg == "" {
		msg = "invalid room description"
	}
	if e.Line > 0 {
		msg = fmt.Sprintf("line %d: %s", e.Line, msg)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Kind, msg)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches any *Error of the same Kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// KindOf returns the Kind of the first *Error in err's chain, or "".
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}
