package driver

import (
	"errors"
	"fmt"
)

// ErrDecode matches every error returned by Decode.
var ErrDecode = errors.New("seatalk decode failed")

// ErrEmptyRecord is returned for a record with no tokens at all.
var ErrEmptyRecord = fmt.Errorf("%w: empty record", ErrDecode)

// InsufficientPayloadError reports a record shorter than its kind requires.
type InsufficientPayloadError struct {
	Kind     Kind
	Required int
	Got      int
}

func (e *InsufficientPayloadError) Error() string {
	return fmt.Sprintf("%s: %s needs %d tokens, got %d", ErrDecode, e.Kind, e.Required, e.Got)
}

func (e *InsufficientPayloadError) Is(target error) bool {
	return target == ErrDecode
}

// InvalidTokenError reports a token that fails the byte-decode rule.
type InvalidTokenError struct {
	Index int
	Raw   string
	Err   error
}

func (e *InvalidTokenError) Error() string {
	return fmt.Sprintf("%s: token %d %q: %v", ErrDecode, e.Index, e.Raw, e.Err)
}

func (e *InvalidTokenError) Is(target error) bool {
	return target == ErrDecode
}

func (e *InvalidTokenError) Unwrap() error {
	return e.Err
}
