package frame

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

// markerLen is the width of the type marker ("0x") preceding the hex digits
// of every token.
const markerLen = 2

// ErrMalformedToken reports a token that does not carry one or two hex digits
// after its marker.
var ErrMalformedToken = errors.New("malformed byte token")

// Record is one SeaTalk datagram as captured off the bus: the command byte
// token followed by payload tokens, e.g. "0x20 0x1 0x2c 0x0".
type Record struct {
	Raw    string
	Tokens []string
}

// Split tokenizes a captured line. Repeated and trailing whitespace is
// ignored, so the trailing blank the capture tool leaves on every line does
// not produce an empty token.
func Split(line string) Record {
	return Record{Raw: line, Tokens: strings.Fields(line)}
}

// Len returns the number of tokens, command byte included.
func (r Record) Len() int {
	return len(r.Tokens)
}

// Byte decodes token i. It does not check i against Len.
func (r Record) Byte(i int) (byte, error) {
	return ParseByte(r.Tokens[i])
}

// ParseByte strips the two-character marker from token and decodes the
// remaining one or two hex digits. A single digit is read as if left-padded
// with '0'.
func ParseByte(token string) (byte, error) {
	if len(token) <= markerLen {
		return 0, fmt.Errorf("%w: %q has no hex digits", ErrMalformedToken, token)
	}
	digits := token[markerLen:]
	if len(digits) > 2 {
		return 0, fmt.Errorf("%w: %q has %d hex digits", ErrMalformedToken, token, len(digits))
	}
	if len(digits) == 1 {
		digits = "0" + digits
	}
	var out [1]byte
	if _, err := hex.Decode(out[:], []byte(digits)); err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrMalformedToken, token, err)
	}
	return out[0], nil
}

// Format renders bytes in the capture tool's text form, one "0x%x" token per
// byte separated by single spaces.
func Format(data []byte) string {
	var b strings.Builder
	b.Grow(len(data) * 5)
	for i, v := range data {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "0x%x", v)
	}
	return b.String()
}
