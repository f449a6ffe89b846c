// Package capture frames raw SeaTalk UART dumps into text records.
//
// SeaTalk marks the command byte of each datagram with a ninth bit. A UART
// configured with stick parity and PARMRK reports that bit by inserting
// FF 00 before the marked byte, and escapes a literal FF data byte as FF FF.
// The framer undoes that marking and renders each datagram in the same text
// form the capture tool prints, so the result feeds straight into
// goseatalk.DecodeLine.
package capture

import (
	"bufio"
	"context"
	"errors"
	"io"

	"github.com/d21d3q/goseatalk/internal/frame"
)

const (
	parityMark = 0xFF
	markStart  = 0x00
)

// Framer reads a raw byte dump and returns one record per datagram.
type Framer struct {
	r       *bufio.Reader
	started bool
	cur     []byte
}

// NewFramer wraps r. Bytes before the first FF 00 mark belong to a datagram
// whose start was not captured and are dropped.
func NewFramer(r io.Reader) *Framer {
	return &Framer{r: bufio.NewReader(r)}
}

// Next returns the next datagram as a text record, or io.EOF once the dump is
// exhausted. A dangling FF at the end of the dump is dropped.
func (f *Framer) Next(ctx context.Context) (string, error) {
	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		b, err := f.r.ReadByte()
		if err != nil {
			return f.finish(err)
		}
		if b != parityMark {
			f.add(b)
			continue
		}
		next, err := f.r.ReadByte()
		if err != nil {
			return f.finish(err)
		}
		if next != markStart {
			// FF FF is an escaped data byte. Anything else after FF is kept
			// as data and the FF dropped.
			f.add(next)
			continue
		}
		pending := f.started && len(f.cur) > 0
		var line string
		if pending {
			line = frame.Format(f.cur)
		}
		f.started = true
		f.cur = f.cur[:0]
		if pending {
			return line, nil
		}
	}
}

func (f *Framer) add(b byte) {
	if f.started {
		f.cur = append(f.cur, b)
	}
}

func (f *Framer) finish(err error) (string, error) {
	if !errors.Is(err, io.EOF) {
		return "", err
	}
	if len(f.cur) == 0 {
		return "", io.EOF
	}
	line := frame.Format(f.cur)
	f.cur = f.cur[:0]
	return line, nil
}
