// Package stream drives the decoder over a source of captured lines.
package stream

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/d21d3q/goseatalk/pkg/goseatalk"
)

// LineSource yields captured records one at a time and returns io.EOF when
// exhausted.
type LineSource interface {
	Next(ctx context.Context) (string, error)
}

// Sink receives decoded results.
type Sink interface {
	Write(goseatalk.Result) error
}

// MaxLineLength bounds a text record. SeaTalk datagrams are at most 18 bytes,
// so anything near this size is line noise.
const MaxLineLength = 4096

// ErrLineTooLong is returned by LineReader for a line that does not fit in
// MaxLineLength. The rest of the line is discarded and reading can go on.
var ErrLineTooLong = errors.New("record exceeds maximum line length")

// LineReader reads newline-separated records from a text capture.
type LineReader struct {
	r *bufio.Reader
}

// NewLineReader wraps r.
func NewLineReader(r io.Reader) *LineReader {
	return &LineReader{r: bufio.NewReaderSize(r, MaxLineLength)}
}

// Next implements LineSource.
func (l *LineReader) Next(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	line, isPrefix, err := l.r.ReadLine()
	if err != nil {
		return "", err
	}
	if !isPrefix {
		return string(line), nil
	}
	for isPrefix {
		_, isPrefix, err = l.r.ReadLine()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", err
		}
	}
	return "", ErrLineTooLong
}

// Stats counts outcomes over one run.
type Stats struct {
	Lines        int
	Blank        int
	Decoded      int
	Unrecognized int
	Failed       int
}

// Processor decodes every record from Source and forwards results to Sink.
// A record that fails to decode, or is too long to be one, is logged and
// skipped.
type Processor struct {
	Source LineSource
	Sink   Sink
	Log    logrus.FieldLogger
	// ShowUnrecognized forwards Unrecognized readings to the sink as well.
	ShowUnrecognized bool
}

// Run processes records until the source is exhausted, the context is
// cancelled, or the source or sink fails.
func (p *Processor) Run(ctx context.Context) (Stats, error) {
	var stats Stats
	log := p.Log
	if log == nil {
		log = logrus.StandardLogger()
	}
	for {
		line, err := p.Source.Next(ctx)
		if errors.Is(err, io.EOF) {
			return stats, nil
		}
		if errors.Is(err, ErrLineTooLong) {
			stats.Lines++
			stats.Failed++
			log.WithError(err).WithField("line", stats.Lines).Warn("skipping oversized record")
			continue
		}
		if err != nil {
			return stats, fmt.Errorf("read record %d: %w", stats.Lines+1, err)
		}
		stats.Lines++
		if goseatalk.Split(line).Len() == 0 {
			stats.Blank++
			continue
		}

		result, err := goseatalk.DecodeLine(line)
		if err != nil {
			stats.Failed++
			log.WithError(err).WithFields(logrus.Fields{
				"line": stats.Lines,
				"raw":  line,
			}).Warn("skipping malformed datagram")
			continue
		}
		if !result.Recognized() {
			stats.Unrecognized++
			log.WithFields(logrus.Fields{
				"line":    stats.Lines,
				"command": result.Reading.Kind().String(),
			}).Debug("unrecognized datagram")
			if !p.ShowUnrecognized {
				continue
			}
		} else {
			stats.Decoded++
		}
		if err := p.Sink.Write(result); err != nil {
			return stats, fmt.Errorf("write record %d: %w", stats.Lines, err)
		}
	}
}
