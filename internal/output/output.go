// Package output renders decoded results for the analyze command.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/d21d3q/goseatalk/pkg/goseatalk"
)

const (
	FormatText = "text"
	FormatJSON = "json"
)

// separator pads the value from the echoed raw line.
const separator = "           "

// Sink writes results to an io.Writer.
type Sink interface {
	Write(goseatalk.Result) error
}

// New returns the sink for a format name.
func New(format string, w io.Writer) (Sink, error) {
	switch strings.ToLower(format) {
	case "", FormatText:
		return &Text{w: w}, nil
	case FormatJSON:
		return &JSON{enc: json.NewEncoder(w)}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q (want %s or %s)", format, FormatText, FormatJSON)
	}
}

// Text prints one "===> label = value" line per result followed by the raw
// record.
type Text struct {
	w io.Writer
}

func (t *Text) Write(r goseatalk.Result) error {
	if r.Reading == nil {
		return nil
	}
	_, err := fmt.Fprintf(t.w, "===> %s%s%s\n", r.Reading, separator, r.Raw)
	return err
}

// JSON prints one object per result.
type JSON struct {
	enc *json.Encoder
}

type jsonRecord struct {
	Kind   string         `json:"kind"`
	Label  string         `json:"label"`
	Fields map[string]any `json:"fields"`
	Raw    string         `json:"raw"`
}

func (j *JSON) Write(r goseatalk.Result) error {
	if r.Reading == nil {
		return nil
	}
	return j.enc.Encode(jsonRecord{
		Kind:   r.Reading.Kind().String(),
		Label:  r.Reading.Label(),
		Fields: r.Fields(),
		Raw:    strings.TrimSpace(r.Raw),
	})
}
