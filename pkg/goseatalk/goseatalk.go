// Package goseatalk decodes SeaTalk instrument datagrams captured as text
// records ("0x20 0x1 0x2c 0x0") into typed readings.
package goseatalk

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/d21d3q/goseatalk/internal/driver"
	_ "github.com/d21d3q/goseatalk/internal/driver/heading"     // register driver
	_ "github.com/d21d3q/goseatalk/internal/driver/speed"       // register driver
	_ "github.com/d21d3q/goseatalk/internal/driver/temperature" // register driver
	"github.com/d21d3q/goseatalk/internal/frame"
)

type (
	Record = frame.Record
	Kind   = driver.Kind

	Reading           = driver.Reading
	SpeedThroughWater = driver.SpeedThroughWater
	TripMileage       = driver.TripMileage
	TotalMileage      = driver.TotalMileage
	WaterTemperature  = driver.WaterTemperature
	Heading           = driver.Heading
	Unrecognized      = driver.Unrecognized

	InsufficientPayloadError = driver.InsufficientPayloadError
	InvalidTokenError        = driver.InvalidTokenError
)

const (
	KindSpeedThroughWater = driver.KindSpeedThroughWater
	KindTripMileage       = driver.KindTripMileage
	KindTotalMileage      = driver.KindTotalMileage
	KindWaterTemperature  = driver.KindWaterTemperature
	KindHeading           = driver.KindHeading
	KindSecondaryHeading  = driver.KindSecondaryHeading
)

var (
	// ErrDecode matches every decode failure.
	ErrDecode = driver.ErrDecode
	// ErrEmptyRecord is returned for records without tokens.
	ErrEmptyRecord = driver.ErrEmptyRecord
)

// Result pairs a reading with the line it was decoded from.
type Result struct {
	Raw     string
	Tokens  int
	Reading Reading
}

// Recognized reports whether a driver produced the reading.
func (r Result) Recognized() bool {
	if r.Reading == nil {
		return false
	}
	_, unknown := r.Reading.(Unrecognized)
	return !unknown
}

// Fields returns the reading's values keyed by name.
func (r Result) Fields() map[string]any {
	if r.Reading == nil {
		return nil
	}
	return r.Reading.Fields()
}

// String renders a JSON summary of the result.
func (r Result) String() string {
	summary := map[string]any{
		"raw":    r.Raw,
		"tokens": r.Tokens,
	}
	if r.Reading != nil {
		summary["kind"] = r.Reading.Kind().String()
		summary["label"] = r.Reading.Label()
		summary["fields"] = r.Reading.Fields()
	}
	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return fmt.Sprintf("raw:%s tokens:%d (marshal error: %v)", r.Raw, r.Tokens, err)
	}
	return string(data)
}

// Split tokenizes one captured line.
func Split(line string) Record {
	return frame.Split(line)
}

// Decode classifies a record and decodes it. Command bytes outside the
// supported set yield an Unrecognized reading and a nil error. Decode is
// safe for concurrent use.
func Decode(rec Record) (Reading, error) {
	return driver.Decode(rec)
}

// DecodeLine tokenizes and decodes one captured line.
func DecodeLine(line string) (Result, error) {
	rec := frame.Split(strings.TrimRight(line, "\r\n"))
	result := Result{Raw: rec.Raw, Tokens: rec.Len()}
	reading, err := driver.Decode(rec)
	if err != nil {
		return result, err
	}
	result.Reading = reading
	return result, nil
}
