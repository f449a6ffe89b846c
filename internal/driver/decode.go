package driver

import "github.com/d21d3q/goseatalk/internal/frame"

// Decode classifies a record by its command byte and runs the matching
// driver. Only the tokens the driver requires are decoded; anything after
// them is ignored. Decode keeps no state between calls.
func Decode(rec frame.Record) (Reading, error) {
	if rec.Len() == 0 {
		return nil, ErrEmptyRecord
	}
	command, err := rec.Byte(0)
	if err != nil {
		return nil, &InvalidTokenError{Index: 0, Raw: rec.Tokens[0], Err: err}
	}
	det, drv, err := Lookup(command)
	if err != nil {
		return Unrecognized{Command: command}, nil
	}
	if rec.Len() < det.Required {
		return nil, &InsufficientPayloadError{Kind: det.Kind, Required: det.Required, Got: rec.Len()}
	}
	data := make([]byte, det.Required)
	data[0] = command
	for i := 1; i < det.Required; i++ {
		b, err := rec.Byte(i)
		if err != nil {
			return nil, &InvalidTokenError{Index: i, Raw: rec.Tokens[i], Err: err}
		}
		data[i] = b
	}
	return drv.Decode(data)
}

// CheckLength guards drivers called directly with fewer bytes than they need.
func CheckLength(kind Kind, data []byte, required int) error {
	if len(data) < required {
		return &InsufficientPayloadError{Kind: kind, Required: required, Got: len(data)}
	}
	return nil
}
