// Package heading decodes the compass heading datagrams 0x89 and 0x9C.
//
// Both use the same packing: U2 (token 1) carries rotation bits in its high
// nibble and VW (token 2) carries the angle in two-degree steps.
package heading

import "github.com/d21d3q/goseatalk/internal/driver"

const (
	// RotationMask selects the quarter-turn count from U2's high nibble.
	RotationMask = 0x03
	// AngleMask selects the two-degree step count from VW.
	AngleMask = 0x3F
	// HighRotationMask selects the extra rotation bits from U2/128.
	HighRotationMask = 0x0C
)

// token[4] is sent on the bus but not used.
const required = 4

func init() {
	driver.Register(driver.Detection{Kind: driver.KindHeading, Required: required}, Driver{})
	driver.Register(driver.Detection{Kind: driver.KindSecondaryHeading, Required: required}, Driver{Secondary: true})
}

// Driver implements driver.Driver for the primary or secondary compass.
type Driver struct {
	Secondary bool
}

// Name returns the canonical driver name.
func (d Driver) Name() string { return d.kind().String() }

func (d Driver) kind() driver.Kind {
	if d.Secondary {
		return driver.KindSecondaryHeading
	}
	return driver.KindHeading
}

// Decode applies Degrees to U2 and VW.
func (d Driver) Decode(data []byte) (driver.Reading, error) {
	if err := driver.CheckLength(d.kind(), data, required); err != nil {
		return nil, err
	}
	return driver.Heading{Degrees: Degrees(data[1], data[2]), Secondary: d.Secondary}, nil
}

// Degrees computes the heading. Each division truncates and happens before
// its mask is applied.
func Degrees(u2, vw byte) int {
	u := int(u2)
	v := int(vw)
	rotation := (u / 16) & RotationMask
	angle := v & AngleMask
	high := (u / 16 / 8) & HighRotationMask
	return rotation*90 + angle*2 + high
}
