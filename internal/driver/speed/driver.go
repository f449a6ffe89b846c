// Package speed decodes the word-scaled log datagrams: speed through water
// (0x20), trip mileage (0x21) and total mileage (0x22).
package speed

import "github.com/d21d3q/goseatalk/internal/driver"

const required = 4

func init() {
	for _, kind := range []driver.Kind{
		driver.KindSpeedThroughWater,
		driver.KindTripMileage,
		driver.KindTotalMileage,
	} {
		driver.Register(driver.Detection{Kind: kind, Required: required}, Driver{Kind: kind})
	}
}

// Driver handles one of the three log datagrams.
type Driver struct {
	Kind driver.Kind
}

// Name returns the canonical driver name.
func (d Driver) Name() string { return d.Kind.String() }

// Decode reads byte2 and byte3 as a big-endian word in hundredths.
func (d Driver) Decode(data []byte) (driver.Reading, error) {
	if err := driver.CheckLength(d.Kind, data, required); err != nil {
		return nil, err
	}
	value := driver.ScaledWord(data[2], data[3])
	switch d.Kind {
	case driver.KindTripMileage:
		return driver.TripMileage{Value: value}, nil
	case driver.KindTotalMileage:
		return driver.TotalMileage{Value: value}, nil
	default:
		return driver.SpeedThroughWater{Value: value}, nil
	}
}
