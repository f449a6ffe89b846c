// Package temperature decodes the water temperature datagram (0x23).
package temperature

import "github.com/d21d3q/goseatalk/internal/driver"

const required = 4

func init() {
	driver.Register(driver.Detection{Kind: driver.KindWaterTemperature, Required: required}, Driver{})
}

// Driver implements driver.Driver for 0x23.
type Driver struct{}

// Name returns the canonical driver name.
func (Driver) Name() string { return driver.KindWaterTemperature.String() }

// Decode reports byte2 as degrees Celsius. byte3 must be present and feeds
// only the Combined value.
func (Driver) Decode(data []byte) (driver.Reading, error) {
	if err := driver.CheckLength(driver.KindWaterTemperature, data, required); err != nil {
		return nil, err
	}
	return driver.WaterTemperature{
		Celsius:  int(data[2]),
		Combined: driver.ScaledWord(data[2], data[3]),
	}, nil
}
