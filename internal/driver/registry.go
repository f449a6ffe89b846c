package driver

import (
	"errors"
	"fmt"
	"sync"
)

// Kind is a SeaTalk command byte.
type Kind byte

const (
	KindSpeedThroughWater Kind = 0x20
	KindTripMileage       Kind = 0x21
	KindTotalMileage      Kind = 0x22
	KindWaterTemperature  Kind = 0x23
	KindHeading           Kind = 0x89
	KindSecondaryHeading  Kind = 0x9C
)

var kindNames = map[Kind]string{
	KindSpeedThroughWater: "speed_through_water",
	KindTripMileage:       "trip_mileage",
	KindTotalMileage:      "total_mileage",
	KindWaterTemperature:  "water_temperature",
	KindHeading:           "heading",
	KindSecondaryHeading:  "secondary_heading",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("0x%02X", byte(k))
}

// Known reports whether k belongs to the recognized command set.
func (k Kind) Known() bool {
	_, ok := kindNames[k]
	return ok
}

// ErrUnknownCommand is returned by Lookup when no driver handles a command.
var ErrUnknownCommand = errors.New("no driver for command byte")

// Detection describes what a driver needs before it can run.
type Detection struct {
	Kind     Kind
	Required int // tokens, command byte included
}

// Driver turns the validated leading bytes of a datagram into a Reading.
// data[0] is the command byte and len(data) equals Detection.Required.
type Driver interface {
	Name() string
	Decode(data []byte) (Reading, error)
}

var (
	regMu    sync.RWMutex
	registry = map[Kind]registeredDriver{}
)

type registeredDriver struct {
	detect Detection
	driver Driver
}

// Register stores a driver for its command byte, replacing any previous one.
func Register(det Detection, drv Driver) {
	regMu.Lock()
	defer regMu.Unlock()
	registry[det.Kind] = registeredDriver{detect: det, driver: drv}
}

// Lookup returns the driver registered for an exact command byte.
func Lookup(command byte) (Detection, Driver, error) {
	regMu.RLock()
	defer regMu.RUnlock()
	rd, ok := registry[Kind(command)]
	if !ok {
		return Detection{}, nil, fmt.Errorf("%w 0x%02X", ErrUnknownCommand, command)
	}
	return rd.detect, rd.driver, nil
}
