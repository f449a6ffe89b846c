package driver

import "fmt"

// Reading is the decoded content of one datagram. The concrete types below
// form a closed set; switch on them to get at the values.
type Reading interface {
	fmt.Stringer
	Kind() Kind
	Label() string
	Fields() map[string]any
}

// SpeedThroughWater is datagram 0x20.
type SpeedThroughWater struct {
	Value int
}

func (SpeedThroughWater) Kind() Kind       { return KindSpeedThroughWater }
func (SpeedThroughWater) Label() string    { return "STW" }
func (r SpeedThroughWater) String() string { return fmt.Sprintf("%s = %d", r.Label(), r.Value) }
func (r SpeedThroughWater) Fields() map[string]any {
	return map[string]any{"speed": r.Value}
}

// TripMileage is datagram 0x21.
type TripMileage struct {
	Value int
}

func (TripMileage) Kind() Kind       { return KindTripMileage }
func (TripMileage) Label() string    { return "Trip mileage" }
func (r TripMileage) String() string { return fmt.Sprintf("%s = %d", r.Label(), r.Value) }
func (r TripMileage) Fields() map[string]any {
	return map[string]any{"mileage": r.Value}
}

// TotalMileage is datagram 0x22.
type TotalMileage struct {
	Value int
}

func (TotalMileage) Kind() Kind       { return KindTotalMileage }
func (TotalMileage) Label() string    { return "Total mileage" }
func (r TotalMileage) String() string { return fmt.Sprintf("%s = %d", r.Label(), r.Value) }
func (r TotalMileage) Fields() map[string]any {
	return map[string]any{"mileage": r.Value}
}

// WaterTemperature is datagram 0x23. Celsius is byte2 as captured and is the
// value shown. Combined applies the word scaling used by 0x20-0x22 to the
// same bytes; it is carried for calibration only.
type WaterTemperature struct {
	Celsius  int
	Combined int
}

func (WaterTemperature) Kind() Kind       { return KindWaterTemperature }
func (WaterTemperature) Label() string    { return "Water temperature (C)" }
func (r WaterTemperature) String() string { return fmt.Sprintf("%s = %d", r.Label(), r.Celsius) }
func (r WaterTemperature) Fields() map[string]any {
	return map[string]any{"celsius": r.Celsius, "combined": r.Combined}
}

// Heading is datagram 0x89, or 0x9C when Secondary is set.
type Heading struct {
	Degrees   int
	Secondary bool
}

func (r Heading) Kind() Kind {
	if r.Secondary {
		return KindSecondaryHeading
	}
	return KindHeading
}

func (r Heading) Label() string {
	if r.Secondary {
		return "HDG2"
	}
	return "HDG"
}

func (r Heading) String() string { return fmt.Sprintf("%s = %d", r.Label(), r.Degrees) }

func (r Heading) Fields() map[string]any {
	return map[string]any{"degrees": r.Degrees, "secondary": r.Secondary}
}

// Unrecognized is returned for command bytes with no registered driver. It is
// a valid outcome, not an error.
type Unrecognized struct {
	Command byte
}

func (r Unrecognized) Kind() Kind     { return Kind(r.Command) }
func (Unrecognized) Label() string    { return "Unrecognized" }
func (r Unrecognized) String() string { return fmt.Sprintf("unrecognized datagram 0x%02X", r.Command) }
func (r Unrecognized) Fields() map[string]any {
	return map[string]any{"command": fmt.Sprintf("0x%02X", r.Command)}
}

// ScaledWord combines two bytes big-endian and truncates to hundredths, the
// scaling shared by the speed and mileage datagrams.
func ScaledWord(hi, lo byte) int {
	return (int(hi)*256 + int(lo)) / 100
}
