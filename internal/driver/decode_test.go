package driver

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/d21d3q/goseatalk/internal/frame"
)

type echoDriver struct {
	calls int
	seen  []byte
}

func (d *echoDriver) Name() string { return "echo" }

func (d *echoDriver) Decode(data []byte) (Reading, error) {
	d.calls++
	d.seen = append([]byte(nil), data...)
	return SpeedThroughWater{Value: ScaledWord(data[2], data[3])}, nil
}

func withDriver(t *testing.T, det Detection, drv Driver) {
	t.Helper()
	regMu.Lock()
	prev, had := registry[det.Kind]
	regMu.Unlock()
	Register(det, drv)
	t.Cleanup(func() {
		regMu.Lock()
		defer regMu.Unlock()
		if had {
			registry[det.Kind] = prev
			return
		}
		delete(registry, det.Kind)
	})
}

func TestDecodeEmptyRecord(t *testing.T) {
	_, err := Decode(frame.Split(""))
	require.ErrorIs(t, err, ErrEmptyRecord)
	require.ErrorIs(t, err, ErrDecode)
}

func TestDecodeUnrecognized(t *testing.T) {
	reading, err := Decode(frame.Split("0x00 0x01"))
	require.NoError(t, err)
	require.Equal(t, Unrecognized{Command: 0x00}, reading)
	require.Equal(t, Kind(0x00), reading.Kind())
}

func TestDecodeUnrecognizedIgnoresPayload(t *testing.T) {
	reading, err := Decode(frame.Split("0x7f garbage"))
	require.NoError(t, err)
	require.Equal(t, Unrecognized{Command: 0x7F}, reading)
}

func TestDecodeInvalidCommandToken(t *testing.T) {
	_, err := Decode(frame.Split("0x123 0x1 0x2 0x3"))
	var bad *InvalidTokenError
	require.True(t, errors.As(err, &bad))
	require.Equal(t, 0, bad.Index)
	require.Equal(t, "0x123", bad.Raw)
	require.ErrorIs(t, err, frame.ErrMalformedToken)
	require.ErrorIs(t, err, ErrDecode)
}

func TestDecodeInsufficientPayload(t *testing.T) {
	drv := &echoDriver{}
	withDriver(t, Detection{Kind: KindSpeedThroughWater, Required: 4}, drv)

	_, err := Decode(frame.Split("0x20 0x1"))
	var short *InsufficientPayloadError
	require.True(t, errors.As(err, &short))
	require.Equal(t, KindSpeedThroughWater, short.Kind)
	require.Equal(t, 4, short.Required)
	require.Equal(t, 2, short.Got)
	require.ErrorIs(t, err, ErrDecode)
	require.Zero(t, drv.calls)
}

func TestDecodeInvalidPayloadToken(t *testing.T) {
	drv := &echoDriver{}
	withDriver(t, Detection{Kind: KindSpeedThroughWater, Required: 4}, drv)

	_, err := Decode(frame.Split("0x20 0x1 0x 0x2c"))
	var bad *InvalidTokenError
	require.True(t, errors.As(err, &bad))
	require.Equal(t, 2, bad.Index)
	require.Equal(t, "0x", bad.Raw)
	require.Zero(t, drv.calls)
}

func TestDecodePassesRequiredBytesOnly(t *testing.T) {
	drv := &echoDriver{}
	withDriver(t, Detection{Kind: KindSpeedThroughWater, Required: 4}, drv)

	reading, err := Decode(frame.Split("0x20 0x1 0x1 0x2c 0xzz"))
	require.NoError(t, err)
	require.Equal(t, SpeedThroughWater{Value: 3}, reading)
	require.Equal(t, []byte{0x20, 0x01, 0x01, 0x2C}, drv.seen)
}

func TestDecodeIdempotent(t *testing.T) {
	withDriver(t, Detection{Kind: KindSpeedThroughWater, Required: 4}, &echoDriver{})

	rec := frame.Split("0x20 0x1 0x1 0x2c")
	first, err := Decode(rec)
	require.NoError(t, err)
	second, err := Decode(rec)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestLookupUnknown(t *testing.T) {
	_, _, err := Lookup(0x01)
	require.ErrorIs(t, err, ErrUnknownCommand)
}

func TestKindString(t *testing.T) {
	require.Equal(t, "heading", KindHeading.String())
	require.True(t, KindSecondaryHeading.Known())
	require.False(t, Kind(0x00).Known())
	require.Equal(t, "0x00", Kind(0x00).String())
}

func TestScaledWord(t *testing.T) {
	require.Equal(t, 3, ScaledWord(0x01, 0x2C))
	require.Equal(t, 0, ScaledWord(0x00, 0x63))
	require.Equal(t, 655, ScaledWord(0xFF, 0xFF))
}
