package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/d21d3q/goseatalk/internal/testutil"
	"github.com/d21d3q/goseatalk/pkg/goseatalk"
)

func TestTextGolden(t *testing.T) {
	var buf bytes.Buffer
	sink, err := New(FormatText, &buf)
	require.NoError(t, err)
	for _, line := range testutil.LoadLines(t, "captures/session.txt") {
		result, err := goseatalk.DecodeLine(line)
		if err != nil || !result.Recognized() {
			continue
		}
		require.NoError(t, sink.Write(result))
	}
	require.Equal(t, testutil.LoadText(t, "captures/session.golden"), buf.String())
}

func TestJSONSink(t *testing.T) {
	var buf bytes.Buffer
	sink, err := New("JSON", &buf)
	require.NoError(t, err)

	result, err := goseatalk.DecodeLine("0x23 0x1 0xf 0x7f ")
	require.NoError(t, err)
	require.NoError(t, sink.Write(result))

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Equal(t, "water_temperature", got["kind"])
	require.Equal(t, "Water temperature (C)", got["label"])
	require.Equal(t, "0x23 0x1 0xf 0x7f", got["raw"])
	require.Equal(t, map[string]any{"celsius": 15.0, "combined": 39.0}, got["fields"])
}

func TestSinkSkipsEmptyResult(t *testing.T) {
	var buf bytes.Buffer
	for _, format := range []string{FormatText, FormatJSON} {
		sink, err := New(format, &buf)
		require.NoError(t, err)
		require.NoError(t, sink.Write(goseatalk.Result{Raw: "0x20"}))
	}
	require.Zero(t, buf.Len())
}

func TestUnknownFormat(t *testing.T) {
	_, err := New("xml", &bytes.Buffer{})
	require.Error(t, err)
	require.True(t, strings.Contains(err.Error(), "xml"))
}
