package frame

import (
	"errors"
	"testing"
)

func TestSplit(t *testing.T) {
	rec := Split("0x20 0x1  0x2c 0x0 ")
	if rec.Len() != 4 {
		t.Fatalf("expected 4 tokens, got %d (%q)", rec.Len(), rec.Tokens)
	}
	if rec.Raw != "0x20 0x1  0x2c 0x0 " {
		t.Fatalf("raw line not preserved: %q", rec.Raw)
	}
	if got := Split("   ").Len(); got != 0 {
		t.Fatalf("blank line should have no tokens, got %d", got)
	}
}

func TestParseByte(t *testing.T) {
	cases := []struct {
		token string
		want  byte
	}{
		{"0x20", 0x20},
		{"0x1", 0x01},
		{"0xff", 0xFF},
		{"0xFF", 0xFF},
		{"0x0", 0x00},
		{"$$9c", 0x9C},
	}
	for _, tc := range cases {
		got, err := ParseByte(tc.token)
		if err != nil {
			t.Fatalf("ParseByte(%q): %v", tc.token, err)
		}
		if got != tc.want {
			t.Fatalf("ParseByte(%q) = 0x%02X, want 0x%02X", tc.token, got, tc.want)
		}
	}
}

func TestParseByteMalformed(t *testing.T) {
	for _, token := range []string{"", "0", "0x", "0x123", "0xg1", "0xz"} {
		_, err := ParseByte(token)
		if err == nil {
			t.Fatalf("ParseByte(%q) should fail", token)
		}
		if !errors.Is(err, ErrMalformedToken) {
			t.Fatalf("ParseByte(%q) error %v does not wrap ErrMalformedToken", token, err)
		}
	}
}

func TestFormat(t *testing.T) {
	if got := Format([]byte{0x20, 0x01, 0xFF, 0x00}); got != "0x20 0x1 0xff 0x0" {
		t.Fatalf("unexpected format: %q", got)
	}
	if got := Format(nil); got != "" {
		t.Fatalf("empty input should render empty, got %q", got)
	}
}

func TestFormatRoundTrip(t *testing.T) {
	rec := Split(Format([]byte{0x89, 0x56, 0x4C, 0x12, 0x20}))
	want := []byte{0x89, 0x56, 0x4C, 0x12, 0x20}
	for i := range want {
		got, err := rec.Byte(i)
		if err != nil {
			t.Fatalf("token %d: %v", i, err)
		}
		if got != want[i] {
			t.Fatalf("token %d: got 0x%02X want 0x%02X", i, got, want[i])
		}
	}
}
