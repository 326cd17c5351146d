package format

import (
	"errors"
	"testing"
)

func TestParseStyle(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		expected Style
	}{
		{"compact", "compact", Compact},
		{"compact short", "c", Compact},
		{"pretty", "pretty", Pretty},
		{"pretty short", "p", Pretty},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := ParseStyle(tt.in)
			if err != nil {
				t.Fatalf("ParseStyle(%q): %v", tt.in, err)
			}
			if s != tt.expected {
				t.Errorf("ParseStyle(%q) = %v, want %v", tt.in, s, tt.expected)
			}
		})
	}
}

func TestParseStyleBad(t *testing.T) {
	for _, in := range []string{"", "x", "wire", "Pretty"} {
		if _, err := ParseStyle(in); !errors.Is(err, ErrBadStyle) {
			t.Errorf("ParseStyle(%q) err = %v, want ErrBadStyle", in, err)
		}
	}
}

func TestStyleTextRoundTrip(t *testing.T) {
	for _, s := range Styles() {
		d, err := s.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%v): %v", s, err)
		}
		var back Style
		if err := back.UnmarshalText(d); err != nil {
			t.Fatalf("UnmarshalText(%q): %v", d, err)
		}
		if back != s {
			t.Errorf("round trip %v -> %q -> %v", s, d, back)
		}
	}
}
