package palette

import (
	"image/color"
	"testing"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		in   string
		want color.RGBA
	}{
		{"#ffd43b", color.RGBA{0xff, 0xd4, 0x3b, 0xff}},
		{"ffd43b", color.RGBA{0xff, 0xd4, 0x3b, 0xff}},
		{"#FFFFFF", color.RGBA{0xff, 0xff, 0xff, 0xff}},
		{" #00000080 ", color.RGBA{0, 0, 0, 0x80}},
	}

	for _, tt := range tests {
		got, err := ParseHex(tt.in)
		if err != nil {
			t.Errorf("ParseHex(%q) failed: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseHex(%q): expected %v, got %v", tt.in, tt.want, got)
		}
	}
}

func TestParseHexRejectsGarbage(t *testing.T) {
	for _, in := range []string{"", "#fff", "#ggggzz", "#1234567"} {
		if _, err := ParseHex(in); err == nil {
			t.Errorf("Expected error for %q", in)
		}
	}
}

func TestDefaultPalette(t *testing.T) {
	p := Default()

	if p.Background != (color.RGBA{0x00, 0x00, 0x00, 0xff}) {
		t.Errorf("Expected black background, got %v", p.Background)
	}
	if p.Ray != (color.RGBA{0xff, 0xd4, 0x3b, 0xff}) {
		t.Errorf("Expected amber rays, got %v", p.Ray)
	}
	if p.Shape != (color.RGBA{0xff, 0xff, 0xff, 0xff}) {
		t.Errorf("Expected white shapes, got %v", p.Shape)
	}
}
