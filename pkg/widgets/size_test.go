package widgets_test

import (
	"testing"

	"github.com/go-facet/facet/pkg/widgets"
)

func TestParseSize(t *testing.T) {
	cases := []struct {
		in   string
		want widgets.Size
	}{
		{"0px", widgets.Pixels(0)},
		{"120px", widgets.Pixels(120)},
		{"05px", widgets.Pixels(5)},
		{"100%", widgets.Fraction(100)},
		{"7%", widgets.Fraction(7)},
	}
	for _, c := range cases {
		got, err := widgets.ParseSize(c.in)
		if err != nil {
			t.Errorf("ParseSize(%q): %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("ParseSize(%q) = %v, want %v", c.in, got, c.want)
		}

		// Round-trip idempotence: reparsing the serialized form yields the
		// same size.
		again, err := widgets.ParseSize(got.String())
		if err != nil {
			t.Errorf("ParseSize(%q) reparse: %v", got.String(), err)
			continue
		}
		if again != got {
			t.Errorf("round trip of %q: %v != %v", c.in, again, got)
		}
	}
}

func TestParseSize_Malformed(t *testing.T) {
	for _, in := range []string{"", "px", "%", "12", "12em", "-4px", "1.5px", "12 px", "px12"} {
		if _, err := widgets.ParseSize(in); err == nil {
			t.Errorf("ParseSize(%q) should fail", in)
		}
	}
}

func TestParseColor(t *testing.T) {
	c, err := widgets.ParseColor("#1a2B3c")
	if err != nil {
		t.Fatalf("ParseColor: %v", err)
	}
	if c != (widgets.Color{R: 0x1a, G: 0x2b, B: 0x3c}) {
		t.Errorf("ParseColor(#1a2B3c) = %+v", c)
	}
	if c.Hex() != "#1a2b3c" {
		t.Errorf("Hex() = %q", c.Hex())
	}

	red, err := widgets.ParseColor("red")
	if err != nil {
		t.Fatalf("ParseColor(red): %v", err)
	}
	if red != (widgets.Color{R: 0xff}) {
		t.Errorf("ParseColor(red) = %+v", red)
	}

	for _, in := range []string{"", "#12345", "#12345g", "notacolor"} {
		if _, err := widgets.ParseColor(in); err == nil {
			t.Errorf("ParseColor(%q) should fail", in)
		}
	}
}
