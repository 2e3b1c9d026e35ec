package widgets

import (
	"fmt"
	"strconv"
	"strings"
)

// Unit is the measurement unit of a Size.
type Unit int

const (
	// Px measures in CSS pixels.
	Px Unit = iota
	// Percent measures relative to the parent container.
	Percent
)

func (u Unit) String() string {
	if u == Percent {
		return "%"
	}
	return "px"
}

// Size is a widget dimension: a non-negative amount and a unit. It
// serializes to the toolkit's "<integer>px" / "<integer>%" style strings and
// is the only writer of those strings in a well-behaved session.
type Size struct {
	Amount int
	Unit   Unit
}

// Pixels returns a pixel size.
func Pixels(n int) Size { return Size{Amount: n, Unit: Px} }

// Fraction returns a percent size.
func Fraction(n int) Size { return Size{Amount: n, Unit: Percent} }

// String serializes the size to its style-string form.
func (s Size) String() string {
	return strconv.Itoa(s.Amount) + s.Unit.String()
}

// ParseSize parses a "<integer>px" or "<integer>%" style string. Any other
// suffix, or a non-integer amount, is a format error.
func ParseSize(s string) (Size, error) {
	var unit Unit
	var num string
	switch {
	case strings.HasSuffix(s, "px"):
		unit = Px
		num = strings.TrimSuffix(s, "px")
	case strings.HasSuffix(s, "%"):
		unit = Percent
		num = strings.TrimSuffix(s, "%")
	default:
		return Size{}, fmt.Errorf("widgets: malformed size string %q", s)
	}
	if num == "" {
		return Size{}, fmt.Errorf("widgets: malformed size string %q", s)
	}
	for _, r := range num {
		if r < '0' || r > '9' {
			return Size{}, fmt.Errorf("widgets: malformed size string %q", s)
		}
	}
	n, err := strconv.Atoi(num)
	if err != nil {
		return Size{}, fmt.Errorf("widgets: malformed size string %q", s)
	}
	return Size{Amount: n, Unit: unit}, nil
}
