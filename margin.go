package folio

import (
	"fmt"
	"strconv"
	"strings"
)

// Length is a distance in pixels or a percentage of a reference size.
type Length struct {
	Value   float64
	Percent bool
}

// Px returns a pixel length.
func Px(v float64) Length { return Length{Value: v} }

// Pct returns a percentage length.
func Pct(v float64) Length { return Length{Value: v, Percent: true} }

// Resolve converts the length to pixels against base.
func (l Length) Resolve(base float64) float64 {
	if l.Percent {
		return base * l.Value / 100
	}
	return l.Value
}

// String formats the length the way ParseLength accepts it.
func (l Length) String() string {
	v := strconv.FormatFloat(l.Value, 'f', -1, 64)
	if l.Percent {
		return v + "%"
	}
	return v + "px"
}

// ParseLength parses "12px", "12", "-40%" or "0".
func ParseLength(s string) (Length, error) {
	s = strings.TrimSpace(s)
	var l Length
	switch {
	case strings.HasSuffix(s, "%"):
		l.Percent = true
		s = strings.TrimSuffix(s, "%")
	case strings.HasSuffix(s, "px"):
		s = strings.TrimSuffix(s, "px")
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Length{}, fmt.Errorf("folio: invalid length %q", s)
	}
	l.Value = v
	return l, nil
}

// Margin grows (positive) or shrinks (negative) a rectangle per edge.
// Vertical percentages resolve against the rectangle's height, horizontal
// ones against its width.
type Margin struct {
	Top, Right, Bottom, Left Length
}

// ParseMargin parses a CSS-style margin shorthand of one to four lengths:
// "10px", "-100px 0px", "1px 2px 3px", "-40% 0px -40% 0px".
func ParseMargin(s string) (Margin, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 || len(fields) > 4 {
		return Margin{}, fmt.Errorf("folio: margin %q needs 1 to 4 values", s)
	}
	ls := make([]Length, len(fields))
	for i, f := range fields {
		l, err := ParseLength(f)
		if err != nil {
			return Margin{}, fmt.Errorf("folio: margin %q: %w", s, err)
		}
		ls[i] = l
	}
	switch len(ls) {
	case 1:
		return Margin{ls[0], ls[0], ls[0], ls[0]}, nil
	case 2:
		return Margin{ls[0], ls[1], ls[0], ls[1]}, nil
	case 3:
		return Margin{ls[0], ls[1], ls[2], ls[1]}, nil
	default:
		return Margin{ls[0], ls[1], ls[2], ls[3]}, nil
	}
}

// MustParseMargin is ParseMargin for compile-time constants; it panics on error.
func MustParseMargin(s string) Margin {
	m, err := ParseMargin(s)
	if err != nil {
		panic(err)
	}
	return m
}

// Apply returns r adjusted by the margin.
func (m Margin) Apply(r Rect) Rect {
	return r.Expand(
		m.Top.Resolve(r.Height),
		m.Right.Resolve(r.Width),
		m.Bottom.Resolve(r.Height),
		m.Left.Resolve(r.Width),
	)
}

// String formats the margin in four-value form.
func (m Margin) String() string {
	return m.Top.String() + " " + m.Right.String() + " " + m.Bottom.String() + " " + m.Left.String()
}

// UnmarshalText lets margins be written as strings in YAML or JSON.
func (m *Margin) UnmarshalText(text []byte) error {
	parsed, err := ParseMargin(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (m Margin) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}
