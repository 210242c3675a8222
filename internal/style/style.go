// Package style defines the value types of the styling channels and the
// best-effort decoding of styling records.
package style

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Errors returned by the field parsers.
var (
	ErrInvalidColor     = errors.New("invalid color")
	ErrInvalidAlignment = errors.New("invalid alignment")
	ErrInvalidTypeface  = errors.New("invalid typeface")
	ErrInvalidMargin    = errors.New("invalid margin")
)

// Color is a cell foreground color.
type Color struct {
	colorful.Color
}

// named holds the color names accepted besides hex notation.
var named = map[string]string{
	"black":  "#000000",
	"white":  "#ffffff",
	"red":    "#ff0000",
	"green":  "#008000",
	"blue":   "#0000ff",
	"yellow": "#ffff00",
	"gray":   "#808080",
	"grey":   "#808080",
}

// ParseColor parses "#rrggbb", "#rgb" or a basic color name.
func ParseColor(s string) (Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if hex, ok := named[s]; ok {
		s = hex
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("%w %q: %v", ErrInvalidColor, s, err)
	}
	return Color{c}, nil
}

// String returns the color in #rrggbb notation.
func (c Color) String() string {
	return c.Hex()
}

// Alignment is the horizontal placement of text in a cell.
type Alignment uint8

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
	AlignJustify
)

// ParseAlignment parses an alignment token.
func ParseAlignment(s string) (Alignment, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left", "start":
		return AlignLeft, nil
	case "center", "centre", "middle":
		return AlignCenter, nil
	case "right", "end":
		return AlignRight, nil
	case "justify":
		return AlignJustify, nil
	}
	return AlignLeft, fmt.Errorf("%w %q", ErrInvalidAlignment, s)
}

// String returns the alignment token.
func (a Alignment) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	case AlignJustify:
		return "justify"
	default:
		return "left"
	}
}

// Typeface describes the font of a cell.
type Typeface struct {
	Family    string
	Size      float64
	Bold      bool
	Italic    bool
	Underline bool
}

// ParseTypeface parses "Family Name [size] [bold] [italic] [underline]".
func ParseTypeface(s string) (Typeface, error) {
	var tf Typeface
	var family []string
	for _, tok := range strings.Fields(s) {
		switch strings.ToLower(tok) {
		case "bold":
			tf.Bold = true
			continue
		case "italic":
			tf.Italic = true
			continue
		case "underline":
			tf.Underline = true
			continue
		}
		if size, err := strconv.ParseFloat(tok, 64); err == nil {
			if size <= 0 {
				return Typeface{}, fmt.Errorf("%w %q: size must be positive", ErrInvalidTypeface, s)
			}
			tf.Size = size
			continue
		}
		family = append(family, tok)
	}
	if len(family) == 0 {
		return Typeface{}, fmt.Errorf("%w %q: missing family", ErrInvalidTypeface, s)
	}
	tf.Family = strings.Join(family, " ")
	return tf, nil
}

// String formats the typeface the way ParseTypeface reads it.
func (t Typeface) String() string {
	parts := []string{t.Family}
	if t.Size > 0 {
		parts = append(parts, strconv.FormatFloat(t.Size, 'f', -1, 64))
	}
	if t.Bold {
		parts = append(parts, "bold")
	}
	if t.Italic {
		parts = append(parts, "italic")
	}
	if t.Underline {
		parts = append(parts, "underline")
	}
	return strings.Join(parts, " ")
}

// Margin is the inner cell padding in pixels.
type Margin struct {
	Top, Right, Bottom, Left int
}

// ParseMargin parses one, two or four integers in CSS order.
func ParseMargin(s string) (Margin, error) {
	fields := strings.Fields(s)
	vals := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil || v < 0 {
			return Margin{}, fmt.Errorf("%w %q", ErrInvalidMargin, s)
		}
		vals[i] = v
	}
	switch len(vals) {
	case 1:
		return Margin{vals[0], vals[0], vals[0], vals[0]}, nil
	case 2:
		return Margin{vals[0], vals[1], vals[0], vals[1]}, nil
	case 4:
		return Margin{vals[0], vals[1], vals[2], vals[3]}, nil
	}
	return Margin{}, fmt.Errorf("%w %q", ErrInvalidMargin, s)
}

// String formats the margin in four-value CSS order.
func (m Margin) String() string {
	return fmt.Sprintf("%d %d %d %d", m.Top, m.Right, m.Bottom, m.Left)
}
