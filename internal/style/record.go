package style

import (
	"strings"

	"github.com/dshills/gridstorm/internal/optional"
)

// Record field names.
const (
	FieldForeground = "foreground"
	FieldAlignment  = "alignment"
	FieldTypeface   = "typeface"
	FieldMargin     = "margin"
)

var aliases = map[string]string{
	"fg":    FieldForeground,
	"color": FieldForeground,
	"align": FieldAlignment,
	"font":  FieldTypeface,
	"pad":   FieldMargin,
}

// Style is a decoded styling record. Fields that were absent or failed to
// parse are None and leave the cell attribute at its default.
type Style struct {
	Foreground optional.Option[Color]
	Alignment  optional.Option[Alignment]
	Typeface   optional.Option[Typeface]
	Margin     optional.Option[Margin]
}

// IsEmpty reports whether no field is set.
func (s Style) IsEmpty() bool {
	return !s.Foreground.Has() && !s.Alignment.Has() && !s.Typeface.Has() && !s.Margin.Has()
}

// Decode reads a styling record field by field. A field that fails to parse
// is skipped without affecting the others.
func Decode(fields map[string]string) Style {
	var s Style
	for name, raw := range fields {
		name = strings.ToLower(strings.TrimSpace(name))
		if canonical, ok := aliases[name]; ok {
			name = canonical
		}
		switch name {
		case FieldForeground:
			if c, err := ParseColor(raw); err == nil {
				s.Foreground = optional.Some(c)
			}
		case FieldAlignment:
			if a, err := ParseAlignment(raw); err == nil {
				s.Alignment = optional.Some(a)
			}
		case FieldTypeface:
			if tf, err := ParseTypeface(raw); err == nil {
				s.Typeface = optional.Some(tf)
			}
		case FieldMargin:
			if m, err := ParseMargin(raw); err == nil {
				s.Margin = optional.Some(m)
			}
		}
	}
	return s
}

// Encode writes the set fields as a record Decode reads back.
func (s Style) Encode() map[string]string {
	out := make(map[string]string)
	if c, ok := s.Foreground.Get(); ok {
		out[FieldForeground] = c.String()
	}
	if a, ok := s.Alignment.Get(); ok {
		out[FieldAlignment] = a.String()
	}
	if tf, ok := s.Typeface.Get(); ok {
		out[FieldTypeface] = tf.String()
	}
	if m, ok := s.Margin.Get(); ok {
		out[FieldMargin] = m.String()
	}
	return out
}
