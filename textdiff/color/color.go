// Package color selects the ANSI escape sequences used by [textdiff.TerminalColors].
//
// Colors are lists of [Select Graphic Rendition] attributes. The named attributes cover the
// common cases, any other SGR parameter can be used by converting it to an [Attribute]:
//
//	HunkHeaders(Bold, Yellow)    // \033[1;33m
//	Inserts(Attribute(38), 5, 2) // \033[38;5;2m, a 256 color palette entry
//
// Passing no attributes leaves that part of the diff uncolored.
//
// [Select Graphic Rendition]: https://en.wikipedia.org/wiki/ANSI_escape_code#SGR
package color

import (
	"strconv"

	"znkr.io/incdiff/internal/config"
)

// Attribute is a Select Graphic Rendition parameter.
type Attribute int

// Named text attributes.
const (
	Bold      Attribute = 1
	Faint     Attribute = 2
	Italic    Attribute = 3
	Underline Attribute = 4
	Reverse   Attribute = 7
)

// Foreground colors, add 10 for the matching background color.
const (
	Black Attribute = 30 + iota
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
)

// Background returns the background variant of a foreground color.
func Background(fg Attribute) Attribute { return fg + 10 }

// Option configures a color of [textdiff.TerminalColors].
type Option func(*config.ColorConfig)

// HunkHeaders colors hunk headers, the "@@ ... @@" part of the unified diff.
func HunkHeaders(attrs ...Attribute) Option {
	return set(attrs, func(cc *config.ColorConfig) *string { return &cc.HunkHeader })
}

// Matches colors matching lines.
func Matches(attrs ...Attribute) Option {
	return set(attrs, func(cc *config.ColorConfig) *string { return &cc.Match })
}

// Deletes colors deleted lines.
func Deletes(attrs ...Attribute) Option {
	return set(attrs, func(cc *config.ColorConfig) *string { return &cc.Delete })
}

// Inserts colors inserted lines.
func Inserts(attrs ...Attribute) Option {
	return set(attrs, func(cc *config.ColorConfig) *string { return &cc.Insert })
}

func set(attrs []Attribute, field func(*config.ColorConfig) *string) Option {
	code := Sequence(attrs...)
	return func(cc *config.ColorConfig) {
		*field(cc) = code
	}
}

// Sequence returns the escape sequence that selects attrs, or "" if attrs is empty.
func Sequence(attrs ...Attribute) string {
	if len(attrs) == 0 {
		return ""
	}
	buf := append(make([]byte, 0, 2+4*len(attrs)), "\033["...)
	for i, a := range attrs {
		if i > 0 {
			buf = append(buf, ';')
		}
		buf = strconv.AppendInt(buf, int64(a), 10)
	}
	return string(append(buf, 'm'))
}
