package plist

import "strings"

// A WriterOption adjusts how Write renders a value tree.
type WriterOption func(*writerConfig)

// UnicodeEscapes controls whether characters above 0x7F are written as \U
// escapes (the default) or passed through as UTF-8.
func UnicodeEscapes(on bool) WriterOption {
	return func(c *writerConfig) {
		c.unicodeEscapes = on
	}
}

// EscapeNewlines controls whether newlines inside quoted strings are
// written as \n (the default) or verbatim.
func EscapeNewlines(on bool) WriterOption {
	return func(c *writerConfig) {
		c.escapeNewlines = on
	}
}

// FloatPrecision sets the number of decimal digits reals are formatted
// to before trailing zeros are stripped. The default is 6.
func FloatPrecision(digits int) WriterOption {
	return func(c *writerConfig) {
		c.floatPrecision = digits
	}
}

// Indent enables indented output using unit once per nesting level.
func Indent(unit string) WriterOption {
	return func(c *writerConfig) {
		c.indent = unit
	}
}

// IndentSpaces enables indented output using n spaces per nesting level.
func IndentSpaces(n int) WriterOption {
	return func(c *writerConfig) {
		c.indent = strings.Repeat(" ", n)
	}
}

// SingleLineTuples keeps tuples on one line even inside an indented
// document. On by default.
func SingleLineTuples(on bool) WriterOption {
	return func(c *writerConfig) {
		c.singleLineTuple = on
	}
}

// SingleLineEmptyObjects renders empty containers as () and {} even when
// indenting. On by default; when off, an indented empty container spans
// two lines with nothing between.
func SingleLineEmptyObjects(on bool) WriterOption {
	return func(c *writerConfig) {
		c.singleLineEmpty = on
	}
}

// SortKeys makes SortedDict values emit their keys in lexicographic
// order. OrderedDict values ignore it.
func SortKeys(on bool) WriterOption {
	return func(c *writerConfig) {
		c.sortKeys = on
	}
}

// GroupBytes inserts a space after every 4th data byte, except the last.
func GroupBytes(on bool) WriterOption {
	return func(c *writerConfig) {
		c.groupBytes = on
	}
}

// A ParserOption adjusts how Parse interprets a document.
type ParserOption func(*textParser)

// InterpretNumbers controls whether numeric-looking unquoted tokens
// become Integer/Real values (the default) or stay String.
func InterpretNumbers(on bool) ParserOption {
	return func(p *textParser) {
		p.interpretNumbers = on
	}
}

// SortedDicts makes the parser build SortedDict values instead of
// OrderedDict ones.
func SortedDicts(on bool) ParserOption {
	return func(p *textParser) {
		p.sortedDicts = on
	}
}
