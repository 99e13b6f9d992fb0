package plist

import (
	"unicode/utf16"
	"unicode/utf8"
)

type escapeClass int

const (
	escLiteral   escapeClass = iota // emitted verbatim
	escTwo                          // backslash + one character
	escOctal                        // \NNN
	escUnicode                      // \Uxxxx
	escSurrogate                    // \Uxxxx\Uxxxx
)

// classifyEscape is the single classification rule shared by the measure
// pass and the write pass of appendQuoted. It returns the category for r
// and the exact number of output bytes r occupies. Keeping both passes on
// this one function is what makes the exact pre-sizing safe.
func classifyEscape(r rune, escapeNewlines, unicodeEscapes bool) (escapeClass, int) {
	switch r {
	case '\a', '\b', '\f', '\r', '\v', '\\', '"':
		return escTwo, 2
	case '\n':
		if escapeNewlines {
			return escTwo, 2
		}
		return escLiteral, 1
	case '\t', ' ':
		return escLiteral, 1
	}
	switch {
	case r < 0x20 || r == 0x7f:
		return escOctal, 4
	case r < 0x80:
		return escLiteral, 1
	case !unicodeEscapes:
		return escLiteral, utf8.RuneLen(r)
	case r <= 0xffff:
		return escUnicode, 6
	}
	return escSurrogate, 12
}

// quotedLength measures the escaped form of s, excluding the surrounding
// quotes.
func quotedLength(s string, escapeNewlines, unicodeEscapes bool) int {
	n := 0
	for _, r := range s {
		_, w := classifyEscape(r, escapeNewlines, unicodeEscapes)
		n += w
	}
	return n
}

// appendQuoted writes s as a quoted string. The destination grows at most
// once, to the measured length plus the two quotes.
func appendQuoted(dst []byte, s string, escapeNewlines, unicodeEscapes bool) []byte {
	dst = growExactly(dst, quotedLength(s, escapeNewlines, unicodeEscapes)+2)
	dst = append(dst, '"')
	for _, r := range s {
		class, _ := classifyEscape(r, escapeNewlines, unicodeEscapes)
		switch class {
		case escLiteral:
			dst = utf8.AppendRune(dst, r)
		case escTwo:
			dst = append(dst, '\\', twoCharEscape(r))
		case escOctal:
			dst = append(dst, '\\', '0'+byte(r>>6), '0'+byte(r>>3&7), '0'+byte(r&7))
		case escUnicode:
			dst = appendUnicodeEscape(dst, uint16(r))
		case escSurrogate:
			hi, lo := utf16.EncodeRune(r)
			dst = appendUnicodeEscape(dst, uint16(hi))
			dst = appendUnicodeEscape(dst, uint16(lo))
		}
	}
	return append(dst, '"')
}

func twoCharEscape(r rune) byte {
	switch r {
	case '\a':
		return 'a'
	case '\b':
		return 'b'
	case '\f':
		return 'f'
	case '\n':
		return 'n'
	case '\r':
		return 'r'
	case '\v':
		return 'v'
	}
	// backslash and double quote escape to themselves
	return byte(r)
}

const hexDigits = "0123456789abcdef"

func appendUnicodeEscape(dst []byte, u uint16) []byte {
	return append(dst, '\\', 'U',
		hexDigits[u>>12&0xf], hexDigits[u>>8&0xf], hexDigits[u>>4&0xf], hexDigits[u&0xf])
}

// growExactly makes room for exactly n more bytes if the buffer cannot
// already hold them.
func growExactly(dst []byte, n int) []byte {
	if cap(dst)-len(dst) >= n {
		return dst
	}
	grown := make([]byte, len(dst), len(dst)+n)
	copy(grown, dst)
	return grown
}
