package plist

import (
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

// skipWhitespace advances past whitespace and comments. // and /* */
// comments are accepted anywhere whitespace is; the writer never emits
// them. A block comment left open at end of input is an error.
func (p *textParser) skipWhitespace() {
	for {
		p.scanCharactersInSet(&whitespace)
		if p.pos+1 >= len(p.input) || p.input[p.pos] != '/' {
			break
		}
		switch p.input[p.pos+1] {
		case '/':
			p.scanUntilAny("\r\n")
		case '*':
			p.pos += 2
			x := strings.Index(p.input[p.pos:], "*/")
			if x < 0 {
				p.pos = len(p.input)
				p.fail(ErrUnexpectedEOF)
			}
			p.pos += x + 2
		default:
			p.ignore()
			return
		}
		p.width = 0
	}
	p.ignore()
}

// parseEscape decodes one escape sequence. The backslash has already been
// consumed. Unlisted escaped characters pass through unharmed.
func (p *textParser) parseEscape() rune {
	c := p.next()
	switch c {
	case eof:
		p.fail(ErrInvalidEscape)
	case 'a':
		return '\a'
	case 'b':
		return '\b'
	case 'f':
		return '\f'
	case 'n':
		return '\n'
	case 'r':
		return '\r'
	case 't':
		return '\t'
	case 'v':
		return '\v'
	case 'U':
		return p.parseUnicodeEscape()
	case '0', '1', '2', '3', '4', '5', '6', '7':
		// one to three octal digits
		v := rune(c - '0')
		for i := 0; i < 2; i++ {
			d := p.next()
			if d < '0' || d > '7' {
				p.backup()
				break
			}
			v = v<<3 | rune(d-'0')
		}
		return v
	}
	return c
}

// parseUnicodeEscape decodes the four hex digits after \U. Two adjacent
// \U escapes forming a valid surrogate pair combine into one scalar
// above U+FFFF.
func (p *textParser) parseUnicodeEscape() rune {
	r := rune(p.parseHex4())
	if !utf16.IsSurrogate(r) {
		return r
	}
	if strings.HasPrefix(p.input[p.pos:], `\U`) {
		mark := p.pos
		p.pos += 2
		r2 := rune(p.parseHex4())
		if combined := utf16.DecodeRune(r, r2); combined != utf8.RuneError {
			return combined
		}
		p.pos = mark
		p.width = 0
	}
	return r
}

func (p *textParser) parseHex4() uint16 {
	var v uint16
	for i := 0; i < 4; i++ {
		c := p.next()
		switch {
		case c >= '0' && c <= '9':
			v = v<<4 | uint16(c-'0')
		case c >= 'a' && c <= 'f':
			v = v<<4 | uint16(c-'a'+10)
		case c >= 'A' && c <= 'F':
			v = v<<4 | uint16(c-'A'+10)
		default:
			p.fail(ErrInvalidEscape)
		}
	}
	return v
}

type tokenKind int

const (
	tokenText tokenKind = iota
	tokenInteger
	tokenReal
)

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// classifyToken decides whether an unquoted token spells an integer
// (optional sign, digits), a real (one decimal point and/or an exponent
// marker) or plain text.
func classifyToken(s string) tokenKind {
	if s == "" {
		return tokenText
	}
	i := 0
	if s[i] == '-' || s[i] == '+' {
		i++
	}
	start := i
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	intDigits := i - start
	kind := tokenInteger
	if i < len(s) && s[i] == '.' {
		kind = tokenReal
		i++
		fracStart := i
		for i < len(s) && isDigit(s[i]) {
			i++
		}
		if intDigits == 0 && i == fracStart {
			return tokenText
		}
	} else if intDigits == 0 {
		return tokenText
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		kind = tokenReal
		i++
		expStart := i
		for i < len(s) && isDigit(s[i]) {
			i++
		}
		if i == expStart {
			return tokenText
		}
	}
	if i != len(s) {
		return tokenText
	}
	return kind
}
