package plist

import (
	"runtime"
	"strconv"
)

type textParser struct {
	cursor

	interpretNumbers bool
	sortedDicts      bool
}

func newTextParser(input string) *textParser {
	return &textParser{
		cursor:           cursor{input: input},
		interpretNumbers: true,
	}
}

func (p *textParser) parseDocument() (root Value, parseError error) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(runtime.Error); ok {
				panic(r)
			}
			root = nil
			parseError = r.(error)
		}
	}()

	p.skipWhitespace()
	if p.peek() == eof {
		// An empty document is the nil value; there is no other way to
		// spell it.
		return Nil, nil
	}
	root = p.parseValue()
	p.skipWhitespace()
	if p.peek() != eof {
		p.fail(ErrTrailingContent)
	}
	return root, nil
}

func (p *textParser) parseValue() Value {
	p.skipWhitespace()
	switch c := p.peek(); c {
	case eof:
		p.fail(ErrUnexpectedEOF)
	case '(':
		p.next()
		p.ignore()
		return p.parseArray()
	case '{':
		p.next()
		p.ignore()
		return p.parseDictionary()
	case '<':
		p.next()
		p.ignore()
		return p.parseData()
	case '"', '\'':
		p.next()
		p.ignore()
		return p.parseQuotedString(c)
	default:
		return p.parseUnquotedToken(false)
	}
	return nil
}

// parseString parses a dictionary key position: quoted or unquoted, but
// never reinterpreted as a number.
func (p *textParser) parseString() String {
	switch c := p.peek(); c {
	case eof:
		p.fail(ErrUnexpectedEOF)
	case '"', '\'':
		p.next()
		p.ignore()
		return p.parseQuotedString(c)
	}
	return p.parseUnquotedToken(true).(String)
}

func (p *textParser) parseQuotedString(quote rune) String {
	s := ""
	for {
		switch c := p.next(); c {
		case eof:
			// EOF here is an error: we're inside a quoted string!
			p.fail(ErrUnterminatedString)
		case quote:
			p.ignore()
			return String(s)
		case '\\':
			s += string(p.parseEscape())
		default:
			s += string(c)
		}
	}
}

func (p *textParser) parseUnquotedToken(forceText bool) Value {
	if c := p.peek(); (c == '-' || c == '+') && p.pos+1 < len(p.input) {
		// A sign can only begin a number.
		if n := p.input[p.pos+1]; isDigit(n) || n == '.' {
			p.next()
		}
	}
	p.scanCharactersInSet(&unquotedSafe)
	if p.empty() {
		p.fail(ErrUnexpectedCharacter)
	}
	token := p.emit()

	if forceText || !p.interpretNumbers {
		return String(token)
	}
	switch classifyToken(token) {
	case tokenInteger:
		if n, err := strconv.ParseInt(token, 10, 64); err == nil {
			return Integer(n)
		}
	case tokenReal:
		if f, err := strconv.ParseFloat(token, 64); err == nil {
			return Real(f)
		}
	}
	return String(token)
}

func (p *textParser) parseArray() Array {
	values := make([]Value, 0, 32)
	for {
		p.skipWhitespace()
		switch p.peek() {
		case eof:
			p.fail(ErrUnterminatedArray)
		case ')':
			p.next()
			p.ignore()
			return Array(values)
		}
		values = append(values, p.parseValue())

		p.skipWhitespace()
		switch p.next() {
		case ',':
			p.ignore()
		case ')':
			p.ignore()
			return Array(values)
		case eof:
			p.fail(ErrUnterminatedArray)
		default:
			p.fail(ErrMissingComma)
		}
	}
}

func (p *textParser) parseDictionary() Dict {
	var d Dict
	if p.sortedDicts {
		d = NewSortedDict()
	} else {
		d = NewOrderedDict()
	}
	for {
		p.skipWhitespace()
		switch p.peek() {
		case eof:
			p.fail(ErrUnterminatedDictionary)
		case '}':
			p.next()
			p.ignore()
			return d
		}
		key := p.parseString()

		p.skipWhitespace()
		switch p.next() {
		case '=':
			p.ignore()
		case eof:
			p.fail(ErrUnterminatedDictionary)
		default:
			p.fail(ErrMissingEquals)
		}

		val := p.parseValue()

		p.skipWhitespace()
		switch p.next() {
		case ';':
			p.ignore()
		case eof:
			p.fail(ErrUnterminatedDictionary)
		default:
			p.fail(ErrMissingSemicolon)
		}

		// Duplicate keys: last write wins.
		d.Set(string(key), val)
	}
}

func (p *textParser) parseData() Data {
	data := make([]byte, 0, 32)
	var hi byte
	half := false
	for {
		c := p.next()
		switch {
		case c == eof:
			p.fail(ErrUnterminatedData)
		case c == '>':
			if half {
				// odd number of hex digits
				p.fail(ErrInvalidHexDigit)
			}
			p.ignore()
			return Data(data)
		case whitespace.Contains(c):
			if half {
				// whitespace may only separate complete digit pairs
				p.backup()
				p.fail(ErrInvalidHexDigit)
			}
		default:
			v, ok := hexDigitValue(c)
			if !ok {
				p.backup()
				p.fail(ErrInvalidHexDigit)
			}
			if half {
				data = append(data, hi<<4|v)
				half = false
			} else {
				hi = v
				half = true
			}
		}
	}
}

func hexDigitValue(c rune) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return byte(c - '0'), true
	case c >= 'a' && c <= 'f':
		return byte(c-'a') + 10, true
	case c >= 'A' && c <= 'F':
		return byte(c-'A') + 10, true
	}
	return 0, false
}
