package plist

import (
	"strings"
	"unicode/utf8"
)

const eof rune = -1

// cursor is scanning state over a fully buffered document. start..pos is
// the pending token, pos..end of input is the unscanned remainder. One
// cursor is created per top-level parse and threaded through every
// recursive call.
type cursor struct {
	input string
	start int
	pos   int
	width int
}

// line is computed on demand for error reporting; it is not maintained
// incrementally.
func (p *cursor) line() int {
	return strings.Count(p.input[:p.pos], "\n") + 1
}

func (p *cursor) fail(kind ErrorKind) {
	panic(&ParseError{Kind: kind, Line: p.line()})
}

func (p *cursor) next() rune {
	if p.pos >= len(p.input) {
		p.width = 0
		return eof
	}
	r, w := utf8.DecodeRuneInString(p.input[p.pos:])
	p.width = w
	p.pos += p.width
	return r
}

func (p *cursor) backup() {
	p.pos -= p.width
}

func (p *cursor) peek() rune {
	r := p.next()
	p.backup()
	return r
}

func (p *cursor) emit() string {
	s := p.input[p.start:p.pos]
	p.start = p.pos
	return s
}

func (p *cursor) ignore() {
	p.start = p.pos
}

func (p *cursor) empty() bool {
	return p.start == p.pos
}

func (p *cursor) scanUntilAny(chs string) {
	if x := strings.IndexAny(p.input[p.pos:], chs); x >= 0 {
		p.pos += x
		return
	}
	p.pos = len(p.input)
}

func (p *cursor) scanCharactersInSet(ch *characterSet) {
	for ch.Contains(p.next()) {
	}
	p.backup()
}
