package plist

import "runtime"

// Parse reads exactly one value from data. Anything other than
// whitespace and comments after that value is an error. An empty or
// all-whitespace document parses to Nil.
func Parse(data []byte, opts ...ParserOption) (Value, error) {
	return ParseString(string(data), opts...)
}

// ParseString is Parse over a string.
func ParseString(s string, opts ...ParserOption) (Value, error) {
	p := newTextParser(s)
	for _, opt := range opts {
		opt(p)
	}
	return p.parseDocument()
}

// Write renders v as an old-style property list. The writer treats v as
// read-only; its quoting and escaping choices guarantee that Parse
// recovers the same value kinds, with two documented exceptions: Boolean
// writes as 1/0 and re-parses as Integer, and Tuple re-parses as Array.
func Write(v Value, opts ...WriterOption) (out []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(runtime.Error); ok {
				panic(r)
			}
			out = nil
			err = r.(error)
		}
	}()

	cfg := defaultWriterConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	g := newTextGenerator(cfg)
	g.writeValue(v)
	return g.buf, nil
}
