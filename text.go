package plist

import (
	"strconv"
	"strings"
)

type writerConfig struct {
	unicodeEscapes  bool
	escapeNewlines  bool
	floatPrecision  int
	indent          string
	singleLineTuple bool
	singleLineEmpty bool
	sortKeys        bool
	groupBytes      bool
}

func defaultWriterConfig() writerConfig {
	return writerConfig{
		unicodeEscapes:  true,
		escapeNewlines:  true,
		floatPrecision:  6,
		singleLineTuple: true,
		singleLineEmpty: true,
	}
}

type textGenerator struct {
	buf []byte
	cfg writerConfig

	depth   int
	compact int // > 0 while inside a single-line tuple
}

func newTextGenerator(cfg writerConfig) *textGenerator {
	return &textGenerator{cfg: cfg}
}

func (g *textGenerator) indenting() bool {
	return len(g.cfg.indent) > 0 && g.compact == 0
}

func (g *textGenerator) writeIndent() {
	g.buf = append(g.buf, '\n')
	for i := 0; i < g.depth; i++ {
		g.buf = append(g.buf, g.cfg.indent...)
	}
}

func (g *textGenerator) writeValue(v Value) {
	switch v := v.(type) {
	case nilValue:
		// nothing: an empty document reads back as Nil
	case Boolean:
		// no boolean literal exists in the grammar
		if v {
			g.buf = append(g.buf, '1')
		} else {
			g.buf = append(g.buf, '0')
		}
	case Integer:
		g.buf = strconv.AppendInt(g.buf, int64(v), 10)
	case Real:
		g.writeReal(float64(v))
	case String:
		g.writeString(string(v))
	case Array:
		g.writeArray(v, false)
	case Tuple:
		g.writeArray(Array(v), g.cfg.singleLineTuple)
	case Data:
		g.writeData(v)
	case Dict:
		g.writeDictionary(v)
	default:
		panic(&UnsupportedValueError{v})
	}
}

func (g *textGenerator) writeString(s string) {
	if needsQuoting(s) {
		g.buf = appendQuoted(g.buf, s, g.cfg.escapeNewlines, g.cfg.unicodeEscapes)
		return
	}
	g.buf = append(g.buf, s...)
}

func (g *textGenerator) writeReal(f float64) {
	s := strconv.FormatFloat(f, 'f', g.cfg.floatPrecision, 64)
	if strings.ContainsRune(s, '.') {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	g.buf = append(g.buf, s...)
}

func (g *textGenerator) writeData(b []byte) {
	const upperhex = "0123456789ABCDEF"
	n := 2 + 2*len(b)
	if g.cfg.groupBytes && len(b) > 0 {
		n += (len(b) - 1) / 4
	}
	g.buf = growExactly(g.buf, n)
	g.buf = append(g.buf, '<')
	for i, by := range b {
		g.buf = append(g.buf, upperhex[by>>4], upperhex[by&0xf])
		if g.cfg.groupBytes && (i+1)%4 == 0 && i != len(b)-1 {
			g.buf = append(g.buf, ' ')
		}
	}
	g.buf = append(g.buf, '>')
}

func (g *textGenerator) writeArray(values []Value, singleLine bool) {
	if singleLine {
		g.compact++
		defer func() { g.compact-- }()
	}

	// Nil elements have no representation and are dropped.
	kept := values[:0:0]
	for _, v := range values {
		if !isNilValue(v) {
			kept = append(kept, v)
		}
	}

	g.buf = append(g.buf, '(')
	switch {
	case len(kept) == 0:
		if g.indenting() && !g.cfg.singleLineEmpty {
			g.writeIndent()
		}
	case g.indenting():
		g.depth++
		for i, v := range kept {
			g.writeIndent()
			g.writeValue(v)
			if i != len(kept)-1 {
				g.buf = append(g.buf, ',')
			}
		}
		g.depth--
		g.writeIndent()
	default:
		for i, v := range kept {
			if i > 0 {
				g.buf = append(g.buf, ',', ' ')
			}
			g.writeValue(v)
		}
	}
	g.buf = append(g.buf, ')')
}

func (g *textGenerator) writeDictionary(d Dict) {
	keys := d.writeKeys(g.cfg.sortKeys)

	kept := keys[:0:0]
	for _, k := range keys {
		if v, ok := d.Get(k); ok && !isNilValue(v) {
			kept = append(kept, k)
		}
	}

	g.buf = append(g.buf, '{')
	switch {
	case len(kept) == 0:
		if g.indenting() && !g.cfg.singleLineEmpty {
			g.writeIndent()
		}
	case g.indenting():
		g.depth++
		for _, k := range kept {
			g.writeIndent()
			g.writeEntry(d, k)
		}
		g.depth--
		g.writeIndent()
	default:
		for _, k := range kept {
			g.writeEntry(d, k)
			g.buf = append(g.buf, ' ')
		}
	}
	g.buf = append(g.buf, '}')
}

func (g *textGenerator) writeEntry(d Dict, key string) {
	g.writeString(key)
	g.buf = append(g.buf, ' ', '=', ' ')
	v, _ := d.Get(key)
	g.writeValue(v)
	g.buf = append(g.buf, ';')
}
