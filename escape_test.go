package plist

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

// Every escape category, in both option states. The measure pass and the
// write pass share one classifier; these tests pin the two passes to each
// other for each category.
var escapeCategoryCases = []struct {
	Name           string
	In             rune
	EscapeNewlines bool
	UnicodeEscapes bool
	Expected       string
}{
	{"Literal Letter", 'a', true, true, "a"},
	{"Literal Space", ' ', true, true, " "},
	{"Literal Tab", '\t', true, true, "\t"},
	{"Newline Escaped", '\n', true, true, `\n`},
	{"Newline Verbatim", '\n', false, true, "\n"},
	{"Bell", '\a', true, true, `\a`},
	{"Backspace", '\b', true, true, `\b`},
	{"Form Feed", '\f', true, true, `\f`},
	{"Carriage Return", '\r', true, true, `\r`},
	{"Vertical Tab", '\v', true, true, `\v`},
	{"Backslash", '\\', true, true, `\\`},
	{"Double Quote", '"', true, true, `\"`},
	{"Single Quote Verbatim", '\'', true, true, "'"},
	{"Control Octal", '\x01', true, true, `\001`},
	{"Escape Octal", '\x1b', true, true, `\033`},
	{"Delete Octal", '\x7f', true, true, `\177`},
	{"Latin-1 Unicode", 'é', true, true, `\U00e9`},
	{"BMP Unicode", '世', true, true, `\U4e16`},
	{"Surrogate Pair", '\U0001f600', true, true, `\Ud83d\Ude00`},
	{"Latin-1 Verbatim", 'é', true, false, "é"},
	{"BMP Verbatim", '世', true, false, "世"},
	{"Astral Verbatim", '\U0001f600', true, false, "\U0001f600"},
}

func TestEscapeCategories(t *testing.T) {
	for _, test := range escapeCategoryCases {
		t.Run(test.Name, func(t *testing.T) {
			out := appendQuoted(nil, string(test.In), test.EscapeNewlines, test.UnicodeEscapes)
			require.Equal(t, `"`+test.Expected+`"`, string(out))
		})
	}
}

// The measure pass must predict the write pass exactly, so that the
// single up-front allocation is never outgrown.
func TestEscapeMeasureMatchesWrite(t *testing.T) {
	for _, test := range escapeCategoryCases {
		t.Run(test.Name, func(t *testing.T) {
			s := string(test.In)
			measured := quotedLength(s, test.EscapeNewlines, test.UnicodeEscapes)
			out := appendQuoted(nil, s, test.EscapeNewlines, test.UnicodeEscapes)
			require.Equal(t, measured+2, len(out), "pass-1 length disagrees with pass-2 bytes written")
			require.Equal(t, measured+2, cap(out), "write pass grew beyond the measured allocation")
		})
	}
}

func TestEscapeMeasureMatchesWriteMixed(t *testing.T) {
	mixed := "plain \t\n\r\a\b\f\v\\\"' \x01\x1f\x7f é世￿ \U0001f600\U0010ffff end"
	for _, escNL := range []bool{false, true} {
		for _, uni := range []bool{false, true} {
			measured := quotedLength(mixed, escNL, uni)
			out := appendQuoted(nil, mixed, escNL, uni)
			require.Equal(t, measured+2, len(out))
			require.Equal(t, measured+2, cap(out))
		}
	}
}

// Every character must decode back to itself after quote, escape, parse,
// unescape.
func TestEscapeCompleteness(t *testing.T) {
	var samples []rune
	for r := rune(0); r < 0x80; r++ {
		samples = append(samples, r)
	}
	samples = append(samples,
		'é', '߿', 'ࠀ', '世', '�', '￿',
		'\U00010000', '\U0001f600', '\U0010ffff')

	for _, uni := range []bool{false, true} {
		for _, r := range samples {
			s := string(r)
			out := appendQuoted(nil, s, true, uni)
			parsed, err := Parse(out)
			require.NoError(t, err, fmt.Sprintf("U+%04X via %s", r, out))
			require.Equal(t, Value(String(s)), parsed, fmt.Sprintf("U+%04X via %s", r, out))
		}
	}
}
