package plist

// Value is one node of a property list tree. It is implemented by Nil,
// Boolean, Integer, Real, String, Array, Tuple, Data and the two
// dictionary variants. Trees returned by Parse are never mutated by Write.
type Value interface {
	// TypeName returns the name of the value's kind, for diagnostics.
	TypeName() string
}

type nilValue struct{}

func (nilValue) TypeName() string {
	return "nil"
}

// Nil is the absent value. It has no textual representation: writing it
// emits nothing, and an empty (or all-whitespace) document parses to it.
var Nil Value = nilValue{}

// Boolean has no literal syntax in the old-style plist grammar; it is
// written as 1 or 0 and re-parses as Integer.
type Boolean bool

func (Boolean) TypeName() string {
	return "boolean"
}

type Integer int64

func (Integer) TypeName() string {
	return "integer"
}

type Real float64

func (Real) TypeName() string {
	return "real"
}

type String string

func (String) TypeName() string {
	return "string"
}

type Array []Value

func (Array) TypeName() string {
	return "array"
}

// Tuple is an ordered sequence like Array, but is rendered under its own
// formatting rules: when the single-line-tuples option is on it stays on
// one line even inside an indented document. The grammar has no tuple
// brackets, so a written Tuple re-parses as Array.
type Tuple []Value

func (Tuple) TypeName() string {
	return "tuple"
}

type Data []byte

func (Data) TypeName() string {
	return "data"
}

// isNilValue matches only the Nil sentinel. An untyped nil interface is
// not a Value and is rejected by the writer, never silently dropped.
func isNilValue(v Value) bool {
	_, ok := v.(nilValue)
	return ok
}
