package plist

import "fmt"

// ErrorKind identifies what a parse failure tripped over.
type ErrorKind int

const (
	ErrUnterminatedString ErrorKind = iota
	ErrUnterminatedArray
	ErrUnterminatedDictionary
	ErrUnterminatedData
	ErrInvalidEscape
	ErrInvalidHexDigit
	ErrMissingEquals
	ErrMissingSemicolon
	ErrMissingComma
	ErrUnexpectedEOF
	ErrUnexpectedCharacter
	ErrTrailingContent
)

var errorKindNames = map[ErrorKind]string{
	ErrUnterminatedString:     "unterminated quoted string",
	ErrUnterminatedArray:      "unterminated array",
	ErrUnterminatedDictionary: "unterminated dictionary",
	ErrUnterminatedData:       "unterminated data block",
	ErrInvalidEscape:          "invalid escape sequence",
	ErrInvalidHexDigit:        "invalid hex digit",
	ErrMissingEquals:          "missing = in dictionary",
	ErrMissingSemicolon:       "missing ; in dictionary",
	ErrMissingComma:           "missing , or ) in array",
	ErrUnexpectedEOF:          "unexpected end of input",
	ErrUnexpectedCharacter:    "unexpected character",
	ErrTrailingContent:        "trailing content after document",
}

func (k ErrorKind) String() string {
	if s, ok := errorKindNames[k]; ok {
		return s
	}
	return "unknown error"
}

// ParseError is returned by Parse for any malformed document. Line is
// 1-based and counts newlines up to the failure point.
type ParseError struct {
	Kind ErrorKind
	Line int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("plist: %s at line %d", e.Kind, e.Line)
}

// UnsupportedValueError is returned by Write when it encounters something
// outside the Value union.
type UnsupportedValueError struct {
	Value Value
}

func (e *UnsupportedValueError) Error() string {
	if e.Value == nil {
		return "plist: cannot write untyped nil value"
	}
	return "plist: cannot write value of type " + e.Value.TypeName()
}
