package plist

// characterSet is a bitmap over the first 256 code points.
// Low bits represent lower characters, and each uint64 represents 64 characters.
// Regenerate with internal/cmd/tabler.
type characterSet [4]uint64

func (s *characterSet) Contains(r rune) bool {
	return r >= 0 && r < 256 && s.ContainsByte(byte(r))
}

func (s *characterSet) ContainsByte(b byte) bool {
	return s[b/64]&(1<<(b%64)) != 0
}

// Characters that may appear in an unquoted token:
// ASCII letters, digits, '.', '_' and '$'.
var unquotedSafe = characterSet{
	0x03ff401000000000,
	0x07fffffe87fffffe,
	0x0000000000000000,
	0x0000000000000000,
}

// Space, tab, newline and carriage return.
var whitespace = characterSet{
	0x0000000100002600,
	0x0000000000000000,
	0x0000000000000000,
	0x0000000000000000,
}
