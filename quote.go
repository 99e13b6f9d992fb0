package plist

// needsQuoting reports whether a string must be wrapped in quotes to come
// back out of the parser as a string. Empty strings and strings holding
// any character outside the unquoted-safe set always quote. A string made
// only of digits and at most one period also quotes: written bare it
// would re-parse as a number. Integer and Real values are never routed
// through here and always write unquoted.
func needsQuoting(s string) bool {
	if s == "" {
		return true
	}
	for _, r := range s {
		if !unquotedSafe.Contains(r) {
			return true
		}
	}
	dot := false
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case isDigit(c):
		case c == '.':
			if dot {
				return false
			}
			dot = true
		default:
			return false
		}
	}
	return true
}
