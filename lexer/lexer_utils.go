package lexer

// isDigit reports whether c is an ASCII decimal digit.
func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// isAlpha reports whether c is an ASCII letter or underscore, the set
// of characters allowed to start an identifier.
func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
}

// isIdentChar reports whether c may continue an identifier once
// started: letters, digits, underscore. This is also the character
// class used by the keyword word-boundary rule: a keyword match only
// succeeds if the character following it is NOT one of these.
func isIdentChar(c byte) bool {
	return isAlpha(c) || isDigit(c)
}

// isWhitespace reports whether c is space, tab, or carriage return.
// Newlines are handled separately so line/column tracking stays exact.
func isWhitespace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r'
}

// foldByte lowercases an ASCII letter; non-letters pass through
// unchanged. Used for the lexer's ASCII-only case-insensitive keyword
// comparison; non-ASCII keyword aliases are not supported.
func foldByte(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c - 'A' + 'a'
	}
	return c
}
