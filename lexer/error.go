package lexer

import "fmt"

// Error reports a lexical failure, carrying the source position of the
// offending character so callers can render "Lexer Error (Line L,
// Column C): message" without re-scanning the source.
type Error struct {
	Line    int
	Column  int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("Lexer Error (Line %d, Column %d): %s", e.Line, e.Column, e.Message)
}

func newError(line, column int, format string, args ...interface{}) *Error {
	return &Error{Line: line, Column: column, Message: fmt.Sprintf(format, args...)}
}
