/*
File    : masala/parser/error.go
Package : parser
*/

package parser

import "fmt"

// Error is a syntactic error raised while building the AST. It carries
// the offending token's line/column the same way the lexer's Error
// does, so the top-level driver can render every stage's failures
// uniformly.
type Error struct {
	Line    int
	Column  int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("Parser Error (Line %d, Column %d): %s", e.Line, e.Column, e.Message)
}

func newError(line, column int, format string, args ...interface{}) *Error {
	return &Error{Line: line, Column: column, Message: fmt.Sprintf(format, args...)}
}
