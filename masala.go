/*
File    : masala/masala.go
Package : masala
*/

// Package masala is the single external entry point of the language
// core: lex, parse, analyse, then evaluate, in that strict order,
// stopping at the first stage that fails. Each stage's own error type
// (lexer.Error, parser.Error, analyser.Error, eval.Error) already
// renders itself as "<Stage> Error (Line L[, Column C]): message", so
// Run returns it unwrapped rather than introducing a second layer of
// masala-specific error types around the same four labels.
package masala

import (
	"bytes"
	"io"
	"strings"

	"github.com/masala-lang/masala/analyser"
	"github.com/masala-lang/masala/eval"
	"github.com/masala-lang/masala/lexer"
	"github.com/masala-lang/masala/parser"
)

// Result is the successful outcome of Run: the ordered list of lines
// the program printed, each with no trailing newline.
type Result struct {
	Output []string
}

// Run lexes, parses, analyses and evaluates source, using the default
// loop-iteration cap. On success it returns the printed output; on
// failure it returns the first stage error encountered.
func Run(source string) (*Result, error) {
	var buf bytes.Buffer
	if err := RunTo(source, &buf, 0); err != nil {
		return nil, err
	}
	return &Result{Output: splitLines(buf.String())}, nil
}

// RunTo runs source the same way Run does, but streams printed lines
// to w as they are produced instead of buffering them, and accepts a
// loop-iteration cap override (0 selects the evaluator's default).
// This is the entry point the REPL and the `masala` CLI's file-running
// mode use so output appears incrementally rather than all at once at
// exit.
func RunTo(source string, w io.Writer, maxLoopIterations int) error {
	tokens, err := lexer.Tokenize(source)
	if err != nil {
		return err
	}

	program, err := parser.New(tokens).Parse()
	if err != nil {
		return err
	}

	if err := analyser.New().Analyze(program); err != nil {
		return err
	}

	evaluator := eval.New()
	evaluator.SetWriter(w)
	if maxLoopIterations > 0 {
		evaluator.MaxLoopIterations = maxLoopIterations
	}
	return evaluator.Run(program)
}

func splitLines(s string) []string {
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
