/*
File    : masala/repl/repl.go
Package : repl
*/

// Package repl implements Masala's interactive Read-Eval-Print Loop:
// banner/prompt fields, chzyer/readline line editing and history, and
// fatih/color feedback colouring. Unlike a REPL that evaluates a bare
// expression on every Enter, Masala has no such thing, every program
// needs its own `action!` ... `paisa vasool` framing. So a Masala
// session accumulates non-empty lines and runs them as one program the
// moment the user submits a blank line, then starts a fresh program
// and a fresh global environment for the next one.
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
	"github.com/masala-lang/masala"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl holds the cosmetic configuration of an interactive session.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	License string
	Prompt  string
}

// New creates a Repl with the given banner, version, author, separator
// line, license and prompt string.
func New(banner, version, author, line, license, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt}
}

// PrintBannerInfo writes the startup banner and usage instructions.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Welcome to Masala!")
	cyanColor.Fprintf(writer, "%s\n", "Type a full action!/paisa vasool program, one statement per line.")
	cyanColor.Fprintf(writer, "%s\n", "Press Enter on a blank line to run it. Type '.exit' to quit.")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start runs the REPL loop until the user exits or input ends. reader
// is accepted for symmetry with other Start-style entry points but is
// not used directly, readline manages its own input source.
func (r *Repl) Start(reader io.Reader, writer io.Writer) {
	r.PrintBannerInfo(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	var pending []string
	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good bye!\n"))
			return
		}

		trimmed := strings.Trim(line, " \t\r")

		if trimmed == ".exit" {
			writer.Write([]byte("Good bye!\n"))
			return
		}

		if trimmed == "" {
			if len(pending) == 0 {
				continue
			}
			source := strings.Join(pending, "\n")
			pending = pending[:0]
			r.runOne(writer, source)
			continue
		}

		rl.SaveHistory(line)
		pending = append(pending, line)
	}
}

func (r *Repl) runOne(writer io.Writer, source string) {
	if err := masala.RunTo(source, writer, 0); err != nil {
		redColor.Fprintf(writer, "%s\n", err.Error())
	}
}
