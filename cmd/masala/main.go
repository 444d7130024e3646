/*
File    : masala/cmd/masala/main.go
Package : main
*/

// Package main is the entry point for the Masala interpreter. It has
// two modes of operation: file mode, running a single `.masala` source
// file end to end, and REPL mode, started whenever no file is given on
// the command line.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/masala-lang/masala"
	"github.com/masala-lang/masala/analyser"
	"github.com/masala-lang/masala/debug"
	"github.com/masala-lang/masala/lexer"
	"github.com/masala-lang/masala/parser"
	"github.com/masala-lang/masala/repl"
)

// VERSION is the current version of the Masala interpreter.
var VERSION = "v1.0.0"

// AUTHOR is the contact information shown by --version.
var AUTHOR = "masala-lang"

// LICENSE is the software license shown by --version.
var LICENSE = "MIT"

// PROMPT is the command prompt displayed in REPL mode.
var PROMPT = "masala >>> "

// BANNER is the ASCII banner shown at REPL startup.
var BANNER = `
  __  __    _    ____    _    _        _
 |  \/  |  / \  / ___|  / \  | |      / \
 | |\/| | / _ \ \___ \ / _ \ | |     / _ \
 | |  | |/ ___ \ ___) / ___ \| |___ / ___ \
 |_|  |_/_/   \_\____/_/   \_\_____/_/   \_\
`

// LINE is the separator used in the banner and help text.
var LINE = "----------------------------------------------------------------"

var (
	redColor    = color.New(color.FgRed)
	yellowColor = color.New(color.FgYellow)
	cyanColor   = color.New(color.FgCyan)
)

func main() {
	help := flag.Bool("help", false, "show usage information")
	version := flag.Bool("version", false, "show version information")
	dumpTokens := flag.Bool("dump-tokens", false, "print the token stream for the given file and exit")
	dumpAST := flag.Bool("dump-ast", false, "print the parsed AST for the given file and exit")
	maxLoop := flag.Int("max-loop-iterations", 0, "override the loop-iteration cap (0 keeps the evaluator default)")
	flag.BoolVar(help, "h", false, "show usage information")
	flag.BoolVar(version, "v", false, "show version information")
	flag.Parse()

	if *help {
		showHelp()
		os.Exit(0)
	}
	if *version {
		showVersion()
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) == 0 {
		repler := repl.New(BANNER, VERSION, AUTHOR, LINE, LICENSE, PROMPT)
		repler.Start(os.Stdin, os.Stdout)
		return
	}

	fileName := args[0]
	source, err := os.ReadFile(fileName)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[FILE ERROR] could not read file %q: %v\n", fileName, err)
		os.Exit(1)
	}

	if *dumpTokens || *dumpAST {
		runDebugDump(string(source), *dumpTokens, *dumpAST)
		return
	}

	if err := masala.RunTo(string(source), os.Stdout, *maxLoop); err != nil {
		redColor.Fprintf(os.Stderr, "%s\n", err.Error())
		os.Exit(1)
	}
}

func runDebugDump(source string, dumpTokens, dumpAST bool) {
	tokens, err := lexer.Tokenize(source)
	if err != nil {
		redColor.Fprintf(os.Stderr, "%s\n", err.Error())
		os.Exit(1)
	}
	if dumpTokens {
		fmt.Print(debug.DumpTokens(tokens))
	}
	if !dumpAST {
		return
	}

	program, err := parser.New(tokens).Parse()
	if err != nil {
		redColor.Fprintf(os.Stderr, "%s\n", err.Error())
		os.Exit(1)
	}
	if err := analyser.New().Analyze(program); err != nil {
		redColor.Fprintf(os.Stderr, "%s\n", err.Error())
		os.Exit(1)
	}
	fmt.Print(debug.DumpAST(program))
}

func showHelp() {
	cyanColor.Println("Masala - a Hindi/English-blend interpreted language")
	cyanColor.Println("")
	cyanColor.Println("USAGE:")
	yellowColor.Println("  masala                      Start interactive REPL mode")
	yellowColor.Println("  masala <path-to-file>       Run a Masala source file (.masala)")
	yellowColor.Println("  masala --dump-tokens <file> Print the token stream and exit")
	yellowColor.Println("  masala --dump-ast <file>    Print the parsed AST and exit")
	yellowColor.Println("  masala --help               Display this help message")
	yellowColor.Println("  masala --version            Display version information")
	cyanColor.Println("")
	cyanColor.Println("REPL:")
	yellowColor.Println("  Type a full action!/paisa vasool program, one statement per line.")
	yellowColor.Println("  Press Enter on a blank line to run it. Type '.exit' to quit.")
}

func showVersion() {
	cyanColor.Println("Masala - a Hindi/English-blend interpreted language")
	cyanColor.Printf("Version: %s\n", VERSION)
	cyanColor.Printf("License: %s\n", LICENSE)
	cyanColor.Printf("Author : %s\n", AUTHOR)
}
