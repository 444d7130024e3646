package lexer

import (
	"strconv"
	"strings"
)

// Lexer scans Masala source text byte by byte, tracking line and
// column position for error reporting. It is a hand-rolled scanner
// (current byte + position + line/column fields, Advance/Peek pair)
// rather than a scanner library — there is no ecosystem tokenizer built
// for a multi-word, greedy-longest-match keyword grammar like this one.
type Lexer struct {
	src      string
	current  byte
	pos      int
	length   int
	line     int
	column   int
	keywords []phrase // pre-sorted by descending length
}

// New creates a Lexer positioned at the start of src.
func New(src string) *Lexer {
	lx := &Lexer{
		src:      src,
		pos:      0,
		length:   len(src),
		line:     1,
		column:   1,
		keywords: orderedKeywordPhrases(),
	}
	if lx.length > 0 {
		lx.current = src[0]
	}
	return lx
}

// Peek returns the byte after the current one without consuming it, or
// 0 at end of input.
func (lx *Lexer) Peek() byte {
	if lx.pos+1 >= lx.length {
		return 0
	}
	return lx.src[lx.pos+1]
}

// peekAt returns the byte at pos+n (n >= 0), or 0 past end of input.
func (lx *Lexer) peekAt(n int) byte {
	if lx.pos+n >= lx.length {
		return 0
	}
	return lx.src[lx.pos+n]
}

// Advance consumes the current byte and moves to the next one,
// updating column tracking. Line tracking on newlines is the caller's
// responsibility (done in ignoreWhitespaceAndComments and inside
// string scanning) since not every Advance crosses a line boundary.
func (lx *Lexer) Advance() {
	lx.pos++
	lx.column++
	if lx.pos >= lx.length {
		lx.current = 0
		lx.pos = lx.length
	} else {
		lx.current = lx.src[lx.pos]
	}
}

// Tokenize consumes the entire source and returns every token up to
// and including the final EOF, or the first error encountered.
func Tokenize(src string) ([]Token, error) {
	lx := New(src)
	var tokens []Token
	for {
		tok, err := lx.NextToken()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if tok.Kind == EOF {
			return tokens, nil
		}
	}
}

// NextToken returns the next token in the stream, or an EOF token once
// the source is exhausted. It returns a lexer Error for malformed
// input (unterminated strings, lone '&'/'|', unrecognised characters).
func (lx *Lexer) NextToken() (Token, error) {
	lx.ignoreWhitespaceAndComments()

	line, column := lx.line, lx.column

	if lx.current == 0 {
		return Token{Kind: EOF, Lexeme: "EOF", Line: line, Column: column}, nil
	}

	// Multi-word keyword phrases always start with a letter; try the
	// greedy longest-match scan before falling through to the general
	// identifier/number/operator scan.
	if isAlpha(lx.current) {
		if tok, ok := lx.matchKeywordPhrase(line, column); ok {
			return tok, nil
		}
		return lx.readIdentifierOrSingleWordKeyword(line, column), nil
	}

	if isDigit(lx.current) {
		return lx.readNumber(line, column)
	}

	switch lx.current {
	case '"':
		return lx.readString(line, column)
	case '+':
		lx.Advance()
		return Token{Kind: PLUS, Lexeme: "+", Line: line, Column: column}, nil
	case '-':
		lx.Advance()
		return Token{Kind: MINUS, Lexeme: "-", Line: line, Column: column}, nil
	case '*':
		lx.Advance()
		return Token{Kind: STAR, Lexeme: "*", Line: line, Column: column}, nil
	case '/':
		lx.Advance()
		return Token{Kind: SLASH, Lexeme: "/", Line: line, Column: column}, nil
	case '%':
		lx.Advance()
		return Token{Kind: PERCENT, Lexeme: "%", Line: line, Column: column}, nil
	case '(':
		lx.Advance()
		return Token{Kind: LPAREN, Lexeme: "(", Line: line, Column: column}, nil
	case ')':
		lx.Advance()
		return Token{Kind: RPAREN, Lexeme: ")", Line: line, Column: column}, nil
	case '{':
		lx.Advance()
		return Token{Kind: LBRACE, Lexeme: "{", Line: line, Column: column}, nil
	case '}':
		lx.Advance()
		return Token{Kind: RBRACE, Lexeme: "}", Line: line, Column: column}, nil
	case ',':
		lx.Advance()
		return Token{Kind: COMMA, Lexeme: ",", Line: line, Column: column}, nil
	case ':':
		lx.Advance()
		return Token{Kind: COLON, Lexeme: ":", Line: line, Column: column}, nil
	case '=':
		lx.Advance()
		if lx.current == '=' {
			lx.Advance()
			return Token{Kind: EQ, Lexeme: "==", Line: line, Column: column}, nil
		}
		return Token{Kind: ASSIGN, Lexeme: "=", Line: line, Column: column}, nil
	case '!':
		lx.Advance()
		if lx.current == '=' {
			lx.Advance()
			return Token{Kind: NE, Lexeme: "!=", Line: line, Column: column}, nil
		}
		return Token{Kind: NOT, Lexeme: "!", Line: line, Column: column}, nil
	case '<':
		lx.Advance()
		if lx.current == '=' {
			lx.Advance()
			return Token{Kind: LE, Lexeme: "<=", Line: line, Column: column}, nil
		}
		return Token{Kind: LT, Lexeme: "<", Line: line, Column: column}, nil
	case '>':
		lx.Advance()
		if lx.current == '=' {
			lx.Advance()
			return Token{Kind: GE, Lexeme: ">=", Line: line, Column: column}, nil
		}
		return Token{Kind: GT, Lexeme: ">", Line: line, Column: column}, nil
	case '&':
		if lx.Peek() != '&' {
			lx.Advance()
			return Token{}, newError(line, column, "unexpected character '&'")
		}
		lx.Advance()
		lx.Advance()
		return Token{Kind: AND, Lexeme: "&&", Line: line, Column: column}, nil
	case '|':
		if lx.Peek() != '|' {
			lx.Advance()
			return Token{}, newError(line, column, "unexpected character '|'")
		}
		lx.Advance()
		lx.Advance()
		return Token{Kind: OR, Lexeme: "||", Line: line, Column: column}, nil
	default:
		c := lx.current
		lx.Advance()
		return Token{}, newError(line, column, "unexpected character %q", c)
	}
}

// ignoreWhitespaceAndComments skips spaces/tabs/CRs, advances the line
// counter on newlines (resetting column to 1), and skips `//` line
// comments up to but not including the terminating newline.
func (lx *Lexer) ignoreWhitespaceAndComments() {
	for {
		switch {
		case lx.current == '\n':
			lx.line++
			lx.column = 1
			lx.pos++
			if lx.pos >= lx.length {
				lx.current = 0
				lx.pos = lx.length
			} else {
				lx.current = lx.src[lx.pos]
			}
		case isWhitespace(lx.current):
			lx.Advance()
		case lx.current == '/' && lx.Peek() == '/':
			for lx.current != '\n' && lx.current != 0 {
				lx.Advance()
			}
		default:
			return
		}
	}
}

// matchKeywordPhrase implements the greedy, case-insensitive,
// longest-match scan over the keyword table. Candidates are tried
// longest-first; a
// candidate matches when its characters equal the upcoming source
// bytes under ASCII case folding, and either it ends in a terminator
// character ('!' or ':') or the byte immediately following it is EOF
// or not an identifier character. The first satisfying candidate is
// consumed and returned as its token kind; on no match, ok is false
// and the lexer position is left untouched.
func (lx *Lexer) matchKeywordPhrase(line, column int) (Token, bool) {
	for _, kw := range lx.keywords {
		if lx.matchesAt(kw.text) {
			if hasTerminator(kw.text) || !isIdentChar(lx.peekAt(len(kw.text))) {
				for i := 0; i < len(kw.text); i++ {
					lx.Advance()
				}
				return Token{Kind: kw.kind, Lexeme: kw.text, Line: line, Column: column}, true
			}
		}
	}
	return Token{}, false
}

// matchesAt reports whether text matches the source starting at the
// lexer's current position, comparing letters case-insensitively
// (ASCII fold) and all other characters (spaces, '!', ':') literally.
func (lx *Lexer) matchesAt(text string) bool {
	for i := 0; i < len(text); i++ {
		c := lx.peekAt(i)
		if c == 0 {
			return false
		}
		want := text[i]
		if foldByte(c) != foldByte(want) {
			return false
		}
	}
	return true
}

// readIdentifierOrSingleWordKeyword scans `[A-Za-z_][A-Za-z0-9_]*` and
// classifies it: if its lowercase form names one of the single-word
// keywords (sach/galat/khaali/climax/warna) that kind is emitted,
// otherwise it's a plain IDENT.
func (lx *Lexer) readIdentifierOrSingleWordKeyword(line, column int) Token {
	start := lx.pos
	for isIdentChar(lx.current) {
		lx.Advance()
	}
	lexeme := lx.src[start:lx.pos]
	if kind, ok := singleWordKeywords[strings.ToLower(lexeme)]; ok {
		return Token{Kind: kind, Lexeme: lexeme, Line: line, Column: column}
	}
	return Token{Kind: IDENT, Lexeme: lexeme, Line: line, Column: column}
}

// readNumber scans `DIGIT+ ( . DIGIT+ )?` and stores the parsed value
// as a float64 literal.
func (lx *Lexer) readNumber(line, column int) (Token, error) {
	start := lx.pos
	for isDigit(lx.current) {
		lx.Advance()
	}
	if lx.current == '.' && isDigit(lx.Peek()) {
		lx.Advance()
		for isDigit(lx.current) {
			lx.Advance()
		}
	}
	lexeme := lx.src[start:lx.pos]
	value, err := strconv.ParseFloat(lexeme, 64)
	if err != nil {
		return Token{}, newError(line, column, "malformed number literal %q", lexeme)
	}
	return Token{Kind: NUMBER, Lexeme: lexeme, Literal: value, Line: line, Column: column}, nil
}

// readString scans a double-quoted string literal, translating the
// escape sequences \n \t \r \" \\ to their single-character meaning;
// any other character following a backslash is kept as itself (the
// backslash is simply dropped).
func (lx *Lexer) readString(line, column int) (Token, error) {
	lx.Advance() // consume opening quote
	var b strings.Builder
	for {
		if lx.current == 0 {
			return Token{}, newError(line, column, "unterminated string literal")
		}
		if lx.current == '"' {
			break
		}
		if lx.current == '\n' {
			lx.line++
			lx.column = 0 // Advance below brings it to 1
		}
		if lx.current == '\\' {
			lx.Advance()
			if lx.current == 0 {
				return Token{}, newError(line, column, "unterminated string literal")
			}
			switch lx.current {
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			case 'r':
				b.WriteByte('\r')
			case '"':
				b.WriteByte('"')
			case '\\':
				b.WriteByte('\\')
			default:
				b.WriteByte(lx.current)
			}
			lx.Advance()
			continue
		}
		b.WriteByte(lx.current)
		lx.Advance()
	}
	lx.Advance() // consume closing quote
	return Token{Kind: STRING, Lexeme: b.String(), Literal: b.String(), Line: line, Column: column}, nil
}
