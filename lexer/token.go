/*
File    : masala/lexer/token.go
Package : lexer
*/

// Package lexer performs lexical analysis of Masala source code.
// Masala's surface syntax is built from multi-word, case-insensitive
// keyword phrases (e.g. "agar kismat rahi" for `if`) layered over a
// conventional C-like operator and literal set. The lexer's job is to
// turn a source string into an ordered token stream, resolving the
// multi-word keywords with a greedy longest-match scan before falling
// back to ordinary identifier/number/operator scanning.
package lexer

import "fmt"

// Kind identifies the category of a token. It is a string so that
// tokens print legibly during debugging and so operator and
// punctuation kinds can be compared directly against their surface
// spelling when useful (keyword kinds are names such as "IF").
type Kind string

const (
	// Special
	EOF     Kind = "EOF"
	ILLEGAL Kind = "ILLEGAL"

	// Literals and identifiers
	IDENT  Kind = "IDENT"
	NUMBER Kind = "NUMBER"
	STRING Kind = "STRING"

	// Single-word keywords (recognised via identifier scan + lookup)
	TRUE  Kind = "TRUE"  // sach
	FALSE Kind = "FALSE" // galat
	NULL  Kind = "NULL"  // khaali
	FUNC  Kind = "FUNC"  // climax
	ELSE  Kind = "ELSE"  // warna

	// Multi-word keywords (recognised via greedy longest-match phrase scan)
	ACTION      Kind = "ACTION"       // action! / Chal bhai suru kar
	PROGRAM_END Kind = "PROGRAM_END"  // paisa vasool / bas khatam karo
	VAR_DECL    Kind = "VAR_DECL"     // maan lo
	IF          Kind = "IF"           // agar kismat rahi
	ELSEIF      Kind = "ELSEIF"       // nahi to
	WHILE       Kind = "WHILE"        // jab tak hai jaan
	BREAK       Kind = "BREAK"        // me bahar ja raha hu
	RETURN      Kind = "RETURN"       // dialogue wapas do
	PRINT       Kind = "PRINT"        // ek baat bataun:

	// Operators
	PLUS     Kind = "+"
	MINUS    Kind = "-"
	STAR     Kind = "*"
	SLASH    Kind = "/"
	PERCENT  Kind = "%"
	ASSIGN   Kind = "="
	EQ       Kind = "=="
	NE       Kind = "!="
	LT       Kind = "<"
	GT       Kind = ">"
	LE       Kind = "<="
	GE       Kind = ">="
	AND      Kind = "&&"
	OR       Kind = "||"
	NOT      Kind = "!"

	// Punctuation
	LPAREN Kind = "("
	RPAREN Kind = ")"
	LBRACE Kind = "{"
	RBRACE Kind = "}"
	COMMA  Kind = ","
	COLON  Kind = ":"
)

// singleWordKeywords maps the lowercase spelling of a single-word
// keyword to its token kind. These are recognised the ordinary way:
// scan an identifier, then look its lowercase form up in this table.
var singleWordKeywords = map[string]Kind{
	"sach":   TRUE,
	"galat":  FALSE,
	"khaali": NULL,
	"climax": FUNC,
	"warna":  ELSE,
}

// Token is a single lexical token: its kind, the exact source slice it
// came from, an optional parsed literal value (number or string), and
// its 1-based source position.
type Token struct {
	Kind    Kind
	Lexeme  string
	Literal interface{} // nil, float64, or string
	Line    int
	Column  int
}

// String renders a token for debugging, e.g. "IDENT(foo) @3:5".
func (t Token) String() string {
	return fmt.Sprintf("%s(%s) @%d:%d", t.Kind, t.Lexeme, t.Line, t.Column)
}
