// Package lexer turns cQASM 1.x source text into a flat token stream
// (§6.1, "condensed" input-language description). Lexing and grammar-level
// parsing are explicitly out of this system's core design risk, so this
// package is a small, hand-written scanner rather than anything grounded on
// a generator — no example repo in the retrieval pack carries a lexer or a
// parser-combinator dependency to reuse.
package lexer

import "github.com/jvanstraten/libcqasm/diagnostics"

// Kind discriminates token kinds.
type Kind int

const (
	EOF Kind = iota
	Newline

	Version
	Qubits
	Map

	Ident
	Int
	Float
	String
	Json

	LBracket
	RBracket
	LParen
	RParen
	LBrace
	RBrace

	Comma
	Semicolon
	Colon
	Pipe
	Dot
	At

	Plus
	Minus
	Star
	StarStar
	Slash

	CMinus // the "c-" conditional-instruction prefix
)

func (k Kind) String() string {
	switch k {
	case EOF:
		return "EOF"
	case Newline:
		return "newline"
	case Version:
		return "'version'"
	case Qubits:
		return "'qubits'"
	case Map:
		return "'map'"
	case Ident:
		return "identifier"
	case Int:
		return "integer literal"
	case Float:
		return "float literal"
	case String:
		return "string literal"
	case Json:
		return "json literal"
	case LBracket:
		return "'['"
	case RBracket:
		return "']'"
	case LParen:
		return "'('"
	case RParen:
		return "')'"
	case LBrace:
		return "'{'"
	case RBrace:
		return "'}'"
	case Comma:
		return "','"
	case Semicolon:
		return "';'"
	case Colon:
		return "':'"
	case Pipe:
		return "'|'"
	case Dot:
		return "'.'"
	case At:
		return "'@'"
	case Plus:
		return "'+'"
	case Minus:
		return "'-'"
	case Star:
		return "'*'"
	case StarStar:
		return "'**'"
	case Slash:
		return "'/'"
	case CMinus:
		return "'c-'"
	default:
		return "?"
	}
}

// Token is one scanned lexeme.
type Token struct {
	Kind Kind
	Text string
	// IntValue/FloatValue/StringValue hold the decoded literal payload for
	// Int/Float/String/Json tokens respectively (String/Json already have
	// escapes resolved/verbatim text captured, per §6.1).
	IntValue    int64
	FloatValue  float64
	StringValue string
	Loc         diagnostics.Location
}
