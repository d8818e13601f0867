package lexer

import "fmt"

// TokenType identifies the category of a lexed token.
type TokenType int

const (
	INSTRUCTION TokenType = iota // mnemonic from the supplied instruction set
	REGISTER                     // x0..x31
	IMMEDIATE                    // decimal, 0b binary or 0x hexadecimal literal
	LABEL                        // word ending in ':' with no underscores before it
	END_OF_LINE                  // sentinel emitted once per source line
	ERROR                        // lexeme matched no classification rule
)

// tokenNames is indexed by TokenType.
var tokenNames = [...]string{
	INSTRUCTION: "INSTRUCTION",
	REGISTER:    "REGISTER",
	IMMEDIATE:   "IMMEDIATE",
	LABEL:       "LABEL",
	END_OF_LINE: "END_OF_LINE",
	ERROR:       "ERROR",
}

func (tt TokenType) String() string {
	if int(tt) >= 0 && int(tt) < len(tokenNames) {
		return tokenNames[tt]
	}
	return fmt.Sprintf("TokenType(%d)", int(tt))
}

// eolLexeme is the fixed lexeme carried by every END_OF_LINE token; it stands
// in for the line terminator and is never literal source text.
const eolLexeme = "\n"

// Token is a single lexical unit produced by the Lexer. Tokens are created
// once during scanning and never modified afterwards.
type Token struct {
	Type   TokenType
	Lexeme string // the exact source text that was matched
	Line   int    // 1-based source line
	Column int    // 1-based column of the lexeme's first character
}

func (t Token) String() string {
	return fmt.Sprintf("%-11s %-14q  line %d, col %d", t.Type, t.Lexeme, t.Line, t.Column)
}
