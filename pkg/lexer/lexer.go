package lexer

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/emirpasic/gods/v2/queues/arrayqueue"
)

var (
	// ErrNilSource is returned by New when the source is not readable.
	ErrNilSource = errors.New("source is not in a readable state")
	// ErrNoTokens is returned by Peek and Pop on an empty token stream.
	ErrNoTokens = errors.New("no tokens remain in the stream")
)

// Lexer scans assembly source eagerly at construction and exposes the
// resulting tokens as a FIFO stream. The Lexer is the sole writer of the
// stream during New; the caller is its sole consumer afterwards.
type Lexer struct {
	tokens       *arrayqueue.Queue[Token]
	instructions InstructionSet
	line         int // current 1-based source line
	column       int // 1-based column of the most recent token on the line
}

// New reads the entire source line by line and tokenizes it. The caller owns
// the source's lifecycle; New only reads from it. A nil source or a read
// failure yields an error and no tokens.
func New(source io.Reader, instructions InstructionSet) (*Lexer, error) {
	if source == nil {
		return nil, ErrNilSource
	}

	l := &Lexer{
		tokens:       arrayqueue.New[Token](),
		instructions: instructions,
		line:         1,
		column:       1,
	}

	scanner := bufio.NewScanner(source)
	for scanner.Scan() {
		l.scanLine(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading source: %w", err)
	}
	return l, nil
}

// scanLine extracts and classifies every word run on one line, then appends
// the line's END_OF_LINE token. The END_OF_LINE column is not recomputed: it
// inherits the column of the last token scanned, which is the reset value 1
// on a line with no tokens.
func (l *Lexer) scanLine(line string) {
	for _, r := range wordRuns(line) {
		l.column = r.column
		l.tokens.Enqueue(Token{
			Type:   classify(r.lexeme, l.instructions),
			Lexeme: r.lexeme,
			Line:   l.line,
			Column: l.column,
		})
	}
	l.tokens.Enqueue(Token{Type: END_OF_LINE, Lexeme: eolLexeme, Line: l.line, Column: l.column})
	l.line++
	l.column = 1
}

// run is one maximal word-character run and its 1-based starting column.
type run struct {
	lexeme string
	column int
}

// wordRuns splits a line into its maximal runs of [A-Za-z0-9_]. Every other
// byte is a separator and produces no token.
func wordRuns(line string) []run {
	var runs []run
	start := -1
	for i := 0; i < len(line); i++ {
		if isWordChar(line[i]) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			runs = append(runs, run{lexeme: line[start:i], column: start + 1})
			start = -1
		}
	}
	if start >= 0 {
		runs = append(runs, run{lexeme: line[start:], column: start + 1})
	}
	return runs
}

// classify maps a lexeme to its TokenType. Rules are tried in precedence
// order; instruction-set membership wins over every syntactic rule.
func classify(lexeme string, instructions InstructionSet) TokenType {
	switch {
	case instructions.Contains(lexeme):
		return INSTRUCTION
	case isRegister(lexeme):
		return REGISTER
	case isBinaryLiteral(lexeme) || isHexLiteral(lexeme) || isDecimalLiteral(lexeme):
		return IMMEDIATE
	case isLabel(lexeme):
		return LABEL
	default:
		return ERROR
	}
}

// isRegister matches x0..x31. Leading zeros are allowed; the running value
// short-circuits as soon as it exceeds 31.
func isRegister(lexeme string) bool {
	if len(lexeme) < 2 || lexeme[0] != 'x' {
		return false
	}
	value := 0
	for i := 1; i < len(lexeme); i++ {
		c := lexeme[i]
		if !isDigit(c) {
			return false
		}
		value = value*10 + int(c-'0')
		if value > 31 {
			return false
		}
	}
	return true
}

// isBinaryLiteral matches 0b followed by at least one binary digit.
func isBinaryLiteral(lexeme string) bool {
	if len(lexeme) <= 2 || lexeme[0] != '0' || lexeme[1] != 'b' {
		return false
	}
	for i := 2; i < len(lexeme); i++ {
		if lexeme[i] != '0' && lexeme[i] != '1' {
			return false
		}
	}
	return true
}

// isHexLiteral matches 0x followed by at least one hex digit.
func isHexLiteral(lexeme string) bool {
	if len(lexeme) <= 2 || lexeme[0] != '0' || lexeme[1] != 'x' {
		return false
	}
	for i := 2; i < len(lexeme); i++ {
		if !isHexDigit(lexeme[i]) {
			return false
		}
	}
	return true
}

// isDecimalLiteral matches a non-empty all-digit lexeme.
func isDecimalLiteral(lexeme string) bool {
	if len(lexeme) == 0 {
		return false
	}
	for i := 0; i < len(lexeme); i++ {
		if !isDigit(lexeme[i]) {
			return false
		}
	}
	return true
}

// isLabel matches a lexeme ending in ':' with no '_' before it. Word runs
// never include ':', so this rule only fires when classify is handed a full
// word including the trailing colon; end-to-end scanning classifies a line
// like "loop:" as ERROR("loop"). See DESIGN.md.
func isLabel(lexeme string) bool {
	if len(lexeme) == 0 || lexeme[len(lexeme)-1] != ':' {
		return false
	}
	for i := 0; i < len(lexeme)-1; i++ {
		if lexeme[i] == '_' {
			return false
		}
	}
	return true
}

func isWordChar(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isHexDigit(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

// HasMore reports whether any token remains in the stream.
func (l *Lexer) HasMore() bool {
	return !l.tokens.Empty()
}

// Peek returns the head token without removing it.
func (l *Lexer) Peek() (Token, error) {
	tok, ok := l.tokens.Peek()
	if !ok {
		return Token{}, ErrNoTokens
	}
	return tok, nil
}

// Pop removes and returns the head token.
func (l *Lexer) Pop() (Token, error) {
	tok, ok := l.tokens.Dequeue()
	if !ok {
		return Token{}, ErrNoTokens
	}
	return tok, nil
}

// Dump writes every remaining token to w in stream order, one per line,
// without consuming the stream. Debugging aid, not a stable format.
func (l *Lexer) Dump(w io.Writer) {
	for _, tok := range l.tokens.Values() {
		fmt.Fprintln(w, tok)
	}
}
