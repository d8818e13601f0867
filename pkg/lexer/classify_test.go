package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	instructions := NewInstructionSet("add", "sub", "x5")

	tests := []struct {
		lexeme   string
		expected TokenType
	}{
		// Instruction-set membership, case-sensitive, beats everything.
		{"add", INSTRUCTION},
		{"sub", INSTRUCTION},
		{"x5", INSTRUCTION},
		{"ADD", ERROR},

		// Registers x0..x31; leading zeros allowed.
		{"x0", REGISTER},
		{"x1", REGISTER},
		{"x01", REGISTER},
		{"x31", REGISTER},
		{"x031", REGISTER},
		{"x32", ERROR},
		{"x100", ERROR},
		{"x", ERROR},
		{"x3a", ERROR},
		{"X1", ERROR},

		// Immediates: binary, hex, decimal.
		{"0b101", IMMEDIATE},
		{"0b0", IMMEDIATE},
		{"0b102", ERROR},
		{"0b", ERROR},
		{"0xFF", IMMEDIATE},
		{"0xdeadBEEF", IMMEDIATE},
		{"0xFG", ERROR},
		{"0x", ERROR},
		{"42", IMMEDIATE},
		{"007", IMMEDIATE},
		{"0", IMMEDIATE},
		{"12a", ERROR},

		// The label rule only fires on a full word including the colon;
		// word-run extraction never produces one (see DESIGN.md).
		{"loop:", LABEL},
		{"lo_op:", ERROR},
		{"loop", ERROR},

		{"", ERROR},
		{"_start", ERROR},
		{"hello_world", ERROR},
	}

	for _, tc := range tests {
		assert.Equalf(t, tc.expected, classify(tc.lexeme, instructions),
			"classify(%q)", tc.lexeme)
	}
}

func TestClassifyEmptyInstructionSet(t *testing.T) {
	// The zero value behaves as an empty set.
	var empty InstructionSet
	assert.Equal(t, 0, empty.Size())
	assert.Equal(t, ERROR, classify("add", empty))
	assert.Equal(t, REGISTER, classify("x1", empty))
}

func TestWordRuns(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		expected []run
	}{
		{"Empty", "", nil},
		{"Whitespace Only", "   \t ", nil},
		{"Single Word", "add", []run{{"add", 1}}},
		{"Leading Spaces", "  add", []run{{"add", 3}}},
		{"Punctuation Separators", "add x1,x2;x3", []run{
			{"add", 1}, {"x1", 5}, {"x2", 8}, {"x3", 11},
		}},
		{"Colon Excluded", "loop: add", []run{{"loop", 1}, {"add", 7}}},
		{"Underscore Is A Word Char", "_a_b_ c", []run{{"_a_b_", 1}, {"c", 7}}},
		{"Trailing Run", "beq x0", []run{{"beq", 1}, {"x0", 5}}},
		{"Adjacent Separators", "a,,b", []run{{"a", 1}, {"b", 4}}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, wordRuns(tc.line))
		})
	}
}
