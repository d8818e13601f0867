package lexer

import "github.com/emirpasic/gods/v2/sets/hashset"

// InstructionSet is the set of mnemonics the lexer classifies as
// INSTRUCTION. Lookups are case-sensitive. The lexer never mutates the set;
// the zero value is an empty set.
type InstructionSet struct {
	set *hashset.Set[string]
}

// NewInstructionSet builds an InstructionSet from the given mnemonics.
func NewInstructionSet(mnemonics ...string) InstructionSet {
	return InstructionSet{set: hashset.New[string](mnemonics...)}
}

// Contains reports whether mnemonic is a member of the set.
func (s InstructionSet) Contains(mnemonic string) bool {
	return s.set != nil && s.set.Contains(mnemonic)
}

// Size returns the number of mnemonics in the set.
func (s InstructionSet) Size() int {
	if s.set == nil {
		return 0
	}
	return s.set.Size()
}
