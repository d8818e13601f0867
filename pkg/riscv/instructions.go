// Package riscv supplies the rv32i base integer instruction set to the
// lexer. The tokenizer core never hardcodes mnemonics; this is the assembly
// definition it gets handed at construction.
package riscv

import "goasm/pkg/lexer"

var registerOps = []string{
	"add", "sub", "sll", "slt", "sltu", "xor", "srl", "sra", "or", "and",
}

var immediateOps = []string{
	"addi", "slti", "sltiu", "xori", "ori", "andi", "slli", "srli", "srai",
}

var loadOps = []string{
	"lb", "lh", "lw", "lbu", "lhu",
}

var storeOps = []string{
	"sb", "sh", "sw",
}

var branchOps = []string{
	"beq", "bne", "blt", "bge", "bltu", "bgeu",
}

var jumpOps = []string{
	"jal", "jalr",
}

var upperOps = []string{
	"lui", "auipc",
}

var systemOps = []string{
	"fence", "ecall", "ebreak",
}

// Instructions returns the full rv32i mnemonic set. Mnemonics are lower-case;
// lookups in the lexer are case-sensitive.
func Instructions() lexer.InstructionSet {
	var all []string
	for _, group := range [][]string{
		registerOps, immediateOps, loadOps, storeOps,
		branchOps, jumpOps, upperOps, systemOps,
	} {
		all = append(all, group...)
	}
	return lexer.NewInstructionSet(all...)
}
