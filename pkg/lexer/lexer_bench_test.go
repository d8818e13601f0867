package lexer

import (
	"strings"
	"testing"
)

// smallProgram is a short rv32i counter loop.
const smallProgram = `
    addi x1, x0, 10
    addi x2, x0, 0
loop:
    add x2, x2, x1
    addi x1, x1, 1
    bne x1, x0, loop
`

// mediumProgram exercises every immediate form and a mix of good and
// malformed lexemes.
const mediumProgram = `
main:
    lui x5, 0x10000
    addi x6, x0, 0b1010
    lw x7, 0(x5)
    sw x7, 4(x5)
    beq x6, x7, done
    jal x1, main
    0xZZ bogus_word x99
done:
    addi x10, x0, 007
`

var benchInstructions = NewInstructionSet(
	"add", "addi", "lui", "lw", "sw", "beq", "bne", "jal",
)

func benchmarkScan(b *testing.B, src string) {
	b.ReportAllocs()
	b.SetBytes(int64(len(src)))
	for i := 0; i < b.N; i++ {
		l, err := New(strings.NewReader(src), benchInstructions)
		if err != nil {
			b.Fatal(err)
		}
		for l.HasMore() {
			if _, err := l.Pop(); err != nil {
				b.Fatal(err)
			}
		}
	}
}

func BenchmarkScanSmall(b *testing.B)  { benchmarkScan(b, smallProgram) }
func BenchmarkScanMedium(b *testing.B) { benchmarkScan(b, mediumProgram) }
