package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"goasm/pkg/lexer"
	"goasm/pkg/riscv"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "asmlex sourceFile",
	Short: "Tokenize rv32i assembly source and dump the token stream",
	Long: `Asmlex scans an assembly source file, classifies every lexeme
(instruction, register, immediate, label or error) and prints the resulting
token stream with line and column positions. Malformed lexemes are reported
as ERROR tokens; they do not stop the scan.`,
	Args:          cobra.ExactArgs(1),
	RunE:          run,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func run(cmd *cobra.Command, args []string) error {
	logger := zap.NewNop()
	if verbose {
		var err error
		logger, err = zap.NewDevelopment()
		if err != nil {
			return err
		}
	}
	defer logger.Sync()

	source, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("source file not found: %w", err)
	}
	defer source.Close()

	instructions := riscv.Instructions()
	logger.Info("scanning source",
		zap.String("file", args[0]),
		zap.Int("instructions", instructions.Size()),
	)

	lex, err := lexer.New(source, instructions)
	if err != nil {
		return fmt.Errorf("scanning %s: %w", args[0], err)
	}

	lex.Dump(cmd.OutOrStdout())
	return nil
}

func main() {
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log scan details to stderr")
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}
}
