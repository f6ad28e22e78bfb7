package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"flint/internal/diagfmt"
	"flint/internal/driver"
	"flint/internal/source"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] file",
	Short: "Tokenize a C/C++ source file",
	Long:  `Tokenize prints the token stream the checks operate on, useful for debugging false positives`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	format, _ := cmd.Flags().GetString("format")
	maxDiagnostics, _ := cmd.Root().PersistentFlags().GetInt("max-diagnostics")

	fileSet := source.NewFileSet()
	tokens, bag, _, err := driver.TokenizeFile(fileSet, args[0], maxDiagnostics)
	if err != nil {
		return err
	}

	if bag.Len() > 0 {
		diagfmt.Pretty(os.Stderr, bag, fileSet, diagfmt.PrettyOpts{
			Color:   useColor(cmd, os.Stderr),
			Context: 2,
		})
	}

	switch format {
	case "pretty":
		return diagfmt.FormatTokensPretty(os.Stdout, tokens, fileSet)
	case "json":
		return diagfmt.FormatTokensJSON(os.Stdout, tokens)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
