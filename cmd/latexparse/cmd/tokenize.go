package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/cwbudde/go-latexast/internal/lexer"
	"github.com/spf13/cobra"
)

var (
	tokenizeExpr     string
	tokenizeShowPos  bool
	tokenizeComments bool
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [file]",
	Short: "Tokenize LaTeX math-mode source",
	Long: `Tokenize LaTeX math-mode source and print the resulting tokens.

If no file is given, reads from stdin. Use -e to tokenize an inline
string instead.

Examples:
  latexparse tokenize formula.tex
  latexparse tokenize -e '\frac{a}{b}'
  latexparse tokenize --show-pos --comments formula.tex`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTokenize,
}

func init() {
	rootCmd.AddCommand(tokenizeCmd)

	tokenizeCmd.Flags().StringVarP(&tokenizeExpr, "eval", "e", "", "tokenize an inline string instead of a file")
	tokenizeCmd.Flags().BoolVar(&tokenizeShowPos, "show-pos", false, "show token positions (line:column)")
	tokenizeCmd.Flags().BoolVar(&tokenizeComments, "comments", false, "preserve \"%\" comments as COMMENT tokens")
}

func runTokenize(_ *cobra.Command, args []string) error {
	input, err := readInput(tokenizeExpr, args)
	if err != nil {
		return err
	}

	log.Debugf("tokenizing %d bytes", len(input))

	var opts []lexer.Option
	if tokenizeComments {
		opts = append(opts, lexer.WithPreserveComments(true))
	}

	toks := lexer.New(input, opts...).Tokenize()
	for _, tok := range toks {
		if tokenizeShowPos {
			fmt.Printf("%-12s %-20q @%d:%d\n", tok.Type, tok.Literal, tok.Pos.Line, tok.Pos.Column)
		} else {
			fmt.Printf("%-12s %q\n", tok.Type, tok.Literal)
		}
	}
	return nil
}

func readInput(expr string, args []string) (string, error) {
	if expr != "" {
		return expr, nil
	}
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("failed to read file %s: %w", args[0], err)
		}
		return string(data), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(data), nil
}
