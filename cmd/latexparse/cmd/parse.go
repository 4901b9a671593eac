package cmd

import (
	"fmt"
	"os"

	"github.com/cwbudde/go-latexast/pkg/latexast"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	parseExpr    string
	parseDumpAST bool
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse LaTeX math-mode source and print the AST",
	Long: `Parse LaTeX math-mode source into its AST and print it.

By default the AST is re-rendered back to LaTeX source. Use --dump-ast
to print the indented node structure instead. Any diagnostics recorded
during the parse are printed to stderr with a caret under the source
position, and logged as warnings.

Examples:
  latexparse parse formula.tex
  latexparse parse -e '\sum_{i=1}^{n} i^2' --dump-ast`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringVarP(&parseExpr, "eval", "e", "", "parse an inline string instead of a file")
	parseCmd.Flags().BoolVar(&parseDumpAST, "dump-ast", false, "print the AST node structure instead of re-rendered source")
}

func runParse(_ *cobra.Command, args []string) error {
	input, err := readInput(parseExpr, args)
	if err != nil {
		return err
	}

	doc, issues := latexast.ParseWithIssues(input)

	for _, iss := range issues {
		fmt.Fprintln(os.Stderr, iss.FormatWithSource(input, false))
		log.WithFields(logrus.Fields{"line": iss.Pos.Line, "column": iss.Pos.Column, "kind": iss.Kind.String()}).Warn(iss.Message)
	}

	if parseDumpAST {
		fmt.Println(latexast.Debug(doc))
	} else {
		fmt.Println(latexast.PrettyPrint(doc))
	}

	return nil
}
