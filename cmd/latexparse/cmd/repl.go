package cmd

import (
	"bufio"
	"fmt"
	"os"

	"github.com/cwbudde/go-latexast/pkg/latexast"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var replPersistMacros bool

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Interactively append LaTeX math-mode source and inspect the AST",
	Long: `Start an interactive session backed by latexast.Driver.

Each line you enter is appended to the accumulated input and
reparsed; the resulting AST is printed after every line. Use :clear to
reset, :replace <text> to discard and restart from new text, and
:quit to exit.`,
	RunE: runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)
	replCmd.Flags().BoolVar(&replPersistMacros, "persist-macros", false, "keep \\newcommand definitions registered across lines")
}

func runRepl(_ *cobra.Command, _ []string) error {
	var opts []latexast.DriverOption
	if replPersistMacros {
		opts = append(opts, latexast.WithPersistentMacros())
	}
	d := latexast.NewDriver(opts...)

	scanner := bufio.NewScanner(os.Stdin)
	fmt.Println("latexparse repl — :clear, :replace <text>, :quit")
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()

		switch {
		case line == ":quit":
			return nil
		case line == ":clear":
			d.Clear()
			continue
		case len(line) >= 9 && line[:9] == ":replace ":
			d.Replace(line[9:])
		default:
			d.Append(line)
		}

		doc := d.CurrentDocument()
		fmt.Println(latexast.Debug(doc))
		for _, iss := range d.Issues() {
			log.WithFields(logrus.Fields{"line": iss.Pos.Line, "column": iss.Pos.Column, "kind": iss.Kind.String()}).Warn(iss.Message)
		}
	}
	return scanner.Err()
}
