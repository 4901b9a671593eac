package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// log is the CLI-wide diagnostics sink. The parsing engine itself
// (internal/*, pkg/latexast) takes no logger and does no I/O; logging
// lives here at the command boundary only.
var log = logrus.New()

var rootCmd = &cobra.Command{
	Use:   "latexparse",
	Short: "LaTeX math-mode parser and AST inspector",
	Long: `latexparse tokenizes, parses, and macro-expands LaTeX math-mode
source into a typed AST.

It exposes the same engine as the pkg/latexast library: a tokenizer,
a symbol table of command-to-Unicode mappings, a recursive-descent
parser producing a closed AST, and a \newcommand macro expander.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	verbose := rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose logging")
	cobra.OnInitialize(func() {
		if *verbose {
			log.SetLevel(logrus.DebugLevel)
		}
	})
}
