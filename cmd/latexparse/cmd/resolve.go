package cmd

import (
	"fmt"

	"github.com/cwbudde/go-latexast/pkg/latexast"
	"github.com/spf13/cobra"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve <name>...",
	Short: "Look up LaTeX command names in the symbol table",
	Long: `Resolve one or more bare command names (without the leading
backslash) against the static symbol table and print their Unicode
glyph.

Examples:
  latexparse resolve alpha sum rightarrow`,
	Args: cobra.MinimumNArgs(1),
	RunE: runResolve,
}

func init() {
	rootCmd.AddCommand(resolveCmd)
}

func runResolve(_ *cobra.Command, args []string) error {
	missing := 0
	for _, name := range args {
		if uni, ok := latexast.Resolve(name); ok {
			fmt.Printf("%-20s %s\n", name, uni)
		} else {
			fmt.Printf("%-20s <unresolved>\n", name)
			missing++
		}
	}
	if missing > 0 {
		log.Warnf("%d of %d names unresolved", missing, len(args))
	}
	return nil
}
