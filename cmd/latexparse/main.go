package main

import (
	"os"

	"github.com/cwbudde/go-latexast/cmd/latexparse/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
