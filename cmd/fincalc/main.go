package main

import (
	"fmt"
	"os"

	"fincalc/cmd/fincalc/cmd"
	"fincalc/internal/display"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, display.RenderError(err.Error()))
		os.Exit(1)
	}
}
