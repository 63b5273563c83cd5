package main

import (
	"fmt"
	"os"

	"grant-portal/internal/cli"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprint(os.Stderr, cli.RenderError(err))
		os.Exit(1)
	}
}
